package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// gridStep is the spacing of grid lines in pixels.
const gridStep = 100

// DrawCoordinateGrid overlays gridlines every gridStep pixels and labels
// each intersection row/column with its screen-absolute coordinate.
// originX/originY are the screen coordinates of the image's top-left
// corner, so labels can be fed straight back into click calls.
func DrawCoordinateGrid(img image.Image, originX, originY int) image.Image {
	rgba := imageToRGBA(img)
	bounds := rgba.Bounds()

	lineColor := color.RGBA{R: 255, G: 0, B: 0, A: 120}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	shadowColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}

	// Vertical lines with X labels along the top edge.
	for gx := 0; gx < bounds.Dx(); gx += gridStep {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			rgba.Set(bounds.Min.X+gx, y, lineColor)
		}
		label := fmt.Sprintf("%d", originX+gx)
		drawLabel(rgba, bounds.Min.X+gx+2, bounds.Min.Y+12, label, textColor, shadowColor)
	}

	// Horizontal lines with Y labels along the left edge.
	for gy := 0; gy < bounds.Dy(); gy += gridStep {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, bounds.Min.Y+gy, lineColor)
		}
		label := fmt.Sprintf("%d", originY+gy)
		drawLabel(rgba, bounds.Min.X+2, bounds.Min.Y+gy+12, label, textColor, shadowColor)
	}

	return rgba
}

// imageToRGBA converts any image to RGBA for drawing.
func imageToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// drawLabel renders text at (x, y) with a 1px shadow for readability on
// any background.
func drawLabel(img *image.RGBA, x, y int, text string, textColor, shadowColor color.Color) {
	drawString(img, x+1, y+1, text, shadowColor)
	drawString(img, x, y, text, textColor)
}

func drawString(img *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
