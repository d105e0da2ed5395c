package cmd

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/deskview/deskview/internal/platform"
	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot of a screen region",
	Long: `Capture a specific screen region as PNG. Use this only when the
accessibility tree cannot describe the content (images, canvas, games);
for normal UI, 'read' is far cheaper.

With --out the PNG is written to a file; otherwise base64 goes to stdout.
--grid overlays coordinate gridlines to help translate pixels back to
click coordinates.`,
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().Int("x", 0, "Left position of the region")
	screenshotCmd.Flags().Int("y", 0, "Top position of the region")
	screenshotCmd.Flags().Int("width", 0, "Width of the region")
	screenshotCmd.Flags().Int("height", 0, "Height of the region")
	screenshotCmd.Flags().String("out", "", "Write PNG to this file instead of base64 to stdout")
	screenshotCmd.Flags().Bool("grid", false, "Overlay a coordinate grid with screen-absolute labels")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	out, _ := cmd.Flags().GetString("out")
	grid, _ := cmd.Flags().GetBool("grid")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("--width and --height must be positive")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	data, err := provider.Screen.CaptureRegion(x, y, width, height)
	if err != nil {
		return fmt.Errorf("capture failed: %w", err)
	}

	if grid {
		img, err := decodeCapture(data)
		if err != nil {
			return fmt.Errorf("decode capture: %w", err)
		}
		annotated := DrawCoordinateGrid(img, x, y)
		var buf bytes.Buffer
		if err := png.Encode(&buf, annotated); err != nil {
			return fmt.Errorf("encode capture: %w", err)
		}
		data = buf.Bytes()
	}

	if out != "" {
		return os.WriteFile(out, data, 0o644)
	}
	fmt.Println(base64.StdEncoding.EncodeToString(data))
	return nil
}

// decodeCapture decodes a captured PNG for annotation.
func decodeCapture(data []byte) (image.Image, error) {
	return png.Decode(bytes.NewReader(data))
}
