//go:build darwin

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>

// Capture a screen region into a malloc'd RGBA buffer of
// width*height*4 bytes. Returns NULL when capture fails (most often a
// missing screen-recording permission).
static unsigned char *cg_capture_region(int x, int y, int w, int h) {
	CGRect rect = CGRectMake(x, y, w, h);
	CGImageRef image = CGWindowListCreateImage(rect,
		kCGWindowListOptionOnScreenOnly, kCGNullWindowID,
		kCGWindowImageBestResolution);
	if (image == NULL) {
		return NULL;
	}

	unsigned char *buf = calloc((size_t)w * (size_t)h, 4);
	CGColorSpaceRef colorSpace = CGColorSpaceCreateDeviceRGB();
	CGContextRef ctx = CGBitmapContextCreate(buf, w, h, 8, (size_t)w * 4,
		colorSpace, kCGImageAlphaPremultipliedLast | kCGBitmapByteOrder32Big);
	CGColorSpaceRelease(colorSpace);
	if (ctx == NULL) {
		free(buf);
		CGImageRelease(image);
		return NULL;
	}
	CGContextDrawImage(ctx, CGRectMake(0, 0, w, h), image);
	CGContextRelease(ctx);
	CGImageRelease(image);
	return buf;
}

static void cg_display_size(int *w, int *h) {
	CGDirectDisplayID display = CGMainDisplayID();
	*w = (int)CGDisplayPixelsWide(display);
	*h = (int)CGDisplayPixelsHigh(display);
}
*/
import "C"
import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"unsafe"

	"github.com/deskview/deskview/internal/model"
)

// DarwinScreen implements platform.Screen over CoreGraphics display
// and window-list capture APIs.
type DarwinScreen struct{}

// NewScreen creates a new macOS screen backend.
func NewScreen() *DarwinScreen {
	return &DarwinScreen{}
}

func (s *DarwinScreen) Size() (model.Size, error) {
	var w, h C.int
	C.cg_display_size(&w, &h)
	if w == 0 || h == 0 {
		return model.Size{}, fmt.Errorf("failed to read main display size")
	}
	return model.Size{Width: int(w), Height: int(h)}, nil
}

// CaptureRegion captures the given screen rectangle and returns it
// PNG-encoded. The image is scaled to the requested logical size, so
// callers can map pixel coordinates straight back to screen points.
func (s *DarwinScreen) CaptureRegion(x, y, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture region %dx%d", width, height)
	}
	buf := C.cg_capture_region(C.int(x), C.int(y), C.int(width), C.int(height))
	if buf == nil {
		return nil, fmt.Errorf("screen capture failed (is screen recording permitted?)")
	}
	defer C.free(unsafe.Pointer(buf))

	pixels := C.GoBytes(unsafe.Pointer(buf), C.int(width*height*4))
	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("failed to encode screenshot: %w", err)
	}
	return out.Bytes(), nil
}
