//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreGraphics -framework CoreFoundation -framework AppKit -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreGraphics/CoreGraphics.h>
#import <AppKit/AppKit.h>
#include <stdlib.h>

static pid_t ax_frontmost_pid(void) {
	NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
	if (app == nil) {
		return 0;
	}
	return app.processIdentifier;
}

// Copy the focused window of the application with the given pid.
// Returns NULL when there is none.
static AXUIElementRef ax_copy_focused_window(pid_t pid) {
	AXUIElementRef app = AXUIElementCreateApplication(pid);
	if (app == NULL) {
		return NULL;
	}
	CFTypeRef window = NULL;
	AXError err = AXUIElementCopyAttributeValue(app, kAXFocusedWindowAttribute, &window);
	CFRelease(app);
	if (err != kAXErrorSuccess || window == NULL) {
		return NULL;
	}
	return (AXUIElementRef)window;
}

// List the pids owning on-screen windows, front to back, deduplicated.
// Returns a malloc'd array the caller frees.
static int cg_onscreen_window_pids(pid_t **out) {
	CFArrayRef windows = CGWindowListCopyWindowInfo(
		kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
		kCGNullWindowID);
	if (windows == NULL) {
		return -1;
	}
	CFIndex count = CFArrayGetCount(windows);
	pid_t *pids = malloc(sizeof(pid_t) * (count > 0 ? count : 1));
	int n = 0;
	for (CFIndex i = 0; i < count; i++) {
		CFDictionaryRef info = CFArrayGetValueAtIndex(windows, i);

		// Layer 0 only: real application windows.
		int layer = -1;
		CFNumberRef layerRef = CFDictionaryGetValue(info, kCGWindowLayer);
		if (layerRef == NULL || !CFNumberGetValue(layerRef, kCFNumberIntType, &layer) || layer != 0) {
			continue;
		}

		pid_t pid = 0;
		CFNumberRef pidRef = CFDictionaryGetValue(info, kCGWindowOwnerPID);
		if (pidRef == NULL || !CFNumberGetValue(pidRef, kCFNumberIntType, &pid)) {
			continue;
		}
		int seen = 0;
		for (int j = 0; j < n; j++) {
			if (pids[j] == pid) {
				seen = 1;
				break;
			}
		}
		if (!seen) {
			pids[n++] = pid;
		}
	}
	CFRelease(windows);
	*out = pids;
	return n;
}

// Copy all accessibility windows of one application into a malloc'd
// array of retained refs. Returns the count, or -1 on failure.
static int ax_copy_app_windows(pid_t pid, AXUIElementRef **out) {
	AXUIElementRef app = AXUIElementCreateApplication(pid);
	if (app == NULL) {
		return -1;
	}
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, &value);
	CFRelease(app);
	if (err != kAXErrorSuccess || value == NULL) {
		return -1;
	}
	if (CFGetTypeID(value) != CFArrayGetTypeID()) {
		CFRelease(value);
		return -1;
	}
	CFArrayRef array = (CFArrayRef)value;
	CFIndex count = CFArrayGetCount(array);
	AXUIElementRef *refs = malloc(sizeof(AXUIElementRef) * (count > 0 ? count : 1));
	for (CFIndex i = 0; i < count; i++) {
		AXUIElementRef w = (AXUIElementRef)CFArrayGetValueAtIndex(array, i);
		CFRetain(w);
		refs[i] = w;
	}
	CFRelease(value);
	*out = refs;
	return (int)count;
}

static void cg_main_display_bounds(int *w, int *h) {
	CGDirectDisplayID display = CGMainDisplayID();
	*w = (int)CGDisplayPixelsWide(display);
	*h = (int)CGDisplayPixelsHigh(display);
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/platform"
)

// DarwinDesktop implements platform.Desktop for macOS. Every call
// re-reads live OS state; nothing is cached.
type DarwinDesktop struct{}

// NewDesktop creates a new macOS desktop root supplier.
func NewDesktop() *DarwinDesktop {
	return &DarwinDesktop{}
}

// Foreground returns the focused window of the frontmost application.
func (d *DarwinDesktop) Foreground() (platform.Node, bool) {
	pid := C.ax_frontmost_pid()
	if pid == 0 {
		return nil, false
	}
	ref := C.ax_copy_focused_window(pid)
	if ref == nil {
		return nil, false
	}
	return newAXNode(ref), true
}

// Root returns a synthetic desktop node whose children are the
// accessibility windows of every application with an on-screen window,
// front to back.
func (d *DarwinDesktop) Root() (platform.Node, bool) {
	return &rootNode{}, true
}

// rootNode is the synthetic desktop root. macOS has no single
// accessibility element spanning all applications, so window
// enumeration stitches per-application window lists together in
// z-order.
type rootNode struct{}

func (r *rootNode) Name() (string, bool)  { return "Desktop", true }
func (r *rootNode) Class() (string, bool) { return "Desktop", true }
func (r *rootNode) ControlType() string   { return "Pane" }

func (r *rootNode) Bounds() (model.Rect, bool) {
	var w, h C.int
	C.cg_main_display_bounds(&w, &h)
	return model.Rect{Width: int(w), Height: int(h)}, true
}

func (r *rootNode) Children() []platform.Node {
	var pids *C.pid_t
	count := int(C.cg_onscreen_window_pids(&pids))
	if count < 0 {
		return nil
	}
	defer C.free(unsafe.Pointer(pids))

	var windows []platform.Node
	for _, pid := range unsafe.Slice(pids, count) {
		var refs *C.AXUIElementRef
		n := int(C.ax_copy_app_windows(pid, &refs))
		if n < 0 {
			// Skip applications that refuse accessibility reads.
			continue
		}
		for _, ref := range unsafe.Slice(refs, n) {
			windows = append(windows, newAXNode(ref))
		}
		C.free(unsafe.Pointer(refs))
	}
	return windows
}

func (r *rootNode) Value() (string, bool) { return "", false }

func (r *rootNode) Focus() error {
	return fmt.Errorf("cannot focus the desktop root")
}
