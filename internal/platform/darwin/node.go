//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework AppKit -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

// Copy a string-valued attribute. Returns a malloc'd UTF-8 string the
// caller must free, or NULL when the attribute is unreadable.
static char *ax_copy_string_attr(AXUIElementRef el, const char *attr) {
	CFStringRef attrName = CFStringCreateWithCString(NULL, attr, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(el, attrName, &value);
	CFRelease(attrName);
	if (err != kAXErrorSuccess || value == NULL) {
		return NULL;
	}
	if (CFGetTypeID(value) != CFStringGetTypeID()) {
		CFRelease(value);
		return NULL;
	}
	CFIndex length = CFStringGetLength((CFStringRef)value);
	CFIndex maxSize = CFStringGetMaximumSizeForEncoding(length, kCFStringEncodingUTF8) + 1;
	char *buf = malloc(maxSize);
	if (!CFStringGetCString((CFStringRef)value, buf, maxSize, kCFStringEncodingUTF8)) {
		free(buf);
		CFRelease(value);
		return NULL;
	}
	CFRelease(value);
	return buf;
}

// Read the element's frame in screen coordinates. Returns 0 on success.
static int ax_copy_frame(AXUIElementRef el, double *x, double *y, double *w, double *h) {
	CFTypeRef posValue = NULL, sizeValue = NULL;
	if (AXUIElementCopyAttributeValue(el, kAXPositionAttribute, &posValue) != kAXErrorSuccess) {
		return -1;
	}
	if (AXUIElementCopyAttributeValue(el, kAXSizeAttribute, &sizeValue) != kAXErrorSuccess) {
		CFRelease(posValue);
		return -1;
	}
	CGPoint point;
	CGSize size;
	int ok = AXValueGetValue((AXValueRef)posValue, kAXValueTypeCGPoint, &point) &&
		AXValueGetValue((AXValueRef)sizeValue, kAXValueTypeCGSize, &size);
	CFRelease(posValue);
	CFRelease(sizeValue);
	if (!ok) {
		return -1;
	}
	*x = point.x;
	*y = point.y;
	*w = size.width;
	*h = size.height;
	return 0;
}

// Copy the element's children into a malloc'd array of retained refs.
// The caller must CFRelease each ref and free the array. Returns the
// child count, or -1 when enumeration fails.
static int ax_copy_children(AXUIElementRef el, AXUIElementRef **out) {
	CFTypeRef value = NULL;
	if (AXUIElementCopyAttributeValue(el, kAXChildrenAttribute, &value) != kAXErrorSuccess || value == NULL) {
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
		AXUIElementRef child = (AXUIElementRef)CFArrayGetValueAtIndex(array, i);
		CFRetain(child);
		refs[i] = child;
	}
	CFRelease(value);
	*out = refs;
	return (int)count;
}

// Raise the element's window and activate its owning application.
static int ax_focus_element(AXUIElementRef el) {
	AXUIElementPerformAction(el, kAXRaiseAction);

	pid_t pid = 0;
	if (AXUIElementGetPid(el, &pid) != kAXErrorSuccess) {
		return -1;
	}
	NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
	if (app == nil) {
		return -1;
	}
	[app activateWithOptions:NSApplicationActivateIgnoringOtherApps];
	return 0;
}

static void ax_release(AXUIElementRef el) {
	CFRelease(el);
}
*/
import "C"
import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/platform"
)

// roleToControlType maps macOS AXRole values onto the control-type
// vocabulary used in output (Button, Edit, Text, ...).
var roleToControlType = map[string]string{
	"AXWindow":      "Window",
	"AXSheet":       "Window",
	"AXDialog":      "Window",
	"AXButton":      "Button",
	"AXTextField":   "Edit",
	"AXTextArea":    "Edit",
	"AXComboBox":    "Edit",
	"AXSearchField": "Edit",
	"AXStaticText":  "Text",
	"AXLink":        "Link",
	"AXCheckBox":    "CheckBox",
	"AXRadioButton": "RadioButton",
	"AXMenuItem":    "MenuItem",
	"AXMenuBarItem": "MenuItem",
	"AXRow":         "ListItem",
	"AXCell":        "ListItem",
	"AXOutlineRow":  "TreeItem",
	"AXTabButton":   "TabItem",
	"AXWebArea":     "Document",
	"AXGroup":       "Pane",
	"AXSplitGroup":  "Pane",
	"AXScrollArea":  "Pane",
	"AXApplication": "Pane",
	"AXImage":       "Image",
	"AXToolbar":     "ToolBar",
	"AXList":        "List",
	"AXTable":       "List",
	"AXMenu":        "Menu",
	"AXMenuBar":     "MenuBar",
}

// axNode adapts one AXUIElementRef to platform.Node. The ref is owned
// by the node and released when it is garbage collected; the underlying
// element's lifetime is owned by the OS and any read may fail once the
// element is gone.
type axNode struct {
	ref C.AXUIElementRef
}

// newAXNode wraps an already-retained ref.
func newAXNode(ref C.AXUIElementRef) *axNode {
	n := &axNode{ref: ref}
	runtime.SetFinalizer(n, func(n *axNode) {
		C.ax_release(n.ref)
	})
	return n
}

func (n *axNode) stringAttr(attr string) (string, bool) {
	cattr := C.CString(attr)
	defer C.free(unsafe.Pointer(cattr))

	cstr := C.ax_copy_string_attr(n.ref, cattr)
	if cstr == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(cstr))
	return C.GoString(cstr), true
}

func (n *axNode) Name() (string, bool) {
	return n.stringAttr("AXTitle")
}

// Class returns the raw accessibility role (e.g. "AXWindow"), the
// closest macOS analogue of a window class name.
func (n *axNode) Class() (string, bool) {
	return n.stringAttr("AXRole")
}

func (n *axNode) ControlType() string {
	role, ok := n.stringAttr("AXRole")
	if !ok {
		return ""
	}
	if ct, ok := roleToControlType[role]; ok {
		return ct
	}
	return strings.TrimPrefix(role, "AX")
}

func (n *axNode) Bounds() (model.Rect, bool) {
	var x, y, w, h C.double
	if C.ax_copy_frame(n.ref, &x, &y, &w, &h) != 0 {
		return model.Rect{}, false
	}
	return model.Rect{
		Left:   int(x),
		Top:    int(y),
		Width:  int(w),
		Height: int(h),
	}, true
}

func (n *axNode) Children() []platform.Node {
	var refs *C.AXUIElementRef
	count := int(C.ax_copy_children(n.ref, &refs))
	if count < 0 {
		return nil
	}
	defer C.free(unsafe.Pointer(refs))

	if count == 0 {
		return nil
	}
	slice := unsafe.Slice(refs, count)
	children := make([]platform.Node, count)
	for i, ref := range slice {
		children[i] = newAXNode(ref)
	}
	return children
}

func (n *axNode) Value() (string, bool) {
	return n.stringAttr("AXValue")
}

func (n *axNode) Focus() error {
	if C.ax_focus_element(n.ref) != 0 {
		return fmt.Errorf("failed to focus element")
	}
	return nil
}
