//go:build darwin

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <unistd.h>

static void cg_move_mouse(double x, double y) {
	CGEventRef move = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved,
		CGPointMake(x, y), kCGMouseButtonLeft);
	CGEventPost(kCGHIDEventTap, move);
	CFRelease(move);
}

static void cg_mouse_position(double *x, double *y) {
	CGEventRef event = CGEventCreate(NULL);
	CGPoint point = CGEventGetLocation(event);
	CFRelease(event);
	*x = point.x;
	*y = point.y;
}

// Post a press/release pair at (x, y). button: 0 left, 1 right,
// 2 middle. clickCount sets the kCGMouseEventClickState field so
// double clicks register as such.
static void cg_click(double x, double y, int button, int clickCount) {
	CGPoint point = CGPointMake(x, y);
	CGEventType down, up;
	CGMouseButton mb;
	switch (button) {
	case 1:
		down = kCGEventRightMouseDown;
		up = kCGEventRightMouseUp;
		mb = kCGMouseButtonRight;
		break;
	case 2:
		down = kCGEventOtherMouseDown;
		up = kCGEventOtherMouseUp;
		mb = kCGMouseButtonCenter;
		break;
	default:
		down = kCGEventLeftMouseDown;
		up = kCGEventLeftMouseUp;
		mb = kCGMouseButtonLeft;
	}
	for (int i = 1; i <= clickCount; i++) {
		CGEventRef downEvent = CGEventCreateMouseEvent(NULL, down, point, mb);
		CGEventSetIntegerValueField(downEvent, kCGMouseEventClickState, i);
		CGEventPost(kCGHIDEventTap, downEvent);
		CFRelease(downEvent);

		CGEventRef upEvent = CGEventCreateMouseEvent(NULL, up, point, mb);
		CGEventSetIntegerValueField(upEvent, kCGMouseEventClickState, i);
		CGEventPost(kCGHIDEventTap, upEvent);
		CFRelease(upEvent);
	}
}

// Press at the current position, drag to (x, y), release.
static void cg_drag(double toX, double toY) {
	CGEventRef posEvent = CGEventCreate(NULL);
	CGPoint from = CGEventGetLocation(posEvent);
	CFRelease(posEvent);
	CGPoint to = CGPointMake(toX, toY);

	CGEventRef down = CGEventCreateMouseEvent(NULL, kCGEventLeftMouseDown, from, kCGMouseButtonLeft);
	CGEventPost(kCGHIDEventTap, down);
	CFRelease(down);

	// Intermediate drag events so targets tracking motion see it.
	for (int i = 1; i <= 10; i++) {
		CGPoint step = CGPointMake(
			from.x + (to.x - from.x) * i / 10.0,
			from.y + (to.y - from.y) * i / 10.0);
		CGEventRef move = CGEventCreateMouseEvent(NULL, kCGEventLeftMouseDragged, step, kCGMouseButtonLeft);
		CGEventPost(kCGHIDEventTap, move);
		CFRelease(move);
		usleep(10000);
	}

	CGEventRef up = CGEventCreateMouseEvent(NULL, kCGEventLeftMouseUp, to, kCGMouseButtonLeft);
	CGEventPost(kCGHIDEventTap, up);
	CFRelease(up);
}

static void cg_scroll(double x, double y, int dx, int dy) {
	CGEventRef move = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved,
		CGPointMake(x, y), kCGMouseButtonLeft);
	CGEventPost(kCGHIDEventTap, move);
	CFRelease(move);

	CGEventRef scroll = CGEventCreateScrollWheelEvent(NULL,
		kCGScrollEventUnitLine, 2, dy, dx);
	CGEventPost(kCGHIDEventTap, scroll);
	CFRelease(scroll);
}

// Type one character via a synthetic keyboard event carrying the
// unicode payload directly, bypassing keyboard layout lookup.
static void cg_type_char(unsigned short c) {
	UniChar ch = (UniChar)c;
	CGEventRef down = CGEventCreateKeyboardEvent(NULL, 0, true);
	CGEventKeyboardSetUnicodeString(down, 1, &ch);
	CGEventPost(kCGHIDEventTap, down);
	CFRelease(down);

	CGEventRef up = CGEventCreateKeyboardEvent(NULL, 0, false);
	CGEventKeyboardSetUnicodeString(up, 1, &ch);
	CGEventPost(kCGHIDEventTap, up);
	CFRelease(up);
}

// Press a key by virtual keycode with the given modifier flags held.
static void cg_key_press(int keycode, unsigned long long flags) {
	CGEventRef down = CGEventCreateKeyboardEvent(NULL, (CGKeyCode)keycode, true);
	CGEventSetFlags(down, (CGEventFlags)flags);
	CGEventPost(kCGHIDEventTap, down);
	CFRelease(down);

	CGEventRef up = CGEventCreateKeyboardEvent(NULL, (CGKeyCode)keycode, false);
	CGEventSetFlags(up, (CGEventFlags)flags);
	CGEventPost(kCGHIDEventTap, up);
	CFRelease(up);
}
*/
import "C"
import (
	"fmt"
	"strings"
	"time"

	"github.com/deskview/deskview/internal/platform"
)

// DarwinInputter implements platform.Inputter with CoreGraphics
// synthetic events posted to the HID event tap.
type DarwinInputter struct{}

// NewInputter creates a new macOS input event injector.
func NewInputter() *DarwinInputter {
	return &DarwinInputter{}
}

// Virtual keycodes from Carbon's Events.h. Letters and digits map to
// the ANSI layout positions.
var keycodes = map[string]int{
	"a": 0x00, "b": 0x0B, "c": 0x08, "d": 0x02, "e": 0x0E, "f": 0x03,
	"g": 0x05, "h": 0x04, "i": 0x22, "j": 0x26, "k": 0x28, "l": 0x25,
	"m": 0x2E, "n": 0x2D, "o": 0x1F, "p": 0x23, "q": 0x0C, "r": 0x0F,
	"s": 0x01, "t": 0x11, "u": 0x20, "v": 0x09, "w": 0x0D, "x": 0x07,
	"y": 0x10, "z": 0x06,
	"0": 0x1D, "1": 0x12, "2": 0x13, "3": 0x14, "4": 0x15,
	"5": 0x17, "6": 0x16, "7": 0x1A, "8": 0x1C, "9": 0x19,
	"enter": 0x24, "return": 0x24, "tab": 0x30, "space": 0x31,
	"delete": 0x33, "backspace": 0x33, "escape": 0x35, "esc": 0x35,
	"left": 0x7B, "right": 0x7C, "down": 0x7D, "up": 0x7E,
	"home": 0x73, "end": 0x77, "pageup": 0x74, "pagedown": 0x79,
	"f1": 0x7A, "f2": 0x78, "f3": 0x63, "f4": 0x76, "f5": 0x60,
	"f6": 0x61, "f7": 0x62, "f8": 0x64, "f9": 0x65, "f10": 0x6D,
	"f11": 0x67, "f12": 0x6F,
	"minus": 0x1B, "equals": 0x18, "comma": 0x2B, "period": 0x2F,
	"slash": 0x2C, "semicolon": 0x29, "quote": 0x27,
}

// modifierFlags maps modifier key names onto CGEventFlags bits.
var modifierFlags = map[string]uint64{
	"cmd": 1 << 20, "command": 1 << 20, "win": 1 << 20, "super": 1 << 20,
	"shift": 1 << 17,
	"alt":   1 << 19, "option": 1 << 19,
	"ctrl": 1 << 18, "control": 1 << 18,
}

func (in *DarwinInputter) MoveMouse(x, y int) error {
	C.cg_move_mouse(C.double(x), C.double(y))
	return nil
}

func (in *DarwinInputter) MousePosition() (int, int, error) {
	var x, y C.double
	C.cg_mouse_position(&x, &y)
	return int(x), int(y), nil
}

func (in *DarwinInputter) Click(x, y int, button platform.MouseButton, count int) error {
	if count < 1 {
		count = 1
	}
	C.cg_click(C.double(x), C.double(y), C.int(button), C.int(count))
	return nil
}

func (in *DarwinInputter) Drag(toX, toY int) error {
	C.cg_drag(C.double(toX), C.double(toY))
	return nil
}

func (in *DarwinInputter) Scroll(x, y, dx, dy int) error {
	C.cg_scroll(C.double(x), C.double(y), C.int(dx), C.int(dy))
	return nil
}

func (in *DarwinInputter) TypeText(text string, delayMs int) error {
	for _, r := range text {
		C.cg_type_char(C.ushort(r))
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}
	}
	return nil
}

// KeyCombo presses the final key with any leading modifiers held. A
// single-element combo is a plain key press.
func (in *DarwinInputter) KeyCombo(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("empty key combination")
	}

	var flags uint64
	for _, mod := range keys[:len(keys)-1] {
		flag, ok := modifierFlags[strings.ToLower(mod)]
		if !ok {
			return fmt.Errorf("unknown modifier key: %s", mod)
		}
		flags |= flag
	}

	key := strings.ToLower(keys[len(keys)-1])
	code, ok := keycodes[key]
	if !ok {
		return fmt.Errorf("unknown key: %s", key)
	}
	C.cg_key_press(C.int(code), C.ulonglong(flags))
	return nil
}
