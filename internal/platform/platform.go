package platform

import "github.com/deskview/deskview/internal/model"

// Node is a read-only view over one element of the OS accessibility tree.
//
// Every accessor may independently fail on a live tree (disposed element,
// access denied, unresponsive process). A failed read reports ok == false
// and never aborts the surrounding traversal; Children returns an empty
// slice when enumeration fails. The element's lifetime is owned entirely
// by the OS layer.
type Node interface {
	// Name returns the element's visible label, if readable.
	Name() (string, bool)

	// Class returns the element's class name, if readable.
	Class() (string, bool)

	// ControlType returns the element's role classification
	// (Button, Edit, Text, ListItem, ...). Unreadable roles map to "".
	ControlType() string

	// Bounds returns the element's bounding rectangle in absolute
	// screen coordinates, if readable.
	Bounds() (model.Rect, bool)

	// Children enumerates the element's direct children.
	Children() []Node

	// Value returns the current value of an editable control, if
	// readable. Only meaningful for Edit-type controls.
	Value() (string, bool)

	// Focus brings the element (typically a window) to the foreground.
	Focus() error
}

// Desktop supplies the traversal roots. Implementations re-read live OS
// state on every call; nothing is cached between calls.
type Desktop interface {
	// Foreground returns the active/focused window, if any.
	Foreground() (Node, bool)

	// Root returns the desktop root whose children are the top-level
	// windows, if obtainable.
	Root() (Node, bool)
}

// Inputter simulates mouse and keyboard input.
type Inputter interface {
	Click(x, y int, button MouseButton, count int) error
	MoveMouse(x, y int) error
	MousePosition() (x, y int, err error)
	Scroll(x, y int, dx, dy int) error
	Drag(toX, toY int) error
	TypeText(text string, delayMs int) error
	KeyCombo(keys []string) error
}

// Screen reports display geometry and captures pixels.
type Screen interface {
	Size() (model.Size, error)

	// CaptureRegion captures the given screen rectangle and returns
	// PNG-encoded bytes.
	CaptureRegion(x, y, width, height int) ([]byte, error)
}
