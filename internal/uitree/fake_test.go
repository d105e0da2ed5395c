package uitree

import (
	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/platform"
)

// fakeNode is an in-memory platform.Node for tests. Any accessor can be
// made to fail independently, mirroring how live accessibility elements
// behave.
type fakeNode struct {
	name        string
	class       string
	controlType string
	value       string
	rect        *model.Rect

	nameErr     bool
	classErr    bool
	valueErr    bool
	childrenErr bool

	children []*fakeNode

	focusErr    error
	focusCalled bool
}

func (f *fakeNode) Name() (string, bool) {
	if f.nameErr {
		return "", false
	}
	return f.name, true
}

func (f *fakeNode) Class() (string, bool) {
	if f.classErr {
		return "", false
	}
	return f.class, true
}

func (f *fakeNode) ControlType() string { return f.controlType }

func (f *fakeNode) Bounds() (model.Rect, bool) {
	if f.rect == nil {
		return model.Rect{}, false
	}
	return *f.rect, true
}

func (f *fakeNode) Children() []platform.Node {
	if f.childrenErr {
		return nil
	}
	nodes := make([]platform.Node, len(f.children))
	for i, c := range f.children {
		nodes[i] = c
	}
	return nodes
}

func (f *fakeNode) Value() (string, bool) {
	if f.valueErr {
		return "", false
	}
	return f.value, true
}

func (f *fakeNode) Focus() error {
	f.focusCalled = true
	return f.focusErr
}

// fakeDesktop supplies fake roots. A nil field means that root cannot
// be acquired.
type fakeDesktop struct {
	foreground *fakeNode
	root       *fakeNode
}

func (d *fakeDesktop) Foreground() (platform.Node, bool) {
	if d.foreground == nil {
		return nil, false
	}
	return d.foreground, true
}

func (d *fakeDesktop) Root() (platform.Node, bool) {
	if d.root == nil {
		return nil, false
	}
	return d.root, true
}

// rect is shorthand for building visible bounding rectangles.
func rect(left, top, width, height int) *model.Rect {
	return &model.Rect{Left: left, Top: top, Width: width, Height: height}
}
