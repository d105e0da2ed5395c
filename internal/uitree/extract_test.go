package uitree

import (
	"reflect"
	"strings"
	"testing"
)

// chain builds a linear tree of named Text nodes, n levels deep,
// returning the root.
func chain(n int) *fakeNode {
	node := &fakeNode{name: "leaf", controlType: "Text", rect: rect(0, 0, 100, 20)}
	for i := n - 1; i > 0; i-- {
		node = &fakeNode{
			name:        "level",
			controlType: "Text",
			rect:        rect(0, 0, 100, 20),
			children:    []*fakeNode{node},
		}
	}
	return node
}

func TestExtract_DepthNeverExceedsHardCap(t *testing.T) {
	root := chain(10)

	for _, requested := range []int{5, 7, 100} {
		result := Extract(root, requested)
		if result == nil {
			t.Fatalf("Extract(depth=%d) returned nil", requested)
		}
		height := 1
		node := result
		for len(node.Children) > 0 {
			node = &node.Children[0]
			height++
		}
		// Depth 0..5 inclusive = 6 levels.
		if height != MaxTreeDepth+1 {
			t.Errorf("Extract(depth=%d): got %d levels, want %d", requested, height, MaxTreeDepth+1)
		}
	}
}

func TestExtract_RespectsRequestedDepth(t *testing.T) {
	root := chain(10)
	result := Extract(root, 2)
	if result == nil {
		t.Fatal("Extract returned nil")
	}
	height := 1
	node := result
	for len(node.Children) > 0 {
		node = &node.Children[0]
		height++
	}
	if height != 3 {
		t.Errorf("got %d levels, want 3 (depth 0..2)", height)
	}
}

func TestExtract_AnonymousContainerWithoutContentIsOmitted(t *testing.T) {
	root := &fakeNode{controlType: "Pane", rect: rect(0, 0, 800, 600)}
	if result := Extract(root, 3); result != nil {
		t.Errorf("expected nil for empty anonymous container, got %+v", result)
	}
}

func TestExtract_ContainerKeptWhenDescendantIsSignificant(t *testing.T) {
	root := &fakeNode{
		controlType: "Pane",
		rect:        rect(0, 0, 800, 600),
		children: []*fakeNode{
			{
				controlType: "Pane",
				rect:        rect(0, 0, 800, 600),
				children: []*fakeNode{
					{name: "Save", controlType: "Button", rect: rect(10, 10, 80, 30)},
				},
			},
		},
	}

	result := Extract(root, 5)
	if result == nil {
		t.Fatal("expected container chain to be kept")
	}
	if len(result.Children) != 1 || len(result.Children[0].Children) != 1 {
		t.Fatalf("unexpected shape: %+v", result)
	}
	if result.Children[0].Children[0].Text != "Save" {
		t.Errorf("expected Save button, got %+v", result.Children[0].Children[0])
	}
}

func TestExtract_ZeroAreaExcludedRegardlessOfName(t *testing.T) {
	root := &fakeNode{
		name:        "Window",
		controlType: "Window",
		rect:        rect(0, 0, 800, 600),
		children: []*fakeNode{
			{name: "Hidden", controlType: "Button", rect: rect(10, 10, 0, 30)},
			{name: "Visible", controlType: "Button", rect: rect(10, 50, 80, 30)},
			{name: "Flat", controlType: "Button", rect: rect(10, 90, 80, 0)},
		},
	}

	result := Extract(root, 3)
	if result == nil {
		t.Fatal("Extract returned nil")
	}
	if len(result.Children) != 1 {
		t.Fatalf("expected 1 visible child, got %d", len(result.Children))
	}
	if result.Children[0].Text != "Visible" {
		t.Errorf("expected Visible, got %q", result.Children[0].Text)
	}
}

func TestExtract_EditValueIncluded(t *testing.T) {
	edit := &fakeNode{controlType: "Edit", value: "Hello World", rect: rect(0, 0, 200, 24)}
	result := Extract(edit, 1)
	if result == nil {
		t.Fatal("Extract returned nil")
	}
	if result.Value != "Hello World" {
		t.Errorf("got value %q, want %q", result.Value, "Hello World")
	}
}

func TestExtract_ValueIgnoredForNonEditControls(t *testing.T) {
	text := &fakeNode{name: "label", controlType: "Text", value: "should not appear", rect: rect(0, 0, 200, 24)}
	result := Extract(text, 1)
	if result == nil {
		t.Fatal("Extract returned nil")
	}
	if result.Value != "" {
		t.Errorf("non-Edit control leaked value %q", result.Value)
	}
}

func TestExtract_ClickablePointWithinBounds(t *testing.T) {
	button := &fakeNode{name: "OK", controlType: "Button", rect: rect(100, 200, 80, 30)}
	result := Extract(button, 1)
	if result == nil || result.ClickableAt == nil {
		t.Fatal("expected clickable point")
	}
	pt := *result.ClickableAt
	if pt.X != 140 || pt.Y != 215 {
		t.Errorf("got center (%d,%d), want (140,215)", pt.X, pt.Y)
	}
	if pt.X < 100 || pt.X >= 180 || pt.Y < 200 || pt.Y >= 230 {
		t.Errorf("center (%d,%d) outside bounding rectangle", pt.X, pt.Y)
	}
}

func TestExtract_NoClickablePointForStaticText(t *testing.T) {
	text := &fakeNode{name: "label", controlType: "Text", rect: rect(0, 0, 100, 20)}
	result := Extract(text, 1)
	if result == nil {
		t.Fatal("Extract returned nil")
	}
	if result.ClickableAt != nil {
		t.Errorf("static text should not be clickable, got %+v", result.ClickableAt)
	}
}

func TestExtract_ClickablePointOmittedWithoutRect(t *testing.T) {
	button := &fakeNode{name: "OK", controlType: "Button"}
	result := Extract(button, 1)
	if result == nil {
		t.Fatal("node without rect should still be emitted")
	}
	if result.ClickableAt != nil {
		t.Error("expected no clickable point when rect is unreadable")
	}
}

func TestExtract_Truncation(t *testing.T) {
	exact := strings.Repeat("a", TextLimit)
	over := strings.Repeat("b", TextLimit+1)

	root := &fakeNode{
		controlType: "Pane",
		rect:        rect(0, 0, 800, 600),
		children: []*fakeNode{
			{name: exact, controlType: "Text", rect: rect(0, 0, 100, 20)},
			{name: over, controlType: "Text", rect: rect(0, 30, 100, 20)},
		},
	}

	result := Extract(root, 2)
	if result == nil || len(result.Children) != 2 {
		t.Fatal("unexpected tree shape")
	}
	if got := result.Children[0].Text; got != exact {
		t.Errorf("name at exactly the limit should be preserved, got len %d", len(got))
	}
	if got := result.Children[1].Text; len(got) != TextLimit {
		t.Errorf("name one over the limit should be cut to %d, got %d", TextLimit, len(got))
	}
}

func TestExtract_PropertyFailureDropsFieldNotSiblings(t *testing.T) {
	root := &fakeNode{
		name:        "Window",
		controlType: "Window",
		rect:        rect(0, 0, 800, 600),
		children: []*fakeNode{
			{nameErr: true, controlType: "Button", rect: rect(0, 0, 80, 30)},
			{name: "Fine", controlType: "Button", rect: rect(0, 40, 80, 30)},
		},
	}

	result := Extract(root, 2)
	if result == nil {
		t.Fatal("Extract returned nil")
	}
	if len(result.Children) != 2 {
		t.Fatalf("expected both children (notable type survives name failure), got %d", len(result.Children))
	}
	if result.Children[0].Text != "" {
		t.Errorf("unreadable name should be absent, got %q", result.Children[0].Text)
	}
	if result.Children[1].Text != "Fine" {
		t.Errorf("sibling should be unaffected, got %q", result.Children[1].Text)
	}
}

func TestWindowTextContent_NotepadScenario(t *testing.T) {
	desktop := &fakeDesktop{
		foreground: &fakeNode{
			name:        "Untitled - Notepad",
			class:       "Notepad",
			controlType: "Window",
			rect:        rect(0, 0, 1024, 768),
			children: []*fakeNode{
				{controlType: "Edit", value: "Hello World", rect: rect(8, 60, 1008, 700)},
			},
		},
	}

	content, err := WindowTextContent(desktop, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Title != "Untitled - Notepad" {
		t.Errorf("got title %q", content.Title)
	}
	if content.Class != "Notepad" {
		t.Errorf("got class %q", content.Class)
	}
	if content.Content == nil {
		t.Fatal("expected content")
	}
	if content.Content.Text != "" {
		t.Errorf("window title should not repeat inside the tree, got %q", content.Content.Text)
	}
	if len(content.Content.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(content.Content.Children))
	}
	edit := content.Content.Children[0]
	if edit.Type != "Edit" || edit.Value != "Hello World" {
		t.Errorf("unexpected edit node: %+v", edit)
	}
	if edit.ClickableAt == nil {
		t.Error("Edit control should have a clickable point")
	}
}

func TestWindowTextContent_NoActiveWindow(t *testing.T) {
	_, err := WindowTextContent(&fakeDesktop{}, 3)
	if err != ErrNoActiveWindow {
		t.Errorf("got err %v, want ErrNoActiveWindow", err)
	}
}

func TestWindowTextContent_Idempotent(t *testing.T) {
	desktop := &fakeDesktop{
		foreground: &fakeNode{
			name:        "App",
			controlType: "Window",
			rect:        rect(0, 0, 800, 600),
			children: []*fakeNode{
				{name: "Save", controlType: "Button", rect: rect(10, 10, 80, 30)},
				{controlType: "Edit", value: "draft", rect: rect(10, 50, 300, 24)},
			},
		},
	}

	first, err := WindowTextContent(desktop, 5)
	if err != nil {
		t.Fatal(err)
	}
	second, err := WindowTextContent(desktop, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated reads of unchanged state differ:\n%+v\n%+v", first, second)
	}
}
