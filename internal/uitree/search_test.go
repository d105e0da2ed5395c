package uitree

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFind_CaseInsensitiveSubstring(t *testing.T) {
	desktop := &fakeDesktop{
		foreground: &fakeNode{
			name:        "App",
			controlType: "Window",
			rect:        rect(0, 0, 800, 600),
			children: []*fakeNode{
				{name: "OK Button", controlType: "Button", rect: rect(10, 10, 80, 30)},
			},
		},
	}

	matches := Find(desktop, "ok", "")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Text != "OK Button" {
		t.Errorf("got %q", matches[0].Text)
	}
}

func TestFind_ControlTypeFilterIsExact(t *testing.T) {
	desktop := &fakeDesktop{
		foreground: &fakeNode{
			name:        "App",
			controlType: "Window",
			rect:        rect(0, 0, 800, 600),
			children: []*fakeNode{
				{name: "Save As", controlType: "Button", rect: rect(100, 200, 80, 30)},
				{name: "Save As", controlType: "Text", rect: rect(100, 240, 80, 20)},
				{name: "Save As", controlType: "ButtonLike", rect: rect(100, 280, 80, 30)},
			},
		},
	}

	matches := Find(desktop, "Save", "Button")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.Text != "Save As" || m.Type != "Button" {
		t.Errorf("unexpected match: %+v", m)
	}
	if m.ClickX == nil || m.ClickY == nil {
		t.Fatal("expected coordinates")
	}
	if *m.ClickX != 140 || *m.ClickY != 215 {
		t.Errorf("got (%d,%d), want rectangle center (140,215)", *m.ClickX, *m.ClickY)
	}
}

func TestFind_CoordinatesIndependentOfInteractiveSet(t *testing.T) {
	// Static text is never "clickable" in tree extraction, but search
	// reports any matched element's rectangle center.
	desktop := &fakeDesktop{
		foreground: &fakeNode{
			name:        "Status: ready",
			controlType: "Text",
			rect:        rect(0, 0, 200, 20),
		},
	}

	matches := Find(desktop, "ready", "")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].ClickX == nil || matches[0].ClickY == nil {
		t.Error("expected coordinates for matched static text")
	}
}

func TestFind_MatchWithoutRectHasNoCoordinates(t *testing.T) {
	desktop := &fakeDesktop{
		foreground: &fakeNode{
			name:        "Ghost",
			controlType: "Button",
		},
	}

	matches := Find(desktop, "ghost", "")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].ClickX != nil || matches[0].ClickY != nil {
		t.Error("unreadable rect should yield a match without coordinates")
	}
}

func TestFind_ZeroAreaMatchSuppressed(t *testing.T) {
	desktop := &fakeDesktop{
		foreground: &fakeNode{
			name:        "App",
			controlType: "Window",
			rect:        rect(0, 0, 800, 600),
			children: []*fakeNode{
				{name: "Cancel", controlType: "Button", rect: rect(10, 10, 0, 0)},
			},
		},
	}

	if matches := Find(desktop, "app", ""); len(matches) != 1 {
		t.Fatalf("window itself should match, got %d matches", len(matches))
	}
	if matches := Find(desktop, "cancel", ""); len(matches) != 0 {
		t.Errorf("zero-area element should never be emitted, got %+v", matches)
	}
}

func TestFind_DepthBound(t *testing.T) {
	// A match MaxSearchDepth levels below the window is found; one
	// level further is pruned.
	build := func(levels int) *fakeNode {
		node := &fakeNode{name: "target", controlType: "Button", rect: rect(0, 0, 80, 30)}
		for i := 0; i < levels; i++ {
			node = &fakeNode{controlType: "Pane", rect: rect(0, 0, 800, 600), children: []*fakeNode{node}}
		}
		return node
	}

	within := &fakeDesktop{foreground: build(MaxSearchDepth)}
	if matches := Find(within, "target", ""); len(matches) != 1 {
		t.Errorf("match at the depth bound should be found, got %d", len(matches))
	}

	// One level past the bound: phase 1 finds nothing, and with no
	// desktop root the result stays empty.
	beyond := &fakeDesktop{foreground: build(MaxSearchDepth + 1)}
	if matches := Find(beyond, "target", ""); len(matches) != 0 {
		t.Errorf("match beyond the depth bound should be pruned, got %d", len(matches))
	}
}

func TestFind_FallbackTriggersOnlyWhenPhaseOneEmpty(t *testing.T) {
	window := &fakeNode{
		name:        "Editor",
		controlType: "Window",
		rect:        rect(0, 0, 800, 600),
		children: []*fakeNode{
			{name: "Save", controlType: "Button", rect: rect(10, 10, 80, 30)},
		},
	}
	root := &fakeNode{
		controlType: "Pane",
		rect:        rect(0, 0, 1920, 1080),
		children: []*fakeNode{
			window,
			{
				name:        "Other App",
				controlType: "Window",
				rect:        rect(800, 0, 800, 600),
				children: []*fakeNode{
					{name: "Save Elsewhere", controlType: "Button", rect: rect(810, 10, 120, 30)},
					{name: "Quit", controlType: "Button", rect: rect(810, 50, 80, 30)},
				},
			},
		},
	}
	desktop := &fakeDesktop{foreground: window, root: root}

	// Phase 1 finds "Save" in the active window; the other window's
	// "Save Elsewhere" must NOT appear.
	matches := Find(desktop, "save", "")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match from the active window, got %d", len(matches))
	}
	if matches[0].Text != "Save" {
		t.Errorf("got %q, want phase-1 match", matches[0].Text)
	}

	// "Quit" exists only outside the active window: phase 2 finds it.
	matches = Find(desktop, "quit", "")
	if len(matches) != 1 {
		t.Fatalf("expected fallback match, got %d", len(matches))
	}
	if matches[0].Text != "Quit" {
		t.Errorf("got %q", matches[0].Text)
	}
}

func TestFind_FallbackDepthOffset(t *testing.T) {
	// The desktop-wide phase starts its depth count at an offset, so
	// only MaxSearchDepth-desktopSearchOffset levels below the root
	// are reachable.
	build := func(levels int) *fakeNode {
		node := &fakeNode{name: "needle", controlType: "Button", rect: rect(0, 0, 80, 30)}
		for i := 0; i < levels; i++ {
			node = &fakeNode{controlType: "Pane", rect: rect(0, 0, 800, 600), children: []*fakeNode{node}}
		}
		return node
	}

	reachable := MaxSearchDepth - desktopSearchOffset

	desktop := &fakeDesktop{root: build(reachable)}
	if matches := Find(desktop, "needle", ""); len(matches) != 1 {
		t.Errorf("expected match within the offset-adjusted bound, got %d", len(matches))
	}

	desktop = &fakeDesktop{root: build(reachable + 1)}
	if matches := Find(desktop, "needle", ""); len(matches) != 0 {
		t.Errorf("expected pruning past the offset-adjusted bound, got %d", len(matches))
	}
}

func TestFind_NoRootsYieldsEmpty(t *testing.T) {
	if matches := Find(&fakeDesktop{}, "anything", ""); len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestFind_TruncatesMatchText(t *testing.T) {
	long := strings.Repeat("x", TextLimit+50)
	desktop := &fakeDesktop{
		foreground: &fakeNode{name: long, controlType: "Text", rect: rect(0, 0, 100, 20)},
	}
	matches := Find(desktop, "xxx", "")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if len(matches[0].Text) != TextLimit {
		t.Errorf("got text length %d, want %d", len(matches[0].Text), TextLimit)
	}
}

func TestFind_MultibyteNameTruncatesOnRuneBoundary(t *testing.T) {
	// A two-byte rune straddling the truncation boundary must not be
	// split; the match text has to stay valid UTF-8 or downstream
	// encoders fall back to opaque binary serialization.
	name := strings.Repeat("a", TextLimit-1) + "é"
	desktop := &fakeDesktop{
		foreground: &fakeNode{name: name, controlType: "Text", rect: rect(0, 0, 100, 20)},
	}

	matches := Find(desktop, "aaa", "")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if !utf8.ValidString(matches[0].Text) {
		t.Fatalf("match text is not valid UTF-8: %q", matches[0].Text)
	}
	if matches[0].Text != name {
		t.Errorf("name of exactly %d characters should survive intact", TextLimit)
	}
}

func TestFind_Idempotent(t *testing.T) {
	desktop := &fakeDesktop{
		foreground: &fakeNode{
			name:        "App",
			controlType: "Window",
			rect:        rect(0, 0, 800, 600),
			children: []*fakeNode{
				{name: "Alpha", controlType: "Button", rect: rect(0, 0, 50, 20)},
				{name: "Alphabet", controlType: "Text", rect: rect(0, 30, 50, 20)},
			},
		},
	}

	first := Find(desktop, "alpha", "")
	second := Find(desktop, "alpha", "")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated searches of unchanged state differ")
	}
	if len(first) != 2 {
		t.Errorf("expected 2 matches in document order, got %d", len(first))
	}
}
