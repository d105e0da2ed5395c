package uitree

import (
	"strings"

	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/platform"
)

// Find searches for elements whose name contains text, case-insensitive.
// If controlType is non-empty, an element's control type must equal it
// exactly.
//
// The search runs in two phases: first scoped to the active window's
// subtree, then — only if that yields nothing — broadened to the desktop
// root, starting the depth count at an offset so the full desktop tree
// stays cheap to walk. An empty result after both phases is a legitimate
// outcome, not an error.
func Find(desktop platform.Desktop, text, controlType string) []model.SearchMatch {
	query := strings.ToLower(text)

	var matches []model.SearchMatch
	if window, ok := desktop.Foreground(); ok {
		matches = search(window, 0, query, controlType)
	}
	if len(matches) == 0 {
		if root, ok := desktop.Root(); ok {
			matches = search(root, desktopSearchOffset, query, controlType)
		}
	}
	return matches
}

func search(n platform.Node, depth int, query, controlType string) []model.SearchMatch {
	if depth > MaxSearchDepth {
		return nil
	}

	var matches []model.SearchMatch

	name, _ := n.Name()
	elemType := n.ControlType()

	if name != "" && strings.Contains(strings.ToLower(name), query) &&
		(controlType == "" || elemType == controlType) {
		rect, hasRect := n.Bounds()
		// A readable zero-area rectangle means the element is
		// invisible: suppress the match. An unreadable rectangle
		// still yields a match, just without coordinates.
		if !hasRect || !rect.Empty() {
			match := model.SearchMatch{
				Text: truncate(name, TextLimit),
				Type: elemType,
			}
			if hasRect {
				center := rect.Center()
				match.ClickX = &center.X
				match.ClickY = &center.Y
			}
			matches = append(matches, match)
		}
	}

	for _, child := range n.Children() {
		matches = append(matches, search(child, depth+1, query, controlType)...)
	}
	return matches
}
