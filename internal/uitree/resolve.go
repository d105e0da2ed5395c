// Package uitree walks the live OS accessibility tree and projects it
// into the bounded, filtered structures served to automation agents:
// a depth-capped text tree, substring search with fallback broadening,
// and window metadata. The walk is read-only and stateless; every call
// re-reads live OS state through the platform layer.
package uitree

import (
	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/platform"
)

// Hard traversal bounds. The external tree's size and fan-out are not
// under our control, so recursion is always capped regardless of what
// the caller asks for.
const (
	// MaxTreeDepth caps text-content extraction.
	MaxTreeDepth = 5

	// MaxSearchDepth caps element search.
	MaxSearchDepth = 6

	// TextLimit is the maximum length of any text or value field in
	// output. Longer strings are cut, never dropped.
	TextLimit = 200

	// desktopSearchOffset is the depth at which a desktop-wide search
	// starts counting, skipping the top structural levels to bound
	// cost over the full desktop tree.
	desktopSearchOffset = 2
)

// notableTypes are control types that carry meaningful content even
// when unnamed, so they are always kept in the extracted tree.
var notableTypes = map[string]bool{
	"Edit":     true,
	"Text":     true,
	"Button":   true,
	"ListItem": true,
	"MenuItem": true,
	"TreeItem": true,
	"TabItem":  true,
	"Document": true,
}

// interactiveTypes are control types an agent can usefully click, so
// the extractor reports a clickable center point for them.
var interactiveTypes = map[string]bool{
	"Button":      true,
	"Edit":        true,
	"ListItem":    true,
	"MenuItem":    true,
	"TabItem":     true,
	"Link":        true,
	"CheckBox":    true,
	"RadioButton": true,
}

// clickablePoint resolves the clickable center of an interactive
// element. Non-interactive types, unreadable rectangles, and zero-area
// rectangles all yield no point; none of these fail the node.
func clickablePoint(n platform.Node) (model.Point, bool) {
	if !interactiveTypes[n.ControlType()] {
		return model.Point{}, false
	}
	rect, ok := n.Bounds()
	if !ok || rect.Empty() {
		return model.Point{}, false
	}
	return rect.Center(), true
}

// truncate cuts s to at most limit characters, never splitting a rune,
// so output text stays valid UTF-8. UI element names are short in
// practice; the limit exists to bound pathological cases.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
