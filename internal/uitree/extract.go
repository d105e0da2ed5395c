package uitree

import (
	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/platform"
)

// Extract walks the accessibility tree under root and returns the
// filtered text tree, or nil if nothing under root is significant.
//
// maxDepth is clamped to MaxTreeDepth. A node is emitted iff it is
// significant: it has a non-empty name, a notable control type, or at
// least one significant descendant. Insignificant nodes are omitted
// entirely, collapsing chains of anonymous containers. Nodes whose
// bounding rectangle has zero width or height are treated as invisible
// and excluded along with their subtrees.
//
// Failures are per-node: an unreadable property yields an absent field,
// and a node that cannot be processed is dropped while its siblings
// continue. Extract itself never returns an error.
func Extract(root platform.Node, maxDepth int) *model.TreeNode {
	if maxDepth > MaxTreeDepth {
		maxDepth = MaxTreeDepth
	}
	if maxDepth < 0 {
		maxDepth = 0
	}
	return extract(root, 0, maxDepth)
}

func extract(n platform.Node, depth, maxDepth int) *model.TreeNode {
	if depth > maxDepth {
		return nil
	}

	// Zero-area elements are invisible; skip them and everything below.
	if rect, ok := n.Bounds(); ok && rect.Empty() {
		return nil
	}

	name, _ := n.Name()
	controlType := n.ControlType()

	var children []model.TreeNode
	if depth < maxDepth {
		for _, child := range n.Children() {
			if cn := extract(child, depth+1, maxDepth); cn != nil {
				children = append(children, *cn)
			}
		}
	}

	if name == "" && !notableTypes[controlType] && len(children) == 0 {
		return nil
	}

	node := &model.TreeNode{
		Type:     controlType,
		Children: children,
	}
	if name != "" {
		node.Text = truncate(name, TextLimit)
	}
	if controlType == "Edit" {
		if value, ok := n.Value(); ok && value != "" {
			node.Value = truncate(value, TextLimit)
		}
	}
	if pt, ok := clickablePoint(n); ok {
		node.ClickableAt = &pt
	}
	return node
}

// WindowTextContent extracts the readable content of the active window.
// The window's title and class are reported once at the top of the
// result; the root tree node carries only the window's control type and
// children. Returns an error only when no active window can be acquired.
func WindowTextContent(desktop platform.Desktop, maxDepth int) (*model.WindowContent, error) {
	window, ok := desktop.Foreground()
	if !ok {
		return nil, ErrNoActiveWindow
	}

	title, _ := window.Name()
	class, _ := window.Class()

	content := Extract(window, maxDepth)
	if content != nil {
		// Title already reported at the top of the result.
		content.Text = ""
	}

	return &model.WindowContent{
		Title:   title,
		Class:   class,
		Content: content,
	}, nil
}
