package uitree

import (
	"errors"
	"strings"

	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/platform"
)

// Root-acquisition failures, the only top-level (non-per-node) error
// mode. Everything else degrades to a partial but well-formed result.
var (
	ErrNoActiveWindow = errors.New("no active window found")
	ErrNoDesktopRoot  = errors.New("desktop root not available")
)

// ActiveWindow returns metadata for the currently focused window.
func ActiveWindow(desktop platform.Desktop) (*model.ActiveWindow, error) {
	window, ok := desktop.Foreground()
	if !ok {
		return nil, ErrNoActiveWindow
	}

	name, _ := window.Name()
	class, _ := window.Class()

	info := &model.ActiveWindow{
		Name:        name,
		Class:       class,
		ControlType: window.ControlType(),
	}
	if rect, ok := window.Bounds(); ok {
		info.Position = model.Point{X: rect.Left, Y: rect.Top}
		info.Size = model.Size{Width: rect.Width, Height: rect.Height}
	}
	return info, nil
}

// ListWindows enumerates visible top-level windows, plus any named
// child/dialog windows one level down (reported with ParentTitle set).
// Windows with a zero-area rectangle (minimized) are omitted.
func ListWindows(desktop platform.Desktop) ([]model.WindowInfo, error) {
	root, ok := desktop.Root()
	if !ok {
		return nil, ErrNoDesktopRoot
	}

	var windows []model.WindowInfo
	for _, node := range root.Children() {
		info, ok := windowInfo(node, "")
		if !ok {
			continue
		}
		windows = append(windows, info)

		// Dialogs and child windows live one level below their owner.
		for _, child := range node.Children() {
			if childInfo, ok := windowInfo(child, info.Title); ok {
				windows = append(windows, childInfo)
			}
		}
	}
	return windows, nil
}

// windowInfo converts a node into a WindowInfo if it is a named,
// visible window.
func windowInfo(node platform.Node, parentTitle string) (model.WindowInfo, bool) {
	if node.ControlType() != "Window" {
		return model.WindowInfo{}, false
	}
	name, _ := node.Name()
	if name == "" {
		return model.WindowInfo{}, false
	}

	class, _ := node.Class()
	info := model.WindowInfo{
		Title:       name,
		Class:       class,
		ParentTitle: parentTitle,
	}

	if rect, ok := node.Bounds(); ok {
		if rect.Empty() {
			return model.WindowInfo{}, false
		}
		info.Position = &model.Point{X: rect.Left, Y: rect.Top}
		info.Size = &model.Size{Width: rect.Width, Height: rect.Height}
	}
	return info, true
}

// FocusWindow brings the first window whose title contains title
// (case-insensitive) to the foreground and returns its full title.
// ok is false when no window matched.
func FocusWindow(desktop platform.Desktop, title string) (matched string, ok bool, err error) {
	root, rootOK := desktop.Root()
	if !rootOK {
		return "", false, ErrNoDesktopRoot
	}

	query := strings.ToLower(title)
	for _, node := range root.Children() {
		if node.ControlType() != "Window" {
			continue
		}
		name, _ := node.Name()
		if name == "" || !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		if err := node.Focus(); err != nil {
			return name, true, err
		}
		return name, true, nil
	}
	return "", false, nil
}
