package model

// Rect is a screen rectangle in absolute coordinates.
type Rect struct {
	Left   int `yaml:"left"   json:"left"`
	Top    int `yaml:"top"    json:"top"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Empty reports whether the rectangle has zero width or height.
// Elements with empty rectangles are invisible (minimized, off-screen,
// or virtualized) and are never surfaced to the agent.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Center returns the rectangle's center point using integer division,
// the coordinate used to target input-injection calls.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Point is an absolute screen coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Size is a width/height pair in screen pixels.
type Size struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// TreeNode is one element of the filtered UI tree returned to the agent.
// A node appears in output only if it is significant: it has a name, a
// notable control type, or at least one significant descendant.
type TreeNode struct {
	Type        string     `yaml:"type"                   json:"type"`
	Text        string     `yaml:"text,omitempty"         json:"text,omitempty"`
	Value       string     `yaml:"value,omitempty"        json:"value,omitempty"`
	ClickableAt *Point     `yaml:"clickable_at,omitempty" json:"clickable_at,omitempty"`
	Children    []TreeNode `yaml:"children,omitempty"     json:"children,omitempty"`
}

// WindowContent is the result of a text-content read: the window's
// title and class reported once at the top, plus the filtered tree.
// Content is nil when the window contains nothing significant.
type WindowContent struct {
	Title   string    `yaml:"window_title" json:"window_title"`
	Class   string    `yaml:"window_class" json:"window_class"`
	Content *TreeNode `yaml:"content"      json:"content"`
}

// SearchMatch is one hit from a text search. ClickX/ClickY are set only
// when the element's bounding rectangle was resolvable.
type SearchMatch struct {
	Text   string `yaml:"text"              json:"text"`
	Type   string `yaml:"type"              json:"type"`
	ClickX *int   `yaml:"click_x,omitempty" json:"click_x,omitempty"`
	ClickY *int   `yaml:"click_y,omitempty" json:"click_y,omitempty"`
}

// WindowInfo describes one entry in a window listing. ParentTitle is set
// for child/dialog windows nested under another window.
type WindowInfo struct {
	Title       string `yaml:"title"                  json:"title"`
	Class       string `yaml:"class"                  json:"class"`
	Position    *Point `yaml:"position,omitempty"     json:"position,omitempty"`
	Size        *Size  `yaml:"size,omitempty"         json:"size,omitempty"`
	ParentTitle string `yaml:"parent_title,omitempty" json:"parent_title,omitempty"`
}

// ActiveWindow describes the currently focused window.
type ActiveWindow struct {
	Name        string `yaml:"name"         json:"name"`
	Class       string `yaml:"class_name"   json:"class_name"`
	ControlType string `yaml:"control_type" json:"control_type"`
	Position    Point  `yaml:"position"     json:"position"`
	Size        Size   `yaml:"size"         json:"size"`
}
