package cmd

import (
	"fmt"

	"github.com/deskview/deskview/internal/platform"
	"github.com/deskview/deskview/internal/uitree"
)

// messageEntry is the informational (non-error) entry returned when a
// search matches nothing.
type messageEntry struct {
	Message string `yaml:"message" json:"message"`
}

// errorEntry is the top-level error shape for list-style results.
type errorEntry struct {
	Error string `yaml:"error" json:"error"`
}

func noElementsMessage(text string) string {
	return fmt.Sprintf("No elements found containing '%s'", text)
}

// clickElementByText finds the first element matching text (and optional
// control type) and clicks its center. The returned string is the
// caller-facing result: a confirmation, a "could not find" notice, or an
// input-injection error. A match without resolvable coordinates is not
// clickable.
func clickElementByText(provider *platform.Provider, text, controlType string) string {
	matches := uitree.Find(provider.Desktop, text, controlType)
	if len(matches) == 0 || matches[0].ClickX == nil || matches[0].ClickY == nil {
		return fmt.Sprintf("Could not find clickable element containing '%s'", text)
	}

	m := matches[0]
	if err := provider.Inputter.Click(*m.ClickX, *m.ClickY, platform.MouseLeft, 1); err != nil {
		return fmt.Sprintf("Error: %s", err)
	}
	return fmt.Sprintf("Clicked '%s' at (%d, %d)", m.Text, *m.ClickX, *m.ClickY)
}

// focusWindowByTitle focuses the first window whose title contains title
// and returns the caller-facing result string.
func focusWindowByTitle(provider *platform.Provider, title string) string {
	matched, ok, err := uitree.FocusWindow(provider.Desktop, title)
	if err != nil {
		return fmt.Sprintf("Error: %s", err)
	}
	if !ok {
		return fmt.Sprintf("No window found matching '%s'", title)
	}
	return fmt.Sprintf("Focused window: %s", matched)
}

// stringParam reads a string argument from an MCP tool call.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// intParam reads a numeric argument from an MCP tool call. MCP clients
// send numbers as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// boolParam reads a boolean argument from an MCP tool call.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
