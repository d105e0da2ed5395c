package cmd

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/platform"
	"github.com/deskview/deskview/internal/uitree"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider   *platform.Provider
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
	logger     *slog.Logger
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all deskview tools.
func newMCPServer() (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		provider: provider,
		logger:   slog.Default(),
	}

	s.mcp = mcpserver.NewMCPServer(
		"deskview",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	s.logger.Info("starting MCP server", "transport", cfg.Transport)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

// handler wraps a tool handler with provider locking and invocation
// logging. MCP transports may deliver concurrent calls, but the OS
// accessibility layer is touched one call at a time.
func (s *mcpServer) handler(name string, fn func(params map[string]interface{}) (*mcp.CallToolResult, error)) mcpserver.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		s.providerMu.Lock()
		result, err := fn(request.GetArguments())
		s.providerMu.Unlock()

		s.logger.Info("tool call",
			"tool", name,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err != nil || (result != nil && result.IsError),
		)
		return result, err
	}
}

// toolText marshals v to YAML for an MCP text result.
func toolText(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("get_active_window",
			mcp.WithDescription("Get information about the currently active/focused window: title, class, control type, position, and size. Much more efficient than screenshots."),
		),
		s.handler("get_active_window", s.handleGetActiveWindow),
	)

	s.mcp.AddTool(
		mcp.NewTool("get_window_text_content",
			mcp.WithDescription("Get all readable text content from the active window as a filtered tree. This is the PRIMARY way to understand what's on screen — use this instead of screenshots. Interactive elements include clickable coordinates."),
			mcp.WithNumber("max_depth", mcp.Description("How deep to traverse the UI tree (default 3, max 5)")),
		),
		s.handler("get_window_text_content", s.handleGetWindowTextContent),
	)

	s.mcp.AddTool(
		mcp.NewTool("list_all_windows",
			mcp.WithDescription("List all open windows with their titles, classes, positions, and sizes. Useful for finding and switching to specific applications."),
		),
		s.handler("list_all_windows", s.handleListAllWindows),
	)

	s.mcp.AddTool(
		mcp.NewTool("find_element",
			mcp.WithDescription("Find UI elements containing the specified text in the active window (broadening to the whole desktop when nothing matches). Returns clickable coordinates for each match."),
			mcp.WithString("text", mcp.Description("Text to search for (case-insensitive partial match)"), mcp.Required()),
			mcp.WithString("control_type", mcp.Description("Optional filter by type (Button, Edit, Text, ListItem, MenuItem, etc.)")),
		),
		s.handler("find_element", s.handleFindElement),
	)

	s.mcp.AddTool(
		mcp.NewTool("click_element",
			mcp.WithDescription("Find and click an element by its text content. Much more reliable than coordinate-based clicking."),
			mcp.WithString("text", mcp.Description("Text of the element to click (case-insensitive partial match)"), mcp.Required()),
			mcp.WithString("control_type", mcp.Description("Optional filter (Button, MenuItem, ListItem, Link, etc.)")),
		),
		s.handler("click_element", s.handleClickElement),
	)

	s.mcp.AddTool(
		mcp.NewTool("focus_window",
			mcp.WithDescription("Bring a window to the foreground by its title (partial match)."),
			mcp.WithString("title", mcp.Description("Part of the window title to match"), mcp.Required()),
		),
		s.handler("focus_window", s.handleFocusWindow),
	)

	s.mcp.AddTool(
		mcp.NewTool("get_screen_size",
			mcp.WithDescription("Get the width and height of the primary monitor."),
		),
		s.handler("get_screen_size", s.handleGetScreenSize),
	)

	s.mcp.AddTool(
		mcp.NewTool("get_mouse_position",
			mcp.WithDescription("Get the current mouse cursor position."),
		),
		s.handler("get_mouse_position", s.handleGetMousePosition),
	)

	s.mcp.AddTool(
		mcp.NewTool("move_mouse",
			mcp.WithDescription("Move the mouse cursor to the specified coordinates."),
			mcp.WithNumber("x", mcp.Required()),
			mcp.WithNumber("y", mcp.Required()),
		),
		s.handler("move_mouse", s.handleMoveMouse),
	)

	s.mcp.AddTool(
		mcp.NewTool("click_mouse",
			mcp.WithDescription("Click the mouse at coordinates or the current position. Prefer click_element when you know the text of what to click."),
			mcp.WithNumber("x", mcp.Description("X coordinate (optional)")),
			mcp.WithNumber("y", mcp.Description("Y coordinate (optional)")),
			mcp.WithString("button", mcp.Description("'left', 'right', or 'middle'")),
		),
		s.handler("click_mouse", s.handleClickMouse),
	)

	s.mcp.AddTool(
		mcp.NewTool("double_click",
			mcp.WithDescription("Double-click the left mouse button at coordinates or the current position."),
			mcp.WithNumber("x", mcp.Description("X coordinate (optional)")),
			mcp.WithNumber("y", mcp.Description("Y coordinate (optional)")),
		),
		s.handler("double_click", s.handleDoubleClick),
	)

	s.mcp.AddTool(
		mcp.NewTool("drag_mouse",
			mcp.WithDescription("Drag the mouse from its current position to the given coordinates."),
			mcp.WithNumber("x", mcp.Required()),
			mcp.WithNumber("y", mcp.Required()),
		),
		s.handler("drag_mouse", s.handleDragMouse),
	)

	s.mcp.AddTool(
		mcp.NewTool("scroll",
			mcp.WithDescription("Scroll the mouse wheel. Positive clicks scroll up, negative down."),
			mcp.WithNumber("clicks", mcp.Required()),
			mcp.WithNumber("x", mcp.Description("Optional x position to scroll at")),
			mcp.WithNumber("y", mcp.Description("Optional y position to scroll at")),
		),
		s.handler("scroll", s.handleScroll),
	)

	s.mcp.AddTool(
		mcp.NewTool("type_text",
			mcp.WithDescription("Type the given text string."),
			mcp.WithString("text", mcp.Required()),
			mcp.WithNumber("interval", mcp.Description("Delay between keystrokes in ms")),
		),
		s.handler("type_text", s.handleTypeText),
	)

	s.mcp.AddTool(
		mcp.NewTool("press_key",
			mcp.WithDescription("Press a specific key. Examples: 'enter', 'esc', 'tab', 'space', 'backspace', 'delete', arrows, 'f1'-'f12'."),
			mcp.WithString("key", mcp.Required()),
		),
		s.handler("press_key", s.handlePressKey),
	)

	s.mcp.AddTool(
		mcp.NewTool("hotkey",
			mcp.WithDescription("Press a combination of keys simultaneously, joined with '+'. Examples: 'ctrl+c', 'alt+tab', 'ctrl+shift+s'."),
			mcp.WithString("keys", mcp.Required()),
		),
		s.handler("hotkey", s.handleHotkey),
	)

	s.mcp.AddTool(
		mcp.NewTool("take_screenshot_region",
			mcp.WithDescription("Take a screenshot of a specific region only, returned as base64 PNG. Use ONLY when the accessibility tree cannot read the content (images, canvas, games); for normal UI use get_window_text_content."),
			mcp.WithNumber("x", mcp.Required()),
			mcp.WithNumber("y", mcp.Required()),
			mcp.WithNumber("width", mcp.Required()),
			mcp.WithNumber("height", mcp.Required()),
			mcp.WithBoolean("grid", mcp.Description("Overlay a coordinate grid labeled with screen-absolute positions, to translate pixels back into click coordinates")),
		),
		s.handler("take_screenshot_region", s.handleScreenshotRegion),
	)
}

func (s *mcpServer) handleGetActiveWindow(params map[string]interface{}) (*mcp.CallToolResult, error) {
	info, err := uitree.ActiveWindow(s.provider.Desktop)
	if err != nil {
		return toolText(errorEntry{Error: err.Error()}), nil
	}
	return toolText(info), nil
}

func (s *mcpServer) handleGetWindowTextContent(params map[string]interface{}) (*mcp.CallToolResult, error) {
	maxDepth := intParam(params, "max_depth", 3)
	content, err := uitree.WindowTextContent(s.provider.Desktop, maxDepth)
	if err != nil {
		return toolText(errorEntry{Error: err.Error()}), nil
	}
	return toolText(content), nil
}

func (s *mcpServer) handleListAllWindows(params map[string]interface{}) (*mcp.CallToolResult, error) {
	windows, err := uitree.ListWindows(s.provider.Desktop)
	if err != nil {
		return toolText([]errorEntry{{Error: err.Error()}}), nil
	}
	if windows == nil {
		windows = []model.WindowInfo{}
	}
	return toolText(windows), nil
}

func (s *mcpServer) handleFindElement(params map[string]interface{}) (*mcp.CallToolResult, error) {
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	controlType := stringParam(params, "control_type", "")

	matches := uitree.Find(s.provider.Desktop, text, controlType)
	if len(matches) == 0 {
		return toolText([]messageEntry{{Message: noElementsMessage(text)}}), nil
	}
	return toolText(matches), nil
}

func (s *mcpServer) handleClickElement(params map[string]interface{}) (*mcp.CallToolResult, error) {
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	controlType := stringParam(params, "control_type", "")
	return mcp.NewToolResultText(clickElementByText(s.provider, text, controlType)), nil
}

func (s *mcpServer) handleFocusWindow(params map[string]interface{}) (*mcp.CallToolResult, error) {
	title := stringParam(params, "title", "")
	if title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}
	return mcp.NewToolResultText(focusWindowByTitle(s.provider, title)), nil
}

func (s *mcpServer) handleGetScreenSize(params map[string]interface{}) (*mcp.CallToolResult, error) {
	size, err := s.provider.Screen.Size()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolText(size), nil
}

func (s *mcpServer) handleGetMousePosition(params map[string]interface{}) (*mcp.CallToolResult, error) {
	x, y, err := s.provider.Inputter.MousePosition()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolText(model.Point{X: x, Y: y}), nil
}

func (s *mcpServer) handleMoveMouse(params map[string]interface{}) (*mcp.CallToolResult, error) {
	x := intParam(params, "x", 0)
	y := intParam(params, "y", 0)
	if err := s.provider.Inputter.MoveMouse(x, y); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Moved mouse to (%d, %d)", x, y)), nil
}

func (s *mcpServer) handleClickMouse(params map[string]interface{}) (*mcp.CallToolResult, error) {
	button, err := platform.ParseMouseButton(stringParam(params, "button", "left"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	x, y, err := s.clickCoordinates(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.provider.Inputter.Click(x, y, button, 1); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Clicked %s button at (%d, %d)", button, x, y)), nil
}

func (s *mcpServer) handleDoubleClick(params map[string]interface{}) (*mcp.CallToolResult, error) {
	x, y, err := s.clickCoordinates(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.provider.Inputter.Click(x, y, platform.MouseLeft, 2); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Double-clicked at (%d, %d)", x, y)), nil
}

// clickCoordinates resolves the target of a mouse click: explicit x/y
// arguments, or the current cursor position when omitted.
func (s *mcpServer) clickCoordinates(params map[string]interface{}) (int, int, error) {
	_, hasX := params["x"]
	_, hasY := params["y"]
	if hasX && hasY {
		return intParam(params, "x", 0), intParam(params, "y", 0), nil
	}
	return s.provider.Inputter.MousePosition()
}

func (s *mcpServer) handleDragMouse(params map[string]interface{}) (*mcp.CallToolResult, error) {
	x := intParam(params, "x", 0)
	y := intParam(params, "y", 0)
	if err := s.provider.Inputter.Drag(x, y); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Dragged mouse to (%d, %d)", x, y)), nil
}

func (s *mcpServer) handleScroll(params map[string]interface{}) (*mcp.CallToolResult, error) {
	clicks := intParam(params, "clicks", 0)
	x, y, err := s.clickCoordinates(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.provider.Inputter.Scroll(x, y, 0, clicks); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Scrolled %d clicks", clicks)), nil
}

func (s *mcpServer) handleTypeText(params map[string]interface{}) (*mcp.CallToolResult, error) {
	text := stringParam(params, "text", "")
	interval := intParam(params, "interval", 0)
	if err := s.provider.Inputter.TypeText(text, interval); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Typed: %s", text)), nil
}

func (s *mcpServer) handlePressKey(params map[string]interface{}) (*mcp.CallToolResult, error) {
	key := stringParam(params, "key", "")
	if key == "" {
		return mcp.NewToolResultError("key is required"), nil
	}
	if err := s.provider.Inputter.KeyCombo([]string{key}); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Pressed key: %s", key)), nil
}

func (s *mcpServer) handleHotkey(params map[string]interface{}) (*mcp.CallToolResult, error) {
	keysStr := stringParam(params, "keys", "")
	if keysStr == "" {
		return mcp.NewToolResultError("keys is required"), nil
	}
	keys := strings.Split(keysStr, "+")
	if err := s.provider.Inputter.KeyCombo(keys); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Pressed hotkey: %s", strings.Join(keys, "+"))), nil
}

func (s *mcpServer) handleScreenshotRegion(params map[string]interface{}) (*mcp.CallToolResult, error) {
	x := intParam(params, "x", 0)
	y := intParam(params, "y", 0)
	width := intParam(params, "width", 0)
	height := intParam(params, "height", 0)
	if width <= 0 || height <= 0 {
		return mcp.NewToolResultError("width and height must be positive"), nil
	}
	data, err := s.provider.Screen.CaptureRegion(x, y, width, height)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if boolParam(params, "grid", false) {
		img, err := decodeCapture(data)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("decode capture: %s", err)), nil
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, DrawCoordinateGrid(img, x, y)); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode capture: %s", err)), nil
		}
		data = buf.Bytes()
	}
	return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(data)), nil
}
