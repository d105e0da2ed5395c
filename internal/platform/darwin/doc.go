// Package darwin implements the platform backends for macOS using the
// Accessibility (AXUIElement), CoreGraphics event, and window-list APIs.
// It registers itself with the platform package via init() when built
// with cgo on darwin.
package darwin
