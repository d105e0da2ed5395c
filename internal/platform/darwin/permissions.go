//go:build darwin

package darwin

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

// Check accessibility trust, prompting the user the first time.
static int ax_is_trusted_with_prompt(void) {
	const void *keys[] = { kAXTrustedCheckOptionPrompt };
	const void *values[] = { kCFBooleanTrue };
	CFDictionaryRef options = CFDictionaryCreate(NULL, keys, values, 1,
		&kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
	Boolean trusted = AXIsProcessTrustedWithOptions(options);
	CFRelease(options);
	return trusted ? 1 : 0;
}
*/
import "C"
import "log/slog"

// requestAccessibilityPermission checks the process is trusted for
// accessibility access, showing the system prompt when it is not yet
// granted. Reading other applications' UI trees and injecting input
// both require this trust.
func requestAccessibilityPermission() {
	if C.ax_is_trusted_with_prompt() == 0 {
		slog.Warn("accessibility permission not granted",
			"fix", "System Settings > Privacy & Security > Accessibility")
	}
}
