package main

import (
	"github.com/deskview/deskview/cmd"

	// Registers the macOS platform provider on darwin builds.
	_ "github.com/deskview/deskview/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
