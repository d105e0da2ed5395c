package cmd

import (
	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/deskview/deskview/internal/uitree"
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the currently active window",
	Long:  "Show the title, class, control type, position, and size of the currently focused window.",
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	info, err := uitree.ActiveWindow(provider.Desktop)
	if err != nil {
		return output.Print(errorEntry{Error: err.Error()})
	}
	return output.Print(info)
}
