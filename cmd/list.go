package cmd

import (
	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/deskview/deskview/internal/uitree"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all open windows",
	Long:  "List visible windows with their titles, classes, positions, and sizes. Child/dialog windows are reported with their parent's title.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	windows, err := uitree.ListWindows(provider.Desktop)
	if err != nil {
		return output.Print([]errorEntry{{Error: err.Error()}})
	}
	if windows == nil {
		windows = []model.WindowInfo{}
	}
	return output.Print(windows)
}
