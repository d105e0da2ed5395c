package cmd

import (
	"fmt"

	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/deskview/deskview/internal/uitree"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search for elements by text",
	Long: `Search for UI elements whose name contains the given text
(case-insensitive substring). The search first runs inside the active
window; if nothing matches there, it broadens to the whole desktop.
Each match reports clickable coordinates when resolvable.`,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("text", "", "Text to search for (case-insensitive substring match)")
	findCmd.Flags().String("type", "", "Filter by control type, exact match (Button, Edit, Text, ListItem, MenuItem, ...)")
}

func runFind(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	controlType, _ := cmd.Flags().GetString("type")

	if text == "" {
		return fmt.Errorf("--text is required")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	matches := uitree.Find(provider.Desktop, text, controlType)
	if len(matches) == 0 {
		return output.Print([]messageEntry{{Message: noElementsMessage(text)}})
	}
	return output.Print(matches)
}
