package cmd

import (
	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/deskview/deskview/internal/uitree"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the text content of the active window",
	Long: `Read all meaningful text content from the active window as a filtered,
depth-bounded tree. This is the primary way for an agent to understand what
is on screen without a screenshot.

Elements are kept only when they carry content: a name, a notable control
type (Edit, Text, Button, list/menu/tree/tab items, Document), or a
descendant that does. Interactive elements include a clickable center
point. Invisible (zero-area) elements are omitted.`,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().Int("depth", 3, "Max depth to traverse (capped at 5)")
}

func runRead(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	depth, _ := cmd.Flags().GetInt("depth")

	content, err := uitree.WindowTextContent(provider.Desktop, depth)
	if err != nil {
		return output.Print(errorEntry{Error: err.Error()})
	}
	return output.Print(content)
}
