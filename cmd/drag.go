package cmd

import (
	"fmt"

	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/spf13/cobra"
)

// DragResult is the output of a drag.
type DragResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	ToX    int    `yaml:"to_x"   json:"to_x"`
	ToY    int    `yaml:"to_y"   json:"to_y"`
}

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag the mouse from its current position",
	RunE:  runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	dragCmd.Flags().Int("to-x", 0, "Destination X screen coordinate")
	dragCmd.Flags().Int("to-y", 0, "Destination Y screen coordinate")
}

func runDrag(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("to-x") || !cmd.Flags().Changed("to-y") {
		return fmt.Errorf("--to-x and --to-y are required")
	}
	toX, _ := cmd.Flags().GetInt("to-x")
	toY, _ := cmd.Flags().GetInt("to-y")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if err := provider.Inputter.Drag(toX, toY); err != nil {
		return fmt.Errorf("drag failed: %w", err)
	}
	return output.Print(DragResult{OK: true, Action: "drag", ToX: toX, ToY: toY})
}
