package cmd

import (
	"fmt"

	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/spf13/cobra"
)

// MoveResult is the output of a mouse move.
type MoveResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move the mouse cursor",
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().Int("x", 0, "Target X screen coordinate")
	moveCmd.Flags().Int("y", 0, "Target Y screen coordinate")
}

func runMove(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
		return fmt.Errorf("--x and --y are required")
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if err := provider.Inputter.MoveMouse(x, y); err != nil {
		return fmt.Errorf("move failed: %w", err)
	}
	return output.Print(MoveResult{OK: true, Action: "move", X: x, Y: y})
}
