package cmd

import (
	"fmt"

	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/spf13/cobra"
)

// ScrollResult is the output of a scroll.
type ScrollResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	DX     int    `yaml:"dx"     json:"dx"`
	DY     int    `yaml:"dy"     json:"dy"`
}

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll the mouse wheel",
	Long:  "Scroll by the given number of clicks (positive dy = up, negative = down), optionally at a specific position.",
	RunE:  runScroll,
}

func init() {
	rootCmd.AddCommand(scrollCmd)
	scrollCmd.Flags().Int("dx", 0, "Horizontal scroll clicks")
	scrollCmd.Flags().Int("dy", 0, "Vertical scroll clicks (positive = up)")
	scrollCmd.Flags().Int("x", 0, "X position to scroll at (default: current)")
	scrollCmd.Flags().Int("y", 0, "Y position to scroll at (default: current)")
}

func runScroll(cmd *cobra.Command, args []string) error {
	dx, _ := cmd.Flags().GetInt("dx")
	dy, _ := cmd.Flags().GetInt("dy")
	if dx == 0 && dy == 0 {
		return fmt.Errorf("specify --dx or --dy")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	x, y := 0, 0
	if cmd.Flags().Changed("x") && cmd.Flags().Changed("y") {
		x, _ = cmd.Flags().GetInt("x")
		y, _ = cmd.Flags().GetInt("y")
	} else if px, py, err := provider.Inputter.MousePosition(); err == nil {
		x, y = px, py
	}

	if err := provider.Inputter.Scroll(x, y, dx, dy); err != nil {
		return fmt.Errorf("scroll failed: %w", err)
	}
	return output.Print(ScrollResult{OK: true, Action: "scroll", DX: dx, DY: dy})
}
