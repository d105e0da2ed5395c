package cmd

import (
	"fmt"

	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/spf13/cobra"
)

// ClickResult is the output of a coordinate click.
type ClickResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
	Button string `yaml:"button" json:"button"`
}

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click on an element by text, or at coordinates",
	Long: `Click a UI element by its text content (more reliable than raw
coordinates: the element's current center is resolved fresh from the
accessibility tree), or click at absolute screen coordinates.`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("text", "", "Find and click element by text (case-insensitive substring)")
	clickCmd.Flags().String("type", "", "Filter by control type when using --text")
	clickCmd.Flags().Int("x", 0, "Click at absolute X screen coordinate")
	clickCmd.Flags().Int("y", 0, "Click at absolute Y screen coordinate")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")
}

func runClick(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	controlType, _ := cmd.Flags().GetString("type")
	buttonStr, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	if text != "" {
		fmt.Println(clickElementByText(provider, text, controlType))
		return nil
	}

	if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
		return fmt.Errorf("specify --text, or both --x and --y")
	}

	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}
	count := 1
	if double {
		count = 2
	}
	if err := provider.Inputter.Click(x, y, button, count); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return output.Print(ClickResult{OK: true, Action: "click", X: x, Y: y, Button: button.String()})
}
