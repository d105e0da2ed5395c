package cmd

import (
	"github.com/deskview/deskview/internal/model"
	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/spf13/cobra"
)

// ScreenResult reports display geometry and the current mouse position.
type ScreenResult struct {
	Screen model.Size   `yaml:"screen" json:"screen"`
	Mouse  *model.Point `yaml:"mouse,omitempty" json:"mouse,omitempty"`
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Show screen size and mouse position",
	RunE:  runScreen,
}

func init() {
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	size, err := provider.Screen.Size()
	if err != nil {
		return err
	}

	result := ScreenResult{Screen: size}
	if x, y, err := provider.Inputter.MousePosition(); err == nil {
		result.Mouse = &model.Point{X: x, Y: y}
	}
	return output.Print(result)
}
