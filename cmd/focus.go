package cmd

import (
	"fmt"

	"github.com/deskview/deskview/internal/platform"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Bring a window to the foreground",
	Long:  "Focus the first window whose title contains the given text (case-insensitive).",
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().String("title", "", "Part of the window title to match")
}

func runFocus(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		return fmt.Errorf("--title is required")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	fmt.Println(focusWindowByTitle(provider, title))
	return nil
}
