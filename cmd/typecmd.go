package cmd

import (
	"fmt"
	"strings"

	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/spf13/cobra"
)

// TypeResult is the output of a type/key command.
type TypeResult struct {
	OK     bool   `yaml:"ok"             json:"ok"`
	Action string `yaml:"action"         json:"action"`
	Text   string `yaml:"text,omitempty" json:"text,omitempty"`
	Key    string `yaml:"key,omitempty"  json:"key,omitempty"`
}

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Type text or press key combinations",
	Long: `Type a text string, or press a key / key combination.

Key combos join keys with '+', e.g. 'enter', 'ctrl+c', 'cmd+shift+s'.`,
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type")
	typeCmd.Flags().String("key", "", "Key or key combo to press (e.g. 'enter', 'ctrl+c')")
	typeCmd.Flags().Int("delay", 0, "Delay between keystrokes in ms")
}

func runType(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	key, _ := cmd.Flags().GetString("key")
	delay, _ := cmd.Flags().GetInt("delay")

	if text == "" && key == "" {
		return fmt.Errorf("specify --text or --key")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	if text != "" {
		if err := provider.Inputter.TypeText(text, delay); err != nil {
			return fmt.Errorf("type failed: %w", err)
		}
		return output.Print(TypeResult{OK: true, Action: "type", Text: text})
	}

	keys := strings.Split(key, "+")
	if err := provider.Inputter.KeyCombo(keys); err != nil {
		return fmt.Errorf("key press failed: %w", err)
	}
	return output.Print(TypeResult{OK: true, Action: "key", Key: key})
}
