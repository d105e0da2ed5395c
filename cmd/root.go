package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/deskview/deskview/internal/output"
	"github.com/deskview/deskview/internal/platform"
	"github.com/deskview/deskview/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deskview",
	Short: "Read and interact with desktop UI elements",
	Long:  "A CLI tool that gives AI agents a cheap, text-based view of on-screen UI structure via accessibility APIs, in place of screenshot analysis.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Optional .env for DESKVIEW_* defaults; absence is fine.
		_ = godotenv.Load()

		setupLogging()

		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = os.Getenv("DESKVIEW_FORMAT")
		}
		if format == "" {
			format = "yaml"
		}

		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}

// setupLogging configures the default slog logger on stderr. The level
// comes from DESKVIEW_LOG; stdout stays reserved for command output.
func setupLogging() {
	level := slog.LevelWarn
	switch os.Getenv("DESKVIEW_LOG") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
