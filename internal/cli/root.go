// Package cli wires the inputkit commands: validating values against
// profile chains from scripts, and the interactive form demo.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inputkit/inputkit/pkg/config"
	"github.com/inputkit/inputkit/pkg/logger"
)

// settings are process-level defaults read from the environment. Flags
// override them per invocation.
type settings struct {
	ProfilePath string `env:"INPUTKIT_PROFILE" envDefault:"profiles.yaml"`
	LogLevel    string `env:"INPUTKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"INPUTKIT_LOG_FORMAT" envDefault:"text"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "inputkit",
		Short: "Validate text input against declarative rule chains",
		Long: `inputkit validates strings against named validation profiles: ordered
chains of rules (lengths, patterns, character classes) defined in YAML.

Use "check" to validate values from scripts and "form" for an interactive
demo where inputs are re-validated on every keystroke.`,
		SilenceUsage: true,
	}
	root.AddCommand(newCheckCmd())
	root.AddCommand(newFormCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings() (settings, error) {
	var s settings
	if err := config.Load(&s); err != nil {
		return settings{}, err
	}
	return s, nil
}

func newLogger(s settings) *slog.Logger {
	return logger.New(
		logger.WithLevelName(s.LogLevel),
		logger.WithFormat(logger.Format(s.LogFormat)),
	)
}
