package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scribe/internal/config"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Generate markdown transcripts from Claude Code conversation logs",
	Long: `scribe turns Claude Code conversation logs into per-session markdown
transcripts. The generate command is meant to run from the UserPromptSubmit
and SessionEnd hooks (see scribe install); view and watch read the results.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		merged, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = merged
		return nil
	},
}

// loadConfig merges the global and project config files over the defaults.
func loadConfig() (config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return config.Config{}, fmt.Errorf("loading global config: %w", err)
	}
	project, err := config.LoadProject()
	if err != nil {
		return config.Config{}, fmt.Errorf("loading project config: %w", err)
	}
	return config.Merge(global, project), nil
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}
