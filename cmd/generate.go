package cmd

import (
	"github.com/spf13/cobra"

	"scribe/internal/hook"
	"scribe/internal/logging"
)

// generateCmd is the hook entry point. It is wired into Claude Code's
// UserPromptSubmit and SessionEnd events, so it must never print anything
// or exit non-zero: transcript generation is a best-effort side channel
// that cannot be allowed to disturb the interactive flow it instruments.
var generateCmd = &cobra.Command{
	Use:           "generate",
	Short:         "Update a session transcript from a hook event on stdin",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.FromEnv()

		payload, err := hook.ParsePayload(cmd.InOrStdin())
		if err != nil {
			log.Debug("payload rejected", "error", err)
			return nil
		}

		runner := &hook.Runner{Config: GetConfig(), Logger: log}
		if err := runner.Run(payload); err != nil {
			log.Debug("run failed", "error", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
