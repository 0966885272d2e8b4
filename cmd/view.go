package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"scribe/internal/tui"
)

var plainOutput bool

var viewCmd = &cobra.Command{
	Use:   "view <session-id|file>",
	Short: "View a session transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveTranscript(args[0])
		if err != nil {
			return err
		}

		render := func() (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(data), nil
		}

		// Fall back to plain output when not attached to a terminal.
		if plainOutput || cfg.DefaultView == "plain" || !term.IsTerminal(os.Stdout.Fd()) {
			content, err := render()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		}
		return tui.Run(path, render, nil)
	},
}

// resolveTranscript maps an argument to a transcript file: a path that
// exists is used as-is, anything else is treated as a session id under the
// transcript directory of the current working directory.
func resolveTranscript(arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cfg.OutputDir
	if dir == "" {
		dir = filepath.Join(cwd, ".claude", "transcripts")
	}
	id := strings.TrimSuffix(arg, ".md")
	path := filepath.Join(dir, id+".md")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("no transcript found for %q (looked at %s)", arg, path)
	}
	return path, nil
}

func init() {
	viewCmd.Flags().BoolVar(&plainOutput, "plain", false, "print raw markdown instead of the TUI")
	rootCmd.AddCommand(viewCmd)
}
