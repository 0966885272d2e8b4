package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var installSettingsPath string

// hookEvents are the lifecycle events the generate command handles.
var hookEvents = []string{"UserPromptSubmit", "SessionEnd"}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the transcript hooks in Claude Code settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := installSettingsPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".claude", "settings.json")
		}

		settings, err := readSettings(path)
		if err != nil {
			return err
		}

		command := "scribe generate"
		changed := false
		for _, event := range hookEvents {
			if registerHook(settings, event, command) {
				changed = true
			}
		}

		if !changed {
			cmd.Println("Transcript hooks already installed.")
			return nil
		}

		if err := writeSettings(path, settings); err != nil {
			return err
		}
		cmd.Printf("✓ Transcript hooks registered in %s\n", path)
		return nil
	},
}

// readSettings loads the settings file as generic JSON so unrelated keys
// survive the edit. A missing file starts from an empty object.
func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings at %s: %w", path, err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

// registerHook adds a command hook for event unless one already runs it.
// Reports whether the settings were modified.
func registerHook(settings map[string]any, event, command string) bool {
	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		hooks = map[string]any{}
		settings["hooks"] = hooks
	}
	entries, _ := hooks[event].([]any)

	for _, entry := range entries {
		matcher, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		inner, _ := matcher["hooks"].([]any)
		for _, h := range inner {
			hm, ok := h.(map[string]any)
			if !ok {
				continue
			}
			if hm["command"] == command {
				return false
			}
		}
	}

	hooks[event] = append(entries, map[string]any{
		"hooks": []any{
			map[string]any{"type": "command", "command": command},
		},
	})
	return true
}

func writeSettings(path string, settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func init() {
	installCmd.Flags().StringVar(&installSettingsPath, "settings", "", "settings file to edit (default: ~/.claude/settings.json)")
	rootCmd.AddCommand(installCmd)
}
