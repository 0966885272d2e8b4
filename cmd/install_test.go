package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstallRegistersBothEvents(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	settingsPath := filepath.Join(t.TempDir(), "settings.json")

	out, err := executeCommand(rootCmd, "", "install", "--settings", settingsPath)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if !strings.Contains(out, "registered") {
		t.Errorf("expected confirmation, got: %q", out)
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatalf("settings not written: %v", err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("settings not valid JSON: %v", err)
	}
	hooks, _ := settings["hooks"].(map[string]any)
	for _, event := range []string{"UserPromptSubmit", "SessionEnd"} {
		if _, ok := hooks[event]; !ok {
			t.Errorf("event %s not registered in %s", event, data)
		}
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	settingsPath := filepath.Join(t.TempDir(), "settings.json")

	if _, err := executeCommand(rootCmd, "", "install", "--settings", settingsPath); err != nil {
		t.Fatalf("first install: %v", err)
	}
	first, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(rootCmd, "", "install", "--settings", settingsPath)
	if err != nil {
		t.Fatalf("second install: %v", err)
	}
	if !strings.Contains(out, "already installed") {
		t.Errorf("expected already-installed notice, got: %q", out)
	}
	second, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("second install modified the settings file")
	}
}

func TestInstallPreservesUnrelatedSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	settingsPath := filepath.Join(t.TempDir(), "settings.json")
	existing := `{"model":"opus","hooks":{"PreToolUse":[{"hooks":[{"type":"command","command":"other-tool"}]}]}}`
	if err := os.WriteFile(settingsPath, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := executeCommand(rootCmd, "", "install", "--settings", settingsPath); err != nil {
		t.Fatalf("install: %v", err)
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatal(err)
	}
	if settings["model"] != "opus" {
		t.Errorf("unrelated top-level key lost: %s", data)
	}
	hooks, _ := settings["hooks"].(map[string]any)
	if _, ok := hooks["PreToolUse"]; !ok {
		t.Errorf("unrelated hook lost: %s", data)
	}
	if _, ok := hooks["SessionEnd"]; !ok {
		t.Errorf("new hook missing: %s", data)
	}
}
