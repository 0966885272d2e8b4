package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

// Every field follows the same precedence: project over global over default.
func TestMergePrecedence(t *testing.T) {
	value := rapid.StringMatching(`[a-zA-Z0-9/_.-]{1,20}`)
	configGen := rapid.Custom(func(t *rapid.T) *Config {
		cfg := &Config{}
		if rapid.Bool().Draw(t, "hasOutputDir") {
			cfg.OutputDir = value.Draw(t, "outputDir")
		}
		if rapid.Bool().Draw(t, "hasTimeFormat") {
			cfg.TimeFormat = value.Draw(t, "timeFormat")
		}
		if rapid.Bool().Draw(t, "hasDefaultView") {
			cfg.DefaultView = value.Draw(t, "defaultView")
		}
		return cfg
	})

	fields := []struct {
		name string
		get  func(Config) string
	}{
		{"OutputDir", func(c Config) string { return c.OutputDir }},
		{"TimeFormat", func(c Config) string { return c.TimeFormat }},
		{"DefaultView", func(c Config) string { return c.DefaultView }},
	}

	rapid.Check(t, func(rt *rapid.T) {
		global := configGen.Draw(rt, "global")
		project := configGen.Draw(rt, "project")
		merged := Merge(global, project)
		defaults := Defaults()

		for _, f := range fields {
			want := f.get(defaults)
			if v := f.get(*global); v != "" {
				want = v
			}
			if v := f.get(*project); v != "" {
				want = v
			}
			if got := f.get(merged); got != want {
				rt.Fatalf("%s: got %q, want %q", f.name, got, want)
			}
		}
	})
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.TimeFormat != "2006-01-02 15:04:05" {
		t.Errorf("TimeFormat: got %q", d.TimeFormat)
	}
	if d.DefaultView != "tui" {
		t.Errorf("DefaultView: got %q", d.DefaultView)
	}
	if d.OutputDir != "" {
		t.Errorf("OutputDir: want empty (derive from cwd), got %q", d.OutputDir)
	}
}

func TestLoadGlobalMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if *cfg != Defaults() {
		t.Errorf("got %+v, want defaults", *cfg)
	}
}

func TestLoadProjectMissingFileReturnsNil(t *testing.T) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })

	cfg, err := LoadProject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestLoadGlobalParseError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "scribe")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{invalid json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadGlobal()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}
