package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Quit", defaults.Quit, "q"},
		{"AddCard", defaults.AddCard, "a"},
		{"GrabCard", defaults.GrabCard, "space"},
		{"MoveCardRight", defaults.MoveCardRight, "L"},
		{"ResetBoard", defaults.ResetBoard, "R"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Default %s key = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("Loaded preset = %s, want default", cfg.ColorScheme.Preset)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("DatabasePath = %s, want empty", cfg.DatabasePath)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	configDir := filepath.Join(tempDir, "minitrello")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
  add_card: "n"
  grab_card: "g"
theme:
  preset: monochrome
database_path: /tmp/board.db
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddCard != "n" {
		t.Errorf("Loaded AddCard key = %s, want n", cfg.KeyMappings.AddCard)
	}
	if cfg.KeyMappings.GrabCard != "g" {
		t.Errorf("Loaded GrabCard key = %s, want g", cfg.KeyMappings.GrabCard)
	}
	if cfg.DatabasePath != "/tmp/board.db" {
		t.Errorf("DatabasePath = %s, want /tmp/board.db", cfg.DatabasePath)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditCard != "e" {
		t.Errorf("Loaded EditCard key = %s, want e (default)", cfg.KeyMappings.EditCard)
	}
	if cfg.ColorScheme.Accent != MonochromeColorScheme().Accent {
		t.Errorf("Accent = %s, want monochrome accent", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "minitrello")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("key_mappings: [\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid YAML succeeded, want error")
	}
}
