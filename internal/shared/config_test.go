package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "mak.db" {
			t.Errorf("expected database path mak.db, got %s", config.Database.Path)
		}

		if config.Library.Root != "." {
			t.Errorf("expected library root ., got %s", config.Library.Root)
		}

		want := []string{".mp3", ".m4a", ".flac"}
		if len(config.Library.Extensions) != len(want) {
			t.Fatalf("expected %d extensions, got %d", len(want), len(config.Library.Extensions))
		}
		for i, ext := range want {
			if config.Library.Extensions[i] != ext {
				t.Errorf("expected extension %s at %d, got %s", ext, i, config.Library.Extensions[i])
			}
		}

		if config.Database.MaxOpenConns != 5 {
			t.Errorf("expected max_open_conns 5, got %d", config.Database.MaxOpenConns)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[library]
root = "/music/albums"
extensions = [".mp3"]

[export]
output_dir = "/tmp/exports"

[database]
path = "/tmp/cache.db"
max_open_conns = 10
max_idle_conns = 4
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Library.Root != "/music/albums" {
			t.Errorf("expected library root /music/albums, got %s", config.Library.Root)
		}
		if config.Export.OutputDir != "/tmp/exports" {
			t.Errorf("expected export dir /tmp/exports, got %s", config.Export.OutputDir)
		}
		if config.Database.MaxOpenConns != 10 {
			t.Errorf("expected max_open_conns 10, got %d", config.Database.MaxOpenConns)
		}
	})

	t.Run("LoadConfigMissing", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("loading a missing config should fail")
		}
	})

	t.Run("LoadConfigInvalid", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("loading invalid toml should fail")
		}
	})
}
