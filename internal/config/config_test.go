package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at fresh temp dirs and
// clears every LISTER_ variable.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{EnvConfig, EnvDBPath, EnvAddr, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := filepath.Join(home, ".lister", "lister.db")
	if cfg.DBPath != expected {
		t.Errorf("expected %s, got %s", expected, cfg.DBPath)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("expected %s, got %s", DefaultAddr, cfg.Addr)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(home, ".lister", "config.yaml")
	if err := SaveConfig(path, &Config{DBPath: "/tmp/from-file.db", Addr: ":9000", LogLevel: "debug"}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	t.Setenv(EnvAddr, ":9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DBPath != "/tmp/from-file.db" {
		t.Errorf("expected db path from file, got %s", cfg.DBPath)
	}
	if cfg.Addr != ":9100" {
		t.Errorf("expected env to override addr, got %s", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from file, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("expected default log format to survive partial file, got %s", cfg.LogFormat)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(".env", []byte("LISTER_DB=/tmp/dotenv.db\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// godotenv.Load sets the variable for real; register it for cleanup.
	t.Setenv(EnvDBPath, "")
	os.Unsetenv(EnvDBPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/dotenv.db" {
		t.Errorf("expected db path from .env, got %s", cfg.DBPath)
	}
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7000\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(EnvConfig, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("expected :7000, got %s", cfg.Addr)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := LoadFile(path, &Config{}); err == nil {
		t.Error("expected parse error, got nil")
	}
}
