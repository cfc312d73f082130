package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Make sure ambient variables from the host don't leak in.
	t.Setenv("DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CINEMA_NO_CLEAR", "")

	cfg := Load()

	if cfg.DBPath != "data/cinema.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if !cfg.ClearScreen {
		t.Error("ClearScreen = false, want true by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CINEMA_NO_CLEAR", "1")

	cfg := Load()

	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q, want /tmp/other.db", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.ClearScreen {
		t.Error("ClearScreen = true, want false with CINEMA_NO_CLEAR set")
	}
}

func TestLoadIgnoresBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	cfg := Load()

	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want the info default for unknown values", cfg.LogLevel)
	}
}
