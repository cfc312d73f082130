// Package config loads application configuration from environment variables.
//
// A .env file in the working directory is honoured when present (godotenv),
// which keeps local runs flag-free: the console protocol has no command-line
// flags, so the environment is the only configuration surface.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Every field has a usable
// default — the program must start with an empty environment.
type Config struct {
	DBPath      string     // path to the SQLite database file
	LogLevel    slog.Level // minimum level for structured logs
	ClearScreen bool       // cosmetic screen clear between menus
}

// Load reads configuration from the environment, after loading an optional
// .env file. Unset variables fall back to defaults; nothing here is fatal.
func Load() Config {
	// .env is optional — a missing file is the normal case in production.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:      "data/cinema.db",
		LogLevel:    slog.LevelInfo,
		ClearScreen: true,
	}

	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}

	// LOG_LEVEL: debug | info | warn | error (case-insensitive).
	// Unknown values keep the info default rather than failing startup.
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = level
		}
	}

	// CINEMA_NO_CLEAR disables the ANSI screen clear. Useful when piping
	// output or running under a terminal that does not honour the escape.
	if os.Getenv("CINEMA_NO_CLEAR") != "" {
		cfg.ClearScreen = false
	}

	return cfg
}
