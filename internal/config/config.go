package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds user preferences. Every field has a working zero value,
// so the tool runs fine without a config file.
type Config struct {
	// DefaultCalendar picks the grid system when `scal cal` is run
	// without --gregorian: "shamsi" (default) or "gregorian".
	DefaultCalendar string `json:"default_calendar,omitempty"`

	// NoColor disables ANSI styling in all output.
	NoColor bool `json:"no_color,omitempty"`

	// PersianDigits renders output digits as ۰-۹.
	PersianDigits bool `json:"persian_digits,omitempty"`
}

func DefaultConfigPath() string {
	if v := os.Getenv("SCAL_CONFIG"); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scal", "config.json")
}

// Load reads the config file (if present) and applies env overrides.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	var cfg Config
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("invalid config json: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	// Env overrides
	if v := os.Getenv("SCAL_CALENDAR"); v != "" {
		cfg.DefaultCalendar = v
	}
	if v := os.Getenv("SCAL_NO_COLOR"); v != "" {
		cfg.NoColor = isTruthy(v)
	}
	// The informal cross-tool convention: any value means "off".
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if v := os.Getenv("SCAL_PERSIAN_DIGITS"); v != "" {
		cfg.PersianDigits = isTruthy(v)
	}

	// Defaults
	if cfg.DefaultCalendar == "" {
		cfg.DefaultCalendar = "shamsi"
	}
	switch strings.ToLower(cfg.DefaultCalendar) {
	case "shamsi", "gregorian":
		cfg.DefaultCalendar = strings.ToLower(cfg.DefaultCalendar)
	default:
		return Config{}, fmt.Errorf("unknown default_calendar %q (want shamsi or gregorian)", cfg.DefaultCalendar)
	}
	return cfg, nil
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes")
}
