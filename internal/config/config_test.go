package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SCAL_CONFIG", filepath.Join(t.TempDir(), "nope.json"))
	t.Setenv("SCAL_CALENDAR", "")
	t.Setenv("SCAL_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("SCAL_PERSIAN_DIGITS", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultCalendar != "shamsi" {
		t.Fatalf("DefaultCalendar = %q, want shamsi", cfg.DefaultCalendar)
	}
	if cfg.NoColor || cfg.PersianDigits {
		t.Fatalf("expected zero toggles, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"default_calendar":"gregorian","no_color":true,"persian_digits":true}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCAL_CALENDAR", "")
	t.Setenv("SCAL_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("SCAL_PERSIAN_DIGITS", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultCalendar != "gregorian" || !cfg.NoColor || !cfg.PersianDigits {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_calendar":"gregorian"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCAL_CALENDAR", "shamsi")
	t.Setenv("SCAL_NO_COLOR", "yes")
	t.Setenv("NO_COLOR", "")
	t.Setenv("SCAL_PERSIAN_DIGITS", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultCalendar != "shamsi" {
		t.Fatalf("DefaultCalendar = %q, want env override", cfg.DefaultCalendar)
	}
	if !cfg.NoColor {
		t.Fatalf("SCAL_NO_COLOR=yes not applied")
	}
}

func TestLoadRejectsUnknownCalendar(t *testing.T) {
	t.Setenv("SCAL_CONFIG", filepath.Join(t.TempDir(), "nope.json"))
	t.Setenv("SCAL_CALENDAR", "lunar")
	t.Setenv("NO_COLOR", "")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for unknown calendar")
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCAL_CALENDAR", "")
	t.Setenv("NO_COLOR", "")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}
