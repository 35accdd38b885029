package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv clears to empty, so defaults apply for everything we unset.
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("RESEND_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "0.0.0.0:8080")
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true by default")
	}
	if cfg.ContactRateLimit != 5 {
		t.Errorf("ContactRateLimit = %d, want 5", cfg.ContactRateLimit)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "99999")
	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject out-of-range PORT")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
