package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DefaultFPS != 24 {
		t.Errorf("DefaultFPS = %d, want 24", cfg.DefaultFPS)
	}
	if cfg.Redis.Addr != "127.0.0.1:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	os.Setenv("EDITMASTER_DEFAULT_FPS", "30")
	defer os.Unsetenv("EDITMASTER_DEFAULT_FPS")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultFPS != 30 {
		t.Errorf("DefaultFPS = %d, want 30", cfg.DefaultFPS)
	}
}

func TestLoggerLevel(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	logger, err := cfg.Logger()
	if err != nil {
		t.Fatal(err)
	}
	if logger.Level.String() != "debug" {
		t.Errorf("level = %s, want debug", logger.Level)
	}
	if _, err := (&Config{LogLevel: "shouting"}).Logger(); err == nil {
		t.Error("bad level accepted")
	}
}
