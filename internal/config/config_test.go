package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOPD_SERVER_URL", "")
	t.Setenv("SHOPD_SESSION_STORE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerURL == "" {
		t.Error("no default server URL")
	}
	if cfg.Session.Backend != "file" {
		t.Errorf("default session backend = %q, want file", cfg.Session.Backend)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("default log format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHOPD_SERVER_URL", "https://shop.example.com")
	t.Setenv("SHOPD_SESSION_STORE", "keyring")
	t.Setenv("SHOPD_STATE_FILE", "/tmp/state.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerURL != "https://shop.example.com" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.Session.Backend != "keyring" {
		t.Errorf("Session.Backend = %q", cfg.Session.Backend)
	}
	if cfg.Session.StateFile != "/tmp/state.json" {
		t.Errorf("Session.StateFile = %q", cfg.Session.StateFile)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}
