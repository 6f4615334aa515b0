package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Engine != "native" {
		t.Errorf("Engine = %q, want native", cfg.Engine)
	}
	if cfg.MaxSteps != 0 || cfg.Timeout != 0 || cfg.Trace {
		t.Errorf("unexpected limits in defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minipy.yaml")
	content := "max_steps: 5000\ntimeout: 2s\ntrace: true\nengine: goja\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.MaxSteps != 5000 {
		t.Errorf("MaxSteps = %d, want 5000", cfg.MaxSteps)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("Timeout = %s, want 2s", cfg.Timeout)
	}
	if !cfg.Trace {
		t.Error("Trace = false, want true")
	}
	if cfg.Engine != "goja" {
		t.Errorf("Engine = %q, want goja", cfg.Engine)
	}
	if cfg.HistoryFile != ".minipy_history" {
		t.Errorf("HistoryFile = %q, want default", cfg.HistoryFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_steps: [1, 2\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MINIPY_ENGINE", "goja")
	t.Setenv("MINIPY_MAX_STEPS", "42")
	t.Setenv("MINIPY_TRACE", "true")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() unexpected error: %v", err)
	}
	if cfg.Engine != "goja" || cfg.MaxSteps != 42 || !cfg.Trace {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("MINIPY_MAX_STEPS", "many")

	cfg := Default()
	err := cfg.ApplyEnv()
	if err == nil || !strings.Contains(err.Error(), "MINIPY_MAX_STEPS") {
		t.Errorf("ApplyEnv() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "goja engine", modify: func(c *Config) { c.Engine = "goja" }},
		{name: "negative steps", modify: func(c *Config) { c.MaxSteps = -1 }, wantErr: true},
		{name: "negative timeout", modify: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
		{name: "unknown engine", modify: func(c *Config) { c.Engine = "cpython" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
