package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitest.yaml")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load of missing default config failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing config file did not give defaults: %+v", cfg)
	}

	if _, err := Load(path, true); err == nil {
		t.Error("Load of missing explicit config did not fail")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitest.yaml")
	content := "device: /dev/piControl1\nlog_level: 5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("can not write config: %v", err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Device != "/dev/piControl1" {
		t.Errorf("device is %q", cfg.Device)
	}
	if cfg.LogLevel != 5 {
		t.Errorf("log level is %d", cfg.LogLevel)
	}
	if cfg.DumpFile != Default().DumpFile {
		t.Errorf("dump file default lost: %q", cfg.DumpFile)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitest.yaml")
	if err := os.WriteFile(path, []byte("device: [broken"), 0644); err != nil {
		t.Fatalf("can not write config: %v", err)
	}

	if _, err := Load(path, true); err == nil {
		t.Error("invalid YAML accepted")
	}
}
