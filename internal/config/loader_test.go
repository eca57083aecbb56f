package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("round:\n  tick_rate: 12\naudio:\n  enabled: false\ndb:\n  path: \"/tmp/x.db\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Round.TickRate != 12 || cfg.Audio.Enabled || cfg.DB.Path != "/tmp/x.db" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config should be an error")
	}
}

func TestLoadEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// The embedded YAML must stay in sync with Default(); run from a
	// directory without config files so the fallback chain ends there.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config %+v differs from Default() %+v", cfg, Default())
	}
}
