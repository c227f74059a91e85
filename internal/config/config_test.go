package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Load with no custom path from a directory with no configs/ falls
	// through to the embedded YAML, which must agree with the hardcoded
	// fallback.
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultScorchConfig() {
		t.Errorf("Embedded default diverged from hardcoded default:\n%+v\nvs\n%+v",
			cfg, DefaultScorchConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("world:\n  width: 1200.0\n  height: 900.0\nmatch:\n  players: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 1200 || cfg.World.Height != 900 {
		t.Errorf("World not loaded: %+v", cfg.World)
	}
	if cfg.Match.Players != 4 {
		t.Errorf("Players not loaded: %d", cfg.Match.Players)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Missing explicit config should be an error")
	}
}

func TestToMatchConfigValidates(t *testing.T) {
	mc := DefaultScorchConfig().ToMatchConfig(42)
	if err := mc.Validate(); err != nil {
		t.Fatalf("Default config should produce a valid match config: %v", err)
	}
	if mc.Seed != 42 {
		t.Errorf("Seed not carried: %d", mc.Seed)
	}
}

func TestWeatherPresets(t *testing.T) {
	cases := []struct {
		preset WeatherPreset
		want   float64
	}{
		{WeatherCalm, 0},
		{WeatherBreeze, 5},
		{WeatherClassic, 10},
		{WeatherStorm, 25},
		{WeatherPreset("unknown"), 10},
	}
	for _, c := range cases {
		cfg := DefaultScorchConfig()
		ApplyWeatherPreset(&cfg, c.preset)
		if cfg.Weather.MaxWind != c.want {
			t.Errorf("Preset %q: max wind %.0f, want %.0f", c.preset, cfg.Weather.MaxWind, c.want)
		}
	}
}
