package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg DashConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultDashConfig()) {
		t.Errorf("embedded defaults differ from DefaultDashConfig():\n%+v\n%+v", cfg, DefaultDashConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultDashConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadDashCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	content := "physics:\n  speed: 7.5\nsession:\n  start_lives: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDash(path)
	if err != nil {
		t.Fatalf("LoadDash() failed: %v", err)
	}

	if cfg.Physics.Speed != 7.5 {
		t.Errorf("Speed = %v, expected 7.5", cfg.Physics.Speed)
	}
	if cfg.Session.StartLives != 4 {
		t.Errorf("StartLives = %d, expected 4", cfg.Session.StartLives)
	}

	// Keys not in the file keep their defaults
	if cfg.Physics.Gravity != 1.0 {
		t.Errorf("Gravity = %v, expected default 1.0", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Pending != 5 {
		t.Errorf("Pending = %d, expected default 5", cfg.Obstacles.Pending)
	}
}

func TestLoadDashMissingCustomPath(t *testing.T) {
	_, err := LoadDash(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadDash() should fail for a missing custom path")
	}
}

func TestLoadDashMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDash(path); err == nil {
		t.Error("LoadDash() should fail for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DashConfig)
		wantErr string
	}{
		{
			name:    "obstacle width range inverted",
			mutate:  func(c *DashConfig) { c.Obstacles.MinWidth = 200 },
			wantErr: "obstacles.width",
		},
		{
			name:    "distance range inverted",
			mutate:  func(c *DashConfig) { c.Obstacles.MaxDistance = 10 },
			wantErr: "obstacles.distance",
		},
		{
			name:    "height range inverted",
			mutate:  func(c *DashConfig) { c.Obstacles.MaxHeight = 1 },
			wantErr: "obstacles.height",
		},
		{
			name:    "spike chance above one",
			mutate:  func(c *DashConfig) { c.Spikes.Chance = 1.5 },
			wantErr: "spikes.chance",
		},
		{
			name:    "zero speed",
			mutate:  func(c *DashConfig) { c.Physics.Speed = 0 },
			wantErr: "physics.speed",
		},
		{
			name:    "start lives above max",
			mutate:  func(c *DashConfig) { c.Session.StartLives = 9 },
			wantErr: "session.start_lives",
		},
		{
			name:    "max lives above cap",
			mutate:  func(c *DashConfig) { c.Session.MaxLives = 6 },
			wantErr: "session.max_lives",
		},
		{
			name:    "negative score boost",
			mutate:  func(c *DashConfig) { c.PowerUps.ScoreBoost = -10 },
			wantErr: "powerups.score_boost",
		},
		{
			name:    "ground taller than world",
			mutate:  func(c *DashConfig) { c.World.GroundHeight = 500 },
			wantErr: "world.ground_height",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDashConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() error = %q, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDashConfig()
	ApplyPreset(&cfg, PresetEasy)
	if cfg.Session.StartLives != 5 {
		t.Errorf("easy StartLives = %d, expected 5", cfg.Session.StartLives)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("easy preset should stay valid: %v", err)
	}

	cfg = DefaultDashConfig()
	ApplyPreset(&cfg, PresetHard)
	if cfg.Session.StartLives != 2 || cfg.Physics.Speed <= DefaultDashConfig().Physics.Speed {
		t.Errorf("hard preset not applied: %+v", cfg.Session)
	}

	cfg = DefaultDashConfig()
	ApplyPreset(&cfg, PresetNormal)
	if !reflect.DeepEqual(cfg, DefaultDashConfig()) {
		t.Error("normal preset should keep defaults")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) should succeed", s)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}
