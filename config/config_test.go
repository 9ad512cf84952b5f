package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_ClampsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			"negative interval",
			func(c *Config) { c.IntervalSeconds = -1 },
			func(t *testing.T, c *Config) {
				if c.IntervalSeconds != 0.5 {
					t.Fatalf("interval %v", c.IntervalSeconds)
				}
			},
		},
		{
			"interval above cap",
			func(c *Config) { c.IntervalSeconds = 120 },
			func(t *testing.T, c *Config) {
				if c.IntervalSeconds != 0.5 {
					t.Fatalf("interval %v", c.IntervalSeconds)
				}
			},
		},
		{
			"negative win",
			func(c *Config) { c.Win = -3 },
			func(t *testing.T, c *Config) {
				if c.Win != 0 {
					t.Fatalf("win %v", c.Win)
				}
			},
		},
		{
			"max delta below win",
			func(c *Config) { c.Win = 5; c.MaxDelta = 2 },
			func(t *testing.T, c *Config) {
				if c.MaxDelta != 0 {
					t.Fatalf("max delta %v", c.MaxDelta)
				}
			},
		},
		{
			"negative region size",
			func(c *Config) { c.RegionW = -4; c.RegionH = 10 },
			func(t *testing.T, c *Config) {
				if c.RegionW != 0 || c.RegionH != 0 {
					t.Fatalf("region %dx%d", c.RegionW, c.RegionH)
				}
			},
		},
		{
			"auto click interval above cap",
			func(c *Config) { c.AutoClickIntervalSeconds = 500 },
			func(t *testing.T, c *Config) {
				if c.AutoClickIntervalSeconds != 1 {
					t.Fatalf("auto click interval %v", c.AutoClickIntervalSeconds)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(c)
			if err := c.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			tc.check(t, c)
		})
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalSeconds != 0.5 || cfg.Win != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.IntervalSeconds = 1.5
	cfg.Win = 4
	cfg.MaxDelta = 9
	cfg.RegionX, cfg.RegionY, cfg.RegionW, cfg.RegionH = 10, 20, 300, 80
	cfg.NotifyTopic = "delta-wins"
	cfg.AutoClick = true
	cfg.AutoClickX, cfg.AutoClickY, cfg.AutoClickSet = 640, 480, true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.IntervalSeconds != 1.5 || got.Win != 4 || got.MaxDelta != 9 {
		t.Fatalf("policy fields lost: %+v", got)
	}
	if got.RegionW != 300 || got.RegionH != 80 {
		t.Fatalf("region lost: %+v", got)
	}
	if got.NotifyTopic != "delta-wins" || !got.AutoClick || !got.AutoClickSet {
		t.Fatalf("action fields lost: %+v", got)
	}
}

func TestLoad_CorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}
