package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for the monitor and app behavior.
// Fields are loaded from a JSON file and edited through the settings panel.
// Strict run-time validation happens in the monitor package; Validate here
// only clamps persisted values back into sane ranges.
type Config struct {
	Debug bool `json:"debug"`

	// Sampling parameters
	IntervalSeconds float64 `json:"interval_seconds"`
	Win             float64 `json:"win"`
	MinBaseline     float64 `json:"min_baseline"`
	MaxDelta        float64 `json:"max_delta"` // 0 disables the upper bound

	// Monitored region persistence
	RegionX int `json:"region_x"`
	RegionY int `json:"region_y"`
	RegionW int `json:"region_w"`
	RegionH int `json:"region_h"`

	// Click-on-win action
	ClickOnWin bool `json:"click_on_win"`
	ClickX     int  `json:"click_x"`
	ClickY     int  `json:"click_y"`
	ClickSet   bool `json:"click_set"`

	// Push notification (empty topic disables)
	NotifyTopic   string `json:"notify_topic"`
	NotifyMessage string `json:"notify_message"`
	NotifyServer  string `json:"notify_server"`

	// Auto-clicker
	AutoClick                bool    `json:"auto_click"`
	AutoClickX               int     `json:"auto_click_x"`
	AutoClickY               int     `json:"auto_click_y"`
	AutoClickSet             bool    `json:"auto_click_set"`
	AutoClickIntervalSeconds float64 `json:"auto_click_interval_seconds"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                    false,
		IntervalSeconds:          0.5,
		Win:                      2,
		MinBaseline:              0,
		MaxDelta:                 0,
		NotifyServer:             "",
		AutoClickIntervalSeconds: 1,
	}
}

// Validate clamps persisted values back into safe ranges. It never rejects:
// a hand-edited file degrades to defaults instead of blocking startup.
func (c *Config) Validate() error {
	if c.IntervalSeconds <= 0 || c.IntervalSeconds > 60 {
		c.IntervalSeconds = 0.5
	}
	if c.Win < 0 {
		c.Win = 0
	}
	if c.MinBaseline < 0 {
		c.MinBaseline = 0
	}
	if c.MaxDelta != 0 && c.MaxDelta < c.Win {
		c.MaxDelta = 0
	}
	if c.RegionW < 0 || c.RegionH < 0 {
		c.RegionW, c.RegionH = 0, 0
	}
	if c.AutoClickIntervalSeconds <= 0 || c.AutoClickIntervalSeconds > 300 {
		c.AutoClickIntervalSeconds = 1
	}
	return nil
}

// DefaultPath resolves the config file location under the XDG config home.
func DefaultPath() string {
	p, err := xdg.ConfigFile(filepath.Join("deltamon", "config.json"))
	if err != nil {
		return filepath.Join(".", "deltamon.json")
	}
	return p
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
