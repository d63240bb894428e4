// Package config loads the tracker's TOML configuration.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds all tunable settings for the tracker.
type Config struct {
	Camera    CameraConfig    `toml:"camera"`
	Detector  DetectorConfig  `toml:"detector"`
	OSC       OSCConfig       `toml:"osc"`
	Smoothing SmoothingConfig `toml:"smoothing"`
	Recording RecordingConfig `toml:"recording"`
	Window    WindowConfig    `toml:"window"`
}

// CameraConfig selects the capture device and resolution.
type CameraConfig struct {
	DeviceID int `toml:"device_id"`
	Width    int `toml:"width"`
	Height   int `toml:"height"`
}

// DetectorConfig tunes the hand landmark detector.
type DetectorConfig struct {
	MaxHands        int     `toml:"max_hands"`
	MinConfidence   float64 `toml:"min_detection_confidence"`
	MinTrackingConf float64 `toml:"min_tracking_confidence"`
}

// OSCConfig names the transport endpoint.
type OSCConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SmoothingConfig sets the moving-average window per metric.
type SmoothingConfig struct {
	Window int `toml:"window"`
}

// RecordingConfig enables the optional session recorder. Path is the
// sqlite database file; empty means the default under the user's data dir.
type RecordingConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// WindowConfig names the preview window.
type WindowConfig struct {
	Title string `toml:"title"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Camera: CameraConfig{
			DeviceID: 0,
			Width:    640,
			Height:   480,
		},
		Detector: DetectorConfig{
			MaxHands:        2,
			MinConfidence:   0.7,
			MinTrackingConf: 0.7,
		},
		OSC: OSCConfig{
			Host: "127.0.0.1",
			Port: 57120,
		},
		Smoothing: SmoothingConfig{
			Window: 5,
		},
		Window: WindowConfig{
			Title: "Mudra Hand Tracking",
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		return fmt.Errorf("camera resolution %dx%d invalid", c.Camera.Width, c.Camera.Height)
	}
	if c.Detector.MaxHands < 1 || c.Detector.MaxHands > 2 {
		return fmt.Errorf("max_hands %d outside 1..2", c.Detector.MaxHands)
	}
	if c.Detector.MinConfidence < 0 || c.Detector.MinConfidence > 1 {
		return fmt.Errorf("min_detection_confidence %f outside 0..1", c.Detector.MinConfidence)
	}
	if c.Detector.MinTrackingConf < 0 || c.Detector.MinTrackingConf > 1 {
		return fmt.Errorf("min_tracking_confidence %f outside 0..1", c.Detector.MinTrackingConf)
	}
	if c.OSC.Host == "" {
		return fmt.Errorf("osc host missing")
	}
	if c.OSC.Port < 1 || c.OSC.Port > 65535 {
		return fmt.Errorf("osc port %d outside 1..65535", c.OSC.Port)
	}
	if c.Smoothing.Window < 1 {
		return fmt.Errorf("smoothing window %d below 1", c.Smoothing.Window)
	}
	return nil
}
