// Package config handles simulation configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all simulator settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
	Data       DataConfig       `yaml:"data"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds area update loop settings.
type SimulationConfig struct {
	TickRate           int           `yaml:"tick_rate"` // Updates per second
	Ticks              int           `yaml:"ticks"`     // Ticks to run before exiting, 0 runs forever
	HeartbeatInterval  time.Duration `yaml:"heartbeat_interval"`
	PerceptionInterval time.Duration `yaml:"perception_interval"`
	MaxSoundCount      int           `yaml:"max_sound_count"`
	SelectionDistance  float32       `yaml:"selection_distance"`
}

// CameraConfig holds viewport and camera settings.
type CameraConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FieldOfView float32 `yaml:"field_of_view"` // Degrees
	Mode        string  `yaml:"mode"`          // first_person, third_person, static, animated, dialog
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float32 `yaml:"master_volume"`
	MusicVolume  float32 `yaml:"music_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// DataConfig holds data file paths.
type DataConfig struct {
	LibraryFile string `yaml:"library_file"` // Asset library YAML
	AreaFile    string `yaml:"area_file"`    // Area definition YAML
	SoundDir    string `yaml:"sound_dir"`    // Directory of WAV files
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Camera modes accepted by CameraConfig.Mode.
var cameraModes = map[string]bool{
	"first_person": true,
	"third_person": true,
	"static":       true,
	"animated":     true,
	"dialog":       true,
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate:           60,
			Ticks:              600,
			HeartbeatInterval:  6 * time.Second,
			PerceptionInterval: time.Second,
			MaxSoundCount:      4,
			SelectionDistance:  64,
		},
		Camera: CameraConfig{
			Width:       1280,
			Height:      720,
			FieldOfView: 55,
			Mode:        "third_person",
		},
		Audio: AudioConfig{
			Enabled:      false,
			MasterVolume: 0.8,
			MusicVolume:  0.7,
			SFXVolume:    0.8,
		},
		Data: DataConfig{
			LibraryFile: "library.yaml",
			SoundDir:    "sounds",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// TickInterval returns the duration of one simulation tick.
func (c *Config) TickInterval() time.Duration {
	if c.Simulation.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Simulation.TickRate)
}

// Validate checks values that would break the update loop.
func (c *Config) Validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %d", c.Simulation.TickRate)
	}
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("simulation.ticks must not be negative, got %d", c.Simulation.Ticks)
	}
	if c.Simulation.MaxSoundCount < 0 {
		return fmt.Errorf("simulation.max_sound_count must not be negative, got %d", c.Simulation.MaxSoundCount)
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		return fmt.Errorf("camera size must be positive, got %dx%d", c.Camera.Width, c.Camera.Height)
	}
	if !cameraModes[c.Camera.Mode] {
		return fmt.Errorf("unknown camera.mode %q", c.Camera.Mode)
	}
	return nil
}
