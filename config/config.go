package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FailurePolicy decides whether a failed preload holds the world in the
// load phase.
type FailurePolicy string

const (
	// FailurePass lets failed assets count as done, like finished ones.
	FailurePass FailurePolicy = "pass"
	// FailureBlock keeps the world in the load phase while any asset failed.
	FailureBlock FailurePolicy = "block"
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Logging   LoggingConfig   `yaml:"logging"`
	Assets    AssetsConfig    `yaml:"assets"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
}

type WindowConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	TPS           int    `yaml:"tps"`
	CaptureCursor bool   `yaml:"capture_cursor"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

type AssetsConfig struct {
	// Root is searched before the embedded copies.
	Root    string `yaml:"root"`
	Scene   string `yaml:"scene"`
	Workers int    `yaml:"workers"`
	Watch   bool   `yaml:"watch"`
}

type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	GroundHeight float64 `yaml:"ground_height"`
	// GroundDamping is the fraction of horizontal velocity a grounded body
	// keeps after one second.
	GroundDamping float64 `yaml:"ground_damping"`
	Iterations    int     `yaml:"iterations"`
}

type LifecycleConfig struct {
	FailurePolicy FailurePolicy `yaml:"failure_policy"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "fps",
			Width:         1280,
			Height:        720,
			TPS:           60,
			CaptureCursor: true,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Assets: AssetsConfig{
			Root:    ".",
			Scene:   "scenes/map.scn",
			Workers: 4,
			Watch:   true,
		},
		Physics: PhysicsConfig{
			Gravity:       -9.81,
			GroundHeight:  0,
			GroundDamping: 0.05,
			Iterations:    10,
		},
		Lifecycle: LifecycleConfig{FailurePolicy: FailurePass},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps %d must be positive", c.Window.TPS))
	}
	if c.Assets.Scene == "" {
		errs = append(errs, errors.New("assets scene is empty"))
	}
	if c.Assets.Workers <= 0 {
		errs = append(errs, fmt.Errorf("assets workers %d must be positive", c.Assets.Workers))
	}
	if c.Physics.GroundDamping < 0 || c.Physics.GroundDamping > 1 {
		errs = append(errs, fmt.Errorf("physics ground_damping %v must be within [0, 1]", c.Physics.GroundDamping))
	}
	if c.Physics.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("physics iterations %d must be positive", c.Physics.Iterations))
	}
	switch c.Lifecycle.FailurePolicy {
	case FailurePass, FailureBlock:
	default:
		errs = append(errs, fmt.Errorf("unknown lifecycle failure_policy %q", c.Lifecycle.FailurePolicy))
	}
	return errors.Join(errs...)
}
