package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultXMin        = -5.0
	DefaultXMax        = 5.0
	DefaultThetaMin    = -1.0
	DefaultThetaMax    = 1.0
	DefaultSamples     = 100
	DefaultFrames      = 100
	DefaultIntervalMs  = 100
	DefaultTheme       = "cyberpunk"
	DefaultPanelWidth  = 48
	DefaultPanelHeight = 18
	DefaultElevation   = 30.0
	DefaultAzimuth     = -60.0
)

// ErrInvalid marks a configuration that cannot be rendered.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	View      ViewConfig      `yaml:"view"`
}

type AxisConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Samples int     `yaml:"samples"`
}

type GridConfig struct {
	X     AxisConfig `yaml:"x"`
	Theta AxisConfig `yaml:"theta"`
}

type AnimationConfig struct {
	Start      int  `yaml:"start"`
	Stop       int  `yaml:"stop"`
	Step       int  `yaml:"step"`
	IntervalMs int  `yaml:"interval_ms"`
	Repeat     bool `yaml:"repeat"`
	Blit       bool `yaml:"blit"`
}

type ViewConfig struct {
	Theme        string  `yaml:"theme"`
	PanelWidth   int     `yaml:"panel_width"`
	PanelHeight  int     `yaml:"panel_height"`
	ElevationDeg float64 `yaml:"elevation_deg"`
	AzimuthDeg   float64 `yaml:"azimuth_deg"`
	RealCmap     string  `yaml:"real_cmap"`
	ImagCmap     string  `yaml:"imag_cmap"`
	Profile      bool    `yaml:"profile"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			X:     AxisConfig{Min: DefaultXMin, Max: DefaultXMax, Samples: DefaultSamples},
			Theta: AxisConfig{Min: DefaultThetaMin, Max: DefaultThetaMax, Samples: DefaultSamples},
		},
		Animation: AnimationConfig{
			Start:      0,
			Stop:       DefaultFrames,
			Step:       1,
			IntervalMs: DefaultIntervalMs,
			Repeat:     true,
		},
		View: ViewConfig{
			Theme:        DefaultTheme,
			PanelWidth:   DefaultPanelWidth,
			PanelHeight:  DefaultPanelHeight,
			ElevationDeg: DefaultElevation,
			AzimuthDeg:   DefaultAzimuth,
			RealCmap:     "viridis",
			ImagCmap:     "inferno",
			Profile:      true,
		},
	}
}

// Load reads a YAML file over the defaults, so missing keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	for _, a := range []struct {
		name string
		axis AxisConfig
	}{{"grid.x", c.Grid.X}, {"grid.theta", c.Grid.Theta}} {
		if a.axis.Samples < 1 {
			return fmt.Errorf("%w: %s.samples must be positive", ErrInvalid, a.name)
		}
		if a.axis.Max < a.axis.Min {
			return fmt.Errorf("%w: %s.max below min", ErrInvalid, a.name)
		}
	}
	an := c.Animation
	if an.Step <= 0 {
		return fmt.Errorf("%w: animation.step must be positive", ErrInvalid)
	}
	if an.Stop <= an.Start {
		return fmt.Errorf("%w: animation.stop must exceed start", ErrInvalid)
	}
	if an.IntervalMs <= 0 {
		return fmt.Errorf("%w: animation.interval_ms must be positive", ErrInvalid)
	}
	if c.View.PanelWidth < 8 || c.View.PanelHeight < 4 {
		return fmt.Errorf("%w: view panel must be at least 8x4", ErrInvalid)
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.Animation.IntervalMs) * time.Millisecond
}
