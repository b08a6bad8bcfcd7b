package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	goose "github.com/jeff-pow/silly-goose"
)

// Config describes a simulation setup: the border shell and the balls
// dropped inside it. Zero values fall back to the defaults below, so a
// partial config file only overrides what it names.
type Config struct {
	Border BorderConfig `yaml:"border"`
	Balls  []BallConfig `yaml:"balls"`

	// TimeStep is the fixed physics timestep in seconds.
	TimeStep float32 `yaml:"time_step"`
}

// BorderConfig describes the spherical arena.
type BorderConfig struct {
	Radius   float32    `yaml:"radius"`
	Segments int        `yaml:"segments"`
	Center   [3]float32 `yaml:"center"`
}

// BallConfig describes one ball.
type BallConfig struct {
	Radius float32    `yaml:"radius"`
	Start  [3]float32 `yaml:"start"`
	Color  [4]float32 `yaml:"color"`
}

// DefaultConfig returns the built-in scene: the standard border with
// one yellow ball dropped from above center and one red ball at the
// center.
func DefaultConfig() Config {
	return Config{
		Border: BorderConfig{
			Radius:   BorderRadius,
			Segments: 5,
		},
		Balls: []BallConfig{
			{Radius: 0.04, Start: [3]float32{0, 0.75, 0}, Color: [4]float32{1, 1, 0, 1}},
			{Radius: 0.04, Start: [3]float32{0, 0, 0}, Color: [4]float32{1, 0, 0, 1}},
		},
		TimeStep: DT,
	}
}

// LoadConfig reads a YAML config from path. A missing file is not an
// error: the defaults are returned so the simulation can always start.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			goose.Logger().Warn("config file not found, using defaults", "path", path)
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values with the built-in defaults.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Border.Radius == 0 {
		c.Border.Radius = d.Border.Radius
	}
	if c.Border.Segments == 0 {
		c.Border.Segments = d.Border.Segments
	}
	if c.TimeStep == 0 {
		c.TimeStep = d.TimeStep
	}
	if len(c.Balls) == 0 {
		c.Balls = d.Balls
	}
}

// Build assembles a Scene from the config: the border shell first, then
// every ball.
func (c Config) Build() *Scene {
	s := NewScene()
	s.CreateBorder(c.Border.Radius, c.Border.Segments, vec3(c.Border.Center))
	for _, b := range c.Balls {
		s.AddBall(b.Radius, vec3(b.Start), vec4(b.Color))
	}
	return s
}

func vec3(a [3]float32) goose.Vec3 { return goose.V3(a[0], a[1], a[2]) }
func vec4(a [4]float32) goose.Vec4 { return goose.V4(a[0], a[1], a[2], a[3]) }
