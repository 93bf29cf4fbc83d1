// Package config handles tubegen configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/tubegen/pkg/math"
	"github.com/Faultbox/tubegen/pkg/tube"
)

// ErrEmptyPolyline is returned by Validate when no control points are configured.
var ErrEmptyPolyline = errors.New("polyline needs at least one control point")

// Config holds all generator settings.
type Config struct {
	Tube      tube.Params     `yaml:"tube"`
	Polyline  []Point         `yaml:"polyline"` // Control points as [x, y, z]
	Transform TransformConfig `yaml:"transform"`
	Nodes     NodesConfig     `yaml:"nodes"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Point is a control point written as a YAML sequence [x, y, z].
type Point [3]float32

// TransformConfig places the tube in the world, like a host object transform.
type TransformConfig struct {
	Position Point   `yaml:"position"`
	Yaw      float32 `yaml:"yaw"` // Degrees around the Y axis
	Scale    float32 `yaml:"scale"`
}

// NodesConfig holds debug marker settings.
type NodesConfig struct {
	Show     bool `yaml:"show"`
	Segments int  `yaml:"segments"` // Line segments per marker circle
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // "obj" or "msgpack"; empty picks from the path extension
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Tube: tube.DefaultParams(),
		Polyline: []Point{
			{0, 0, 0},
			{0, 0, 10},
		},
		Transform: TransformConfig{
			Scale: 1,
		},
		Nodes: NodesConfig{
			Show:     false,
			Segments: 16,
		},
		Output: OutputConfig{
			Path:   "tube.obj",
			Format: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Positions converts the configured control points to a polyline.
func (c *Config) Positions() tube.Polyline {
	out := make(tube.Polyline, len(c.Polyline))
	for i, p := range c.Polyline {
		out[i] = p.Vec3()
	}
	return out
}

// Vec3 converts the point to a vector.
func (p Point) Vec3() math.Vec3 {
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// Matrix returns the world transform.
func (t TransformConfig) Matrix() math.Mat4 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return math.TRS(t.Position.Vec3(), t.Yaw*math.Pi/180, math.Vec3{X: s, Y: s, Z: s})
}

// Validate checks the settings that would otherwise produce a degenerate mesh.
func (c *Config) Validate() error {
	if len(c.Polyline) == 0 {
		return ErrEmptyPolyline
	}
	if err := c.Tube.Validate(); err != nil {
		return fmt.Errorf("tube: %w", err)
	}
	if c.Nodes.Show && c.Nodes.Segments < 3 {
		return fmt.Errorf("nodes: segments must be at least 3, got %d", c.Nodes.Segments)
	}
	return nil
}
