package tube

import (
	"errors"
	"fmt"

	"github.com/Faultbox/tubegen/pkg/math"
)

// Validation errors returned by Params.Validate.
var (
	ErrSubdivisions = errors.New("subdivisions must be at least 1")
	ErrSegments     = errors.New("segments must not be negative")
	ErrWidth        = errors.New("width must not be negative")
)

// Params holds the settings that shape a tube.
type Params struct {
	Subdivisions int       `yaml:"subdivisions"` // Centerline samples per control interval
	Segments     int       `yaml:"segments"`     // Vertices around each ring
	StartWidth   float32   `yaml:"start_width"`  // Ring size at the first control point
	EndWidth     float32   `yaml:"end_width"`    // Ring size approached at the last control point
	UVScale      math.Vec2 `yaml:"uv_scale"`     // Multiplier applied to generated UVs
	Inside       bool      `yaml:"inside"`       // Face normals inward (tunnels)
}

// DefaultParams returns an outward-facing tube with 8 segments and 3 subdivisions.
func DefaultParams() Params {
	return Params{
		Subdivisions: 3,
		Segments:     8,
		StartWidth:   1,
		EndWidth:     1,
		UVScale:      math.Vec2{X: 1, Y: 1},
		Inside:       false,
	}
}

// Validate reports parameters outside their allowed ranges.
// Building never calls this; out of range values produce degenerate meshes.
func (p Params) Validate() error {
	if p.Subdivisions < 1 {
		return fmt.Errorf("%w: got %d", ErrSubdivisions, p.Subdivisions)
	}
	if p.Segments < 0 {
		return fmt.Errorf("%w: got %d", ErrSegments, p.Segments)
	}
	if p.StartWidth < 0 {
		return fmt.Errorf("start %w: got %g", ErrWidth, p.StartWidth)
	}
	if p.EndWidth < 0 {
		return fmt.Errorf("end %w: got %g", ErrWidth, p.EndWidth)
	}
	return nil
}
