// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tubegen/pkg/math"
	"github.com/Faultbox/tubegen/pkg/tube"
)

// DefaultMarkerSegments is the number of line segments per marker circle.
const DefaultMarkerSegments = 16

// MarkerWireframeVertexCount is the number of vertices for one marker wireframe
// (3 circles × segments edges × 2 endpoints).
func MarkerWireframeVertexCount(segments int) int {
	if segments < 3 {
		return 0
	}
	return 3 * segments * 2
}

// GenerateMarkerWireframeVertices creates line vertices for a wire sphere made
// of three axis-aligned circles (XY, YZ, XZ planes).
// Format: [x, y, z] per vertex, two vertices per line. Fewer than 3 segments
// produce no geometry.
func GenerateMarkerWireframeVertices(center math.Vec3, radius float32, segments int) []float32 {
	if segments < 3 {
		return nil
	}

	out := make([]float32, 0, MarkerWireframeVertexCount(segments)*3)
	step := 2 * math.Pi / float32(segments)

	// Each plane maps (cos, sin) of the circle onto two axes.
	planes := [3]func(c, s float32) math.Vec3{
		func(c, s float32) math.Vec3 { return math.Vec3{X: c, Y: s} },
		func(c, s float32) math.Vec3 { return math.Vec3{Y: c, Z: s} },
		func(c, s float32) math.Vec3 { return math.Vec3{X: c, Z: s} },
	}

	for _, plane := range planes {
		for i := 0; i < segments; i++ {
			a0 := step * float32(i)
			a1 := step * float32(i+1)
			p0 := center.Add(plane(math32.Cos(a0), math32.Sin(a0)).Scale(radius))
			p1 := center.Add(plane(math32.Cos(a1), math32.Sin(a1)).Scale(radius))
			out = append(out, p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z)
		}
	}
	return out
}

// GenerateMarkersWireframe creates wireframes for every marker, moved into
// world space by the host transform. Radii are scaled by the transform's X
// axis length, matching a uniformly scaled host.
func GenerateMarkersWireframe(markers []tube.Marker, xf math.Mat4, segments int) []float32 {
	if segments < 3 || len(markers) == 0 {
		return nil
	}

	scale := xf.TransformDirection(math.Vec3{X: 1}).Length()
	out := make([]float32, 0, len(markers)*MarkerWireframeVertexCount(segments)*3)
	for _, m := range markers {
		out = append(out, GenerateMarkerWireframeVertices(xf.TransformPoint(m.Position), m.Radius*scale, segments)...)
	}
	return out
}
