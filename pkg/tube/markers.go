package tube

import "github.com/Faultbox/tubegen/pkg/math"

// Marker is a debug sphere drawn at a control point.
type Marker struct {
	Position math.Vec3
	Radius   float32
}

// Markers returns one marker per control point. The radius uses the ring
// width formula indexed against the raw polyline rather than the centerline.
func Markers(p Polyline, params Params) []Marker {
	markers := make([]Marker, len(p))
	for i, pos := range p {
		markers[i] = Marker{
			Position: pos,
			Radius:   math.Lerp(params.StartWidth, params.EndWidth, float32(i)/float32(len(p))),
		}
	}
	return markers
}

// DebugMarkers returns the control point markers, or nil when show nodes is off.
func (r *Renderer) DebugMarkers() []Marker {
	if !r.showNodes {
		return nil
	}
	return Markers(r.positions, r.params)
}
