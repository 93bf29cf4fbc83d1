package tube

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tubegen/pkg/math"
)

// Polyline is an ordered sequence of control points.
type Polyline []math.Vec3

// At returns the raw control point at index i. Out of range indices panic.
func (p Polyline) At(i int) math.Vec3 {
	return p[i]
}

// Sample returns the point at fractional index f, blending linearly between
// the floor and ceil control points. Both indices are clamped to the valid
// range, so samples past either end collapse onto the end point.
// An empty polyline samples to the zero vector.
func (p Polyline) Sample(f float32) math.Vec3 {
	if len(p) == 0 {
		return math.Vec3{}
	}
	last := len(p) - 1
	floor := math32.Floor(f)
	a := clampIndex(int(floor), last)
	b := clampIndex(int(math32.Ceil(f)), last)
	if a == b {
		return p[a]
	}
	return p[a].Lerp(p[b], f-floor)
}

func clampIndex(i, last int) int {
	return max(0, min(last, i))
}

// Clone returns a copy that shares no storage with p.
func (p Polyline) Clone() Polyline {
	if p == nil {
		return nil
	}
	out := make(Polyline, len(p))
	copy(out, p)
	return out
}

// InterpolatedLen returns the centerline length produced by Interpolate for
// n control points.
func InterpolatedLen(n, subdivisions int) int {
	if n == 0 {
		return 0
	}
	return max(0, (n-1)*subdivisions) + 1
}

// Interpolate expands p into a centerline with subdivisions samples per
// control interval, followed by the last control point exactly once.
func Interpolate(p Polyline, subdivisions int) Polyline {
	return InterpolateInto(nil, p, subdivisions)
}

// InterpolateInto is Interpolate writing into dst's storage when it is large
// enough. The returned slice must be used in place of dst.
func InterpolateInto(dst, p Polyline, subdivisions int) Polyline {
	dst = dst[:0]
	if len(p) == 0 {
		return dst
	}

	samples := (len(p) - 1) * subdivisions
	for i := 0; i < samples; i++ {
		dst = append(dst, p.Sample(float32(i)/float32(subdivisions)))
	}
	return append(dst, p[len(p)-1])
}
