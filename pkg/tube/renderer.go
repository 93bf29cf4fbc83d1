package tube

import (
	"go.uber.org/zap"

	"github.com/Faultbox/tubegen/pkg/math"
)

// Renderer owns a polyline, its parameters and the mesh generated from them.
// A host calls RebuildIfNeeded once per update cycle; the mesh is regenerated
// only when the fingerprint of the inputs changed since the last build.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	params    Params
	positions Polyline
	showNodes bool
	log       *zap.Logger

	centerline  Polyline
	mesh        Mesh
	fingerprint uint64
	builds      int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used to report rebuilds.
func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}

// WithShowNodes enables debug markers at the control points.
func WithShowNodes(show bool) Option {
	return func(r *Renderer) {
		r.showNodes = show
	}
}

// New creates a Renderer and builds the initial mesh.
// positions stays owned by the caller and is only read during builds.
func New(positions Polyline, params Params, opts ...Option) *Renderer {
	r := &Renderer{
		params:    params,
		positions: positions,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Rebuild()
	return r
}

// Params returns the current parameters.
func (r *Renderer) Params() Params {
	return r.params
}

// SetParams replaces the parameters. The mesh is rebuilt on the next
// RebuildIfNeeded if the change is covered by the fingerprint.
func (r *Renderer) SetParams(p Params) {
	r.params = p
}

// Positions returns the control polyline.
func (r *Renderer) Positions() Polyline {
	return r.positions
}

// SetPositions replaces the control polyline without rebuilding.
func (r *Renderer) SetPositions(positions Polyline) {
	r.positions = positions
}

// Position returns control point i. Out of range indices panic.
func (r *Renderer) Position(i int) math.Vec3 {
	return r.positions.At(i)
}

// PositionAt returns the interpolated point at fractional index f.
func (r *Renderer) PositionAt(f float32) math.Vec3 {
	return r.positions.Sample(f)
}

// ShowNodes reports whether debug markers are enabled.
func (r *Renderer) ShowNodes() bool {
	return r.showNodes
}

// SetShowNodes toggles debug markers.
func (r *Renderer) SetShowNodes(show bool) {
	r.showNodes = show
}

// Fingerprint returns the fingerprint stored by the last build.
func (r *Renderer) Fingerprint() uint64 {
	return r.fingerprint
}

// Builds returns how many times the mesh has been generated.
func (r *Renderer) Builds() int {
	return r.builds
}

// Dirty reports whether the inputs changed since the last build.
func (r *Renderer) Dirty() bool {
	return Fingerprint(r.positions, r.params) != r.fingerprint
}

// RebuildIfNeeded rebuilds the mesh when the fingerprint changed and reports
// whether it did.
func (r *Renderer) RebuildIfNeeded() bool {
	if !r.Dirty() {
		return false
	}
	r.Rebuild()
	return true
}

// Tick is the per-update entry point for a host scheduler.
func (r *Renderer) Tick() bool {
	return r.RebuildIfNeeded()
}

// Rebuild regenerates the mesh unconditionally and stores the new fingerprint.
func (r *Renderer) Rebuild() {
	r.centerline = InterpolateInto(r.centerline, r.positions, r.params.Subdivisions)
	r.mesh.Rebuild(r.centerline, len(r.positions), r.params)
	r.fingerprint = Fingerprint(r.positions, r.params)
	r.builds++

	r.log.Debug("tube mesh built",
		zap.Int("controls", len(r.positions)),
		zap.Int("rings", len(r.centerline)),
		zap.Int("vertices", r.mesh.VertexCount()),
		zap.Int("triangles", r.mesh.TriangleCount()),
		zap.Uint64("fingerprint", r.fingerprint),
	)
}

// Mesh returns the live buffers. They are overwritten by the next rebuild;
// use Snapshot to keep a stable copy.
func (r *Renderer) Mesh() *Mesh {
	return &r.mesh
}

// Snapshot returns a copy of the current mesh that later rebuilds do not touch.
func (r *Renderer) Snapshot() *Mesh {
	return r.mesh.Clone()
}

// Centerline returns a copy of the centerline used by the last build.
func (r *Renderer) Centerline() Polyline {
	return r.centerline.Clone()
}
