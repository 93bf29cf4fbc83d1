package tube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/tubegen/pkg/math"
)

func TestNewBuildsImmediately(t *testing.T) {
	r := New(straightZ(), scenarioParams())

	assert.Equal(t, 1, r.Builds())
	assert.Equal(t, 12, r.Mesh().VertexCount())
	assert.Len(t, r.Centerline(), 3)
	assert.Equal(t, Fingerprint(straightZ(), scenarioParams()), r.Fingerprint())
	assert.False(t, r.Dirty())
}

func TestRebuildIfNeededUnchanged(t *testing.T) {
	r := New(straightZ(), scenarioParams())

	for i := 0; i < 3; i++ {
		assert.False(t, r.Tick())
	}
	assert.Equal(t, 1, r.Builds())
}

func TestRebuildIfNeededOnParamChange(t *testing.T) {
	r := New(straightZ(), scenarioParams())

	p := r.Params()
	p.Segments = 6
	r.SetParams(p)
	assert.Equal(t, 12, r.Mesh().VertexCount(), "SetParams must not rebuild")

	assert.True(t, r.RebuildIfNeeded())
	assert.Equal(t, 18, r.Mesh().VertexCount())
	assert.Equal(t, 2, r.Builds())

	assert.False(t, r.RebuildIfNeeded(), "fingerprint must be stored after a rebuild")
}

func TestRebuildIfNeededIgnoresUVAndInside(t *testing.T) {
	r := New(straightZ(), scenarioParams())
	before := r.Snapshot()

	p := r.Params()
	p.Inside = true
	p.UVScale = math.Vec2{X: 9, Y: 9}
	r.SetParams(p)

	assert.False(t, r.RebuildIfNeeded())
	assert.Equal(t, before, r.Mesh(), "mesh keeps the old facing until a covered change")

	r.Rebuild()
	assert.Equal(t, before.Normals[0].Neg(), r.Mesh().Normals[0])
}

func TestSetPositionsDefersRebuild(t *testing.T) {
	r := New(straightZ(), scenarioParams())

	r.SetPositions(Polyline{{}, {Z: 5}, {X: 5, Z: 5}})
	assert.Equal(t, 12, r.Mesh().VertexCount())
	assert.True(t, r.Dirty())

	assert.True(t, r.Tick())
	assert.Equal(t, 5*4, r.Mesh().VertexCount())
}

func TestInPlacePointEditTriggersRebuild(t *testing.T) {
	line := straightZ()
	r := New(line, scenarioParams())

	line[1].X = 3
	assert.True(t, r.RebuildIfNeeded())
	assert.Equal(t, line[1], r.Centerline()[2])
}

func TestSnapshotSurvivesRebuild(t *testing.T) {
	r := New(straightZ(), scenarioParams())
	live := r.Mesh()
	snap := r.Snapshot()

	r.SetPositions(Polyline{{X: 1}, {X: 1, Z: 20}})
	require.True(t, r.Tick())

	assert.Same(t, live, r.Mesh(), "live buffers are reused in place")
	assert.NotEqual(t, snap.Positions, r.Mesh().Positions)
	assert.InDelta(t, 0, snap.Positions[0].X, tol)
}

func TestRendererPositionQueries(t *testing.T) {
	r := New(straightZ(), scenarioParams())

	assert.Equal(t, math.Vec3{Z: 10}, r.Position(1))
	assert.Equal(t, r.Position(1), r.PositionAt(1))
	assert.Equal(t, math.Vec3{Z: 5}, r.PositionAt(0.5))
	assert.Equal(t, math.Vec3{Z: 10}, r.PositionAt(7))
	assert.Panics(t, func() { r.Position(2) })
}

func TestRendererDegenerateInputs(t *testing.T) {
	assert.NotPanics(t, func() {
		r := New(nil, DefaultParams())
		assert.Zero(t, r.Mesh().VertexCount())
		assert.False(t, r.Tick())
	})

	r := New(Polyline{{X: 1}}, DefaultParams())
	assert.Equal(t, DefaultParams().Segments, r.Mesh().VertexCount())
	assert.Len(t, r.Centerline(), 1)
}

func TestDebugMarkers(t *testing.T) {
	p := scenarioParams()
	p.StartWidth = 1
	p.EndWidth = 3
	r := New(straightZ(), p)

	assert.Nil(t, r.DebugMarkers())

	r.SetShowNodes(true)
	markers := r.DebugMarkers()
	require.Len(t, markers, 2)
	assert.Equal(t, Marker{Position: math.Vec3{}, Radius: 1}, markers[0])
	assert.Equal(t, Marker{Position: math.Vec3{Z: 10}, Radius: 2}, markers[1])

	withOpt := New(straightZ(), p, WithShowNodes(true))
	assert.True(t, withOpt.ShowNodes())
	assert.Len(t, withOpt.DebugMarkers(), 2)
}

func TestRendererLogsBuilds(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := New(straightZ(), scenarioParams(), WithLogger(zap.New(core)))

	entries := logs.FilterMessage("tube mesh built").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 12, fields["vertices"])
	assert.EqualValues(t, 3, fields["rings"])

	r.Tick()
	assert.Equal(t, 1, logs.FilterMessage("tube mesh built").Len())
}
