package tube

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tubegen/pkg/math"
)

// Mesh holds the generated vertex and index buffers.
// Vertex k of ring i at segment j lives at index i*segments + j.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32 // Triangle list; the final ring's slots stay zero
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangle slots in the index buffer,
// including the unused zero slots reserved for the final ring.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Positions: append([]math.Vec3(nil), m.Positions...),
		Normals:   append([]math.Vec3(nil), m.Normals...),
		UVs:       append([]math.Vec2(nil), m.UVs...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty mesh returns zero vectors.
func (m *Mesh) Bounds() (minV, maxV math.Vec3) {
	if len(m.Positions) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	minV, maxV = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		minV = minV.Min(p)
		maxV = maxV.Max(p)
	}
	return minV, maxV
}

// Transformed returns a copy with positions and normals moved by xf.
func (m *Mesh) Transformed(xf math.Mat4) *Mesh {
	out := m.Clone()
	for i, p := range out.Positions {
		out.Positions[i] = xf.TransformPoint(p)
	}
	for i, n := range out.Normals {
		out.Normals[i] = xf.TransformDirection(n).Normalize()
	}
	return out
}

// BuildMesh builds a new mesh around an interpolated centerline.
// controlCount is the length of the polyline the centerline came from.
func BuildMesh(centerline Polyline, controlCount int, p Params) *Mesh {
	m := &Mesh{}
	m.Rebuild(centerline, controlCount, p)
	return m
}

// Rebuild regenerates every buffer from scratch, reusing the existing storage
// when it is large enough.
func (m *Mesh) Rebuild(centerline Polyline, controlCount int, p Params) {
	rings := len(centerline)
	segments := max(p.Segments, 0)
	count := rings * segments

	m.Positions = resize(m.Positions, count)
	m.Normals = resize(m.Normals, count)
	m.UVs = resize(m.UVs, count)
	m.Indices = resize(m.Indices, 6*count)
	clear(m.Indices)

	if count == 0 {
		return
	}

	theta := 2 * math.Pi / float32(segments)
	s := uint32(segments)

	for i := 0; i < rings; i++ {
		center := centerline[i]
		dia := math.Lerp(p.StartWidth, p.EndWidth, float32(i)/float32(rings))

		// up is left unnormalized; a forward parallel to world up collapses the ring.
		forward := ringForward(centerline, i)
		up := forward.Cross(math.Up)
		right := forward.Cross(up)

		v := float32(i*controlCount) / float32(p.Subdivisions)

		for j := 0; j < segments; j++ {
			t := theta * float32(j)
			vert := center.
				Add(up.Scale(math32.Sin(t) * dia)).
				Add(right.Scale(math32.Cos(t) * dia))

			x := i*segments + j
			normal := vert.Sub(center).Normalize()
			if p.Inside {
				normal = normal.Neg()
			}
			m.Positions[x] = vert
			m.Normals[x] = normal
			m.UVs[x] = p.UVScale.Mul(math.Vec2{X: t / (2 * math.Pi), Y: v})

			if i >= rings-1 {
				continue
			}

			// Neighbors use flat index arithmetic: x+1 and x+s-1 are not
			// wrapped within the ring.
			xi := uint32(x)
			tri := m.Indices[x*6 : x*6+6]
			if p.Inside {
				tri[0], tri[1], tri[2] = xi, xi+s, xi+1
				tri[3], tri[4], tri[5] = xi, xi+s-1, xi+s
			} else {
				tri[0], tri[1], tri[2] = xi+1, xi+s, xi
				tri[3], tri[4], tri[5] = xi+s, xi+s-1, xi
			}
		}
	}
}

// ringForward returns the direction from the previous to the next sample,
// clamped to the centerline ends so the first and last tangents are one-sided.
func ringForward(c Polyline, i int) math.Vec3 {
	prev := c[max(i-1, 0)]
	next := c[min(i+1, len(c)-1)]
	return next.Sub(prev).Normalize()
}

func resize[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]T, n)
}
