package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/tubegen/pkg/tube"
)

// OBJOptions controls the Wavefront OBJ output.
type OBJOptions struct {
	Name      string    // Object name ("o" line), omitted when empty
	SkipUVs   bool      // Omit "vt" records
	SkipNorms bool      // Omit "vn" records
	Lines     []float32 // Extra line-list vertices ([x,y,z] pairs), written as "l" elements
}

// WriteOBJ writes the mesh as Wavefront OBJ.
// Degenerate triangles, such as the zero-filled slots of the final ring, are skipped.
func WriteOBJ(w io.Writer, m *tube.Mesh, opts OBJOptions) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# tubegen mesh: %d vertices\n", m.VertexCount())
	if opts.Name != "" {
		fmt.Fprintf(bw, "o %s\n", opts.Name)
	}

	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	if !opts.SkipUVs {
		for _, uv := range m.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
	}
	if !opts.SkipNorms {
		for _, n := range m.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if a == b || b == c || a == c {
			continue
		}
		fmt.Fprintf(bw, "f %s %s %s\n", faceRef(a, opts), faceRef(b, opts), faceRef(c, opts))
	}

	// Line vertices are appended after the mesh vertices.
	base := m.VertexCount() + 1
	for i := 0; i+5 < len(opts.Lines); i += 6 {
		l := opts.Lines[i : i+6]
		fmt.Fprintf(bw, "v %g %g %g\nv %g %g %g\n", l[0], l[1], l[2], l[3], l[4], l[5])
		fmt.Fprintf(bw, "l %d %d\n", base, base+1)
		base += 2
	}

	return bw.Flush()
}

// faceRef formats a 1-based OBJ face vertex reference.
func faceRef(idx uint32, opts OBJOptions) string {
	k := idx + 1
	switch {
	case !opts.SkipUVs && !opts.SkipNorms:
		return fmt.Sprintf("%d/%d/%d", k, k, k)
	case !opts.SkipUVs:
		return fmt.Sprintf("%d/%d", k, k)
	case !opts.SkipNorms:
		return fmt.Sprintf("%d//%d", k, k)
	default:
		return fmt.Sprintf("%d", k)
	}
}
