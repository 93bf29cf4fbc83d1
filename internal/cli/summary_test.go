package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/tubegen/pkg/tube"
)

func TestSummarize(t *testing.T) {
	p := tube.DefaultParams()
	p.Subdivisions = 2
	p.Segments = 4
	r := tube.New(tube.Polyline{{}, {Z: 10}}, p)

	s := Summarize("tube", r)
	assert.Equal(t, 2, s.Controls)
	assert.Equal(t, 3, s.Rings)
	assert.Equal(t, 12, s.Vertices)
	assert.Equal(t, 24, s.Triangles)
	assert.Equal(t, r.Fingerprint(), s.Fingerprint)
	assert.InDelta(t, 10, s.Max.Z, 1e-5)
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(NewStyles(DefaultTheme), Summary{
		Name:        "tunnel",
		Controls:    3,
		Vertices:    40,
		Fingerprint: 0xabc,
		Inside:      true,
	})

	for _, want := range []string{"tunnel", "controls", "40", "inward", "0000000000000abc"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 8, strings.Count(out, "\n"))
}
