// Package cli provides terminal output helpers for the tubegen command.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Faultbox/tubegen/pkg/math"
	"github.com/Faultbox/tubegen/pkg/tube"
)

// Theme defines the colors used for summaries.
type Theme struct {
	Primary lipgloss.Color
	Dim     lipgloss.Color
}

// DefaultTheme is the default color scheme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00afd7"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds the styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Dim).Width(12),
		Value: lipgloss.NewStyle(),
	}
}

// Summary describes one generated tube.
type Summary struct {
	Name        string
	Controls    int
	Rings       int
	Vertices    int
	Triangles   int // Index buffer slots / 3, zero tail included
	Fingerprint uint64
	Min, Max    math.Vec3
	Inside      bool
}

// Summarize collects the summary fields from a renderer.
func Summarize(name string, r *tube.Renderer) Summary {
	m := r.Mesh()
	lo, hi := m.Bounds()
	return Summary{
		Name:        name,
		Controls:    len(r.Positions()),
		Rings:       len(r.Centerline()),
		Vertices:    m.VertexCount(),
		Triangles:   m.TriangleCount(),
		Fingerprint: r.Fingerprint(),
		Min:         lo,
		Max:         hi,
		Inside:      r.Params().Inside,
	}
}

// RenderSummary renders the summary as labeled lines.
func RenderSummary(st Styles, s Summary) string {
	facing := "outward"
	if s.Inside {
		facing = "inward"
	}

	rows := [][2]string{
		{"controls", fmt.Sprint(s.Controls)},
		{"rings", fmt.Sprint(s.Rings)},
		{"vertices", fmt.Sprint(s.Vertices)},
		{"triangles", fmt.Sprint(s.Triangles)},
		{"facing", facing},
		{"bounds", fmt.Sprintf("(%g, %g, %g) - (%g, %g, %g)", s.Min.X, s.Min.Y, s.Min.Z, s.Max.X, s.Max.Y, s.Max.Z)},
		{"fingerprint", fmt.Sprintf("%016x", s.Fingerprint)},
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(s.Name))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render(row[0]), st.Value.Render(row[1])))
		b.WriteByte('\n')
	}
	return b.String()
}
