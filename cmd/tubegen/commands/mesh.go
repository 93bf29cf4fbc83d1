package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/tubegen/internal/config"
	"github.com/Faultbox/tubegen/internal/debug"
	"github.com/Faultbox/tubegen/internal/export"
	"github.com/Faultbox/tubegen/internal/logger"
	"github.com/Faultbox/tubegen/pkg/tube"
)

// newRenderer builds the initial mesh for the loaded configuration.
func newRenderer(c *config.Config) *tube.Renderer {
	return tube.New(c.Positions(), c.Tube,
		tube.WithLogger(logger.Named("tube")),
		tube.WithShowNodes(c.Nodes.Show),
	)
}

// outputFormat resolves the configured format, falling back to the path extension.
func outputFormat(c *config.Config) (export.Format, error) {
	if c.Output.Format != "" {
		return export.ParseFormat(c.Output.Format)
	}
	if c.Output.Path == "-" {
		return export.FormatOBJ, nil
	}
	return export.FormatFromPath(c.Output.Path)
}

// markerLines returns the debug marker wireframes in world space, or nil when hidden.
func markerLines(c *config.Config, r *tube.Renderer) []float32 {
	segments := c.Nodes.Segments
	if segments < 3 {
		segments = debug.DefaultMarkerSegments
	}
	return debug.GenerateMarkersWireframe(r.DebugMarkers(), c.Transform.Matrix(), segments)
}

// writeMesh exports the renderer's current mesh, moved by the configured transform.
// An output path of "-" writes to stdout.
func writeMesh(c *config.Config, r *tube.Renderer, stdout io.Writer) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	mesh := r.Mesh().Transformed(c.Transform.Matrix())
	opts := export.OBJOptions{
		Name:  objectName(c.Output.Path),
		Lines: markerLines(c, r),
	}

	if c.Output.Path == "-" {
		return export.Write(stdout, format, mesh, opts)
	}
	return export.WriteFile(c.Output.Path, format, mesh, opts)
}

func objectName(path string) string {
	if path == "" || path == "-" {
		return "tube"
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// openOutput opens path for writing, or returns stdout for "-".
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, f.Close, nil
}
