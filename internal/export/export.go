// Package export writes generated tube meshes to disk formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/tubegen/pkg/tube"
)

// Format identifies an output encoding.
type Format int

const (
	FormatOBJ     Format = iota // Wavefront OBJ text
	FormatMsgpack               // Flattened buffers encoded with msgpack
)

// ErrUnknownFormat is returned for unrecognized format names or extensions.
var ErrUnknownFormat = errors.New("unknown mesh format")

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatOBJ:
		return "obj"
	case FormatMsgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatMsgpack:
		return ".mpk"
	default:
		return ".obj"
	}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "obj":
		return FormatOBJ, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Write encodes the mesh to w in the given format.
func Write(w io.Writer, f Format, m *tube.Mesh, opts OBJOptions) error {
	switch f {
	case FormatOBJ:
		return WriteOBJ(w, m, opts)
	case FormatMsgpack:
		return WriteMsgpack(w, m)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// WriteFile writes the mesh to path, creating parent directories as needed.
func WriteFile(path string, f Format, m *tube.Mesh, opts OBJOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(file, f, m, opts); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
