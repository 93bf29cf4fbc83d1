package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Faultbox/tubegen/pkg/math"
	"github.com/Faultbox/tubegen/pkg/tube"
)

// MsgpackVersion is the current snapshot layout version.
const MsgpackVersion = 1

// ErrCorruptSnapshot is returned when a decoded snapshot has inconsistent buffers.
var ErrCorruptSnapshot = errors.New("corrupt mesh snapshot")

// snapshot is the on-disk layout: flat float arrays ready for GPU upload.
type snapshot struct {
	Version   int       `msgpack:"version"`
	Positions []float32 `msgpack:"positions"`
	Normals   []float32 `msgpack:"normals"`
	UVs       []float32 `msgpack:"uvs"`
	Indices   []uint32  `msgpack:"indices"`
}

// WriteMsgpack writes the mesh buffers as a msgpack snapshot.
func WriteMsgpack(w io.Writer, m *tube.Mesh) error {
	s := snapshot{
		Version:   MsgpackVersion,
		Positions: make([]float32, 0, len(m.Positions)*3),
		Normals:   make([]float32, 0, len(m.Normals)*3),
		UVs:       make([]float32, 0, len(m.UVs)*2),
		Indices:   m.Indices,
	}
	for _, p := range m.Positions {
		s.Positions = append(s.Positions, p.X, p.Y, p.Z)
	}
	for _, n := range m.Normals {
		s.Normals = append(s.Normals, n.X, n.Y, n.Z)
	}
	for _, uv := range m.UVs {
		s.UVs = append(s.UVs, uv.X, uv.Y)
	}
	return msgpack.NewEncoder(w).Encode(&s)
}

// ReadMsgpack decodes a snapshot written by WriteMsgpack.
func ReadMsgpack(r io.Reader) (*tube.Mesh, error) {
	var s snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	if s.Version != MsgpackVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptSnapshot, s.Version)
	}

	count := len(s.Positions) / 3
	if len(s.Positions)%3 != 0 || len(s.Normals) != count*3 || len(s.UVs) != count*2 {
		return nil, fmt.Errorf("%w: buffer sizes %d/%d/%d", ErrCorruptSnapshot,
			len(s.Positions), len(s.Normals), len(s.UVs))
	}
	for _, idx := range s.Indices {
		if int(idx) >= count {
			return nil, fmt.Errorf("%w: index %d out of range", ErrCorruptSnapshot, idx)
		}
	}

	m := &tube.Mesh{
		Positions: make([]math.Vec3, count),
		Normals:   make([]math.Vec3, count),
		UVs:       make([]math.Vec2, count),
		Indices:   s.Indices,
	}
	for i := 0; i < count; i++ {
		m.Positions[i] = math.Vec3{X: s.Positions[i*3], Y: s.Positions[i*3+1], Z: s.Positions[i*3+2]}
		m.Normals[i] = math.Vec3{X: s.Normals[i*3], Y: s.Normals[i*3+1], Z: s.Normals[i*3+2]}
		m.UVs[i] = math.Vec2{X: s.UVs[i*2], Y: s.UVs[i*2+1]}
	}
	return m, nil
}
