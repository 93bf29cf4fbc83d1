package tube

import (
	"encoding/binary"
	gomath "math"

	"github.com/cespare/xxhash/v2"

	"github.com/Faultbox/tubegen/pkg/math"
)

// Fingerprint returns a cheap hash of everything that changes the mesh shape:
// the control points and the segment, subdivision and width parameters.
// UVScale and Inside are not part of the fingerprint, so changing only those
// does not trigger a rebuild through Renderer.RebuildIfNeeded.
//
// The points are hashed twice: an order-insensitive XOR fold of per-point
// hashes, and a hash of the sequence as a whole.
func Fingerprint(p Polyline, params Params) uint64 {
	var fold uint64
	for _, v := range p {
		fold ^= pointHash(v)
	}

	return fold ^
		sequenceHash(p) ^
		fieldHash('g', uint64(int64(params.Segments))) ^
		fieldHash('s', uint64(int64(params.Subdivisions))) ^
		fieldHash('a', uint64(gomath.Float32bits(params.StartWidth))) ^
		fieldHash('b', uint64(gomath.Float32bits(params.EndWidth)))
}

// pointHash mixes the raw float bits of a point's coordinates.
func pointHash(v math.Vec3) uint64 {
	x := uint64(gomath.Float32bits(v.X))
	y := uint64(gomath.Float32bits(v.Y))
	z := uint64(gomath.Float32bits(v.Z))
	return x ^ (y << 2) ^ (z >> 2) ^ (z << 32)
}

func sequenceHash(p Polyline) uint64 {
	d := xxhash.New()
	var buf [12]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(len(p)))
	_, _ = d.Write(buf[:8])
	for _, v := range p {
		binary.LittleEndian.PutUint32(buf[0:4], gomath.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[4:8], gomath.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(buf[8:12], gomath.Float32bits(v.Z))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func fieldHash(tag byte, bits uint64) uint64 {
	var buf [9]byte
	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], bits)
	return xxhash.Sum64(buf[:])
}
