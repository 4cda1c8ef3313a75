package glrender

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

var errTooManyTriangles = errors.New("too many triangles for binary STL")

// WriteBinarySTL writes model as a binary STL file to w. Facet normals are
// computed from the counter-clockwise vertex winding.
func WriteBinarySTL(w io.Writer, model []ms3.Triangle) (int, error) {
	if uint64(len(model)) > math.MaxUint32 {
		return 0, errTooManyTriangles
	}
	var header [stlHeaderSize + 4]byte
	copy(header[:], "gscene")
	binary.LittleEndian.PutUint32(header[stlHeaderSize:], uint32(len(model)))
	n, err := w.Write(header[:])
	if err != nil {
		return n, err
	}
	var buf [stlTriangleSize]byte
	for i := range model {
		t := &model[i]
		normal := triangleNormal(t)
		putVec(buf[0:], normal)
		putVec(buf[12:], t[0])
		putVec(buf[24:], t[1])
		putVec(buf[36:], t[2])
		ngot, err := w.Write(buf[:])
		n += ngot
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadBinarySTL reads the triangles of a binary STL file. Stored normals are
// discarded.
func ReadBinarySTL(r io.Reader) ([]ms3.Triangle, error) {
	var header [stlHeaderSize + 4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if bytes.HasPrefix(header[:], []byte("solid ")) {
		return nil, errors.New("ASCII STL not supported")
	}
	count := binary.LittleEndian.Uint32(header[stlHeaderSize:])
	model := make([]ms3.Triangle, 0, min(int(count), 1<<20))
	var buf [stlTriangleSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return model, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model = append(model, ms3.Triangle{getVec(buf[12:]), getVec(buf[24:]), getVec(buf[36:])})
	}
	return model, nil
}

func triangleNormal(t *ms3.Triangle) ms3.Vec {
	a := mgl32.Vec3{t[0].X, t[0].Y, t[0].Z}
	b := mgl32.Vec3{t[1].X, t[1].Y, t[1].Z}
	c := mgl32.Vec3{t[2].X, t[2].Y, t[2].Z}
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return ms3.Vec{}
	}
	n = n.Normalize()
	return ms3.Vec{X: n[0], Y: n[1], Z: n[2]}
}

func putVec(b []byte, v ms3.Vec) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

func getVec(b []byte) ms3.Vec {
	return ms3.Vec{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}
