package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ansipixels/orb/geometry"
)

// Binary STL layout: an 80-byte header, a uint32 facet count, then one
// 50-byte record per facet (normal, three vertices as float32 triples and
// a uint16 attribute count).
const stlHeaderSize = 80

// WriteSTL writes m to w in binary STL format. Facet normals are computed
// from the winding order.
func WriteSTL(w io.Writer, m *geometry.Mesh, name string) error {
	bw := bufio.NewWriter(w)

	var header [stlHeaderSize]byte
	copy(header[:], "binary STL "+name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("write stl header: %w", err)
	}

	count := uint32(m.TriangleCount())
	if err := binary.Write(bw, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("write stl facet count: %w", err)
	}

	var rec [50]byte
	for i := 0; i < m.TriangleCount(); i++ {
		v0, v1, v2 := m.Triangle(i)
		n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

		putVec3(rec[0:], n.X, n.Y, n.Z)
		putVec3(rec[12:], v0.X, v0.Y, v0.Z)
		putVec3(rec[24:], v1.X, v1.Y, v1.Z)
		putVec3(rec[36:], v2.X, v2.Y, v2.Z)
		rec[48], rec[49] = 0, 0 // attribute byte count

		if _, err := bw.Write(rec[:]); err != nil {
			return fmt.Errorf("write stl facet %d: %w", i, err)
		}
	}
	return bw.Flush()
}

func putVec3(b []byte, x, y, z float64) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(x)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(z)))
}

// STL writes m to a binary STL file at path.
func STL(m *geometry.Mesh, name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stl file: %w", err)
	}
	if err := WriteSTL(f, m, name); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
