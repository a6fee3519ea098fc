// Package geometry generates the procedural triangle meshes orb renders:
// a recursively subdivided unit sphere, a 3D Sierpinski gasket, and a
// colored cube.
package geometry

import "github.com/ansipixels/orb/math3d"

// Mesh is a flat triangle mesh. Indices are grouped in triples; each
// triple references three consecutive, non-shared vertices (the generators
// emit three fresh vertices per triangle, so len(Vertices) == len(Indices)).
type Mesh struct {
	Vertices []math3d.Vec3
	Indices  []uint32

	// Colors holds optional per-vertex RGBA in the 0-1 range, parallel to
	// Vertices. Empty for meshes that are colored at render time.
	Colors [][4]float64
}

// NewMesh creates an empty mesh with capacity for n triangles.
func NewMesh(triangles int) *Mesh {
	return &Mesh{
		Vertices: make([]math3d.Vec3, 0, triangles*3),
		Indices:  make([]uint32, 0, triangles*3),
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle returns the three vertex positions of triangle i.
func (m *Mesh) Triangle(i int) (v0, v1, v2 math3d.Vec3) {
	return m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]]
}

// appendTriangle adds one triangle as three fresh (non-deduplicated)
// vertices with indices (n, n+1, n+2).
func (m *Mesh) appendTriangle(v1, v2, v3 math3d.Vec3) {
	n := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v1, v2, v3)
	m.Indices = append(m.Indices, n, n+1, n+2)
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	min, max := m.Bounds()
	return max.Sub(min)
}
