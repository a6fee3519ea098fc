package geometry

import "github.com/ansipixels/orb/math3d"

// MaxDepth bounds the subdivision depth. Triangle count grows as 4*4^depth,
// so callers clamp user input with ClampDepth before generating.
const MaxDepth = 6

// Base tetrahedron: four unit-length points. The face set and ordering
// below must not change; downstream index layout depends on it.
var (
	tetraA = math3d.V3(0, 0, -1)
	tetraB = math3d.V3(0, 0.942809, 0.333333)
	tetraC = math3d.V3(-0.816497, -0.471405, 0.333333)
	tetraD = math3d.V3(0.816497, -0.471405, 0.333333)
)

// ClampDepth limits a requested subdivision depth to [0, MaxDepth].
func ClampDepth(depth int) int {
	if depth < 0 {
		return 0
	}
	if depth > MaxDepth {
		return MaxDepth
	}
	return depth
}

// Sphere approximates a unit sphere by recursively subdividing the four
// faces of a regular tetrahedron, pushing every new midpoint out to the
// sphere's surface. depth 0 yields the bare tetrahedron (4 triangles);
// each level quadruples the triangle count.
//
// Vertices are intentionally not shared between adjacent triangles: each
// leaf triangle emits three fresh entries, so VertexCount == len(Indices).
func Sphere(depth int) *Mesh {
	m := NewMesh(4 * pow4(depth))
	refineSphere(m, tetraA, tetraB, tetraC, depth)
	refineSphere(m, tetraD, tetraC, tetraB, depth)
	refineSphere(m, tetraA, tetraD, tetraB, depth)
	refineSphere(m, tetraA, tetraC, tetraD, depth)
	return m
}

// refineSphere splits the triangle (v1,v2,v3) into four children using
// edge midpoints projected onto the unit sphere, recursing depth times.
func refineSphere(m *Mesh, v1, v2, v3 math3d.Vec3, depth int) {
	if depth == 0 {
		m.appendTriangle(v1, v2, v3)
		return
	}
	m12 := v1.Midpoint(v2).Normalize()
	m23 := v2.Midpoint(v3).Normalize()
	m31 := v3.Midpoint(v1).Normalize()
	refineSphere(m, v1, m12, m31, depth-1)
	refineSphere(m, v2, m23, m12, depth-1)
	refineSphere(m, v3, m31, m23, depth-1)
	refineSphere(m, m12, m23, m31, depth-1)
}

func pow4(n int) int {
	return 1 << (2 * n)
}
