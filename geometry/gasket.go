package geometry

import "github.com/ansipixels/orb/math3d"

// Gasket builds a 3D Sierpinski gasket over the same base tetrahedron as
// Sphere. Each level replaces a tetrahedron with the four corner tetrahedra
// formed by its edge midpoints (the center octahedron is discarded), leaving
// 4^depth solid tetrahedra of 4 faces each. Midpoints stay flat: unlike the
// sphere, they are not projected onto the unit sphere.
func Gasket(depth int) *Mesh {
	m := NewMesh(4 * pow4(depth))
	divideTetra(m, tetraA, tetraB, tetraC, tetraD, depth)
	return m
}

func divideTetra(m *Mesh, a, b, c, d math3d.Vec3, depth int) {
	if depth == 0 {
		// Outward-facing triangles of one solid tetrahedron, in the same
		// face order as the sphere generator.
		m.appendTriangle(a, b, c)
		m.appendTriangle(d, c, b)
		m.appendTriangle(a, d, b)
		m.appendTriangle(a, c, d)
		return
	}
	ab := a.Midpoint(b)
	ac := a.Midpoint(c)
	ad := a.Midpoint(d)
	bc := b.Midpoint(c)
	bd := b.Midpoint(d)
	cd := c.Midpoint(d)
	divideTetra(m, a, ab, ac, ad, depth-1)
	divideTetra(m, ab, b, bc, bd, depth-1)
	divideTetra(m, ac, bc, c, cd, depth-1)
	divideTetra(m, ad, bd, cd, d, depth-1)
}
