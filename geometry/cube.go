package geometry

import "github.com/ansipixels/orb/math3d"

// Corner positions of a cube of side 1 centered on the origin, and the
// RGBA palette assigned to each corner.
var (
	cubeCorners = [8]math3d.Vec3{
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
	}
	cubeColors = [8][4]float64{
		{0, 0, 0, 1}, // black
		{1, 0, 0, 1}, // red
		{1, 1, 0, 1}, // yellow
		{0, 1, 0, 1}, // green
		{0, 0, 1, 1}, // blue
		{1, 0, 1, 1}, // magenta
		{0, 1, 1, 1}, // cyan
		{1, 1, 1, 1}, // white
	}
)

// Cube builds a unit cube of 12 triangles (36 non-shared vertices) with a
// flat color per face taken from the first corner of each quad.
func Cube() *Mesh {
	m := NewMesh(12)
	m.Colors = make([][4]float64, 0, 36)
	cubeQuad(m, 1, 0, 3, 2)
	cubeQuad(m, 2, 3, 7, 6)
	cubeQuad(m, 3, 0, 4, 7)
	cubeQuad(m, 6, 5, 1, 2)
	cubeQuad(m, 4, 5, 6, 7)
	cubeQuad(m, 5, 4, 0, 1)
	return m
}

// cubeQuad emits the quad (a,b,c,d) as two triangles colored by corner a.
func cubeQuad(m *Mesh, a, b, c, d int) {
	color := cubeColors[a]
	m.appendTriangle(cubeCorners[a], cubeCorners[b], cubeCorners[c])
	m.appendTriangle(cubeCorners[a], cubeCorners[c], cubeCorners[d])
	for range 6 {
		m.Colors = append(m.Colors, color)
	}
}
