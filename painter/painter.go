// Package painter implements back-to-front (painter's algorithm) rendering
// of a triangle mesh. Each frame it transforms every triangle into view
// space, sorts by mean view-space depth, assigns a far-to-near color ramp,
// and emits one flat-colored draw command per triangle. The consumer must
// run with depth testing and face culling disabled; ordering alone decides
// occlusion.
package painter

import (
	"sort"

	"github.com/ansipixels/orb/geometry"
	"github.com/ansipixels/orb/math3d"
)

// Color is an RGBA color with components in the 0-1 range.
type Color struct {
	R, G, B, A float64
}

// DrawCommand is one triangle to draw, in submission order.
type DrawCommand struct {
	V        [3]math3d.Vec3 // model-space vertex positions
	AvgDepth float64        // mean view-space z of the three vertices
	Color    Color
}

// Frame is the full output of one render pass: the matrices the surface
// needs plus the ordered draw commands.
type Frame struct {
	View       math3d.Mat4
	Projection math3d.Mat4
	Commands   []DrawCommand
}

// Render builds the draw commands for one frame. Triangles are enumerated
// in index order, depth-sorted ascending (farthest first, since view space
// looks down -Z), and colored along a blue-to-red ramp from far to near.
// It keeps no state between calls: a new mesh simply replaces the old.
func Render(mesh *geometry.Mesh, cam Camera, aspect float64) Frame {
	frame := Frame{
		View:       cam.View(),
		Projection: Projection(aspect),
	}

	n := mesh.TriangleCount()
	if n == 0 {
		return frame
	}

	frame.Commands = make([]DrawCommand, 0, n)
	for i := 0; i < n; i++ {
		v0, v1, v2 := mesh.Triangle(i)
		z0 := frame.View.MulVec3(v0).Z
		z1 := frame.View.MulVec3(v1).Z
		z2 := frame.View.MulVec3(v2).Z
		frame.Commands = append(frame.Commands, DrawCommand{
			V:        [3]math3d.Vec3{v0, v1, v2},
			AvgDepth: (z0 + z1 + z2) / 3,
		})
	}

	// Stable so that equal-depth triangles keep their enumeration order.
	sort.SliceStable(frame.Commands, func(i, j int) bool {
		return frame.Commands[i].AvgDepth < frame.Commands[j].AvgDepth
	})

	for k := range frame.Commands {
		frame.Commands[k].Color = rampColor(k, n)
	}
	return frame
}

// rampColor maps sorted position k of n to the far-to-near gradient:
// pure blue for the farthest triangle, pure red for the nearest.
func rampColor(k, n int) Color {
	t := 0.0
	if n > 1 {
		t = float64(k) / float64(n-1)
	}
	return Color{R: t, G: 0, B: 1 - t, A: 1}
}
