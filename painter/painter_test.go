package painter

import (
	"math"
	"testing"

	"github.com/ansipixels/orb/geometry"
	"github.com/ansipixels/orb/math3d"
)

func testCamera() Camera {
	return Camera{Radius: 5, Theta: math.Pi / 6, Phi: math.Pi / 4}
}

func TestRenderSortedAscending(t *testing.T) {
	frame := Render(geometry.Sphere(2), testCamera(), 1)
	for i := 1; i < len(frame.Commands); i++ {
		if frame.Commands[i].AvgDepth < frame.Commands[i-1].AvgDepth {
			t.Fatalf("command %d has depth %v < previous %v", i,
				frame.Commands[i].AvgDepth, frame.Commands[i-1].AvgDepth)
		}
	}
}

func TestRenderFarthestFirst(t *testing.T) {
	// With the camera at radius 5 looking at the origin the whole unit
	// sphere sits in front of it, so every avg depth is negative, and the
	// first command (most negative z) is the farthest from the eye.
	cam := testCamera()
	frame := Render(geometry.Sphere(2), cam, 1)
	if len(frame.Commands) == 0 {
		t.Fatal("no commands")
	}
	for i, cmd := range frame.Commands {
		if cmd.AvgDepth >= 0 {
			t.Fatalf("command %d has non-negative view depth %v", i, cmd.AvgDepth)
		}
	}
	eye := cam.Eye()
	centroid := func(c DrawCommand) math3d.Vec3 {
		return c.V[0].Add(c.V[1]).Add(c.V[2]).Scale(1.0 / 3)
	}
	first := centroid(frame.Commands[0]).Distance(eye)
	last := centroid(frame.Commands[len(frame.Commands)-1]).Distance(eye)
	if first <= last {
		t.Errorf("first command at distance %v, last at %v; farthest should come first", first, last)
	}
}

func TestRenderColorRamp(t *testing.T) {
	frame := Render(geometry.Sphere(1), testCamera(), 1)
	n := len(frame.Commands)
	if n != 16 {
		t.Fatalf("got %d commands, want 16", n)
	}
	if frame.Commands[0].Color != (Color{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("farthest color = %+v, want pure blue", frame.Commands[0].Color)
	}
	if frame.Commands[n-1].Color != (Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("nearest color = %+v, want pure red", frame.Commands[n-1].Color)
	}
	for k, cmd := range frame.Commands {
		want := float64(k) / float64(n-1)
		if math.Abs(cmd.Color.R-want) > 1e-12 || cmd.Color.G != 0 ||
			math.Abs(cmd.Color.B-(1-want)) > 1e-12 || cmd.Color.A != 1 {
			t.Fatalf("command %d color = %+v, want t=%v ramp", k, cmd.Color, want)
		}
	}
}

func TestRenderSingleTriangle(t *testing.T) {
	m := geometry.NewMesh(1)
	m.Vertices = []math3d.Vec3{
		math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0),
	}
	m.Indices = []uint32{0, 1, 2}
	frame := Render(m, testCamera(), 1)
	if len(frame.Commands) != 1 {
		t.Fatalf("got %d commands, want 1", len(frame.Commands))
	}
	// t is 0 by convention when there is only one triangle.
	if frame.Commands[0].Color != (Color{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("single-triangle color = %+v, want pure blue", frame.Commands[0].Color)
	}
}

func TestRenderEmptyMesh(t *testing.T) {
	frame := Render(geometry.NewMesh(0), testCamera(), 1)
	if len(frame.Commands) != 0 {
		t.Errorf("empty mesh produced %d commands", len(frame.Commands))
	}
}

func TestRenderStableOnEqualDepth(t *testing.T) {
	// Two identical triangles have exactly equal avg depth; the stable
	// sort must keep their enumeration order.
	m := geometry.NewMesh(2)
	tri := [3]math3d.Vec3{
		math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0),
	}
	m.Vertices = append(m.Vertices, tri[0], tri[1], tri[2], tri[0], tri[1], tri[2])
	m.Indices = []uint32{0, 1, 2, 3, 4, 5}
	frame := Render(m, testCamera(), 1)
	if len(frame.Commands) != 2 {
		t.Fatalf("got %d commands, want 2", len(frame.Commands))
	}
	if frame.Commands[0].V[0] != m.Vertices[0] {
		t.Error("stable sort reordered equal-depth triangles")
	}
}

func TestRenderEndToEnd(t *testing.T) {
	// Depth 2, fixed camera: 64 commands, ascending depth, blue..red.
	frame := Render(geometry.Sphere(2), Camera{Radius: 5, Theta: math.Pi / 6, Phi: math.Pi / 4}, 1)
	if len(frame.Commands) != 64 {
		t.Fatalf("got %d commands, want 64", len(frame.Commands))
	}
	for i := 1; i < len(frame.Commands); i++ {
		if frame.Commands[i].AvgDepth < frame.Commands[i-1].AvgDepth {
			t.Fatalf("depth order violated at %d", i)
		}
	}
	if frame.Commands[0].Color != (Color{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("first color = %+v, want (0,0,1,1)", frame.Commands[0].Color)
	}
	if frame.Commands[63].Color != (Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("last color = %+v, want (1,0,0,1)", frame.Commands[63].Color)
	}
}

func TestRenderNewMeshReplacesOld(t *testing.T) {
	cam := testCamera()
	a := Render(geometry.Sphere(1), cam, 1)
	b := Render(geometry.Sphere(2), cam, 1)
	if len(a.Commands) != 16 || len(b.Commands) != 64 {
		t.Errorf("command counts = %d, %d; want 16, 64", len(a.Commands), len(b.Commands))
	}
}
