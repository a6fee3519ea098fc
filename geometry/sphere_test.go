package geometry

import (
	"math"
	"testing"
)

func TestSphereCounts(t *testing.T) {
	tests := []struct {
		depth     int
		triangles int
	}{
		{0, 4},
		{1, 16},
		{2, 64},
		{3, 256},
		{4, 1024},
	}
	for _, tt := range tests {
		m := Sphere(tt.depth)
		if m.TriangleCount() != tt.triangles {
			t.Errorf("Sphere(%d): TriangleCount = %d, want %d", tt.depth, m.TriangleCount(), tt.triangles)
		}
		if m.VertexCount() != tt.triangles*3 {
			t.Errorf("Sphere(%d): VertexCount = %d, want %d", tt.depth, m.VertexCount(), tt.triangles*3)
		}
		// Three fresh vertices per triangle, no sharing.
		if len(m.Vertices) != len(m.Indices) {
			t.Errorf("Sphere(%d): %d vertices != %d indices", tt.depth, len(m.Vertices), len(m.Indices))
		}
	}
}

func TestSphereIndicesSequential(t *testing.T) {
	m := Sphere(2)
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) != i {
			t.Fatalf("Indices[%d] = %d, want %d (generator emits (n,n+1,n+2) triples)", i, idx, i)
		}
	}
}

func TestSphereVerticesOnUnitSphere(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		m := Sphere(depth)
		for i, v := range m.Vertices {
			if math.Abs(v.Len()-1) > 1e-5 {
				t.Fatalf("Sphere(%d): |vertex %d| = %v, want 1", depth, i, v.Len())
			}
		}
	}
}

func TestSphereBaseTetrahedron(t *testing.T) {
	m := Sphere(0)
	// Face set and ordering is fixed: (a,b,c), (d,c,b), (a,d,b), (a,c,d).
	wantFirst := tetraA
	if m.Vertices[0] != wantFirst {
		t.Errorf("first vertex = %v, want %v", m.Vertices[0], wantFirst)
	}
	if m.Vertices[3] != tetraD || m.Vertices[4] != tetraC || m.Vertices[5] != tetraB {
		t.Errorf("second face = %v,%v,%v, want (d,c,b)", m.Vertices[3], m.Vertices[4], m.Vertices[5])
	}
	if m.Vertices[9] != tetraA || m.Vertices[10] != tetraC || m.Vertices[11] != tetraD {
		t.Errorf("fourth face = %v,%v,%v, want (a,c,d)", m.Vertices[9], m.Vertices[10], m.Vertices[11])
	}
}

func TestSphereDeterministic(t *testing.T) {
	a := Sphere(3)
	b := Sphere(3)
	if a.VertexCount() != b.VertexCount() {
		t.Fatalf("vertex counts differ: %d vs %d", a.VertexCount(), b.VertexCount())
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs: %v vs %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs: %d vs %d", i, a.Indices[i], b.Indices[i])
		}
	}
}

func TestClampDepth(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"negative", -3, 0},
		{"zero", 0, 0},
		{"in range", 4, 4},
		{"max", MaxDepth, MaxDepth},
		{"too large", 40, MaxDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDepth(tt.in); got != tt.want {
				t.Errorf("ClampDepth(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
