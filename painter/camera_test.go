package painter

import (
	"math"
	"testing"

	"github.com/ansipixels/orb/math3d"
)

func TestEye(t *testing.T) {
	tests := []struct {
		name string
		cam  Camera
		want math3d.Vec3
	}{
		{"pole", Camera{Radius: 5, Theta: 0, Phi: 0}, math3d.V3(0, 0, 5)},
		{"equator x", Camera{Radius: 2, Theta: math.Pi / 2, Phi: 0}, math3d.V3(2, 0, 0)},
		{"equator y", Camera{Radius: 2, Theta: math.Pi / 2, Phi: math.Pi / 2}, math3d.V3(0, 2, 0)},
		{
			"reference viewpoint",
			Camera{Radius: 5, Theta: math.Pi / 6, Phi: math.Pi / 4},
			math3d.V3(
				5*math.Sin(math.Pi/6)*math.Cos(math.Pi/4),
				5*math.Sin(math.Pi/6)*math.Sin(math.Pi/4),
				5*math.Cos(math.Pi/6),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cam.Eye()
			if got.Distance(tt.want) > 1e-12 {
				t.Errorf("Eye() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEyeOnRadiusSphere(t *testing.T) {
	cam := Camera{Radius: 7, Theta: 1.1, Phi: 2.3}
	if math.Abs(cam.Eye().Len()-7) > 1e-12 {
		t.Errorf("|eye| = %v, want 7", cam.Eye().Len())
	}
}

func TestViewPlacesEyeAtOrigin(t *testing.T) {
	cam := DefaultCamera()
	got := cam.View().MulVec3(cam.Eye())
	if got.Len() > 1e-9 {
		t.Errorf("view*eye = %v, want origin", got)
	}
}

func TestViewTargetDepthEqualsRadius(t *testing.T) {
	// The origin must sit straight ahead of the camera: view-space
	// z = -Radius.
	cam := DefaultCamera()
	got := cam.View().MulVec3(math3d.Zero3())
	if math.Abs(got.Z+cam.Radius) > 1e-9 {
		t.Errorf("target view z = %v, want %v", got.Z, -cam.Radius)
	}
}
