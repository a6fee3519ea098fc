package painter

import (
	"math"

	"github.com/ansipixels/orb/math3d"
)

// Camera is the orbiting camera state: the eye position in spherical
// coordinates around a fixed target (the origin) with a fixed up vector.
// It is a plain value passed into Render each frame; input handlers build
// a new value rather than mutating shared state.
type Camera struct {
	Radius float64
	Theta  float64 // polar angle from the +Z axis
	Phi    float64 // azimuth in the XY plane
}

// Projection constants shared by every scene.
const (
	FOV  = math.Pi / 4
	Near = 0.1
	Far  = 20.0
)

// DefaultCamera returns the starting viewpoint.
func DefaultCamera() Camera {
	return Camera{Radius: 5, Theta: math.Pi / 6, Phi: math.Pi / 4}
}

// Eye returns the camera position derived from the spherical coordinates.
func (c Camera) Eye() math3d.Vec3 {
	sinT, cosT := math.Sincos(c.Theta)
	sinP, cosP := math.Sincos(c.Phi)
	return math3d.V3(
		c.Radius*sinT*cosP,
		c.Radius*sinT*sinP,
		c.Radius*cosT,
	)
}

// View returns the look-at matrix from the eye toward the origin.
func (c Camera) View() math3d.Mat4 {
	return math3d.LookAt(c.Eye(), math3d.Zero3(), math3d.Up())
}

// Projection returns the perspective matrix for the given aspect ratio.
func Projection(aspect float64) math3d.Mat4 {
	return math3d.Perspective(FOV, aspect, Near, Far)
}
