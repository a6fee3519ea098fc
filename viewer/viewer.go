// Package viewer owns the per-frame loop state: the current mesh, camera,
// scene and spin animation. The platform (ansipixels) only schedules
// ticks; each tick calls Step, which renders exactly one frame into the
// framebuffer. Tests drive Step directly without a terminal.
package viewer

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/ansipixels/orb/geometry"
	"github.com/ansipixels/orb/math3d"
	"github.com/ansipixels/orb/painter"
	"github.com/ansipixels/orb/render"
)

// Scene selects what the viewer draws.
type Scene int

const (
	// ScenePainter draws the subdivided sphere back-to-front with the
	// painter's algorithm (no depth buffer).
	ScenePainter Scene = iota
	// SceneDepth draws the same sphere with z-buffering and
	// directional lighting.
	SceneDepth
	// SceneGasket draws the spinning 3D Sierpinski gasket.
	SceneGasket
	// SceneCube draws the spinning colored cube.
	SceneCube
)

// String returns the scene name used by flags and the HUD.
func (s Scene) String() string {
	switch s {
	case ScenePainter:
		return "painter"
	case SceneDepth:
		return "depth"
	case SceneGasket:
		return "gasket"
	case SceneCube:
		return "cube"
	}
	return "unknown"
}

// ParseScene maps a flag value to a Scene.
func ParseScene(name string) (Scene, bool) {
	switch name {
	case "painter", "":
		return ScenePainter, true
	case "depth":
		return SceneDepth, true
	case "gasket":
		return SceneGasket, true
	case "cube":
		return SceneCube, true
	}
	return ScenePainter, false
}

// lightDir lights the depth-tested scenes.
var lightDir = math3d.V3(0.5, 1, 0.3).Normalize()

// spinAxis tracks one rotation angle with spring-damped velocity.
type spinAxis struct {
	position float64
	velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newSpinAxis(fps int) spinAxis {
	// Frequency 4.0, damping 1.0: critically damped, no overshoot.
	return spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *spinAxis) update(damping bool) {
	a.position += a.velocity
	if damping {
		a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
	}
}

// Viewer renders one scene per Step call.
type Viewer struct {
	fb     *render.Framebuffer
	raster *render.Rasterizer

	scene Scene
	depth int
	mesh  *geometry.Mesh
	cam   painter.Camera

	spinning bool
	yaw      spinAxis
	pitch    spinAxis
	fps      int
}

// New creates a viewer drawing into fb.
func New(fb *render.Framebuffer, scene Scene, depth, fps int) *Viewer {
	v := &Viewer{
		fb:     fb,
		raster: render.NewRasterizer(fb),
		scene:  scene,
		cam:    painter.DefaultCamera(),
		yaw:    newSpinAxis(fps),
		pitch:  newSpinAxis(fps),
		fps:    fps,
	}
	v.configureRaster()
	v.SetDepth(depth)
	return v
}

// configureRaster sets the fixed pipeline state for the current scene.
// The painter path needs depth testing and face culling off; it is
// configured here once, not per frame.
func (v *Viewer) configureRaster() {
	usesDepth := v.scene != ScenePainter
	v.raster.SetDepthTest(usesDepth)
	v.raster.SetFaceCulling(false)
}

// SetDepth clamps and applies a new subdivision depth, regenerating the
// mesh synchronously. The old mesh is replaced whole; no partial state is
// ever visible to Step.
func (v *Viewer) SetDepth(depth int) {
	v.depth = geometry.ClampDepth(depth)
	v.regenerate()
}

// Depth returns the current subdivision depth.
func (v *Viewer) Depth() int {
	return v.depth
}

// SetCamera replaces the camera state for subsequent frames.
func (v *Viewer) SetCamera(cam painter.Camera) {
	v.cam = cam
}

// Camera returns the current camera state.
func (v *Viewer) Camera() painter.Camera {
	return v.cam
}

// SetScene switches scenes, regenerating the mesh if the geometry differs.
func (v *Viewer) SetScene(s Scene) {
	if v.scene == s {
		return
	}
	v.scene = s
	v.configureRaster()
	v.regenerate()
}

// Scene returns the active scene.
func (v *Viewer) Scene() Scene {
	return v.scene
}

// Mesh returns the mesh currently being drawn.
func (v *Viewer) Mesh() *geometry.Mesh {
	return v.mesh
}

// SetSpinning toggles the auto-spin of the gasket and cube scenes.
func (v *Viewer) SetSpinning(on bool) {
	v.spinning = on
	if on {
		v.yaw.velocity = 2 * math.Pi / float64(3*v.fps) // one turn per 3s
		v.pitch.velocity = v.yaw.velocity / 3
	}
}

// Spinning reports whether auto-spin is active.
func (v *Viewer) Spinning() bool {
	return v.spinning
}

func (v *Viewer) regenerate() {
	switch v.scene {
	case SceneGasket:
		v.mesh = geometry.Gasket(v.depth)
	case SceneCube:
		v.mesh = geometry.Cube()
	default:
		v.mesh = geometry.Sphere(v.depth)
	}
}

// Resize adapts the rasterizer buffers after a framebuffer resize.
func (v *Viewer) Resize() {
	v.raster.Resize()
}

// Step renders one frame into the framebuffer and advances the spin
// animation by one tick.
func (v *Viewer) Step() {
	v.yaw.update(!v.spinning)
	v.pitch.update(!v.spinning)

	v.fb.Clear()
	aspect := float64(v.fb.Width) / float64(v.fb.Height)

	if v.scene == ScenePainter {
		frame := painter.Render(v.mesh, v.cam, aspect)
		v.raster.SetViewProjection(frame.Projection.Mul(frame.View))
		for _, cmd := range frame.Commands {
			c := render.FromRGBA(cmd.Color.R, cmd.Color.G, cmd.Color.B, cmd.Color.A)
			v.raster.DrawTriangleFlat(cmd.V[0], cmd.V[1], cmd.V[2], c)
		}
		return
	}

	v.raster.ClearDepth()
	viewProj := painter.Projection(aspect).Mul(v.cam.View())
	v.raster.SetViewProjection(viewProj)

	model := math3d.RotateX(v.pitch.position).Mul(math3d.RotateY(v.yaw.position))
	for i := 0; i < v.mesh.TriangleCount(); i++ {
		v0, v1, v2 := v.mesh.Triangle(i)
		v0 = model.MulVec3(v0)
		v1 = model.MulVec3(v1)
		v2 = model.MulVec3(v2)
		if len(v.mesh.Colors) > 0 {
			c := v.mesh.Colors[v.mesh.Indices[3*i]]
			v.raster.DrawTriangleFlat(v0, v1, v2, render.FromRGBA(c[0], c[1], c[2], c[3]))
			continue
		}
		v.raster.DrawTriangleLit(v0, v1, v2, render.RGB(200, 200, 200), lightDir)
	}
}
