// orb - terminal viewer for recursively subdivided solids.
// Renders a tetrahedron-subdivided unit sphere back-to-front with the
// painter's algorithm (plus depth-buffered, gasket and cube scenes) as
// half-block pixels in the terminal.
//
// Controls:
//
//	Mouse drag  - Orbit camera (theta/phi)
//	Scroll      - Zoom in/out (camera radius)
//	W/S         - Orbit up/down
//	A/D         - Orbit left/right
//	[ / ]       - Decrease/increase subdivision depth
//	P           - Toggle painter's algorithm vs depth buffer (sphere)
//	G           - Sierpinski gasket scene
//	C           - Colored cube scene
//	Space       - Toggle spin (gasket/cube)
//	?           - Toggle HUD overlay
//	Esc/Q       - Quit
package main

import (
	"flag"
	"image/color"
	"math"
	"os"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"

	"github.com/ansipixels/orb/render"
	"github.com/ansipixels/orb/viewer"
)

var (
	targetFPS  float64
	startDepth int
	sceneName  string
)

const (
	minRadius = 2.0
	maxRadius = 15.0
	orbitStep = 0.05
	zoomStep  = 0.5
)

func main() {
	flag.Float64Var(&targetFPS, "fps", 60, "Target FPS")
	flag.IntVar(&startDepth, "depth", 3, "Initial subdivision depth (0-6)")
	flag.StringVar(&sceneName, "scene", "painter", "Scene: painter, depth, gasket or cube")
	cli.ArgsHelp = ""
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.Main()
	os.Exit(run())
}

// HUD renders an overlay with scene info and key help.
type HUD struct {
	v         *viewer.Viewer
	show      bool
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD, visible by default.
func NewHUD(v *viewer.Viewer) *HUD {
	return &HUD{v: v, show: true, fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Draw renders the HUD overlay on top of the current frame.
func (h *HUD) Draw(ap *ansipixels.AnsiPixels) {
	if !h.show {
		return
	}
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS"+tcolor.Reset, h.fps)
	ap.WriteCentered(0, "%s depth %d", h.v.Scene(), h.v.Depth())
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"%d tris"+tcolor.Reset, h.v.Mesh().TriangleCount())
	ap.WriteAt(0, ap.H-1, "[/] depth  p painter/depth  g gasket  c cube  space spin")
	ap.WriteRight(ap.H-1, "%s?: toggle HUD%s", tcolor.Yellow.Foreground(), tcolor.Reset)
}

func clampRadius(r float64) float64 {
	return math.Max(minRadius, math.Min(maxRadius, r))
}

func run() int {
	scene, ok := viewer.ParseScene(sceneName)
	if !ok {
		return log.FErrf("unknown scene %q (want painter, depth, gasket or cube)", sceneName)
	}

	// Initialize ansipixels for terminal rendering
	ap := ansipixels.NewAnsiPixels(targetFPS)
	if err := ap.Open(); err != nil {
		return log.FErrf("open ansipixels: %v", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.SyncBackgroundColor()
	ap.MouseTrackingOn()
	ap.HideCursor()

	// Framebuffer sized for terminal, 2x height for half-block characters.
	fb := render.NewFramebuffer(ap.W, ap.H*2)
	fb.BG = color.RGBA{ap.Background.R, ap.Background.G, ap.Background.B, 255}

	v := viewer.New(fb, scene, startDepth, int(math.Round(targetFPS)))
	hud := NewHUD(v)

	lastMouseX, lastMouseY := 0, 0
	ap.OnMouse = func() {
		cam := v.Camera()
		switch {
		case ap.MouseWheelUp():
			cam.Radius = clampRadius(cam.Radius - zoomStep)
		case ap.MouseWheelDown():
			cam.Radius = clampRadius(cam.Radius + zoomStep)
		case ap.LeftDrag():
			dx := ap.Mx - lastMouseX
			dy := ap.My - lastMouseY
			cam.Phi += float64(dx) * 0.03
			cam.Theta += float64(dy) * 0.06
		}
		v.SetCamera(cam)
		lastMouseX, lastMouseY = ap.Mx, ap.My
	}
	// Update framebuffer on terminal resize
	ap.OnResize = func() error {
		fb.Resize(ap.W, ap.H*2)
		v.Resize()
		return nil
	}

	err := ap.FPSTicks(func() bool {
		cam := v.Camera()
		for _, b := range ap.Data {
			switch b {
			case 'a', 'A':
				cam.Phi -= orbitStep
			case 'd', 'D':
				cam.Phi += orbitStep
			case 'w', 'W':
				cam.Theta -= orbitStep
			case 's', 'S':
				cam.Theta += orbitStep
			case '+', '=':
				cam.Radius = clampRadius(cam.Radius - zoomStep)
			case '-', '_':
				cam.Radius = clampRadius(cam.Radius + zoomStep)
			case '[':
				v.SetDepth(v.Depth() - 1)
			case ']':
				v.SetDepth(v.Depth() + 1)
			case 'p', 'P':
				if v.Scene() == viewer.ScenePainter {
					v.SetScene(viewer.SceneDepth)
				} else {
					v.SetScene(viewer.ScenePainter)
				}
			case 'g', 'G':
				v.SetScene(viewer.SceneGasket)
			case 'c', 'C':
				v.SetScene(viewer.SceneCube)
			case ' ':
				v.SetSpinning(!v.Spinning())
			case '?':
				hud.show = !hud.show
			case 'q', 'Q', 27: // q or Escape
				return false
			case 3, 4: // Ctrl-C, Ctrl-D
				return false
			}
		}
		v.SetCamera(cam)

		v.Step()

		// Display using ansipixels
		ap.ClearScreen()
		if err := ap.ShowScaledImage(fb.ToImage()); err != nil {
			log.Errf("show image: %v", err)
			return false
		}
		hud.UpdateFPS()
		hud.Draw(ap)
		return true // continue running
	})
	if err != nil {
		return log.FErrf("main loop: %v", err)
	}
	return 0
}
