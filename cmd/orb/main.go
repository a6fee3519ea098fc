// orb - terminal viewer for recursively subdivided solids.
// Cobra front-end with view, info and export subcommands.
//
// Controls (view):
//
//	Mouse drag  - Orbit camera (theta/phi)
//	Scroll      - Zoom in/out
//	W/S/A/D     - Orbit camera
//	[ / ]       - Decrease/increase subdivision depth
//	P           - Toggle painter's algorithm vs depth buffer
//	G           - Sierpinski gasket scene
//	C           - Colored cube scene
//	Space       - Toggle spin
//	?           - Toggle HUD overlay
//	Esc/Q       - Quit
package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"fortio.org/terminal/ansipixels"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ansipixels/orb/export"
	"github.com/ansipixels/orb/geometry"
	"github.com/ansipixels/orb/render"
	"github.com/ansipixels/orb/viewer"
)

var (
	targetFPS  int
	startDepth int
	sceneName  string
	bgColor    string
	exportFmt  string
)

func main() {
	cmd := &cobra.Command{
		Use:   "orb",
		Short: "Terminal viewer for recursively subdivided solids",
		Long: `orb - Terminal viewer for recursively subdivided solids

Renders a tetrahedron-subdivided unit sphere back-to-front with the
painter's algorithm, or with a depth buffer, plus Sierpinski gasket
and colored cube scenes.

Controls:
  Mouse drag  - Orbit camera
  Scroll      - Zoom in/out
  W/S/A/D     - Orbit camera
  [ / ]       - Subdivision depth
  P           - Painter's algorithm vs depth buffer
  G           - Sierpinski gasket scene
  C           - Colored cube scene
  Space       - Toggle spin
  ?           - Toggle HUD overlay
  Esc         - Quit`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runView()
		},
	}

	cmd.PersistentFlags().IntVar(&startDepth, "depth", 3, "Subdivision depth (0-6)")
	cmd.PersistentFlags().StringVar(&sceneName, "scene", "painter", "Scene: painter, depth, gasket or cube")
	cmd.Flags().IntVar(&targetFPS, "fps", 60, "Target FPS")
	cmd.Flags().StringVar(&bgColor, "bg", "", "Background color (R,G,B)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Interactively view a scene in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runView()
		},
	}
	viewCmd.Flags().IntVar(&targetFPS, "fps", 60, "Target FPS")
	viewCmd.Flags().StringVar(&bgColor, "bg", "", "Background color (R,G,B)")
	cmd.AddCommand(viewCmd)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Display mesh statistics for a scene",
		Long:  "Display triangle count, vertex count, bounding box and dimensions for the generated mesh of a scene.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInfo()
		},
	}
	cmd.AddCommand(infoCmd)

	exportCmd := &cobra.Command{
		Use:   "export <output.glb|output.stl>",
		Short: "Export a generated mesh to a GLB or STL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0])
		},
	}
	exportCmd.Flags().StringVar(&exportFmt, "format", "", "Output format: glb or stl (default from extension)")
	cmd.AddCommand(exportCmd)

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func buildMesh(scene viewer.Scene, depth int) *geometry.Mesh {
	switch scene {
	case viewer.SceneGasket:
		return geometry.Gasket(depth)
	case viewer.SceneCube:
		return geometry.Cube()
	default:
		return geometry.Sphere(depth)
	}
}

func parseScene() (viewer.Scene, int, error) {
	scene, ok := viewer.ParseScene(sceneName)
	if !ok {
		return 0, 0, fmt.Errorf("unknown scene %q (want painter, depth, gasket or cube)", sceneName)
	}
	return scene, geometry.ClampDepth(startDepth), nil
}

func runInfo() error {
	scene, depth, err := parseScene()
	if err != nil {
		return err
	}
	mesh := buildMesh(scene, depth)
	boundsMin, boundsMax := mesh.Bounds()
	size := mesh.Size()
	center := mesh.Center()

	fmt.Printf("Scene:      %s\n", scene)
	fmt.Printf("Depth:      %d\n", depth)
	fmt.Println()
	fmt.Printf("Vertices:   %d\n", mesh.VertexCount())
	fmt.Printf("Triangles:  %d\n", mesh.TriangleCount())
	fmt.Println()
	fmt.Printf("Bounds Min: (%.3f, %.3f, %.3f)\n", boundsMin.X, boundsMin.Y, boundsMin.Z)
	fmt.Printf("Bounds Max: (%.3f, %.3f, %.3f)\n", boundsMax.X, boundsMax.Y, boundsMax.Z)
	fmt.Printf("Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Printf("Center:     (%.3f, %.3f, %.3f)\n", center.X, center.Y, center.Z)
	return nil
}

func runExport(path string) error {
	scene, depth, err := parseScene()
	if err != nil {
		return err
	}
	format := exportFmt
	if format == "" {
		switch {
		case len(path) > 4 && path[len(path)-4:] == ".glb":
			format = "glb"
		case len(path) > 4 && path[len(path)-4:] == ".stl":
			format = "stl"
		default:
			return fmt.Errorf("cannot infer format from %q, use --format glb|stl", path)
		}
	}
	mesh := buildMesh(scene, depth)
	name := fmt.Sprintf("%s-%d", scene, depth)
	switch format {
	case "glb":
		err = export.GLB(mesh, name, path)
	case "stl":
		err = export.STL(mesh, name, path)
	default:
		return fmt.Errorf("unsupported format %q (use glb or stl)", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d triangles) to %s\n", format, mesh.TriangleCount(), path)
	return nil
}

//nolint:gocognit,funlen // interactive loop is one big switch.
func runView() error {
	scene, depth, err := parseScene()
	if err != nil {
		return err
	}

	// Parse background color
	var bg color.RGBA
	if bgColor != "" {
		if _, err := fmt.Sscanf(bgColor, "%d,%d,%d", &bg.R, &bg.G, &bg.B); err == nil {
			bg.A = 255
		}
	}

	// Initialize ansipixels for terminal rendering
	ap := ansipixels.NewAnsiPixels(float64(targetFPS))
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
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

	if ap.W <= 0 || ap.H <= 0 {
		return fmt.Errorf("invalid terminal size: %dx%d", ap.W, ap.H)
	}

	// Framebuffer at 2x height for half-block characters.
	fb := render.NewFramebuffer(ap.W, ap.H*2)
	fb.BG = bg

	v := viewer.New(fb, scene, depth, targetFPS)

	const (
		minRadius = 2.0
		maxRadius = 15.0
		orbitStep = 0.05
		zoomStep  = 0.5
	)
	clampRadius := func(r float64) float64 {
		return math.Max(minRadius, math.Min(maxRadius, r))
	}

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
	ap.OnResize = func() error {
		fb.Resize(ap.W, ap.H*2)
		v.Resize()
		return nil
	}

	showHUD := true
	targetDuration := time.Second / time.Duration(targetFPS)

	for {
		frameStart := time.Now()

		if _, err := ap.ReadOrResizeOrSignalOnce(); err != nil {
			return fmt.Errorf("input error: %w", err)
		}
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
				showHUD = !showHUD
			case 'q', 'Q', 27: // q or Escape
				return nil
			case 3, 4: // Ctrl-C, Ctrl-D
				return nil
			}
		}
		v.SetCamera(cam)

		v.Step()

		ap.StartSyncMode()
		ap.ClearScreen()
		if err := ap.ShowScaledImage(fb.ToImage()); err != nil {
			return fmt.Errorf("show image: %w", err)
		}
		if showHUD {
			ap.WriteAt(0, 0, "%s depth %d", v.Scene(), v.Depth())
			ap.WriteRight(0, "%d tris", v.Mesh().TriangleCount())
			ap.WriteAt(0, ap.H-1, "[/] depth  p painter/depth  g gasket  c cube  space spin  ? HUD")
		}
		ap.EndSyncMode()

		// Frame timing
		if elapsed := time.Since(frameStart); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
