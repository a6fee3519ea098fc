package render

import (
	"math"

	"github.com/ansipixels/orb/math3d"
)

// Rasterizer fills triangles into a framebuffer using an explicit
// view-projection matrix supplied each frame. Depth testing and face
// culling are switchable: the painter's-algorithm path configures both
// off once before its loop and relies purely on submission order.
type Rasterizer struct {
	fb          *Framebuffer
	zbuffer     []float64
	viewProj    math3d.Mat4
	depthTest   bool
	faceCulling bool
}

// NewRasterizer creates a rasterizer over fb with depth testing and face
// culling enabled.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{
		fb:          fb,
		viewProj:    math3d.Identity(),
		depthTest:   true,
		faceCulling: true,
	}
	r.Resize()
	return r
}

// Resize resizes the depth buffer to match the framebuffer.
func (r *Rasterizer) Resize() {
	if r.fb == nil {
		r.zbuffer = nil
		return
	}
	r.zbuffer = make([]float64, r.fb.Width*r.fb.Height)
}

// Width returns the framebuffer width.
func (r *Rasterizer) Width() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Width
}

// Height returns the framebuffer height.
func (r *Rasterizer) Height() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Height
}

// SetViewProjection sets the matrix applied to every submitted vertex.
func (r *Rasterizer) SetViewProjection(m math3d.Mat4) {
	r.viewProj = m
}

// SetDepthTest enables or disables z-buffer testing and writing.
func (r *Rasterizer) SetDepthTest(enabled bool) {
	r.depthTest = enabled
}

// SetFaceCulling enables or disables screen-space backface culling.
func (r *Rasterizer) SetFaceCulling(enabled bool) {
	r.faceCulling = enabled
}

// ClearDepth clears the z-buffer (call before each frame when depth
// testing is on).
func (r *Rasterizer) ClearDepth() {
	n := len(r.zbuffer)
	if n == 0 {
		return
	}
	// Copy-doubling for faster clearing.
	r.zbuffer[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(r.zbuffer[i:], r.zbuffer[:i])
	}
}

func (r *Rasterizer) getDepth(x, y int) float64 {
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return math.MaxFloat64
	}
	return r.zbuffer[y*r.Width()+x]
}

func (r *Rasterizer) setDepth(x, y int, z float64) {
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return
	}
	r.zbuffer[y*r.Width()+x] = z
}

// screenVertex holds a vertex transformed to screen space.
type screenVertex struct {
	X, Y float64 // screen coordinates
	Z    float64 // depth
	W    float64 // clip-space w
}

// DrawTriangleFlat rasterizes one flat-colored triangle.
func (r *Rasterizer) DrawTriangleFlat(v0, v1, v2 math3d.Vec3, c Color) {
	var sv [3]screenVertex
	allBehind := true

	for i, p := range [3]math3d.Vec3{v0, v1, v2} {
		clipPos := r.viewProj.MulVec4(math3d.V4FromV3(p, 1))
		if clipPos.W > 0 {
			allBehind = false
		}
		if clipPos.W != 0 {
			sv[i].X = clipPos.X / clipPos.W
			sv[i].Y = clipPos.Y / clipPos.W
			sv[i].Z = clipPos.Z / clipPos.W
		}
		sv[i].W = clipPos.W

		// NDC to screen coordinates, Y flipped.
		sv[i].X = (sv[i].X + 1) * 0.5 * float64(r.Width())
		sv[i].Y = (1 - sv[i].Y) * 0.5 * float64(r.Height())
	}

	if allBehind {
		return
	}

	if r.faceCulling {
		// Screen-space winding check.
		cross := (sv[1].X-sv[0].X)*(sv[2].Y-sv[0].Y) - (sv[1].Y-sv[0].Y)*(sv[2].X-sv[0].X)
		if cross < 0 {
			return
		}
	}

	minX := int(math.Max(0, math.Floor(min3(sv[0].X, sv[1].X, sv[2].X))))
	maxX := int(math.Min(float64(r.Width()-1), math.Ceil(max3(sv[0].X, sv[1].X, sv[2].X))))
	minY := int(math.Max(0, math.Floor(min3(sv[0].Y, sv[1].Y, sv[2].Y))))
	maxY := int(math.Min(float64(r.Height()-1), math.Ceil(max3(sv[0].Y, sv[1].Y, sv[2].Y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			bc := barycentric(
				sv[0].X, sv[0].Y,
				sv[1].X, sv[1].Y,
				sv[2].X, sv[2].Y,
				px, py,
			)
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}
			if r.depthTest {
				z := bc.X*sv[0].Z + bc.Y*sv[1].Z + bc.Z*sv[2].Z
				if z >= r.getDepth(x, y) {
					continue
				}
				r.setDepth(x, y, z)
			}
			r.fb.SetPixel(x, y, c)
		}
	}
}

// DrawTriangleLit draws a triangle shaded by a directional light against
// its face normal (ambient 0.3 + diffuse 0.7).
func (r *Rasterizer) DrawTriangleLit(v0, v1, v2 math3d.Vec3, baseColor Color, lightDir math3d.Vec3) {
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	intensity := math.Abs(normal.Dot(lightDir.Normalize()))
	intensity = 0.3 + 0.7*intensity
	r.DrawTriangleFlat(v0, v1, v2, MultiplyColor(baseColor, intensity))
}

// barycentric calculates barycentric coordinates for point (px, py).
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return math3d.V3(-1, -1, -1) // degenerate, reject every sample
	}
	invDenom := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return math3d.V3(1-u-v, v, u)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
