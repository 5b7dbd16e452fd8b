package viz

import (
	"math"

	"github.com/san-kum/coulomb/internal/charge"
)

// Camera projects world-space positions onto the 2D canvas. World points
// are expected relative to the scene center; rotation happens around that
// center, the turntable style of the reference viewer.
type Camera struct {
	Distance         float64
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Near: 0.1, RotX: -0.6, RotY: 0.5, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p charge.Vec3) charge.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts a center-relative world point to sub-pixel canvas
// coordinates. The bool reports whether the point landed on the canvas.
func (c *Camera) Project(p charge.Vec3, sw, sh int) (int, int, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	scale := minDim / 14.0
	sx := int(rot.X*persp*scale) + sw/2
	sy := int(-rot.Y*persp*scale) + sh/2
	return sx, sy, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// DrawBox draws the wireframe of an axis-aligned cube with the given half
// size, centered on the scene center. Used as a spatial reference in place
// of the reference viewer's grid lines.
func DrawBox(c *Canvas, cam *Camera, half float64) {
	v := []charge.Vec3{
		{X: -half, Y: -half, Z: -half}, {X: half, Y: -half, Z: -half},
		{X: half, Y: half, Z: -half}, {X: -half, Y: half, Z: -half},
		{X: -half, Y: -half, Z: half}, {X: half, Y: -half, Z: half},
		{X: half, Y: half, Z: half}, {X: -half, Y: half, Z: half},
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	sw, sh := c.Width*2, c.Height*4
	for _, e := range edges {
		x0, y0, v0 := cam.Project(v[e[0]], sw, sh)
		x1, y1, v1 := cam.Project(v[e[1]], sw, sh)
		if v0 || v1 {
			c.DrawLine(x0, y0, x1, y1)
		}
	}
}
