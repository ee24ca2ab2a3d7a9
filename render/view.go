package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/cubular/config"
	"github.com/lixenwraith/cubular/parameter"
)

// Plane selects which world axes map to screen columns and rows
type Plane int

const (
	// PlaneXY looks along +z: columns follow x, rows follow y
	PlaneXY Plane = iota
	// PlaneXZ looks down -y: columns follow x, rows follow z
	PlaneXZ
)

// ParsePlane resolves "xy" or "xz"
func ParsePlane(s string) (Plane, error) {
	switch s {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	}
	return 0, fmt.Errorf("unknown view plane %q", s)
}

// View is an orthographic camera
type View struct {
	Name     string
	Center   mgl32.Vec3
	Plane    Plane
	CellSize float32 // World units per column
}

// ViewsFromConfig converts configured views; invalid planes fall back to xy
func ViewsFromConfig(cfgs []config.View) []View {
	out := make([]View, 0, len(cfgs))
	for _, c := range cfgs {
		p, err := ParsePlane(c.Plane)
		if err != nil {
			p = PlaneXY
		}
		out = append(out, View{Name: c.Name, Center: c.Center.V(), Plane: p, CellSize: c.CellSize})
	}
	return out
}

// axes returns the world axis for columns, for rows, and for depth
func (v View) axes() (col, row, depth int) {
	if v.Plane == PlaneXZ {
		return 0, 2, 1
	}
	return 0, 1, 2
}

// Depth returns the distance of p from the camera along the view direction; larger is farther
func (v View) Depth(p mgl32.Vec3) float32 {
	if v.Plane == PlaneXZ {
		return -p[1]
	}
	return p[2]
}

// Project maps a world point to fractional screen coordinates for a w x h drawing area
func (v View) Project(p mgl32.Vec3, w, h int) (x, y float32) {
	col, row, _ := v.axes()
	x = (p[col]-v.Center[col])/v.CellSize + float32(w)/2
	y = float32(h)/2 - (p[row]-v.Center[row])/(v.CellSize*parameter.CellAspect)
	return x, y
}

// Rect projects world bounds to a cell rectangle [x0,x1) x [y0,y1), at least one cell in size
func (v View) Rect(lo, hi mgl32.Vec3, w, h int) (x0, y0, x1, y1 int) {
	ax, ay := v.Project(lo, w, h)
	bx, by := v.Project(hi, w, h)
	fx0, fx1 := min(ax, bx), max(ax, bx)
	fy0, fy1 := min(ay, by), max(ay, by)

	x0, x1 = int(math.Floor(float64(fx0))), int(math.Ceil(float64(fx1)))
	y0, y1 = int(math.Floor(float64(fy0))), int(math.Ceil(float64(fy1)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Pan moves the center along the screen axes by dx columns-worth and dy rows-worth of world units
func (v *View) Pan(dx, dy float32) {
	col, row, _ := v.axes()
	v.Center[col] += dx
	v.Center[row] += dy
}
