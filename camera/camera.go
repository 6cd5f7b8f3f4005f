// Package camera provides a 2D camera over the toroidal grid.
package camera

import "math"

// Camera controls the viewport into the grid. World coordinates are pixels
// at zoom 1: cell (x, y) covers [x*CellSize, (x+1)*CellSize).
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Grid geometry
	CellSize       float32
	Cols, Rows     int
	WorldW, WorldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on a cols x rows grid with 1:1 zoom.
func New(viewportW, viewportH float32, cols, rows int, cellSize float32) *Camera {
	c := &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		CellSize:  cellSize,
		Cols:      cols,
		Rows:      rows,
		WorldW:    float32(cols) * cellSize,
		WorldH:    float32(rows) * cellSize,
		MaxZoom:   16.0,
	}
	c.updateMinZoom()
	c.Reset()
	return c
}

// updateMinZoom keeps the visible area within one copy of the world, so no
// cell is ever drawn twice side by side.
func (c *Camera) updateMinZoom() {
	c.MinZoom = c.ViewportW / c.WorldW
	if z := c.ViewportH / c.WorldH; z > c.MinZoom {
		c.MinZoom = z
	}
	if c.MinZoom > c.MaxZoom {
		c.MaxZoom = c.MinZoom
	}
}

// WorldToScreen converts world coordinates to screen coordinates along the
// shortest toroidal path from the camera center.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := toroidalDelta(wx, c.X, c.WorldW)
	dy := toroidalDelta(wy, c.Y, c.WorldH)

	sx = c.ViewportW/2 + dx*c.Zoom
	sy = c.ViewportH/2 + dy*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	dx := (sx - c.ViewportW/2) / c.Zoom
	dy := (sy - c.ViewportH/2) / c.Zoom

	wx = mod(c.X+dx, c.WorldW)
	wy = mod(c.Y+dy, c.WorldH)
	return wx, wy
}

// ScreenToCell returns the grid cell under a screen position.
func (c *Camera) ScreenToCell(sx, sy float32) (x, y int) {
	wx, wy := c.ScreenToWorld(sx, sy)
	x = int(wx / c.CellSize)
	y = int(wy / c.CellSize)
	// Float rounding at the far edge
	if x >= c.Cols {
		x = c.Cols - 1
	}
	if y >= c.Rows {
		y = c.Rows - 1
	}
	return x, y
}

// CellToScreen returns the screen position of a cell's top-left corner and
// the on-screen cell size.
func (c *Camera) CellToScreen(x, y int) (sx, sy, size float32) {
	sx, sy = c.WorldToScreen(float32(x)*c.CellSize, float32(y)*c.CellSize)
	return sx, sy, c.CellSize * c.Zoom
}

// TileOrigins returns the screen positions at which the world's top-left
// corner must be drawn so that the wrapped grid covers the viewport.
// At most four copies are needed since the view never exceeds the world.
func (c *Camera) TileOrigins() [][2]float32 {
	// Origin of the copy containing the camera center
	ox := c.ViewportW/2 - c.X*c.Zoom
	oy := c.ViewportH/2 - c.Y*c.Zoom
	w := c.WorldW * c.Zoom
	h := c.WorldH * c.Zoom

	xs := []float32{ox}
	if ox > 0 {
		xs = append(xs, ox-w)
	}
	if ox+w < c.ViewportW {
		xs = append(xs, ox+w)
	}
	ys := []float32{oy}
	if oy > 0 {
		ys = append(ys, oy-h)
	}
	if oy+h < c.ViewportH {
		ys = append(ys, oy+h)
	}

	origins := make([][2]float32, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			origins = append(origins, [2]float32{x, y})
		}
	}
	return origins
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.updateMinZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the camera by the given delta in screen pixels.
// Automatically wraps around world boundaries.
func (c *Camera) Pan(dx, dy float32) {
	c.X = mod(c.X+dx/c.Zoom, c.WorldW)
	c.Y = mod(c.Y+dy/c.Zoom, c.WorldH)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the grid center at the smallest zoom >= 1.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.SetZoom(1.0)
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
