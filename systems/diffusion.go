package systems

import (
	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/grid"
)

// Area is the stencil every world update works on.
type Area = grid.Area[components.WorldCell]

// DiffuseSoil evens out soil energy across the 3x3 neighborhood.
// The neighborhood total is preserved up to float rounding.
func DiffuseSoil(area Area) {
	var total float32
	area.Each(func(_ grid.Direction, c *components.WorldCell) {
		total += c.Soil.Energy
	})

	each := total / 9
	area.Each(func(_ grid.Direction, c *components.WorldCell) {
		c.Soil.Energy = each
	})
}

// airSkew is the fixed ±1 pattern laid over the mean when pollution is
// redistributed. It sums to zero, so the neighborhood total is exact.
var airSkew = [9]struct {
	dir  grid.Direction
	skew int
}{
	{grid.UpLeft, -1}, {grid.Up, -1}, {grid.UpRight, 0},
	{grid.Left, -1}, {grid.Center, 0}, {grid.Right, +1},
	{grid.DownLeft, 0}, {grid.Down, +1}, {grid.DownRight, +1},
}

// DiffuseAir redistributes pollution when the neighborhood total divides
// evenly by nine and the mean leaves room for the skew. Otherwise the
// neighborhood is left untouched.
func DiffuseAir(area Area) {
	sum := 0
	area.Each(func(_ grid.Direction, c *components.WorldCell) {
		sum += int(c.Air.Pollution)
	})

	mean, rem := sum/9, sum%9
	if rem != 0 || mean == 0 || mean == 255 {
		return
	}

	for _, s := range airSkew {
		area.Dir(s.dir).Air.Pollution = uint8(mean + s.skew)
	}
}
