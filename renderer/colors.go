// Package renderer draws the world grid with raylib. It only reads cells.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectaculife/components"
)

// Layers selects which layers are composited.
type Layers struct {
	Life bool
	Soil bool
	Air  bool
}

// AllLayers shows everything.
func AllLayers() Layers {
	return Layers{Life: true, Soil: true, Air: true}
}

// soilBandLimits are the upper organics bounds of each soil shade.
var soilBandLimits = [...]uint8{1, 5, 16, 128, 160, 192, 224, 255}

// soilPalette runs from bare ground to rich humus.
var soilPalette = [len(soilBandLimits)]rl.Color{
	{R: 18, G: 16, B: 14, A: 255},
	{R: 34, G: 28, B: 22, A: 255},
	{R: 48, G: 38, B: 27, A: 255},
	{R: 66, G: 50, B: 32, A: 255},
	{R: 84, G: 62, B: 36, A: 255},
	{R: 102, G: 74, B: 40, A: 255},
	{R: 122, G: 86, B: 44, A: 255},
	{R: 142, G: 98, B: 48, A: 255},
}

var roleColors = [components.NumRoles]rl.Color{
	components.RolePipe:    {R: 170, G: 170, B: 160, A: 255},
	components.RoleLeaf:    {R: 60, G: 200, B: 70, A: 255},
	components.RoleRoot:    {R: 200, G: 140, B: 60, A: 255},
	components.RoleReactor: {R: 230, G: 90, B: 40, A: 255},
	components.RoleFilter:  {R: 70, G: 150, B: 230, A: 255},
	components.RoleStem:    {R: 240, G: 120, B: 200, A: 255},
}

// SoilBand buckets an organics level into a palette index.
func SoilBand(organics uint8) int {
	for i, limit := range soilBandLimits {
		if organics <= limit {
			return i
		}
	}
	return len(soilBandLimits) - 1
}

// SoilColor shades soil by organics, warmed by stored energy.
func SoilColor(s components.SoilCell) rl.Color {
	c := soilPalette[SoilBand(s.Organics)]
	if s.Energy > 0 {
		warm := s.Energy
		if warm > 64 {
			warm = 64
		}
		c.R = components.SaturatingAdd(c.R, uint8(warm))
		c.G = components.SaturatingAdd(c.G, uint8(warm/2))
	}
	return c
}

// LifeColor returns the role color, dimmed when energy runs low, and
// whether the cell is drawn at all.
func LifeColor(l components.LifeCell) (rl.Color, bool) {
	if !l.Alive {
		return rl.Color{}, false
	}
	c := roleColors[l.Role]

	// Half brightness at zero energy, full at 10 and above
	f := l.Energy / 10
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	scale := 0.5 + 0.5*f
	c.R = uint8(float32(c.R) * scale)
	c.G = uint8(float32(c.G) * scale)
	c.B = uint8(float32(c.B) * scale)
	return c, true
}

// AirTint returns a gray haze whose opacity follows pollution.
func AirTint(a components.AirCell) rl.Color {
	return rl.Color{R: 150, G: 150, B: 140, A: a.Pollution / 2}
}

// blend composites src over dst by src alpha.
func blend(dst, src rl.Color) rl.Color {
	a := uint16(src.A)
	inv := 255 - a
	return rl.Color{
		R: uint8((uint16(src.R)*a + uint16(dst.R)*inv) / 255),
		G: uint8((uint16(src.G)*a + uint16(dst.G)*inv) / 255),
		B: uint8((uint16(src.B)*a + uint16(dst.B)*inv) / 255),
		A: 255,
	}
}

// CellColor composites the selected layers of one cell.
func CellColor(cell *components.WorldCell, layers Layers) rl.Color {
	c := rl.Color{R: 10, G: 10, B: 12, A: 255}
	if layers.Soil {
		c = SoilColor(cell.Soil)
	}
	if layers.Life {
		if lc, ok := LifeColor(cell.Life); ok {
			c = lc
		}
	}
	if layers.Air && cell.Air.Pollution > 0 {
		c = blend(c, AirTint(cell.Air))
	}
	return c
}
