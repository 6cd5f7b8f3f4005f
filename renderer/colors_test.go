package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/grid"
)

func TestSoilBand(t *testing.T) {
	tests := []struct {
		organics uint8
		want     int
	}{
		{0, 0}, {1, 0},
		{2, 1}, {5, 1},
		{6, 2}, {16, 2},
		{17, 3}, {128, 3},
		{129, 4}, {160, 4},
		{161, 5}, {192, 5},
		{193, 6}, {224, 6},
		{225, 7}, {255, 7},
	}
	for _, tt := range tests {
		if got := SoilBand(tt.organics); got != tt.want {
			t.Errorf("SoilBand(%d) = %d, want %d", tt.organics, got, tt.want)
		}
	}
}

func TestLifeColor(t *testing.T) {
	if _, ok := LifeColor(components.LifeCell{}); ok {
		t.Error("empty cell should not be drawn")
	}

	full, ok := LifeColor(components.NewLife(components.RoleLeaf, 50, grid.Center, 10))
	if !ok || full != roleColors[components.RoleLeaf] {
		t.Errorf("well-fed leaf = %v, want %v", full, roleColors[components.RoleLeaf])
	}

	dim, _ := LifeColor(components.NewLife(components.RoleLeaf, 0, grid.Center, 10))
	if dim.G >= full.G || dim.G < full.G/2-1 {
		t.Errorf("starving leaf G = %d, want about half of %d", dim.G, full.G)
	}
}

func TestCellColorLayers(t *testing.T) {
	cell := components.WorldCell{
		Life: components.NewLife(components.RoleFilter, 20, grid.Center, 10),
		Soil: components.SoilCell{Organics: 200},
	}

	if got := CellColor(&cell, AllLayers()); got != roleColors[components.RoleFilter] {
		t.Errorf("life should cover soil, got %v", got)
	}
	if got := CellColor(&cell, Layers{Soil: true}); got != soilPalette[6] {
		t.Errorf("soil only = %v, want %v", got, soilPalette[6])
	}

	// Pollution hazes whatever is underneath
	cell.Air.Pollution = 254
	hazed := CellColor(&cell, AllLayers())
	if hazed == roleColors[components.RoleFilter] || hazed.A != 255 {
		t.Errorf("pollution left the cell untouched: %v", hazed)
	}
}

func TestFill(t *testing.T) {
	g := grid.New[components.WorldCell](3, 2)
	g.Get(2, 1).Life = components.NewLife(components.RoleStem, 20, grid.Center, 10)

	pixels := make([]rl.Color, g.Len())
	Fill(pixels, g, AllLayers())

	if pixels[g.Index(2, 1)] != roleColors[components.RoleStem] {
		t.Errorf("stem pixel = %v", pixels[g.Index(2, 1)])
	}
	if pixels[g.Index(0, 0)] != soilPalette[0] {
		t.Errorf("bare soil pixel = %v", pixels[g.Index(0, 0)])
	}
}
