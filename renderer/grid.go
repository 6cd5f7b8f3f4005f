package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectaculife/camera"
	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/grid"
)

// GridRenderer uploads one pixel per cell into a texture every frame and
// draws it scaled through the camera, tiled across the wrap seams.
type GridRenderer struct {
	width, height int
	pixels        []rl.Color
	texture       rl.Texture2D
}

// NewGridRenderer allocates the cell texture. Requires an open window.
func NewGridRenderer(width, height int) *GridRenderer {
	img := rl.GenImageColor(width, height, rl.Black)
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(tex, rl.FilterPoint)

	return &GridRenderer{
		width:   width,
		height:  height,
		pixels:  make([]rl.Color, width*height),
		texture: tex,
	}
}

// Fill computes the composited color of every cell into pixels.
func Fill(pixels []rl.Color, world *grid.Grid[components.WorldCell], layers Layers) {
	cells := world.Cells()
	for i := range cells {
		pixels[i] = CellColor(&cells[i], layers)
	}
}

// Draw renders the grid.
func (r *GridRenderer) Draw(world *grid.Grid[components.WorldCell], cam *camera.Camera, layers Layers) {
	Fill(r.pixels, world, layers)
	rl.UpdateTexture(r.texture, r.pixels)

	src := rl.Rectangle{Width: float32(r.width), Height: float32(r.height)}
	w := cam.WorldW * cam.Zoom
	h := cam.WorldH * cam.Zoom
	for _, o := range cam.TileOrigins() {
		dst := rl.Rectangle{X: o[0], Y: o[1], Width: w, Height: h}
		rl.DrawTexturePro(r.texture, src, dst, rl.Vector2{}, 0, rl.White)
	}
}

// DrawCellOutline highlights one cell, e.g. the one under the cursor.
func DrawCellOutline(cam *camera.Camera, x, y int, color rl.Color) {
	sx, sy, size := cam.CellToScreen(x, y)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: sx, Y: sy, Width: size, Height: size}, 1, color)
}

// DrawRouting draws a short stroke from each visible cell center toward
// each neighbor it sends energy to. Only worthwhile when zoomed in.
func DrawRouting(world *grid.Grid[components.WorldCell], cam *camera.Camera, color rl.Color) {
	if cam.CellSize*cam.Zoom < 8 {
		return
	}
	half := cam.CellSize * cam.Zoom / 2
	for y := 0; y < world.Height(); y++ {
		for x := 0; x < world.Width(); x++ {
			life := &world.Get(x, y).Life
			if !life.Alive || life.EnergyTo.Count() == 0 {
				continue
			}
			sx, sy, _ := cam.CellToScreen(x, y)
			if sx < -half*2 || sy < -half*2 || sx > cam.ViewportW || sy > cam.ViewportH {
				continue
			}
			cx, cy := sx+half, sy+half
			for _, d := range grid.Cardinals {
				if !life.EnergyTo.Get(d) {
					continue
				}
				dx, dy := d.Offset()
				rl.DrawLineV(
					rl.Vector2{X: cx, Y: cy},
					rl.Vector2{X: cx + float32(dx)*half, Y: cy + float32(dy)*half},
					color,
				)
			}
		}
	}
}

// Unload frees the texture.
func (r *GridRenderer) Unload() {
	rl.UnloadTexture(r.texture)
}
