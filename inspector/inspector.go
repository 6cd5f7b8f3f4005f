package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectaculife/components"
)

// Panel layout
const (
	PanelWidth   = 280
	PanelPadding = 10
	HeaderHeight = 28
	fieldHeight  = 18
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 20, G: 25, B: 30, A: 235}
	ColorPanelBorder = rl.Color{R: 60, G: 70, B: 80, A: 255}
	ColorPanelHeader = rl.Color{R: 35, G: 45, B: 60, A: 255}
	ColorHeaderText  = rl.Color{R: 230, G: 230, B: 230, A: 255}
)

// Panel shows the cell under the cursor. It never writes to the world.
type Panel struct {
	panelX, panelY int32
	screenWidth    int32
}

// NewPanel creates a panel anchored to the top-right corner.
func NewPanel(screenWidth, screenHeight int32) *Panel {
	p := &Panel{}
	p.Resize(screenWidth, screenHeight)
	return p
}

// Resize re-anchors the panel.
func (p *Panel) Resize(screenWidth, _ int32) {
	p.screenWidth = screenWidth
	p.panelX = screenWidth - PanelWidth - 10
	p.panelY = 10
}

// Draw renders the cell at (x, y).
func (p *Panel) Draw(x, y int, cell components.WorldCell) {
	fields := ExtractFields(&cell)
	genomeLines := genomeSummary(&cell.Life)

	height := int32(HeaderHeight + PanelPadding*2)
	for _, f := range fields {
		if f.Widget == WidgetSection {
			height += 22
		} else {
			height += fieldHeight
		}
	}
	height += int32(len(genomeLines)) * fieldHeight

	rl.DrawRectangle(p.panelX, p.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(p.panelX), Y: float32(p.panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(p.panelX, p.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(fmt.Sprintf("CELL (%d, %d)", x, y), p.panelX+PanelPadding, p.panelY+7, 16, ColorHeaderText)

	cx := p.panelX + PanelPadding
	cy := p.panelY + HeaderHeight + PanelPadding
	width := int32(PanelWidth - 2*PanelPadding)
	for _, f := range fields {
		cy += DrawField(cx, cy, width, f)
		// Genome details follow the Life section
		if f.Section == "Life" && f.Name == "Clade" {
			for _, line := range genomeLines {
				rl.DrawText(line, cx, cy, 14, ColorTextDim)
				cy += fieldHeight
			}
		}
	}
}

// genomeSummary describes a Stem's program counter, or nothing.
func genomeSummary(l *components.LifeCell) []string {
	if !l.Alive || l.Genome == nil {
		return nil
	}
	g := l.Genome
	gene := g.ActiveGene()
	return []string{
		fmt.Sprintf("Gene: %d  Seed: %d  Mut: %d%%", g.Active, g.Seed, g.MutationRate),
		fmt.Sprintf("If %s(%d) then %s", gene.MainCondition, gene.MainParam, gene.MainAction.Kind),
		fmt.Sprintf("U:%s D:%s L:%s R:%s", gene.Up.Kind, gene.Down.Kind, gene.Left.Kind, gene.Right.Kind),
	}
}
