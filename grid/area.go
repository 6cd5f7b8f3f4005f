package grid

// Area is the 3x3 stencil around a center coordinate. It holds no copies:
// every accessor resolves through the grid, so writes land in shared storage
// immediately and a later Area for an overlapping neighborhood observes them.
//
// Areas are cheap values. Callers must finish one cell's processing before
// starting the next; pointers returned by the accessors alias grid storage.
type Area[T any] struct {
	grid *Grid[T]
	X, Y int
}

// NewArea builds the stencil centered on (x, y). The center is wrapped.
func NewArea[T any](g *Grid[T], x, y int) Area[T] {
	x, y = g.Wrap(x, y)
	return Area[T]{grid: g, X: x, Y: y}
}

// Grid returns the backing grid.
func (a Area[T]) Grid() *Grid[T] { return a.grid }

// CoordFromDir returns the wrapped grid coordinate of a stencil slot.
func (a Area[T]) CoordFromDir(d Direction) (int, int) {
	dx, dy := d.Offset()
	return a.grid.Wrap(a.X+dx, a.Y+dy)
}

// Dir returns the cell in the given slot.
func (a Area[T]) Dir(d Direction) *T {
	dx, dy := d.Offset()
	return a.grid.Get(a.X+dx, a.Y+dy)
}

// Neighbor returns the stencil centered on the given slot.
func (a Area[T]) Neighbor(d Direction) Area[T] {
	x, y := a.CoordFromDir(d)
	return Area[T]{grid: a.grid, X: x, Y: y}
}

// Each visits all nine slots, center first.
func (a Area[T]) Each(fn func(d Direction, cell *T)) {
	for _, d := range All {
		fn(d, a.Dir(d))
	}
}

func (a Area[T]) Center() *T    { return a.Dir(Center) }
func (a Area[T]) Up() *T        { return a.Dir(Up) }
func (a Area[T]) Down() *T      { return a.Dir(Down) }
func (a Area[T]) Left() *T      { return a.Dir(Left) }
func (a Area[T]) Right() *T     { return a.Dir(Right) }
func (a Area[T]) UpLeft() *T    { return a.Dir(UpLeft) }
func (a Area[T]) UpRight() *T   { return a.Dir(UpRight) }
func (a Area[T]) DownLeft() *T  { return a.Dir(DownLeft) }
func (a Area[T]) DownRight() *T { return a.Dir(DownRight) }
