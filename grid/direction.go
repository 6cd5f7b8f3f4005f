package grid

// Direction names one slot of a 3x3 neighborhood. Up is y-1.
type Direction uint8

const (
	Center Direction = iota
	Up
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Cardinals lists the four routing directions in canonical order.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// Diagonals lists the four corner directions.
var Diagonals = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}

// All lists every slot of the stencil, center first.
var All = [9]Direction{Center, Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

var offsets = [9][2]int{
	Center:    {0, 0},
	Up:        {0, -1},
	Down:      {0, 1},
	Left:      {-1, 0},
	Right:     {1, 0},
	UpLeft:    {-1, -1},
	UpRight:   {1, -1},
	DownLeft:  {-1, 1},
	DownRight: {1, 1},
}

var opposites = [9]Direction{
	Center:    Center,
	Up:        Down,
	Down:      Up,
	Left:      Right,
	Right:     Left,
	UpLeft:    DownRight,
	UpRight:   DownLeft,
	DownLeft:  UpRight,
	DownRight: UpLeft,
}

var names = [9]string{"center", "up", "down", "left", "right", "up_left", "up_right", "down_left", "down_right"}

// Offset returns the (dx, dy) from the center to this slot.
func (d Direction) Offset() (int, int) {
	o := offsets[d]
	return o[0], o[1]
}

// Opposite returns the slot mirrored through the center.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// IsCardinal reports whether d is one of Up, Down, Left, Right.
func (d Direction) IsCardinal() bool {
	return d >= Up && d <= Right
}

// IsDiagonal reports whether d is a corner slot.
func (d Direction) IsDiagonal() bool {
	return d >= UpLeft && d <= DownRight
}

func (d Direction) String() string {
	if int(d) < len(names) {
		return names[d]
	}
	return "invalid"
}
