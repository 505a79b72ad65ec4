package puzzle

// Direction is the way the blank travels.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in emission order.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta is the index offset of one step in direction d.
func (d Direction) Delta() int {
	switch d {
	case Up:
		return -Width
	case Down:
		return Width
	case Left:
		return -1
	default:
		return 1
	}
}

// canStep reports whether the blank at h can move one cell in direction d.
func (d Direction) canStep(h int) bool {
	switch d {
	case Up:
		return h >= Width
	case Down:
		return h < Size-Width
	case Left:
		return h%Width != 0
	default:
		return h%Width != Width-1
	}
}

// Successor is an arrangement one legal move away from its parent.
type Successor struct {
	Dir         Direction
	Steps       int // cells travelled by the blank; 1 for Moves
	Arrangement Arrangement
	Ordinal     Ordinal
}

// Moves returns the arrangements reachable with one blank swap, in the order
// up, down, left, right. A valid board always has 2 (corner), 3 (edge) or 4
// successors.
func Moves(a Arrangement) ([]Successor, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	h := a.BlankIndex()
	out := make([]Successor, 0, 4)
	for _, d := range Directions {
		if !d.canStep(h) {
			continue
		}
		out = append(out, step(a, h, d, 1))
	}
	return out, nil
}

// Slides returns every arrangement reachable by pushing a whole line of tiles
// in one direction. Successors are grouped by direction (same order as Moves)
// and sorted by distance within a group; the first of each group is the
// corresponding single move.
func Slides(a Arrangement) ([]Successor, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	start := a.BlankIndex()
	out := make([]Successor, 0, 6)
	for _, d := range Directions {
		cur, h := a, start
		for n := 1; d.canStep(h); n++ {
			s := step(cur, h, d, n)
			out = append(out, s)
			cur, h = s.Arrangement, h+d.Delta()
		}
	}
	return out, nil
}

func step(a Arrangement, h int, d Direction, steps int) Successor {
	n := h + d.Delta()
	a[h], a[n] = a[n], Blank
	o, _ := Encode(a)
	return Successor{Dir: d, Steps: steps, Arrangement: a, Ordinal: o}
}
