package checkers

import "fmt"

// Position is a square on the board. Row 0 is Black's home row and row 7 is
// White's. Positions off the board are valid values; callers check Valid.
type Position struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// Pos is shorthand for Position{row, col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// UpLeft returns the square n diagonal steps toward row 0 and column 0.
func (p Position) UpLeft(n int) Position {
	return Position{Row: p.Row - n, Col: p.Col - n}
}

// UpRight returns the square n diagonal steps toward row 0 and column 7.
func (p Position) UpRight(n int) Position {
	return Position{Row: p.Row - n, Col: p.Col + n}
}

// DownLeft returns the square n diagonal steps toward row 7 and column 0.
func (p Position) DownLeft(n int) Position {
	return Position{Row: p.Row + n, Col: p.Col - n}
}

// DownRight returns the square n diagonal steps toward row 7 and column 7.
func (p Position) DownRight(n int) Position {
	return Position{Row: p.Row + n, Col: p.Col + n}
}

// Left steps toward column 0, upward or downward.
func (p Position) Left(up bool, n int) Position {
	if up {
		return p.UpLeft(n)
	}
	return p.DownLeft(n)
}

// Right steps toward column 7, upward or downward.
func (p Position) Right(up bool, n int) Position {
	if up {
		return p.UpRight(n)
	}
	return p.DownRight(n)
}

// Valid returns true if both coordinates are on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// IsDark returns true for playable squares.
func (p Position) IsDark() bool {
	return (p.Row+p.Col)%2 == 0
}

// DistanceTo returns the absolute row delta between two squares.
func (p Position) DistanceTo(other Position) int {
	return abs(p.Row - other.Row)
}

// String returns "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
