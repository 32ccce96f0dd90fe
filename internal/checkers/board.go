package checkers

import (
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Board is an 8x8 grid of pieces indexed [row][col]. It is a plain value:
// assigning or copying a Board yields an independent grid.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// DefaultGrid returns the symbol grid of the standard starting position:
// black pawns on rows 0-2, white pawns on rows 5-7, dark squares only.
func DefaultGrid() [][]string {
	grid := make([][]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		grid[row] = make([]string, BoardSize)
		for col := 0; col < BoardSize; col++ {
			symbol := SymbolEmpty
			if Pos(row, col).IsDark() {
				switch {
				case row < 3:
					symbol = SymbolBlackPawn
				case row > 4:
					symbol = SymbolWhitePawn
				}
			}
			grid[row][col] = symbol
		}
	}
	return grid
}

// NewBoard builds and validates a board from a symbol grid. A nil grid
// selects the starting position. No board is returned unless every
// invariant holds.
func NewBoard(grid [][]string) (*Board, error) {
	if grid == nil {
		grid = DefaultGrid()
	}
	if len(grid) != BoardSize {
		return nil, errors.NewBoardError("board has %d rows, want %d", len(grid), BoardSize)
	}

	b := &Board{}
	for row, symbols := range grid {
		if len(symbols) != BoardSize {
			return nil, errors.NewBoardError("row %d has %d squares, want %d", row, len(symbols), BoardSize)
		}
		for col, symbol := range symbols {
			piece, err := ParsePiece(symbol)
			if err != nil {
				return nil, &errors.BoardError{Err: err, Row: row, Col: col}
			}
			b.Squares[row][col] = piece
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b, _ := NewBoard(nil)
	return b
}

// Validate checks the layout invariants: light squares are empty, at least
// one piece is present and neither colour exceeds MaxPieces.
func (b *Board) Validate() error {
	counts := map[Colour]int{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row][col]
			if piece.IsEmpty() {
				continue
			}
			if !Pos(row, col).IsDark() {
				return &errors.BoardError{Err: errors.ErrInvalidBoard, Reason: "piece on light square", Row: row, Col: col}
			}
			counts[piece.Colour()]++
		}
	}

	if counts[White]+counts[Black] == 0 {
		return errors.NewBoardError("board has no pieces")
	}
	for _, colour := range []Colour{White, Black} {
		if counts[colour] > MaxPieces {
			return errors.NewBoardError("%d %s pieces, at most %d allowed", counts[colour], colour, MaxPieces)
		}
	}
	return nil
}

// Get returns the piece at pos. pos must be valid.
func (b *Board) Get(pos Position) Piece {
	return b.Squares[pos.Row][pos.Col]
}

// Set places a piece at pos. pos must be valid.
func (b *Board) Set(pos Position, piece Piece) {
	b.Squares[pos.Row][pos.Col] = piece
}

// MoveStep moves the piece on step.From to step.To and removes any captured
// piece. It does not promote.
func (b *Board) MoveStep(step Step) {
	piece := b.Get(step.From)
	b.Set(step.From, None)
	b.Set(step.To, piece)
	if step.Capture {
		b.Set(step.Captured, None)
	}
}

// ApplyStep performs MoveStep and then crowns a pawn that arrived on its far row.
func (b *Board) ApplyStep(step Step) {
	b.MoveStep(step)
	if piece := b.Get(step.To); piece.NeedsPromotion(step.To) {
		b.Set(step.To, piece.Promoted())
	}
}

// PiecesOf returns the squares holding pieces of the given colour in row-major order.
func (b *Board) PiecesOf(colour Colour) []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row][col]
			if !piece.IsEmpty() && piece.Colour() == colour {
				positions = append(positions, Pos(row, col))
			}
		}
	}
	return positions
}

// HasPiece returns true if any piece of the given colour remains.
func (b *Board) HasPiece(colour Colour) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row][col]
			if !piece.IsEmpty() && piece.Colour() == colour {
				return true
			}
		}
	}
	return false
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	return len(b.PiecesOf(colour))
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether every square holds the same piece.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Squares == other.Squares
}

// Symbols renders the board back to a symbol grid.
func (b *Board) Symbols() [][]string {
	grid := make([][]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		grid[row] = make([]string, BoardSize)
		for col := 0; col < BoardSize; col++ {
			grid[row][col] = b.Squares[row][col].Symbol()
		}
	}
	return grid
}

// String returns one line per row with symbols separated by spaces.
func (b *Board) String() string {
	rows := make([]string, BoardSize)
	for row, symbols := range b.Symbols() {
		rows[row] = strings.Join(symbols, " ")
	}
	return strings.Join(rows, "\n")
}
