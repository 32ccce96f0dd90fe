// Package checkers provides core draughts types and board operations.
package checkers

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // Empty squares have no colour
	Black
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	default:
		return "NO_COLOUR"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// ParseColour converts "white" or "black" (any case) to a Colour.
// An empty string yields White, the default side to move.
func ParseColour(s string) (Colour, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "WHITE", "W":
		return White, nil
	case "BLACK", "B":
		return Black, nil
	default:
		return NoColour, fmt.Errorf("unknown colour %q", s)
	}
}

// Kind is the movement shape of a piece.
type Kind int

const (
	Empty Kind = iota
	Pawn
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Constants for board dimensions and piece limits.
const (
	BoardSize      = 8
	MaxPieces      = 12 // per colour
	ColourShift    = 2  // bits reserved for the colour in a Piece
	colourBitsMask = 1<<ColourShift - 1
)

// Piece is a coloured piece packed into a single value: kind<<ColourShift | colour.
// The zero value is an empty square.
type Piece uint8

// None is the empty square.
const None Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == Empty {
		return None
	}
	return Piece(int(kind)<<ColourShift | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Colour extracts the colour of the piece.
func (p Piece) Colour() Colour {
	return Colour(p & colourBitsMask)
}

// Kind extracts the movement shape of the piece.
func (p Piece) Kind() Kind {
	return Kind(p >> ColourShift)
}

// IsEmpty reports whether the square holds nothing.
func (p Piece) IsEmpty() bool {
	return p.Kind() == Empty
}

// IsKing reports whether the piece is royal.
func (p Piece) IsKing() bool {
	return p.Kind() == King
}

// Promoted returns the king of the same colour for a pawn, and the piece
// itself otherwise.
func (p Piece) Promoted() Piece {
	if p.Kind() != Pawn {
		return p
	}
	return MakePiece(p.Colour(), King)
}

// NeedsPromotion reports whether a pawn standing on pos has reached the far
// row for its colour.
func (p Piece) NeedsPromotion(pos Position) bool {
	if p.Kind() != Pawn {
		return false
	}
	if p.Colour() == White {
		return pos.Row == 0
	}
	return pos.Row == BoardSize-1
}

// Board symbols.
const (
	SymbolEmpty     = "_"
	SymbolBlackPawn = "B"
	SymbolWhitePawn = "W"
	SymbolBlackKing = "BK"
	SymbolWhiteKing = "WK"
)

var symbolPieces = map[string]Piece{
	SymbolEmpty:     None,
	SymbolBlackPawn: B(Pawn),
	SymbolWhitePawn: W(Pawn),
	SymbolBlackKing: B(King),
	SymbolWhiteKing: W(King),
}

var pieceSymbols = map[Piece]string{
	None:    SymbolEmpty,
	B(Pawn): SymbolBlackPawn,
	W(Pawn): SymbolWhitePawn,
	B(King): SymbolBlackKing,
	W(King): SymbolWhiteKing,
}

// ParsePiece looks up the piece for a board symbol. Symbols are matched
// case-insensitively.
func ParsePiece(symbol string) (Piece, error) {
	if p, ok := symbolPieces[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return p, nil
	}
	return None, fmt.Errorf("unknown piece symbol %q: %w", symbol, errors.ErrInvalidBoard)
}

// Symbol returns the board symbol of the piece.
func (p Piece) Symbol() string {
	if s, ok := pieceSymbols[p]; ok {
		return s
	}
	return "?"
}

// String returns the board symbol of the piece.
func (p Piece) String() string {
	return p.Symbol()
}
