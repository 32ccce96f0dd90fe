package checkers

import (
	"errors"
	"testing"

	cerrors "github.com/lgbarn/checkers-go/internal/errors"
)

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap White and Black")
	}
	if NoColour.Opposite() != NoColour {
		t.Error("NoColour.Opposite() should be NoColour")
	}

	tests := []struct {
		in      string
		want    Colour
		wantErr bool
	}{
		{"WHITE", White, false},
		{"white", White, false},
		{"Black", Black, false},
		{" black ", Black, false},
		{"", White, false},
		{"red", NoColour, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColour(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPieceEncoding(t *testing.T) {
	tests := []struct {
		piece  Piece
		colour Colour
		kind   Kind
		symbol string
	}{
		{None, NoColour, Empty, "_"},
		{W(Pawn), White, Pawn, "W"},
		{B(Pawn), Black, Pawn, "B"},
		{W(King), White, King, "WK"},
		{B(King), Black, King, "BK"},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			if got := tt.piece.Colour(); got != tt.colour {
				t.Errorf("Colour() = %v; want %v", got, tt.colour)
			}
			if got := tt.piece.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v; want %v", got, tt.kind)
			}
			if got := tt.piece.Symbol(); got != tt.symbol {
				t.Errorf("Symbol() = %q; want %q", got, tt.symbol)
			}
			parsed, err := ParsePiece(tt.symbol)
			if err != nil || parsed != tt.piece {
				t.Errorf("ParsePiece(%q) = %v, %v; want %v", tt.symbol, parsed, err, tt.piece)
			}
		})
	}

	if MakePiece(White, Empty) != None {
		t.Error("MakePiece(White, Empty) should be None")
	}
}

func TestParsePiece_Unknown(t *testing.T) {
	for _, symbol := range []string{"X", "", "KW", "__"} {
		if _, err := ParsePiece(symbol); !errors.Is(err, cerrors.ErrInvalidBoard) {
			t.Errorf("ParsePiece(%q) error = %v; want ErrInvalidBoard", symbol, err)
		}
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		pos   Position
		want  bool
	}{
		{"white pawn row 0", W(Pawn), Pos(0, 2), true},
		{"white pawn row 1", W(Pawn), Pos(1, 1), false},
		{"black pawn row 7", B(Pawn), Pos(7, 1), true},
		{"black pawn row 0", B(Pawn), Pos(0, 0), false},
		{"white king row 0", W(King), Pos(0, 0), false},
		{"empty", None, Pos(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.piece.NeedsPromotion(tt.pos); got != tt.want {
				t.Errorf("NeedsPromotion(%v) = %v; want %v", tt.pos, got, tt.want)
			}
		})
	}

	if W(Pawn).Promoted() != W(King) || B(Pawn).Promoted() != B(King) {
		t.Error("Promoted() should turn a pawn into a king of the same colour")
	}
	if W(King).Promoted() != W(King) {
		t.Error("a king never promotes again")
	}
}
