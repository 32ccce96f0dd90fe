package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Grid returns an 8x8 symbol grid that is empty apart from the given pieces.
func Grid(pieces map[checkers.Position]string) [][]string {
	grid := make([][]string, checkers.BoardSize)
	for row := range grid {
		grid[row] = make([]string, checkers.BoardSize)
		for col := range grid[row] {
			grid[row][col] = checkers.SymbolEmpty
		}
	}
	for pos, symbol := range pieces {
		grid[pos.Row][pos.Col] = symbol
	}
	return grid
}

// MustBoard builds a board from the given pieces and aborts the test if it
// is invalid.
func MustBoard(t *testing.T, pieces map[checkers.Position]string) *checkers.Board {
	t.Helper()
	b, err := checkers.NewBoard(Grid(pieces))
	if err != nil {
		t.Fatalf("invalid test board: %v", err)
	}
	return b
}

// AssertBoard compares two boards square by square and prints a symbol diff.
func AssertBoard(t *testing.T, got, want *checkers.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want.Symbols(), got.Symbols()); diff != "" {
		report(t, "board mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// HasChain reports whether chains contains one equal to want.
func HasChain(chains []checkers.StepChain, want checkers.StepChain) bool {
	return want.Index(chains) >= 0
}

// AssertHasChain fails unless chains contains one equal to want.
func AssertHasChain(t *testing.T, chains []checkers.StepChain, want checkers.StepChain, msgAndArgs ...interface{}) {
	t.Helper()
	if !HasChain(chains, want) {
		report(t, "chain "+want.String()+" not among "+formatChains(chains), msgAndArgs...)
	}
}

func formatChains(chains []checkers.StepChain) string {
	s := "["
	for i, c := range chains {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s + "]"
}
