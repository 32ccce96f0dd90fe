package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42, "value should be %d", 42)
	AssertEqual(t, [][]string{{"W", "_"}}, [][]string{{"W", "_"}})
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertNoError(t, nil)
}

func TestAssertBools_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "should be false")
	AssertContains(t, "invalid move", "move")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single non-string", []interface{}{42}, "42"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string first", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGrid(t *testing.T) {
	grid := Grid(map[checkers.Position]string{checkers.Pos(3, 3): "WK"})
	AssertEqual(t, len(grid), checkers.BoardSize)
	AssertEqual(t, grid[3][3], "WK")
	AssertEqual(t, grid[0][0], checkers.SymbolEmpty)
}

func TestMustBoardAndAssertBoard(t *testing.T) {
	pieces := map[checkers.Position]string{checkers.Pos(2, 2): "B", checkers.Pos(5, 5): "W"}
	a := MustBoard(t, pieces)
	b := MustBoard(t, pieces)
	AssertBoard(t, a, b)
}

func TestHasChain(t *testing.T) {
	chains := []checkers.StepChain{
		checkers.Chain(checkers.Pos(5, 1), checkers.Pos(4, 2)),
		checkers.Chain(checkers.Pos(5, 1), checkers.Pos(4, 0)),
	}
	AssertTrue(t, HasChain(chains, checkers.Chain(checkers.Pos(5, 1), checkers.Pos(4, 0))))
	AssertFalse(t, HasChain(chains, checkers.Chain(checkers.Pos(5, 1), checkers.Pos(3, 3))))
	AssertHasChain(t, chains, chains[0])
	AssertContains(t, formatChains(chains), "(5, 1) -> (4, 2)")
}
