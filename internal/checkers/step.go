package checkers

import "strings"

// Step is a single square-to-square transition. Captured is meaningful only
// when Capture is set.
type Step struct {
	From     Position
	To       Position
	Captured Position
	Capture  bool
}

// NewStep creates a plain (non-capturing) step.
func NewStep(from, to Position) Step {
	return Step{From: from, To: to}
}

// NewJump creates a step that removes the piece on captured.
func NewJump(from, to, captured Position) Step {
	return Step{From: from, To: to, Captured: captured, Capture: true}
}

// Equal compares the source and destination only. The captured square is
// derived from the board and is not part of a step's identity.
func (s Step) Equal(other Step) bool {
	return s.From == other.From && s.To == other.To
}

// String returns "(r, c) -> (r, c)", marking jumps with "x".
func (s Step) String() string {
	sep := " -> "
	if s.Capture {
		sep = " x "
	}
	return s.From.String() + sep + s.To.String()
}

// StepChain is one full move: a single plain step or a run of jumps.
type StepChain []Step

// Chain builds a chain of plain steps through the given squares.
func Chain(squares ...Position) StepChain {
	if len(squares) < 2 {
		return nil
	}
	chain := make(StepChain, 0, len(squares)-1)
	for i := 1; i < len(squares); i++ {
		chain = append(chain, NewStep(squares[i-1], squares[i]))
	}
	return chain
}

// Append returns a new chain with step added. The receiver is never modified
// and the result never shares its backing array, so sibling search branches
// can extend the same prefix independently.
func (c StepChain) Append(step Step) StepChain {
	next := make(StepChain, len(c), len(c)+1)
	copy(next, c)
	return append(next, step)
}

// Equal reports whether both chains have the same length and pairwise equal
// steps.
func (c StepChain) Equal(other StepChain) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// From returns the source square of the first step.
func (c StepChain) From() Position {
	return c[0].From
}

// To returns the destination square of the last step.
func (c StepChain) To() Position {
	return c[len(c)-1].To
}

// Captures counts the capturing steps.
func (c StepChain) Captures() int {
	n := 0
	for _, s := range c {
		if s.Capture {
			n++
		}
	}
	return n
}

// Index returns the position of the first chain in chains equal to c, or -1.
func (c StepChain) Index(chains []StepChain) int {
	for i, other := range chains {
		if c.Equal(other) {
			return i
		}
	}
	return -1
}

// String renders the chain as its steps joined by ", ".
func (c StepChain) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
