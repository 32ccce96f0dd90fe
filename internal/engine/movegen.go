// Package engine provides draughts move generation and the game state machine.
package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// MaxSteps bounds a ray scan: no diagonal is longer than the board.
const MaxSteps = checkers.BoardSize

// direction returns the square n diagonal steps from its origin.
type direction func(n int) checkers.Position

// LegalMoves returns every chain the piece on pos may play, each starting
// with prefix. Partial capture chains are included alongside their
// continuations. The board is not modified.
func LegalMoves(board *checkers.Board, pos checkers.Position, prefix checkers.StepChain) []checkers.StepChain {
	piece := board.Get(pos)

	switch piece.Kind() {
	case checkers.Pawn:
		up := piece.Colour() == checkers.White
		dirs := []direction{
			func(n int) checkers.Position { return pos.Right(up, n) },
			func(n int) checkers.Position { return pos.Left(up, n) },
		}
		return calculateMoves(board, pos, prefix, dirs, piece.Colour(), 1)

	case checkers.King:
		dirs := []direction{pos.UpRight, pos.UpLeft, pos.DownRight, pos.DownLeft}
		return calculateMoves(board, pos, prefix, dirs, piece.Colour(), MaxSteps)
	}

	return nil
}

// calculateMoves scans each direction outward from pos. Every empty square
// is a plain landing appended to prefix, so a chain that has jumped may end
// with one plain step. The first opposing piece is a capture if the square
// behind it is free, and the capture is then extended recursively on a
// copy of the board. Any occupied square ends the ray.
func calculateMoves(board *checkers.Board, pos checkers.Position, prefix checkers.StepChain, dirs []direction, colour checkers.Colour, maxSteps int) []checkers.StepChain {
	var chains []checkers.StepChain

	for _, dir := range dirs {
		for i := 1; i <= maxSteps; i++ {
			target := dir(i)
			if !target.Valid() {
				break
			}

			piece := board.Get(target)
			if piece.IsEmpty() {
				chains = append(chains, prefix.Append(checkers.NewStep(pos, target)))
				continue
			}
			if piece.Colour() == colour {
				break
			}

			landing := dir(i + 1)
			if landing.Valid() && board.Get(landing).IsEmpty() {
				jump := checkers.NewJump(pos, landing, target)
				chain := prefix.Append(jump)
				chains = append(chains, chain)

				next := board.Copy()
				next.MoveStep(jump)
				chains = append(chains, LegalMoves(next, landing, chain)...)
			}
			break
		}
	}

	return chains
}

// AllLegalMoves returns the chains of every piece of the given colour.
func AllLegalMoves(board *checkers.Board, colour checkers.Colour) []checkers.StepChain {
	var chains []checkers.StepChain
	for _, pos := range board.PiecesOf(colour) {
		chains = append(chains, LegalMoves(board, pos, nil)...)
	}
	return chains
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *checkers.Board, colour checkers.Colour) bool {
	for _, pos := range board.PiecesOf(colour) {
		if len(LegalMoves(board, pos, nil)) > 0 {
			return true
		}
	}
	return false
}

// LongestCaptures keeps only the chains with the highest capture count.
// When no chain captures, the input is returned unchanged.
func LongestCaptures(chains []checkers.StepChain) []checkers.StepChain {
	best := 0
	for _, c := range chains {
		if n := c.Captures(); n > best {
			best = n
		}
	}
	if best == 0 {
		return chains
	}

	var longest []checkers.StepChain
	for _, c := range chains {
		if c.Captures() == best {
			longest = append(longest, c)
		}
	}
	return longest
}
