// Package render formats boards, games, move lists and scenario results as
// text or JSON.
package render

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// cellWidth fits the widest symbol ("WK") plus a separating space.
const cellWidth = 3

// TextBoard draws b one row per line. With coordinates set, a column header
// and row numbers frame the grid.
func TextBoard(b *checkers.Board, coordinates bool) string {
	var sb strings.Builder

	if coordinates {
		sb.WriteString("   ")
		for col := 0; col < checkers.BoardSize-1; col++ {
			fmt.Fprintf(&sb, "%-*d", cellWidth, col)
		}
		fmt.Fprintf(&sb, "%d", checkers.BoardSize-1)
		sb.WriteString("\n")
	}

	for row := 0; row < checkers.BoardSize; row++ {
		if coordinates {
			fmt.Fprintf(&sb, "%d  ", row)
		}
		for col := 0; col < checkers.BoardSize; col++ {
			sym := b.Get(checkers.Pos(row, col)).Symbol()
			if col == checkers.BoardSize-1 {
				sb.WriteString(sym)
				continue
			}
			fmt.Fprintf(&sb, "%-*s", cellWidth, sym)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// TextChains lists chains one per line, numbered from 1.
func TextChains(from checkers.Position, chains []checkers.StepChain) string {
	return textChainList(fmt.Sprintf("from %v", from), chains)
}

// TextTurnChains lists the chains of every piece of colour.
func TextTurnChains(colour checkers.Colour, chains []checkers.StepChain) string {
	return textChainList(fmt.Sprintf("for %v", colour), chains)
}

func textChainList(subject string, chains []checkers.StepChain) string {
	if len(chains) == 0 {
		return fmt.Sprintf("no legal moves %s\n", subject)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d legal moves %s:\n", len(chains), subject)
	for i, c := range chains {
		fmt.Fprintf(&sb, "%3d. %v", i+1, c)
		if n := c.Captures(); n > 0 {
			fmt.Fprintf(&sb, " (%d captured)", n)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
