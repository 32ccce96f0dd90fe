package render

import (
	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/scenario"
)

// JSONGame is a snapshot of a game.
type JSONGame struct {
	ID     string     `json:"id,omitempty"`
	Board  [][]string `json:"board"`
	Turn   string     `json:"turn"`
	State  string     `json:"state"`
	Pieces JSONCount  `json:"pieces"`
}

// JSONCount holds per-colour piece counts.
type JSONCount struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// JSONStep is one step of a chain.
type JSONStep struct {
	From     checkers.Position  `json:"from"`
	To       checkers.Position  `json:"to"`
	Captured *checkers.Position `json:"captured,omitempty"`
}

// JSONChain is one legal move.
type JSONChain struct {
	Steps    []JSONStep `json:"steps"`
	Captures int        `json:"captures"`
}

// JSONMoves lists the legal moves of one piece.
type JSONMoves struct {
	From   checkers.Position `json:"from"`
	Piece  string            `json:"piece"`
	Chains []JSONChain       `json:"chains"`
}

// JSONTurnMoves lists the legal moves of the side to move.
type JSONTurnMoves struct {
	Turn    string      `json:"turn"`
	CanMove bool        `json:"canMove"`
	Chains  []JSONChain `json:"chains"`
}

// JSONResult is the outcome of one scenario.
type JSONResult struct {
	Name    string `json:"name,omitempty"`
	Path    string `json:"path,omitempty"`
	Passed  bool   `json:"passed"`
	Skipped bool   `json:"skipped,omitempty"`
	Actions int    `json:"actions"`
	Failed  int    `json:"failedAction,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONResults holds a scenario run.
type JSONResults struct {
	Results []JSONResult `json:"results"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Skipped int          `json:"skipped"`
}

// GameToJSON converts a game to its JSON snapshot.
func GameToJSON(g *engine.Game) *JSONGame {
	b := g.Board()
	return &JSONGame{
		ID:    g.ID().String(),
		Board: b.Symbols(),
		Turn:  g.Turn().String(),
		State: g.State().String(),
		Pieces: JSONCount{
			White: b.Count(checkers.White),
			Black: b.Count(checkers.Black),
		},
	}
}

// ChainToJSON converts a chain, keeping captured squares.
func ChainToJSON(c checkers.StepChain) JSONChain {
	jc := JSONChain{Steps: make([]JSONStep, len(c)), Captures: c.Captures()}
	for i, s := range c {
		js := JSONStep{From: s.From, To: s.To}
		if s.Capture {
			captured := s.Captured
			js.Captured = &captured
		}
		jc.Steps[i] = js
	}
	return jc
}

// MovesToJSON converts the legal moves of the piece on from.
func MovesToJSON(b *checkers.Board, from checkers.Position, chains []checkers.StepChain) *JSONMoves {
	jm := &JSONMoves{From: from, Chains: make([]JSONChain, len(chains))}
	if from.Valid() {
		jm.Piece = b.Get(from).Symbol()
	}
	for i, c := range chains {
		jm.Chains[i] = ChainToJSON(c)
	}
	return jm
}

// TurnMovesToJSON converts the legal moves of the side to move.
func TurnMovesToJSON(g *engine.Game, chains []checkers.StepChain) *JSONTurnMoves {
	jt := &JSONTurnMoves{
		Turn:    g.Turn().String(),
		CanMove: g.CanMove(),
		Chains:  make([]JSONChain, len(chains)),
	}
	for i, c := range chains {
		jt.Chains[i] = ChainToJSON(c)
	}
	return jt
}

// ResultsToJSON converts scenario results and their totals.
func ResultsToJSON(results []*scenario.Result) *JSONResults {
	sum := scenario.Summarize(results)
	jr := &JSONResults{
		Results: make([]JSONResult, len(results)),
		Passed:  sum.Passed,
		Failed:  sum.Failed,
		Skipped: sum.Skipped,
	}
	for i, r := range results {
		res := JSONResult{
			Name:    r.Name,
			Path:    r.Path,
			Passed:  r.Passed,
			Skipped: r.Skipped,
			Actions: r.Actions,
		}
		if r.Err != nil {
			res.Failed = r.FailedAction()
			res.Error = r.Err.Error()
		}
		jr.Results[i] = res
	}
	return jr
}
