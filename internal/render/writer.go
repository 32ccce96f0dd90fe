package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/scenario"
)

// Writer prints games, move lists and scenario results.
// Different implementations handle different output formats.
type Writer interface {
	// WriteGame writes the board and status of a game.
	WriteGame(g *engine.Game) error

	// WriteMoves writes the legal moves of the piece on from.
	WriteMoves(g *engine.Game, from checkers.Position, chains []checkers.StepChain) error

	// WriteTurnMoves writes the legal moves of every piece of the side to move.
	WriteTurnMoves(g *engine.Game, chains []checkers.StepChain) error

	// WriteResults writes the outcome of a scenario run.
	WriteResults(results []*scenario.Result) error
}

// NewWriter returns the writer selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) Writer {
	if cfg.Format == config.JSONOutput {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Coordinates)
}

// TextWriter writes human readable output.
type TextWriter struct {
	w           io.Writer
	coordinates bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, coordinates bool) *TextWriter {
	return &TextWriter{w: w, coordinates: coordinates}
}

// WriteGame writes the board followed by the side to move and state.
func (tw *TextWriter) WriteGame(g *engine.Game) error {
	b := g.Board()
	_, err := fmt.Fprintf(tw.w, "%s\nturn: %v  state: %v  white: %d  black: %d\n",
		TextBoard(b, tw.coordinates), g.Turn(), g.State(),
		b.Count(checkers.White), b.Count(checkers.Black))
	return err
}

// WriteMoves writes one numbered chain per line.
func (tw *TextWriter) WriteMoves(_ *engine.Game, from checkers.Position, chains []checkers.StepChain) error {
	_, err := io.WriteString(tw.w, TextChains(from, chains))
	return err
}

// WriteTurnMoves writes one numbered chain per line for the side to move.
func (tw *TextWriter) WriteTurnMoves(g *engine.Game, chains []checkers.StepChain) error {
	_, err := io.WriteString(tw.w, TextTurnChains(g.Turn(), chains))
	return err
}

// WriteResults writes one line per scenario and a summary.
func (tw *TextWriter) WriteResults(results []*scenario.Result) error {
	for _, r := range results {
		var err error
		switch {
		case r.Skipped:
			_, err = fmt.Fprintf(tw.w, "SKIP %s\n", r.Path)
		case r.Passed:
			_, err = fmt.Fprintf(tw.w, "PASS %s (%d actions)\n", r.Path, r.Actions)
		default:
			_, err = fmt.Fprintf(tw.w, "FAIL %v\n", r.Err)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(tw.w, scenario.Summarize(results))
	return err
}

// JSONWriter writes one indented JSON document per call.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

// WriteGame writes the game snapshot.
func (jw *JSONWriter) WriteGame(g *engine.Game) error {
	return jw.enc.Encode(GameToJSON(g))
}

// WriteMoves writes the move list with captured squares.
func (jw *JSONWriter) WriteMoves(g *engine.Game, from checkers.Position, chains []checkers.StepChain) error {
	return jw.enc.Encode(MovesToJSON(g.Board(), from, chains))
}

// WriteTurnMoves writes the move list of the side to move.
func (jw *JSONWriter) WriteTurnMoves(g *engine.Game, chains []checkers.StepChain) error {
	return jw.enc.Encode(TurnMovesToJSON(g, chains))
}

// WriteResults writes every result and the totals.
func (jw *JSONWriter) WriteResults(results []*scenario.Result) error {
	return jw.enc.Encode(ResultsToJSON(results))
}
