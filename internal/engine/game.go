package engine

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Game is a turn-based match on one board. It is not safe for concurrent
// use; callers sharing a Game must serialise access.
type Game struct {
	id             uuid.UUID
	board          *checkers.Board
	turn           checkers.Colour
	longestCapture bool
	logger         zerolog.Logger
}

// GameOption configures a Game.
type GameOption func(*gameOptions)

type gameOptions struct {
	grid           [][]string
	board          *checkers.Board
	turn           string
	colour         checkers.Colour
	longestCapture bool
	logger         zerolog.Logger
}

// WithGrid starts the game from a symbol grid instead of the default layout.
func WithGrid(grid [][]string) GameOption {
	return func(o *gameOptions) {
		o.grid = grid
	}
}

// WithBoard starts the game from a copy of an existing board.
func WithBoard(b *checkers.Board) GameOption {
	return func(o *gameOptions) {
		o.board = b
	}
}

// WithTurn sets the side to move by name ("WHITE" or "BLACK", any case).
func WithTurn(name string) GameOption {
	return func(o *gameOptions) {
		o.turn = name
	}
}

// WithColour sets the side to move.
func WithColour(c checkers.Colour) GameOption {
	return func(o *gameOptions) {
		o.colour = c
	}
}

// WithLongestCapture only accepts chains with the maximum available number
// of captures for the moving piece.
func WithLongestCapture(enabled bool) GameOption {
	return func(o *gameOptions) {
		o.longestCapture = enabled
	}
}

// WithLogger sets the logger used for move diagnostics.
func WithLogger(l zerolog.Logger) GameOption {
	return func(o *gameOptions) {
		o.logger = l
	}
}

// NewGame creates a game. Without options it uses the starting position
// with White to move.
func NewGame(opts ...GameOption) (*Game, error) {
	o := gameOptions{colour: checkers.White, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	var board *checkers.Board
	if o.board != nil {
		if err := o.board.Validate(); err != nil {
			return nil, err
		}
		board = o.board.Copy()
	} else {
		b, err := checkers.NewBoard(o.grid)
		if err != nil {
			return nil, err
		}
		board = b
	}

	turn := o.colour
	if o.turn != "" {
		c, err := checkers.ParseColour(o.turn)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidConfig, err.Error())
		}
		turn = c
	}
	if turn != checkers.White && turn != checkers.Black {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "starting colour %v", turn)
	}

	g := &Game{
		id:             uuid.New(),
		board:          board,
		turn:           turn,
		longestCapture: o.longestCapture,
	}
	g.logger = o.logger.With().Str("game", g.id.String()).Logger()
	return g, nil
}

// ID returns the identifier used to correlate log entries for this game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns a snapshot of the current board.
func (g *Game) Board() *checkers.Board {
	return g.board.Copy()
}

// Turn returns the colour to move.
func (g *Game) Turn() checkers.Colour {
	return g.turn
}

// LegalMoves returns the chains the piece on pos may play under this
// game's capture policy, regardless of whose turn it is.
func (g *Game) LegalMoves(pos checkers.Position) []checkers.StepChain {
	if !pos.Valid() {
		return nil
	}
	chains := LegalMoves(g.board, pos, nil)
	if g.longestCapture {
		chains = LongestCaptures(chains)
	}
	return chains
}

// TurnMoves returns every chain the side to move may play under this
// game's capture policy. The policy applies per piece, as in LegalMoves.
func (g *Game) TurnMoves() []checkers.StepChain {
	if !g.longestCapture {
		return AllLegalMoves(g.board, g.turn)
	}
	var chains []checkers.StepChain
	for _, pos := range g.board.PiecesOf(g.turn) {
		chains = append(chains, g.LegalMoves(pos)...)
	}
	return chains
}

// CanMove reports whether the side to move has any legal chain.
func (g *Game) CanMove() bool {
	return HasLegalMoves(g.board, g.turn)
}

// Move validates chain against the legal moves of its first piece and
// applies it. On error the game is left unchanged.
func (g *Game) Move(chain checkers.StepChain) error {
	if len(chain) == 0 {
		return &errors.MoveError{Err: errors.ErrInvalidMove, Turn: g.turn.String(), Reason: "empty chain"}
	}

	from := chain.From()
	moveErr := func(err error, reason string) error {
		return &errors.MoveError{
			Err:    err,
			From:   from.String(),
			To:     chain.To().String(),
			Turn:   g.turn.String(),
			Reason: reason,
		}
	}

	if !from.Valid() {
		return moveErr(errors.ErrInvalidMove, "source square off the board")
	}
	piece := g.board.Get(from)
	if piece.IsEmpty() {
		return moveErr(errors.ErrInvalidMove, "source square is empty")
	}
	if piece.Colour() != g.turn {
		return moveErr(errors.ErrInvalidTurn, piece.Colour().String()+" piece moved")
	}

	legal := g.LegalMoves(from)
	idx := chain.Index(legal)
	if idx < 0 {
		g.logger.Warn().
			Stringer("chain", chain).
			Str("turn", g.turn.String()).
			Int("legal", len(legal)).
			Msgf("rejected move on board:\n%s", g.board)
		if e := g.logger.Debug(); e.Enabled() {
			e.Msg(spew.Sdump(legal))
		}
		return moveErr(errors.ErrInvalidMove, "not a legal chain")
	}

	applied := legal[idx]
	for _, step := range applied {
		g.board.ApplyStep(step)
	}
	g.turn = g.turn.Opposite()

	g.logger.Debug().
		Stringer("chain", applied).
		Int("captures", applied.Captures()).
		Str("next", g.turn.String()).
		Msg("move applied")
	if state := g.State(); state.IsFinished() {
		g.logger.Info().Stringer("state", state).Msg("game over")
	} else if !g.CanMove() {
		g.logger.Info().Str("turn", g.turn.String()).Msg("side to move is blocked")
	}
	return nil
}

// State reports the winner if one side has no pieces left, otherwise whose
// turn it is.
func (g *Game) State() State {
	if !g.board.HasPiece(checkers.White) {
		return BlackWin
	}
	if !g.board.HasPiece(checkers.Black) {
		return WhiteWin
	}
	if g.turn == checkers.White {
		return WhiteTurn
	}
	return BlackTurn
}
