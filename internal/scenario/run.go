package scenario

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// Result is the outcome of running one scenario.
type Result struct {
	Name    string
	Path    string
	Passed  bool
	Skipped bool

	// Actions is the number of actions executed, including a failing one.
	Actions int

	// Err is a *errors.ScenarioError locating the failure, or nil.
	Err error
}

// FailedAction returns the 1-based number of the failing action, 0 for a
// setup failure and -1 when nothing failed.
func (r *Result) FailedAction() int {
	var se *errors.ScenarioError
	if errors.As(r.Err, &se) {
		return se.Action
	}
	if r.Err != nil {
		return 0
	}
	return -1
}

// Run plays s against a fresh game and stops at the first failed action.
// opts are applied after the fixture's own board and turn.
func Run(s *Scenario, logger zerolog.Logger, opts ...engine.GameOption) *Result {
	res := &Result{Name: s.Name, Path: s.Path}
	logger = logger.With().Str("scenario", res.label()).Logger()

	setup := []engine.GameOption{engine.WithGrid(s.Game.Board), engine.WithLogger(logger)}
	if s.Game.CurrentTurn != "" {
		setup = append(setup, engine.WithTurn(s.Game.CurrentTurn))
	}
	g, err := engine.NewGame(append(setup, opts...)...)

	if s.Game.Error != "" {
		want, _ := ErrorByName(s.Game.Error)
		switch {
		case err == nil:
			err = errors.Wrapf(errors.ErrCheckFailed, "expected %s, game was created", s.Game.Error)
		case errors.Is(err, want):
			err = nil
		default:
			err = errors.Wrapf(errors.ErrCheckFailed, "expected %s, got %v", s.Game.Error, err)
		}
		return res.finish(logger, err, 0, "")
	}
	if err != nil {
		return res.finish(logger, err, 0, "")
	}

	for i := range s.Actions {
		a := &s.Actions[i]
		res.Actions++
		logger.Debug().Int("action", i+1).Msg(a.String())
		if err := apply(g, a); err != nil {
			return res.finish(logger, err, i+1, a.Type)
		}
	}
	return res.finish(logger, nil, 0, "")
}

func (r *Result) finish(logger zerolog.Logger, err error, action int, typ string) *Result {
	if err == nil {
		r.Passed = true
		logger.Debug().Int("actions", r.Actions).Msg("scenario passed")
		return r
	}
	r.Err = &errors.ScenarioError{Err: err, File: r.label(), Action: action, Type: typ}
	logger.Warn().Err(err).Int("action", action).Msg("scenario failed")
	return r
}

func (r *Result) label() string {
	if r.Path != "" {
		return r.Path
	}
	return r.Name
}

func apply(g *engine.Game, a *Action) error {
	switch a.Type {
	case ActionMove:
		return applyMove(g, a)
	case ActionCheckBoard:
		return checkBoard(g, a.ExpectedGrid())
	case ActionCheckState:
		return checkState(g, a.State)
	case ActionCheckPosition:
		return checkPositions(g, a.Positions)
	}
	return errors.Wrapf(errors.ErrScenario, "unknown action type %q", a.Type)
}

func applyMove(g *engine.Game, a *Action) error {
	chain, err := a.Chain()
	if err != nil {
		return err
	}
	err = g.Move(chain)
	if a.Error == "" {
		return err
	}

	want, ok := ErrorByName(a.Error)
	if !ok {
		return errors.Wrapf(errors.ErrScenario, "unknown error name %q", a.Error)
	}
	if err == nil {
		return errors.Wrapf(errors.ErrCheckFailed, "expected %s, move %v was accepted", a.Error, chain)
	}
	if !errors.Is(err, want) {
		return errors.Wrapf(errors.ErrCheckFailed, "expected %s, got %v", a.Error, err)
	}
	return nil
}

func checkBoard(g *engine.Game, grid [][]string) error {
	want, err := checkers.NewBoard(grid)
	if err != nil {
		return errors.Wrapf(errors.ErrScenario, "expected board: %v", err)
	}
	if diff := cmp.Diff(want.Symbols(), g.Board().Symbols()); diff != "" {
		return errors.Wrapf(errors.ErrCheckFailed, "board mismatch (-want +got):\n%s", diff)
	}
	return nil
}

func checkState(g *engine.Game, name string) error {
	want, err := engine.ParseState(name)
	if err != nil {
		return errors.Wrap(errors.ErrScenario, err.Error())
	}
	if got := g.State(); got != want {
		return errors.Wrapf(errors.ErrCheckFailed, "state is %v, want %v", got, want)
	}
	return nil
}

func checkPositions(g *engine.Game, positions []PieceAt) error {
	board := g.Board()
	for _, p := range positions {
		pos, err := toPosition(p.Position)
		if err != nil {
			return err
		}
		if !pos.Valid() {
			return errors.Wrapf(errors.ErrScenario, "position %v is off the board", pos)
		}
		want, err := checkers.ParsePiece(p.Piece)
		if err != nil {
			return errors.Wrap(errors.ErrScenario, err.Error())
		}
		if got := board.Get(pos); got != want {
			return errors.Wrapf(errors.ErrCheckFailed, "piece at %v is %v, want %v", pos, got, want)
		}
	}
	return nil
}

// RunFile loads and runs the scenario at path.
func RunFile(path string, logger zerolog.Logger, opts ...engine.GameOption) *Result {
	s, err := Load(path)
	if err != nil {
		return &Result{Path: path, Err: err}
	}
	return Run(s, logger, opts...)
}

// RunFiles runs the scenarios at paths on a pool of workers and returns
// their results in input order. With failFast set, files not yet started
// after the first failure are reported as skipped.
func RunFiles(paths []string, logger zerolog.Logger, workers int, failFast bool, opts ...engine.GameOption) []*Result {
	process := func(item worker.WorkItem) worker.ProcessResult {
		res := RunFile(item.Path, logger, opts...)
		return worker.ProcessResult{Passed: res.Passed, Report: res, Error: res.Err}
	}

	processed := worker.Run(paths, process, failFast,
		worker.WithWorkers(workers), worker.WithBufferSize(len(paths)))

	results := make([]*Result, len(processed))
	for i, pr := range processed {
		if res, ok := pr.Report.(*Result); ok {
			results[i] = res
			continue
		}
		results[i] = &Result{Path: pr.Path, Skipped: pr.Skipped}
	}
	return results
}

// Summary counts results by outcome.
type Summary struct {
	Passed, Failed, Skipped int
}

// Summarize tallies results.
func Summarize(results []*Result) Summary {
	var s Summary
	for _, r := range results {
		switch {
		case r.Skipped:
			s.Skipped++
		case r.Passed:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// String formats the summary for a closing report line.
func (s Summary) String() string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped", s.Passed, s.Failed, s.Skipped)
}
