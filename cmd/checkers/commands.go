package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/render"
	"github.com/lgbarn/checkers-go/internal/scenario"
)

// Exit codes.
const (
	exitFailed   = 1 // a scenario failed
	exitRejected = 2 // a move was rejected
)

func (s *session) writer(c *cli.Context) render.Writer {
	out := *s.cfg.Output
	if c.Bool("json") {
		out.Format = config.JSONOutput
	}
	return render.NewWriter(c.App.Writer, &out)
}

// newGame builds a game from the configured defaults, an optional board
// file and an optional --turn flag, in increasing precedence.
func (s *session) newGame(c *cli.Context) (*engine.Game, error) {
	opts := []engine.GameOption{
		engine.WithLogger(s.logger),
		engine.WithLongestCapture(s.cfg.Engine.LongestCapture),
		engine.WithTurn(s.cfg.Engine.StartingTurn),
	}
	if path := c.String("board"); path != "" {
		bf, err := loadBoardFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithGrid(bf.Board))
		if bf.Turn != "" {
			opts = append(opts, engine.WithTurn(bf.Turn))
		}
	}
	if c.IsSet("turn") {
		opts = append(opts, engine.WithTurn(c.String("turn")))
	}
	return engine.NewGame(opts...)
}

func (s *session) board(c *cli.Context) error {
	g, err := s.newGame(c)
	if err != nil {
		return err
	}
	return s.writer(c).WriteGame(g)
}

func (s *session) moves(c *cli.Context) error {
	g, err := s.newGame(c)
	if err != nil {
		return err
	}
	switch row, col := c.IsSet("row"), c.IsSet("col"); {
	case !row && !col:
		return s.writer(c).WriteTurnMoves(g, g.TurnMoves())
	case row != col:
		return fmt.Errorf("--row and --col must be given together")
	}

	pos := checkers.Pos(c.Int("row"), c.Int("col"))
	if !pos.Valid() {
		return fmt.Errorf("square %v is off the board", pos)
	}
	return s.writer(c).WriteMoves(g, pos, g.LegalMoves(pos))
}

func (s *session) play(c *cli.Context) error {
	g, err := s.newGame(c)
	if err != nil {
		return err
	}

	for i, text := range c.StringSlice("move") {
		chain, err := parseChain(text)
		if err == nil {
			err = g.Move(chain)
		}
		if err != nil {
			if werr := s.writer(c).WriteGame(g); werr != nil {
				return werr
			}
			return cli.Exit(fmt.Sprintf("move %d %q: %v", i+1, text, err), exitRejected)
		}
		s.logger.Info().Int("move", i+1).Stringer("chain", chain).Msg("played")
	}
	return s.writer(c).WriteGame(g)
}

func (s *session) run(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("run needs at least one scenario file or directory")
	}
	paths, err := expandPaths(c.Args().Slice())
	if err != nil {
		return err
	}

	workers := s.cfg.Runner.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}
	failFast := s.cfg.Runner.FailFast || c.Bool("fail-fast")

	s.logger.Debug().Int("files", len(paths)).Int("workers", workers).Msg("running scenarios")
	results := scenario.RunFiles(paths, s.logger, workers, failFast,
		engine.WithLongestCapture(s.cfg.Engine.LongestCapture))

	if err := s.writer(c).WriteResults(results); err != nil {
		return err
	}
	if sum := scenario.Summarize(results); sum.Failed > 0 {
		return cli.Exit("", exitFailed)
	}
	return nil
}

func (s *session) showConfig(c *cli.Context) error {
	data, err := s.cfg.Marshal()
	if err != nil {
		return err
	}
	if _, err := c.App.Writer.Write(data); err != nil {
		return err
	}
	if c.Bool("save") {
		path, err := s.cfg.Save(s.cfg.Source)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.ErrWriter, "saved %s\n", path)
	}
	return nil
}

// expandPaths replaces each directory with the YAML files directly inside it.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		var found []string
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, err
			}
			found = append(found, matches...)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %v", args)
	}
	return paths, nil
}
