// checkers is a command line front end for the draughts engine: it prints
// boards and legal moves, plays move sequences and runs scenario files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		code := 1
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			code = ec.ExitCode()
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "checkers: %s\n", msg)
		}
		os.Exit(code)
	}
}

// session holds what the Before hook prepares for every command.
type session struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func newApp(stdout, stderr io.Writer) *cli.App {
	s := &session{logger: zerolog.Nop()}

	return &cli.App{
		Name:      "checkers",
		Usage:     "8x8 draughts rules engine",
		Version:   programVersion,
		Writer:    stdout,
		ErrWriter: stderr,
		// main decides the exit status
		ExitErrHandler: func(*cli.Context, error) {},
		// --move values contain commas
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default: $XDG_CONFIG_HOME/" + config.FileName + ")",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error or disabled",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
			&cli.BoolFlag{
				Name:  "longest-capture",
				Usage: "only accept chains that capture the most pieces",
			},
		},
		Before: s.setup,
		Commands: []*cli.Command{
			{
				Name:   "board",
				Usage:  "print a board and its state",
				Flags:  []cli.Flag{boardFlag(), turnFlag(), jsonFlag()},
				Action: s.board,
			},
			{
				Name:  "moves",
				Usage: "list the legal moves of one piece, or of the side to move",
				Flags: []cli.Flag{
					boardFlag(), turnFlag(), jsonFlag(),
					&cli.IntFlag{Name: "row", Usage: "piece row; omit with --col for every piece of the side to move"},
					&cli.IntFlag{Name: "col", Usage: "piece column"},
				},
				Action: s.moves,
			},
			{
				Name:      "play",
				Usage:     "apply moves in order and print the resulting game",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					boardFlag(), turnFlag(), jsonFlag(),
					&cli.StringSliceFlag{
						Name:     "move",
						Aliases:  []string{"m"},
						Usage:    `move as squares joined by ">", e.g. "5,1>3,3>1,5"`,
						Required: true,
					},
				},
				Action: s.play,
			},
			{
				Name:      "run",
				Usage:     "run scenario files or directories of them",
				ArgsUsage: "PATH...",
				Flags: []cli.Flag{
					jsonFlag(),
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "parallel scenario files"},
					&cli.BoolFlag{Name: "fail-fast", Usage: "skip remaining files after a failure"},
				},
				Action: s.run,
			},
			{
				Name:  "config",
				Usage: "print the effective configuration",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "save", Usage: "also write it to the config file"},
				},
				Action: s.showConfig,
			},
		},
	}
}

func boardFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "board",
		Aliases: []string{"b"},
		Usage:   "YAML board file (default: starting position)",
	}
}

func turnFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "turn",
		Aliases: []string{"t"},
		Usage:   "side to move, WHITE or BLACK",
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "print JSON instead of text",
	}
}

// setup layers flags over the loaded configuration and builds the logger.
func (s *session) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if c.IsSet("longest-capture") {
		cfg.Engine.LongestCapture = c.Bool("longest-capture")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.Configure(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: c.App.ErrWriter,
	})
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		logging.Debugf("loaded config from %s", cfg.Source)
	}

	s.cfg = cfg
	s.logger = logger
	return nil
}
