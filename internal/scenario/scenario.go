// Package scenario loads and runs YAML game fixtures: a starting position
// followed by moves and checks against the resulting game.
package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Action types.
const (
	ActionMove          = "move"
	ActionCheckBoard    = "check_board"
	ActionCheckState    = "check_state"
	ActionCheckPosition = "check_position"
)

// Scenario is one fixture document.
type Scenario struct {
	Name    string   `yaml:"name"`
	Game    Setup    `yaml:"game"`
	Actions []Action `yaml:"actions"`

	// Path is the file the scenario was loaded from, if any.
	Path string `yaml:"-"`
}

// Setup describes the game the actions run against. Error names the
// construction failure expected instead of a game.
type Setup struct {
	Board       [][]string `yaml:"board"`
	CurrentTurn string     `yaml:"current_turn"`
	Error       string     `yaml:"error"`
}

// Action is a single move or check.
type Action struct {
	Type string `yaml:"type"`

	// move
	FromPos []int      `yaml:"from_pos"`
	ToPos   []int      `yaml:"to_pos"`
	Steps   []StepSpec `yaml:"steps"`
	Error   string     `yaml:"error"`

	// check_board; older fixtures spell the key "excepted"
	Expected [][]string `yaml:"expected"`
	Excepted [][]string `yaml:"excepted"`

	// check_state
	State string `yaml:"state"`

	// check_position
	Positions []PieceAt `yaml:"positions"`
}

// StepSpec is one from/to pair of a multi-step move.
type StepSpec struct {
	FromPos []int `yaml:"from_pos"`
	ToPos   []int `yaml:"to_pos"`
}

// PieceAt expects a piece symbol on a square.
type PieceAt struct {
	Position []int  `yaml:"position"`
	Piece    string `yaml:"piece"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ScenarioError{Err: err, File: path}
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		var se *errors.ScenarioError
		if errors.As(err, &se) {
			se.File = path
			return nil, se
		}
		return nil, err
	}
	s.Path = path
	return s, nil
}

// Parse decodes a scenario document and checks that every action is well formed.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &errors.ScenarioError{Err: errors.Wrap(errors.ErrScenario, "empty document")}
		}
		return nil, &errors.ScenarioError{Err: errors.Wrap(errors.ErrScenario, err.Error())}
	}

	if s.Game.Error != "" {
		if err := checkErrorName(s.Game.Error); err != nil {
			return nil, &errors.ScenarioError{Err: err}
		}
	}
	for i := range s.Actions {
		if err := s.Actions[i].check(); err != nil {
			return nil, &errors.ScenarioError{Err: err, Action: i + 1, Type: s.Actions[i].Type}
		}
	}
	return &s, nil
}

// check validates the fields an action needs for its type.
func (a *Action) check() error {
	switch a.Type {
	case ActionMove:
		if _, err := a.Chain(); err != nil {
			return err
		}
		if a.Error != "" {
			return checkErrorName(a.Error)
		}
	case ActionCheckBoard:
		if a.ExpectedGrid() == nil {
			return errors.Wrap(errors.ErrScenario, "check_board needs an expected board")
		}
	case ActionCheckState:
		if a.State == "" {
			return errors.Wrap(errors.ErrScenario, "check_state needs a state")
		}
	case ActionCheckPosition:
		if len(a.Positions) == 0 {
			return errors.Wrap(errors.ErrScenario, "check_position needs positions")
		}
		for _, p := range a.Positions {
			if _, err := toPosition(p.Position); err != nil {
				return err
			}
		}
	default:
		return errors.Wrapf(errors.ErrScenario, "unknown action type %q", a.Type)
	}
	return nil
}

// Chain converts a move action into a step chain. from_pos/to_pos give a
// single step; steps gives the whole chain.
func (a *Action) Chain() (checkers.StepChain, error) {
	if len(a.Steps) > 0 {
		chain := make(checkers.StepChain, 0, len(a.Steps))
		for _, s := range a.Steps {
			step, err := toStep(s.FromPos, s.ToPos)
			if err != nil {
				return nil, err
			}
			chain = append(chain, step)
		}
		return chain, nil
	}
	if a.FromPos == nil || a.ToPos == nil {
		return nil, errors.Wrap(errors.ErrScenario, "move needs steps or from_pos and to_pos")
	}
	step, err := toStep(a.FromPos, a.ToPos)
	if err != nil {
		return nil, err
	}
	return checkers.StepChain{step}, nil
}

// ExpectedGrid returns the board of a check_board action.
func (a *Action) ExpectedGrid() [][]string {
	if a.Expected != nil {
		return a.Expected
	}
	return a.Excepted
}

func toStep(from, to []int) (checkers.Step, error) {
	f, err := toPosition(from)
	if err != nil {
		return checkers.Step{}, err
	}
	t, err := toPosition(to)
	if err != nil {
		return checkers.Step{}, err
	}
	return checkers.NewStep(f, t), nil
}

func toPosition(v []int) (checkers.Position, error) {
	if len(v) != 2 {
		return checkers.Position{}, errors.Wrapf(errors.ErrScenario, "position %v needs [row, col]", v)
	}
	return checkers.Pos(v[0], v[1]), nil
}

var errorNames = map[string]error{
	"invalidmove":  errors.ErrInvalidMove,
	"invalidstep":  errors.ErrInvalidMove,
	"invalidturn":  errors.ErrInvalidTurn,
	"invalidboard": errors.ErrInvalidBoard,
}

// ErrorByName maps a fixture error name such as "invalid_turn" or
// "InvalidTurn" to its sentinel.
func ErrorByName(name string) (error, bool) {
	key := strings.ToLower(strings.NewReplacer("_", "", " ", "", "-", "").Replace(name))
	err, ok := errorNames[key]
	return err, ok
}

func checkErrorName(name string) error {
	if _, ok := ErrorByName(name); !ok {
		return errors.Wrapf(errors.ErrScenario, "unknown error name %q", name)
	}
	return nil
}

// String describes the action for log and failure messages.
func (a *Action) String() string {
	switch a.Type {
	case ActionMove:
		chain, err := a.Chain()
		if err != nil {
			return a.Type
		}
		if a.Error != "" {
			return fmt.Sprintf("move %v expecting %s", chain, a.Error)
		}
		return fmt.Sprintf("move %v", chain)
	case ActionCheckState:
		return "check_state " + a.State
	}
	return a.Type
}
