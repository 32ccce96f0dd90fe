package main

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// boardFile is a YAML position: an 8x8 symbol grid and the side to move.
type boardFile struct {
	Board [][]string `yaml:"board"`
	Turn  string     `yaml:"turn"`
}

func loadBoardFile(path string) (*boardFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bf boardFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidBoard, "%s: %v", path, err)
	}
	if bf.Board == nil {
		return nil, errors.Wrapf(errors.ErrInvalidBoard, "%s: no board", path)
	}
	return &bf, nil
}

// parseChain reads squares written "row,col" and joined by ">" into a
// chain of steps between consecutive squares.
func parseChain(text string) (checkers.StepChain, error) {
	fields := strings.Split(text, ">")
	if len(fields) < 2 {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "%q needs at least two squares", text)
	}

	squares := make([]checkers.Position, len(fields))
	for i, field := range fields {
		rc := strings.Split(strings.TrimSpace(field), ",")
		if len(rc) != 2 {
			return nil, errors.Wrapf(errors.ErrInvalidMove, "square %q is not row,col", field)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rc[0]))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidMove, "square %q: bad row", field)
		}
		col, err := strconv.Atoi(strings.TrimSpace(rc[1]))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidMove, "square %q: bad column", field)
		}
		squares[i] = checkers.Pos(row, col)
	}
	return checkers.Chain(squares...), nil
}
