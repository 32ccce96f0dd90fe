// Package errors provides sentinel errors and error types for the checkers engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidBoard indicates a board that breaks a layout invariant.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInvalidMove indicates a move that is not legal in the current position.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidTurn indicates a move of a piece whose side is not to move.
	// It wraps ErrInvalidMove, so errors.Is matches either.
	ErrInvalidTurn = fmt.Errorf("invalid turn: %w", ErrInvalidMove)

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScenario indicates a malformed scenario document.
	ErrScenario = errors.New("invalid scenario")

	// ErrCheckFailed indicates a scenario expectation that did not hold.
	ErrCheckFailed = errors.New("check failed")
)

// BoardError reports which invariant a board breaks and where.
type BoardError struct {
	Err    error  // The underlying error, normally ErrInvalidBoard
	Reason string // Human readable description of the violation
	Row    int    // Offending square, -1 if not applicable
	Col    int
}

// Error returns a formatted error message including the square if known.
func (e *BoardError) Error() string {
	var parts []string
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Row >= 0 && e.Col >= 0 {
		parts = append(parts, fmt.Sprintf("at (%d, %d)", e.Row, e.Col))
	}
	msg := strings.Join(parts, " ")
	if e.Err == nil {
		return msg
	}
	if msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, msg)
}

// Unwrap returns the underlying error.
func (e *BoardError) Unwrap() error {
	return e.Err
}

// NewBoardError creates a BoardError wrapping ErrInvalidBoard that is not
// tied to a square.
func NewBoardError(format string, args ...interface{}) *BoardError {
	return &BoardError{Err: ErrInvalidBoard, Reason: fmt.Sprintf(format, args...), Row: -1, Col: -1}
}

// MoveError wraps a rejected move with its squares and the side to move.
type MoveError struct {
	Err    error  // ErrInvalidMove or ErrInvalidTurn
	From   string // Source square, e.g. "(5, 2)"
	To     string // Final destination square
	Turn   string // Side to move when the move was rejected
	Reason string
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s to %s", e.From, e.To))
	}
	if e.Turn != "" {
		parts = append(parts, fmt.Sprintf("turn %s", e.Turn))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, context)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ScenarioError locates a failure inside a scenario file.
type ScenarioError struct {
	Err    error  // The underlying error
	File   string // Source file name (if known)
	Action int    // 1-based action number, 0 for the game setup
	Type   string // Action type
}

// Error returns a formatted error message with location and context.
func (e *ScenarioError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Action > 0 {
		if e.Type != "" {
			parts = append(parts, fmt.Sprintf("action %d (%s)", e.Action, e.Type))
		} else {
			parts = append(parts, fmt.Sprintf("action %d", e.Action))
		}
	} else {
		parts = append(parts, "setup")
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
