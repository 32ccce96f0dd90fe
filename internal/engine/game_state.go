package engine

import (
	"fmt"
	"strings"
)

// State is the observable phase of a game.
type State int

const (
	WhiteTurn State = iota
	BlackTurn
	WhiteWin
	BlackWin
)

var stateNames = []string{"WHITE_TURN", "BLACK_TURN", "WHITE_WIN", "BLACK_WIN"}

// String returns the upper snake case name of the state.
func (s State) String() string {
	if int(s) >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

// IsFinished returns true for the terminal win states.
func (s State) IsFinished() bool {
	return s == WhiteWin || s == BlackWin
}

// ParseState converts names like "white_turn", "WHITE TURN" or "Black_Win".
func ParseState(name string) (State, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	for i, n := range stateNames {
		if n == key {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
