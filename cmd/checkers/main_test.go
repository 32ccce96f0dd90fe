package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/render"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

var scenarioDir = filepath.Join("..", "..", "internal", "scenario", "testdata")

// runApp runs the CLI against an empty config file so the user's own
// configuration never leaks into tests.
func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o644))

	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	argv := append([]string{"checkers", "--config", cfgPath}, args...)
	err := app.Run(argv)
	return stdout.String(), stderr.String(), err
}

func writeBoardFile(t *testing.T, pieces map[checkers.Position]string, turn string) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("board:\n")
	for _, row := range testutil.Grid(pieces) {
		sb.WriteString("  - [" + strings.Join(quote(row), ", ") + "]\n")
	}
	if turn != "" {
		sb.WriteString("turn: " + turn + "\n")
	}
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func quote(row []string) []string {
	out := make([]string, len(row))
	for i, s := range row {
		out[i] = `"` + s + `"`
	}
	return out
}

func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}

func captureBoard(t *testing.T) string {
	return writeBoardFile(t, map[checkers.Position]string{
		checkers.Pos(5, 1): "W",
		checkers.Pos(4, 2): "B",
		checkers.Pos(2, 4): "B",
	}, "")
}

func TestBoardCommand(t *testing.T) {
	out, _, err := runApp(t, "board")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "0  B  _  B  _  B  _  B  _")
	testutil.AssertContains(t, out, "turn: WHITE  state: WHITE_TURN  white: 12  black: 12")
}

func TestBoardCommandJSON(t *testing.T) {
	path := writeBoardFile(t, map[checkers.Position]string{checkers.Pos(3, 3): "WK"}, "black")

	out, _, err := runApp(t, "board", "--board", path, "--json")
	require.NoError(t, err)

	var jg render.JSONGame
	require.NoError(t, json.Unmarshal([]byte(out), &jg))
	testutil.AssertEqual(t, jg.Turn, "BLACK")
	testutil.AssertEqual(t, jg.State, "WHITE_WIN")
	testutil.AssertEqual(t, jg.Board[3][3], "WK")
}

func TestBoardCommandInvalidBoard(t *testing.T) {
	path := writeBoardFile(t, map[checkers.Position]string{checkers.Pos(0, 1): "W"}, "")
	_, _, err := runApp(t, "board", "--board", path)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidBoard)
}

func TestMovesCommand(t *testing.T) {
	out, _, err := runApp(t, "moves", "--row", "5", "--col", "1")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "2 legal moves from (5, 1)")

	out, _, err = runApp(t, "moves", "--board", captureBoard(t), "--row", "5", "--col", "1", "--json")
	require.NoError(t, err)
	var jm render.JSONMoves
	require.NoError(t, json.Unmarshal([]byte(out), &jm))
	testutil.AssertEqual(t, len(jm.Chains), 6)

	_, _, err = runApp(t, "moves", "--row", "9", "--col", "1")
	require.Error(t, err)

	_, _, err = runApp(t, "moves", "--row", "5")
	require.Error(t, err)
	testutil.AssertContains(t, err.Error(), "given together")
}

func TestMovesCommandSideToMove(t *testing.T) {
	out, _, err := runApp(t, "moves")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "7 legal moves for WHITE:")

	out, _, err = runApp(t, "moves", "--turn", "black")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "7 legal moves for BLACK:")

	out, _, err = runApp(t, "moves", "--board", captureBoard(t), "--json")
	require.NoError(t, err)
	var jt render.JSONTurnMoves
	require.NoError(t, json.Unmarshal([]byte(out), &jt))
	testutil.AssertEqual(t, jt.Turn, "WHITE")
	testutil.AssertTrue(t, jt.CanMove, "white can move")
	testutil.AssertEqual(t, len(jt.Chains), 6)
}

func TestMovesCommandLongestCapture(t *testing.T) {
	out, _, err := runApp(t, "--longest-capture", "moves", "--board", captureBoard(t), "--row", "5", "--col", "1")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "3 legal moves from (5, 1)")
	testutil.AssertContains(t, out, "(2 captured)")
}

func TestPlayCommand(t *testing.T) {
	out, _, err := runApp(t, "play", "--move", "5,1>4,2", "--move", "2,0>3,1")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "turn: WHITE  state: WHITE_TURN")

	out, _, err = runApp(t, "play", "--board", captureBoard(t), "-m", "5,1 > 3,3 > 1,5")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "state: WHITE_WIN  white: 1  black: 0")
}

func TestPlayCommandRejected(t *testing.T) {
	tests := []struct {
		name string
		move string
		msg  string
	}{
		{"wrong side", "2,0>3,1", "invalid turn"},
		{"empty square", "4,0>3,1", "source square is empty"},
		{"illegal", "5,1>3,3", "not a legal chain"},
		{"unparsable", "5-1>4,2", "not row,col"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runApp(t, "play", "--move", tt.move)
			require.Error(t, err)
			testutil.AssertEqual(t, exitCode(err), exitRejected)
			testutil.AssertContains(t, err.Error(), tt.msg)
			testutil.AssertContains(t, out, "turn: WHITE", "board printed before exit")
		})
	}
}

func TestRunCommand(t *testing.T) {
	out, _, err := runApp(t, "run", "--workers", "2", scenarioDir)
	require.NoError(t, err)
	testutil.AssertContains(t, out, "PASS")
	testutil.AssertContains(t, out, "0 failed, 0 skipped")

	out, _, err = runApp(t, "run", filepath.Join(scenarioDir, "failing"))
	require.Error(t, err)
	testutil.AssertEqual(t, exitCode(err), exitFailed)
	testutil.AssertContains(t, out, "FAIL")

	_, _, err = runApp(t, "run")
	require.Error(t, err)
}

func TestRunCommandJSON(t *testing.T) {
	out, _, err := runApp(t, "run", "--json", filepath.Join(scenarioDir, "simple_move.yaml"))
	require.NoError(t, err)

	var jr render.JSONResults
	require.NoError(t, json.Unmarshal([]byte(out), &jr))
	testutil.AssertEqual(t, jr.Passed, 1)
	testutil.AssertEqual(t, jr.Results[0].Name, "white pawn steps diagonally")
}

func TestConfigCommand(t *testing.T) {
	out, _, err := runApp(t, "--log-level", "error", "config")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "level: error")
	testutil.AssertContains(t, out, "longest_capture: false")
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "loud")
	_, _, err := runApp(t, "board")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	t.Setenv(config.EnvLogLevel, "")
	_, _, err = runApp(t, "--log-format", "xml", "board")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestRejectedMoveIsLogged(t *testing.T) {
	_, stderr, err := runApp(t, "--log-level", "warn", "play", "--move", "5,1>3,3")
	require.Error(t, err)
	testutil.AssertContains(t, stderr, "rejected move on board")
}

func TestParseChain(t *testing.T) {
	tests := []struct {
		in      string
		want    checkers.StepChain
		wantErr bool
	}{
		{"5,1>4,2", checkers.Chain(checkers.Pos(5, 1), checkers.Pos(4, 2)), false},
		{" 5, 1 > 3,3 >1,5 ", checkers.Chain(checkers.Pos(5, 1), checkers.Pos(3, 3), checkers.Pos(1, 5)), false},
		{"5,1", nil, true},
		{"5,1>4", nil, true},
		{"a,1>4,2", nil, true},
		{"5,1>4,b", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseChain(tt.in)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
				return
			}
			require.NoError(t, err)
			testutil.AssertTrue(t, got.Equal(tt.want), "parseChain(%q) = %v", tt.in, got)
		})
	}
}

func TestExpandPaths(t *testing.T) {
	paths, err := expandPaths([]string{scenarioDir})
	require.NoError(t, err)
	for _, p := range paths {
		testutil.AssertFalse(t, strings.Contains(p, "failing"), "subdirectories are not searched: %s", p)
	}
	testutil.AssertTrue(t, len(paths) >= 6, "found %d fixtures", len(paths))

	_, err = expandPaths([]string{t.TempDir()})
	require.Error(t, err)
}
