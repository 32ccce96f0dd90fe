package checkers

import "testing"

func TestPositionSteppers(t *testing.T) {
	p := Pos(4, 4)
	tests := []struct {
		name string
		got  Position
		want Position
	}{
		{"up left", p.UpLeft(1), Pos(3, 3)},
		{"up right", p.UpRight(2), Pos(2, 6)},
		{"down left", p.DownLeft(3), Pos(7, 1)},
		{"down right", p.DownRight(1), Pos(5, 5)},
		{"left up", p.Left(true, 1), Pos(3, 3)},
		{"left down", p.Left(false, 1), Pos(5, 3)},
		{"right up", p.Right(true, 1), Pos(3, 5)},
		{"right down", p.Right(false, 1), Pos(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v; want %v", tt.got, tt.want)
			}
		})
	}

	if p != Pos(4, 4) {
		t.Error("steppers mutated the receiver")
	}
}

func TestPositionValid(t *testing.T) {
	tests := []struct {
		pos  Position
		want bool
	}{
		{Pos(0, 0), true},
		{Pos(7, 7), true},
		{Pos(-1, 0), false},
		{Pos(0, 8), false},
		{Pos(8, 8), false},
	}
	for _, tt := range tests {
		if got := tt.pos.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v; want %v", tt.pos, got, tt.want)
		}
	}

	if d := Pos(6, 1).DistanceTo(Pos(2, 5)); d != 4 {
		t.Errorf("DistanceTo = %d; want 4", d)
	}
	if d := Pos(2, 5).DistanceTo(Pos(6, 1)); d != 4 {
		t.Errorf("DistanceTo = %d; want 4", d)
	}
}

func TestStepEqualIgnoresCapture(t *testing.T) {
	plain := NewStep(Pos(5, 1), Pos(3, 3))
	jump := NewJump(Pos(5, 1), Pos(3, 3), Pos(4, 2))
	if !plain.Equal(jump) {
		t.Error("steps with the same squares should be equal regardless of capture")
	}
	if plain.Equal(NewStep(Pos(5, 1), Pos(4, 2))) {
		t.Error("steps with different destinations should differ")
	}
}

func TestStepChainEqual(t *testing.T) {
	a := Chain(Pos(5, 1), Pos(3, 3), Pos(1, 5))
	b := StepChain{
		NewJump(Pos(5, 1), Pos(3, 3), Pos(4, 2)),
		NewJump(Pos(3, 3), Pos(1, 5), Pos(2, 4)),
	}
	if !a.Equal(b) {
		t.Error("chains with equal squares should be equal")
	}
	if a.Equal(b[:1]) {
		t.Error("chains of different length should differ")
	}
	if a.Index([]StepChain{b[:1], b}) != 1 {
		t.Error("Index should find the full chain")
	}
	if a.Index(nil) != -1 {
		t.Error("Index on empty set should be -1")
	}
	if b.Captures() != 2 || a.Captures() != 0 {
		t.Errorf("Captures() = %d, %d; want 2, 0", b.Captures(), a.Captures())
	}
	if a.From() != Pos(5, 1) || a.To() != Pos(1, 5) {
		t.Errorf("From/To = %v/%v", a.From(), a.To())
	}
}

func TestStepChainAppendDoesNotAlias(t *testing.T) {
	prefix := make(StepChain, 0, 4)
	prefix = append(prefix, NewStep(Pos(0, 0), Pos(1, 1)))

	left := prefix.Append(NewStep(Pos(1, 1), Pos(2, 0)))
	right := prefix.Append(NewStep(Pos(1, 1), Pos(2, 2)))

	if len(prefix) != 1 {
		t.Errorf("prefix length = %d; want 1", len(prefix))
	}
	if left[1].To != Pos(2, 0) {
		t.Errorf("left branch overwritten: %v", left)
	}
	if right[1].To != Pos(2, 2) {
		t.Errorf("right branch = %v", right)
	}
}

func TestChainHelper(t *testing.T) {
	if Chain(Pos(0, 0)) != nil {
		t.Error("Chain with a single square should be nil")
	}
	c := Chain(Pos(6, 1), Pos(5, 2))
	if len(c) != 1 || c[0].Capture {
		t.Errorf("Chain = %v", c)
	}
	if got := c.String(); got != "[(6, 1) -> (5, 2)]" {
		t.Errorf("String() = %q", got)
	}
	jump := StepChain{NewJump(Pos(5, 1), Pos(3, 3), Pos(4, 2))}
	if got := jump.String(); got != "[(5, 1) x (3, 3)]" {
		t.Errorf("String() = %q", got)
	}
}
