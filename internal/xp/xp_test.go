package xp

import "testing"

func TestLevel(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{1, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{4999, 10},
		{5000, 11},
		{-10, 1},
	}
	for _, c := range cases {
		if got := Level(c.xp); got != c.want {
			t.Errorf("Level(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestNextLevelAt(t *testing.T) {
	if got := NextLevelAt(0); got != 500 {
		t.Errorf("NextLevelAt(0) = %d, want 500", got)
	}
	if got := NextLevelAt(750); got != 1000 {
		t.Errorf("NextLevelAt(750) = %d, want 1000", got)
	}
}

func TestProgressInLevel(t *testing.T) {
	if got := ProgressInLevel(250); got != 0.5 {
		t.Errorf("ProgressInLevel(250) = %f, want 0.5", got)
	}
	if got := ProgressInLevel(500); got != 0 {
		t.Errorf("ProgressInLevel(500) = %f, want 0", got)
	}
}
