package core

import "testing"

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(5, 4)
	cases := []struct {
		x, y         int
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{5, 4, 0, 0},
		{-1, -1, 4, 3},
		{6, -2, 1, 2},
		{-11, 9, 4, 1},
	}
	for _, tc := range cases {
		gotX, gotY := g.Wrap(tc.x, tc.y)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestByteGridIndexAndFill(t *testing.T) {
	g := NewByteGrid(3, 2)
	if got := g.Index(2, 1); got != 5 {
		t.Fatalf("Index(2,1) = %d, want 5", got)
	}
	g.Fill(7)
	for i, v := range g.Cells() {
		if v != 7 {
			t.Fatalf("cell %d = %d after Fill(7)", i, v)
		}
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("backing slice has %d cells, want 1", len(g.Cells()))
	}
}
