package model

import "testing"

func TestNewGridAllDead(t *testing.T) {
	g := NewGrid(7, 5)
	if g.Columns() != 7 || g.Rows() != 5 {
		t.Fatalf("size = %dx%d, want 7x5", g.Columns(), g.Rows())
	}
	g.Cells(func(column, row int, alive bool) {
		if alive {
			t.Errorf("cell (%d, %d) alive on a new grid", column, row)
		}
	})
}

func TestNeighborCountsTotals(t *testing.T) {
	g := NewGrid(6, 6)
	// a mix of live cells so the alive/dead split is exercised too
	g.SetState(0, 0, true)
	g.SetState(2, 2, true)
	g.SetState(3, 3, true)
	g.SetState(5, 0, true)

	tests := []struct {
		name        string
		column, row int
		want        int
	}{
		{"interior", 2, 3, 8},
		{"interior near corner", 1, 1, 8},
		{"top edge", 3, 0, 5},
		{"left edge", 0, 3, 5},
		{"bottom edge", 2, 5, 5},
		{"right edge", 5, 2, 5},
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 5, 0, 3},
		{"bottom-left corner", 0, 5, 3},
		{"bottom-right corner", 5, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alive, dead := g.NeighborCounts(tt.column, tt.row)
			if alive+dead != tt.want {
				t.Errorf("alive+dead = %d+%d, want %d", alive, dead, tt.want)
			}
		})
	}
}

func TestNeighborCountsExcludesCenter(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetState(1, 1, true)
	g.SetState(0, 0, true)
	g.SetState(2, 1, true)

	alive, dead := g.NeighborCounts(1, 1)
	if alive != 2 || dead != 6 {
		t.Errorf("NeighborCounts(1, 1) = (%d, %d), want (2, 6)", alive, dead)
	}

	alive, dead = g.NeighborCounts(0, 0)
	if alive != 1 || dead != 2 {
		t.Errorf("NeighborCounts(0, 0) = (%d, %d), want (1, 2)", alive, dead)
	}
}

func TestNeighborCountsDoesNotWrap(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetState(4, 4, true)

	if alive, _ := g.NeighborCounts(0, 0); alive != 0 {
		t.Errorf("corner (0, 0) saw %d live neighbors across the edge", alive)
	}
}

func TestToggleAndSetState(t *testing.T) {
	g := NewGrid(4, 4)
	g.Toggle(1, 2)
	if !g.StateAt(1, 2) {
		t.Fatal("Toggle did not bring cell to life")
	}
	g.Toggle(1, 2)
	if g.StateAt(1, 2) {
		t.Fatal("second Toggle did not kill cell")
	}
	g.SetState(3, 0, true)
	if !g.StateAt(3, 0) || g.CountLivingCells() != 1 {
		t.Fatal("SetState did not set exactly one cell")
	}
}

func TestClear(t *testing.T) {
	g := NewGrid(5, 4)
	Randomize(g, 0.5, newTestRand())
	AddGlider(g, 0, 0)

	g.Clear()
	g.Cells(func(column, row int, alive bool) {
		if alive || g.StateAt(column, row) {
			t.Errorf("cell (%d, %d) alive after Clear", column, row)
		}
	})
}

func TestOutOfRangePanics(t *testing.T) {
	g := NewGrid(3, 3)
	tests := []struct {
		name string
		fn   func()
	}{
		{"StateAt negative column", func() { g.StateAt(-1, 0) }},
		{"StateAt row too large", func() { g.StateAt(0, 3) }},
		{"SetState column too large", func() { g.SetState(3, 0, true) }},
		{"Toggle negative row", func() { g.Toggle(0, -1) }},
		{"NeighborCounts outside", func() { g.NeighborCounts(5, 5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestActiveBounds(t *testing.T) {
	g := NewGrid(10, 10)
	if _, ok := g.ActiveBounds(); ok {
		t.Fatal("empty grid reported bounds")
	}

	g.SetState(2, 3, true)
	g.SetState(6, 1, true)
	g.SetState(4, 7, true)

	b, ok := g.ActiveBounds()
	if !ok {
		t.Fatal("no bounds for populated grid")
	}
	want := Bounds{MinColumn: 2, MaxColumn: 6, MinRow: 1, MaxRow: 7}
	if b != want {
		t.Errorf("ActiveBounds = %+v, want %+v", b, want)
	}
	if b.Area() != 35 {
		t.Errorf("Area = %d, want 35", b.Area())
	}
}

func TestHashTracksState(t *testing.T) {
	g := NewGrid(4, 4)
	empty := g.Hash()

	g.Toggle(2, 2)
	if g.Hash() == empty {
		t.Fatal("hash unchanged after toggle")
	}
	g.Toggle(2, 2)
	if g.Hash() != empty {
		t.Fatal("hash differs for identical states")
	}
}
