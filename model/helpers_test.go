package model

import (
	"math/rand"
	"sort"
	"testing"
)

type cell struct{ column, row int }

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func gridWith(columns, rows int, live ...cell) *Grid {
	g := NewGrid(columns, rows)
	for _, c := range live {
		g.SetState(c.column, c.row, true)
	}
	return g
}

func liveCells(g *Grid) []cell {
	var out []cell
	g.Cells(func(column, row int, alive bool) {
		if alive {
			out = append(out, cell{column, row})
		}
	})
	return out
}

func assertLive(t *testing.T, g *Grid, want ...cell) {
	t.Helper()
	got := liveCells(g)
	sort.Slice(want, func(i, j int) bool {
		if want[i].row != want[j].row {
			return want[i].row < want[j].row
		}
		return want[i].column < want[j].column
	})
	if len(got) != len(want) {
		t.Fatalf("live cells = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("live cells = %v, want %v", got, want)
		}
	}
}
