package model

import (
	"fmt"
	"testing"
)

func TestAddGlider(t *testing.T) {
	g := NewGrid(5, 5)
	AddGlider(g, 1, 1)
	assertLive(t, g, cell{2, 1}, cell{3, 2}, cell{1, 3}, cell{2, 3}, cell{3, 3})
}

func TestAddGliderClipped(t *testing.T) {
	g := NewGrid(3, 3)
	AddGlider(g, 1, 1)
	assertLive(t, g, cell{2, 1})
}

func TestAddBlinker(t *testing.T) {
	g := NewGrid(3, 3)
	AddBlinker(g, 1, 0)
	assertLive(t, g, cell{1, 0}, cell{1, 1}, cell{1, 2})
}

func TestAddDemoPatterns(t *testing.T) {
	for _, size := range []cell{{3, 3}, {9, 9}, {10, 10}, {40, 40}} {
		g := NewGrid(size.column, size.row)
		g.Toggle(0, size.row-1)
		AddDemoPatterns(g)
		if g.CountLivingCells() == 0 {
			t.Errorf("%dx%d: no live cells after AddDemoPatterns", size.column, size.row)
		}
	}
}

func TestRandomizeDensityBounds(t *testing.T) {
	g := NewGrid(20, 20)
	Randomize(g, 0, newTestRand())
	if n := g.CountLivingCells(); n != 0 {
		t.Errorf("density 0 gave %d live cells", n)
	}
	Randomize(g, 1, newTestRand())
	if n := g.CountLivingCells(); n != 400 {
		t.Errorf("density 1 gave %d live cells, want 400", n)
	}
}

func TestSeedNoiseIsDeterministic(t *testing.T) {
	a := NewGrid(30, 20)
	b := NewGrid(30, 20)
	SeedNoise(a, 0.5, 7)
	SeedNoise(b, 0.5, 7)
	if a.Hash() != b.Hash() {
		t.Error("same seed produced different boards")
	}
}

func TestSeedNoiseTracksDensity(t *testing.T) {
	tests := []struct {
		density float64
		want    int
	}{
		{0, 0},
		{0.1, 160},
		{0.35, 560},
		{0.5, 800},
		{0.9, 1440},
		{1, 1600},
		{1.5, 1600},
		{-0.2, 0},
	}

	for _, seed := range []int64{1, 2, 3} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("seed=%d_density=%v", seed, tt.density), func(t *testing.T) {
				g := NewGrid(40, 40)
				Randomize(g, 1, newTestRand())
				SeedNoise(g, tt.density, seed)
				if n := g.CountLivingCells(); n != tt.want {
					t.Errorf("live cells = %d, want %d", n, tt.want)
				}
			})
		}
	}
}
