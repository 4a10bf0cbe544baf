package model

import (
	"math"
	"math/rand"
	"sort"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.15
)

// setClipped writes a cell, ignoring coordinates that fall off the grid
func setClipped(g *Grid, column, row int, alive bool) {
	if g.Contains(column, row) {
		g.SetState(column, row, alive)
	}
}

// AddGlider adds a glider pattern with its top-left corner at the given cell
func AddGlider(g *Grid, column, row int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, line := range pattern {
		for x, cell := range line {
			setClipped(g, column+x, row+y, cell)
		}
	}
}

// AddBlinker adds a vertical three-cell blinker starting at the given cell
func AddBlinker(g *Grid, column, row int) {
	for i := range 3 {
		setClipped(g, column, row+i, true)
	}
}

// AddDemoPatterns clears the grid and lays out a couple of gliders and blinkers
func AddDemoPatterns(g *Grid) {
	g.Clear()
	if g.columns < 10 || g.rows < 10 {
		AddBlinker(g, g.columns/2, max(0, g.rows/2-1))
		return
	}

	AddGlider(g, 1, 1)
	if g.columns >= 20 && g.rows >= 15 {
		AddGlider(g, g.columns-8, 5)
	}

	AddBlinker(g, g.columns/4, g.rows/2)
	if g.columns >= 30 {
		AddBlinker(g, 3*g.columns/4, 3*g.rows/4)
	}
}

// Randomize sets every cell alive with probability density
func Randomize(g *Grid, density float64, rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// SeedNoise fills the grid from 2D Perlin noise. Cells are ranked by their
// noise value and the lowest round(density*cells) of them come alive, so the
// live fraction tracks density while keeping the clustered shapes of the noise
func SeedNoise(g *Grid, density float64, seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)

	values := make([]float64, len(g.cells))
	order := make([]int, len(g.cells))
	for row := range g.rows {
		for column := range g.columns {
			i := row*g.columns + column
			values[i] = p.Noise2D(float64(column)*noiseScale, float64(row)*noiseScale)
			order[i] = i
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	g.Clear()
	for _, i := range order[:liveTarget(density, len(order))] {
		g.cells[i] = true
	}
}

// liveTarget is the number of cells a density asks for, clamped to [0, cells]
func liveTarget(density float64, cells int) int {
	return int(math.Round(min(1, max(0, density)) * float64(cells)))
}
