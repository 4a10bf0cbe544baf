package model

import (
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-lifeboard/rules"
)

// Engine advances a grid by whole generations
type Engine struct {
	workers int
}

// NewEngine returns an engine splitting each generation across workers row
// bands. Anything below 2 evaluates on the calling goroutine
func NewEngine(workers int) *Engine {
	return &Engine{workers: max(1, workers)}
}

// Workers returns the number of row bands used per generation
func (e *Engine) Workers() int {
	return e.workers
}

// Advance computes the next generation of g from its current generation and
// commits it. Every cell is read from the current buffer and written to the
// scratch buffer, so no cell sees a neighbor's new state
func (e *Engine) Advance(g *Grid) {
	if e.workers == 1 || g.rows < 2 {
		e.evaluate(g, 0, g.rows)
		g.commit()
		return
	}

	var (
		eg          errgroup.Group
		numWorkers  = min(e.workers, g.rows)
		rowsPerBand = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerBand
			endRow   = min(startRow+rowsPerBand, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			e.evaluate(g, startRow, endRow)
			return nil
		})
	}

	// bands never return an error, Wait only joins them
	_ = eg.Wait()

	g.commit()
}

// evaluate fills rows [startRow, endRow) of the scratch buffer
func (e *Engine) evaluate(g *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		base := y * g.columns
		for x := range g.columns {
			g.scratch[base+x] = rules.ApplyConwayRules(g.aliveNeighbors(x, y), g.cells[base+x])
		}
	}
}
