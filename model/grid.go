package model

import (
	"crypto/md5"
	"fmt"
)

// Grid represents the game board as a fixed columns x rows block of cells
type Grid struct {
	columns int
	rows    int
	cells   []bool // current generation, row-major
	scratch []bool // next generation, written by the engine then swapped in
	hashBuf []byte // reused by Hash
}

// Digest identifies a grid state
type Digest [md5.Size]byte

// Bounds is the inclusive bounding box of the living cells
type Bounds struct {
	MinColumn, MaxColumn int
	MinRow, MaxRow       int
}

// Area returns the number of cells covered by the bounds
func (b Bounds) Area() int {
	return (b.MaxColumn - b.MinColumn + 1) * (b.MaxRow - b.MinRow + 1)
}

// NewGrid creates a new grid with every cell dead
func NewGrid(columns, rows int) *Grid {
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("model: invalid grid size %dx%d", columns, rows))
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]bool, columns*rows),
		scratch: make([]bool, columns*rows),
		hashBuf: make([]byte, columns*rows),
	}
}

// Columns returns the width of the grid in cells
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the height of the grid in cells
func (g *Grid) Rows() int {
	return g.rows
}

// Contains reports whether (column, row) addresses a cell of the grid
func (g *Grid) Contains(column, row int) bool {
	return column >= 0 && column < g.columns && row >= 0 && row < g.rows
}

func (g *Grid) index(column, row int) int {
	if !g.Contains(column, row) {
		panic(fmt.Sprintf("model: cell (%d, %d) outside %dx%d grid", column, row, g.columns, g.rows))
	}
	return row*g.columns + column
}

// StateAt returns the state of a cell. It panics on out-of-range coordinates
func (g *Grid) StateAt(column, row int) bool {
	return g.cells[g.index(column, row)]
}

// SetState sets a cell to alive (true) or dead (false)
func (g *Grid) SetState(column, row int, alive bool) {
	g.cells[g.index(column, row)] = alive
}

// Toggle flips the state of a single cell
func (g *Grid) Toggle(column, row int) {
	i := g.index(column, row)
	g.cells[i] = !g.cells[i]
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// NeighborCounts returns the number of alive and dead cells in the 3x3
// neighborhood of (column, row), clipped at the grid edges and excluding
// the cell itself
func (g *Grid) NeighborCounts(column, row int) (alive, dead int) {
	g.index(column, row)

	minX := max(0, column-1)
	maxX := min(g.columns-1, column+1)
	minY := max(0, row-1)
	maxY := min(g.rows-1, row+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == column && ny == row {
				continue
			}
			if g.cells[ny*g.columns+nx] {
				alive++
			} else {
				dead++
			}
		}
	}
	return alive, dead
}

// aliveNeighbors is the unchecked hot-path variant used by the engine
func (g *Grid) aliveNeighbors(column, row int) (count int) {
	minX := max(0, column-1)
	maxX := min(g.columns-1, column+1)
	minY := max(0, row-1)
	maxY := min(g.rows-1, row+1)

	for ny := minY; ny <= maxY; ny++ {
		base := ny * g.columns
		for nx := minX; nx <= maxX; nx++ {
			if g.cells[base+nx] && (nx != column || ny != row) {
				count++
			}
		}
	}
	return count
}

// commit swaps the scratch buffer in as the current generation
func (g *Grid) commit() {
	g.cells, g.scratch = g.scratch, g.cells
}

// Cells visits every cell in row-major order
func (g *Grid) Cells(fn func(column, row int, alive bool)) {
	for row := range g.rows {
		for column := range g.columns {
			fn(column, row, g.cells[row*g.columns+column])
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// ActiveBounds returns the bounding box of the living cells, or false when
// the grid is empty
func (g *Grid) ActiveBounds() (b Bounds, ok bool) {
	g.Cells(func(column, row int, alive bool) {
		if !alive {
			return
		}
		if !ok {
			b = Bounds{MinColumn: column, MaxColumn: column, MinRow: row, MaxRow: row}
			ok = true
			return
		}
		b.MinColumn = min(b.MinColumn, column)
		b.MaxColumn = max(b.MaxColumn, column)
		b.MinRow = min(b.MinRow, row)
		b.MaxRow = max(b.MaxRow, row)
	})
	return b, ok
}

// Hash returns an MD5 digest of the current grid state without allocating
func (g *Grid) Hash() Digest {
	for i, alive := range g.cells {
		if alive {
			g.hashBuf[i] = 1
		} else {
			g.hashBuf[i] = 0
		}
	}
	return md5.Sum(g.hashBuf)
}
