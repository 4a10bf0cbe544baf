package model

// Layout maps grid cells to pixel squares. Geometry is derived from the cell
// coordinates on demand and never stored per cell
type Layout struct {
	CellSize int
	OriginX  int
	OriginY  int
}

// CellRect returns the top-left corner and side length of a cell's square
func (l Layout) CellRect(column, row int) (x, y, size int) {
	return l.OriginX + column*l.CellSize, l.OriginY + row*l.CellSize, l.CellSize
}

// Size returns the pixel extent of the board
func (l Layout) Size(g *Grid) (width, height int) {
	return g.columns * l.CellSize, g.rows * l.CellSize
}

// CellAtPoint returns the cell whose square [x0, x0+size) x [y0, y0+size)
// contains the pixel (x, y). ok is false when no cell does
func (l Layout) CellAtPoint(g *Grid, x, y int) (column, row int, ok bool) {
	if l.CellSize <= 0 {
		return 0, 0, false
	}
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	column, row = dx/l.CellSize, dy/l.CellSize
	if !g.Contains(column, row) {
		return 0, 0, false
	}
	return column, row, true
}
