package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with fewer than two live neighbors dies, with two or three it survives,
with more than three it dies. A dead cell with exactly three live neighbors is born
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		switch {
		case neighbors < 2:
			return false
		case neighbors <= 3:
			return true
		default:
			return false
		}
	}
	return neighbors == 3
}
