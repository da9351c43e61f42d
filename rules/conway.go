package rules

/*
ApplyConwayRules returns whether a cell is alive in the next generation (B3/S23).

A live cell survives with two or three live neighbors and dies otherwise;
a dead cell is born with exactly three live neighbors.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
