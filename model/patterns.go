package model

import "math/rand"

// paint sets a cell if it is on the board and ignores it otherwise; patterns may hang off the edge
func (b *Board) paint(row, col int, alive bool) {
	if b.Contains(row, col) {
		b.cells[row*b.width+col] = alive
	}
}

// AddGlider adds a south-east travelling glider with its top-left corner at (row, col)
func (b *Board) AddGlider(row, col int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for r, cells := range pattern {
		for c, alive := range cells {
			b.paint(row+r, col+c, alive)
		}
	}
}

// AddBlinker adds a horizontal blinker starting at (row, col)
func (b *Board) AddBlinker(row, col int) {
	for c := range 3 {
		b.paint(row, col+c, true)
	}
}

// Randomize brings each cell to life with the given probability
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for i := range b.cells {
		b.cells[i] = rng.Float64() < density
	}
}

// SeedInterestingPatterns clears the board, drops a few gliders and blinkers, then sprinkles random life
func (b *Board) SeedInterestingPatterns(density float64, rng *rand.Rand) {
	b.Randomize(density, rng)

	if b.width >= 10 && b.height >= 10 {
		b.AddGlider(5, 5)
		if b.width >= 20 && b.height >= 15 {
			b.AddGlider(5, b.width-8)
		}

		b.AddBlinker(b.height/4, b.width/4)
		if b.width >= 30 {
			b.AddBlinker(3*b.height/4, 3*b.width/4)
		}
	}
}
