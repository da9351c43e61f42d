package model

import (
	"fmt"
	"strings"

	"github.com/sheikhrachel/go-gol-sound/rules"
)

// Board is a fixed-size Game of Life grid stored row-major in a flat slice
type Board struct {
	height int
	width  int
	cells  []bool
	next   []bool // back buffer, swapped with cells on every Evolve

	pitches []float64
}

// NewBoard creates an all-dead height x width board using the default pitch table
func NewBoard(height, width int) *Board {
	cfg := DefaultConfig()
	cfg.Height = height
	cfg.Width = width
	return New(cfg)
}

// New creates an all-dead board from the given configuration.
// It panics if the configuration cannot describe a board.
func New(cfg Config) *Board {
	if cfg.Height <= 0 || cfg.Width <= 0 {
		panic(fmt.Sprintf("invalid board dimensions: %dx%d", cfg.Height, cfg.Width))
	}
	if len(cfg.Pitches) == 0 {
		panic("board needs at least one pitch section")
	}

	pitches := make([]float64, len(cfg.Pitches))
	copy(pitches, cfg.Pitches)

	return &Board{
		height:  cfg.Height,
		width:   cfg.Width,
		cells:   make([]bool, cfg.Height*cfg.Width),
		next:    make([]bool, cfg.Height*cfg.Width),
		pitches: pitches,
	}
}

// Dimensions returns the height and width of the board
func (b *Board) Dimensions() (height, width int) {
	return b.height, b.width
}

// GetHeight returns the number of rows
func (b *Board) GetHeight() int {
	return b.height
}

// GetWidth returns the number of columns
func (b *Board) GetWidth() int {
	return b.width
}

// Contains reports whether (row, col) lies on the board
func (b *Board) Contains(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) mustContain(row, col int) {
	if !b.Contains(row, col) {
		panic(fmt.Sprintf("invalid board position: row %d, col %d on %dx%d board", row, col, b.height, b.width))
	}
}

func (b *Board) index(row, col int) int {
	b.mustContain(row, col)
	return row*b.width + col
}

// Get returns the liveness of the cell at (row, col)
func (b *Board) Get(row, col int) bool {
	return b.cells[b.index(row, col)]
}

// SetCell writes alive at (row, col) and returns the value written
func (b *Board) SetCell(alive bool, row, col int) bool {
	b.cells[b.index(row, col)] = alive
	return alive
}

// Clear kills every cell
func (b *Board) Clear() {
	clear(b.cells)
}

// CopyFrom overwrites this board's cells with other's.
// Both boards must have the same dimensions.
func (b *Board) CopyFrom(other *Board) {
	if other.height != b.height || other.width != b.width {
		panic(fmt.Sprintf("board size mismatch: %dx%d into %dx%d", other.height, other.width, b.height, b.width))
	}
	copy(b.cells, other.cells)
}

// CountLiveNeighbors counts live cells in the Moore neighborhood of (row, col).
// Positions off the board count as dead.
func (b *Board) CountLiveNeighbors(row, col int) int {
	b.mustContain(row, col)
	return b.countNeighbors(row, col)
}

func (b *Board) countNeighbors(row, col int) (count int) {
	minRow := max(0, row-1)
	maxRow := min(b.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(b.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if b.cells[r*b.width+c] {
				count++
			}
		}
	}
	return
}

// Evolve advances the board by one generation.
// Every next state is computed from the current generation before any cell is committed.
func (b *Board) Evolve() {
	for row := range b.height {
		for col := range b.width {
			i := row*b.width + col
			b.next[i] = rules.ApplyConwayRules(b.countNeighbors(row, col), b.cells[i])
		}
	}
	b.cells, b.next = b.next, b.cells
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}

// String dumps the board as rows of 0 and 1
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if b.cells[row*b.width+col] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
