package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// boardFrom builds a board from rows of '#' (alive) and '.' (dead) with a single pitch section
func boardFrom(rows ...string) *Board {
	b := New(Config{Height: len(rows), Width: len(rows[0]), Pitches: []float64{440}})
	for row, line := range rows {
		for col, ch := range line {
			b.SetCell(ch == '#', row, col)
		}
	}
	return b
}

func liveCells(b *Board) [][2]int {
	var cells [][2]int
	height, width := b.Dimensions()
	for row := range height {
		for col := range width {
			if b.Get(row, col) {
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}

func TestNewBoard(t *testing.T) {
	Convey("When a board is created", t, func() {
		Convey("It has the requested dimensions and no live cells", func() {
			b := NewBoard(10, 20)
			height, width := b.Dimensions()
			So(height, ShouldEqual, 10)
			So(width, ShouldEqual, 20)
			So(b.CountLivingCells(), ShouldEqual, 0)
			So(b.Sections(), ShouldEqual, len(ChromaticOctave))
		})

		Convey("Zero or negative dimensions are rejected", func() {
			So(func() { NewBoard(0, 20) }, ShouldPanic)
			So(func() { NewBoard(10, 0) }, ShouldPanic)
			So(func() { NewBoard(-1, 20) }, ShouldPanic)
		})

		Convey("An empty pitch table is rejected", func() {
			So(func() { New(Config{Height: 4, Width: 4}) }, ShouldPanic)
		})

		Convey("Boards narrower than the pitch table are allowed", func() {
			So(func() { NewBoard(3, 3) }, ShouldNotPanic)
			So(func() { NewBoard(3, 11) }, ShouldNotPanic)
			So(func() { New(Config{Height: 1, Width: 1, Pitches: ChromaticOctave}) }, ShouldNotPanic)
		})

		Convey("The pitch table is copied from the config", func() {
			cfg := DefaultConfig()
			b := New(cfg)
			cfg.Pitches[0] = 1
			pitch, _ := b.ActivitySpectrum()
			So(pitch, ShouldEqual, 261.63)
		})
	})
}

func TestCellAccess(t *testing.T) {
	Convey("Given a 5x7 board", t, func() {
		b := NewBoard(5, 7)

		Convey("A written cell reads back the value written", func() {
			So(b.SetCell(true, 2, 3), ShouldBeTrue)
			So(b.Get(2, 3), ShouldBeTrue)
			So(b.SetCell(false, 2, 3), ShouldBeFalse)
			So(b.Get(2, 3), ShouldBeFalse)

			So(b.SetCell(true, 4, 6), ShouldBeTrue)
			So(b.Get(4, 6), ShouldBeTrue)
			So(b.Get(4, 0), ShouldBeFalse)
		})

		Convey("Out of range coordinates panic", func() {
			So(func() { b.Get(5, 0) }, ShouldPanic)
			So(func() { b.Get(0, 7) }, ShouldPanic)
			So(func() { b.Get(-1, 0) }, ShouldPanic)
			So(func() { b.SetCell(true, 0, -1) }, ShouldPanic)
			So(func() { b.SetCell(true, 5, 7) }, ShouldPanic)
			So(func() { b.CountLiveNeighbors(5, 0) }, ShouldPanic)
		})

		Convey("Clear kills every cell and is idempotent", func() {
			for row := range 5 {
				for col := range 7 {
					b.SetCell((row+col)%2 == 0, row, col)
				}
			}
			b.Clear()
			So(b.CountLivingCells(), ShouldEqual, 0)
			b.Clear()
			for row := range 5 {
				for col := range 7 {
					So(b.Get(row, col), ShouldBeFalse)
				}
			}
		})
	})
}

func TestCopyFrom(t *testing.T) {
	Convey("When copying one board into another", t, func() {
		src := boardFrom(
			"#.",
			".#",
		)

		Convey("Matching boards receive the same cells", func() {
			dst := boardFrom(
				"##",
				"##",
			)
			dst.CopyFrom(src)
			So(liveCells(dst), ShouldResemble, [][2]int{{0, 0}, {1, 1}})
		})

		Convey("Mismatched dimensions panic", func() {
			dst := boardFrom("..", "..", "..")
			So(func() { dst.CopyFrom(src) }, ShouldPanic)
		})
	})
}

func TestEvolve(t *testing.T) {
	Convey("When the board evolves", t, func() {
		Convey("A block is a still life", func() {
			b := boardFrom(
				"....",
				".##.",
				".##.",
				"....",
			)
			for range 5 {
				b.Evolve()
				So(liveCells(b), ShouldResemble, [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}})
			}
		})

		Convey("A blinker oscillates with period two", func() {
			b := boardFrom(
				".....",
				".....",
				".###.",
				".....",
				".....",
			)
			b.Evolve()
			So(liveCells(b), ShouldResemble, [][2]int{{1, 2}, {2, 2}, {3, 2}})
			b.Evolve()
			So(liveCells(b), ShouldResemble, [][2]int{{2, 1}, {2, 2}, {2, 3}})
		})

		Convey("Every cell is computed from the previous generation", func() {
			// An in-place sweep would birth (1,2) first and let it keep (2,1) alive
			b := boardFrom(
				".....",
				".....",
				".###.",
				".....",
				".....",
			)
			b.Evolve()
			So(b.Get(1, 2), ShouldBeTrue)
			So(b.Get(2, 1), ShouldBeFalse)
			So(b.Get(2, 3), ShouldBeFalse)
		})

		Convey("A 3x3 filled square keeps only its corners", func() {
			b := boardFrom(
				"###",
				"###",
				"###",
			)
			b.Evolve()
			So(liveCells(b), ShouldResemble, [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}})
		})

		Convey("Neighbors do not wrap around the edges", func() {
			b := boardFrom(
				"#..#",
				"....",
				"....",
				"#...",
			)
			So(b.CountLiveNeighbors(0, 0), ShouldEqual, 0)
			So(b.CountLiveNeighbors(3, 3), ShouldEqual, 0)
			b.Evolve()
			So(b.CountLivingCells(), ShouldEqual, 0)
		})

		Convey("An isolated corner cell dies", func() {
			b := boardFrom(
				"#..",
				"...",
				"...",
			)
			b.Evolve()
			So(b.Get(0, 0), ShouldBeFalse)
		})

		Convey("Survival and birth follow B3/S23", func() {
			b := boardFrom(
				"##...",
				"#....",
				".....",
				"...##",
				"...##",
			)
			So(b.CountLiveNeighbors(1, 1), ShouldEqual, 3)
			b.Evolve()
			So(b.Get(0, 0), ShouldBeTrue)
			So(b.Get(0, 1), ShouldBeTrue)
			So(b.Get(1, 0), ShouldBeTrue)
			So(b.Get(1, 1), ShouldBeTrue)
			So(b.Get(3, 3), ShouldBeTrue)
			So(b.Get(4, 4), ShouldBeTrue)
			So(b.Get(2, 2), ShouldBeFalse)
		})

		Convey("A glider moves one cell diagonally every four generations", func() {
			b := New(Config{Height: 10, Width: 10, Pitches: []float64{440}})
			b.AddGlider(0, 0)
			for range 4 {
				b.Evolve()
			}
			So(liveCells(b), ShouldResemble, [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}})
		})
	})
}

func TestString(t *testing.T) {
	Convey("The board dumps as rows of zeros and ones", t, func() {
		b := boardFrom(
			"#.",
			".#",
		)
		So(b.String(), ShouldEqual, "1 0\n0 1\n")
	})
}
