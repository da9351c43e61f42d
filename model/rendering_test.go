package model

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderTo(t *testing.T) {
	Convey("Given a 2x2 board with a live diagonal", t, func() {
		b := boardFrom(
			"#.",
			".#",
		)

		Convey("Alive and dead cells get their colors in row-major order", func() {
			frame := make([]byte, b.FrameSize())
			So(len(frame), ShouldEqual, 16)
			b.RenderTo(frame)
			So(frame[0:4], ShouldResemble, AliveColor[:])
			So(frame[4:8], ShouldResemble, DeadColor[:])
			So(frame[8:12], ShouldResemble, DeadColor[:])
			So(frame[12:16], ShouldResemble, AliveColor[:])
		})

		Convey("A frame of the wrong length panics", func() {
			So(func() { b.RenderTo(make([]byte, 15)) }, ShouldPanic)
			So(func() { b.RenderTo(make([]byte, 20)) }, ShouldPanic)
		})
	})
}

func TestTerminalRenderer(t *testing.T) {
	Convey("The terminal renderer draws one line per row", t, func() {
		var out bytes.Buffer
		r := &TerminalRenderer{Out: &out}
		r.Display(boardFrom(
			"#.",
			".#",
		))
		So(out.String(), ShouldEqual, strings.Join([]string{
			gridPosBlock + gridPosEmpty,
			gridPosEmpty + gridPosBlock,
			"",
		}, "\n"))
	})
}

func TestPatterns(t *testing.T) {
	Convey("Patterns near the edge are clipped instead of panicking", t, func() {
		b := New(Config{Height: 4, Width: 4, Pitches: []float64{440}})
		So(func() { b.AddGlider(2, 2) }, ShouldNotPanic)
		So(func() { b.AddBlinker(3, 3) }, ShouldNotPanic)
		So(b.Get(3, 3), ShouldBeTrue)
	})

	Convey("Randomize honors the density bounds", t, func() {
		b := NewBoard(8, 12)
		rng := rand.New(rand.NewSource(7))
		b.Randomize(0, rng)
		So(b.CountLivingCells(), ShouldEqual, 0)
		b.Randomize(1, rng)
		So(b.CountLivingCells(), ShouldEqual, 8*12)
	})

	Convey("Seeding with zero density leaves only the patterns", t, func() {
		b := NewBoard(20, 40)
		b.SeedInterestingPatterns(0, rand.New(rand.NewSource(1)))
		So(b.CountLivingCells(), ShouldEqual, 5+5+3+3)
	})
}
