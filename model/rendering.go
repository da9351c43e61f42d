package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"

	// BytesPerCell is the size of one RGBA pixel written by RenderTo
	BytesPerCell = 4
)

var (
	// AliveColor is light blue
	AliveColor = [BytesPerCell]byte{0x00, 0xff, 0xff, 0xff}
	// DeadColor is opaque black
	DeadColor = [BytesPerCell]byte{0x00, 0x00, 0x00, 0xff}
)

// FrameSize returns the length of the pixel buffer RenderTo expects
func (b *Board) FrameSize() int {
	return BytesPerCell * b.width * b.height
}

// RenderTo writes one RGBA pixel per cell into frame, row-major.
// frame must be exactly FrameSize() bytes long.
func (b *Board) RenderTo(frame []byte) {
	if len(frame) != b.FrameSize() {
		panic(fmt.Sprintf("frame length %d does not match %dx%d board (want %d)",
			len(frame), b.height, b.width, b.FrameSize()))
	}

	for i, alive := range b.cells {
		color := DeadColor
		if alive {
			color = AliveColor
		}
		copy(frame[i*BytesPerCell:(i+1)*BytesPerCell], color[:])
	}
}

// TerminalRenderer draws a board with block characters
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b *Board) {
	for row := range b.height {
		for col := range b.width {
			if b.cells[row*b.width+col] {
				fmt.Fprint(r.Out, gridPosBlock)
			} else {
				fmt.Fprint(r.Out, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.Out)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return cmd.Run()
}
