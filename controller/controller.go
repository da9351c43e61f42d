package controller

import "github.com/sheikhrachel/go-gol-sound/model"

// Controller turns user intents (clicks, drags, key presses) into board operations
type Controller struct {
	board  *model.Board
	paused bool

	// painting is set between Press and Release; drawAlive is the state being painted
	painting  bool
	drawAlive bool
}

// New returns a paused controller driving board
func New(board *model.Board) *Controller {
	return &Controller{board: board, paused: true}
}

// Board returns the controlled board
func (c *Controller) Board() *model.Board {
	return c.board
}

// Press toggles the cell under the pointer and starts painting with its new state
func (c *Controller) Press(row, col int) {
	c.StartPainting(!c.board.Get(row, col), row, col)
}

// StartPainting writes alive under the pointer and starts painting with it
func (c *Controller) StartPainting(alive bool, row, col int) {
	c.drawAlive = c.board.SetCell(alive, row, col)
	c.painting = true
}

// Drag paints the stroke between the previous and current pointer cells.
// It does nothing unless a Press started painting.
func (c *Controller) Drag(prevRow, prevCol, row, col int) {
	if !c.painting {
		return
	}
	c.board.SetLine(prevCol, prevRow, col, row, c.drawAlive)
}

// Release ends painting
func (c *Controller) Release() {
	c.painting = false
}

// Painting reports whether a stroke is in progress and the state it paints
func (c *Controller) Painting() (painting, alive bool) {
	return c.painting, c.drawAlive
}

// TogglePause switches between running and paused and returns the new paused state
func (c *Controller) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether the simulation is paused
func (c *Controller) Paused() bool {
	return c.paused
}

// Step advances one generation while paused and reports whether it did
func (c *Controller) Step() bool {
	if !c.paused {
		return false
	}
	c.board.Evolve()
	return true
}

// Tick advances one generation while running and reports whether it did
func (c *Controller) Tick() bool {
	if c.paused {
		return false
	}
	c.board.Evolve()
	return true
}

// Clear kills every cell
func (c *Controller) Clear() {
	c.board.Clear()
}

// Note is the tone the audio layer should play
type Note struct {
	Name    string
	Pitch   float64
	Section int
}

// Play picks the note for the board's current activity
func (c *Controller) Play() Note {
	pitch, section := c.board.ActivitySpectrum()
	return Note{
		Name:    model.NoteName(section),
		Pitch:   pitch,
		Section: section,
	}
}
