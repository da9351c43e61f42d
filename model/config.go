package model

const (
	defaultHeight = 100
	defaultWidth  = 150
)

// ChromaticOctave holds the frequencies in Hz of the twelve notes from C4 to B4
var ChromaticOctave = []float64{
	261.63, 277.18, 293.66, 311.13, 329.63, 349.23,
	369.99, 392.00, 415.30, 440.00, 466.16, 493.88,
}

// NoteNames names the notes of ChromaticOctave, in order
var NoteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Config describes a board: its size and the pitch table used by ActivitySpectrum.
// The number of spectrum sections is len(Pitches).
type Config struct {
	Height  int
	Width   int
	Pitches []float64
}

// DefaultConfig returns a 100x150 board split into one chromatic octave
func DefaultConfig() Config {
	pitches := make([]float64, len(ChromaticOctave))
	copy(pitches, ChromaticOctave)
	return Config{
		Height:  defaultHeight,
		Width:   defaultWidth,
		Pitches: pitches,
	}
}

// NoteName returns the name of the note for a spectrum section.
// Sections past the first octave wrap around the note names.
func NoteName(section int) string {
	if section < 0 {
		return "?"
	}
	return NoteNames[section%len(NoteNames)]
}
