package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sound/model"
)

// Config holds the configuration for the simulator
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Pitches        []float64     `json:"pitches"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	StartPaused    bool          `json:"start_paused"`
	PlayEvery      int           `json:"play_every"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	board := model.DefaultConfig()
	return Config{
		Width:          board.Width,
		Height:         board.Height,
		Pitches:        board.Pitches,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 1000,
		RandomDensity:  0.15,
		Seed:           1,
		StartPaused:    false,
		PlayEvery:      10,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations that cannot build a board or drive the run loop
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] board must be at least 1x1, got %dx%d", c.Height, c.Width)
	case len(c.Pitches) == 0:
		return errors.New("[Validate] pitch table is empty")
	case c.Width < len(c.Pitches):
		return errors.Errorf("[Validate] width %d is narrower than %d pitch sections", c.Width, len(c.Pitches))
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] negative frame rate %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density %v outside [0, 1]", c.RandomDensity)
	case c.MaxGenerations < 0 || c.PlayEvery < 0:
		return errors.New("[Validate] generation counts must not be negative")
	}
	for i, pitch := range c.Pitches {
		if pitch <= 0 {
			return errors.Errorf("[Validate] pitch %d is not a positive frequency: %v", i, pitch)
		}
	}
	return nil
}

// BoardConfig returns the part of the configuration that shapes the board
func (c Config) BoardConfig() model.Config {
	pitches := make([]float64, len(c.Pitches))
	copy(pitches, c.Pitches)
	return model.Config{
		Height:  c.Height,
		Width:   c.Width,
		Pitches: pitches,
	}
}
