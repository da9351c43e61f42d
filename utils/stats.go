package utils

import (
	"crypto/md5"
	"time"
)

// historySize is how many recent frame hashes are kept for cycle detection
const historySize = 5

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	NotesPlayed          int
	LastNote             string

	history [][md5.Size]byte
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// RecordNote counts a played note
func (s *Stats) RecordNote(name string) {
	s.NotesPlayed++
	s.LastNote = name
}

// ObserveFrame hashes a rendered frame and reports whether it repeats one of the
// last few frames, i.e. the board is static or cycling with a short period.
func (s *Stats) ObserveFrame(frame []byte) bool {
	sum := md5.Sum(frame)

	stagnant := false
	for _, h := range s.history {
		if h == sum {
			stagnant = true
			break
		}
	}

	s.history = append(s.history, sum)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	return stagnant
}
