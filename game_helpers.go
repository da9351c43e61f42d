package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-sound/controller"
	"github.com/sheikhrachel/go-gol-sound/model"
	"github.com/sheikhrachel/go-gol-sound/utils"
)

var errInterrupted = errors.New("interrupted")

// loadConfig reads the config file, falling back to defaults when it cannot be used
func loadConfig(filename string, logger log.Logger) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		level.Info(logger).Log("msg", "using default configuration", "err", err)
		return utils.DefaultConfig()
	}
	level.Debug(logger).Log("msg", "loaded configuration", "file", filename)
	return config
}

// initializeGame builds the board and seeds it, including a diagonal stroke painted
// the way a mouse drag would paint it
func initializeGame(config utils.Config) (
	*controller.Controller,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	board := model.New(config.BoardConfig())
	board.SeedInterestingPatterns(config.RandomDensity, rand.New(rand.NewSource(config.Seed)))

	ctrl := controller.New(board)
	height, width := board.Dimensions()
	ctrl.StartPainting(true, 0, 0)
	ctrl.Drag(0, 0, height-1, width-1)
	ctrl.Release()

	if !config.StartPaused {
		ctrl.TogglePause()
	}

	return ctrl, model.NewTerminalRenderer(), utils.NewStats()
}

// run drives the game loop until it finishes or the process is signalled
func run(config utils.Config, logger log.Logger) error {
	ctrl, renderer, stats := initializeGame(config)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg.Go(func() error {
		select {
		case sig := <-sigChan:
			level.Info(logger).Log("msg", "shutting down gracefully", "signal", sig)
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})

	eg.Go(func() error {
		defer cancel()
		return gameLoop(ctx, config, ctrl, renderer, stats, logger)
	})

	err := eg.Wait()
	level.Info(logger).Log(
		"msg", "final stats",
		"generations", stats.TotalGenerations,
		"runtime", time.Since(stats.StartTime).Round(time.Millisecond),
		"avg_population", fmt.Sprintf("%.1f", stats.AveragePopulation),
		"notes_played", stats.NotesPlayed,
	)
	if errors.Is(err, errInterrupted) {
		return nil
	}
	return err
}

// gameLoop renders, plays and evolves the board once per frame
func gameLoop(
	ctx context.Context,
	config utils.Config,
	ctrl *controller.Controller,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	logger log.Logger,
) error {
	var (
		board         = ctrl.Board()
		frame         = make([]byte, board.FrameSize())
		lastFrameTime = time.Now()
	)

	for generation := 0; ; generation++ {
		frameStart := time.Now()

		if err := renderer.Clear(); err != nil {
			level.Debug(logger).Log("msg", "could not clear terminal", "err", err)
		}

		livingCells := board.CountLivingCells()
		stats.Update(generation, livingCells, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		board.RenderTo(frame)
		if stats.ObserveFrame(frame) {
			level.Debug(logger).Log("msg", "board is static or cycling", "generation", generation)
		}

		if config.PlayEvery > 0 && generation%config.PlayEvery == 0 {
			playNote(ctrl, stats, logger, generation)
		}

		displayGameStatus(generation, livingCells, board, stats, ctrl.Paused())
		renderer.Display(board)

		// No keyboard is read here, so a paused run is a snapshot of the seeded board
		if ctrl.Paused() {
			return nil
		}
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			level.Info(logger).Log("msg", "reached maximum generations", "limit", config.MaxGenerations)
			return nil
		}

		ctrl.Tick()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(config.FrameRate):
		}
	}
}

// playNote hands the note for the current board to the audio layer; here the tone is only logged
func playNote(ctrl *controller.Controller, stats *utils.Stats, logger log.Logger, generation int) {
	note := ctrl.Play()
	stats.RecordNote(note.Name)
	level.Info(logger).Log(
		"msg", "note played",
		"generation", generation,
		"note", note.Name,
		"frequency", note.Pitch,
		"section", note.Section,
	)
}

// displayGameStatus shows the current game status
func displayGameStatus(generation, livingCells int, board *model.Board, stats *utils.Stats, paused bool) {
	height, width := board.Dimensions()
	density := float64(livingCells) / float64(width*height) * 100

	status := "Running"
	if paused {
		status = "Paused"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Last note: %s\n",
		generation, livingCells, density, status, stats.LastNote)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}
