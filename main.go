package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"
)

const defaultConfigFile = "config.json"

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	app := cli.NewApp()
	app.Name = "go-gol-sound"
	app.Usage = "Game of Life that hums the note of its busiest column section"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: defaultConfigFile,
			Usage: "JSON configuration file; defaults are used if it does not exist",
		},
		cli.IntFlag{
			Name:  "generations, g",
			Usage: "stop after this many generations (0 runs until interrupted)",
		},
		cli.IntFlag{
			Name:  "play-every",
			Usage: "play a note every N generations (0 never plays)",
		},
		cli.BoolFlag{
			Name:  "paused",
			Usage: "start paused and only show the seeded board",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug output",
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.Bool("verbose") {
			logger = level.NewFilter(logger, level.AllowDebug())
		} else {
			logger = level.NewFilter(logger, level.AllowInfo())
		}

		config := loadConfig(c.String("config"), logger)
		if c.IsSet("generations") {
			config.MaxGenerations = c.Int("generations")
		}
		if c.IsSet("play-every") {
			config.PlayEvery = c.Int("play-every")
		}
		if c.IsSet("paused") {
			config.StartPaused = c.Bool("paused")
		}
		if err := config.Validate(); err != nil {
			return err
		}

		return run(config, logger)
	}

	if err := app.Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "exiting", "err", err)
		os.Exit(1)
	}
}
