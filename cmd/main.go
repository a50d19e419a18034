package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rusted-os/ramfat"
	"github.com/rusted-os/ramfat/console"
	"github.com/rusted-os/ramfat/tcellhw"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "rusted",
		Usage:   "text mode menu, editor and resident FAT16 ramdisk in a terminal",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "report filesystem errors instead of ignoring them, cap files at one cluster",
				EnvVars: []string{"RUSTED_STRICT"},
			},
			&cli.StringFlag{
				Name:    "seed-dir",
				Usage:   "copy the *.TXT files of `DIR` into the ramdisk at boot",
				EnvVars: []string{"RUSTED_SEED_DIR"},
			},
			&cli.Uint64Flag{
				Name:    "rng-seed",
				Usage:   "seed of the random number generator, the clock if unset",
				EnvVars: []string{"RUSTED_RNG_SEED"},
			},
			&cli.BoolFlag{
				Name:    "show-scancodes",
				Usage:   "show the last scancode in the top right corner",
				EnvVars: []string{"RUSTED_SHOW_SCANCODES"},
			},
			&cli.BoolFlag{
				Name:    "clock",
				Usage:   "stamp creation and modification times of files",
				EnvVars: []string{"RUSTED_CLOCK"},
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to `FILE`, logging is discarded if unset",
				EnvVars: []string{"RUSTED_LOG_FILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "one of debug, info, warn, error",
				Value:   "info",
				EnvVars: []string{"RUSTED_LOG_LEVEL"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(file, level string) (*slog.Logger, func(), error) {
	if file == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { f.Close() }, nil
}

func run(c *cli.Context) error {
	logger, closeLog, err := newLogger(c.String("log-file"), c.String("log-level"))
	if err != nil {
		return err
	}
	defer closeLog()

	storeOpts := []ramfat.Option{
		ramfat.WithStrict(c.Bool("strict")),
		ramfat.WithLogger(logger),
	}
	if c.Bool("clock") {
		storeOpts = append(storeOpts, ramfat.WithClock(time.Now))
	}
	store := ramfat.New(storeOpts...)

	if dir := c.String("seed-dir"); dir != "" {
		n, err := ramfat.Import(store, afero.NewOsFs(), dir)
		if err != nil {
			logger.Warn("seeding incomplete", slog.String("dir", dir), slog.Any("err", err))
		}
		logger.Info("ramdisk seeded", slog.String("dir", dir), slog.Int("files", n))
	}

	consoleOpts := []console.Option{
		console.WithLogger(logger),
		console.WithStrict(c.Bool("strict")),
		console.WithShowScancodes(c.Bool("show-scancodes")),
	}
	if c.IsSet("rng-seed") {
		consoleOpts = append(consoleOpts, console.WithSeed(c.Uint64("rng-seed")))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	term, err := tcellhw.New(screen)
	if err != nil {
		return err
	}
	defer term.Fini()

	ctx := c.Context
	for {
		err := console.New(store, term, consoleOpts...).Run(ctx, term)
		switch {
		case errors.Is(err, console.ErrReboot):
			// The region survives the reset.
			store, err = ramfat.Mount(store.Region(), storeOpts...)
			if err != nil {
				return err
			}
		case errors.Is(err, console.ErrHalted):
			logger.Error("halted", slog.Any("err", err))
			halt(ctx, term)
			return err
		case errors.Is(err, tcellhw.ErrInterrupt), errors.Is(err, context.Canceled):
			return nil
		default:
			return err
		}
	}
}

// halt keeps the fault banner on the screen and ignores all keys until the
// terminal is interrupted.
func halt(ctx context.Context, term *tcellhw.Terminal) {
	for {
		if _, ok := term.PollScancode(); ok {
			continue
		}
		if err := term.Wait(ctx); err != nil {
			return
		}
	}
}
