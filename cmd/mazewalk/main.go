// Command mazewalk explores a maze room by room and reports the moves it took.
//
// The maze is read from MAZE_FILE (YAML or JSON) or generated from
// MAZE_WIDTH, MAZE_HEIGHT, MAZE_LOOPS and MAZE_SEED. See package config for
// every variable; a .env file in the working directory is honored.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mazewalk/config"
	"github.com/katalvlaran/mazewalk/explore"
	"github.com/katalvlaran/mazewalk/world"
)

func newLogger(cfg config.Config) logr.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	zerologr.SetMaxV(cfg.Verbosity)

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05.000Z07:00"}
	zlog := zerolog.New(output).Level(lvl).With().Timestamp().Logger()

	return zerologr.New(&zlog)
}

func loadWorld(cfg config.Config) (*world.World, error) {
	if cfg.MapFile != "" {
		return world.LoadFile(cfg.MapFile)
	}

	return world.Generate(world.GridSpec{
		Width:  cfg.Width,
		Height: cfg.Height,
		Loops:  cfg.Loops,
		Seed:   cfg.Seed,
	})
}

func run(ctx context.Context, log logr.Logger, cfg config.Config) error {
	wd, err := loadWorld(cfg)
	if err != nil {
		return err
	}
	log.Info("world ready", "rooms", wd.Len(), "start", wd.Start(), "file", cfg.MapFile)

	player, err := world.NewPlayer(wd)
	if err != nil {
		return err
	}

	x := explore.New(
		explore.WithLogger(log.WithName("explore")),
		explore.WithMoveBudget(cfg.MoveBudget),
	)
	moves, err := x.Explore(ctx, player)
	if err != nil {
		return err
	}
	if err = wd.Verify(x.Graph()); err != nil {
		return err
	}

	st := x.Stats()
	log.Info("map complete", "session", x.Session(), "rooms", st.Rooms, "moves", st.Moves,
		"probes", st.Probes, "walks", st.Walks, "escapes", st.Escapes)

	parts := make([]string, len(moves))
	for i, d := range moves {
		parts[i] = d.String()
	}
	fmt.Println(strings.Join(parts, " "))

	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := newLogger(cfg).WithName("mazewalk")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, log, cfg); err != nil {
		log.Error(err, "exploration failed")
		stop()
		os.Exit(1)
	}
}
