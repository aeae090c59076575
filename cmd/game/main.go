package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/loop"
	"github.com/tomz197/rocks/internal/replay"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings := config.Load()

	logOut, closeLog, err := settings.OpenLog()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := settings.NewLogger(logOut)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rec *replay.Recorder
	opts := loop.ClientOptions{
		TickTime: settings.TickTime(),
		Logger:   logger,
	}
	if settings.RecordPath != "" {
		rec = replay.NewRecorder(settings.Seed)
		opts.Recorder = rec
	}

	game := loop.NewGame(settings.Seed, logger)
	if err := loop.Run(ctx, game, bufio.NewReader(os.Stdin), os.Stdout, opts); err != nil {
		return err
	}

	if rec != nil {
		return writeTrace(settings.RecordPath, rec.Trace(), logger)
	}
	return nil
}

func writeTrace(path string, t replay.Trace, logger *log.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	if err := replay.Save(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close trace: %w", err)
	}
	logger.Info("trace written", "path", path, "frames", len(t.Frames))
	return nil
}
