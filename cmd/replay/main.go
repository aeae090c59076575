package main

import (
	"fmt"
	"os"

	"github.com/tomz197/rocks/internal/config"
	"github.com/tomz197/rocks/internal/replay"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: replay <trace-file>")
		os.Exit(2)
	}

	settings := config.Load()
	logger := settings.NewLogger(os.Stderr)

	f, err := os.Open(os.Args[1])
	if err != nil {
		logger.Fatal("open trace", "err", err)
	}
	defer f.Close()

	trace, err := replay.Load(f)
	if err != nil {
		logger.Fatal("load trace", "path", os.Args[1], "err", err)
	}

	s, err := replay.Run(trace, logger)
	if err != nil {
		logger.Fatal("replay", "err", err)
	}

	fmt.Printf("ticks:               %d\n", s.Ticks)
	fmt.Printf("wave:                %d\n", s.Wave)
	fmt.Printf("asteroids:           %d\n", s.Asteroids)
	fmt.Printf("projectiles:         %d\n", s.Projectiles)
	fmt.Printf("shots fired:         %d\n", s.ShotsFired)
	fmt.Printf("asteroids destroyed: %d\n", s.AsteroidsDestroyed)
}
