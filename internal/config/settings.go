package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Settings holds the runtime configuration read from the environment.
type Settings struct {
	Seed       int64
	TickRate   int64
	LogLevel   string
	LogFile    string
	RecordPath string

	SSHHost    string
	SSHPort    string
	SSHHostKey string

	// SSHShutdownTimeout bounds how long open sessions get to end on shutdown.
	SSHShutdownTimeout time.Duration
}

// Load reads Settings from the environment.
func Load() Settings {
	return Settings{
		Seed:       GetEnvInt64("ASTEROIDS_SEED", 1),
		TickRate:   GetEnvInt64("ASTEROIDS_TICK_RATE", DefaultTickRate),
		LogLevel:   GetEnv("ASTEROIDS_LOG_LEVEL", "info"),
		LogFile:    GetEnv("ASTEROIDS_LOG_FILE", ""),
		RecordPath: GetEnv("ASTEROIDS_RECORD", ""),
		SSHHost:    GetEnv("SSH_HOST", "::"),
		SSHPort:    GetEnv("SSH_PORT", "2222"),
		SSHHostKey: GetEnv("SSH_HOST_KEY", "/app/keys/host_key"),

		SSHShutdownTimeout: GetEnvDuration("SSH_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// TickTime returns the target duration of one simulation tick.
func (s Settings) TickTime() time.Duration {
	rate := s.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// NewLogger builds the logger described by s writing to w.
func (s Settings) NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", s.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// OpenLog opens the configured log destination. Without a log file the
// output is discarded so the terminal frame is not corrupted.
// The returned close function is always safe to call.
func (s Settings) OpenLog() (io.Writer, func() error, error) {
	if s.LogFile == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
