package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/algotrace/internal/config"
)

// Setup builds a logger writing to w. Format "console" gives human-readable
// lines, "json" one object per line.
func Setup(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	output := w
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format '%s'", cfg.Format)
	}

	return zerolog.New(output).Level(level).With().
		Timestamp().
		Logger(), nil
}
