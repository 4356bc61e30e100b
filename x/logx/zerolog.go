//go:build !rp2040 && !rp2350

package logx

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Zerolog adapts a zerolog.Logger for host builds.
type Zerolog struct {
	L zerolog.Logger
}

// NewConsole returns a human-readable zerolog logger on w.
func NewConsole(w io.Writer, lvl Level, colors bool) Zerolog {
	zl := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		NoColor:    !colors,
	}).With().Timestamp().Logger().Level(toZerolog(lvl))
	return Zerolog{L: zl}
}

// NewJSON returns a structured zerolog logger on w.
func NewJSON(w io.Writer, lvl Level) Zerolog {
	zerolog.TimeFieldFormat = time.RFC3339
	return Zerolog{L: zerolog.New(w).With().Timestamp().Logger().Level(toZerolog(lvl))}
}

func (z Zerolog) Debug(msg string, kv ...any) { z.L.Debug().Fields(kv).Msg(msg) }
func (z Zerolog) Info(msg string, kv ...any)  { z.L.Info().Fields(kv).Msg(msg) }
func (z Zerolog) Warn(msg string, kv ...any)  { z.L.Warn().Fields(kv).Msg(msg) }

func toZerolog(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
