// Package logx is the diagnostic side channel. Control loops log through the
// Logger interface so they can run with a UART console on the board, a
// zerolog console on the host, or nothing at all in tests.
package logx

// Level orders log severities.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelOff
)

// ParseLevel maps "debug","info","warn","off" to a Level. Unknown => info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "off", "none":
		return LevelOff
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "Debug"
	case LevelWarn:
		return "Warn"
	case LevelOff:
		return "Off"
	default:
		return "Info"
	}
}

// Logger takes a message plus alternating key/value pairs.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return l
}
