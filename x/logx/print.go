package logx

import (
	"io"
	"os"
	"strconv"
	"time"
)

// Print writes "Info: msg k=v ..." lines without fmt, matching the
// println-style console output used on the board.
type Print struct {
	W     io.Writer
	Level Level
	buf   []byte
}

// NewPrint returns a line logger on w (os.Stdout when nil).
func NewPrint(w io.Writer, lvl Level) *Print {
	if w == nil {
		w = os.Stdout
	}
	return &Print{W: w, Level: lvl}
}

func (p *Print) Debug(msg string, kv ...any) { p.line(LevelDebug, msg, kv) }
func (p *Print) Info(msg string, kv ...any)  { p.line(LevelInfo, msg, kv) }
func (p *Print) Warn(msg string, kv ...any)  { p.line(LevelWarn, msg, kv) }

func (p *Print) line(lvl Level, msg string, kv []any) {
	if lvl < p.Level || p.Level == LevelOff {
		return
	}
	b := p.buf[:0]
	b = append(b, lvl.String()...)
	b = append(b, ": "...)
	b = append(b, msg...)
	for i := 0; i < len(kv); i += 2 {
		b = append(b, ' ')
		b = appendValue(b, kv[i])
		b = append(b, '=')
		if i+1 < len(kv) {
			b = appendValue(b, kv[i+1])
		} else {
			b = append(b, '?')
		}
	}
	b = append(b, '\n')
	_, _ = p.W.Write(b)
	p.buf = b
}

func appendValue(b []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(b, x...)
	case int:
		return strconv.AppendInt(b, int64(x), 10)
	case int64:
		return strconv.AppendInt(b, x, 10)
	case uint8:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(b, uint64(x), 10)
	case float64:
		return strconv.AppendFloat(b, x, 'g', 4, 64)
	case bool:
		return strconv.AppendBool(b, x)
	case time.Duration:
		return append(b, x.String()...)
	case error:
		return append(b, x.Error()...)
	case interface{ String() string }:
		return append(b, x.String()...)
	case nil:
		return append(b, "nil"...)
	default:
		return append(b, '?')
	}
}
