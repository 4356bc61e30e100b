// Command lightmon reads the board's console over a serial port and
// re-logs each line through zerolog, keeping the board's level and fields.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/tarm/serial"

	"motionlight/x/logx"
	"motionlight/x/timex"
)

func main() {
	port := flag.String("port", "/dev/ttyACM0", "serial device")
	baud := flag.Int("baud", 115200, "baud rate")
	jsonOut := flag.Bool("json", false, "JSON output")
	flag.Parse()

	var log logx.Zerolog
	if *jsonOut {
		log = logx.NewJSON(os.Stdout, logx.LevelDebug)
	} else {
		log = logx.NewConsole(os.Stdout, logx.LevelDebug, true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for ctx.Err() == nil {
		p, err := serial.OpenPort(&serial.Config{Name: *port, Baud: *baud})
		if err != nil {
			log.L.Warn().Err(err).Str("port", *port).Msg("open failed, retrying")
			timex.Real{}.Sleep(ctx, 2*time.Second)
			continue
		}
		log.L.Info().Str("port", *port).Int("baud", *baud).Msg("connected")
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				_ = p.Close()
			case <-done:
			}
		}()
		if err := forward(p, log.L); err != nil && ctx.Err() == nil {
			log.L.Warn().Err(err).Msg("read failed, reconnecting")
		}
		close(done)
		_ = p.Close()
	}
}

// forward re-logs board console lines from r until it ends.
func forward(r io.Reader, log zerolog.Logger) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		l, ok := logx.ParseLine(line)
		if !ok {
			log.Info().Str("raw", line).Msg("console")
			continue
		}
		log.WithLevel(level(l.Level)).Fields(l.Fields).Msg(l.Msg)
	}
	return sc.Err()
}

func level(l logx.Level) zerolog.Level {
	switch l {
	case logx.LevelDebug:
		return zerolog.DebugLevel
	case logx.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
