// Command lightsim runs a board program against fake pins on the host.
// Type b, m, s or q followed by Enter to toggle the button, toggle motion,
// print the strip state or quit.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/kr/pretty"

	"motionlight/bus"
	"motionlight/services/app"
	"motionlight/services/config"
	"motionlight/services/hal/platform"
	"motionlight/services/motion"
	"motionlight/x/logx"
	"motionlight/x/timex"
)

func main() {
	profile := flag.String("profile", "default", "embedded profile: "+strings.Join(config.ProfileNames(), ", "))
	file := flag.String("config", "", "YAML config file (overrides -profile)")
	envFile := flag.String("env", ".env", "dotenv file with MOTIONLIGHT_* overrides")
	speed := flag.Float64("speed", 1, "time compression factor")
	dump := flag.Bool("dump", false, "print the resolved config and exit")
	flag.Parse()

	cfg, err := loadConfig(*profile, *file)
	if err == nil {
		err = config.LoadEnv(&cfg, *envFile)
	}
	if err != nil {
		l := logx.NewConsole(os.Stderr, logx.LevelInfo, false)
		l.L.Fatal().Err(err).Msg("config")
	}
	if *dump {
		pretty.Println(cfg)
		return
	}

	log := newLogger(cfg.Log)
	h, err := platform.NewHostBoard(cfg.Pins)
	if err != nil {
		log.L.Fatal().Err(err).Msg("board")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := bus.NewBus(16)
	conn := b.NewConnection("lightsim")
	defer conn.Disconnect()
	go watch(conn.Subscribe(bus.T("motion", "#")), h, log)
	go keyboard(os.Stdin, h, log, stop)

	err = app.Run(ctx, cfg, h.Board, app.Options{
		Sleeper:  timex.Scaled{Factor: *speed},
		Log:      log,
		Observer: motion.BusObserver{Conn: conn},
	})
	if err != nil {
		log.L.Error().Err(err).Msg("stopped")
		os.Exit(1)
	}
	log.Info("bye")
}

func loadConfig(profile, file string) (config.Config, error) {
	if file == "" {
		return config.Profile(profile)
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return config.Config{}, err
	}
	return config.Parse(raw)
}

func newLogger(lc config.LogConfig) logx.Zerolog {
	lvl := logx.ParseLevel(lc.Level)
	if lc.JSON {
		return logx.NewJSON(os.Stdout, lvl)
	}
	return logx.NewConsole(os.Stdout, lvl, lc.Colors)
}

// watch logs every motion event with the strip duties at that moment.
func watch(sub *bus.Subscription, h *platform.Host, log logx.Zerolog) {
	for m := range sub.Channel() {
		ev, ok := m.Payload.(motion.PhaseEvent)
		if !ok {
			continue
		}
		d := h.Duties()
		log.L.Info().
			Str("topic", m.Topic.String()).
			Str("phase", ev.To.String()).
			Str("session", ev.SessionID).
			Int("elapsed_on", ev.ElapsedOn).
			Int("since_motion", ev.SinceMotion).
			Uints16("duty", []uint16{uint16(d[0]), uint16(d[1]), uint16(d[2])}).
			Msg("event")
	}
}

func keyboard(r io.Reader, h *platform.Host, log logx.Zerolog, quit func()) {
	var pressed, motionOn bool
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "b":
			pressed = !pressed
			h.PressButton(pressed)
			log.Info("button", "pressed", pressed)
		case "m":
			motionOn = !motionOn
			h.SetMotion(motionOn)
			log.Info("pir", "motion", motionOn)
		case "s":
			d := h.Duties()
			log.Info("strip", "red", int(d[0]), "green", int(d[1]), "blue", int(d[2]), "led", h.LEDOn())
		case "q":
			quit()
			return
		}
	}
}
