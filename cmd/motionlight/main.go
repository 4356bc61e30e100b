//go:build rp2040

package main

import (
	"context"
	"time"

	"motionlight/services/app"
	"motionlight/services/config"
	"motionlight/services/hal/platform"
	"motionlight/x/logx"
)

// Embedded profile to run; override with
// -ldflags "-X main.profile=pir-only".
var profile = "default"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	cfg, err := config.Profile(profile)
	if err != nil {
		println("Warn: profile", profile, "rejected:", err.Error())
		cfg = config.Default()
	}

	log := logx.NewPrint(platform.Console(cfg.Log), logx.ParseLevel(cfg.Log.Level))
	log.Info("config", "profile", profile, "mode", string(cfg.Mode), "color", cfg.Color.RGB().Hex())

	board, err := platform.NewBoard(cfg.Pins)
	if err != nil {
		halt(log, err)
	}

	if err := app.Run(context.Background(), cfg, board, app.Options{Log: log}); err != nil {
		halt(log, err)
	}
}

// halt reports err forever; there is nothing to recover to on the board.
func halt(log logx.Logger, err error) {
	for {
		log.Warn("halted", "err", err)
		time.Sleep(5 * time.Second)
	}
}
