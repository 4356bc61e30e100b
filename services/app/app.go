// Package app picks and runs the board program named by the config mode.
package app

import (
	"context"

	"motionlight/errcode"
	"motionlight/services/config"
	"motionlight/services/demo"
	"motionlight/services/hal"
	"motionlight/services/motion"
	"motionlight/services/sensor"
	"motionlight/x/logx"
	"motionlight/x/timex"
)

// Options are the optional collaborators of Run.
type Options struct {
	Sleeper  timex.Sleeper
	Log      logx.Logger
	Observer motion.Observer // motion mode only
}

// Program builds the runnable for cfg.Mode on b.
func Program(cfg config.Config, b *hal.Board, o Options) (demo.Program, error) {
	s := o.Sleeper
	if s == nil {
		s = timex.Real{}
	}
	log := logx.OrNop(o.Log)
	poll := sensor.NewPoller(b, cfg.PollInterval.Duration(), s)

	switch cfg.Mode {
	case config.ModeMotion:
		c := motion.New(b, motion.SettingsFrom(cfg), s, log)
		if o.Observer != nil {
			c.SetObserver(o.Observer)
		}
		return loop{c}, nil
	case config.ModeShowcase:
		var p *sensor.Poller
		if cfg.PIRWait > 0 {
			p = poll
		}
		return demo.NewShowcase(b, cfg.Color.RGB(), p, cfg.PIRWait.Duration(), s, log), nil
	case config.ModePIRTest:
		return demo.NewPIRTest(b, poll, cfg.PIRWait.Duration(), s, log), nil
	case config.ModeClassic:
		return demo.NewClassic(b, cfg.Color.RGB(), s, log), nil
	}
	return nil, errcode.New(errcode.UnknownMode, "app", string(cfg.Mode))
}

// Run builds the program for cfg and runs it until ctx ends.
func Run(ctx context.Context, cfg config.Config, b *hal.Board, o Options) error {
	p, err := Program(cfg, b, o)
	if err != nil {
		return err
	}
	logx.OrNop(o.Log).Info("starting", "mode", string(cfg.Mode))
	return demo.Run(ctx, p)
}

// loop runs the controller as one long Loop.
type loop struct{ c *motion.Controller }

func (l loop) Loop(ctx context.Context) error { return l.c.Run(ctx) }
