package demo

import (
	"context"
	"time"

	"motionlight/services/hal"
	"motionlight/services/heartbeat"
	"motionlight/services/sensor"
	"motionlight/x/logx"
	"motionlight/x/timex"
)

// PIRTest checks the sensor wiring: three slow blinks for a held button,
// ten fast blinks for motion within PIRWait.
type PIRTest struct {
	Poller  *sensor.Poller
	LED     hal.StatusLED
	PIRWait time.Duration
	Sleeper timex.Sleeper
	Log     logx.Logger
}

func NewPIRTest(b *hal.Board, poll *sensor.Poller, pirWait time.Duration, s timex.Sleeper, log logx.Logger) *PIRTest {
	return &PIRTest{Poller: poll, LED: b.LED, PIRWait: pirWait, Sleeper: s, Log: logx.OrNop(log)}
}

func (p *PIRTest) Loop(ctx context.Context) error {
	log := logx.OrNop(p.Log)

	r := p.Poller.Read()
	log.Info("pushbutton", "pressed", r.ButtonPressed)
	if r.ButtonPressed {
		log.Info("detected pushbutton press")
		if err := heartbeat.Blink(ctx, p.LED, 500*time.Millisecond, 500*time.Millisecond, 3, p.Sleeper); err != nil {
			return err
		}
	}

	log.Info("waiting for pir sensor", "max_wait", p.PIRWait)
	motion, err := p.Poller.WaitMotion(ctx, p.PIRWait)
	if err != nil {
		return err
	}
	if motion {
		log.Info("pir detected")
		if err := heartbeat.Blink(ctx, p.LED, 100*time.Millisecond, 100*time.Millisecond, 10, p.Sleeper); err != nil {
			return err
		}
	} else {
		log.Info("pir timeout")
	}

	return sleep(ctx, p.Sleeper, time.Second)
}
