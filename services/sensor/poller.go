// Package sensor samples the pushbutton and the PIR input. Reads are point
// samples: nothing is latched or debounced between calls.
package sensor

import (
	"context"
	"time"

	"motionlight/services/hal"
	"motionlight/types"
	"motionlight/x/timex"
)

// DefaultInterval is the polling cadence when none is configured.
const DefaultInterval = 250 * time.Millisecond

type Poller struct {
	Button hal.Input // asserted == pressed
	PIR    hal.Input // asserted == motion

	Interval time.Duration
	Sleeper  timex.Sleeper

	// OnPoll runs after every sleep that did not end in a trigger.
	OnPoll func()
}

// NewPoller reads the board's button and PIR every interval.
func NewPoller(b *hal.Board, interval time.Duration, s timex.Sleeper) *Poller {
	return &Poller{Button: b.Button, PIR: b.PIR, Interval: interval, Sleeper: s}
}

// Read samples both inputs once.
func (p *Poller) Read() types.SensorReading {
	return types.SensorReading{
		ButtonPressed: p.Button.Asserted(),
		Motion:        p.PIR.Asserted(),
	}
}

// WaitTrigger blocks until the button is pressed or motion is seen. A press
// wins when both read true in the same sample. It returns TriggerNone and
// the context error if ctx ends first.
func (p *Poller) WaitTrigger(ctx context.Context) (types.Trigger, error) {
	for {
		r := p.Read()
		switch {
		case r.ButtonPressed:
			return types.TriggerButton, nil
		case r.Motion:
			return types.TriggerMotion, nil
		}
		if err := p.pause(ctx); err != nil {
			return types.TriggerNone, err
		}
	}
}

// WaitMotion polls the PIR until it reads motion or maxWait has been spent
// sleeping. Elapsed time is counted in whole intervals, so the wait is
// rounded up to the next interval.
func (p *Poller) WaitMotion(ctx context.Context, maxWait time.Duration) (bool, error) {
	step := p.interval()
	for elapsed := time.Duration(0); elapsed < maxWait; elapsed += step {
		if p.PIR.Asserted() {
			return true, nil
		}
		if err := p.pause(ctx); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (p *Poller) interval() time.Duration {
	if p.Interval <= 0 {
		return DefaultInterval
	}
	return p.Interval
}

func (p *Poller) pause(ctx context.Context) error {
	s := p.Sleeper
	if s == nil {
		s = timex.Real{}
	}
	if !s.Sleep(ctx, p.interval()) {
		if err := ctx.Err(); err != nil {
			return err
		}
		return context.Canceled
	}
	if p.OnPoll != nil {
		p.OnPoll()
	}
	return nil
}
