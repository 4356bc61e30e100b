// services/hal/platform/fakes_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"sync"

	"motionlight/types"
)

// ----------------------------- PWM (host) ------------------------------------

// FakePWM records duty cycle writes.
type FakePWM struct {
	mu      sync.Mutex
	duty    types.DutyCycle
	writes  int
	record  bool
	history []types.DutyCycle
}

func (p *FakePWM) Set(d types.DutyCycle) {
	p.mu.Lock()
	p.duty = d
	p.writes++
	if p.record {
		p.history = append(p.history, d)
	}
	p.mu.Unlock()
}

// Duty returns the last written value.
func (p *FakePWM) Duty() types.DutyCycle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duty
}

// Writes returns how many times Set was called.
func (p *FakePWM) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// Record turns write history on or off and clears it.
func (p *FakePWM) Record(on bool) {
	p.mu.Lock()
	p.record = on
	p.history = nil
	p.mu.Unlock()
}

// History returns a copy of the recorded writes.
func (p *FakePWM) History() []types.DutyCycle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]types.DutyCycle(nil), p.history...)
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin is a settable level usable as input or output.
type FakePin struct {
	mu    sync.RWMutex
	level bool
	sets  int
}

func NewFakePin(level bool) *FakePin { return &FakePin{level: level} }

func (p *FakePin) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.sets++
	p.mu.Unlock()
}

func (p *FakePin) Toggle() {
	p.mu.Lock()
	p.level = !p.level
	p.sets++
	p.mu.Unlock()
}

// Sets counts writes, including toggles.
func (p *FakePin) Sets() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sets
}

// ----------------------------- Pixels (host) ---------------------------------

// FakePixels keeps the last frame shown.
type FakePixels struct {
	mu     sync.Mutex
	n      int
	frame  []types.Color
	frames int
}

func NewFakePixels(n int) *FakePixels {
	return &FakePixels{n: n, frame: make([]types.Color, n)}
}

func (p *FakePixels) Len() int { return p.n }

func (p *FakePixels) Show(px []types.Color) {
	p.mu.Lock()
	copy(p.frame, px)
	p.frames++
	p.mu.Unlock()
}

// Frame returns a copy of the last frame.
func (p *FakePixels) Frame() []types.Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]types.Color(nil), p.frame...)
}

// Frames counts Show calls.
func (p *FakePixels) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}
