// Package loop drives the simulation from a clock and runs terminal
// sessions around it.
package loop

import (
	"context"
	"time"
)

// Stepper is the simulation a Driver advances.
type Stepper interface {
	Step(delta time.Duration)
	Over() bool
	Reset()
}

// Driver turns a stream of timestamps into simulation steps. It stops by
// itself once the stepper reports game over and stays stopped until armed
// again.
type Driver struct {
	stepper Stepper
	armed   bool
	seeded  bool
	prev    time.Duration
}

// NewDriver creates an armed driver for s.
func NewDriver(s Stepper) *Driver {
	return &Driver{stepper: s, armed: true}
}

// Frame handles one display refresh at timestamp ts. The first frame after
// arming only records ts, so its step has a zero delta. Returns false when
// the driver is stopped, including the frame in which the game ended.
func (d *Driver) Frame(ts time.Duration) bool {
	if !d.armed {
		return false
	}
	if !d.seeded {
		d.prev = ts
		d.seeded = true
	}
	delta := ts - d.prev
	d.prev = ts

	d.stepper.Step(delta)
	if d.stepper.Over() {
		d.Stop()
		return false
	}
	return true
}

// Stop halts stepping. Stopping a stopped driver is a no-op.
func (d *Driver) Stop() {
	d.armed = false
}

// Arm resumes stepping; the next frame seeds a fresh timestamp.
func (d *Driver) Arm() {
	d.armed = true
	d.seeded = false
}

// Armed reports whether frames currently produce steps.
func (d *Driver) Armed() bool {
	return d.armed
}

// Restart resets the simulation and arms the driver.
func (d *Driver) Restart() {
	d.stepper.Reset()
	d.Arm()
}

// Ticker calls a frame function at a fixed rate.
type Ticker struct {
	interval time.Duration
}

// NewTicker creates a ticker firing fps times per second.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{interval: time.Second / time.Duration(fps)}
}

// Run calls fn with the time elapsed since Run started, once per tick,
// until ctx is done or fn returns false. Ticks missed while fn runs are
// dropped rather than queued.
func (t *Ticker) Run(ctx context.Context, fn func(ts time.Duration) bool) error {
	start := time.Now()
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	if !fn(0) {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tick.C:
			if !fn(now.Sub(start)) {
				return nil
			}
		}
	}
}
