package kitty

import "time"

// Pacer tracks frame timing: a monotonically increasing frame counter, the
// wall-clock cost of the most recent render pass, and a set of named one-shot
// timers for caller-driven periodic logic.
//
// The FPS-cap delay subtracts the measured render cost from the target frame
// interval before sleeping, so a slow frame eats into its own delay instead
// of stretching the frame beyond the cap.
type Pacer struct {
	frame      uint64
	lastRender time.Duration
	lastFrame  time.Time
	delta      time.Duration
	timers     map[string]time.Time

	// Clock hooks, replaced in tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a pacer using the system clock.
func NewPacer() *Pacer {
	return &Pacer{
		timers: make(map[string]time.Time),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// FrameNumber returns the number of completed render passes.
func (p *Pacer) FrameNumber() uint64 {
	return p.frame
}

// FrameTime returns the wall-clock duration of the most recently completed
// render pass.
func (p *Pacer) FrameTime() time.Duration {
	return p.lastRender
}

// DeltaTime returns the wall-clock time between the completion of the last
// two render passes.
func (p *Pacer) DeltaTime() time.Duration {
	return p.delta
}

// beginFrame marks the start of a render pass and returns its start time.
func (p *Pacer) beginFrame() time.Time {
	return p.now()
}

// endFrame records a completed render pass that started at start.
func (p *Pacer) endFrame(start time.Time) {
	end := p.now()
	p.lastRender = end.Sub(start)
	if !p.lastFrame.IsZero() {
		p.delta = end.Sub(p.lastFrame)
	}
	p.lastFrame = end
	p.frame++
}

// Delay sleeps for the remainder of the frame interval implied by fps,
// discounting the cost of the last render pass. fps values below 1 sleep
// nothing.
func (p *Pacer) Delay(fps int) {
	if fps < 1 {
		return
	}
	remaining := time.Second/time.Duration(fps) - p.lastRender
	if remaining > 0 {
		p.sleep(remaining)
	}
}

// SetTimer arms (or re-arms) the named timer at the current time.
func (p *Pacer) SetTimer(name string) {
	p.timers[name] = p.now()
}

// TimerTripped reports whether at least d has elapsed since the named timer
// was last armed. A timer that was never armed has not tripped.
func (p *Pacer) TimerTripped(name string, d time.Duration) bool {
	armed, ok := p.timers[name]
	if !ok {
		return false
	}
	return p.now().Sub(armed) >= d
}
