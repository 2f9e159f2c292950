package slideconfirm

import (
	"sync"
	"time"

	"fyne.io/fyne/v2/data/binding"
)

// Scheduler decides, when a gesture ends, whether it confirmed and runs the
// resulting settle sequence: disable further gestures, fill to 100 over
// cfg.Duration, fire the completion callback once the fill has nominally
// finished, then optionally ease back to the floor after a short grace
// period.
//
// All scheduling is issued synchronously from OnGestureEnd; the timers fire
// later on their own goroutines. Percentage writes go through the binding,
// which serializes them, and the scheduler's own bookkeeping is guarded by a
// mutex, so gesture events and timer callbacks may interleave safely.
type Scheduler struct {
	state *State
	cfg   Config

	mu       sync.Mutex
	timers   []*time.Timer
	stopAnim func()

	// test seams, package-internal
	animate   func(v binding.Float, target float64, d time.Duration) func()
	afterFunc func(d time.Duration, f func()) *time.Timer
}

func newScheduler(state *State, cfg Config) *Scheduler {
	return &Scheduler{
		state:     state,
		cfg:       cfg,
		animate:   animateFloat,
		afterFunc: time.AfterFunc,
	}
}

// OnGestureEnd evaluates the released gesture. Calls made while a
// confirmation is already in flight (disabled set) are ignored, so duplicate
// or out-of-order gesture-end events cannot restart the sequence.
func (s *Scheduler) OnGestureEnd() {
	if s.state.Disabled() {
		return
	}
	if s.state.Percentage() <= s.cfg.Threshold {
		// Not confirmed: ease back to the resting floor.
		s.startAnim(s.cfg.MinPercentage)
		return
	}

	// Confirmed. Gate further gestures before anything is animated.
	s.state.SetDisabled(true)
	s.startAnim(100)

	s.schedule(s.cfg.Duration, func() {
		if cb := s.cfg.OnCompletion; cb != nil {
			cb()
		}
	})
	if s.cfg.ResetOnCompletion {
		s.schedule(s.cfg.Duration+resetDelay, func() {
			s.startAnim(s.cfg.MinPercentage)
		})
	}
}

// Cancel stops any running settle animation and all pending timers. The
// settle sequence never cancels itself; this exists for hosts that tear the
// slider down or re-arm it mid-sequence.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	timers := s.timers
	stop := s.stopAnim
	s.timers = nil
	s.stopAnim = nil
	s.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
	if stop != nil {
		stop()
	}
}

func (s *Scheduler) startAnim(target float64) {
	s.mu.Lock()
	if s.stopAnim != nil {
		s.stopAnim()
	}
	s.stopAnim = s.animate(s.state.percentage, target, s.cfg.Duration)
	s.mu.Unlock()
}

func (s *Scheduler) schedule(d time.Duration, f func()) {
	s.mu.Lock()
	s.timers = append(s.timers, s.afterFunc(d, f))
	s.mu.Unlock()
}
