package slideconfirm

import "time"

const (
	// DefaultThreshold is the percentage above which a released drag counts
	// as confirmed.
	DefaultThreshold = 50.0

	// DefaultDuration is how long the fill-to-100 settle animation runs, and
	// therefore how long after release the completion callback fires.
	DefaultDuration = 300 * time.Millisecond

	// resetDelay is the grace period between the completion callback and the
	// automatic return to the resting percentage.
	resetDelay = 200 * time.Millisecond
)

// Config describes one slider. The zero value is not useful; start from
// DefaultConfig and override what you need.
type Config struct {
	// MinPercentage is the resting floor the handle snaps back to. A
	// non-zero floor pre-fills the track.
	MinPercentage float64

	// Threshold is the confirmation cutoff. A gesture released at exactly
	// the threshold does not confirm.
	Threshold float64

	// Duration is the settle animation length. It also delays the
	// completion callback, which fires once the fill animation has
	// nominally finished.
	Duration time.Duration

	// ResetOnCompletion returns the handle to MinPercentage shortly after
	// the completion callback. When false the track stays full.
	ResetOnCompletion bool

	// OnCompletion is invoked at most once per confirmed gesture. May be
	// nil.
	OnCompletion func()
}

// DefaultConfig returns the standard slider settings: no floor, 50%
// threshold, 300ms settle, auto-reset.
func DefaultConfig() Config {
	return Config{
		Threshold:         DefaultThreshold,
		Duration:          DefaultDuration,
		ResetOnCompletion: true,
	}
}

// withDefaults fills zero Threshold/Duration so a partially filled literal
// behaves sensibly. Booleans are taken as given.
func (c Config) withDefaults() Config {
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
