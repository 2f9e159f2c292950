package slideconfirm

import (
	"time"

	"fyne.io/fyne/v2/data/binding"
)

// animTick is the interpolation step for settle animations. Small enough to
// look smooth at the 300ms default duration.
const animTick = 16 * time.Millisecond

// animateFloat drives the bound value from its current reading to target over
// the given duration. It returns a stop function to halt the interpolation
// early; calling stop after the animation finished is harmless.
func animateFloat(v binding.Float, target float64, duration time.Duration) func() {
	if duration <= 0 {
		_ = v.Set(target)
		return func() {}
	}
	start, _ := v.Get()
	startTime := time.Now()
	ticker := time.NewTicker(animTick)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				elapsed := time.Since(startTime)
				frac := float64(elapsed) / float64(duration)
				if frac > 1 {
					frac = 1
				}
				_ = v.Set(start + (target-start)*frac)
				if frac >= 1 {
					return
				}
			}
		}
	}()

	return func() {
		select {
		case <-done:
			return
		default:
			close(done)
		}
	}
}
