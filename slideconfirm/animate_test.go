package slideconfirm

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/data/binding"
)

func TestAnimateFloatReachesTarget(t *testing.T) {
	v := binding.NewFloat()
	_ = v.Set(10)

	stop := animateFloat(v, 100, 40*time.Millisecond)
	defer stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got, _ := v.Get(); got == 100 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	got, _ := v.Get()
	t.Errorf("value = %v, want 100 before deadline", got)
}

func TestAnimateFloatZeroDurationIsImmediate(t *testing.T) {
	v := binding.NewFloat()
	_ = v.Set(60)

	animateFloat(v, 0, 0)

	if got, _ := v.Get(); got != 0 {
		t.Errorf("value = %v, want 0 immediately", got)
	}
}

func TestAnimateFloatStopHaltsInterpolation(t *testing.T) {
	v := binding.NewFloat()

	stop := animateFloat(v, 100, 5*time.Second)
	time.Sleep(100 * time.Millisecond)
	stop()
	stop() // second call must be harmless

	time.Sleep(50 * time.Millisecond) // let any in-flight tick land
	first, _ := v.Get()
	time.Sleep(150 * time.Millisecond)
	second, _ := v.Get()

	if first != second {
		t.Errorf("value kept moving after stop: %v then %v", first, second)
	}
	if second >= 100 {
		t.Errorf("value = %v, expected the animation to be cut short", second)
	}
}
