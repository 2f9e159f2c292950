package slideconfirm

import (
	"math"
	"testing"
)

func floorConfig(floor float64) Config {
	cfg := DefaultConfig()
	cfg.MinPercentage = floor
	return cfg
}

func TestTrackerOnDragChanged(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		start      float64
		sample     DragSample
		trackWidth float32
		want       float64
	}{
		{"rightward tracks pointer", DefaultConfig(), 0, DragSample{TranslationX: 40, LocationX: 160}, 200, 80},
		{"rightward clamps at 100", DefaultConfig(), 50, DragSample{TranslationX: 10, LocationX: 400}, 200, 100},
		{"rightward clamps at floor", floorConfig(25), 25, DragSample{TranslationX: 3, LocationX: 10}, 200, 25},
		{"rightward above floor tracks", floorConfig(25), 25, DragSample{TranslationX: 12, LocationX: 60}, 200, 30},
		{"below floor recovers to floor", floorConfig(25), 10, DragSample{TranslationX: 5, LocationX: 180}, 200, 25},
		{"leftward snaps to floor", floorConfig(25), 80, DragSample{TranslationX: -5, LocationX: 150}, 200, 25},
		{"leftward snaps to zero floor", DefaultConfig(), 60, DragSample{TranslationX: -1, LocationX: 120}, 200, 0},
		{"zero translation is a no-op", DefaultConfig(), 42, DragSample{TranslationX: 0, LocationX: 199}, 200, 42},
		{"narrow track still clamps", DefaultConfig(), 0, DragSample{TranslationX: 2, LocationX: 90}, 80, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			state.SetPercentage(tt.start)
			tracker := newTracker(state, tt.cfg, newScheduler(state, tt.cfg))

			tracker.OnDragChanged(tt.sample, tt.trackWidth)

			if got := state.Percentage(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("percentage after sample = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackerRepeatedZeroSamplesAreIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	state.SetPercentage(37.5)
	tracker := newTracker(state, cfg, newScheduler(state, cfg))

	for i := 0; i < 10; i++ {
		tracker.OnDragChanged(DragSample{TranslationX: 0, LocationX: 150}, 200)
	}
	if got := state.Percentage(); got != 37.5 {
		t.Errorf("percentage after zero-translation samples = %v, want 37.5", got)
	}
	if state.Disabled() {
		t.Error("zero-translation samples must not disable the slider")
	}
}

func TestTrackerLastSampleWins(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	tracker := newTracker(state, cfg, newScheduler(state, cfg))

	samples := []DragSample{
		{TranslationX: 10, LocationX: 40},
		{TranslationX: 30, LocationX: 120},
		{TranslationX: 50, LocationX: 90},
	}
	for _, sample := range samples {
		tracker.OnDragChanged(sample, 200)
	}
	if got := state.Percentage(); got != 45 {
		t.Errorf("percentage after sample stream = %v, want 45 (last sample)", got)
	}
}
