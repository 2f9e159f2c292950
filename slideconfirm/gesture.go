package slideconfirm

// DragSample is one gesture-update tick from the pointer layer.
type DragSample struct {
	// TranslationX is the cumulative signed horizontal delta since the
	// gesture started. Only its sign matters to the tracker.
	TranslationX float32

	// LocationX is the absolute pointer position within the track.
	LocationX float32
}

// Tracker converts drag samples into percentage writes. It has no notion of
// gesture identity; the last applied sample wins.
type Tracker struct {
	state *State
	cfg   Config
	sched *Scheduler
}

func newTracker(state *State, cfg Config, sched *Scheduler) *Tracker {
	return &Tracker{state: state, cfg: cfg, sched: sched}
}

// OnDragChanged applies one drag sample. Rightward motion tracks the pointer,
// clamped to [MinPercentage, 100]; leftward motion always cancels progress by
// snapping to the floor. trackWidth must be positive; it is re-read per event
// because the host layout may resize the track at any time.
func (t *Tracker) OnDragChanged(sample DragSample, trackWidth float32) {
	switch {
	case sample.TranslationX > 0:
		if t.state.Percentage() >= t.cfg.MinPercentage {
			raw := float64(sample.LocationX) / float64(trackWidth) * 100
			t.state.SetPercentage(clamp(raw, t.cfg.MinPercentage, 100))
		} else {
			// Below the floor (external write raced us): recover to it.
			t.state.SetPercentage(t.cfg.MinPercentage)
		}
	case sample.TranslationX < 0:
		t.state.SetPercentage(t.cfg.MinPercentage)
	}
	// TranslationX == 0 changes nothing.
}

// OnDragEnded hands the finished gesture to the completion scheduler.
func (t *Tracker) OnDragEnded() {
	t.sched.OnGestureEnd()
}
