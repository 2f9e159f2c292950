package slideconfirm

import "fyne.io/fyne/v2/data/binding"

// State holds the two observable values a slider exposes to its host: the
// current fill percentage (0-100) and the disabled gate. Both are plain Fyne
// bindings so a host can read, write and listen on them like any other bound
// value; the slider itself writes them during drags and during the settle
// sequence after a confirmed gesture.
type State struct {
	percentage binding.Float
	disabled   binding.Bool
}

func NewState() *State {
	return &State{
		percentage: binding.NewFloat(),
		disabled:   binding.NewBool(),
	}
}

// Percentage returns the current fill percentage.
func (s *State) Percentage() float64 {
	v, _ := s.percentage.Get()
	return v
}

// SetPercentage writes the fill percentage without animation.
func (s *State) SetPercentage(v float64) {
	_ = s.percentage.Set(v)
}

// Disabled reports whether new gestures are being rejected.
func (s *State) Disabled() bool {
	v, _ := s.disabled.Get()
	return v
}

// SetDisabled sets the gesture gate. The slider sets it true when a gesture
// confirms; clearing it again is the host's job (see SlideToConfirm.Reset).
func (s *State) SetDisabled(v bool) {
	_ = s.disabled.Set(v)
}

// PercentageBinding exposes the percentage for host-side listeners or
// widget binding (e.g. a progress readout next to the slider).
func (s *State) PercentageBinding() binding.Float {
	return s.percentage
}

// DisabledBinding exposes the disabled gate for host-side listeners.
func (s *State) DisabledBinding() binding.Bool {
	return s.disabled
}
