package slideconfirm

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SlideToConfirm is a draggable confirmation slider: the user drags the
// handle rightward along the track, and releasing it past the threshold
// fills the track and fires the configured completion callback. Releasing
// short of the threshold, or any leftward motion, snaps the handle back to
// the resting floor.
//
// After a confirmed gesture the slider disables itself and stays disabled;
// call Reset to re-arm it once the host has handled the completion.
type SlideToConfirm struct {
	widget.BaseWidget

	// Label is the prompt drawn on the track.
	Label string

	cfg     Config
	state   *State
	sched   *Scheduler
	tracker *Tracker

	dragDX float32 // cumulative translation of the active gesture
}

// New creates a slider with the given prompt. Zero Threshold/Duration in cfg
// fall back to the defaults; start from DefaultConfig to also get
// ResetOnCompletion.
func New(label string, cfg Config) *SlideToConfirm {
	cfg = cfg.withDefaults()
	s := &SlideToConfirm{Label: label, cfg: cfg, state: NewState()}
	s.sched = newScheduler(s.state, cfg)
	s.tracker = newTracker(s.state, cfg, s.sched)
	s.state.SetPercentage(cfg.MinPercentage)
	s.ExtendBaseWidget(s)
	return s
}

// Percentage returns the current fill percentage.
func (s *SlideToConfirm) Percentage() float64 { return s.state.Percentage() }

// Disabled reports whether the slider is rejecting gestures.
func (s *SlideToConfirm) Disabled() bool { return s.state.Disabled() }

// PercentageBinding exposes the percentage binding for host-side listeners.
func (s *SlideToConfirm) PercentageBinding() binding.Float { return s.state.PercentageBinding() }

// DisabledBinding exposes the disabled binding for host-side listeners.
func (s *SlideToConfirm) DisabledBinding() binding.Bool { return s.state.DisabledBinding() }

// Reset re-arms the slider: cancels any pending settle work, clears the
// disabled gate and returns the handle to the resting floor.
func (s *SlideToConfirm) Reset() {
	s.sched.Cancel()
	s.state.SetDisabled(false)
	s.state.SetPercentage(s.cfg.MinPercentage)
}

// Dragged feeds pointer motion into the tracker. Fyne reports per-event
// deltas, so the cumulative gesture translation is accumulated here. The
// track width is re-read from the current widget size on every event.
func (s *SlideToConfirm) Dragged(ev *fyne.DragEvent) {
	if s.state.Disabled() {
		return
	}
	s.dragDX += ev.Dragged.DX
	width := s.Size().Width
	if width <= 0 {
		return
	}
	s.tracker.OnDragChanged(DragSample{
		TranslationX: s.dragDX,
		LocationX:    ev.Position.X,
	}, width)
}

// DragEnd closes the active gesture and lets the scheduler evaluate it.
func (s *SlideToConfirm) DragEnd() {
	s.dragDX = 0
	s.tracker.OnDragEnded()
}

// Tapped swallows taps so they do not fall through to objects behind the
// track; only dragging moves the handle.
func (s *SlideToConfirm) Tapped(*fyne.PointEvent) {}

func (s *SlideToConfirm) MinSize() fyne.Size {
	s.ExtendBaseWidget(s)
	return s.BaseWidget.MinSize()
}

func (s *SlideToConfirm) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	track.CornerRadius = trackCorner
	fill := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	fill.CornerRadius = trackCorner
	handle := canvas.NewCircle(theme.Color(theme.ColorNameBackground))
	label := canvas.NewText(s.Label, theme.Color(theme.ColorNameForeground))
	label.Alignment = fyne.TextAlignCenter

	r := &sliderRenderer{
		slider: s,
		track:  track,
		fill:   fill,
		handle: handle,
		label:  label,
	}
	r.listener = binding.NewDataListener(func() { s.Refresh() })
	s.state.PercentageBinding().AddListener(r.listener)
	s.state.DisabledBinding().AddListener(r.listener)
	return r
}

const (
	trackCorner  = 8
	handleInset  = 4
	sliderMinW   = 220
	sliderMinH   = 44
	labelPadding = 12
)

type sliderRenderer struct {
	slider *SlideToConfirm

	track  *canvas.Rectangle
	fill   *canvas.Rectangle
	handle *canvas.Circle
	label  *canvas.Text

	listener binding.DataListener
}

func (r *sliderRenderer) MinSize() fyne.Size {
	min := fyne.MeasureText(r.label.Text, r.label.TextSize, r.label.TextStyle)
	w := min.Width + 2*labelPadding
	if w < sliderMinW {
		w = sliderMinW
	}
	return fyne.NewSize(w, sliderMinH)
}

func (r *sliderRenderer) Layout(size fyne.Size) {
	pct := r.slider.Percentage()

	r.track.Resize(size)
	r.track.Move(fyne.NewPos(0, 0))

	d := size.Height - 2*handleInset
	travel := size.Width - 2*handleInset - d
	if travel < 0 {
		travel = 0
	}
	hx := handleInset + travel*float32(pct)/100

	// The fill extends to the trailing edge of the handle so the track
	// reads as "filled up to here".
	r.fill.Resize(fyne.NewSize(hx+d+handleInset, size.Height))
	r.fill.Move(fyne.NewPos(0, 0))

	r.handle.Resize(fyne.NewSize(d, d))
	r.handle.Move(fyne.NewPos(hx, handleInset))

	labelH := r.label.MinSize().Height
	r.label.Resize(fyne.NewSize(size.Width, labelH))
	r.label.Move(fyne.NewPos(0, (size.Height-labelH)/2))
}

func (r *sliderRenderer) Refresh() {
	if r.slider.Disabled() {
		r.fill.FillColor = theme.Color(theme.ColorNameDisabled)
	} else {
		r.fill.FillColor = theme.Color(theme.ColorNamePrimary)
	}
	r.track.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.handle.FillColor = theme.Color(theme.ColorNameBackground)
	r.label.Text = r.slider.Label
	r.label.Color = theme.Color(theme.ColorNameForeground)

	r.Layout(r.slider.Size())
	canvas.Refresh(r.slider)
}

func (r *sliderRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.fill, r.label, r.handle}
}

func (r *sliderRenderer) Destroy() {
	r.slider.state.PercentageBinding().RemoveListener(r.listener)
	r.slider.state.DisabledBinding().RemoveListener(r.listener)
}
