package listkit

// ScrollRange is the vertical scrollbar a List drives. Hosts supply their
// own implementation or use Scrollbar. The value is the index of the first
// visible row.
type ScrollRange interface {
	SetRange(min, max int)
	SetPageStep(n int)
	SetValue(v int)
	Value() int
	// OnValueChanged registers fn to run whenever the value changes,
	// whether from SetValue, SetRange clamping, or user interaction.
	OnValueChanged(fn func(value int))
	SetVisible(visible bool)
}

// pager is implemented by scroll ranges that know how to react to a press
// on their track.
type pager interface {
	PageToward(y int, track Rect) bool
}

// Scrollbar is a toolkit-independent ScrollRange. It keeps the value
// clamped to its range and exposes the thumb geometry hosts paint.
type Scrollbar struct {
	min, max   int
	pageStep   int
	singleStep int
	value      int
	visible    bool
	minThumb   int
	listeners  []func(int)
}

// NewScrollbar creates an empty, hidden scrollbar with a single step of one.
func NewScrollbar() *Scrollbar {
	return &Scrollbar{singleStep: 1, minThumb: 8}
}

func (s *Scrollbar) SetRange(min, max int) {
	if max < min {
		max = min
	}
	s.min, s.max = min, max
	s.setValue(s.value)
}

func (s *Scrollbar) SetPageStep(n int) {
	s.pageStep = max(0, n)
}

func (s *Scrollbar) SetValue(v int) {
	s.setValue(v)
}

func (s *Scrollbar) setValue(v int) {
	v = max(s.min, min(v, s.max))
	if v == s.value {
		return
	}
	s.value = v
	for _, fn := range s.listeners {
		fn(v)
	}
}

func (s *Scrollbar) Value() int {
	return s.value
}

func (s *Scrollbar) OnValueChanged(fn func(value int)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Scrollbar) SetVisible(visible bool) {
	s.visible = visible
}

func (s *Scrollbar) Visible() bool   { return s.visible }
func (s *Scrollbar) Minimum() int    { return s.min }
func (s *Scrollbar) Maximum() int    { return s.max }
func (s *Scrollbar) PageStep() int   { return s.pageStep }
func (s *Scrollbar) SingleStep() int { return s.singleStep }

// SetMinThumb sets the smallest thumb length ThumbRect returns. Terminal
// hosts use one cell.
func (s *Scrollbar) SetMinThumb(n int) {
	s.minThumb = max(1, n)
}

// ThumbRect returns the thumb inside track. The thumb length is
// proportional to the page step over the total scrollable extent.
func (s *Scrollbar) ThumbRect(track Rect) Rect {
	span := s.max - s.min
	total := span + s.pageStep
	if total <= 0 || track.H <= 0 {
		return track
	}

	h := track.H * s.pageStep / total
	h = max(min(s.minThumb, track.H), min(h, track.H))

	y := track.Y
	if span > 0 {
		y += (track.H - h) * (s.value - s.min) / span
	}
	return Rect{X: track.X, Y: y, W: track.W, H: h}
}

// PageToward moves one page toward y when y falls on the track outside
// the thumb. It reports whether the value changed.
func (s *Scrollbar) PageToward(y int, track Rect) bool {
	before := s.value
	thumb := s.ThumbRect(track)
	step := max(1, s.pageStep)
	switch {
	case y < thumb.Y:
		s.setValue(s.value - step)
	case y >= thumb.Y+thumb.H:
		s.setValue(s.value + step)
	}
	return s.value != before
}
