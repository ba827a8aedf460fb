package railview

// ScrollState is one snapshot of the scroll surface: total content height,
// visible height, and the current offset from the top.
type ScrollState struct {
	Top    float64
	Height float64
	Client float64
}

// Extent is the scrollable range. Zero or less means the surface cannot
// scroll at all.
func (s ScrollState) Extent() float64 {
	return s.Height - s.Client
}

// ScrollMapper converts scroll offsets into rail progress. It holds no
// timer or velocity state; every update is a pure function of the event
// that caused it.
type ScrollMapper struct {
	viewport *Viewport
	readout  func(progress float64)
}

// NewScrollMapper binds a mapper to its viewport. readout, when not nil,
// mirrors each applied progress value for display. It is never called for
// skipped events.
func NewScrollMapper(viewport *Viewport, readout func(float64)) *ScrollMapper {
	return &ScrollMapper{viewport: viewport, readout: readout}
}

// OnScroll maps one scroll event onto the rail. An extent of zero or less
// would divide away into NaN, so such events are skipped whole: no
// progress write, no reconcile, no readout.
func (m *ScrollMapper) OnScroll(s ScrollState) {
	if m.viewport.State() == StateDisposed {
		return
	}
	extent := s.Extent()
	if extent <= 0 {
		return
	}
	m.viewport.SetProgress(s.Top / extent)
	m.viewport.Reconcile()
	if m.readout != nil {
		m.readout(m.viewport.Progress())
	}
}
