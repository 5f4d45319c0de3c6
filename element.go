package controls

// Element is the input surface a Tracker listens on: a window, a canvas or a
// viewport rectangle inside one.
type Element interface {
	// Size returns the element size in pixels.
	Size() (width, height float64)
	// Listen registers fn for every raw event and returns a function that
	// unregisters it.
	Listen(fn func(Event)) (cancel func())

	SetPointerCapture(id int)
	ReleasePointerCapture(id int)
	Focus()

	// Focusable reports whether the element can receive key events.
	Focusable() bool
	SetFocusable(focusable bool)
	// TouchGestures reports whether the platform's own touch gestures
	// (scrolling, pinch zoom) are active on the element.
	TouchGestures() bool
	SetTouchGestures(enabled bool)
}

type listenerEntry struct {
	id int
	fn func(Event)
}

// surface implements the bookkeeping half of Element. EbitenElement and
// VirtualElement embed it and only differ in where events come from.
type surface struct {
	width, height float64

	listeners    []listenerEntry
	nextListener int
	captured     map[int]bool

	focused       bool
	focusable     bool
	touchGestures bool
}

func newSurface(width, height float64) surface {
	return surface{
		width:         width,
		height:        height,
		captured:      make(map[int]bool),
		touchGestures: true,
	}
}

// Size returns the element size in pixels.
func (s *surface) Size() (float64, float64) {
	return s.width, s.height
}

// SetSize changes the element size, e.g. from ebiten.Game.Layout.
func (s *surface) SetSize(width, height float64) {
	s.width = width
	s.height = height
}

// Listen registers fn for every event emitted by the element.
func (s *surface) Listen(fn func(Event)) func() {
	s.nextListener++
	id := s.nextListener
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i := range s.listeners {
			if s.listeners[i].id == id {
				copy(s.listeners[i:], s.listeners[i+1:])
				s.listeners[len(s.listeners)-1] = listenerEntry{}
				s.listeners = s.listeners[:len(s.listeners)-1]
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (s *surface) ListenerCount() int {
	return len(s.listeners)
}

// emit delivers e to every listener registered when emit was called.
func (s *surface) emit(e Event) {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		l.fn(e)
	}
}

// SetPointerCapture marks pointer id as captured by the element.
func (s *surface) SetPointerCapture(id int) {
	s.captured[id] = true
}

// ReleasePointerCapture clears the capture for pointer id.
func (s *surface) ReleasePointerCapture(id int) {
	delete(s.captured, id)
}

// HasPointerCapture reports whether pointer id is captured.
func (s *surface) HasPointerCapture(id int) bool {
	return s.captured[id]
}

// CapturedCount returns the number of captured pointers.
func (s *surface) CapturedCount() int {
	return len(s.captured)
}

// Focus gives the element keyboard focus.
func (s *surface) Focus() {
	s.focused = true
}

// Focused reports whether Focus has been called.
func (s *surface) Focused() bool {
	return s.focused
}

// Focusable reports whether the element accepts keyboard focus.
func (s *surface) Focusable() bool { return s.focusable }

// SetFocusable controls whether the element accepts keyboard focus.
func (s *surface) SetFocusable(focusable bool) { s.focusable = focusable }

// TouchGestures reports whether platform touch gestures are active.
func (s *surface) TouchGestures() bool { return s.touchGestures }

// SetTouchGestures enables or disables platform touch gestures.
func (s *surface) SetTouchGestures(enabled bool) { s.touchGestures = enabled }
