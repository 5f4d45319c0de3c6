package controls

// Event is the marker interface for raw input delivered by an Element.
type Event interface {
	isEvent()
}

// PointerEventType identifies the phase of a pointer event.
type PointerEventType uint8

const (
	PointerDown   PointerEventType = iota // contact started or button pressed
	PointerMove                           // position changed
	PointerUp                             // contact ended or button released
	PointerCancel                         // the platform aborted the stream
	PointerLeave                          // the pointer left the element
)

// PointerEvent is a single sample of one pointer stream. X and Y are in
// element pixels with the origin at the top-left.
type PointerEvent struct {
	Type        PointerEventType
	ID          int
	PointerType PointerType
	Button      MouseButton
	Modifiers   KeyModifiers
	X, Y        float64
}

// KeyEventType identifies a key transition.
type KeyEventType uint8

const (
	KeyDown KeyEventType = iota // key pressed (or auto-repeated)
	KeyUp                       // key released
)

// KeyEvent reports a key transition. Code is the physical key name, e.g.
// "ArrowUp" or "KeyA".
type KeyEvent struct {
	Type      KeyEventType
	Code      string
	Repeat    bool
	Modifiers KeyModifiers
}

// WheelEvent reports scrolling. Positive DeltaY scrolls down (away from the
// user), matching the DOM convention.
type WheelEvent struct {
	DeltaX, DeltaY float64
	X, Y           float64
	Modifiers      KeyModifiers
}

// ContextMenuEvent reports a context-menu request (usually a right click).
type ContextMenuEvent struct {
	X, Y float64
}

func (PointerEvent) isEvent()     {}
func (KeyEvent) isEvent()         {}
func (WheelEvent) isEvent()       {}
func (ContextMenuEvent) isEvent() {}

// ControlEvent is a notification published by a Tracker.
type ControlEvent struct {
	Type     EventType
	Controls *Tracker
}

// EntityStore is the interface for optional ECS integration.
// When set on a Tracker, every published ControlEvent is forwarded to it.
type EntityStore interface {
	EmitEvent(event ControlEvent)
}

// --- Handler registry ---

type controlHandler struct {
	id uint32
	fn func(ControlEvent)
}

type handlerRegistry struct {
	handlers [eventTypeCount][]controlHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered notification callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// Removing twice, or removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	h.reg.handlers[h.event] = removeControlHandler(h.reg.handlers[h.event], h.id)
}

func (r *handlerRegistry) add(event EventType, fn func(ControlEvent)) CallbackHandle {
	if event >= eventTypeCount {
		return CallbackHandle{}
	}
	r.nextID++
	id := r.nextID
	r.handlers[event] = append(r.handlers[event], controlHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

func (r *handlerRegistry) fire(ev ControlEvent) {
	if ev.Type >= eventTypeCount {
		return
	}
	for _, h := range r.handlers[ev.Type] {
		h.fn(ev)
	}
}

func removeControlHandler(s []controlHandler, id uint32) []controlHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = controlHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}
