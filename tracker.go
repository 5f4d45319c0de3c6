package controls

import (
	"slices"
	"time"
)

const (
	// simulationEpsilon is the movement, in pixels per frame, below which an
	// inertial pointer comes to rest.
	simulationEpsilon = 0.05

	defaultDampingFactor = 0.05
)

// GestureHandler receives the canonical lifecycle calls of a Tracker. Embed
// NopGestureHandler to implement only the callbacks a policy needs.
type GestureHandler interface {
	// OnTrackedPointerDown is called after pointer joined the tracked set.
	OnTrackedPointerDown(pointer *Pointer, pointers []*Pointer)
	// OnTrackedPointerMove is called after pointer moved. center is the
	// centroid of pointers, or the pointer itself during inertial motion.
	OnTrackedPointerMove(pointer *Pointer, pointers []*Pointer, center PointerView)
	// OnTrackedPointerHover is called when an untracked pointer moves over
	// the element.
	OnTrackedPointerHover(pointer *Pointer, pointers []*Pointer)
	// OnTrackedPointerUp is called after pointer left the tracked set.
	OnTrackedPointerUp(pointer *Pointer, pointers []*Pointer)
	OnTrackedKeyDown(code string, keys []string)
	OnTrackedKeyUp(code string, keys []string)
	OnTrackedKeyChange(code string, keys []string)
}

// EventHandler is implemented by gesture handlers that also want every raw
// event, before the tracker processes it (wheel, context menu, key repeat).
type EventHandler interface {
	HandleEvent(e Event)
}

// NopGestureHandler implements GestureHandler with no-ops.
type NopGestureHandler struct{}

func (NopGestureHandler) OnTrackedPointerDown(*Pointer, []*Pointer)              {}
func (NopGestureHandler) OnTrackedPointerMove(*Pointer, []*Pointer, PointerView) {}
func (NopGestureHandler) OnTrackedPointerHover(*Pointer, []*Pointer)             {}
func (NopGestureHandler) OnTrackedPointerUp(*Pointer, []*Pointer)                {}
func (NopGestureHandler) OnTrackedKeyDown(string, []string)                      {}
func (NopGestureHandler) OnTrackedKeyUp(string, []string)                        {}
func (NopGestureHandler) OnTrackedKeyChange(string, []string)                    {}

// Tracker turns the raw events of one Element into tracked pointers and
// keys, and reports them to a GestureHandler. It owns pointer capture,
// inertial continuation after release, and the listener lifecycle tied to
// SetEnabled.
type Tracker struct {
	// Camera is used to project pointers into the world.
	Camera *Camera
	// Element delivers input.
	Element Element

	// EnableDamping continues the last pointer's motion after release,
	// decaying by DampingFactor per 60 Hz frame.
	EnableDamping bool
	DampingFactor float64

	handler GestureHandler
	anim    *AnimationManager

	enabled   bool
	connected bool
	disposed  bool
	unlisten  func()

	pointers  []*Pointer
	hover     *Pointer
	simulated *Pointer
	center    CenterPointer
	keys      []string

	animations []*Animation
	simulation *Animation

	handlers handlerRegistry
	store    EntityStore
	stats    gestureStats
}

// NewTracker creates an enabled tracker listening on element. anim is the
// application's shared AnimationManager; handler receives the lifecycle
// calls and may be nil.
func NewTracker(camera *Camera, element Element, anim *AnimationManager, handler GestureHandler) *Tracker {
	if camera == nil {
		logger.Warn("tracker: camera is required")
	}
	if element == nil {
		logger.Warn("tracker: element is required, input will not be tracked")
	}
	if anim == nil {
		logger.Warn("tracker: no animation manager, using a private one")
		anim = NewAnimationManager()
	}
	if handler == nil {
		handler = NopGestureHandler{}
	}
	t := &Tracker{
		Camera:        camera,
		Element:       element,
		DampingFactor: defaultDampingFactor,
		handler:       handler,
		anim:          anim,
		enabled:       true,
	}
	t.simulation = NewAnimation(t.simulate)
	t.connect()
	return t
}

// Enabled reports whether the tracker processes input.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// SetEnabled attaches or detaches the tracker. Disabling releases every
// pointer capture, stops every animation started through the tracker and
// forgets all pointers and keys.
func (t *Tracker) SetEnabled(enabled bool) {
	if t.disposed && enabled {
		logger.Warn("tracker: SetEnabled(true) after Dispose is ignored")
		return
	}
	if enabled == t.enabled {
		return
	}
	t.enabled = enabled
	if enabled {
		t.connect()
		t.Dispatch(EventEnabled)
	} else {
		t.disconnect()
		t.Dispatch(EventDisabled)
	}
}

// Dispose disables the tracker for good and publishes EventDispose.
func (t *Tracker) Dispose() {
	if t.disposed {
		return
	}
	t.SetEnabled(false)
	t.disposed = true
	t.Dispatch(EventDispose)
}

// Disposed reports whether Dispose has been called.
func (t *Tracker) Disposed() bool {
	return t.disposed
}

// Connected reports whether the tracker is listening on its element.
func (t *Tracker) Connected() bool {
	return t.connected
}

// Pointers returns the tracked pointers in press order. The returned slice
// MUST NOT be mutated.
func (t *Tracker) Pointers() []*Pointer {
	return t.pointers
}

// Keys returns the codes of the keys currently held, in press order. The
// returned slice MUST NOT be mutated.
func (t *Tracker) Keys() []string {
	return t.keys
}

// Center returns the centroid of the tracked pointers.
func (t *Tracker) Center() *CenterPointer {
	return &t.center
}

// HoverPointer returns the pointer hovering over the element, or nil.
func (t *Tracker) HoverPointer() *Pointer {
	return t.hover
}

// SimulatedPointer returns the pointer in inertial motion, or nil.
func (t *Tracker) SimulatedPointer() *Pointer {
	return t.simulated
}

// AnimationManager returns the manager animations are scheduled on.
func (t *Tracker) AnimationManager() *AnimationManager {
	return t.anim
}

// StartAnimation queues a on the shared manager. It is stopped
// automatically when the tracker is disabled.
func (t *Tracker) StartAnimation(a *Animation) {
	t.anim.Add(a)
	if !slices.Contains(t.animations, a) {
		t.animations = append(t.animations, a)
	}
}

// StopAnimation unqueues a.
func (t *Tracker) StopAnimation(a *Animation) {
	t.anim.Remove(a)
	if i := slices.Index(t.animations, a); i >= 0 {
		t.animations = slices.Delete(t.animations, i, i+1)
	}
}

// On registers fn for notifications of type event.
func (t *Tracker) On(event EventType, fn func(ControlEvent)) CallbackHandle {
	return t.handlers.add(event, fn)
}

// Dispatch publishes a notification to subscribers and the entity store.
func (t *Tracker) Dispatch(event EventType) {
	ev := ControlEvent{Type: event, Controls: t}
	t.handlers.fire(ev)
	if t.store != nil {
		t.store.EmitEvent(ev)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (t *Tracker) SetEntityStore(store EntityStore) {
	t.store = store
}

// --- Lifecycle ---

func (t *Tracker) connect() {
	if t.connected || t.Element == nil {
		return
	}
	t.unlisten = t.Element.Listen(t.handleEvent)
	if !t.Element.Focusable() {
		t.Element.SetFocusable(true)
	}
	if t.Element.TouchGestures() {
		t.Element.SetTouchGestures(false)
	}
	t.connected = true
}

func (t *Tracker) disconnect() {
	if !t.connected {
		return
	}
	if t.unlisten != nil {
		t.unlisten()
		t.unlisten = nil
	}
	for _, p := range t.pointers {
		t.Element.ReleasePointerCapture(p.ID)
	}
	for _, a := range t.animations {
		t.anim.Remove(a)
	}
	t.animations = nil
	t.anim.Remove(t.simulation)

	t.pointers = nil
	t.hover = nil
	t.simulated = nil
	t.keys = nil
	t.center.UpdateCenter(nil)
	t.stats = gestureStats{}
	t.connected = false
}

// --- Event processing ---

func (t *Tracker) handleEvent(e Event) {
	if !t.enabled {
		return
	}
	if h, ok := t.handler.(EventHandler); ok {
		h.HandleEvent(e)
		if !t.enabled {
			return
		}
	}
	switch ev := e.(type) {
	case PointerEvent:
		switch ev.Type {
		case PointerDown:
			t.onPointerDown(ev)
		case PointerMove:
			t.onPointerMove(ev)
		case PointerUp, PointerCancel, PointerLeave:
			t.onPointerUp(ev)
		}
	case KeyEvent:
		switch ev.Type {
		case KeyDown:
			t.onKeyDown(ev)
		case KeyUp:
			t.onKeyUp(ev)
		}
	}
}

func (t *Tracker) indexOf(id int) int {
	for i, p := range t.pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) onPointerDown(ev PointerEvent) {
	if t.simulated != nil {
		t.finishSimulation()
	}
	if i := t.indexOf(ev.ID); i >= 0 {
		// A second button on an already tracked stream.
		t.onPointerMove(ev)
		return
	}
	if t.hover != nil && t.hover.ID == ev.ID {
		t.hover = nil
	}

	t.Element.SetPointerCapture(ev.ID)
	t.Element.Focus()

	p := newPointer(ev, t.Camera, t.Element)
	t.pointers = append(t.pointers, p)
	t.center.UpdateCenter(t.pointers)
	if len(t.pointers) == 1 {
		t.stats.begin(time.Now())
	}
	t.handler.OnTrackedPointerDown(p, t.pointers)
}

func (t *Tracker) onPointerMove(ev PointerEvent) {
	i := t.indexOf(ev.ID)
	if i < 0 {
		t.onPointerHover(ev)
		return
	}
	p := t.pointers[i]
	if !p.Update(ev, t.Camera) {
		return
	}
	// Secondary buttons lose capture on some platforms once the pointer
	// leaves the element; end the stream instead of tracking a stale one.
	if p.Button != MouseButtonLeft && p.outsideElement() {
		t.releasePointer(i)
		return
	}
	for _, other := range t.pointers {
		if other != p {
			other.settle()
		}
	}
	t.center.UpdateCenter(t.pointers)
	t.stats.moves++
	t.handler.OnTrackedPointerMove(p, t.pointers, &t.center)
}

func (t *Tracker) onPointerHover(ev PointerEvent) {
	if t.hover == nil || t.hover.ID != ev.ID {
		t.hover = newPointer(ev, t.Camera, t.Element)
	} else {
		t.hover.Update(ev, t.Camera)
	}
	t.handler.OnTrackedPointerHover(t.hover, t.pointers)
}

func (t *Tracker) onPointerUp(ev PointerEvent) {
	i := t.indexOf(ev.ID)
	if i < 0 {
		if ev.Type == PointerLeave && t.hover != nil && t.hover.ID == ev.ID {
			t.hover = nil
		}
		return
	}
	t.releasePointer(i)
}

// releasePointer removes the i-th pointer from the set. The last pointer
// to lift is handed to the inertial simulation when damping is enabled.
func (t *Tracker) releasePointer(i int) {
	p := t.pointers[i]
	// Copy so callbacks holding the previous set are unaffected.
	t.pointers = append(t.pointers[:i:i], t.pointers[i+1:]...)
	t.Element.ReleasePointerCapture(p.ID)
	t.center.UpdateCenter(t.pointers)

	if t.EnableDamping && len(t.pointers) == 0 {
		p.simulated = true
		t.simulated = p
		t.anim.Add(t.simulation)
		return
	}
	t.handler.OnTrackedPointerUp(p, t.pointers)
	if len(t.pointers) == 0 {
		t.stats.end(time.Now())
	}
}

// simulate is the per-frame tick of the inertial pointer.
func (t *Tracker) simulate(dt time.Duration) {
	p := t.simulated
	if p == nil {
		t.anim.Remove(t.simulation)
		return
	}
	p.ApplyDamping(t.DampingFactor, dt)
	if p.canvas.Movement.Len() > simulationEpsilon {
		t.stats.simulatedFrames++
		t.handler.OnTrackedPointerMove(p, []*Pointer{p}, p)
		return
	}
	t.finishSimulation()
}

// finishSimulation drops the inertial pointer and reports it as released.
func (t *Tracker) finishSimulation() {
	p := t.simulated
	t.simulated = nil
	t.anim.Remove(t.simulation)
	if p == nil {
		return
	}
	t.handler.OnTrackedPointerUp(p, []*Pointer{})
	t.stats.end(time.Now())
}

func (t *Tracker) onKeyDown(ev KeyEvent) {
	if !slices.Contains(t.keys, ev.Code) {
		t.keys = append(t.keys, ev.Code)
	}
	if ev.Repeat {
		return
	}
	t.handler.OnTrackedKeyDown(ev.Code, t.keys)
	t.handler.OnTrackedKeyChange(ev.Code, t.keys)
}

func (t *Tracker) onKeyUp(ev KeyEvent) {
	if i := slices.Index(t.keys, ev.Code); i >= 0 {
		t.keys = slices.Delete(t.keys, i, i+1)
	}
	t.handler.OnTrackedKeyUp(ev.Code, t.keys)
	t.handler.OnTrackedKeyChange(ev.Code, t.keys)
}
