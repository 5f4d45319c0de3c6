package controls

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is a per-frame callback registered with an AnimationManager.
// Its identity is the pointer, so the same *Animation is queued at most once.
type Animation struct {
	fn func(dt time.Duration)
}

// NewAnimation wraps fn so it can be queued on an AnimationManager. fn
// receives the wall-clock time elapsed since the previous frame.
func NewAnimation(fn func(dt time.Duration)) *Animation {
	return &Animation{fn: fn}
}

// AnimationManager runs queued animations once per frame. It is shared by
// every controls instance of an application; the host calls Frame from its
// update loop (e.g. ebiten.Game.Update). The manager only ticks while at
// least one animation is queued.
type AnimationManager struct {
	queue   []*Animation
	running bool
	last    time.Time
	now     func() time.Time
}

// NewAnimationManager creates an idle manager using the wall clock.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{now: time.Now}
}

// SetClock replaces the time source. Intended for tests and replays.
func (m *AnimationManager) SetClock(now func() time.Time) {
	m.now = now
}

// Add queues a. Adding an animation that is already queued is a no-op.
// The first animation starts the frame loop.
func (m *AnimationManager) Add(a *Animation) {
	if a == nil || m.indexOf(a) >= 0 {
		return
	}
	m.queue = append(m.queue, a)
	if !m.running {
		m.running = true
		m.last = m.clock()
	}
}

// Remove unqueues a. Removing an animation that is not queued is a no-op.
// Removing the last animation stops the frame loop.
func (m *AnimationManager) Remove(a *Animation) {
	i := m.indexOf(a)
	if i < 0 {
		return
	}
	copy(m.queue[i:], m.queue[i+1:])
	m.queue[len(m.queue)-1] = nil
	m.queue = m.queue[:len(m.queue)-1]
	if len(m.queue) == 0 {
		m.running = false
	}
}

// Has reports whether a is queued.
func (m *AnimationManager) Has(a *Animation) bool {
	return m.indexOf(a) >= 0
}

// Len returns the number of queued animations.
func (m *AnimationManager) Len() int {
	return len(m.queue)
}

// Running reports whether the frame loop is active.
func (m *AnimationManager) Running() bool {
	return m.running
}

// Frame runs one tick: every queued animation is called, in registration
// order, with the time elapsed since the previous tick. Animations added or
// removed by a callback take effect during the same pass when they land
// after the current position in the queue.
func (m *AnimationManager) Frame() {
	if !m.running {
		return
	}
	now := m.clock()
	dt := now.Sub(m.last)
	m.last = now
	for i := 0; i < len(m.queue); i++ {
		a := m.queue[i]
		a.fn(dt)
		// Step back when a removed itself so the next entry is not skipped.
		if i >= len(m.queue) || m.queue[i] != a {
			i--
		}
	}
}

func (m *AnimationManager) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

func (m *AnimationManager) indexOf(a *Animation) int {
	for i, q := range m.queue {
		if q == a {
			return i
		}
	}
	return -1
}

// TweenGroup animates up to 8 float64 fields simultaneously.
// Call Update(dt) each frame; values are written through to the fields.
type TweenGroup struct {
	tweens [8]*gween.Tween
	fields [8]*float64
	count  int
	Done   bool
}

// NewTweenGroup returns an empty group. Add fields with Tween.
func NewTweenGroup() *TweenGroup {
	return &TweenGroup{}
}

// Tween animates *field from its current value to to over duration seconds.
// Fields beyond the group capacity are set to their final value immediately.
func (g *TweenGroup) Tween(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if g.count == len(g.tweens) {
		*field = to
		return g
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}
