package controls

import "github.com/go-gl/mathgl/mgl64"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the neutral highlight color used by the gizmo helper.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp returns the linear interpolation between c and other at t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Axis unit vectors.
var (
	unitX = mgl64.Vec3{1, 0, 0}
	unitY = mgl64.Vec3{0, 1, 0}
	unitZ = mgl64.Vec3{0, 0, 1}
)

// PointerType identifies the device behind a tracked pointer.
type PointerType uint8

const (
	PointerMouse   PointerType = iota // mouse cursor
	PointerTouch                      // finger on a touch screen
	PointerPen                        // stylus
	PointerVirtual                    // synthesized (scripts, centroids)
)

func (t PointerType) String() string {
	switch t {
	case PointerMouse:
		return "mouse"
	case PointerTouch:
		return "touch"
	case PointerPen:
		return "pen"
	case PointerVirtual:
		return "virtual"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button. Values follow the DOM button codes.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = 0 // primary button, also touch and pen contact
	MouseButtonMiddle MouseButton = 1 // wheel click
	MouseButtonRight  MouseButton = 2 // secondary button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether all bits of m are set.
func (k KeyModifiers) Has(m KeyModifiers) bool {
	return k&m == m
}

// EventType identifies a notification published by a Tracker.
type EventType uint8

const (
	EventStart    EventType = iota // a gesture began (first pointer down)
	EventEnd                       // a gesture ended (last pointer released, inertia finished)
	EventChange                    // the camera was moved
	EventEnabled                   // the controls were enabled
	EventDisabled                  // the controls were disabled
	EventDispose                   // the controls were disposed
	eventTypeCount
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventChange:
		return "change"
	case EventEnabled:
		return "enabled"
	case EventDisabled:
		return "disabled"
	case EventDispose:
		return "dispose"
	default:
		return "unknown"
	}
}

// Action is what a single pointer drag does to the camera.
type Action uint8

const (
	ActionNone   Action = iota // ignore the button
	ActionRotate               // orbit around the target
	ActionDolly                // move toward / away from the target
	ActionPan                  // translate camera and target
)

// TouchAction is what a touch gesture does to the camera.
type TouchAction uint8

const (
	TouchRotate      TouchAction = iota // one finger orbits
	TouchPan                            // one finger pans
	TouchDollyPan                       // two fingers pinch-dolly and pan
	TouchDollyRotate                    // two fingers pinch-dolly and orbit
)

// ButtonBindings maps mouse buttons to actions.
type ButtonBindings struct {
	Left, Middle, Right Action
}

// Lookup returns the action bound to b.
func (m ButtonBindings) Lookup(b MouseButton) Action {
	switch b {
	case MouseButtonLeft:
		return m.Left
	case MouseButtonMiddle:
		return m.Middle
	case MouseButtonRight:
		return m.Right
	default:
		return ActionNone
	}
}

// TouchBindings maps finger counts to touch actions.
type TouchBindings struct {
	One, Two TouchAction
}

// KeyBindings holds the key codes used for keyboard panning.
type KeyBindings struct {
	Left, Up, Right, Bottom string
}
