package controls

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// mousePointerID is the pointer id of the mouse stream.
	mousePointerID = 1
	// touchIDBase offsets ebiten touch ids so they never collide with the
	// mouse.
	touchIDBase = 100

	// wheelLineHeight converts ebiten wheel notches to DOM-style pixels.
	wheelLineHeight = 100

	// Key auto-repeat schedule, in ticks.
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

// EbitenElement is an Element fed by Ebitengine's polled input. Call Update
// once per ebiten.Game.Update before AnimationManager.Frame. X and Y place
// the element inside the window; events use element-relative pixels.
type EbitenElement struct {
	surface

	X, Y float64

	prev     inputFrame
	keyBuf   []ebiten.Key
	touchBuf []ebiten.TouchID
}

// NewEbitenElement creates an element of the given size at the window
// origin.
func NewEbitenElement(width, height float64) *EbitenElement {
	return &EbitenElement{surface: newSurface(width, height)}
}

// touchSample is one touch contact in a frame.
type touchSample struct {
	id   int
	x, y float64
}

// keySample is one held key and how many ticks it has been held.
type keySample struct {
	code     string
	duration int
}

// inputFrame is a snapshot of the polled input state of one tick, in
// element pixels.
type inputFrame struct {
	mouseX, mouseY float64
	// buttons holds the pressed state indexed by MouseButton.
	buttons        [3]bool
	touches        []touchSample
	keys           []keySample
	wheelX, wheelY float64
	mods           KeyModifiers
}

func (f *inputFrame) mousePressed() bool {
	return f.buttons[MouseButtonLeft] || f.buttons[MouseButtonMiddle] || f.buttons[MouseButtonRight]
}

// pressedButton returns the button that starts a mouse stream; left wins
// over right, right over middle.
func (f *inputFrame) pressedButton() MouseButton {
	switch {
	case f.buttons[MouseButtonLeft]:
		return MouseButtonLeft
	case f.buttons[MouseButtonRight]:
		return MouseButtonRight
	default:
		return MouseButtonMiddle
	}
}

// Update polls Ebitengine and emits the events that happened since the
// previous call.
func (e *EbitenElement) Update() {
	e.apply(e.readFrame())
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

func (e *EbitenElement) readFrame() inputFrame {
	var f inputFrame
	f.mods = readModifiers()

	mx, my := ebiten.CursorPosition()
	f.mouseX, f.mouseY = float64(mx)-e.X, float64(my)-e.Y
	f.buttons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	f.buttons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	f.buttons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	e.touchBuf = ebiten.AppendTouchIDs(e.touchBuf[:0])
	for _, tid := range e.touchBuf {
		tx, ty := ebiten.TouchPosition(tid)
		f.touches = append(f.touches, touchSample{
			id: touchIDBase + int(tid),
			x:  float64(tx) - e.X,
			y:  float64(ty) - e.Y,
		})
	}

	if e.focused {
		e.keyBuf = inpututil.AppendPressedKeys(e.keyBuf[:0])
		for _, k := range e.keyBuf {
			f.keys = append(f.keys, keySample{code: keyCode(k), duration: inpututil.KeyPressDuration(k)})
		}
	}

	f.wheelX, f.wheelY = ebiten.Wheel()
	return f
}

// keyCode returns the DOM-style code of k: letters become "KeyA", other
// keys keep their Ebitengine name ("ArrowUp", "Digit1", "Space").
func keyCode(k ebiten.Key) string {
	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return "Key" + name
	}
	return name
}

func (e *EbitenElement) inside(x, y float64) bool {
	return x >= 0 && y >= 0 && x < e.width && y < e.height
}

// apply diffs f against the previous frame and emits the resulting events.
func (e *EbitenElement) apply(f inputFrame) {
	prev := e.prev
	e.prev = f

	e.applyMouse(prev, f)
	e.applyTouches(prev, f)
	e.applyKeys(prev, f)

	if (f.wheelX != 0 || f.wheelY != 0) && e.inside(f.mouseX, f.mouseY) {
		e.emit(WheelEvent{
			DeltaX:    -f.wheelX * wheelLineHeight,
			DeltaY:    -f.wheelY * wheelLineHeight,
			X:         f.mouseX,
			Y:         f.mouseY,
			Modifiers: f.mods,
		})
	}
}

func (e *EbitenElement) applyMouse(prev, f inputFrame) {
	ev := PointerEvent{
		ID:          mousePointerID,
		PointerType: PointerMouse,
		Modifiers:   f.mods,
		X:           f.mouseX,
		Y:           f.mouseY,
	}
	wasDown := prev.mousePressed()
	isDown := f.mousePressed()
	in := e.inside(f.mouseX, f.mouseY)
	wasIn := e.inside(prev.mouseX, prev.mouseY)
	moved := f.mouseX != prev.mouseX || f.mouseY != prev.mouseY

	switch {
	case !wasDown && isDown:
		if !in {
			return
		}
		if moved {
			ev.Type = PointerMove
			e.emit(ev)
		}
		ev.Type = PointerDown
		ev.Button = f.pressedButton()
		e.emit(ev)
		if ev.Button == MouseButtonRight {
			e.emit(ContextMenuEvent{X: f.mouseX, Y: f.mouseY})
		}
	case wasDown && !isDown:
		if !e.HasPointerCapture(mousePointerID) && !in {
			return
		}
		ev.Type = PointerUp
		ev.Button = prev.pressedButton()
		e.emit(ev)
	case isDown:
		if moved && (in || e.HasPointerCapture(mousePointerID)) {
			ev.Type = PointerMove
			ev.Button = f.pressedButton()
			e.emit(ev)
		}
	default:
		if in && moved {
			ev.Type = PointerMove
			e.emit(ev)
		} else if wasIn && !in {
			ev.Type = PointerLeave
			e.emit(ev)
		}
	}
}

func (e *EbitenElement) applyTouches(prev, f inputFrame) {
	for _, t := range f.touches {
		ev := PointerEvent{
			ID:          t.id,
			PointerType: PointerTouch,
			Button:      MouseButtonLeft,
			Modifiers:   f.mods,
			X:           t.x,
			Y:           t.y,
		}
		i := slices.IndexFunc(prev.touches, func(p touchSample) bool { return p.id == t.id })
		switch {
		case i < 0:
			if e.inside(t.x, t.y) {
				ev.Type = PointerDown
				e.emit(ev)
			}
		case prev.touches[i].x != t.x || prev.touches[i].y != t.y:
			ev.Type = PointerMove
			e.emit(ev)
		}
	}
	for _, p := range prev.touches {
		if !slices.ContainsFunc(f.touches, func(t touchSample) bool { return t.id == p.id }) {
			e.emit(PointerEvent{
				Type:        PointerUp,
				ID:          p.id,
				PointerType: PointerTouch,
				Button:      MouseButtonLeft,
				Modifiers:   f.mods,
				X:           p.x,
				Y:           p.y,
			})
		}
	}
}

func (e *EbitenElement) applyKeys(prev, f inputFrame) {
	for _, k := range f.keys {
		held := slices.ContainsFunc(prev.keys, func(p keySample) bool { return p.code == k.code })
		switch {
		case !held:
			e.emit(KeyEvent{Type: KeyDown, Code: k.code, Modifiers: f.mods})
		case isKeyRepeat(k.duration):
			e.emit(KeyEvent{Type: KeyDown, Code: k.code, Repeat: true, Modifiers: f.mods})
		}
	}
	for _, p := range prev.keys {
		if !slices.ContainsFunc(f.keys, func(k keySample) bool { return k.code == p.code }) {
			e.emit(KeyEvent{Type: KeyUp, Code: p.code, Modifiers: f.mods})
		}
	}
}

func isKeyRepeat(duration int) bool {
	return duration >= keyRepeatDelay && (duration-keyRepeatDelay)%keyRepeatInterval == 0
}
