package controls

// VirtualElement is an Element whose input is injected by code: tests,
// gesture scripts and automation. Events are delivered synchronously.
type VirtualElement struct {
	surface

	// Modifiers is attached to every injected pointer, key and wheel event.
	Modifiers KeyModifiers
	// PointerType is attached to every injected pointer event.
	PointerType PointerType
}

// NewVirtualElement creates a virtual element of the given size in pixels.
func NewVirtualElement(width, height float64) *VirtualElement {
	return &VirtualElement{surface: newSurface(width, height), PointerType: PointerMouse}
}

func (v *VirtualElement) pointer(typ PointerEventType, id int, button MouseButton, x, y float64) {
	v.emit(PointerEvent{
		Type:        typ,
		ID:          id,
		PointerType: v.PointerType,
		Button:      button,
		Modifiers:   v.Modifiers,
		X:           x,
		Y:           y,
	})
}

// InjectPointerDown presses button on pointer id at (x, y).
func (v *VirtualElement) InjectPointerDown(id int, button MouseButton, x, y float64) {
	v.pointer(PointerDown, id, button, x, y)
}

// InjectPointerMove moves pointer id to (x, y). An untracked id hovers.
func (v *VirtualElement) InjectPointerMove(id int, x, y float64) {
	v.pointer(PointerMove, id, MouseButtonLeft, x, y)
}

// InjectPointerUp releases pointer id at (x, y).
func (v *VirtualElement) InjectPointerUp(id int, x, y float64) {
	v.pointer(PointerUp, id, MouseButtonLeft, x, y)
}

// InjectPointerCancel aborts pointer id.
func (v *VirtualElement) InjectPointerCancel(id int) {
	v.pointer(PointerCancel, id, MouseButtonLeft, 0, 0)
}

// InjectPointerLeave reports pointer id leaving the element at (x, y).
func (v *VirtualElement) InjectPointerLeave(id int, x, y float64) {
	v.pointer(PointerLeave, id, MouseButtonLeft, x, y)
}

// InjectDrag presses button at (fromX, fromY), moves in steps equal
// increments to (toX, toY) and releases there.
func (v *VirtualElement) InjectDrag(id int, button MouseButton, fromX, fromY, toX, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	v.InjectPointerDown(id, button, fromX, fromY)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		v.InjectPointerMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectPointerUp(id, toX, toY)
}

// InjectKeyDown presses the key with the given code.
func (v *VirtualElement) InjectKeyDown(code string, repeat bool) {
	v.emit(KeyEvent{Type: KeyDown, Code: code, Repeat: repeat, Modifiers: v.Modifiers})
}

// InjectKeyUp releases the key with the given code.
func (v *VirtualElement) InjectKeyUp(code string) {
	v.emit(KeyEvent{Type: KeyUp, Code: code, Modifiers: v.Modifiers})
}

// InjectWheel scrolls by deltaY pixels at (x, y). Positive values scroll
// down.
func (v *VirtualElement) InjectWheel(x, y, deltaY float64) {
	v.emit(WheelEvent{DeltaY: deltaY, X: x, Y: y, Modifiers: v.Modifiers})
}

// InjectContextMenu requests a context menu at (x, y).
func (v *VirtualElement) InjectContextMenu(x, y float64) {
	v.emit(ContextMenuEvent{X: x, Y: y})
}
