package controls

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// gestureStep is a single action in a gesture script.
type gestureStep struct {
	Action    string   `json:"action"`
	ID        int      `json:"id,omitempty"`
	Button    string   `json:"button,omitempty"`
	X         float64  `json:"x,omitempty"`
	Y         float64  `json:"y,omitempty"`
	FromX     float64  `json:"fromX,omitempty"`
	FromY     float64  `json:"fromY,omitempty"`
	ToX       float64  `json:"toX,omitempty"`
	ToY       float64  `json:"toY,omitempty"`
	DeltaY    float64  `json:"deltaY,omitempty"`
	Code      string   `json:"code,omitempty"`
	Repeat    bool     `json:"repeat,omitempty"`
	Frames    int      `json:"frames,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Pointer   string   `json:"pointer,omitempty"`
}

// gestureScript is the top-level JSON structure of a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// GestureRunner replays a gesture script on a VirtualElement, one frame at
// a time. Call Step once per frame, before AnimationManager.Frame.
//
// Actions: down, move, up, cancel, leave, drag, wheel, keydown, keyup, wait.
type GestureRunner struct {
	element   *VirtualElement
	steps     []gestureStep
	cursor    int
	waitCount int
	pending   []func()
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a runner that
// drives element.
func LoadGestureScript(data []byte, element *VirtualElement) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &GestureRunner{element: element, steps: script.Steps}, nil
}

func (st *gestureStep) validate() error {
	switch st.Action {
	case "down", "move", "up", "cancel", "leave", "drag", "wheel", "wait":
	case "keydown", "keyup":
		if st.Code == "" {
			return fmt.Errorf("%s without code", st.Action)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if _, err := parseButton(st.Button); err != nil {
		return err
	}
	if _, err := parseModifiers(st.Modifiers); err != nil {
		return err
	}
	if _, err := parsePointerType(st.Pointer); err != nil {
		return err
	}
	return nil
}

func parseButton(s string) (MouseButton, error) {
	switch s {
	case "", "left":
		return MouseButtonLeft, nil
	case "middle":
		return MouseButtonMiddle, nil
	case "right":
		return MouseButtonRight, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

func parseModifiers(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, n := range names {
		switch n {
		case "shift":
			mods |= ModShift
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "meta":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return mods, nil
}

func parsePointerType(s string) (PointerType, error) {
	switch s {
	case "", "mouse":
		return PointerMouse, nil
	case "touch":
		return PointerTouch, nil
	case "pen":
		return PointerPen, nil
	case "virtual":
		return PointerVirtual, nil
	}
	return 0, fmt.Errorf("unknown pointer type %q", s)
}

// Done reports whether every step has been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *GestureRunner) Step() {
	if r.done {
		return
	}
	if len(r.pending) > 0 {
		fn := r.pending[0]
		r.pending = r.pending[1:]
		fn()
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.exec(st)
	r.checkDone()
}

func (r *GestureRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.pending) == 0 {
		r.done = true
	}
}

func (r *GestureRunner) exec(st gestureStep) {
	el := r.element
	// Validated at load time.
	button, _ := parseButton(st.Button)
	el.Modifiers, _ = parseModifiers(st.Modifiers)
	el.PointerType, _ = parsePointerType(st.Pointer)

	switch st.Action {
	case "down":
		el.InjectPointerDown(st.ID, button, st.X, st.Y)
	case "move":
		el.InjectPointerMove(st.ID, st.X, st.Y)
	case "up":
		el.InjectPointerUp(st.ID, st.X, st.Y)
	case "cancel":
		el.InjectPointerCancel(st.ID)
	case "leave":
		el.InjectPointerLeave(st.ID, st.X, st.Y)
	case "wheel":
		el.InjectWheel(st.X, st.Y, st.DeltaY)
	case "keydown":
		el.InjectKeyDown(st.Code, st.Repeat)
	case "keyup":
		el.InjectKeyUp(st.Code)
	case "drag":
		r.queueDrag(st, button)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

// queueDrag presses now and spreads the moves and the release over the
// following frames. The drag spans st.Frames frames, at least two.
func (r *GestureRunner) queueDrag(st gestureStep, button MouseButton) {
	el := r.element
	frames := st.Frames
	if frames < 2 {
		frames = 2
	}
	el.InjectPointerDown(st.ID, button, st.FromX, st.FromY)
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves+1)
		x := st.FromX + (st.ToX-st.FromX)*t
		y := st.FromY + (st.ToY-st.FromY)*t
		r.pending = append(r.pending, func() { el.InjectPointerMove(st.ID, x, y) })
	}
	r.pending = append(r.pending, func() {
		el.InjectPointerMove(st.ID, st.ToX, st.ToY)
		el.InjectPointerUp(st.ID, st.ToX, st.ToY)
	})
}
