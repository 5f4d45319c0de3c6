package controls

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

const twoPi = 2 * math.Pi

// OrbitControls orbits, dollies and pans a camera around Target while
// keeping Camera.Up as the vertical reference.
//
//	Orbit - left mouse / one finger
//	Dolly - middle mouse, wheel / two-finger pinch
//	Pan   - right mouse, left mouse + ctrl/meta/shift, arrow keys / two-finger drag
type OrbitControls struct {
	*Tracker
	NopGestureHandler

	// Target is the point the camera orbits around.
	Target mgl64.Vec3

	// MinDistance and MaxDistance limit dollying (perspective cameras).
	MinDistance, MaxDistance float64
	// MinZoom and MaxZoom limit zooming (orthographic cameras).
	MinZoom, MaxZoom float64
	// MinPolarAngle and MaxPolarAngle limit vertical orbiting, in [0, π].
	MinPolarAngle, MaxPolarAngle float64
	// MinAzimuthAngle and MaxAzimuthAngle limit horizontal orbiting. When
	// both are finite, [min, max] must be a sub-interval of [-2π, 2π] with
	// max-min < 2π.
	MinAzimuthAngle, MaxAzimuthAngle float64

	EnableZoom   bool
	ZoomSpeed    float64
	EnableRotate bool
	RotateSpeed  float64
	EnablePan    bool
	PanSpeed     float64
	// ScreenSpacePanning pans in the view plane; when false the camera pans
	// in the plane orthogonal to Camera.Up.
	ScreenSpacePanning bool
	// KeyPanSpeed is the pixels moved per arrow key press.
	KeyPanSpeed float64

	// AutoRotateSpeed of 1 is 30 seconds per orbit at 60 fps.
	AutoRotateSpeed float64

	EnableKeys   bool
	Keys         KeyBindings
	MouseButtons ButtonBindings
	Touches      TouchBindings

	spherical             Spherical
	autoRotate            bool
	autoRotationMagnitude float64
	interacting           bool
	// gestureOpen is set between EventStart and its EventEnd.
	gestureOpen bool

	autoRotateAnim *Animation
	resetAnim      *Animation
	saved          cameraState
}

// cameraState is the snapshot restored by Reset.
type cameraState struct {
	position mgl64.Vec3
	rotation mgl64.Quat
	up       mgl64.Vec3
	target   mgl64.Vec3
	zoom     float64
	focus    float64
}

// NewOrbitControls creates enabled orbit controls for camera, listening on
// element and scheduling animations on anim.
func NewOrbitControls(camera *Camera, element Element, anim *AnimationManager) *OrbitControls {
	o := &OrbitControls{
		MaxDistance:     math.Inf(1),
		MaxZoom:         math.Inf(1),
		MaxPolarAngle:   math.Pi,
		MinAzimuthAngle: math.Inf(-1),
		MaxAzimuthAngle: math.Inf(1),
		EnableZoom:      true,
		ZoomSpeed:       1,
		EnableRotate:    true,
		RotateSpeed:     1,
		EnablePan:       true,
		PanSpeed:        1,
		KeyPanSpeed:     7,
		AutoRotateSpeed: 1,
		EnableKeys:      true,
		Keys:            KeyBindings{Left: "ArrowLeft", Up: "ArrowUp", Right: "ArrowRight", Bottom: "ArrowDown"},
	}
	if camera == nil || (camera.Projection != ProjectionPerspective && camera.Projection != ProjectionOrthographic) {
		logger.Warn("orbit: unknown camera type, dolly and pan disabled")
		o.EnableZoom = false
		o.EnablePan = false
	}
	o.UseOrbitBindings()
	o.autoRotateAnim = NewAnimation(o.autoRotateStep)
	o.Tracker = NewTracker(camera, element, anim, o)
	o.On(EventEnabled, func(ControlEvent) {
		if o.autoRotate {
			o.StartAnimation(o.autoRotateAnim)
		}
	})
	o.On(EventDisabled, func(ControlEvent) {
		o.interacting = false
		o.autoRotationMagnitude = 0
		if o.gestureOpen {
			o.gestureOpen = false
			o.Dispatch(EventEnd)
		}
	})
	if camera != nil {
		o.syncSpherical()
		o.SaveState()
	}
	return o
}

// NewMapControls creates orbit controls configured for map-like viewing:
// the left button and one finger pan over the ground plane, the right
// button and two fingers rotate.
func NewMapControls(camera *Camera, element Element, anim *AnimationManager) *OrbitControls {
	o := NewOrbitControls(camera, element, anim)
	o.UseMapBindings()
	return o
}

// UseMapBindings switches to the NewMapControls bindings and ground-plane
// panning. Target, saved state and auto-rotation are kept.
func (o *OrbitControls) UseMapBindings() {
	o.ScreenSpacePanning = false
	o.MouseButtons = ButtonBindings{Left: ActionPan, Middle: ActionDolly, Right: ActionRotate}
	o.Touches = TouchBindings{One: TouchPan, Two: TouchDollyRotate}
}

// UseOrbitBindings restores the NewOrbitControls bindings and screen-space
// panning.
func (o *OrbitControls) UseOrbitBindings() {
	o.ScreenSpacePanning = true
	o.MouseButtons = ButtonBindings{Left: ActionRotate, Middle: ActionDolly, Right: ActionPan}
	o.Touches = TouchBindings{One: TouchRotate, Two: TouchDollyPan}
}

// PolarAngle returns the current vertical orbit angle in radians.
func (o *OrbitControls) PolarAngle() float64 {
	return o.spherical.Phi
}

// AzimuthalAngle returns the current horizontal orbit angle in radians.
func (o *OrbitControls) AzimuthalAngle() float64 {
	return o.spherical.Theta
}

// Distance returns the distance from the camera to Target.
func (o *OrbitControls) Distance() float64 {
	return o.Camera.Position.Sub(o.Target).Len()
}

// AutoRotate reports whether auto-rotation is on.
func (o *OrbitControls) AutoRotate() bool {
	return o.autoRotate
}

// SetAutoRotate starts or stops rotating around Target every frame.
func (o *OrbitControls) SetAutoRotate(enabled bool) {
	if enabled == o.autoRotate {
		return
	}
	o.autoRotate = enabled
	if enabled {
		if o.Enabled() {
			o.StartAnimation(o.autoRotateAnim)
		}
		return
	}
	o.StopAnimation(o.autoRotateAnim)
	o.autoRotationMagnitude = 0
}

// SaveState records the current camera and target for Reset.
func (o *OrbitControls) SaveState() {
	cam := o.Camera
	o.saved = cameraState{
		position: cam.Position,
		rotation: cam.Rotation,
		up:       cam.Up,
		target:   o.Target,
		zoom:     cam.Zoom,
		focus:    cam.Focus,
	}
}

// Reset restores the state recorded by SaveState (or at construction).
func (o *OrbitControls) Reset() {
	o.stopReset()
	o.restore()
	o.Dispatch(EventChange)
}

// ResetAnimated tweens the camera back to the saved state over duration
// seconds using fn. A non-positive duration resets immediately.
func (o *OrbitControls) ResetAnimated(duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		o.Reset()
		return
	}
	o.stopReset()
	cam := o.Camera
	cam.Up = o.saved.up
	g := NewTweenGroup().
		Tween(&cam.Position[0], o.saved.position[0], duration, fn).
		Tween(&cam.Position[1], o.saved.position[1], duration, fn).
		Tween(&cam.Position[2], o.saved.position[2], duration, fn).
		Tween(&o.Target[0], o.saved.target[0], duration, fn).
		Tween(&o.Target[1], o.saved.target[1], duration, fn).
		Tween(&o.Target[2], o.saved.target[2], duration, fn).
		Tween(&cam.Zoom, o.saved.zoom, duration, fn).
		Tween(&cam.Focus, o.saved.focus, duration, fn)

	o.resetAnim = NewAnimation(func(dt time.Duration) {
		g.Update(float32(dt.Seconds()))
		if g.Done {
			o.stopReset()
			o.restore()
		} else {
			cam.LookAt(o.Target)
			o.syncSpherical()
		}
		o.Dispatch(EventChange)
	})
	o.StartAnimation(o.resetAnim)
}

// Resetting reports whether an animated reset is in progress.
func (o *OrbitControls) Resetting() bool {
	return o.resetAnim != nil
}

func (o *OrbitControls) stopReset() {
	if o.resetAnim == nil {
		return
	}
	o.StopAnimation(o.resetAnim)
	o.resetAnim = nil
}

func (o *OrbitControls) restore() {
	cam := o.Camera
	cam.Position = o.saved.position
	cam.Rotation = o.saved.rotation
	cam.Up = o.saved.up
	cam.Zoom = o.saved.zoom
	cam.Focus = o.saved.focus
	o.Target = o.saved.target
	o.syncSpherical()
}

// --- Raw events ---

// HandleEvent handles the wheel and keyboard panning.
func (o *OrbitControls) HandleEvent(e Event) {
	switch ev := e.(type) {
	case WheelEvent:
		if o.EnableZoom {
			o.applyDollyMovement(ev.DeltaY)
		}
	case KeyEvent:
		if ev.Type != KeyDown || !o.EnableKeys || !o.EnablePan {
			return
		}
		switch ev.Code {
		case o.Keys.Up:
			o.keyPan(0, o.KeyPanSpeed)
		case o.Keys.Bottom:
			o.keyPan(0, -o.KeyPanSpeed)
		case o.Keys.Left:
			o.keyPan(o.KeyPanSpeed, 0)
		case o.Keys.Right:
			o.keyPan(-o.KeyPanSpeed, 0)
		}
	}
}

// --- Tracked pointer callbacks ---

// OnTrackedPointerDown publishes EventStart for the first pointer.
func (o *OrbitControls) OnTrackedPointerDown(pointer *Pointer, pointers []*Pointer) {
	o.stopReset()
	o.interacting = true
	if len(pointers) == 1 {
		o.gestureOpen = true
		o.Dispatch(EventStart)
	}
}

// OnTrackedPointerMove maps the gesture to rotate, dolly or pan.
func (o *OrbitControls) OnTrackedPointerMove(pointer *Pointer, pointers []*Pointer, center PointerView) {
	o.interacting = !pointer.Simulated()

	if len(pointers) <= 1 {
		switch o.singlePointerAction(pointer) {
		case ActionRotate:
			if o.EnableRotate {
				o.pointerRotate(pointer)
			}
		case ActionDolly:
			if o.EnableZoom {
				o.pointerDolly(pointer)
			}
		case ActionPan:
			if o.EnablePan {
				o.pointerPan(pointer)
			}
		}
		return
	}

	switch o.Touches.Two {
	case TouchDollyPan:
		if o.EnableZoom {
			o.twoPointerDolly(pointers)
		}
		if o.EnablePan {
			o.pointerPan(center)
		}
	case TouchDollyRotate:
		if o.EnableZoom {
			o.twoPointerDolly(pointers)
		}
		if o.EnableRotate {
			o.pointerRotate(center)
		}
	}
}

// OnTrackedPointerUp publishes EventEnd once the last pointer is gone.
func (o *OrbitControls) OnTrackedPointerUp(pointer *Pointer, pointers []*Pointer) {
	if len(pointers) == 0 {
		o.interacting = false
		o.gestureOpen = false
		o.Dispatch(EventEnd)
	}
}

// singlePointerAction resolves the action of a lone pointer. Holding ctrl,
// meta or shift swaps rotate and pan.
func (o *OrbitControls) singlePointerAction(p *Pointer) Action {
	var action Action
	if p.Type == PointerTouch {
		switch o.Touches.One {
		case TouchPan:
			action = ActionPan
		default:
			action = ActionRotate
		}
	} else {
		action = o.MouseButtons.Lookup(p.Button)
	}
	if p.Ctrl() || p.Meta() || p.Shift() {
		switch action {
		case ActionRotate:
			action = ActionPan
		case ActionPan:
			action = ActionRotate
		}
	}
	return action
}

// --- Camera manipulation ---

// eye returns the unit vector from Target toward the camera's view axis.
func (o *OrbitControls) eye() mgl64.Vec3 {
	return safeNormalize(o.Camera.Rotation.Rotate(unitZ))
}

func (o *OrbitControls) pointerDolly(p PointerView) {
	o.applyDollyMovement(p.Canvas().Movement[1])
}

// twoPointerDolly dollies by the change in pixel distance between the first
// two pointers. Spreading the fingers moves the camera in.
func (o *OrbitControls) twoPointerDolly(pointers []*Pointer) {
	a := pointers[0].Canvas()
	b := pointers[1].Canvas()
	dist := a.Current.Sub(b.Current).Len()
	prevDist := a.Previous.Sub(b.Previous).Len()
	o.applyDollyMovement(dist - prevDist)
}

// applyDollyMovement scales the camera distance by
// (1 - movement/height)^ZoomSpeed. Orthographic cameras zoom instead.
func (o *OrbitControls) applyDollyMovement(movement float64) {
	_, h := o.Element.Size()
	if h == 0 || movement == 0 {
		return
	}
	base := math.Max(1-movement/h, 1e-6)
	scale := math.Pow(base, o.ZoomSpeed)
	cam := o.Camera

	if cam.Projection == ProjectionOrthographic {
		cam.Zoom = mgl64.Clamp(cam.Zoom/scale, o.MinZoom, o.MaxZoom)
	} else {
		offset := cam.Position.Sub(o.Target)
		radius := offset.Len()
		next := mgl64.Clamp(radius*scale, o.MinDistance, o.MaxDistance)
		if radius > 0 {
			cam.Position = o.Target.Add(offset.Mul(next / radius))
		}
		o.spherical.Radius = next
	}
	cam.LookAt(o.Target)
	o.Dispatch(EventChange)
}

func (o *OrbitControls) pointerPan(p PointerView) {
	normal := o.eye()
	if !o.ScreenSpacePanning {
		normal = o.Camera.Up
	}
	o.applyPanMovement(p.ProjectOnPlane(o.Target, normal).Movement)
}

// keyPan pans by deltaX, deltaY pixels; right and down are positive.
func (o *OrbitControls) keyPan(deltaX, deltaY float64) {
	cam := o.Camera
	_, h := o.Element.Size()
	if h == 0 {
		return
	}
	fovFactor := 1.0
	switch cam.Projection {
	case ProjectionPerspective:
		// Half the fov spans center to top; height alone keeps the aspect
		// ratio from distorting the speed.
		dist := cam.Position.Sub(o.Target).Len()
		fovFactor = dist * math.Tan(mgl64.DegToRad(cam.Fov)/2) * 2 / h
	case ProjectionOrthographic:
		fovFactor = (cam.Top - cam.Bottom) / cam.Zoom / h
	}

	right := cam.Rotation.Rotate(unitX)
	var vertical mgl64.Vec3
	if o.ScreenSpacePanning {
		vertical = cam.Rotation.Rotate(unitY)
	} else {
		vertical = cam.Up.Cross(right)
	}
	movement := vertical.Mul(-deltaY * fovFactor).Add(right.Mul(deltaX * fovFactor))
	o.applyPanMovement(movement)
}

func (o *OrbitControls) applyPanMovement(movement mgl64.Vec3) {
	offset := movement.Mul(o.PanSpeed)
	o.Target = o.Target.Sub(offset)
	o.Camera.Position = o.Camera.Position.Sub(offset)
	o.Dispatch(EventChange)
}

func (o *OrbitControls) pointerRotate(p PointerView) {
	w, h := o.Element.Size()
	if h == 0 {
		return
	}
	aspect := w / h
	m := p.View().Movement.Mul(o.RotateSpeed)
	o.applyRotateMovement(m[0]*aspect, m[1])
}

// autoRotateStep is the per-frame auto-rotation. With damping enabled the
// rotation eases in and out the same way pointer inertia does.
func (o *OrbitControls) autoRotateStep(dt time.Duration) {
	damping := math.Pow(1-o.DampingFactor, dt.Seconds()*60)
	angle := 0.0
	if !o.interacting {
		angle = twoPi / 60 / 60 * o.AutoRotateSpeed
	}
	if o.EnableDamping {
		o.autoRotationMagnitude += angle * (1 - damping)
		o.autoRotationMagnitude *= damping
	} else {
		o.autoRotationMagnitude = angle
	}
	if o.autoRotationMagnitude == 0 {
		return
	}
	o.applyRotateMovement(o.autoRotationMagnitude, 0)
}

// upRotation returns the rotation from Camera.Up to +Y.
func (o *OrbitControls) upRotation() mgl64.Quat {
	up := safeNormalize(o.Camera.Up)
	if up.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(up, unitY)
}

// syncSpherical recomputes the cached spherical angles from the camera.
func (o *OrbitControls) syncSpherical() {
	q := o.upRotation()
	o.spherical.SetFromVec3(q.Rotate(o.Camera.Position.Sub(o.Target)))
}

// applyRotateMovement orbits by dTheta horizontally and dPhi vertically,
// honoring the angle limits.
func (o *OrbitControls) applyRotateMovement(dTheta, dPhi float64) {
	cam := o.Camera
	q := o.upRotation()
	offset := q.Rotate(cam.Position.Sub(o.Target))

	o.spherical.SetFromVec3(offset)
	o.spherical.Theta -= dTheta
	o.spherical.Phi += dPhi
	o.spherical.Theta = clampAzimuth(o.spherical.Theta, o.MinAzimuthAngle, o.MaxAzimuthAngle)
	o.spherical.Phi = mgl64.Clamp(o.spherical.Phi, o.MinPolarAngle, o.MaxPolarAngle)
	o.spherical.MakeSafe()

	offset = q.Inverse().Rotate(o.spherical.Vec3())
	cam.Position = o.Target.Add(offset)
	cam.LookAt(o.Target)
	o.Dispatch(EventChange)
}

// clampAzimuth restricts theta to [min, max]. Limits are first wrapped into
// [-π, π]; when that makes min > max the allowed arc crosses ±π and theta
// snaps to whichever bound is on its side of the arc's midpoint.
func clampAzimuth(theta, min, max float64) float64 {
	if math.IsInf(min, 0) || math.IsInf(max, 0) || math.IsNaN(min) || math.IsNaN(max) {
		return theta
	}
	if min < -math.Pi {
		min += twoPi
	} else if min > math.Pi {
		min -= twoPi
	}
	if max < -math.Pi {
		max += twoPi
	} else if max > math.Pi {
		max -= twoPi
	}
	if min <= max {
		return math.Max(min, math.Min(max, theta))
	}
	if theta > (min+max)/2 {
		return math.Max(min, theta)
	}
	return math.Min(max, theta)
}
