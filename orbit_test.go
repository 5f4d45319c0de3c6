package controls

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

type orbitFixture struct {
	el     *VirtualElement
	anim   *AnimationManager
	clock  *fakeClock
	cam    *Camera
	o      *OrbitControls
	events []EventType
}

func newOrbitFixture(cam *Camera) *orbitFixture {
	if cam == nil {
		cam = testCamera()
	}
	anim, clock := newTestManager()
	f := &orbitFixture{
		el:    NewVirtualElement(800, 600),
		anim:  anim,
		clock: clock,
		cam:   cam,
	}
	f.o = NewOrbitControls(cam, f.el, anim)
	for e := EventStart; e < eventTypeCount; e++ {
		f.o.On(e, func(ev ControlEvent) { f.events = append(f.events, ev.Type) })
	}
	return f
}

func (f *orbitFixture) frame() {
	f.clock.Advance(time.Second / 60)
	f.anim.Frame()
}

func (f *orbitFixture) count(e EventType) int {
	n := 0
	for _, got := range f.events {
		if got == e {
			n++
		}
	}
	return n
}

func TestOrbitDefaults(t *testing.T) {
	f := newOrbitFixture(nil)
	o := f.o
	assert.Equal(t, 0.0, o.MinDistance)
	assert.True(t, math.IsInf(o.MaxDistance, 1))
	assert.Equal(t, math.Pi, o.MaxPolarAngle)
	assert.True(t, math.IsInf(o.MinAzimuthAngle, -1))
	assert.True(t, o.EnableZoom && o.EnableRotate && o.EnablePan && o.EnableKeys)
	assert.True(t, o.ScreenSpacePanning)
	assert.Equal(t, 7.0, o.KeyPanSpeed)
	assert.Equal(t, ButtonBindings{Left: ActionRotate, Middle: ActionDolly, Right: ActionPan}, o.MouseButtons)
	assert.Equal(t, TouchBindings{One: TouchRotate, Two: TouchDollyPan}, o.Touches)
	assert.Equal(t, "ArrowUp", o.Keys.Up)
	assert.InDelta(t, 10, o.Distance(), 1e-9)
	assert.InDelta(t, math.Pi/2, o.PolarAngle(), 1e-9)
	assert.InDelta(t, 0, o.AzimuthalAngle(), 1e-9)
}

func TestOrbitSingleDragRotatesAzimuth(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectPointerDown(1, MouseButtonLeft, 100, 100)
	f.el.InjectPointerMove(1, 110, 100)

	want := -0.025 * (800.0 / 600)
	assert.InDelta(t, want, f.o.AzimuthalAngle(), 1e-9)
	assert.InDelta(t, math.Pi/2, f.o.PolarAngle(), 1e-9)
	assert.InDelta(t, 10, f.o.Distance(), 1e-9)
	assert.Equal(t, []EventType{EventStart, EventChange}, f.events)

	// The camera still looks at the target.
	toTarget := f.o.Target.Sub(f.cam.Position).Normalize()
	assertVec3InDelta(t, toTarget, f.cam.Forward(), 1e-9)
}

func TestOrbitVerticalDragRotatesPolar(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	f.el.InjectPointerMove(1, 400, 330)

	// Dragging down moves the camera up over the target.
	assert.InDelta(t, math.Pi/2-0.1, f.o.PolarAngle(), 1e-9)
	assert.Greater(t, f.cam.Position[1], 0.0)
}

func TestOrbitPolarClamp(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.MinPolarAngle = math.Pi / 4
	f.o.MaxPolarAngle = math.Pi / 2

	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	f.el.InjectPointerMove(1, 400, 0)
	assert.InDelta(t, math.Pi/2, f.o.PolarAngle(), 1e-9)

	f.el.InjectPointerMove(1, 400, 600)
	f.el.InjectPointerMove(1, 400, 1200)
	assert.InDelta(t, math.Pi/4, f.o.PolarAngle(), 1e-9)
}

func TestOrbitPolarNeverReachesPole(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	for y := 300.0; y <= 3000; y += 100 {
		f.el.InjectPointerMove(1, 400, y)
	}
	phi := f.o.PolarAngle()
	assert.Greater(t, phi, 0.0)
	assert.InDelta(t, sphericalEpsilon, phi, 1e-9)
	assert.False(t, math.IsNaN(f.cam.Rotation.W))
}

func TestOrbitAzimuthClamp(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.MinAzimuthAngle = -0.01
	f.o.MaxAzimuthAngle = 0.01

	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	f.el.InjectPointerMove(1, 500, 300)
	assert.InDelta(t, -0.01, f.o.AzimuthalAngle(), 1e-9)
}

func TestClampAzimuth(t *testing.T) {
	deg := mgl64.DegToRad
	inf := math.Inf(1)

	assert.Equal(t, 3.0, clampAzimuth(3, -inf, inf), "infinite limits")
	assert.Equal(t, 3.0, clampAzimuth(3, math.NaN(), 1))
	assert.InDelta(t, deg(45), clampAzimuth(1, deg(-45), deg(45)), 1e-12)
	assert.InDelta(t, deg(-45), clampAzimuth(-1, deg(-45), deg(45)), 1e-12)
	assert.InDelta(t, 0.5, clampAzimuth(0.5, deg(-45), deg(45)), 1e-12)

	// The arc [170°, 190°] crosses ±π.
	min, max := deg(170), deg(-170)
	assert.InDelta(t, math.Pi, clampAzimuth(math.Pi, min, max), 1e-12)
	assert.InDelta(t, deg(170), clampAzimuth(deg(160), min, max), 1e-12)
	assert.InDelta(t, deg(-170), clampAzimuth(deg(-160), min, max), 1e-12)
	assert.InDelta(t, deg(175), clampAzimuth(deg(175), min, max), 1e-12)

	// Limits outside [-π, π] are wrapped first.
	assert.InDelta(t, deg(175), clampAzimuth(deg(175), deg(170), deg(190)), 1e-12)
	assert.InDelta(t, deg(-90), clampAzimuth(0, deg(-450+180), deg(-90)), 1e-12)
}

func TestOrbitDollyDrag(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectPointerDown(1, MouseButtonMiddle, 400, 300)
	f.el.InjectPointerMove(1, 400, 360)
	assert.InDelta(t, 9, f.o.Distance(), 1e-9)
	assertVec3InDelta(t, mgl64.Vec3{0, 0, 9}, f.cam.Position, 1e-9)
}

func TestOrbitWheel(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectWheel(400, 300, 60)
	assert.InDelta(t, 9, f.o.Distance(), 1e-9)
	f.el.InjectWheel(400, 300, -60)
	assert.InDelta(t, 9*1.1, f.o.Distance(), 1e-9)
	assert.Equal(t, 2, f.count(EventChange))
	assert.Zero(t, f.count(EventStart))

	f.o.EnableZoom = false
	f.el.InjectWheel(400, 300, 60)
	assert.InDelta(t, 9*1.1, f.o.Distance(), 1e-9)
}

func TestOrbitZoomSpeed(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.ZoomSpeed = 2

	f.el.InjectWheel(400, 300, 60)
	assert.InDelta(t, 10*0.81, f.o.Distance(), 1e-9)
}

func TestOrbitDistanceLimits(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.MinDistance = 8
	f.o.MaxDistance = 12

	for i := 0; i < 10; i++ {
		f.el.InjectWheel(400, 300, 120)
	}
	assert.InDelta(t, 8, f.o.Distance(), 1e-9)

	for i := 0; i < 10; i++ {
		f.el.InjectWheel(400, 300, -120)
	}
	assert.InDelta(t, 12, f.o.Distance(), 1e-9)
}

func TestOrbitOrthographicDollyZooms(t *testing.T) {
	cam := NewOrthographicCamera(-4, 4, 3, -3, 0.1, 100)
	cam.Position = mgl64.Vec3{0, 0, 10}
	f := newOrbitFixture(cam)

	f.el.InjectWheel(400, 300, 60)
	assert.InDelta(t, 1/0.9, cam.Zoom, 1e-9)
	assert.InDelta(t, 10, f.o.Distance(), 1e-9)

	f.o.MaxZoom = 1.2
	f.el.InjectWheel(400, 300, 300)
	assert.InDelta(t, 1.2, cam.Zoom, 1e-9)
}

func TestOrbitPan(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectPointerDown(1, MouseButtonRight, 400, 300)
	f.el.InjectPointerMove(1, 500, 300)

	want := -10 * 0.25 * 800.0 / 600
	assertVec3InDelta(t, mgl64.Vec3{want, 0, 0}, f.o.Target, 1e-9)
	assertVec3InDelta(t, mgl64.Vec3{want, 0, 10}, f.cam.Position, 1e-9)
	assert.InDelta(t, 10, f.o.Distance(), 1e-9)
}

func TestOrbitPanSpeed(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.PanSpeed = 2

	f.el.InjectPointerDown(1, MouseButtonRight, 400, 300)
	f.el.InjectPointerMove(1, 500, 300)
	assert.InDelta(t, -20*0.25*800.0/600, f.o.Target[0], 1e-9)
}

func TestOrbitModifierSwapsRotateAndPan(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.Modifiers = ModShift
	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	f.el.InjectPointerMove(1, 500, 300)
	f.el.InjectPointerUp(1, 500, 300)
	assert.NotEqual(t, mgl64.Vec3{}, f.o.Target, "shift + left pans")
	assert.InDelta(t, 0, f.o.AzimuthalAngle(), 1e-9)

	target := f.o.Target
	f.el.Modifiers = ModCtrl
	f.el.InjectPointerDown(1, MouseButtonRight, 400, 300)
	f.el.InjectPointerMove(1, 410, 300)
	assert.Equal(t, target, f.o.Target, "ctrl + right rotates")
	assert.NotEqual(t, 0.0, f.o.AzimuthalAngle())
}

func TestOrbitDisabledActions(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.EnableRotate = false
	f.o.EnablePan = false
	f.o.EnableZoom = false
	before := *f.cam

	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	f.el.InjectPointerMove(1, 500, 350)
	f.el.InjectPointerUp(1, 500, 350)
	f.el.InjectPointerDown(1, MouseButtonRight, 400, 300)
	f.el.InjectPointerMove(1, 500, 350)
	f.el.InjectPointerUp(1, 500, 350)
	f.el.InjectKeyDown("ArrowUp", false)

	assert.Equal(t, before.Position, f.cam.Position)
	assert.Zero(t, f.count(EventChange))
	assert.Equal(t, 2, f.count(EventStart))
	assert.Equal(t, 2, f.count(EventEnd))
}

func TestOrbitStartEndPairing(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectPointerDown(1, MouseButtonLeft, 100, 100)
	f.el.InjectPointerDown(2, MouseButtonLeft, 200, 100)
	f.el.InjectPointerUp(1, 100, 100)
	assert.Equal(t, 1, f.count(EventStart))
	assert.Zero(t, f.count(EventEnd))

	f.el.InjectPointerUp(2, 200, 100)
	assert.Equal(t, 1, f.count(EventEnd))
}

func TestOrbitTwoFingerPinchDollies(t *testing.T) {
	f := newOrbitFixture(nil)
	f.el.PointerType = PointerTouch

	f.el.InjectPointerDown(1, MouseButtonLeft, 350, 300)
	f.el.InjectPointerDown(2, MouseButtonLeft, 450, 300)
	f.el.InjectPointerMove(2, 510, 300)

	// Spreading by 60 px on a 600 px element dollies in by 10 %.
	assert.InDelta(t, 9, f.o.Distance(), 0.5)
	assert.Less(t, f.o.Distance(), 10.0)
}

func TestOrbitTwoFingerDollyRotate(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.Touches.Two = TouchDollyRotate
	f.el.PointerType = PointerTouch

	f.el.InjectPointerDown(1, MouseButtonLeft, 350, 300)
	f.el.InjectPointerDown(2, MouseButtonLeft, 450, 300)
	f.el.InjectPointerMove(1, 370, 300)
	f.el.InjectPointerMove(2, 470, 300)

	assert.Equal(t, mgl64.Vec3{}, f.o.Target, "no panning")
	assert.Less(t, f.o.AzimuthalAngle(), 0.0)
	// Each finger moving in turn shrinks then restores the spread.
	assert.InDelta(t, 10, f.o.Distance(), 0.02)
}

func TestOrbitOneFingerTouchPan(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.Touches.One = TouchPan
	f.el.PointerType = PointerTouch

	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	f.el.InjectPointerMove(1, 500, 300)
	assert.Less(t, f.o.Target[0], 0.0)
	assert.InDelta(t, 0, f.o.AzimuthalAngle(), 1e-9)
}

func TestOrbitKeyPan(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectKeyDown("ArrowUp", false)
	fovFactor := 10 * math.Tan(math.Pi/4) * 2 / 600
	assertVec3InDelta(t, mgl64.Vec3{0, 7 * fovFactor, 0}, f.o.Target, 1e-9)

	f.el.InjectKeyDown("ArrowLeft", true) // repeats pan too
	assert.InDelta(t, -7*fovFactor, f.o.Target[0], 1e-9)

	f.el.InjectKeyDown("ArrowRight", false)
	f.el.InjectKeyDown("ArrowDown", false)
	assertVec3InDelta(t, mgl64.Vec3{}, f.o.Target, 1e-9)

	f.o.EnableKeys = false
	f.el.InjectKeyDown("ArrowUp", false)
	assertVec3InDelta(t, mgl64.Vec3{}, f.o.Target, 1e-9)
}

func TestOrbitKeyPanOrthographic(t *testing.T) {
	cam := NewOrthographicCamera(-4, 4, 3, -3, 0.1, 100)
	cam.Position = mgl64.Vec3{0, 0, 10}
	cam.Zoom = 2
	f := newOrbitFixture(cam)

	f.el.InjectKeyDown("ArrowUp", false)
	assert.InDelta(t, 7*6.0/2/600, f.o.Target[1], 1e-9)
}

func TestOrbitGroundPlanePanning(t *testing.T) {
	cam := NewPerspectiveCamera(60, 800.0/600, 0.1, 100)
	cam.Position = mgl64.Vec3{0, 10, 10}
	cam.LookAt(mgl64.Vec3{})
	f := newOrbitFixture(cam)
	f.o.ScreenSpacePanning = false

	f.el.InjectPointerDown(1, MouseButtonRight, 400, 300)
	f.el.InjectPointerMove(1, 400, 250)
	assert.InDelta(t, 0, f.o.Target[1], 1e-9, "target stays on the ground")
	assert.NotEqual(t, 0.0, f.o.Target[2])
	assert.InDelta(t, 10, cam.Position[1], 1e-9)
}

func TestOrbitDampingContinuesAfterRelease(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.EnableDamping = true

	f.el.InjectPointerDown(1, MouseButtonLeft, 100, 100)
	f.el.InjectPointerMove(1, 110, 100)
	f.el.InjectPointerUp(1, 110, 100)
	azimuth := f.o.AzimuthalAngle()
	assert.Zero(t, f.count(EventEnd))

	f.frame()
	assert.Less(t, f.o.AzimuthalAngle(), azimuth, "inertia keeps rotating")

	for i := 0; i < 500 && f.o.SimulatedPointer() != nil; i++ {
		f.frame()
	}
	assert.Equal(t, 1, f.count(EventEnd))
	assert.False(t, f.anim.Running())
}

func TestOrbitAutoRotate(t *testing.T) {
	f := newOrbitFixture(nil)

	f.o.SetAutoRotate(true)
	assert.True(t, f.o.AutoRotate())
	assert.True(t, f.anim.Running())

	f.frame()
	step := 2 * math.Pi / 3600
	assert.InDelta(t, -step, f.o.AzimuthalAngle(), 1e-9)

	f.o.AutoRotateSpeed = 2
	f.frame()
	assert.InDelta(t, -3*step, f.o.AzimuthalAngle(), 1e-9)

	f.o.SetAutoRotate(false)
	assert.False(t, f.anim.Running())
}

func TestOrbitAutoRotatePausedWhileInteracting(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.SetAutoRotate(true)

	f.el.InjectPointerDown(1, MouseButtonMiddle, 400, 300)
	f.frame()
	assert.InDelta(t, 0, f.o.AzimuthalAngle(), 1e-9)

	f.el.InjectPointerUp(1, 400, 300)
	f.frame()
	assert.Less(t, f.o.AzimuthalAngle(), 0.0)
}

func TestOrbitAutoRotateDampedRampsUp(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.EnableDamping = true
	f.o.SetAutoRotate(true)

	f.frame()
	first := -f.o.AzimuthalAngle()
	f.frame()
	second := -f.o.AzimuthalAngle() - first
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 2*math.Pi/3600)
	assert.Greater(t, second, first)
}

func TestOrbitAutoRotateRestartsOnEnable(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.SetAutoRotate(true)

	f.o.SetEnabled(false)
	assert.False(t, f.anim.Running())

	f.o.SetEnabled(true)
	assert.True(t, f.anim.Running())
}

func TestOrbitDisableMidGestureResumesAutoRotate(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.SetAutoRotate(true)

	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	f.o.SetEnabled(false)
	f.o.SetEnabled(true)
	require.Empty(t, f.o.Pointers())

	for i := 0; i < 30; i++ {
		f.frame()
	}
	assert.InDelta(t, -30*twoPi/3600, f.o.AzimuthalAngle(), 1e-9)
	assert.Equal(t, []EventType{EventStart, EventEnd, EventDisabled, EventEnabled}, f.events[:4])
}

func TestOrbitDisableDuringInertiaEndsGesture(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.EnableDamping = true

	f.el.InjectDrag(1, MouseButtonLeft, 100, 100, 140, 100, 2)
	require.Equal(t, 0, f.count(EventEnd), "inertia keeps the gesture open")

	f.o.SetEnabled(false)
	assert.Equal(t, 1, f.count(EventStart))
	assert.Equal(t, 1, f.count(EventEnd))

	f.o.SetEnabled(false)
	f.o.SetEnabled(true)
	f.o.SetEnabled(false)
	assert.Equal(t, 1, f.count(EventEnd), "no gesture, no extra end")
}

func TestOrbitReset(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectPointerDown(1, MouseButtonRight, 400, 300)
	f.el.InjectPointerMove(1, 500, 320)
	f.el.InjectPointerUp(1, 500, 320)
	f.el.InjectWheel(400, 300, 100)
	require.NotEqual(t, mgl64.Vec3{}, f.o.Target)

	changes := f.count(EventChange)
	f.o.Reset()
	assert.Equal(t, mgl64.Vec3{}, f.o.Target)
	assert.Equal(t, mgl64.Vec3{0, 0, 10}, f.cam.Position)
	assert.Equal(t, changes+1, f.count(EventChange))
	assert.InDelta(t, 10, f.o.Distance(), 1e-12)
}

func TestOrbitSaveState(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectWheel(400, 300, 60)
	f.o.SaveState()
	f.el.InjectWheel(400, 300, 60)
	f.o.Reset()
	assert.InDelta(t, 9, f.o.Distance(), 1e-9)
}

func TestOrbitResetAnimated(t *testing.T) {
	f := newOrbitFixture(nil)

	f.el.InjectPointerDown(1, MouseButtonRight, 400, 300)
	f.el.InjectPointerMove(1, 500, 300)
	f.el.InjectPointerUp(1, 500, 300)

	f.o.ResetAnimated(0.25, ease.Linear)
	require.True(t, f.o.Resetting())

	f.frame()
	assert.Less(t, f.o.Target[0], 0.0, "partway back")

	for i := 0; i < 100 && f.o.Resetting(); i++ {
		f.frame()
	}
	assert.False(t, f.o.Resetting())
	assert.Equal(t, mgl64.Vec3{}, f.o.Target)
	assert.Equal(t, mgl64.Vec3{0, 0, 10}, f.cam.Position)
	assert.False(t, f.anim.Running())
}

func TestOrbitPointerDownStopsResetAnimation(t *testing.T) {
	f := newOrbitFixture(nil)
	f.el.InjectWheel(400, 300, 60)

	f.o.ResetAnimated(1, ease.Linear)
	f.frame()
	f.el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	assert.False(t, f.o.Resetting())
}

func TestOrbitUnknownProjectionDisablesZoomAndPan(t *testing.T) {
	cam := NewPerspectiveCamera(50, 1, 0.1, 100)
	cam.Projection = ProjectionCustom
	cam.Position = mgl64.Vec3{0, 0, 10}
	f := newOrbitFixture(cam)

	assert.False(t, f.o.EnableZoom)
	assert.False(t, f.o.EnablePan)
	assert.True(t, f.o.EnableRotate)
}

func TestMapControls(t *testing.T) {
	el := NewVirtualElement(800, 600)
	cam := NewPerspectiveCamera(60, 800.0/600, 0.1, 100)
	cam.Position = mgl64.Vec3{0, 10, 10}
	cam.LookAt(mgl64.Vec3{})
	m := NewMapControls(cam, el, NewAnimationManager())

	assert.False(t, m.ScreenSpacePanning)
	assert.Equal(t, ActionPan, m.MouseButtons.Left)
	assert.Equal(t, ActionRotate, m.MouseButtons.Right)
	assert.Equal(t, TouchPan, m.Touches.One)
	assert.Equal(t, TouchDollyRotate, m.Touches.Two)

	el.InjectPointerDown(1, MouseButtonLeft, 400, 300)
	el.InjectPointerMove(1, 450, 300)
	assert.Less(t, m.Target[0], 0.0, "left drag pans")
	assert.InDelta(t, 0, m.Target[1], 1e-9)
}

func TestOrbitSwitchBindingsKeepsState(t *testing.T) {
	f := newOrbitFixture(nil)
	f.o.SetAutoRotate(true)
	f.el.InjectPointerDown(1, MouseButtonRight, 400, 300)
	f.el.InjectPointerMove(1, 450, 300)
	f.el.InjectPointerUp(1, 450, 300)
	target := f.o.Target
	require.NotEqual(t, mgl64.Vec3{}, target)

	f.o.UseMapBindings()
	assert.False(t, f.o.ScreenSpacePanning)
	assert.Equal(t, ButtonBindings{Left: ActionPan, Middle: ActionDolly, Right: ActionRotate}, f.o.MouseButtons)
	assert.Equal(t, TouchBindings{One: TouchPan, Two: TouchDollyRotate}, f.o.Touches)
	assert.Equal(t, target, f.o.Target)
	assert.True(t, f.o.AutoRotate())
	assert.True(t, f.anim.Running())

	f.o.UseOrbitBindings()
	assert.True(t, f.o.ScreenSpacePanning)
	assert.Equal(t, ButtonBindings{Left: ActionRotate, Middle: ActionDolly, Right: ActionPan}, f.o.MouseButtons)
	assert.Equal(t, TouchBindings{One: TouchRotate, Two: TouchDollyPan}, f.o.Touches)

	f.o.Reset()
	assert.Equal(t, mgl64.Vec3{}, f.o.Target, "the pose saved at construction survives")
	assert.Equal(t, mgl64.Vec3{0, 0, 10}, f.cam.Position)
}
