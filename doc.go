// Package controls provides interactive camera controls (orbit, pan, dolly)
// and multi-pointer gesture tracking for 3D scenes rendered with
// [Ebitengine].
//
// The package turns raw mouse, touch, pen and keyboard input into tracked
// pointers, projects them from pixels to view space to the world, continues
// released drags with inertia, and applies the result to a [Camera].
//
// # Quick start
//
// Create one [AnimationManager] per application, an [Element] for the
// viewport and the controls themselves. Call the element's Update and the
// manager's Frame from ebiten.Game.Update:
//
//	anim := controls.NewAnimationManager()
//	el := controls.NewEbitenElement(800, 600)
//	cam := controls.NewPerspectiveCamera(50, 800.0/600, 0.1, 1000)
//	cam.Position = mgl64.Vec3{0, 0, 10}
//	orbit := controls.NewOrbitControls(cam, el, anim)
//	orbit.EnableDamping = true
//
//	func (g *Game) Update() error {
//		g.el.Update()
//		g.anim.Frame()
//		return nil
//	}
//
// # Gesture tracking
//
// [Tracker] is the policy-free base. It listens on an [Element], keeps the
// set of pressed pointers and held keys, captures pointers while pressed
// and reports every transition to a [GestureHandler]:
//
//	type painter struct{ controls.NopGestureHandler }
//
//	func (painter) OnTrackedPointerMove(p *controls.Pointer, ps []*controls.Pointer, c controls.PointerView) {
//		hit := p.ProjectOnPlane(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
//		// ...
//	}
//
//	t := controls.NewTracker(cam, el, anim, painter{})
//
// Each [Pointer] exposes its position in element pixels ([Pointer.Canvas]),
// in view space ([Pointer.View]) and on an arbitrary world plane
// ([Pointer.ProjectOnPlane]). With [Tracker.EnableDamping] set, the last
// released pointer keeps moving as a simulated pointer until its movement
// decays below a twentieth of a pixel per frame.
//
// # Notifications
//
// Controls publish start, end, change, enabled, disabled and dispose
// notifications. Subscribe with [Tracker.On]:
//
//	h := orbit.On(controls.EventChange, func(controls.ControlEvent) { redraw() })
//	defer h.Remove()
//
// ECS users can forward notifications into a [Donburi] world with the
// adapter in controls/ecs.
//
// # Testing and automation
//
// [VirtualElement] delivers injected events synchronously, and
// [LoadGestureScript] replays JSON gesture scripts frame by frame.
// [AnimationManager.SetClock] makes inertia deterministic.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package controls
