// Package ecs connects camera controls to a [Donburi] world.
//
// [NewDonburiStore] publishes every controls notification (start, end,
// change, enabled, disabled, dispose) as a [ControlEventType] event, so
// systems can react to gestures without holding the controls themselves.
//
// [NewCameraPoseStore] does the same and additionally mirrors the camera
// onto a [CameraPose] component: position, rotation and zoom after every
// change, whether a gesture is in progress, and whether the controls are
// enabled. Systems that only need the current view read the component.
//
// Usage:
//
//	cam := world.Create(ecs.CameraPose)
//	orbit.SetEntityStore(ecs.NewCameraPoseStore(world, cam))
//
// Events are queued by Donburi; call [events.ProcessAllEvents] once per
// frame after the controls have run.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
