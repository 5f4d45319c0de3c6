package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/controls"

	"github.com/yohamta/donburi"
)

// CameraPoseData mirrors the pose of a controlled camera onto an entity.
type CameraPoseData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Zoom     float64
	// Interacting is true between EventStart and EventEnd. Disabling or
	// disposing the controls clears it.
	Interacting bool
	// Enabled follows EventEnabled and EventDisabled.
	Enabled bool
	// Changes counts EventChange notifications.
	Changes int
}

// CameraPose is the component updated by a store from NewCameraPoseStore.
var CameraPose = donburi.NewComponentType[CameraPoseData]()

type cameraPoseStore struct {
	donburiStore
	entity donburi.Entity
}

// NewCameraPoseStore creates an EntityStore that publishes notifications
// like NewDonburiStore and also keeps the CameraPose component of entity in
// sync: the pose is copied from the camera on every EventChange. Events for
// an entity that is gone or lacks the component are only published.
func NewCameraPoseStore(world donburi.World, entity donburi.Entity) controls.EntityStore {
	return &cameraPoseStore{donburiStore: donburiStore{world: world}, entity: entity}
}

func (s *cameraPoseStore) EmitEvent(event controls.ControlEvent) {
	s.donburiStore.EmitEvent(event)

	if !s.world.Valid(s.entity) {
		return
	}
	entry := s.world.Entry(s.entity)
	if !entry.HasComponent(CameraPose) {
		return
	}
	pose := CameraPose.Get(entry)
	switch event.Type {
	case controls.EventStart:
		pose.Interacting = true
	case controls.EventEnd:
		pose.Interacting = false
	case controls.EventChange:
		pose.Changes++
		if event.Controls != nil && event.Controls.Camera != nil {
			cam := event.Controls.Camera
			pose.Position = cam.Position
			pose.Rotation = cam.Rotation
			pose.Zoom = cam.Zoom
		}
	case controls.EventEnabled:
		pose.Enabled = true
	case controls.EventDisabled, controls.EventDispose:
		pose.Enabled = false
		pose.Interacting = false
	}
}
