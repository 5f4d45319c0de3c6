package controls

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// PointerView is the read side shared by Pointer and CenterPointer. Gesture
// policies accept it wherever either a real pointer or a centroid will do.
type PointerView interface {
	// Canvas returns the tracked position in element pixels.
	Canvas() Pointer2D
	// View returns the tracked position in view space ([-1, 1], Y up).
	View() Pointer2D
	// ProjectOnPlane casts the tracked positions onto the plane through
	// center with the given normal.
	ProjectOnPlane(center, normal mgl64.Vec3) Pointer3D
}

// Pointer is one tracked input stream: a mouse, a finger, a pen, or a
// simulated continuation of one of them after release.
type Pointer struct {
	ID   int
	Type PointerType
	// Button is the button that started the stream. Update does not change
	// it: move events report the primary button regardless of which one is
	// held, so a right drag stays a right drag.
	Button MouseButton
	// Modifiers is refreshed by every Update.
	Modifiers KeyModifiers

	canvas    Pointer2D
	simulated bool

	element Element
	camera  *Camera
}

// newPointer starts tracking the stream that produced the down event e.
func newPointer(e PointerEvent, camera *Camera, element Element) *Pointer {
	p := &Pointer{
		ID:        e.ID,
		Type:      e.PointerType,
		Button:    e.Button,
		Modifiers: e.Modifiers,
		element:   element,
		camera:    camera,
	}
	p.canvas.Set(e.X, e.Y)
	return p
}

// Update advances the pointer to the position in e and refreshes Modifiers.
// Button keeps its press-time value. Events from another stream are
// rejected: the pointer is left untouched and false is returned.
func (p *Pointer) Update(e PointerEvent, camera *Camera) bool {
	if e.ID != p.ID {
		logger.Errorf("pointer %d: rejected update from stream %d", p.ID, e.ID)
		return false
	}
	if camera != nil {
		p.camera = camera
	}
	p.Modifiers = e.Modifiers
	p.canvas.Update(e.X, e.Y)
	return true
}

// Simulated reports whether the pointer is an inertial continuation.
func (p *Pointer) Simulated() bool {
	return p.simulated
}

// Canvas returns the tracked position in element pixels.
func (p *Pointer) Canvas() Pointer2D {
	return p.canvas
}

// View returns the tracked position in view space. It is derived from the
// pixel position and the element's current size on every call.
func (p *Pointer) View() Pointer2D {
	v := p.canvas
	if p.element != nil {
		w, h := p.element.Size()
		v.ConvertToViewSpace(w, h)
	}
	return v
}

// Shift reports whether shift was held during the last update.
func (p *Pointer) Shift() bool { return p.Modifiers.Has(ModShift) }

// Ctrl reports whether control was held during the last update.
func (p *Pointer) Ctrl() bool { return p.Modifiers.Has(ModCtrl) }

// Meta reports whether meta was held during the last update.
func (p *Pointer) Meta() bool { return p.Modifiers.Has(ModMeta) }

// settle zeroes the pointer's pending movement.
func (p *Pointer) settle() {
	p.canvas.Settle()
}

// outsideElement reports whether the pointer has left the element's bounds.
func (p *Pointer) outsideElement() bool {
	if p.element == nil {
		return false
	}
	w, h := p.element.Size()
	if w == 0 || h == 0 {
		return false
	}
	x := p.canvas.Current[0] / w
	y := p.canvas.Current[1] / h
	return x < 0 || x > 1 || y < 0 || y > 1
}

// ProjectOnPlane casts the pointer's start, current and previous view-space
// positions through the camera onto the plane through center with the given
// normal.
func (p *Pointer) ProjectOnPlane(center, normal mgl64.Vec3) Pointer3D {
	return projectOnPlane(p.View(), p.camera, center, normal)
}

// projectOnPlane intersects camera rays through the view positions of v with
// a plane. When the camera looks at the plane at a grazing angle the rays are
// cast from a virtual camera rotated about the plane center until the angle
// clears the camera's threshold, which keeps intersections near the horizon
// from running off to infinity.
func projectOnPlane(v Pointer2D, camera *Camera, center, normal mgl64.Vec3) Pointer3D {
	var out Pointer3D
	if camera == nil {
		return out
	}
	normal = safeNormalize(normal)
	plane := NewPlane(center, normal)

	cam := camera
	forward := camera.Forward()
	facing := normal
	if forward.Dot(normal) <= 0 {
		facing = normal.Mul(-1)
	}
	grazing := math.Asin(mgl64.Clamp(forward.Dot(facing), -1, 1))
	threshold := camera.grazingThreshold()
	if grazing < threshold {
		axis := forward.Cross(facing)
		if axis.Len() > 1e-9 {
			q := mgl64.QuatRotate(threshold-grazing, axis.Normalize())
			cam = camera.virtualCamera()
			cam.Position = center.Add(q.Rotate(camera.Position.Sub(center)))
			cam.Rotation = q.Mul(camera.Rotation).Normalize()
		}
	}

	cast := func(ndc mgl64.Vec2) mgl64.Vec3 {
		r := cam.Ray(ndc)
		if hit, ok := r.IntersectPlane(plane); ok {
			return hit
		}
		return plane.ProjectPoint(r.Origin)
	}
	return *out.setAll(cast(v.Start), cast(v.Current), cast(v.Previous))
}

// ApplyDamping advances a simulated pointer by its last movement decayed by
// factor. The decay is referenced to 60 frames per second so the result does
// not depend on the frame rate. Real pointers are left untouched.
func (p *Pointer) ApplyDamping(factor float64, dt time.Duration) {
	if !p.simulated {
		return
	}
	damping := math.Pow(1-factor, dt.Seconds()*60)
	m := p.canvas.Movement.Mul(damping)
	next := p.canvas.Current.Add(m)
	p.canvas.Update(next[0], next[1])
}

// Ray returns the camera ray through the pointer's current position.
func (p *Pointer) Ray() Ray {
	if p.camera == nil {
		return Ray{}
	}
	return p.camera.Ray(p.View().Current)
}

// IntersectObjects casts the pointer ray against objects and returns the hits
// sorted by distance.
func (p *Pointer) IntersectObjects(objects []Intersectable) []Intersection {
	if p.camera == nil {
		return nil
	}
	return intersectObjects(p.Ray(), objects)
}

// IntersectPlane returns where the pointer ray crosses plane.
func (p *Pointer) IntersectPlane(plane Plane) (mgl64.Vec3, bool) {
	if p.camera == nil {
		return mgl64.Vec3{}, false
	}
	return p.Ray().IntersectPlane(plane)
}
