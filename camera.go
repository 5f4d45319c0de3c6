package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection selects how a Camera maps view space to the world.
type Projection uint8

const (
	ProjectionPerspective  Projection = iota // frustum defined by Fov and Aspect
	ProjectionOrthographic                   // box defined by Left/Right/Top/Bottom
	ProjectionCustom                         // caller-supplied CustomProjection matrix
)

// Camera is a 3D camera. Controls read and write Position, Rotation and Zoom
// directly; everything else is plain configuration.
type Camera struct {
	Projection Projection

	// Position is the camera origin in world space.
	Position mgl64.Vec3
	// Rotation orients the camera. The camera looks down its local -Z axis.
	Rotation mgl64.Quat
	// Up is the world-space up direction used by LookAt and orbiting.
	Up mgl64.Vec3

	// Fov is the vertical field of view in degrees (perspective only).
	Fov float64
	// Aspect is width / height (perspective only).
	Aspect float64
	// Left, Right, Top and Bottom bound the orthographic view volume.
	Left, Right, Top, Bottom float64
	Near, Far                float64

	// Zoom scales the projection (1 = no zoom).
	Zoom float64
	// Focus is the stereo focus distance. It is carried for save/restore.
	Focus float64

	// CustomProjection is used when Projection is ProjectionCustom.
	CustomProjection mgl64.Mat4

	virtual *Camera
}

// NewPerspectiveCamera creates a perspective camera at the origin looking
// down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	return &Camera{
		Projection: ProjectionPerspective,
		Rotation:   mgl64.QuatIdent(),
		Up:         unitY,
		Fov:        fov,
		Aspect:     aspect,
		Near:       near,
		Far:        far,
		Zoom:       1,
		Focus:      10,
	}
}

// NewOrthographicCamera creates an orthographic camera at the origin looking
// down -Z.
func NewOrthographicCamera(left, right, top, bottom, near, far float64) *Camera {
	return &Camera{
		Projection: ProjectionOrthographic,
		Rotation:   mgl64.QuatIdent(),
		Up:         unitY,
		Left:       left,
		Right:      right,
		Top:        top,
		Bottom:     bottom,
		Near:       near,
		Far:        far,
		Zoom:       1,
		Focus:      10,
	}
}

// CopyFrom copies every field of other into c.
func (c *Camera) CopyFrom(other *Camera) {
	virtual := c.virtual
	*c = *other
	c.virtual = virtual
}

// Clone returns an independent copy of c.
func (c *Camera) Clone() *Camera {
	clone := &Camera{}
	clone.CopyFrom(c)
	return clone
}

// virtualCamera returns a scratch clone of c, reused across calls, that
// callers may reposition freely.
func (c *Camera) virtualCamera() *Camera {
	if c.virtual == nil {
		c.virtual = &Camera{}
	}
	c.virtual.CopyFrom(c)
	return c.virtual
}

// Forward returns the world-space direction the camera looks in.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

// LookAt rotates the camera so that it faces target, keeping Up as the
// vertical reference.
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Rotation = lookRotation(c.Position, target, c.Up)
}

// lookRotation returns the orientation of an object at eye whose -Z axis
// points at target.
func lookRotation(eye, target, up mgl64.Vec3) mgl64.Quat {
	z := eye.Sub(target)
	if z.Len() == 0 {
		z = unitZ
	}
	z = z.Normalize()
	x := up.Cross(z)
	if x.Len() < 1e-9 {
		// up and z are parallel
		if math.Abs(up[2]) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
}

// WorldMatrix returns the camera-to-world transform.
func (c *Camera) WorldMatrix() mgl64.Mat4 {
	return mgl64.Translate3D(c.Position[0], c.Position[1], c.Position[2]).Mul4(c.Rotation.Mat4())
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return c.WorldMatrix().Inv()
}

// ProjectionMatrix returns the camera's projection, taking Zoom into account.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	switch c.Projection {
	case ProjectionPerspective:
		top := c.Near * math.Tan(mgl64.DegToRad(c.Fov)/2) / zoom
		halfW := top * c.Aspect
		return mgl64.Frustum(-halfW, halfW, -top, top, c.Near, c.Far)
	case ProjectionOrthographic:
		dx := (c.Right - c.Left) / (2 * zoom)
		dy := (c.Top - c.Bottom) / (2 * zoom)
		cx := (c.Right + c.Left) / 2
		cy := (c.Top + c.Bottom) / 2
		return mgl64.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.Near, c.Far)
	default:
		return c.CustomProjection
	}
}

// Project maps a world-space point to view space (x, y in [-1, 1] when
// visible, z is the normalized depth).
func (c *Camera) Project(p mgl64.Vec3) mgl64.Vec3 {
	v := c.ProjectionMatrix().Mul4(c.ViewMatrix()).Mul4x1(p.Vec4(1))
	if v[3] == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v[3])
}

// Unproject maps a view-space point back to world space.
func (c *Camera) Unproject(ndc mgl64.Vec3) mgl64.Vec3 {
	v := c.WorldMatrix().Mul4(c.ProjectionMatrix().Inv()).Mul4x1(ndc.Vec4(1))
	if v[3] == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v[3])
}

// Ray returns the world-space ray through the view-space point ndc.
func (c *Camera) Ray(ndc mgl64.Vec2) Ray {
	if c.Projection == ProjectionOrthographic {
		origin := c.Unproject(mgl64.Vec3{ndc[0], ndc[1], -1})
		return Ray{Origin: origin, Direction: c.Forward()}
	}
	far := c.Unproject(mgl64.Vec3{ndc[0], ndc[1], 0.5})
	return Ray{Origin: c.Position, Direction: safeNormalize(far.Sub(c.Position))}
}

// grazingThreshold is the smallest angle, in radians, between the view
// direction and a projection plane before rays are considered grazing.
func (c *Camera) grazingThreshold() float64 {
	if c.Projection == ProjectionPerspective {
		return mgl64.DegToRad(c.Fov) / 2
	}
	return mgl64.DegToRad(30)
}

func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}
