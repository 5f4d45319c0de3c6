package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// sphericalEpsilon keeps Phi away from the poles, where Theta is undefined.
const sphericalEpsilon = 1e-6

// Spherical holds spherical coordinates with +Y as the polar axis: Phi is
// the angle from +Y and Theta the angle around Y measured from +Z.
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// SetFromVec3 sets s from the cartesian vector v.
func (s *Spherical) SetFromVec3(v mgl64.Vec3) *Spherical {
	s.Radius = v.Len()
	if s.Radius == 0 {
		s.Theta = 0
		s.Phi = 0
		return s
	}
	s.Theta = math.Atan2(v[0], v[2])
	s.Phi = math.Acos(mgl64.Clamp(v[1]/s.Radius, -1, 1))
	return s
}

// Vec3 returns the cartesian vector for s.
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// MakeSafe restricts Phi to (0, π).
func (s *Spherical) MakeSafe() *Spherical {
	s.Phi = mgl64.Clamp(s.Phi, sphericalEpsilon, math.Pi-sphericalEpsilon)
	return s
}
