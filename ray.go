package controls

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line starting at Origin. Direction is expected to be unit
// length.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// DistanceToPlane returns the distance along the ray to p, and false when the
// ray is parallel to the plane or points away from it.
func (r Ray) DistanceToPlane(p Plane) (float64, bool) {
	denom := p.Normal.Dot(r.Direction)
	if denom == 0 {
		if p.DistanceToPoint(r.Origin) == 0 {
			return 0, true
		}
		return 0, false
	}
	t := -(r.Origin.Dot(p.Normal) + p.Constant) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlane returns the point where the ray crosses p.
func (r Ray) IntersectPlane(p Plane) (mgl64.Vec3, bool) {
	t, ok := r.DistanceToPlane(p)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return r.At(t), true
}

// Plane is the set of points x with Normal·x + Constant = 0.
type Plane struct {
	Normal   mgl64.Vec3
	Constant float64
}

// NewPlane creates the plane through point with the given normal.
func NewPlane(point, normal mgl64.Vec3) Plane {
	n := safeNormalize(normal)
	return Plane{Normal: n, Constant: -point.Dot(n)}
}

// DistanceToPoint returns the signed distance from the plane to p.
func (pl Plane) DistanceToPoint(p mgl64.Vec3) float64 {
	return pl.Normal.Dot(p) + pl.Constant
}

// ProjectPoint returns the orthogonal projection of p onto the plane.
func (pl Plane) ProjectPoint(p mgl64.Vec3) mgl64.Vec3 {
	return p.Sub(pl.Normal.Mul(pl.DistanceToPoint(p)))
}

// Intersection is a ray hit.
type Intersection struct {
	Distance float64
	Point    mgl64.Vec3
	Object   Intersectable
}

// Intersectable is anything a pointer ray can hit.
type Intersectable interface {
	IntersectRay(r Ray) (Intersection, bool)
}

// Sphere is a simple Intersectable, useful for picking and tests.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// IntersectRay returns the nearest hit in front of the ray origin.
func (s *Sphere) IntersectRay(r Ray) (Intersection, bool) {
	oc := s.Center.Sub(r.Origin)
	tca := oc.Dot(r.Direction)
	d2 := oc.Dot(oc) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return Intersection{}, false
	}
	thc := math.Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t1 < 0 {
		return Intersection{}, false
	}
	t := t0
	if t0 < 0 {
		t = t1
	}
	return Intersection{Distance: t, Point: r.At(t), Object: s}, true
}

// intersectObjects casts r against objects and returns hits sorted by
// distance, nearest first.
func intersectObjects(r Ray, objects []Intersectable) []Intersection {
	var hits []Intersection
	for _, obj := range objects {
		if hit, ok := obj.IntersectRay(r); ok {
			hits = append(hits, hit)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}
