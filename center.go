package controls

import "github.com/go-gl/mathgl/mgl64"

// CenterPointer is a virtual pointer at the centroid of a set of live
// pointers. Its values are recomputed from the set on every read.
type CenterPointer struct {
	pointers []*Pointer
}

// UpdateCenter replaces the pointer set the centroid is computed from.
func (c *CenterPointer) UpdateCenter(pointers []*Pointer) {
	c.pointers = pointers
}

// Len returns the number of pointers in the set.
func (c *CenterPointer) Len() int {
	return len(c.pointers)
}

// Canvas returns the mean pixel-space position of the set.
func (c *CenterPointer) Canvas() Pointer2D {
	var out Pointer2D
	for _, p := range c.pointers {
		v := p.Canvas()
		out.Add(&v)
	}
	if len(c.pointers) > 1 {
		out.DivideScalar(float64(len(c.pointers)))
	}
	return out
}

// View returns the mean view-space position of the set.
func (c *CenterPointer) View() Pointer2D {
	var out Pointer2D
	for _, p := range c.pointers {
		v := p.View()
		out.Add(&v)
	}
	if len(c.pointers) > 1 {
		out.DivideScalar(float64(len(c.pointers)))
	}
	return out
}

// ProjectOnPlane returns the mean of every pointer's plane projection.
func (c *CenterPointer) ProjectOnPlane(center, normal mgl64.Vec3) Pointer3D {
	var out Pointer3D
	for _, p := range c.pointers {
		v := p.ProjectOnPlane(center, normal)
		out.Add(&v)
	}
	if len(c.pointers) > 1 {
		out.DivideScalar(float64(len(c.pointers)))
	}
	return out
}
