package controls

import "github.com/go-gl/mathgl/mgl64"

// Pointer2D tracks a 2D position over time. Movement is always
// Current-Previous and Offset is always Current-Start.
type Pointer2D struct {
	Start    mgl64.Vec2
	Current  mgl64.Vec2
	Previous mgl64.Vec2
	Movement mgl64.Vec2
	Offset   mgl64.Vec2
}

// Set places all positions at (x, y) with zero movement and offset.
func (p *Pointer2D) Set(x, y float64) *Pointer2D {
	v := mgl64.Vec2{x, y}
	p.Start = v
	p.Current = v
	p.Previous = v
	p.Movement = mgl64.Vec2{}
	p.Offset = mgl64.Vec2{}
	return p
}

// Update moves the pointer to (x, y), shifting Current into Previous.
func (p *Pointer2D) Update(x, y float64) *Pointer2D {
	p.Previous = p.Current
	p.Current = mgl64.Vec2{x, y}
	p.Movement = p.Current.Sub(p.Previous)
	p.Offset = p.Current.Sub(p.Start)
	return p
}

// Settle drops any pending movement by moving Previous onto Current.
func (p *Pointer2D) Settle() *Pointer2D {
	p.Previous = p.Current
	p.Movement = mgl64.Vec2{}
	return p
}

// Add accumulates other into p component-wise.
func (p *Pointer2D) Add(other *Pointer2D) *Pointer2D {
	p.Start = p.Start.Add(other.Start)
	p.Current = p.Current.Add(other.Current)
	p.Previous = p.Previous.Add(other.Previous)
	p.Movement = p.Movement.Add(other.Movement)
	p.Offset = p.Offset.Add(other.Offset)
	return p
}

// DivideScalar divides every vector by s.
func (p *Pointer2D) DivideScalar(s float64) *Pointer2D {
	p.Start = p.Start.Mul(1 / s)
	p.Current = p.Current.Mul(1 / s)
	p.Previous = p.Previous.Mul(1 / s)
	p.Movement = p.Movement.Mul(1 / s)
	p.Offset = p.Offset.Mul(1 / s)
	return p
}

// Copy overwrites p with other.
func (p *Pointer2D) Copy(other *Pointer2D) *Pointer2D {
	*p = *other
	return p
}

// Clear zeroes every vector.
func (p *Pointer2D) Clear() *Pointer2D {
	*p = Pointer2D{}
	return p
}

// ConvertToViewSpace maps pixel coordinates inside a width x height element
// to view space, where both axes span [-1, 1] and Y points up. Positions are
// shifted and scaled; movement and offset are only scaled.
func (p *Pointer2D) ConvertToViewSpace(width, height float64) *Pointer2D {
	if width == 0 || height == 0 {
		return p
	}
	pos := func(v mgl64.Vec2) mgl64.Vec2 {
		return mgl64.Vec2{v[0]/width*2 - 1, -(v[1]/height*2 - 1)}
	}
	delta := func(v mgl64.Vec2) mgl64.Vec2 {
		return mgl64.Vec2{v[0] / width * 2, -v[1] / height * 2}
	}
	p.Start = pos(p.Start)
	p.Current = pos(p.Current)
	p.Previous = pos(p.Previous)
	p.Movement = delta(p.Movement)
	p.Offset = delta(p.Offset)
	return p
}

// Pointer3D is the world-space counterpart of Pointer2D, produced by
// projecting a pointer onto a plane.
type Pointer3D struct {
	Start    mgl64.Vec3
	Current  mgl64.Vec3
	Previous mgl64.Vec3
	Movement mgl64.Vec3
	Offset   mgl64.Vec3
}

// Set places all positions at v with zero movement and offset.
func (p *Pointer3D) Set(v mgl64.Vec3) *Pointer3D {
	p.Start = v
	p.Current = v
	p.Previous = v
	p.Movement = mgl64.Vec3{}
	p.Offset = mgl64.Vec3{}
	return p
}

// Update moves the pointer to v, shifting Current into Previous.
func (p *Pointer3D) Update(v mgl64.Vec3) *Pointer3D {
	p.Previous = p.Current
	p.Current = v
	p.Movement = p.Current.Sub(p.Previous)
	p.Offset = p.Current.Sub(p.Start)
	return p
}

// setAll assigns the three positions and derives movement and offset.
func (p *Pointer3D) setAll(start, current, previous mgl64.Vec3) *Pointer3D {
	p.Start = start
	p.Current = current
	p.Previous = previous
	p.Movement = current.Sub(previous)
	p.Offset = current.Sub(start)
	return p
}

// Add accumulates other into p component-wise.
func (p *Pointer3D) Add(other *Pointer3D) *Pointer3D {
	p.Start = p.Start.Add(other.Start)
	p.Current = p.Current.Add(other.Current)
	p.Previous = p.Previous.Add(other.Previous)
	p.Movement = p.Movement.Add(other.Movement)
	p.Offset = p.Offset.Add(other.Offset)
	return p
}

// DivideScalar divides every vector by s.
func (p *Pointer3D) DivideScalar(s float64) *Pointer3D {
	p.Start = p.Start.Mul(1 / s)
	p.Current = p.Current.Mul(1 / s)
	p.Previous = p.Previous.Mul(1 / s)
	p.Movement = p.Movement.Mul(1 / s)
	p.Offset = p.Offset.Mul(1 / s)
	return p
}

// Copy overwrites p with other.
func (p *Pointer3D) Copy(other *Pointer3D) *Pointer3D {
	*p = *other
	return p
}

// Clear zeroes every vector.
func (p *Pointer3D) Clear() *Pointer3D {
	*p = Pointer3D{}
	return p
}
