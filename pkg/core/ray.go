package core

// Ray represents a ray with an origin and direction.
// InvDirection caches 1/Direction per axis for slab tests; a zero
// direction component yields a signed infinity.
type Ray struct {
	Origin       Vec3
	Direction    Vec3
	InvDirection Vec3
	Depth        int     // Recursion depth, 0 for camera rays
	IOR          float64 // Refractive index of the medium the ray travels through
}

// NewRay creates a new camera-depth ray travelling through air
func NewRay(origin, direction Vec3) Ray {
	return NewRayAtDepth(origin, direction, 0, 1.0)
}

// NewRayAtDepth creates a ray at the given recursion depth and medium IOR
func NewRayAtDepth(origin, direction Vec3, depth int, ior float64) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		InvDirection: Vec3{
			X: 1.0 / direction.X,
			Y: 1.0 / direction.Y,
			Z: 1.0 / direction.Z,
		},
		Depth: depth,
		IOR:   ior,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Spawn creates a secondary ray one level deeper in the same medium
func (r Ray) Spawn(origin, direction Vec3) Ray {
	return NewRayAtDepth(origin, direction, r.Depth+1, r.IOR)
}

// IntersectBox runs the slab test against box and returns the parametric
// entry and exit distances. Parallel rays produce ±Inf slab distances;
// the NaN from an origin lying exactly on a slab plane fails both
// comparisons and leaves the interval unchanged.
func (r Ray) IntersectBox(box AABB) (tMin, tMax float64, ok bool) {
	tx1 := (box.Min.X - r.Origin.X) * r.InvDirection.X
	tx2 := (box.Max.X - r.Origin.X) * r.InvDirection.X
	ty1 := (box.Min.Y - r.Origin.Y) * r.InvDirection.Y
	ty2 := (box.Max.Y - r.Origin.Y) * r.InvDirection.Y
	tz1 := (box.Min.Z - r.Origin.Z) * r.InvDirection.Z
	tz2 := (box.Max.Z - r.Origin.Z) * r.InvDirection.Z

	tMin = negInf
	tMax = posInf
	tMin, tMax = narrow(tMin, tMax, tx1, tx2)
	tMin, tMax = narrow(tMin, tMax, ty1, ty2)
	tMin, tMax = narrow(tMin, tMax, tz1, tz2)

	if tMin > tMax || tMax < 0 {
		return 0, 0, false
	}
	return tMin, tMax, true
}

// narrow intersects the running interval with one slab
func narrow(tMin, tMax, t1, t2 float64) (float64, float64) {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tMin {
		tMin = t1
	}
	if t2 < tMax {
		tMax = t2
	}
	return tMin, tMax
}
