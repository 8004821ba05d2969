package shape

import "particlefield/internal/mathutil"

// PointSet is an ordered, fixed-length set of 3D coordinates stored as
// a flat slice for cache locality: [x0,y0,z0, x1,y1,z1, ...].
// Length is always exactly 3×count.
type PointSet []float64

// NewPointSet allocates a zeroed set of count points.
func NewPointSet(count int) PointSet {
	return make(PointSet, 3*count)
}

// Count returns the number of points.
func (p PointSet) Count() int {
	return len(p) / 3
}

// At returns point i as a vector.
func (p PointSet) At(i int) mathutil.Vec3 {
	return mathutil.Vec3{p[3*i], p[3*i+1], p[3*i+2]}
}

// Clone returns an independent copy.
func (p PointSet) Clone() PointSet {
	c := make(PointSet, len(p))
	copy(c, p)
	return c
}

// Bounds returns the axis-aligned min/max corners. Zero vectors for an
// empty set.
func (p PointSet) Bounds() (min, max mathutil.Vec3) {
	n := p.Count()
	if n == 0 {
		return
	}
	min = p.At(0)
	max = min
	for i := 1; i < n; i++ {
		v := p.At(i)
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return
}
