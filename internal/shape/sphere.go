package shape

import (
	"math"
	"math/rand"
)

// Sphere generates count points distributed uniformly over the surface
// of a sphere of the given radius. The polar angle is drawn as
// acos(2u-1) so points do not cluster at the poles.
func Sphere(rng *rand.Rand, radius float64, count int) PointSet {
	pts := NewPointSet(count)
	for i := 0; i < count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		sinPhi := math.Sin(phi)
		pts[3*i] = radius * sinPhi * math.Cos(theta)
		pts[3*i+1] = radius * sinPhi * math.Sin(theta)
		pts[3*i+2] = radius * math.Cos(phi)
	}
	return pts
}

// Shell generates count points in a spherical shell between inner and
// outer radius, used for the background star field.
func Shell(rng *rand.Rand, inner, outer float64, count int) PointSet {
	pts := NewPointSet(count)
	for i := 0; i < count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		r := inner + rng.Float64()*(outer-inner)
		sinPhi := math.Sin(phi)
		pts[3*i] = r * sinPhi * math.Cos(theta)
		pts[3*i+1] = r * sinPhi * math.Sin(theta)
		pts[3*i+2] = r * math.Cos(phi)
	}
	return pts
}
