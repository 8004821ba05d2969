package scene

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"particlefield/internal/mathutil"
	"particlefield/internal/shape"
)

// Color oscillation endpoints shared by all orbiters. Each orbiter
// pulses between them out of phase with its neighbours.
var (
	orbiterColorA = colorful.Color{R: 0.31, G: 0.76, B: 0.97}
	orbiterColorB = colorful.Color{R: 0.91, G: 0.34, B: 0.81}
)

const (
	orbiterPointCount  = 120
	orbiterCloudRadius = 1.6
	colorPulseRate     = 1.2           // radians/sec through the blend cycle
	colorPulsePhase    = math.Pi * 0.4 // per-index phase offset
)

// Orbiter is a small decorative point cloud revolving around the main
// formation. Created once at scene init, never regenerated.
type Orbiter struct {
	Points   shape.PointSet
	Distance float64
	Speed    float64 // signed radians/frame; sign fixes orbit direction
	Angle    float64
	Tilt     float64
	YOffset  float64

	// Self-rotation of the orbiter's own cloud, radians.
	SpinX, SpinY float64
}

// newOrbiter draws a small sphere cloud plus randomized orbit
// parameters. Odd indices orbit in the opposite direction.
func newOrbiter(rng *rand.Rand, index int) *Orbiter {
	dir := 1.0
	if index%2 == 1 {
		dir = -1.0
	}
	return &Orbiter{
		Points:   shape.Sphere(rng, orbiterCloudRadius, orbiterPointCount),
		Distance: 26 + float64(index)*4,
		Speed:    dir * (0.004 + rng.Float64()*0.006),
		Angle:    rng.Float64() * 2 * math.Pi,
		Tilt:     (rng.Float64()*2 - 1) * 5,
		YOffset:  (rng.Float64()*2 - 1) * 6,
	}
}

// Advance moves the orbiter one frame along its orbit and spins its
// own cloud.
func (o *Orbiter) Advance() {
	o.Angle += o.Speed
	o.SpinX += 0.01
	o.SpinY += 0.02
}

// Position returns the orbit-frame position: a parametric circle in
// XZ with a tilt-scaled sine lift plus the fixed vertical offset.
func (o *Orbiter) Position() mathutil.Vec3 {
	return mathutil.Vec3{
		math.Cos(o.Angle) * o.Distance,
		math.Sin(o.Angle)*o.Tilt + o.YOffset,
		math.Sin(o.Angle) * o.Distance,
	}
}

// OrbiterColor is the color of orbiter index at time t: a sinusoidal
// blend between the two endpoint colors with a per-index phase offset,
// so orbiters pulse out of sync. Pure function of (t, index).
func OrbiterColor(t float64, index int) colorful.Color {
	f := 0.5 + 0.5*math.Sin(t*colorPulseRate+float64(index)*colorPulsePhase)
	return orbiterColorA.BlendRgb(orbiterColorB, f)
}
