package scene

import (
	"math"
	"math/rand"
	"testing"

	"particlefield/internal/mathutil"
)

func newTestAnimator(width int) *Animator {
	return NewAnimator(rand.New(rand.NewSource(1)), width)
}

func TestDriftingOrbitRadius(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  float64
	}{
		{"desktop", 1280, desktopOrbitRadius},
		{"mobile", 400, mobileOrbitRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnimator(tt.width)
			for i := 0; i < 50; i++ {
				tm := float64(i) * 0.37
				a.Advance(tm, false)
				pos := a.Context().Camera.Pos
				r := math.Hypot(pos[0], pos[2])
				if math.Abs(r-tt.want) > 1e-9 {
					t.Fatalf("t=%v: horizontal radius = %v, want %v", tm, r, tt.want)
				}
				if math.Abs(pos[1]) > bobAmount+1e-9 {
					t.Fatalf("t=%v: bob %v exceeds ±%v", tm, pos[1], bobAmount)
				}
				if a.Context().Camera.Mode != Drifting {
					t.Fatal("mode not Drifting")
				}
			}
		})
	}
}

func TestDriftingSpinsCloud(t *testing.T) {
	a := newTestAnimator(1280)
	before := a.Context().Rotation
	for i := 0; i < 10; i++ {
		a.Advance(float64(i)/60, false)
	}
	got := a.Context().Rotation - before
	want := 10 * spinPerTick
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("rotation advanced %v, want %v", got, want)
	}
}

// In Centering mode the cloud rotation must converge to the nearest
// multiple of a full turn smoothly, never by snapping.
func TestCenteringUnwindsToNearestTurn(t *testing.T) {
	tests := []struct {
		name string
		rot  float64
	}{
		{"under half turn", 2.1},
		{"over half turn", 4.5},
		{"many turns", 6*2*math.Pi + 1.2},
		{"negative", -9.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnimator(1280)
			a.Context().Rotation = tt.rot
			want := mathutil.NearestTurn(tt.rot)

			prev := tt.rot
			for i := 0; i < 600; i++ {
				a.Advance(float64(i)/60, true)
				rot := a.Context().Rotation
				// No discontinuous snap: converging steps shrink.
				if math.Abs(rot-want) > math.Abs(prev-want)+1e-9 {
					t.Fatalf("frame %d: rotation diverged: %v after %v (target %v)", i, rot, prev, want)
				}
				prev = rot
			}
			if math.Abs(prev-want) > 1e-3 {
				t.Errorf("rotation = %v, want converged to %v", prev, want)
			}
		})
	}
}

func TestCenteringCameraConverges(t *testing.T) {
	a := newTestAnimator(1280)
	// Leave Drifting from an arbitrary orbit position first.
	a.Advance(3.3, false)

	for i := 0; i < 600; i++ {
		a.Advance(3.3+float64(i)/60, true)
	}
	pos := a.Context().Camera.Pos
	if math.Abs(pos[0]) > 1e-3 || math.Abs(pos[1]) > 1e-3 {
		t.Errorf("camera X/Y = (%v, %v), want ~0", pos[0], pos[1])
	}
	if pos[2] < 1 {
		t.Errorf("camera Z = %v, want front-facing positive distance", pos[2])
	}
	if a.Context().Camera.Mode != Centering {
		t.Error("mode not Centering")
	}
	// The fixed point is stable.
	before := pos
	a.Advance(100, true)
	after := a.Context().Camera.Pos
	if before.Sub(after).Len() > 1e-6 {
		t.Errorf("camera moved %v after convergence", before.Sub(after).Len())
	}
}

func TestStarFieldRotatesIndependently(t *testing.T) {
	a := newTestAnimator(1280)
	for i := 0; i < 10; i++ {
		a.Advance(float64(i)/60, i%2 == 0) // mode flapping must not matter
	}
	s := a.Context().Stars
	if math.Abs(s.RotX-10*starRotXPerTick) > 1e-12 {
		t.Errorf("RotX = %v, want %v", s.RotX, 10*starRotXPerTick)
	}
	if math.Abs(s.RotY-10*starRotYPerTick) > 1e-12 {
		t.Errorf("RotY = %v, want %v", s.RotY, 10*starRotYPerTick)
	}
	if s.Points.Count() != starCount {
		t.Errorf("star count = %d, want %d", s.Points.Count(), starCount)
	}
}

func TestOrbiters(t *testing.T) {
	a := newTestAnimator(1280)
	orbs := a.Context().Orbiters
	if len(orbs) != numOrbiters {
		t.Fatalf("orbiter count = %d, want %d", len(orbs), numOrbiters)
	}

	// Mixed orbit directions.
	pos, neg := 0, 0
	for _, o := range orbs {
		if o.Speed > 0 {
			pos++
		} else if o.Speed < 0 {
			neg++
		}
		if o.Points.Count() != orbiterPointCount {
			t.Errorf("orbiter cloud = %d points, want %d", o.Points.Count(), orbiterPointCount)
		}
	}
	if pos == 0 || neg == 0 {
		t.Errorf("orbit directions not mixed: %d positive, %d negative", pos, neg)
	}

	// Position stays on the parametric orbit.
	o := orbs[0]
	for i := 0; i < 100; i++ {
		o.Advance()
		p := o.Position()
		if r := math.Hypot(p[0], p[2]); math.Abs(r-o.Distance) > 1e-9 {
			t.Fatalf("orbit radius = %v, want %v", r, o.Distance)
		}
	}
}

// Color is a pure function of (time, index): reproducible, bounded by
// the endpoints, and out of phase between orbiters.
func TestOrbiterColor(t *testing.T) {
	if OrbiterColor(1.5, 2) != OrbiterColor(1.5, 2) {
		t.Error("color not reproducible for identical inputs")
	}
	if OrbiterColor(1.5, 0) == OrbiterColor(1.5, 1) {
		t.Error("neighbouring orbiters pulse in phase")
	}

	period := 2 * math.Pi / colorPulseRate
	a := OrbiterColor(0.7, 3)
	b := OrbiterColor(0.7+period, 3)
	if math.Abs(a.R-b.R) > 1e-9 || math.Abs(a.G-b.G) > 1e-9 || math.Abs(a.B-b.B) > 1e-9 {
		t.Errorf("color not periodic: %v vs %v", a, b)
	}

	for i := 0; i < 200; i++ {
		c := OrbiterColor(float64(i)*0.1, i%numOrbiters)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < -1e-9 || v > 1+1e-9 {
				t.Fatalf("color channel %v outside [0,1]", v)
			}
		}
	}
}
