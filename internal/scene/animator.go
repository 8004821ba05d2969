// Package scene advances everything in the frame besides the morph
// itself: the camera, the main cloud's spin, the background star
// field, and the decorative orbiters.
package scene

import (
	"math"
	"math/rand"

	"particlefield/internal/mathutil"
)

const (
	// Viewport widths below this use the mobile camera distances.
	MobileMaxWidth = 768

	desktopOrbitRadius = 60.0
	mobileOrbitRadius  = 90.0
	desktopTargetZ     = 42.0
	mobileTargetZ      = 75.0

	driftRate   = 0.1 // radians/sec around the origin
	bobRate     = 0.5
	bobAmount   = 5.0
	spinPerTick = 0.0015 // main cloud Y spin, radians/frame
	camSmooth   = 0.05   // exponential smoothing factor per frame
	numOrbiters = 5
)

// Context owns all mutable scene state handed to the renderer each
// frame. No ambient globals: subordinate routines receive it
// explicitly.
type Context struct {
	Camera   Camera
	Rotation float64 // main cloud rotation about Y, radians
	Stars    *StarField
	Orbiters []*Orbiter
}

// Animator mutates a Context once per rendered frame. The two camera
// behaviours are selected by whether a text shape is active; the
// hand-off between them is implicit in the smoothing, never a jump.
type Animator struct {
	ctx         *Context
	orbitRadius float64
	targetZ     float64
}

// NewAnimator builds the scene state. The camera distance pair is
// chosen once from the viewport width.
func NewAnimator(rng *rand.Rand, viewportWidth int) *Animator {
	orbitRadius := desktopOrbitRadius
	targetZ := desktopTargetZ
	if viewportWidth < MobileMaxWidth {
		orbitRadius = mobileOrbitRadius
		targetZ = mobileTargetZ
	}

	ctx := &Context{
		Camera: Camera{Pos: mathutil.Vec3{0, 0, orbitRadius}},
		Stars:  newStarField(rng),
	}
	for i := 0; i < numOrbiters; i++ {
		ctx.Orbiters = append(ctx.Orbiters, newOrbiter(rng, i))
	}
	return &Animator{ctx: ctx, orbitRadius: orbitRadius, targetZ: targetZ}
}

// Context returns the scene state for the renderer.
func (a *Animator) Context() *Context {
	return a.ctx
}

// Advance runs one frame at wall-clock time t (seconds). textActive
// selects the camera mode.
func (a *Animator) Advance(t float64, textActive bool) {
	ctx := a.ctx

	if textActive {
		ctx.Camera.Mode = Centering
		// Ease toward the front-facing position and unwind the cloud
		// to the nearest full turn so the text reads upright.
		ctx.Camera.Pos = ctx.Camera.Pos.Lerp(mathutil.Vec3{0, 0, a.targetZ}, camSmooth)
		ctx.Rotation = mathutil.Lerp(ctx.Rotation, mathutil.NearestTurn(ctx.Rotation), camSmooth)
	} else {
		ctx.Camera.Mode = Drifting
		ctx.Camera.Pos = mathutil.Vec3{
			math.Cos(t*driftRate) * a.orbitRadius,
			math.Sin(t*bobRate) * bobAmount,
			math.Sin(t*driftRate) * a.orbitRadius,
		}
		ctx.Rotation += spinPerTick
	}
	ctx.Camera.Look = mathutil.Vec3{}

	ctx.Stars.Advance()
	for _, o := range ctx.Orbiters {
		o.Advance()
	}
}
