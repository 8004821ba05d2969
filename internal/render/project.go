package render

import (
	"math"

	"particlefield/internal/mathutil"
)

// viewBasis builds the rotation taking world coordinates to camera
// coordinates for a camera at eye looking at center, +Y up. Rows are
// the camera's right, up and backward axes, so in camera space the
// view direction is -Z.
func viewBasis(eye, center mathutil.Vec3) mathutil.Mat3 {
	fwd := center.Sub(eye).Normalize()
	right := fwd.Cross(mathutil.Vec3{0, 1, 0})
	if right.Len() < 1e-9 {
		// Looking straight along Y; any horizontal right axis works.
		right = mathutil.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up := right.Cross(fwd)
	return mathutil.Mat3{
		right[0], right[1], right[2],
		up[0], up[1], up[2],
		-fwd[0], -fwd[1], -fwd[2],
	}
}

// projector converts world points to screen coordinates with a simple
// pinhole projection.
type projector struct {
	view  mathutil.Mat3
	eye   mathutil.Vec3
	focal float64 // pixels
	halfW float64
	halfH float64
}

// newProjector derives the focal length from a vertical field of view
// in degrees.
func newProjector(eye, center mathutil.Vec3, fovDeg float64, w, h int) *projector {
	return &projector{
		view:  viewBasis(eye, center),
		eye:   eye,
		focal: (float64(h) / 2) / math.Tan(mathutil.Deg2Rad(fovDeg)/2),
		halfW: float64(w) / 2,
		halfH: float64(h) / 2,
	}
}

// project returns the screen position, perspective scale factor and
// whether the point lies in front of the camera.
func (p *projector) project(world mathutil.Vec3) (sx, sy, scale float64, ok bool) {
	c := p.view.MulVec3(world.Sub(p.eye))
	depth := -c[2]
	if depth < 0.1 {
		return 0, 0, 0, false
	}
	scale = p.focal / depth
	sx = p.halfW + c[0]*scale
	sy = p.halfH - c[1]*scale
	return sx, sy, scale, true
}
