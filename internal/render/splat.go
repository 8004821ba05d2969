package render

import (
	"image"

	"particlefield/internal/mathutil"
	"particlefield/internal/shape"
)

// splat draws one particle as an additive disc with quadratic falloff,
// or as a tinted sprite when one is loaded.
func splat(fb *FrameBuffer, sprite *image.NRGBA, sx, sy, radius, r, g, b float64) {
	if radius < 0.5 {
		radius = 0.5
	}
	if sprite != nil {
		splatSprite(fb, sprite, sx, sy, radius, r, g, b)
		return
	}

	x0 := int(sx - radius)
	x1 := int(sx + radius + 1)
	y0 := int(sy - radius)
	y1 := int(sy + radius + 1)
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - sx
			dy := float64(y) + 0.5 - sy
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			w := 1 - d2/r2
			w *= w
			fb.Add(x, y, r*w, g*w, b*w)
		}
	}
}

// splatSprite samples the sprite bilinearly-free (nearest) across the
// disc footprint, modulated by the particle color and sprite alpha.
func splatSprite(fb *FrameBuffer, sprite *image.NRGBA, sx, sy, radius, r, g, b float64) {
	sb := sprite.Bounds()
	sw := float64(sb.Dx())
	sh := float64(sb.Dy())
	x0 := int(sx - radius)
	x1 := int(sx + radius + 1)
	y0 := int(sy - radius)
	y1 := int(sy + radius + 1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			u := (float64(x) + 0.5 - (sx - radius)) / (2 * radius)
			v := (float64(y) + 0.5 - (sy - radius)) / (2 * radius)
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}
			px := sb.Min.X + int(u*sw)
			py := sb.Min.Y + int(v*sh)
			i := sprite.PixOffset(px, py)
			a := float64(sprite.Pix[i+3]) / 255
			if a == 0 {
				continue
			}
			lum := a * float64(sprite.Pix[i]) / 255
			fb.Add(x, y, r*lum, g*lum, b*lum)
		}
	}
}

// splatCloud projects and splats every point of a cloud after applying
// model rotation and translation.
func splatCloud(fb *FrameBuffer, pr *projector, sprite *image.NRGBA, pts shape.PointSet,
	model mathutil.Mat3, offset mathutil.Vec3, baseSize, r, g, b float64) {
	n := pts.Count()
	for i := 0; i < n; i++ {
		world := model.MulVec3(pts.At(i)).Add(offset)
		sx, sy, scale, ok := pr.project(world)
		if !ok {
			continue
		}
		splat(fb, sprite, sx, sy, baseSize*scale, r, g, b)
	}
}
