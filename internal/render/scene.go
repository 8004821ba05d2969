// Package render rasterizes the particle field to images on the CPU:
// pinhole projection, additive point splats, optional supersampling.
// Both frontends (the WebP sequence renderer and the live viewer)
// consume frames from here.
package render

import (
	"image"

	"golang.org/x/image/draw"

	"particlefield/internal/mathutil"
	"particlefield/internal/scene"
	"particlefield/internal/shape"
)

// Colors and splat sizes of the three particle passes.
var (
	mainColor = [3]float64{0.55, 0.85, 1.0}
	starColor = [3]float64{0.35, 0.35, 0.42}
)

const (
	mainSplatSize = 0.085 // world units; multiplied by perspective scale
	starSplatSize = 0.30
	orbSplatSize  = 0.10
	fovDeg        = 60.0
)

// Renderer draws complete frames of the field. Safe to reuse across
// frames; each Frame call allocates its own buffer so finished frames
// can be encoded on worker goroutines.
type Renderer struct {
	Size        int // output edge length in pixels
	Supersample int // render at Size*Supersample, then downsample
	Sprite      *image.NRGBA
}

// Frame renders the field at time t: star field, main cloud with its
// current rotation, then the orbiters with their oscillated colors.
func (r *Renderer) Frame(t float64, ctx *scene.Context, pts shape.PointSet) *image.NRGBA {
	ss := r.Supersample
	if ss < 1 {
		ss = 1
	}
	size := r.Size * ss
	fb := NewFrameBuffer(size, size)
	// The focal length grows with the supersampled buffer, so splat
	// radii scale with it automatically.
	pr := newProjector(ctx.Camera.Pos, ctx.Camera.Look, fovDeg, size, size)

	starModel := mathutil.Mat3Mul(mathutil.RotY(ctx.Stars.RotY), mathutil.RotX(ctx.Stars.RotX))
	splatCloud(fb, pr, nil, ctx.Stars.Points, starModel, mathutil.Vec3{},
		starSplatSize, starColor[0], starColor[1], starColor[2])

	mainModel := mathutil.RotY(ctx.Rotation)
	splatCloud(fb, pr, r.Sprite, pts, mainModel, mathutil.Vec3{},
		mainSplatSize, mainColor[0], mainColor[1], mainColor[2])

	for i, o := range ctx.Orbiters {
		c := scene.OrbiterColor(t, i)
		spin := mathutil.Mat3Mul(mathutil.RotY(o.SpinY), mathutil.RotX(o.SpinX))
		splatCloud(fb, pr, r.Sprite, o.Points, spin, o.Position(),
			orbSplatSize, c.R, c.G, c.B)
	}

	img := fb.ToNRGBA()
	if ss > 1 {
		img = downsample(img, r.Size)
	}
	return img
}

// downsample reduces an opaque frame with CatmullRom filtering.
func downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
