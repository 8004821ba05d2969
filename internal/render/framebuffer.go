package render

import "image"

// FrameBuffer accumulates additive point splats as flat float RGB for
// cache locality. Values may exceed 1.0 during accumulation; ToNRGBA
// clamps on conversion.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []float64 // RGB interleaved, len = W*H*3
}

// NewFrameBuffer allocates a black buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]float64, w*h*3),
	}
}

// Add accumulates a color contribution at (x, y). Out-of-frame pixels
// are dropped.
func (fb *FrameBuffer) Add(x, y int, r, g, b float64) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 3
	fb.Pix[i] += r
	fb.Pix[i+1] += g
	fb.Pix[i+2] += b
}

// ToNRGBA converts the accumulation buffer to an opaque NRGBA image.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i := 0; i < fb.Width*fb.Height; i++ {
		img.Pix[i*4] = clamp8(fb.Pix[i*3] * 255)
		img.Pix[i*4+1] = clamp8(fb.Pix[i*3+1] * 255)
		img.Pix[i*4+2] = clamp8(fb.Pix[i*3+2] * 255)
		img.Pix[i*4+3] = 255
	}
	return img
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
