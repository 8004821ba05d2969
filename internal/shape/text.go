package shape

import (
	"fmt"
	"image"
	"image/draw"
	"math/rand"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RasterConfig holds glyph rasterization and sampling parameters.
type RasterConfig struct {
	CanvasWidth  int     // offscreen canvas width in pixels
	CanvasHeight int     // offscreen canvas height in pixels
	FontSize     float64 // glyph size in points at 72 DPI
	Stride       int     // pixel scan step on both axes
	Threshold    uint8   // gray values below this count as glyph
	Scale        float64 // pixel → world scale factor
	JitterXY     float64 // max |offset| on X and Y, world units
	JitterZ      float64 // max |offset| on Z, world units
}

// DefaultRasterConfig matches the reference formation: a 1600×400
// canvas, a large bold face, and a thin relief slab in Z.
func DefaultRasterConfig() RasterConfig {
	return RasterConfig{
		CanvasWidth:  1600,
		CanvasHeight: 400,
		FontSize:     160,
		Stride:       5,
		Threshold:    128,
		Scale:        0.12,
		JitterXY:     0.4,
		JitterZ:      0.25,
	}
}

// Rasterizer turns text into point sets by drawing it on an offscreen
// grayscale canvas and sampling the dark pixels.
type Rasterizer struct {
	cfg  RasterConfig
	face font.Face
}

// NewRasterizer parses the embedded bold face. Failure here is a hard
// error: text shapes cannot be generated without a face.
func NewRasterizer(cfg RasterConfig) (*Rasterizer, error) {
	ft, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("shape: parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    cfg.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("shape: build face: %w", err)
	}
	return &Rasterizer{cfg: cfg, face: face}, nil
}

// Points samples count particles from the rasterized text. The sampled
// pixel list is reused cyclically when count exceeds it, and each
// particle gets independent jitter so repeats do not stack. Text that
// rasterizes to nothing yields a zeroed full-length buffer, never an
// error.
func (r *Rasterizer) Points(rng *rand.Rand, text string, count int) PointSet {
	pts := NewPointSet(count)
	coords := r.scan(text)
	if len(coords) == 0 {
		return pts
	}

	cfg := r.cfg
	halfW := float64(cfg.CanvasWidth) / 2
	halfH := float64(cfg.CanvasHeight) / 2
	for i := 0; i < count; i++ {
		c := coords[i%len(coords)]
		// Canvas Y grows downward, world Y grows upward.
		x := (float64(c[0]) - halfW) * cfg.Scale
		y := -(float64(c[1]) - halfH) * cfg.Scale
		pts[3*i] = x + (rng.Float64()*2-1)*cfg.JitterXY
		pts[3*i+1] = y + (rng.Float64()*2-1)*cfg.JitterXY
		pts[3*i+2] = (rng.Float64()*2 - 1) * cfg.JitterZ
	}
	return pts
}

// scan draws text centered on a white canvas and collects the pixel
// coordinates of the glyph interior at the configured stride.
func (r *Rasterizer) scan(text string) [][2]int {
	if text == "" {
		return nil
	}
	cfg := r.cfg
	img := image.NewGray(image.Rect(0, 0, cfg.CanvasWidth, cfg.CanvasHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := font.Drawer{Dst: img, Src: image.Black, Face: r.face}
	adv := d.MeasureString(text)
	m := r.face.Metrics()
	x := (cfg.CanvasWidth - adv.Ceil()) / 2
	y := cfg.CanvasHeight/2 + (m.Ascent - m.Descent).Ceil()/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)

	var coords [][2]int
	for py := 0; py < cfg.CanvasHeight; py += cfg.Stride {
		for px := 0; px < cfg.CanvasWidth; px += cfg.Stride {
			if img.GrayAt(px, py).Y < cfg.Threshold {
				coords = append(coords, [2]int{px, py})
			}
		}
	}
	return coords
}
