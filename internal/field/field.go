// Package field is the top-level controller behind the two external
// entry points: OnTextCommitted from the input side and OnFrame from
// the render loop. It owns the generator, the morph engine, and the
// scene animator, and enforces the single-writer frame discipline.
package field

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"particlefield/internal/mathutil"
	"particlefield/internal/morph"
	"particlefield/internal/scene"
	"particlefield/internal/shape"
)

// Config holds the tunables of the particle field core.
type Config struct {
	ParticleCount int
	SphereRadius  float64
	MorphSeconds  float64
	ViewportWidth int
	Seed          int64
	Raster        shape.RasterConfig
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{
		ParticleCount: 10000,
		SphereRadius:  20,
		MorphSeconds:  2,
		ViewportWidth: 1280,
		Seed:          1,
		Raster:        shape.DefaultRasterConfig(),
	}
}

// pending is the latest generated target waiting for the next frame.
type pending struct {
	points shape.PointSet
	isText bool
}

// Field wires the shape generator, morph engine and scene animator.
//
// Concurrency model: OnFrame is the only buffer mutator. The commit
// path may run off the render tick (e.g. a debounce timer goroutine);
// it only generates a target and stores it in a latest-only mailbox,
// which the next frame consumes. Two commits between frames collapse
// to the newest, so the last request always wins.
type Field struct {
	cfg    Config
	raster *shape.Rasterizer
	genRNG *rand.Rand // owned by the commit path, never touched by OnFrame

	engine *morph.Engine
	anim   *scene.Animator

	mailbox    atomic.Pointer[pending]
	textActive bool
}

// New builds a Field idling as a sphere formation.
func New(cfg Config) (*Field, error) {
	if cfg.ParticleCount <= 0 {
		return nil, fmt.Errorf("field: particle count %d", cfg.ParticleCount)
	}
	raster, err := shape.NewRasterizer(cfg.Raster)
	if err != nil {
		return nil, err
	}

	genRNG := rand.New(rand.NewSource(cfg.Seed))
	initial := shape.Sphere(genRNG, cfg.SphereRadius, cfg.ParticleCount)

	sceneRNG := rand.New(rand.NewSource(cfg.Seed + 1))
	return &Field{
		cfg:    cfg,
		raster: raster,
		genRNG: genRNG,
		engine: morph.NewEngine(initial),
		anim:   scene.NewAnimator(sceneRNG, cfg.ViewportWidth),
	}, nil
}

// OnTextCommitted receives debounced, length-bounded input text. Empty
// or whitespace text morphs back to the sphere. Generation happens
// here, off the render tick; only the finished target is handed over.
func (f *Field) OnTextCommitted(text string) {
	req := shape.FromInput(text, f.cfg.SphereRadius)
	var pts shape.PointSet
	if req.IsText() {
		pts = f.raster.Points(f.genRNG, req.Text, f.cfg.ParticleCount)
	} else {
		pts = shape.Sphere(f.genRNG, req.Radius, f.cfg.ParticleCount)
	}
	f.mailbox.Store(&pending{points: pts, isText: req.IsText()})
}

// OnFrame advances the whole core by one rendered frame at time t
// (seconds, monotonically increasing).
func (f *Field) OnFrame(t float64) {
	if p := f.mailbox.Swap(nil); p != nil {
		f.engine.Request(p.points, f.cfg.MorphSeconds, mathutil.EaseInOutQuad)
		f.textActive = p.isText
	}
	f.engine.Tick(t)
	f.anim.Advance(t, f.textActive)
}

// Positions returns the live particle buffer shared with the renderer.
func (f *Field) Positions() shape.PointSet {
	return f.engine.Buffer()
}

// ConsumeDirty reports whether the buffer changed since the last call
// and resets the flag; the renderer re-uploads when it returns true.
func (f *Field) ConsumeDirty() bool {
	if !f.engine.Dirty() {
		return false
	}
	f.engine.ClearDirty()
	return true
}

// Scene returns camera, star field and orbiter state for the renderer.
func (f *Field) Scene() *scene.Context {
	return f.anim.Context()
}

// Morphing reports whether a transition is in flight.
func (f *Field) Morphing() bool {
	return f.engine.Active()
}
