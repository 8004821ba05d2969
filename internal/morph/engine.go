// Package morph drives timed interpolation of a shared particle
// position buffer between shape targets. One transition may be active
// at a time; requesting a new one supersedes the old from the live
// mid-flight positions, so retargeting never snaps.
package morph

import (
	"fmt"

	"particlefield/internal/mathutil"
	"particlefield/internal/shape"
)

// EaseFunc remaps normalized elapsed time [0,1] → progress [0,1].
type EaseFunc func(float64) float64

// transition is one in-flight interpolation. The start snapshot is
// taken when the transition is requested; the start time latches on
// the first tick that sees it, so a request made off the render tick
// takes effect on the next frame.
type transition struct {
	start    shape.PointSet
	target   shape.PointSet
	startAt  float64
	started  bool
	duration float64
	ease     EaseFunc
}

// Engine owns the live position buffer of the main particle system.
// All mutation happens in Tick; the renderer reads Buffer and consumes
// the dirty flag.
type Engine struct {
	buf   shape.PointSet
	tr    *transition
	dirty bool
}

// NewEngine copies initial into a fresh live buffer.
func NewEngine(initial shape.PointSet) *Engine {
	return &Engine{buf: initial.Clone(), dirty: true}
}

// Buffer returns the live position buffer. Callers must not resize it.
func (e *Engine) Buffer() shape.PointSet {
	return e.buf
}

// Active reports whether a transition is in flight.
func (e *Engine) Active() bool {
	return e.tr != nil
}

// Request supersedes any active transition and begins a new one toward
// target. The start snapshot is the buffer's current values: the
// mid-flight positions if a transition was running, never its stale
// target. Mismatched buffer lengths violate the engine contract.
func (e *Engine) Request(target shape.PointSet, duration float64, ease EaseFunc) {
	if len(target) != len(e.buf) {
		panic(fmt.Sprintf("morph: target length %d, buffer length %d", len(target), len(e.buf)))
	}
	if duration <= 0 {
		copy(e.buf, target)
		e.tr = nil
		e.dirty = true
		return
	}
	e.tr = &transition{
		start:    e.buf.Clone(),
		target:   target,
		duration: duration,
		ease:     ease,
	}
}

// Tick advances the active transition to time now (seconds, monotonic)
// and writes the interpolated coordinates into the live buffer. The
// dirty flag is set whenever the buffer is mutated, unconditionally,
// not tied to any particular particle. Returns whether the buffer
// changed.
func (e *Engine) Tick(now float64) bool {
	tr := e.tr
	if tr == nil {
		return false
	}
	if !tr.started {
		tr.startAt = now
		tr.started = true
	}

	f := mathutil.Clamp01((now - tr.startAt) / tr.duration)
	if f >= 1 {
		// Land exactly on the target; no residual drift.
		copy(e.buf, tr.target)
		e.tr = nil
		e.dirty = true
		return true
	}

	ef := f
	if tr.ease != nil {
		ef = tr.ease(f)
	}
	for i := range e.buf {
		e.buf[i] = tr.start[i] + (tr.target[i]-tr.start[i])*ef
	}
	e.dirty = true
	return true
}

// Dirty reports whether the buffer changed since the last ClearDirty.
func (e *Engine) Dirty() bool {
	return e.dirty
}

// ClearDirty is called by the renderer after re-uploading the buffer.
func (e *Engine) ClearDirty() {
	e.dirty = false
}
