package scene

import (
	"math/rand"

	"particlefield/internal/shape"
)

const (
	starCount       = 1200
	starShellInner  = 260
	starShellOuter  = 600
	starRotXPerTick = 0.0001
	starRotYPerTick = 0.0002
)

// StarField is the static background cloud. It rotates continuously
// on two axes regardless of camera mode and never interacts with the
// morph state.
type StarField struct {
	Points     shape.PointSet
	RotX, RotY float64
}

func newStarField(rng *rand.Rand) *StarField {
	return &StarField{
		Points: shape.Shell(rng, starShellInner, starShellOuter, starCount),
	}
}

// Advance rotates the field one frame.
func (s *StarField) Advance() {
	s.RotX += starRotXPerTick
	s.RotY += starRotYPerTick
}
