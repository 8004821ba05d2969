package scene

import "particlefield/internal/mathutil"

// Mode is the camera behaviour, keyed off the current shape.
type Mode int

const (
	// Drifting orbits the origin slowly; used while the sphere idles.
	Drifting Mode = iota
	// Centering eases to a fixed front-facing position while text is up.
	Centering
)

func (m Mode) String() string {
	if m == Centering {
		return "centering"
	}
	return "drifting"
}

// Camera holds the per-frame camera state. Owned exclusively by the
// Animator; the renderer reads it after each advance.
type Camera struct {
	Pos  mathutil.Vec3
	Look mathutil.Vec3 // always the origin in both modes
	Mode Mode
}
