package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"particlefield/internal/field"
	"particlefield/internal/shape"
)

// Config holds all tunables of the field core and the frame renderer.
type Config struct {
	// Core
	ParticleCount int     `json:"particle_count"`
	SphereRadius  float64 `json:"sphere_radius"`
	MorphSeconds  float64 `json:"morph_seconds"`
	ViewportWidth int     `json:"viewport_width"`
	Seed          int64   `json:"seed"`

	// Text rasterization
	CanvasWidth  int     `json:"canvas_width"`
	CanvasHeight int     `json:"canvas_height"`
	FontSize     float64 `json:"font_size"`
	ScanStride   int     `json:"scan_stride"`
	WorldScale   float64 `json:"world_scale"`

	// Rendering
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	FPS         int    `json:"fps"`
	SpritePath  string `json:"sprite_path"`

	// Output (cmd/render)
	OutputDir string `json:"output_dir"`
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Particles int
	Size      int
	FPS       int
	OutputDir string
	Workers   int
	Seed      int64
	Sprite    string
}

// Resolve applies CLI overrides and fills remaining zero fields with
// the reference defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Particles > 0 {
		c.ParticleCount = flags.Particles
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Sprite != "" {
		c.SpritePath = flags.Sprite
	}

	def := field.DefaultConfig()
	raster := shape.DefaultRasterConfig()
	if c.ParticleCount <= 0 {
		c.ParticleCount = def.ParticleCount
	}
	if c.SphereRadius <= 0 {
		c.SphereRadius = def.SphereRadius
	}
	if c.MorphSeconds <= 0 {
		c.MorphSeconds = def.MorphSeconds
	}
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = def.ViewportWidth
	}
	if c.Seed == 0 {
		c.Seed = def.Seed
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = raster.CanvasWidth
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = raster.CanvasHeight
	}
	if c.FontSize <= 0 {
		c.FontSize = raster.FontSize
	}
	if c.ScanStride <= 0 {
		c.ScanStride = raster.Stride
	}
	if c.WorldScale <= 0 {
		c.WorldScale = raster.Scale
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 720
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// FieldConfig assembles the core configuration.
func (c *Config) FieldConfig() field.Config {
	raster := shape.DefaultRasterConfig()
	raster.CanvasWidth = c.CanvasWidth
	raster.CanvasHeight = c.CanvasHeight
	raster.FontSize = c.FontSize
	raster.Stride = c.ScanStride
	raster.Scale = c.WorldScale
	return field.Config{
		ParticleCount: c.ParticleCount,
		SphereRadius:  c.SphereRadius,
		MorphSeconds:  c.MorphSeconds,
		ViewportWidth: c.ViewportWidth,
		Seed:          c.Seed,
		Raster:        raster,
	}
}
