package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.ParticleCount != 10000 {
		t.Errorf("ParticleCount = %d", cfg.ParticleCount)
	}
	if cfg.MorphSeconds != 2 {
		t.Errorf("MorphSeconds = %v", cfg.MorphSeconds)
	}
	if cfg.CanvasWidth != 1600 || cfg.CanvasHeight != 400 {
		t.Errorf("canvas = %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.ScanStride != 5 {
		t.Errorf("ScanStride = %d", cfg.ScanStride)
	}
	if cfg.WorldScale != 0.12 {
		t.Errorf("WorldScale = %v", cfg.WorldScale)
	}
	if cfg.RenderSize != 720 || cfg.Supersample != 2 || cfg.FPS != 30 {
		t.Errorf("render defaults = %d/%d/%d", cfg.RenderSize, cfg.Supersample, cfg.FPS)
	}
	if cfg.OutputDir != "frames" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Workers <= 0 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{
		Particles: 500,
		Size:      128,
		FPS:       12,
		OutputDir: "out",
		Workers:   3,
		Seed:      42,
		Sprite:    "glow.png",
	})
	if cfg.ParticleCount != 500 || cfg.RenderSize != 128 || cfg.FPS != 12 {
		t.Errorf("overrides not applied: %d/%d/%d", cfg.ParticleCount, cfg.RenderSize, cfg.FPS)
	}
	if cfg.OutputDir != "out" || cfg.Workers != 3 || cfg.Seed != 42 || cfg.SpritePath != "glow.png" {
		t.Errorf("overrides not applied: %q/%d/%d/%q", cfg.OutputDir, cfg.Workers, cfg.Seed, cfg.SpritePath)
	}
}

func TestResolveKeepsFileValuesWithoutFlags(t *testing.T) {
	cfg := Config{RenderSize: 256, ParticleCount: 2000}
	cfg.Resolve(Flags{})
	if cfg.RenderSize != 256 {
		t.Errorf("RenderSize = %d, want file value 256", cfg.RenderSize)
	}
	if cfg.ParticleCount != 2000 {
		t.Errorf("ParticleCount = %d, want file value 2000", cfg.ParticleCount)
	}
}

func TestLoadAndFieldConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"particle_count": 2500, "font_size": 96, "viewport_width": 700}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{})

	fc := cfg.FieldConfig()
	if fc.ParticleCount != 2500 {
		t.Errorf("ParticleCount = %d", fc.ParticleCount)
	}
	if fc.Raster.FontSize != 96 {
		t.Errorf("FontSize = %v", fc.Raster.FontSize)
	}
	if fc.ViewportWidth != 700 {
		t.Errorf("ViewportWidth = %d", fc.ViewportWidth)
	}
	// Unset fields fall back to defaults.
	if fc.Raster.Stride != 5 {
		t.Errorf("Stride = %d", fc.Raster.Stride)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("no/such/config.json"); err == nil {
		t.Error("Load on a missing file returned nil error")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed JSON returned nil error")
	}
}
