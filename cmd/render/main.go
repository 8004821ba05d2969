package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"particlefield/internal/config"
	"particlefield/internal/field"
	"particlefield/internal/render"
)

// frame is one finished image waiting for encode.
type frame struct {
	index int
	img   *image.NRGBA
}

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	text := flag.String("text", "HELLO", "Text to morph into (max 15 chars)")
	seconds := flag.Float64("seconds", 6, "Timeline length in seconds")
	morphAt := flag.Float64("morph-at", 1, "Time at which the text is committed")
	particles := flag.Int("particles", 0, "Main particle count (default: 10000)")
	size := flag.Int("size", 0, "Output frame edge length in pixels (default: 720)")
	fps := flag.Int("fps", 0, "Frames per second (default: 30)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	workers := flag.Int("workers", 0, "Encoder goroutines (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Random seed (default: 1)")
	sprite := flag.String("sprite", "", "Optional particle sprite (PNG/JPEG/TGA)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Particles: *particles,
		Size:      *size,
		FPS:       *fps,
		OutputDir: *outputDir,
		Workers:   *workers,
		Seed:      *seed,
		Sprite:    *sprite,
	})

	fld, err := field.New(cfg.FieldConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	renderer := &render.Renderer{Size: cfg.RenderSize, Supersample: cfg.Supersample}
	if cfg.SpritePath != "" {
		spr, err := render.LoadSprite(cfg.SpritePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		renderer.Sprite = spr
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total := int(*seconds * float64(cfg.FPS))
	fmt.Printf("Particle field → WebP frames\n")
	fmt.Printf("Text: %q at t=%.1fs, Frames: %d @ %d fps, Size: %d px\n",
		*text, *morphAt, total, cfg.FPS, cfg.RenderSize)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	var encoded atomic.Int64

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				n := encoded.Load()
				if n > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", n, total, float64(n)/elapsed)
				}
			}
		}
	}()

	// The simulation is single-threaded (one buffer mutator); only the
	// encoding of finished frames fans out to workers.
	frames := make(chan frame, cfg.Workers*2)
	errs := make(chan error, total)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for fr := range frames {
				if err := writeFrame(cfg.OutputDir, fr); err != nil {
					errs <- err
				}
				encoded.Add(1)
			}
		}()
	}

	morphFrame := int(*morphAt * float64(cfg.FPS))
	for i := 0; i < total; i++ {
		if i == morphFrame {
			fld.OnTextCommitted(*text)
		}
		t := float64(i) / float64(cfg.FPS)
		fld.OnFrame(t)
		fld.ConsumeDirty()
		frames <- frame{index: i, img: renderer.Frame(t, fld.Scene(), fld.Positions())}
	}
	close(frames)
	wg.Wait()
	close(done)
	close(errs)

	failed := 0
	for err := range errs {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		failed++
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done: %d frames (%d failed) in %.1fs\n", total-failed, failed, time.Since(start).Seconds())
	if failed > 0 {
		os.Exit(1)
	}
}

func writeFrame(dir string, fr frame) error {
	path := filepath.Join(dir, fmt.Sprintf("frame_%05d.webp", fr.index))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, fr.img, nil); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
