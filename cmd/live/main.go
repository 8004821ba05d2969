package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bep/debounce"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"particlefield/internal/config"
	"particlefield/internal/field"
	"particlefield/internal/render"
	"particlefield/internal/shape"
)

const tps = 60

// game hosts the field core in an ebiten window: keyboard input feeds
// the debounced commit path, Update is the per-frame tick, Draw
// uploads the software-rendered frame.
type game struct {
	fld      *field.Field
	renderer *render.Renderer

	input    string
	debounce func(func())

	ticks  int
	screen *ebiten.Image
}

func (g *game) Update() error {
	changed := false
	for _, r := range ebiten.AppendInputChars(nil) {
		if r < ' ' || utf8.RuneCountInString(g.input) >= shape.MaxTextLen {
			continue
		}
		g.input += string(r)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && g.input != "" {
		_, n := utf8.DecodeLastRuneInString(g.input)
		g.input = g.input[:len(g.input)-n]
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.input != "" {
		g.input = ""
		changed = true
	}

	if changed {
		// The debounce timer fires on its own goroutine; the commit
		// path only fills the field's mailbox, the next Update applies
		// it.
		text := g.input
		g.debounce(func() { g.fld.OnTextCommitted(text) })
	}

	g.fld.OnFrame(float64(g.ticks) / tps)
	g.ticks++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	t := float64(g.ticks) / tps
	img := g.renderer.Frame(t, g.fld.Scene(), g.fld.Positions())
	g.fld.ConsumeDirty()

	if g.screen == nil {
		g.screen = ebiten.NewImage(g.renderer.Size, g.renderer.Size)
	}
	// Frames are fully opaque, so NRGBA bytes match the premultiplied
	// layout WritePixels expects.
	g.screen.WritePixels(img.Pix)
	screen.DrawImage(g.screen, nil)

	ebitenutil.DebugPrint(screen, "> "+g.input)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Size, g.renderer.Size
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	particles := flag.Int("particles", 0, "Main particle count")
	size := flag.Int("size", 0, "Window edge length in pixels (default: 480)")
	seed := flag.Int64("seed", 0, "Random seed")
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
	if *size <= 0 && cfg.RenderSize <= 0 {
		cfg.RenderSize = 480
	}
	cfg.Resolve(config.Flags{
		Particles: *particles,
		Size:      *size,
		Seed:      *seed,
		Sprite:    *sprite,
	})
	// Supersampling is too slow for the interactive loop.
	cfg.Supersample = 1

	fld, err := field.New(cfg.FieldConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	renderer := &render.Renderer{Size: cfg.RenderSize, Supersample: 1}
	if cfg.SpritePath != "" {
		spr, err := render.LoadSprite(cfg.SpritePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		renderer.Sprite = spr
	}

	g := &game{
		fld:      fld,
		renderer: renderer,
		debounce: debounce.New(400 * time.Millisecond),
	}

	ebiten.SetWindowTitle("particle field")
	ebiten.SetWindowSize(cfg.RenderSize, cfg.RenderSize)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
