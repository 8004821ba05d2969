package main

import (
	"flag"
	"fmt"
	"math/rand"

	"particlefield/internal/shape"
)

// Debug tool: prints the extents and density of a generated shape.
func main() {
	text := flag.String("text", "", "Text to rasterize (empty: sphere)")
	count := flag.Int("count", 10000, "Particle count")
	radius := flag.Float64("radius", 20, "Sphere radius")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	req := shape.FromInput(*text, *radius)

	var pts shape.PointSet
	if req.IsText() {
		r, err := shape.NewRasterizer(shape.DefaultRasterConfig())
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		pts = r.Points(rng, req.Text, *count)
		fmt.Printf("Shape: text %q\n", req.Text)
	} else {
		pts = shape.Sphere(rng, req.Radius, *count)
		fmt.Printf("Shape: sphere r=%.1f\n", req.Radius)
	}

	min, max := pts.Bounds()
	fmt.Printf("Points: %d (buffer %d)\n", pts.Count(), len(pts))
	fmt.Printf("X: %8.2f .. %8.2f\n", min[0], max[0])
	fmt.Printf("Y: %8.2f .. %8.2f\n", min[1], max[1])
	fmt.Printf("Z: %8.2f .. %8.2f\n", min[2], max[2])

	var sum float64
	for i := 0; i < pts.Count(); i++ {
		sum += pts.At(i).Len()
	}
	fmt.Printf("Mean distance from origin: %.3f\n", sum/float64(pts.Count()))
}
