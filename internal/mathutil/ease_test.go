package mathutil

import (
	"math"
	"testing"
)

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"start", 0, 0},
		{"quarter", 0.25, 0.125},
		{"midpoint", 0.5, 0.5},
		{"three quarters", 0.75, 0.875},
		{"end", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EaseInOutQuad(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EaseInOutQuad(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEaseInOutQuadMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		f := float64(i) / 100
		got := EaseInOutQuad(f)
		if got < prev {
			t.Fatalf("not monotonic at f=%v: %v < %v", f, got, prev)
		}
		prev = got
	}
}

func TestNearestTurn(t *testing.T) {
	twoPi := 2 * math.Pi
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"zero", 0, 0},
		{"slightly positive", 0.3, 0},
		{"near half turn rounds down", math.Pi - 0.01, 0},
		{"past half turn rounds up", math.Pi + 0.01, twoPi},
		{"negative", -math.Pi - 0.01, -twoPi},
		{"many turns", 7*twoPi + 0.5, 7 * twoPi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestTurn(tt.angle)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("NearestTurn(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v", got)
	}
	if got := Clamp01(0.25); got != 0.25 {
		t.Errorf("Clamp01(0.25) = %v", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 10, -4}
	b := Vec3{2, 20, 4}
	mid := a.Lerp(b, 0.5)
	want := Vec3{1, 15, 0}
	for k := 0; k < 3; k++ {
		if math.Abs(mid[k]-want[k]) > 1e-12 {
			t.Fatalf("Lerp mid = %v, want %v", mid, want)
		}
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}
