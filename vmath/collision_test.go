package vmath

import "testing"

func TestCirclesOverlapStrictBoundary(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Vec2
		ra, rb  float64
		overlap bool
	}{
		{"clearly overlapping", Vec2{0, 0}, Vec2{1, 0}, 1, 1, true},
		{"exact tangency", Vec2{0, 0}, Vec2{2, 0}, 1, 1, false},
		{"just inside", Vec2{0, 0}, Vec2{1.99, 0}, 1, 1, true},
		{"separated", Vec2{0, 0}, Vec2{5, 0}, 1, 1, false},
		{"coincident centers", Vec2{3, 3}, Vec2{3, 3}, 0.5, 0.5, true},
		{"diagonal tangency", Vec2{0, 0}, Vec2{3, 4}, 2, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.ra, tt.b, tt.rb); got != tt.overlap {
				t.Errorf("CirclesOverlap = %v, want %v", got, tt.overlap)
			}
		})
	}
}

func TestBeamHit(t *testing.T) {
	right := Vec2{X: 1}

	tests := []struct {
		name   string
		target Vec2
		radius float64
		hit    bool
	}{
		{"on axis ahead", Vec2{X: 10}, 1, true},
		{"behind origin", Vec2{X: -5}, 1, false},
		{"inside corridor", Vec2{X: 10, Y: 1.0}, 1, true},
		{"corridor tangency", Vec2{X: 10, Y: 1.5}, 1, false},
		{"outside corridor", Vec2{X: 10, Y: 3}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BeamHit(Vec2{}, right, 0.5, tt.target, tt.radius); got != tt.hit {
				t.Errorf("BeamHit = %v, want %v", got, tt.hit)
			}
		})
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(12345)
	b := NewFastRand(12345)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed must give identical sequences")
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(1)

	for i := 0; i < 1000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 = %v out of [0, 1)", v)
		}
		if v := r.Intn(10); v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %d out of range", v)
		}
		if v := r.Range(5, 8); v < 5 || v >= 8 {
			t.Fatalf("Range(5, 8) = %v out of range", v)
		}
	}
}
