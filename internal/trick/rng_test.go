package trick

import "testing"

func TestSeededRNGReplays(t *testing.T) {
	a, b := NewSeededRNG(9), NewSeededRNG(9)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(10), b.IntN(10); x != y {
			t.Fatalf("same seed diverged at draw %d: %d vs %d", i, x, y)
		}
	}
}

func TestIntNBounds(t *testing.T) {
	for _, rng := range []RandomSource{DefaultRNG(), NewSeededRNG(1)} {
		if got := rng.IntN(0); got != 0 {
			t.Fatalf("IntN(0) = %d, want 0", got)
		}
		if got := rng.IntN(1); got != 0 {
			t.Fatalf("IntN(1) = %d, want 0", got)
		}
		for i := 0; i < 1000; i++ {
			if got := rng.IntN(7); got < 0 || got >= 7 {
				t.Fatalf("IntN(7) = %d out of range", got)
			}
		}
	}
}

func TestFloat64Range(t *testing.T) {
	for _, rng := range []RandomSource{DefaultRNG(), NewSeededRNG(2)} {
		for i := 0; i < 1000; i++ {
			if f := rng.Float64(); f < 0 || f >= 1 {
				t.Fatalf("Float64() = %f out of [0,1)", f)
			}
		}
	}
}
