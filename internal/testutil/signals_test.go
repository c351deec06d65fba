package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(7, 0.5, 64)
	b := DeterministicNoise(7, 0.5, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -0.5 || a[i] >= 0.5 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	s := Impulse(4, 2)
	want := []float64{0, 0, 1, 0}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("Impulse(4, 2) = %v", s)
		}
	}
	if s := Impulse(3, 5); s[0] != 0 || s[1] != 0 || s[2] != 0 {
		t.Fatalf("out-of-range impulse not silent: %v", s)
	}
}

func TestChunks(t *testing.T) {
	s := []float64{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		name    string
		lengths []int
		want    []int
	}{
		{"even", []int{2, 2, 3}, []int{2, 2, 3}},
		{"remainder", []int{3}, []int{3, 4}},
		{"truncated", []int{5, 5}, []int{5, 2}},
		{"none", nil, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunks(s, tt.lengths...)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d chunks, want %d", len(got), len(tt.want))
			}
			total := 0
			for i, c := range got {
				if len(c) != tt.want[i] {
					t.Fatalf("chunk %d len %d, want %d", i, len(c), tt.want[i])
				}
				if c[0] != float64(total) {
					t.Fatalf("chunk %d starts at %v, want %v", i, c[0], total)
				}
				total += len(c)
			}
		})
	}
}
