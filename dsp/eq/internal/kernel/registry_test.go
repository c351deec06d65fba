package kernel

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	entry := reg.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true})
	if entry == nil || entry.Name != "avx2" {
		t.Fatalf("expected avx2, got %#v", entry)
	}

	entry = reg.Lookup(cpu.Features{})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic, got %#v", entry)
	}
}

func TestRegistryLookupForceGeneric(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	entry := reg.Lookup(cpu.Features{HasAVX2: true, ForceGeneric: true})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic with ForceGeneric, got %#v", entry)
	}
}

func TestRegistryEmpty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil from empty registry, got %#v", entry)
	}
}

func TestGlobalHasGeneric(t *testing.T) {
	entries := Global.ListEntries()
	for _, e := range entries {
		if e.Name == "generic" {
			if e.Apply == nil || e.ApplyInPlace == nil {
				t.Fatal("generic entry missing a kernel")
			}
			return
		}
	}
	t.Fatalf("generic kernel not registered: %v", entries)
}

func TestGenericKernelsAgree(t *testing.T) {
	c := Coefficients{B0: 0.9, B1: -1.7, B2: 0.8, A0: 1, A1: -1.7, A2: 0.7}
	h := History{Raw: [2]float64{0.3, -0.2}, Processed: [2]float64{0.1, 0.05}}
	in := []float64{1, -0.5, 0.25, 0, 0.75, -1, 0.5}

	out := make([]float64, len(in))
	h1 := applyGeneric(c, h, in, out)

	buf := append([]float64(nil), in...)
	h2 := applyInPlaceGeneric(c, h, buf)

	for i := range out {
		if out[i] != buf[i] {
			t.Fatalf("sample %d: out-of-place %v, in-place %v", i, out[i], buf[i])
		}
	}
	if h1 != h2 {
		t.Fatalf("history mismatch: %+v vs %+v", h1, h2)
	}
}

func TestGenericHandTraced(t *testing.T) {
	// Pure feed-forward: y[n] = x[n] + 2*x[n-1] + 3*x[n-2], history seeds the
	// first two lookbacks.
	c := Coefficients{B0: 1, B1: 2, B2: 3, A0: 1}
	h := History{Raw: [2]float64{1, 1}}
	in := []float64{1, 0, 0, 0}
	out := make([]float64, len(in))

	got := applyGeneric(c, h, in, out)

	want := []float64{1 + 2 + 3, 0 + 2 + 3, 3, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if got.Raw != [2]float64{0, 0} || got.Processed != [2]float64{0, 3} {
		t.Fatalf("unexpected history %+v", got)
	}
}
