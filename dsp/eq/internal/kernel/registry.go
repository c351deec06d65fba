// Package kernel holds the registered implementations of the peaking-EQ
// recurrence and picks one by CPU features.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are the recurrence coefficients. A0 is applied as an output
// factor on every sample.
type Coefficients struct {
	B0, B1, B2 float64
	A0, A1, A2 float64
}

// History carries the two most recent input and output samples,
// most recent first.
type History struct {
	Raw       [2]float64
	Processed [2]float64
}

// ApplyFn filters in into out (equal lengths, at least 2, not overlapping)
// and returns the updated history.
type ApplyFn func(c Coefficients, h History, in, out []float64) History

// ApplyInPlaceFn filters buf in place (at least 2 samples) and returns the
// updated history.
type ApplyInPlaceFn func(c Coefficients, h History, buf []float64) History

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel
	Priority     int
	Apply        ApplyFn
	ApplyInPlace ApplyInPlaceFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil when nothing matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// insertion sort, stable for equal priorities
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
