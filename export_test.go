package slotmap

import "fmt"

// Export internals for testing.
// This file is only compiled during tests.

// CheckInvariantsForTesting returns an error describing the first broken
// internal invariant of m, or nil.
func CheckInvariantsForTesting[T any](m *SlotMap[T]) error {
	if len(m.metadata) != len(m.indices) {
		return fmt.Errorf("len(metadata)=%d != len(indices)=%d", len(m.metadata), len(m.indices))
	}
	if len(m.data) > len(m.metadata) {
		return fmt.Errorf("len(data)=%d > len(metadata)=%d", len(m.data), len(m.metadata))
	}
	seen := make([]bool, len(m.metadata))
	for id, pos := range m.indices {
		if pos < 0 || pos >= len(m.metadata) {
			return fmt.Errorf("indices[%d]=%d out of range", id, pos)
		}
		if seen[pos] {
			return fmt.Errorf("position %d referenced twice", pos)
		}
		seen[pos] = true
		if got := m.metadata[pos].ReverseID; got != id {
			return fmt.Errorf("metadata[indices[%d]].ReverseID=%d", id, got)
		}
	}
	return nil
}

// GenerationsForTesting returns the generation of every allocated ID.
func GenerationsForTesting[T any](m *SlotMap[T]) []uint64 {
	gens := make([]uint64, len(m.indices))
	for id, pos := range m.indices {
		gens[id] = m.metadata[pos].ValidityID
	}
	return gens
}
