package slotmap

import "iter"

// Values returns an iterator over copies of the live objects in dense order.
// The order changes when objects are erased.
func (m *SlotMap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers returns an iterator over pointers to the live objects in dense
// order. Writes through the pointers are visible to later lookups.
func (m *SlotMap[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range m.data {
			if !yield(&m.data[i]) {
				return
			}
		}
	}
}

// All returns an iterator pairing a handle with a pointer to each live
// object, in dense order. The map must not be modified during iteration,
// except through the yielded pointers.
func (m *SlotMap[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for i := range m.data {
			md := m.metadata[i]
			if !yield(NewHandle[T](md.ReverseID, md.ValidityID), &m.data[i]) {
				return
			}
		}
	}
}

// Drain returns a single-use iterator that moves every object out of the
// map. When iteration starts the map is cleared, invalidating every handle;
// stopping early discards the remaining objects. Ranging over the returned
// sequence a second time yields nothing.
func (m *SlotMap[T]) Drain() iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		values := append([]T(nil), m.data...)
		m.Clear()
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
