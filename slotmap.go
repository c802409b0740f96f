// Package slotmap provides a generational slot map: a dense container that
// hands out stable, validity-checked handles to the objects it stores.
//
// Objects live contiguously in a dense slice. Removal swaps the last object
// into the vacated position, so positions change, but logical IDs do not: an
// indirection table maps every ID to its current position. Each position
// carries a generation counter that is bumped when its occupant is removed,
// which lets a Handle detect that the object it was created for is gone even
// after the ID has been reissued.
package slotmap

import "fmt"

// ID is a logical identifier. It stays attached to the same object until the
// object is erased, independently of where the object sits in dense storage.
type ID = int

// InvalidID never denotes a slot. CreateHandle and Contains reject it.
const InvalidID ID = -1

// SlotMap stores values of type T behind stable IDs. The zero value is an
// empty map ready to use.
//
// A SlotMap is not safe for concurrent use. Readers may share it as long as
// no goroutine mutates it.
type SlotMap[T any] struct {
	data     []T        // live objects, compacted
	metadata []Metadata // per dense position; entries past len(data) are free slots
	indices  []int      // dense position per ID
}

// New creates a SlotMap with room for capacity objects before any of its
// backing slices has to grow.
//
// Parameters:
//   - capacity: The number of objects to pre-allocate memory for.
//
// Returns:
//   - The newly created SlotMap.
func New[T any](capacity int) *SlotMap[T] {
	capacity = max(capacity, 0)
	return &SlotMap[T]{
		data:     make([]T, 0, capacity),
		metadata: make([]Metadata, 0, capacity),
		indices:  make([]int, 0, capacity),
	}
}

// Insert appends value at the end of dense storage and returns its ID. The
// most recently freed ID is reused when one exists; otherwise a new ID is
// allocated.
func (m *SlotMap[T]) Insert(value T) ID {
	id := m.freeSlot()
	m.data = append(m.data, value)
	return id
}

// EraseID removes the object identified by id. Every handle to it becomes
// invalid. The last object in dense storage is moved into the vacated
// position; handles to it stay valid.
//
// EraseID panics if id does not denote a live object. The map is left
// untouched in that case.
func (m *SlotMap[T]) EraseID(id ID) {
	if !m.Contains(id) {
		panic(fmt.Sprintf("slotmap: erase of dead or unknown id %d", id))
	}
	pos := m.indices[id]
	last := len(m.data) - 1
	lastID := m.metadata[last].ReverseID

	m.metadata[pos].ValidityID++
	swap(m.data, pos, last)
	swap(m.metadata, pos, last)
	swap(m.indices, id, lastID)

	var zero T
	m.data[last] = zero
	m.data = m.data[:last]
}

// EraseIndex removes the object stored at the given dense position.
// It panics if index is outside [0, Len()).
func (m *SlotMap[T]) EraseIndex(index int) {
	if index < 0 || index >= len(m.data) {
		panic(fmt.Sprintf("slotmap: erase index %d out of range [0, %d)", index, len(m.data)))
	}
	m.EraseID(m.metadata[index].ReverseID)
}

// EraseHandle removes the object referenced by h. It panics if h is stale:
// erasing through a stale handle would otherwise remove whichever object
// has since been given the same ID. Use Remove when a stale handle is an
// expected outcome.
func (m *SlotMap[T]) EraseHandle(h Handle[T]) {
	if !m.IsValid(h.id, h.validityID) {
		panic(fmt.Sprintf("slotmap: erase through stale handle %s", h))
	}
	m.EraseID(h.id)
}

// Remove erases the object referenced by h and returns it. If h is stale the
// map is not modified and ok is false.
func (m *SlotMap[T]) Remove(h Handle[T]) (value T, ok bool) {
	if !m.IsValid(h.id, h.validityID) {
		return value, false
	}
	value = m.data[m.indices[h.id]]
	m.EraseID(h.id)
	return value, true
}

// CreateHandle returns a handle to the live object identified by id. It
// reports false if id is out of range or its slot is free.
func (m *SlotMap[T]) CreateHandle(id ID) (Handle[T], bool) {
	if !m.Contains(id) {
		return Handle[T]{}, false
	}
	return NewHandle[T](id, m.metadata[m.indices[id]].ValidityID), true
}

// CreateHandleFromIndex returns a handle to the object stored at the given
// dense position. It reports false if index is outside [0, Len()).
func (m *SlotMap[T]) CreateHandleFromIndex(index int) (Handle[T], bool) {
	if index < 0 || index >= len(m.data) {
		return Handle[T]{}, false
	}
	md := m.metadata[index]
	return NewHandle[T](md.ReverseID, md.ValidityID), true
}

// Get returns a copy of the object referenced by h. It reports false if the
// object has been erased, including when its ID has since been reissued.
func (m *SlotMap[T]) Get(h Handle[T]) (T, bool) {
	if !m.IsValid(h.id, h.validityID) {
		var zero T
		return zero, false
	}
	return m.data[m.indices[h.id]], true
}

// GetPtr is like Get but returns a pointer into dense storage, allowing the
// object to be modified in place. The pointer is only valid until the next
// call that inserts, erases, clears or reserves.
func (m *SlotMap[T]) GetPtr(h Handle[T]) (*T, bool) {
	if !m.IsValid(h.id, h.validityID) {
		return nil, false
	}
	return &m.data[m.indices[h.id]], true
}

// IsValid reports whether id denotes a live object whose current generation
// is validityID.
func (m *SlotMap[T]) IsValid(id ID, validityID uint64) bool {
	return m.Contains(id) && m.metadata[m.indices[id]].ValidityID == validityID
}

// Contains reports whether id currently denotes a live object.
func (m *SlotMap[T]) Contains(id ID) bool {
	return id >= 0 && id < len(m.indices) && m.indices[id] < len(m.data)
}

// At returns a copy of the object identified by id without checking any
// generation. It panics if id does not denote a live object.
func (m *SlotMap[T]) At(id ID) T {
	return *m.AtPtr(id)
}

// AtPtr returns a pointer to the object identified by id without checking
// any generation. It panics if id does not denote a live object.
func (m *SlotMap[T]) AtPtr(id ID) *T {
	if !m.Contains(id) {
		panic(fmt.Sprintf("slotmap: access to dead or unknown id %d", id))
	}
	return &m.data[m.indices[id]]
}

// DataIndex returns the dense position recorded for id. For a free id the
// position is stale and must not be used to index Data.
func (m *SlotMap[T]) DataIndex(id ID) int {
	m.checkAllocated(id)
	return m.indices[id]
}

// ValidityID returns the current generation of the slot recorded for id.
func (m *SlotMap[T]) ValidityID(id ID) uint64 {
	m.checkAllocated(id)
	return m.metadata[m.indices[id]].ValidityID
}

// Len returns the number of live objects.
func (m *SlotMap[T]) Len() int { return len(m.data) }

// IsEmpty reports whether the map holds no live object.
func (m *SlotMap[T]) IsEmpty() bool { return len(m.data) == 0 }

// Cap returns the capacity of dense storage.
func (m *SlotMap[T]) Cap() int { return cap(m.data) }

// NextID returns the ID the next call to Insert will return.
func (m *SlotMap[T]) NextID() ID {
	if len(m.metadata) > len(m.data) {
		return m.metadata[len(m.data)].ReverseID
	}
	return len(m.indices)
}

// Clear removes every object and invalidates every handle issued so far.
// IDs are kept and reissued by later insertions.
func (m *SlotMap[T]) Clear() {
	clear(m.data)
	m.data = m.data[:0]
	for i := range m.metadata {
		m.metadata[i].ValidityID++
	}
}

// Reserve grows all backing slices so that at least n more objects can be
// inserted without reallocating.
func (m *SlotMap[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	m.data = extendCap(m.data, n)
	m.metadata = extendCap(m.metadata, n)
	m.indices = extendCap(m.indices, n)
}

// Data returns the live objects in dense order. The slice aliases the map's
// storage until the next mutation of the map.
func (m *SlotMap[T]) Data() []T { return m.data }

// First returns the object at dense position 0.
func (m *SlotMap[T]) First() (T, bool) {
	if len(m.data) == 0 {
		var zero T
		return zero, false
	}
	return m.data[0], true
}

// Clone returns a copy of m. Handles issued by m resolve to the same values
// in the clone. Values are copied shallowly.
func (m *SlotMap[T]) Clone() *SlotMap[T] {
	return &SlotMap[T]{
		data:     append([]T(nil), m.data...),
		metadata: append([]Metadata(nil), m.metadata...),
		indices:  append([]int(nil), m.indices...),
	}
}

// freeSlot claims an ID for an object about to be appended at position
// len(m.data).
func (m *SlotMap[T]) freeSlot() ID {
	pos := len(m.data)
	if len(m.metadata) > pos {
		// reuse the free slot sitting on the boundary
		id := m.metadata[pos].ReverseID
		m.indices[id] = pos
		return id
	}
	id := len(m.indices)
	m.metadata = append(m.metadata, NewMetadata(id, 0))
	m.indices = append(m.indices, pos)
	return id
}

func (m *SlotMap[T]) checkAllocated(id ID) {
	if id < 0 || id >= len(m.indices) {
		panic(fmt.Sprintf("slotmap: id %d out of range [0, %d)", id, len(m.indices)))
	}
}
