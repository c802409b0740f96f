package slotmap

import "strconv"

// Handle references an object stored in a SlotMap[T]. It pairs the object's
// logical ID with the generation its slot had when the handle was created,
// so a SlotMap can tell whether the object is still there.
//
// Handles are plain values: copy them, compare them with == and use them as
// map keys freely. A handle never keeps an object alive and never dangles;
// once its object is erased it simply stops resolving.
//
// The type parameter ties a handle to the element type of the map that
// issued it. The zero Handle is (0, 0), which is also the first handle a
// fresh map hands out, so it must not be treated as "no object".
type Handle[T any] struct {
	id         ID
	validityID uint64
}

// NewHandle builds a handle from an ID and a generation.
func NewHandle[T any](id ID, validityID uint64) Handle[T] {
	return Handle[T]{id: id, validityID: validityID}
}

// ID returns the logical ID of the referenced object.
func (h Handle[T]) ID() ID { return h.id }

// ValidityID returns the generation observed when h was created.
func (h Handle[T]) ValidityID() uint64 { return h.validityID }

// String formats h as id@generation.
func (h Handle[T]) String() string {
	return strconv.Itoa(h.id) + "@" + strconv.FormatUint(h.validityID, 10)
}
