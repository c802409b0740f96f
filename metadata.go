package slotmap

// Metadata is the bookkeeping kept for one dense storage position.
type Metadata struct {
	// ReverseID is the ID of the object at this position. Past the live
	// boundary it is the ID this free slot will hand out next.
	ReverseID ID
	// ValidityID is the slot's generation, bumped whenever its occupant is
	// removed.
	ValidityID uint64
}

// NewMetadata returns a Metadata record.
func NewMetadata(reverseID ID, validityID uint64) Metadata {
	return Metadata{ReverseID: reverseID, ValidityID: validityID}
}
