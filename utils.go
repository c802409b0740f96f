package slotmap

// swap exchanges the elements at positions i and j.
func swap[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// extendCap grows the capacity of s so that n more elements fit without
// reallocating. Length and contents are unchanged.
func extendCap[T any](s []T, n int) []T {
	need := len(s) + n
	if cap(s) >= need {
		return s
	}
	newCap := max(2*cap(s), need)
	ns := make([]T, len(s), newCap)
	copy(ns, s)
	return ns
}
