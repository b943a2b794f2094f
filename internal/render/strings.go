package render

// TextTable holds the strings referenced by text records for one frame.
// Packed records cannot carry Go string headers across the boundary, so a
// text payload stores a handle into this table instead. Handle 0 is
// reserved and never resolves.
type TextTable struct {
	entries []string
}

// Reset discards all entries while keeping the backing storage, the same
// per-frame lifecycle as the scratch arena.
func (t *TextTable) Reset() {
	t.entries = t.entries[:0]
}

// Add stores s and returns its handle for this frame.
func (t *TextTable) Add(s string) uint32 {
	t.entries = append(t.entries, s)
	return uint32(len(t.entries))
}

// Lookup resolves a handle added this frame.
func (t *TextTable) Lookup(handle uint32) (string, bool) {
	if handle == 0 || int(handle) > len(t.entries) {
		return "", false
	}
	return t.entries[handle-1], true
}

// Len reports how many strings the frame has added.
func (t *TextTable) Len() int {
	return len(t.entries)
}
