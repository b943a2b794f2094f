package model

// Text is a fixed-capacity byte string. The capacity matches the wire
// field's declared width, which reserves one byte for a terminator, so a
// Text of capacity N holds at most N-1 content bytes. Writes truncate at
// that limit; truncation is reported, never an error.
//
// The zero value has capacity 0 and holds nothing. Use NewText.
type Text struct {
	max int
	s   string
}

// NewText returns an empty Text with the given capacity in bytes.
func NewText(capacity int) Text {
	return Text{max: capacity}
}

// Set replaces the contents with s, truncating at capacity-1 bytes.
// Truncation is byte-level and may split a multi-byte rune, matching the
// wire format's byte semantics. Reports whether s was truncated.
func (t *Text) Set(s string) bool {
	if t.max <= 1 {
		t.s = ""
		return len(s) > 0
	}
	if len(s) > t.max-1 {
		t.s = s[:t.max-1]
		return true
	}
	t.s = s
	return false
}

// SetBytes is Set for a raw byte field.
func (t *Text) SetBytes(b []byte) bool {
	return t.Set(string(b))
}

// Clear empties the contents without changing the capacity.
func (t *Text) Clear() {
	t.s = ""
}

// String returns the current contents.
func (t Text) String() string {
	return t.s
}

// Len returns the content length in bytes.
func (t Text) Len() int {
	return len(t.s)
}

// Cap returns the capacity in bytes, terminator included.
func (t Text) Cap() int {
	return t.max
}

// IsEmpty reports whether the contents are empty.
func (t Text) IsEmpty() bool {
	return t.s == ""
}

// Equal reports byte-for-byte equality of contents. Capacity is not
// compared.
func (t Text) Equal(o Text) bool {
	return t.s == o.s
}
