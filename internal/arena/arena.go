package arena

// Package arena implements the per-frame bump allocator backing ephemeral
// interaction records. The backing block is caller-owned memory supplied
// through Bind; allocation hands out sequential offsets and the only
// deallocation is Reset, which invalidates every ref at once.

// Ref is the block offset of an allocation. Refs are only meaningful
// until the next Reset.
type Ref int

// Arena is a bump allocator over a caller-owned block. The zero value is
// unbound; Bind must be called before any Put. All methods are
// single-threaded by contract.
type Arena struct {
	block []byte
	off   int
}

// Bind records the caller-owned backing block. A nil block unbinds the
// arena ("not configured"). Bind does not validate the block's size; the
// caller is responsible for providing room for one frame's worth of
// records.
func (a *Arena) Bind(block []byte) {
	a.block = block
	a.off = 0
}

// Bound reports whether a backing block is configured.
func (a *Arena) Bound() bool {
	return a.block != nil
}

// Reset moves the cursor back to zero. Called once at the start of each
// frame; every previously returned Ref is invalid afterwards.
func (a *Arena) Reset() {
	a.off = 0
}

// Put copies data at the cursor, advances the cursor, and returns the
// ref of the written copy. Putting while unbound or past the end of the
// block is a caller contract violation and panics; there is no checked
// error path.
func (a *Arena) Put(data []byte) Ref {
	if a.block == nil {
		panic("arena: Put on unbound arena")
	}
	ref := Ref(a.off)
	copy(a.block[a.off:a.off+len(data)], data)
	a.off += len(data)
	return ref
}

// Bytes returns the n-byte window at ref for reading a record back
// within the same frame.
func (a *Arena) Bytes(ref Ref, n int) []byte {
	return a.block[ref : int(ref)+n]
}

// Offset returns the current cursor position.
func (a *Arena) Offset() int {
	return a.off
}

// Cap returns the size of the bound block.
func (a *Arena) Cap() int {
	return len(a.block)
}
