package render

// Package render defines the draw command list produced by each frame and
// its packed wire form: a 16-byte header followed by fixed 64-byte records,
// one per command, in paint order. Hosts unpack the buffer and paint records
// front to back; records carry no pointers, so text payloads reference a
// per-frame string table by handle instead.
