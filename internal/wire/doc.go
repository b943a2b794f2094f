package wire

// Package wire implements the fixed-stride binary record formats the host
// uses to hand task and service tables across the boundary: the decode side
// filling typed entities from caller-populated buffers, and the mirror-image
// encoders hosts and tests use to populate those buffers. All integers are
// little-endian; text fields are fixed-capacity and NUL-terminated with
// truncating-copy semantics.
