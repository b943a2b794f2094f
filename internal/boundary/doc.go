package boundary

// Package boundary is the host-facing surface of the marshalling layer. An
// App bundles the entity store, the per-frame scratch arena, the fixed
// task/service input buffers and the simulated clock; hosts populate the
// input buffers, call the decode operations, then drive AdvanceFrame once
// per tick to compose, dispatch pointer interactions and pack the frame's
// draw commands into a caller-supplied output buffer. All operations are
// synchronous and run on whichever goroutine the host calls from; there is
// exactly one logical writer.
