package boundary

import (
	"github.com/taskdeck/task-tracker/internal/render"
	"github.com/taskdeck/task-tracker/internal/store"
)

// Frame is the context a Composer builds one frame against. It exposes the
// viewport, pointer and scroll input, the simulated clock and the store,
// and collects the draw commands and interactive regions the composition
// produces. A Frame is only valid for the duration of one Compose call.
type Frame struct {
	app *App

	// Width and Height are the viewport dimensions for this frame.
	Width  float32
	Height float32
}

// Composer builds the draw command list for one frame.
type Composer interface {
	Compose(f *Frame)
}

// Store gives the composition read access to the entity store.
func (f *Frame) Store() *store.AppState { return f.app.store }

// Time returns the simulated clock, already advanced for this frame.
func (f *Frame) Time() float64 { return f.app.appTime }

// ScrollDelta returns this frame's wheel movement.
func (f *Frame) ScrollDelta() (x, y float32) { return f.app.scrollX, f.app.scrollY }

// PointerPos returns the pointer position in viewport coordinates.
func (f *Frame) PointerPos() (x, y float32) { return f.app.pointerX, f.app.pointerY }

// PointerDown reports whether the pointer or a touch is held this frame.
func (f *Frame) PointerDown() bool { return f.app.pointerDown }

// Hovered reports whether the pointer is inside box this frame.
func (f *Frame) Hovered(box render.BoundingBox) bool {
	return f.app.pointerInside(box)
}

// OnHover registers box as an interactive region whose press effect is
// data. The record lives in the scratch arena until the next frame reset,
// so the arena must be bound before composing interactive content.
func (f *Frame) OnHover(box render.BoundingBox, data ClickData) {
	ref := data.put(&f.app.arena)
	f.app.regions = append(f.app.regions, hoverRegion{box: box, ref: ref})
}

// Push appends one draw command. Commands keep their push order when
// packed, which is the painter's draw order.
func (f *Frame) Push(cmd render.Command) {
	f.app.cmds = append(f.app.cmds, cmd)
}

// Text stores s in the frame's string table and returns the reference a
// text command carries across the boundary.
func (f *Frame) Text(s string) render.TextRef {
	return render.TextRef{
		Handle: f.app.texts.Add(s),
		Length: uint32(len(s)),
	}
}

// PulseAlpha returns the data-pulse indicator's alpha for this frame, 0
// when no pulse is running.
func (f *Frame) PulseAlpha() float32 {
	return f.app.pulseAlpha()
}

// SetLoginRect records where composition placed a login input this frame,
// 0 for the username field and 1 for the password field. Rects reset to
// the absent sentinel every frame, so a login screen must set them on each
// compose.
func (f *Frame) SetLoginRect(which int, box render.BoundingBox) {
	if which < 0 || which >= len(f.app.loginRects) {
		return
	}
	f.app.loginRects[which] = box
}
