package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdeck/task-tracker/internal/boundary"
	"github.com/taskdeck/task-tracker/internal/render"
)

// Smallest viewport the composition stays usable at
const (
	SurfaceMinWidth  float32 = 640
	SurfaceMinHeight float32 = 480
)

// maxFrameCommands sizes the packed command buffer. Composition output is
// bounded by the visible card count, far below this.
const maxFrameCommands = 2048

// Surface is the widget composed frames draw onto. It feeds mouse, touch
// and scroll input into the boundary and rebuilds its canvas objects from
// each frame's packed command buffer. Every method runs on the UI thread.
type Surface struct {
	widget.BaseWidget

	app *boundary.App

	frame  []byte
	packed int

	pointerX, pointerY float32
	pointerDown        bool
	touchActive        bool
	pressPending       bool // press seen since the last step, so a quick click is never lost
	scrollX, scrollY   float32
}

// NewSurface creates a surface driving the given app
func NewSurface(app *boundary.App) *Surface {
	s := &Surface{
		app:      app,
		frame:    make([]byte, render.PackedSize(maxFrameCommands)),
		pointerX: -1,
		pointerY: -1,
	}
	s.ExtendBaseWidget(s)
	return s
}

// Step advances the boundary by one frame using the input gathered since
// the previous step, then repaints.
func (s *Surface) Step(dt float32) {
	size := s.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	scrollX, scrollY := s.scrollX, s.scrollY
	s.scrollX, s.scrollY = 0, 0

	down := s.pointerDown || s.pressPending
	s.pressPending = false

	s.packed = s.app.AdvanceFrame(s.frame, size.Width, size.Height,
		scrollX, scrollY, s.pointerX, s.pointerY, s.touchActive, down, dt)
	s.Refresh()
}

// MouseIn implements desktop.Hoverable
func (s *Surface) MouseIn(ev *desktop.MouseEvent) {
	s.pointerX = ev.Position.X
	s.pointerY = ev.Position.Y
}

// MouseMoved implements desktop.Hoverable
func (s *Surface) MouseMoved(ev *desktop.MouseEvent) {
	s.pointerX = ev.Position.X
	s.pointerY = ev.Position.Y
}

// MouseOut implements desktop.Hoverable
func (s *Surface) MouseOut() {
	s.pointerX = -1
	s.pointerY = -1
	s.pointerDown = false
}

// MouseDown implements desktop.Mouseable
func (s *Surface) MouseDown(ev *desktop.MouseEvent) {
	s.pointerX = ev.Position.X
	s.pointerY = ev.Position.Y
	if ev.Button == desktop.MouseButtonPrimary {
		s.pointerDown = true
		s.pressPending = true
	}
}

// MouseUp implements desktop.Mouseable
func (s *Surface) MouseUp(ev *desktop.MouseEvent) {
	s.pointerX = ev.Position.X
	s.pointerY = ev.Position.Y
	if ev.Button == desktop.MouseButtonPrimary {
		s.pointerDown = false
	}
}

// Scrolled implements fyne.Scrollable
func (s *Surface) Scrolled(ev *fyne.ScrollEvent) {
	s.scrollX += ev.Scrolled.DX
	s.scrollY += ev.Scrolled.DY
}

// TouchDown implements mobile.Touchable
func (s *Surface) TouchDown(ev *mobile.TouchEvent) {
	s.pointerX = ev.Position.X
	s.pointerY = ev.Position.Y
	s.touchActive = true
	s.pressPending = true
}

// TouchUp implements mobile.Touchable
func (s *Surface) TouchUp(ev *mobile.TouchEvent) {
	s.pointerX = ev.Position.X
	s.pointerY = ev.Position.Y
	s.touchActive = false
}

// TouchCancel implements mobile.Touchable
func (s *Surface) TouchCancel(ev *mobile.TouchEvent) {
	s.touchActive = false
	s.pressPending = false
}

// CreateRenderer creates the widget renderer
func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceRenderer{surface: s}
}

// surfaceRenderer turns the last packed frame into canvas objects
type surfaceRenderer struct {
	surface *Surface
	objects []fyne.CanvasObject
}

// Layout positions nothing: every object carries its own frame-space box
func (r *surfaceRenderer) Layout(size fyne.Size) {}

// MinSize returns the minimum size
func (r *surfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(SurfaceMinWidth, SurfaceMinHeight)
}

// Refresh rebuilds the object list from the last packed frame
func (r *surfaceRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.surface)
}

// Objects returns the drawn objects
func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *surfaceRenderer) Destroy() {}

func (r *surfaceRenderer) rebuild() {
	r.objects = r.objects[:0]

	if r.surface.packed == 0 {
		return
	}
	cmds, err := render.Unpack(r.surface.frame[:r.surface.packed])
	if err != nil {
		log.Printf("Dropping frame with a bad command buffer: %v", err)
		return
	}

	// Scissor pairs clip by culling: objects fully outside the active
	// clip are dropped, partial overlaps draw whole.
	var clip render.BoundingBox
	clipping := false

	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Type {
		case render.CommandScissorStart:
			clip = cmd.Box
			clipping = true
			continue
		case render.CommandScissorEnd:
			clipping = false
			continue
		}
		if clipping && fullyOutside(cmd.Box, clip) {
			continue
		}

		switch cmd.Type {
		case render.CommandRectangle:
			rect := canvas.NewRectangle(toRGBA(cmd.Rectangle.Color))
			rect.CornerRadius = cmd.Rectangle.CornerRadius.TopLeft
			placeObject(rect, cmd.Box)
			r.objects = append(r.objects, rect)

		case render.CommandBorder:
			rect := canvas.NewRectangle(color.Transparent)
			rect.StrokeColor = toRGBA(cmd.Border.Color)
			rect.StrokeWidth = widestEdge(cmd.Border.Width)
			rect.CornerRadius = cmd.Border.CornerRadius.TopLeft
			placeObject(rect, cmd.Box)
			r.objects = append(r.objects, rect)

		case render.CommandText:
			str, ok := r.surface.app.TextByHandle(cmd.Text.Text.Handle)
			if !ok {
				continue
			}
			txt := canvas.NewText(str, toRGBA(cmd.Text.Color))
			txt.TextSize = float32(cmd.Text.FontSize)
			if cmd.Text.FontID == FontTitle24 || cmd.Text.FontID == FontTitle32 {
				txt.TextStyle = fyne.TextStyle{Bold: true}
			}
			placeObject(txt, cmd.Box)
			r.objects = append(r.objects, txt)
		}
	}
}

func placeObject(obj fyne.CanvasObject, box render.BoundingBox) {
	obj.Move(fyne.NewPos(box.X, box.Y))
	obj.Resize(fyne.NewSize(box.Width, box.Height))
}

func fullyOutside(box, clip render.BoundingBox) bool {
	return box.X+box.Width <= clip.X || box.X >= clip.X+clip.Width ||
		box.Y+box.Height <= clip.Y || box.Y >= clip.Y+clip.Height
}

func widestEdge(w render.BorderWidth) float32 {
	widest := w.Left
	if w.Right > widest {
		widest = w.Right
	}
	if w.Top > widest {
		widest = w.Top
	}
	if w.Bottom > widest {
		widest = w.Bottom
	}
	return float32(widest)
}

func toRGBA(c render.Color) color.Color {
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: uint8(c.A)}
}
