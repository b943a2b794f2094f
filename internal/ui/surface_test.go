package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"

	"github.com/taskdeck/task-tracker/internal/boundary"
	"github.com/taskdeck/task-tracker/internal/model"
)

func newTestSurface(t *testing.T) (*Surface, *boundary.App, fyne.WidgetRenderer) {
	t.Helper()
	test.NewApp()

	app := newComposedApp()
	surface := NewSurface(app)
	renderer := test.WidgetRenderer(surface)
	surface.Resize(fyne.NewSize(1024, 768))
	return surface, app, renderer
}

func TestSurfaceBuildsLoginObjects(t *testing.T) {
	surface, _, renderer := newTestSurface(t)

	surface.Step(0.016)

	objects := renderer.Objects()
	if len(objects) == 0 {
		t.Fatal("Expected canvas objects after a frame step")
	}

	rect, ok := objects[0].(*canvas.Rectangle)
	if !ok {
		t.Fatalf("Expected the first object to be a rectangle, got %T", objects[0])
	}
	if rect.Size().Width != 1024 || rect.Size().Height != 768 {
		t.Errorf("Expected a full viewport rectangle, got %v", rect.Size())
	}

	found := false
	for _, obj := range objects {
		txt, ok := obj.(*canvas.Text)
		if !ok || txt.Text != "Task Tracker" {
			continue
		}
		found = true
		if !txt.TextStyle.Bold {
			t.Error("Expected the login title to render bold")
		}
		if txt.TextSize != 32 {
			t.Errorf("Expected title size 32, got %f", txt.TextSize)
		}
	}
	if !found {
		t.Error("Expected the login title among the canvas objects")
	}
}

func TestSurfaceClickBetweenSteps(t *testing.T) {
	surface, app, _ := newTestSurface(t)
	app.SetLoggedIn(true)
	seedTask(app, 0, "Alpha", "", "auth", model.StatusPending, model.PriorityLow)
	app.DecodeTasks(1)

	surface.Step(0.016)

	box := findText(t, app, frameCommands(t, app), "Alpha")
	pos := fyne.NewPos(box.X+box.Width/2, box.Y+box.Height/2)

	// Press and release both land between steps; the press must still
	// dispatch on the next frame.
	surface.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:       desktop.MouseButtonPrimary,
	})
	surface.MouseUp(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:       desktop.MouseButtonPrimary,
	})

	surface.Step(0.016)

	if app.SelectedTaskIndex() != 0 {
		t.Errorf("Expected task 0 selected after the click, got %d", app.SelectedTaskIndex())
	}
	if !app.Store().ShowDetailPanel() {
		t.Error("Expected the detail panel to open after the click")
	}
}

func TestSurfaceSecondaryButtonIgnored(t *testing.T) {
	surface, app, _ := newTestSurface(t)
	app.SetLoggedIn(true)
	seedTask(app, 0, "Alpha", "", "auth", model.StatusPending, model.PriorityLow)
	app.DecodeTasks(1)

	surface.Step(0.016)

	box := findText(t, app, frameCommands(t, app), "Alpha")
	pos := fyne.NewPos(box.X+box.Width/2, box.Y+box.Height/2)

	surface.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:       desktop.MouseButtonSecondary,
	})

	surface.Step(0.016)

	if app.SelectedTaskIndex() != -1 {
		t.Errorf("Expected no selection from a secondary click, got %d", app.SelectedTaskIndex())
	}
}

func TestSurfaceScrollConsumedOnce(t *testing.T) {
	surface, _, _ := newTestSurface(t)

	surface.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -40)})

	if surface.scrollY != -40 {
		t.Errorf("Expected accumulated scroll -40, got %f", surface.scrollY)
	}

	surface.Step(0.016)

	if surface.scrollY != 0 {
		t.Errorf("Expected scroll reset after the step, got %f", surface.scrollY)
	}
}

func TestSurfaceTouchActsAsPress(t *testing.T) {
	surface, app, _ := newTestSurface(t)
	app.SetLoggedIn(true)
	seedTask(app, 0, "Alpha", "", "auth", model.StatusPending, model.PriorityLow)
	app.DecodeTasks(1)

	surface.Step(0.016)

	box := findText(t, app, frameCommands(t, app), "Alpha")
	pos := fyne.NewPos(box.X+box.Width/2, box.Y+box.Height/2)
	surface.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: pos}})
	surface.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: pos}})

	surface.Step(0.016)

	if app.SelectedTaskIndex() != 0 {
		t.Errorf("Expected task 0 selected after the tap, got %d", app.SelectedTaskIndex())
	}
}
