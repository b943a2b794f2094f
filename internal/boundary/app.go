package boundary

import (
	"github.com/taskdeck/task-tracker/internal/arena"
	"github.com/taskdeck/task-tracker/internal/model"
	"github.com/taskdeck/task-tracker/internal/render"
	"github.com/taskdeck/task-tracker/internal/store"
	"github.com/taskdeck/task-tracker/internal/wire"
)

const defaultPulseSeconds = 0.35

// absentRect is what LoginFieldRect reports for a field the last composed
// frame did not contain.
var absentRect = render.BoundingBox{X: -1, Y: -1, Width: 0, Height: 0}

// App owns all state the boundary operates on. Construct one at startup
// and keep it for the process lifetime; none of its methods are safe for
// concurrent use.
type App struct {
	store *store.AppState
	arena arena.Arena
	texts render.TextTable

	taskInput    [wire.TaskBufferSize]byte
	serviceInput [wire.ServiceBufferSize]byte

	composer Composer

	width, height float32
	appTime       float64

	scrollX, scrollY   float32
	pointerX, pointerY float32
	pointerDown        bool
	wasDown            bool

	pulseRemaining float32
	pulseDuration  float32

	lastServiceClickIndex int
	lastServiceClickTime  float64

	loginRects [2]render.BoundingBox

	cmds    []render.Command
	regions []hoverRegion
}

type hoverRegion struct {
	box render.BoundingBox
	ref arena.Ref
}

// New returns an App in the logged-out, empty state. composer may be nil
// for hosts that only exercise the decode side.
func New(composer Composer) *App {
	return &App{
		store:                 store.New(),
		composer:              composer,
		pulseDuration:         defaultPulseSeconds,
		lastServiceClickIndex: store.NoSelection,
	}
}

// Store exposes the entity store for host state access beyond the
// convenience forwards below.
func (app *App) Store() *store.AppState { return app.store }

// Reset restores the store's logged-out, empty state. The simulated clock,
// pulse and click history keep running; they describe the session, not the
// data.
func (app *App) Reset() { app.store.Reset() }

// BindScratchMemory hands the arena its backing block. nil unbinds, which
// is treated as "not configured": frames that register no interactive
// regions still work, anything else panics.
func (app *App) BindScratchMemory(block []byte) {
	app.arena.Bind(block)
}

// TaskInputBuffer exposes the fixed task table input buffer for the host
// to populate before DecodeTasks.
func (app *App) TaskInputBuffer() []byte { return app.taskInput[:] }

// ServiceInputBuffer exposes the fixed service table input buffer.
func (app *App) ServiceInputBuffer() []byte { return app.serviceInput[:] }

// CurrentUserBuffer exposes the fixed user-name field the host writes a
// terminated string into.
func (app *App) CurrentUserBuffer() []byte { return app.store.CurrentUserBuffer() }

// DecodeTasks replaces the task table from the first count entries of the
// task input buffer. count is clamped to [0, model.MaxTasks]; a shrinking
// decode past the selected task clears the selection and the detail panel.
func (app *App) DecodeTasks(count int) {
	if count < 0 {
		count = 0
	}
	if count > model.MaxTasks {
		count = model.MaxTasks
	}
	app.store.ReplaceTasks(count, func(i int, task *model.Task) {
		wire.DecodeTaskEntry(wire.TaskEntry(app.taskInput[:], i), task)
	})
}

// DecodeServices replaces the service table from the first count entries
// of the service input buffer, clamping count to [0, model.MaxServices].
func (app *App) DecodeServices(count int) {
	if count < 0 {
		count = 0
	}
	if count > model.MaxServices {
		count = model.MaxServices
	}
	app.store.ReplaceServices(count, func(i int, service *model.Service) {
		wire.DecodeServiceEntry(wire.ServiceEntry(app.serviceInput[:], i), service)
	})
}

// AdvanceFrame runs one frame: reset the per-frame scratch state, advance
// the simulated clock by dt, take the host's input snapshot, compose the
// frame, dispatch a pointer press against the regions composition
// registered, and pack the draw commands into out. A nil out skips the
// pack and AdvanceFrame returns 0; otherwise it returns the packed size.
func (app *App) AdvanceFrame(out []byte, width, height, scrollX, scrollY, pointerX, pointerY float32, touchActive, pointerActive bool, dt float32) int {
	app.arena.Reset()
	app.texts.Reset()
	app.cmds = app.cmds[:0]
	app.regions = app.regions[:0]
	app.loginRects[0] = absentRect
	app.loginRects[1] = absentRect

	app.width = width
	app.height = height
	app.appTime += float64(dt)

	if app.pulseRemaining > 0 {
		app.pulseRemaining -= dt
		if app.pulseRemaining < 0 {
			app.pulseRemaining = 0
		}
	}

	app.scrollX = scrollX
	app.scrollY = scrollY
	app.pointerX = pointerX
	app.pointerY = pointerY
	down := pointerActive || touchActive
	app.pointerDown = down

	if app.composer != nil {
		f := Frame{app: app, Width: width, Height: height}
		app.composer.Compose(&f)
	}

	// A press is dispatched on its leading edge only, against every
	// region containing the pointer, in registration order.
	if down && !app.wasDown {
		for _, region := range app.regions {
			if app.pointerInside(region.box) {
				app.dispatch(clickDataAt(&app.arena, region.ref))
			}
		}
	}
	app.wasDown = down

	return render.Pack(out, app.cmds)
}

// LoginFieldRect returns where the last composed frame placed a login
// input: 0 for username, 1 for password. The box is {-1,-1,0,0} when the
// field was absent from that frame. ok is false for any other index.
func (app *App) LoginFieldRect(which int) (box render.BoundingBox, ok bool) {
	if which < 0 || which >= len(app.loginRects) {
		return render.BoundingBox{}, false
	}
	return app.loginRects[which], true
}

// SetDataPulse starts or extends the data-change pulse. Durations at or
// below zero fall back to the default window. A running pulse never
// shortens.
func (app *App) SetDataPulse(seconds float32) {
	duration := seconds
	if duration <= 0 {
		duration = defaultPulseSeconds
	}
	app.pulseDuration = duration
	if app.pulseRemaining < duration {
		app.pulseRemaining = duration
	}
}

// TextByHandle resolves a packed text reference from the most recent
// frame.
func (app *App) TextByHandle(handle uint32) (string, bool) {
	return app.texts.Lookup(handle)
}

// Convenience forwards for the host hooks that predate the store split.

func (app *App) LoggedIn() bool     { return app.store.LoggedIn() }
func (app *App) SetLoggedIn(v bool) { app.store.SetLoggedIn(v) }
func (app *App) TaskCount() int     { return app.store.TaskCount() }
func (app *App) SelectedTaskIndex() int {
	return app.store.SelectedTask()
}
func (app *App) TakeShowCreateModal() bool { return app.store.TakeShowCreateModal() }
func (app *App) TakePendingCreateService() int {
	return app.store.TakePendingCreateService()
}
func (app *App) SetCreatePanelVisible(v bool) { app.store.SetCreatePanelVisible(v) }
func (app *App) AddTask(legacyID uint32, status model.Status, priority model.Priority) bool {
	return app.store.AddTask(legacyID, status, priority)
}
func (app *App) ClearTasks() { app.store.ClearTasks() }

func (app *App) pointerInside(box render.BoundingBox) bool {
	return app.pointerX >= box.X && app.pointerX < box.X+box.Width &&
		app.pointerY >= box.Y && app.pointerY < box.Y+box.Height
}

func (app *App) pulseAlpha() float32 {
	if app.pulseRemaining <= 0 || app.pulseDuration <= 0 {
		return 0
	}
	t := app.pulseRemaining / app.pulseDuration
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	a := 30 + (1-t)*140
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	return float32(uint8(a))
}
