package boundary

import (
	"encoding/binary"

	"github.com/taskdeck/task-tracker/internal/arena"
	"github.com/taskdeck/task-tracker/internal/model"
	"github.com/taskdeck/task-tracker/internal/store"
)

// Action identifies the effect of clicking an interactive region.
type Action int32

const (
	ActionSelectTask Action = iota
	ActionOpenCreate
	ActionCloseDetail
	ActionApplyFilter
	ActionSelectService
)

// DoubleActivationWindow is the longest gap in simulated seconds between
// two clicks on the same service row that still counts as a double click.
const DoubleActivationWindow = 0.35

// ClickData describes what a click on one region should do. Composition
// allocates a record per interactive region from the scratch arena; the
// dispatcher decodes it back when the pointer presses inside the region.
type ClickData struct {
	TaskIndex int32
	Action    Action
	Payload   int32
}

const clickDataSize = 12

func (c ClickData) put(a *arena.Arena) arena.Ref {
	var buf [clickDataSize]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(c.TaskIndex))
	binary.LittleEndian.PutUint32(buf[4:], uint32(c.Action))
	binary.LittleEndian.PutUint32(buf[8:], uint32(c.Payload))
	return a.Put(buf[:])
}

func clickDataAt(a *arena.Arena, ref arena.Ref) ClickData {
	b := a.Bytes(ref, clickDataSize)
	return ClickData{
		TaskIndex: int32(binary.LittleEndian.Uint32(b[0:])),
		Action:    Action(binary.LittleEndian.Uint32(b[4:])),
		Payload:   int32(binary.LittleEndian.Uint32(b[8:])),
	}
}

// dispatch applies one pressed region's effect to the store.
func (app *App) dispatch(data ClickData) {
	st := app.store
	switch data.Action {
	case ActionSelectTask:
		st.SetSelectedTask(int(data.TaskIndex))
		st.SetShowDetailPanel(true)
		st.SetCreatePanelVisible(false)

	case ActionOpenCreate:
		st.RequestCreateModal()
		st.SetCreatePanelVisible(true)
		st.SetShowDetailPanel(false)

	case ActionCloseDetail:
		st.SetShowDetailPanel(false)
		st.SetSelectedTask(store.NoSelection)

	case ActionApplyFilter:
		st.SetFilter(model.StatusFilter(data.Payload))

	case ActionSelectService:
		app.selectService(int(data.Payload))
	}
}

// selectService handles a service row click: select the row, jump the task
// selection to the service's first task, and on a quick second click of
// the same row arm the create modal pinned to that service. Index -1 is
// the "all services" row and clears the task selection.
func (app *App) selectService(serviceIndex int) {
	st := app.store
	st.SetSelectedService(serviceIndex)

	taskIndex := store.NoSelection
	if serviceIndex >= 0 && serviceIndex < st.ServiceCount() {
		taskIndex = st.FirstTaskForService(st.Service(serviceIndex).Name.String())
	}
	if taskIndex >= 0 {
		st.SetSelectedTask(taskIndex)
		st.SetShowDetailPanel(true)
		st.SetCreatePanelVisible(false)
	} else {
		st.SetSelectedTask(store.NoSelection)
		st.SetShowDetailPanel(false)
	}

	if app.lastServiceClickIndex == serviceIndex &&
		app.appTime-app.lastServiceClickTime <= DoubleActivationWindow {
		st.RequestCreateModal()
		st.SetCreatePanelVisible(true)
		st.SetShowDetailPanel(false)
		st.SetPendingCreateService(serviceIndex)
	}
	app.lastServiceClickIndex = serviceIndex
	app.lastServiceClickTime = app.appTime
}
