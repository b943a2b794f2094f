package store

// Package store holds the application state shared by decoding,
// interaction dispatch and frame composition: the bounded task and service
// tables, selection indices, panel visibility and login state. State
// mutates only through full-table replacement, the host-facing add/clear
// hooks and the dispatcher; there is exactly one logical writer.

import (
	"github.com/taskdeck/task-tracker/internal/model"
)

// NoSelection marks an empty task or service selection.
const NoSelection = -1

// UserBufferSize is the capacity of the current-user text field the host
// writes directly, terminator included.
const UserBufferSize = 64

// AppState is the entity store. The task and service tables are allocated
// once at construction and never grow or shrink; counts track how many
// leading entries are live.
type AppState struct {
	tasks     []model.Task
	taskCount int

	services     []model.Service
	serviceCount int

	userBuf [UserBufferSize]byte

	loggedIn bool

	selectedTask    int
	selectedService int

	filter model.StatusFilter

	showDetailPanel    bool
	createPanelVisible bool

	// One-shot flags consumed by the host. Reading clears them.
	showCreateModal      bool
	pendingCreateService int
}

// New returns a store in the logged-out, empty state with all table slots
// initialized to their field capacities.
func New() *AppState {
	s := &AppState{
		tasks:    make([]model.Task, model.MaxTasks),
		services: make([]model.Service, model.MaxServices),
	}
	for i := range s.tasks {
		s.tasks[i] = model.NewTask()
	}
	for i := range s.services {
		s.services[i] = model.NewService()
	}
	s.Reset()
	return s
}

// Reset restores the logged-out, empty state: counts zero, selections
// cleared, filter showing everything, all panels hidden, user name empty.
// Table slot contents are left as they are; only the counts make entries
// live again.
func (s *AppState) Reset() {
	s.loggedIn = false
	s.taskCount = 0
	s.serviceCount = 0
	s.selectedTask = NoSelection
	s.selectedService = NoSelection
	s.filter = model.FilterAll
	s.showDetailPanel = false
	s.createPanelVisible = false
	s.showCreateModal = false
	s.pendingCreateService = NoSelection
	s.userBuf[0] = 0
}

// ReplaceTasks replaces the whole task table: fill is called once per slot
// in order, then the live count becomes n. A selection pointing past the
// new count is cleared along with the detail panel it drives. n must
// already be clamped to [0, model.MaxTasks].
func (s *AppState) ReplaceTasks(n int, fill func(i int, task *model.Task)) {
	for i := 0; i < n; i++ {
		fill(i, &s.tasks[i])
	}
	s.taskCount = n
	if s.selectedTask >= n {
		s.selectedTask = NoSelection
		s.showDetailPanel = false
	}
}

// ReplaceServices replaces the whole service table. A stale service
// selection is cleared; task selection and panels are untouched.
func (s *AppState) ReplaceServices(n int, fill func(i int, service *model.Service)) {
	for i := 0; i < n; i++ {
		fill(i, &s.services[i])
	}
	s.serviceCount = n
	if s.selectedService >= n {
		s.selectedService = NoSelection
	}
}

// AddTask appends a minimal task entry: legacy numeric id, status and
// priority, with the string id cleared. Remaining fields keep whatever the
// slot last held. Reports false when the table is full.
func (s *AppState) AddTask(legacyID uint32, status model.Status, priority model.Priority) bool {
	if s.taskCount >= model.MaxTasks {
		return false
	}
	task := &s.tasks[s.taskCount]
	task.LegacyID = legacyID
	task.ID.Clear()
	task.Status = status
	task.Priority = priority
	s.taskCount++
	return true
}

// ClearTasks empties the task table and drops any task selection.
func (s *AppState) ClearTasks() {
	s.taskCount = 0
	if s.selectedTask != NoSelection {
		s.selectedTask = NoSelection
		s.showDetailPanel = false
	}
}

func (s *AppState) TaskCount() int    { return s.taskCount }
func (s *AppState) ServiceCount() int { return s.serviceCount }

// Task returns the i-th table slot. Entries at i >= TaskCount are stale.
func (s *AppState) Task(i int) *model.Task { return &s.tasks[i] }

// Service returns the i-th table slot.
func (s *AppState) Service(i int) *model.Service { return &s.services[i] }

// FirstTaskForService returns the index of the first live task whose
// service name equals name byte for byte, or NoSelection.
func (s *AppState) FirstTaskForService(name string) int {
	for i := 0; i < s.taskCount; i++ {
		if s.tasks[i].ServiceName.String() == name {
			return i
		}
	}
	return NoSelection
}

func (s *AppState) LoggedIn() bool      { return s.loggedIn }
func (s *AppState) SetLoggedIn(v bool)  { s.loggedIn = v }
func (s *AppState) SelectedTask() int   { return s.selectedTask }
func (s *AppState) SetSelectedTask(i int) {
	s.selectedTask = i
}
func (s *AppState) SelectedService() int { return s.selectedService }
func (s *AppState) SetSelectedService(i int) {
	s.selectedService = i
}

func (s *AppState) Filter() model.StatusFilter     { return s.filter }
func (s *AppState) SetFilter(f model.StatusFilter) { s.filter = f }

func (s *AppState) ShowDetailPanel() bool     { return s.showDetailPanel }
func (s *AppState) SetShowDetailPanel(v bool) { s.showDetailPanel = v }

func (s *AppState) CreatePanelVisible() bool { return s.createPanelVisible }

// SetCreatePanelVisible shows or hides the docked create panel. Hiding it
// also discards a pending create-for-service request, since the request
// only has meaning while the panel is up.
func (s *AppState) SetCreatePanelVisible(v bool) {
	s.createPanelVisible = v
	if !v {
		s.pendingCreateService = NoSelection
	}
}

// RequestCreateModal arms the one-shot create-modal flag. A pending
// service index set earlier stays as it is; pinning one is a separate
// step.
func (s *AppState) RequestCreateModal() {
	s.showCreateModal = true
}

// SetPendingCreateService pins the service a requested create modal is
// aimed at.
func (s *AppState) SetPendingCreateService(i int) {
	s.pendingCreateService = i
}

// TakeShowCreateModal reports whether a create modal was requested and
// clears the request. The second call in a frame returns false.
func (s *AppState) TakeShowCreateModal() bool {
	v := s.showCreateModal
	s.showCreateModal = false
	return v
}

// TakePendingCreateService returns the service index a requested create
// modal was aimed at and clears it. The second call returns NoSelection.
func (s *AppState) TakePendingCreateService() int {
	v := s.pendingCreateService
	s.pendingCreateService = NoSelection
	return v
}

// CurrentUserBuffer exposes the raw user-name field for the host to write
// a terminated string into, mirroring the input tables.
func (s *AppState) CurrentUserBuffer() []byte {
	return s.userBuf[:]
}

// CurrentUser returns the user name up to its terminator.
func (s *AppState) CurrentUser() string {
	for i, c := range s.userBuf {
		if c == 0 {
			return string(s.userBuf[:i])
		}
	}
	return string(s.userBuf[:len(s.userBuf)-1])
}

// SetCurrentUser writes name into the user field, truncating to fit the
// terminator.
func (s *AppState) SetCurrentUser(name string) {
	if len(name) > UserBufferSize-1 {
		name = name[:UserBufferSize-1]
	}
	n := copy(s.userBuf[:], name)
	s.userBuf[n] = 0
}
