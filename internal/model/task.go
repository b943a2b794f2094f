package model

// Table capacities. Decode counts above these clamp silently.
const (
	MaxTasks    = 100
	MaxServices = 64
)

// Per-field capacities in bytes, terminator included. These match the
// declared widths of the corresponding wire fields.
const (
	TaskIDCap          = 37 // UUID string from the backend (36 chars + terminator)
	TaskTitleCap       = 128
	TaskDescriptionCap = 512
	TaskCategoryCap    = 64
	TaskServiceNameCap = 64
	TaskDueDateCap     = 32
	TaskAssignedToCap  = 64

	ServiceIDCap   = 37
	ServiceNameCap = 64
)

// Task represents a single tracked task. Tasks live in the entity store's
// fixed table and are replaced wholesale on each decode, never patched.
type Task struct {
	ID          Text
	LegacyID    uint32 // numeric id kept only for legacy host calls
	Title       Text
	Description Text
	Status      Status
	Priority    Priority
	Category    Text
	ServiceName Text
	DueDate     Text
	AssignedTo  Text
	Selected    bool // transient, cleared on every decode
}

// NewTask returns an empty task with every text field at its wire
// capacity.
func NewTask() Task {
	return Task{
		ID:          NewText(TaskIDCap),
		Title:       NewText(TaskTitleCap),
		Description: NewText(TaskDescriptionCap),
		Category:    NewText(TaskCategoryCap),
		ServiceName: NewText(TaskServiceNameCap),
		DueDate:     NewText(TaskDueDateCap),
		AssignedTo:  NewText(TaskAssignedToCap),
	}
}

// Service represents a service tasks can belong to.
type Service struct {
	ID   Text
	Name Text
}

// NewService returns an empty service with fields at wire capacity.
func NewService() Service {
	return Service{
		ID:   NewText(ServiceIDCap),
		Name: NewText(ServiceNameCap),
	}
}
