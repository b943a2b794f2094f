package model

import "fmt"

// Status represents the workflow state of a task. Values arrive from the
// host as raw 32-bit integers and are preserved verbatim even when they
// fall outside the known range, so consumers must go through Known or the
// default case of a switch rather than assume membership.
type Status uint32

const (
	// StatusPending means the task has not been started
	StatusPending Status = 0

	// StatusInProgress means the task is being worked on
	StatusInProgress Status = 1

	// StatusCompleted means the task is done
	StatusCompleted Status = 2
)

// Known reports whether the value is one of the defined statuses.
func (s Status) Known() bool {
	return s <= StatusCompleted
}

// String returns the display label, or "Status(n)" for unknown values.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("Status(%d)", uint32(s))
	}
}

// Priority represents the urgency of a task. Same verbatim-decode rules
// as Status.
type Priority uint32

const (
	PriorityLow    Priority = 0
	PriorityMedium Priority = 1
	PriorityHigh   Priority = 2
	PriorityUrgent Priority = 3
)

// Known reports whether the value is one of the defined priorities.
func (p Priority) Known() bool {
	return p <= PriorityUrgent
}

// String returns the display label, or "Priority(n)" for unknown values.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return fmt.Sprintf("Priority(%d)", uint32(p))
	}
}

// StatusFilter enumerates visible subsets of the task list.
type StatusFilter int32

const (
	FilterAll        StatusFilter = 0
	FilterPending    StatusFilter = 1
	FilterInProgress StatusFilter = 2
	FilterCompleted  StatusFilter = 3
)

// Matches reports whether a task with the given status is visible under
// the filter. Unknown filter values match nothing.
func (f StatusFilter) Matches(s Status) bool {
	switch f {
	case FilterAll:
		return true
	case FilterPending:
		return s == StatusPending
	case FilterInProgress:
		return s == StatusInProgress
	case FilterCompleted:
		return s == StatusCompleted
	default:
		return false
	}
}

// String returns the filter tab label.
func (f StatusFilter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterPending:
		return "Pending"
	case FilterInProgress:
		return "In Progress"
	case FilterCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
