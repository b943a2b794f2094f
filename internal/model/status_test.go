package model

import "testing"

func TestStatus_Known(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, true},
		{StatusInProgress, true},
		{StatusCompleted, true},
		{Status(3), false},
		{Status(4294967295), false},
	}

	for _, test := range tests {
		result := test.status.Known()
		if result != test.expected {
			t.Errorf("Status(%d).Known() = %v, expected %v", uint32(test.status), result, test.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusPending, "Pending"},
		{StatusInProgress, "In Progress"},
		{StatusCompleted, "Completed"},
		{Status(7), "Status(7)"},
	}

	for _, test := range tests {
		result := test.status.String()
		if result != test.expected {
			t.Errorf("Status(%d).String() = %s, expected %s", uint32(test.status), result, test.expected)
		}
	}
}

func TestPriority_String(t *testing.T) {
	tests := []struct {
		priority Priority
		expected string
	}{
		{PriorityLow, "Low"},
		{PriorityMedium, "Medium"},
		{PriorityHigh, "High"},
		{PriorityUrgent, "Urgent"},
		{Priority(9), "Priority(9)"},
	}

	for _, test := range tests {
		result := test.priority.String()
		if result != test.expected {
			t.Errorf("Priority(%d).String() = %s, expected %s", uint32(test.priority), result, test.expected)
		}
	}
}

func TestPriority_Known(t *testing.T) {
	tests := []struct {
		priority Priority
		expected bool
	}{
		{PriorityLow, true},
		{PriorityUrgent, true},
		{Priority(4), false},
	}

	for _, test := range tests {
		result := test.priority.Known()
		if result != test.expected {
			t.Errorf("Priority(%d).Known() = %v, expected %v", uint32(test.priority), result, test.expected)
		}
	}
}

func TestStatusFilter_Matches(t *testing.T) {
	tests := []struct {
		filter   StatusFilter
		status   Status
		expected bool
	}{
		{FilterAll, StatusPending, true},
		{FilterAll, StatusCompleted, true},
		{FilterAll, Status(99), true},
		{FilterPending, StatusPending, true},
		{FilterPending, StatusInProgress, false},
		{FilterInProgress, StatusInProgress, true},
		{FilterInProgress, StatusCompleted, false},
		{FilterCompleted, StatusCompleted, true},
		{FilterCompleted, StatusPending, false},
		// Unknown filter values match nothing, including known statuses.
		{StatusFilter(42), StatusPending, false},
		{StatusFilter(-1), StatusCompleted, false},
	}

	for _, test := range tests {
		result := test.filter.Matches(test.status)
		if result != test.expected {
			t.Errorf("StatusFilter(%d).Matches(%d) = %v, expected %v",
				int32(test.filter), uint32(test.status), result, test.expected)
		}
	}
}

func TestStatusFilter_String(t *testing.T) {
	tests := []struct {
		filter   StatusFilter
		expected string
	}{
		{FilterAll, "All"},
		{FilterPending, "Pending"},
		{FilterInProgress, "In Progress"},
		{FilterCompleted, "Completed"},
		{StatusFilter(5), "Unknown"},
	}

	for _, test := range tests {
		result := test.filter.String()
		if result != test.expected {
			t.Errorf("StatusFilter(%d).String() = %s, expected %s", int32(test.filter), result, test.expected)
		}
	}
}
