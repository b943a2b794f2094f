package model

import "testing"

func TestNewTask_FieldCapacities(t *testing.T) {
	task := NewTask()

	tests := []struct {
		name     string
		field    Text
		expected int
	}{
		{"ID", task.ID, TaskIDCap},
		{"Title", task.Title, TaskTitleCap},
		{"Description", task.Description, TaskDescriptionCap},
		{"Category", task.Category, TaskCategoryCap},
		{"ServiceName", task.ServiceName, TaskServiceNameCap},
		{"DueDate", task.DueDate, TaskDueDateCap},
		{"AssignedTo", task.AssignedTo, TaskAssignedToCap},
	}

	for _, test := range tests {
		if test.field.Cap() != test.expected {
			t.Errorf("NewTask().%s.Cap() = %d, expected %d", test.name, test.field.Cap(), test.expected)
		}
		if !test.field.IsEmpty() {
			t.Errorf("NewTask().%s not empty: %q", test.name, test.field.String())
		}
	}

	if task.Selected {
		t.Error("NewTask().Selected = true, expected false")
	}
	if task.Status != StatusPending {
		t.Errorf("NewTask().Status = %v, expected StatusPending", task.Status)
	}
}

func TestNewService_FieldCapacities(t *testing.T) {
	service := NewService()

	if service.ID.Cap() != ServiceIDCap {
		t.Errorf("NewService().ID.Cap() = %d, expected %d", service.ID.Cap(), ServiceIDCap)
	}
	if service.Name.Cap() != ServiceNameCap {
		t.Errorf("NewService().Name.Cap() = %d, expected %d", service.Name.Cap(), ServiceNameCap)
	}
}
