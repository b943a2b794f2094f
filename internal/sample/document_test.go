package sample

import (
	"strings"
	"testing"

	"github.com/taskdeck/task-tracker/internal/model"
)

func TestParseStatusNames(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Status
	}{
		{"pending", model.StatusPending},
		{"Pending", model.StatusPending},
		{"", model.StatusPending},
		{"in_progress", model.StatusInProgress},
		{"in-progress", model.StatusInProgress},
		{"In Progress", model.StatusInProgress},
		{"INPROGRESS", model.StatusInProgress},
		{"completed", model.StatusCompleted},
		{"done", model.StatusCompleted},
	}

	for _, tt := range tests {
		got, err := parseStatus(tt.raw)
		if err != nil {
			t.Errorf("parseStatus(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseStatus(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseStatusNumbers(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Status
	}{
		{"0", model.StatusPending},
		{"1", model.StatusInProgress},
		{"2", model.StatusCompleted},
		{"7", model.Status(7)},
	}

	for _, tt := range tests {
		got, err := parseStatus(tt.raw)
		if err != nil {
			t.Errorf("parseStatus(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseStatus(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseStatusRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"later", "someday", "-1", "1.5"} {
		if _, err := parseStatus(raw); err == nil {
			t.Errorf("Expected error for status %q, got nil", raw)
		}
	}
}

func TestParsePriorityNames(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Priority
	}{
		{"low", model.PriorityLow},
		{"", model.PriorityLow},
		{"Medium", model.PriorityMedium},
		{"HIGH", model.PriorityHigh},
		{"urgent", model.PriorityUrgent},
		{"3", model.PriorityUrgent},
		{"9", model.Priority(9)},
	}

	for _, tt := range tests {
		got, err := parsePriority(tt.raw)
		if err != nil {
			t.Errorf("parsePriority(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePriority(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParsePriorityRejectsGarbage(t *testing.T) {
	if _, err := parsePriority("whenever"); err == nil {
		t.Error("Expected error for priority 'whenever', got nil")
	}
}

func TestParseDocument(t *testing.T) {
	data := []byte(`user: alice
services:
  - name: auth
  - id: 0c1d2e3f-4a5b-6c7d-8e9f-0123456789ab
    name: billing
tasks:
  - title: First
    status: In Progress
    priority: 2
    service: auth
  - id: 11111111-2222-4333-8444-555555555555
    legacy_id: 9
    title: Second
    status: 1
    priority: urgent
    due_date: "2026-09-01"
`)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if doc.User != "alice" {
		t.Errorf("Expected user 'alice', got %q", doc.User)
	}

	if len(doc.Services) != 2 {
		t.Fatalf("Expected 2 services, got %d", len(doc.Services))
	}
	if doc.Services[0].ID == "" {
		t.Error("Expected missing service id to be filled")
	}
	if doc.Services[1].ID != "0c1d2e3f-4a5b-6c7d-8e9f-0123456789ab" {
		t.Errorf("Expected explicit service id to be kept, got %q", doc.Services[1].ID)
	}

	if len(doc.Tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(doc.Tasks))
	}
	first := doc.Tasks[0]
	if first.ID == "" {
		t.Error("Expected missing task id to be filled")
	}
	if first.LegacyID != 1 {
		t.Errorf("Expected legacy id 1, got %d", first.LegacyID)
	}
	if model.Status(first.Status) != model.StatusInProgress {
		t.Errorf("Expected status In Progress, got %d", first.Status)
	}
	if model.Priority(first.Priority) != model.PriorityHigh {
		t.Errorf("Expected priority High, got %d", first.Priority)
	}

	second := doc.Tasks[1]
	if second.ID != "11111111-2222-4333-8444-555555555555" {
		t.Errorf("Expected explicit task id to be kept, got %q", second.ID)
	}
	if second.LegacyID != 9 {
		t.Errorf("Expected legacy id 9, got %d", second.LegacyID)
	}
	if model.Status(second.Status) != model.StatusInProgress {
		t.Errorf("Expected numeric status 1, got %d", second.Status)
	}
	if model.Priority(second.Priority) != model.PriorityUrgent {
		t.Errorf("Expected priority Urgent, got %d", second.Priority)
	}
	if second.DueDate != "2026-09-01" {
		t.Errorf("Expected due date '2026-09-01', got %q", second.DueDate)
	}
}

func TestParseRejectsUnknownStatus(t *testing.T) {
	_, err := Parse([]byte("tasks:\n  - title: X\n    status: someday\n"))
	if err == nil {
		t.Fatal("Expected error for unknown status, got nil")
	}
	if !strings.Contains(err.Error(), "unrecognized status") {
		t.Errorf("Expected unrecognized status error, got %v", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("tasks: [")); err == nil {
		t.Error("Expected error for malformed YAML, got nil")
	}
}

func TestDefaultDocument(t *testing.T) {
	doc := Default()

	if doc.User != "admin" {
		t.Errorf("Expected user 'admin', got %q", doc.User)
	}
	if len(doc.Services) == 0 {
		t.Fatal("Expected built-in services")
	}
	if len(doc.Tasks) == 0 {
		t.Fatal("Expected built-in tasks")
	}

	names := make(map[string]bool)
	for _, svc := range doc.Services {
		if svc.ID == "" {
			t.Errorf("Service %q has no id", svc.Name)
		}
		names[svc.Name] = true
	}

	seenIDs := make(map[string]bool)
	seenLegacy := make(map[uint32]bool)
	for _, task := range doc.Tasks {
		if task.ID == "" {
			t.Errorf("Task %q has no id", task.Title)
		}
		if seenIDs[task.ID] {
			t.Errorf("Duplicate task id %q", task.ID)
		}
		seenIDs[task.ID] = true

		if task.LegacyID == 0 || seenLegacy[task.LegacyID] {
			t.Errorf("Task %q has bad legacy id %d", task.Title, task.LegacyID)
		}
		seenLegacy[task.LegacyID] = true

		if !names[task.Service] {
			t.Errorf("Task %q references unknown service %q", task.Title, task.Service)
		}
		if len(task.Title) >= model.TaskTitleCap {
			t.Errorf("Task title %q exceeds the wire capacity", task.Title)
		}
		if len(task.Description) >= model.TaskDescriptionCap {
			t.Errorf("Task %q description exceeds the wire capacity", task.Title)
		}
	}
}

func TestAppend(t *testing.T) {
	doc := &Document{}

	doc.Append(Task{Title: "One"})
	doc.Append(Task{Title: "Two", LegacyID: 10})
	doc.Append(Task{Title: "Three"})

	if len(doc.Tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(doc.Tasks))
	}
	if doc.Tasks[0].ID == "" || doc.Tasks[0].ID == doc.Tasks[2].ID {
		t.Error("Expected fresh distinct ids for appended tasks")
	}
	if doc.Tasks[0].LegacyID != 1 {
		t.Errorf("Expected legacy id 1, got %d", doc.Tasks[0].LegacyID)
	}
	if doc.Tasks[1].LegacyID != 10 {
		t.Errorf("Expected legacy id 10 to be kept, got %d", doc.Tasks[1].LegacyID)
	}
	if doc.Tasks[2].LegacyID != 11 {
		t.Errorf("Expected next legacy id 11, got %d", doc.Tasks[2].LegacyID)
	}
}

func TestNewID(t *testing.T) {
	id1 := newID()
	id2 := newID()

	if id1 == id2 {
		t.Error("Expected different ids")
	}
	if len(id1) != 36 {
		t.Errorf("Expected UUID length 36, got %d for id: %s", len(id1), id1)
	}
}
