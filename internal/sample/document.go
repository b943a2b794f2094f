package sample

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/task-tracker/internal/model"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a data file
type Document struct {
	User     string    `yaml:"user,omitempty"`
	Services []Service `yaml:"services,omitempty"`
	Tasks    []Task    `yaml:"tasks,omitempty"`
}

// Service is one service entry in a data file
type Service struct {
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name"`
}

// Task is one task entry in a data file
type Task struct {
	ID          string   `yaml:"id,omitempty"`
	LegacyID    uint32   `yaml:"legacy_id,omitempty"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Status      Status   `yaml:"status,omitempty"`
	Priority    Priority `yaml:"priority,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Service     string   `yaml:"service,omitempty"`
	DueDate     string   `yaml:"due_date,omitempty"`
	AssignedTo  string   `yaml:"assigned_to,omitempty"`
}

// Status is a model.Status that YAML can spell by name or bare number
type Status model.Status

// Priority is a model.Priority that YAML can spell by name or bare number
type Priority model.Priority

// UnmarshalYAML accepts "pending", "in_progress", "completed" in any
// case or spacing, or a raw numeric value.
func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	v, err := parseStatus(node.Value)
	if err != nil {
		return err
	}
	*s = Status(v)
	return nil
}

// UnmarshalYAML accepts "low" through "urgent" in any case or spacing,
// or a raw numeric value.
func (p *Priority) UnmarshalYAML(node *yaml.Node) error {
	v, err := parsePriority(node.Value)
	if err != nil {
		return err
	}
	*p = Priority(v)
	return nil
}

// parseStatus maps a status spelling to its value. Numbers outside the
// known range pass through verbatim, the same way the record decoder
// treats them.
func parseStatus(raw string) (model.Status, error) {
	switch normalizeName(raw) {
	case "", "pending":
		return model.StatusPending, nil
	case "inprogress":
		return model.StatusInProgress, nil
	case "completed", "done":
		return model.StatusCompleted, nil
	}

	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unrecognized status %q", raw)
	}
	return model.Status(n), nil
}

// parsePriority maps a priority spelling to its value, with the same
// numeric pass-through as parseStatus.
func parsePriority(raw string) (model.Priority, error) {
	switch normalizeName(raw) {
	case "", "low":
		return model.PriorityLow, nil
	case "medium":
		return model.PriorityMedium, nil
	case "high":
		return model.PriorityHigh, nil
	case "urgent":
		return model.PriorityUrgent, nil
	}

	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unrecognized priority %q", raw)
	}
	return model.Priority(n), nil
}

// normalizeName lowercases a name and strips the separators people vary
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Parse decodes one YAML document and fills in missing ids
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	fillIDs(&doc)
	return &doc, nil
}

// Append adds a task to the document, assigning a fresh id and the next
// free legacy id when unset.
func (d *Document) Append(task Task) {
	if task.ID == "" {
		task.ID = newID()
	}
	if task.LegacyID == 0 {
		task.LegacyID = d.nextLegacyID()
	}
	d.Tasks = append(d.Tasks, task)
}

func (d *Document) nextLegacyID() uint32 {
	var highest uint32
	for i := range d.Tasks {
		if d.Tasks[i].LegacyID > highest {
			highest = d.Tasks[i].LegacyID
		}
	}
	return highest + 1
}

// fillIDs assigns fresh ids to tasks and services that have none, and
// sequential legacy ids to tasks missing those.
func fillIDs(doc *Document) {
	for i := range doc.Tasks {
		if doc.Tasks[i].ID == "" {
			doc.Tasks[i].ID = newID()
		}
		if doc.Tasks[i].LegacyID == 0 {
			doc.Tasks[i].LegacyID = uint32(i + 1)
		}
	}
	for i := range doc.Services {
		if doc.Services[i].ID == "" {
			doc.Services[i].ID = newID()
		}
	}
}

// newID generates a unique id using UUID v7 for better uniqueness and time ordering
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("id-%d", time.Now().UnixNano())
	}
	return id.String()
}

// Default returns the built-in document a first run starts with
func Default() *Document {
	doc := &Document{
		User: "admin",
		Services: []Service{
			{ID: "6b3c18d4-2a1d-4f2b-9d4c-0a0c3f0f2f10", Name: "Billing Portal"},
			{ID: "a8c2f1f0-8b8f-4a62-9d3a-8c1d7b4c2a01", Name: "Customer Support"},
			{ID: "0c1d2e3f-4a5b-6c7d-8e9f-0123456789ab", Name: "Internal Tools"},
			{ID: "21222324-2526-2728-292a-2b2c2d2e2f30", Name: "Payments"},
			{ID: "61626364-6566-6768-696a-6b6c6d6e6f70", Name: "Web App"},
		},
		Tasks: []Task{
			{
				Title:       "Reconcile invoice exports",
				Description: "The nightly export drops line items when a batch crosses midnight UTC.",
				Status:      Status(model.StatusInProgress),
				Priority:    Priority(model.PriorityHigh),
				Category:    "bug",
				Service:     "Billing Portal",
				DueDate:     "2026-08-25",
				AssignedTo:  "admin",
			},
			{
				Title:       "Chargeback webhook retries",
				Description: "Retries fire back to back with no delay, which trips the provider's rate limit.",
				Status:      Status(model.StatusPending),
				Priority:    Priority(model.PriorityUrgent),
				Category:    "bug",
				Service:     "Payments",
				DueDate:     "2026-08-22",
			},
			{
				Title:    "Rotate support inbox credentials",
				Status:   Status(model.StatusPending),
				Priority: Priority(model.PriorityMedium),
				Category: "chore",
				Service:  "Customer Support",
				DueDate:  "2026-09-01",
			},
			{
				Title:       "Index the audit log table",
				Description: "Queries over the last 90 days take minutes once the table passes a few million rows.",
				Status:      Status(model.StatusPending),
				Priority:    Priority(model.PriorityLow),
				Service:     "Internal Tools",
			},
			{
				Title:      "Upgrade web bundle pipeline",
				Status:     Status(model.StatusInProgress),
				Priority:   Priority(model.PriorityMedium),
				Service:    "Web App",
				DueDate:    "2026-09-04",
				AssignedTo: "admin",
			},
			{
				Title:       "Migrate session store",
				Description: "Sessions now live in the shared cache. The old store stays read-only for a week.",
				Status:      Status(model.StatusCompleted),
				Priority:    Priority(model.PriorityHigh),
				Service:     "Web App",
			},
			{
				Title:    "Quarterly access review",
				Status:   Status(model.StatusCompleted),
				Priority: Priority(model.PriorityMedium),
				Category: "chore",
				Service:  "Internal Tools",
				DueDate:  "2026-08-15",
			},
		},
	}
	fillIDs(doc)
	return doc
}
