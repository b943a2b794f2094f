package render

import "testing"

func TestTextTableHandles(t *testing.T) {
	var table TextTable

	h1 := table.Add("Tasks")
	h2 := table.Add("+ New Task")
	if h1 != 1 || h2 != 2 {
		t.Errorf("handles = %d, %d, expected 1, 2", h1, h2)
	}

	if s, ok := table.Lookup(h1); !ok || s != "Tasks" {
		t.Errorf("Lookup(%d) = %q, %v, expected %q, true", h1, s, ok, "Tasks")
	}
	if s, ok := table.Lookup(h2); !ok || s != "+ New Task" {
		t.Errorf("Lookup(%d) = %q, %v, expected %q, true", h2, s, ok, "+ New Task")
	}
}

func TestTextTableReservedAndUnknownHandles(t *testing.T) {
	var table TextTable
	table.Add("only entry")

	if _, ok := table.Lookup(0); ok {
		t.Errorf("Lookup(0) resolved, expected miss")
	}
	if _, ok := table.Lookup(2); ok {
		t.Errorf("Lookup(2) resolved past end, expected miss")
	}
}

func TestTextTableReset(t *testing.T) {
	var table TextTable
	table.Add("stale")
	table.Reset()

	if table.Len() != 0 {
		t.Errorf("Len after Reset = %d, expected 0", table.Len())
	}
	if _, ok := table.Lookup(1); ok {
		t.Errorf("stale handle resolved after Reset")
	}

	h := table.Add("fresh")
	if h != 1 {
		t.Errorf("first handle after Reset = %d, expected 1", h)
	}
	if s, _ := table.Lookup(h); s != "fresh" {
		t.Errorf("Lookup after Reset = %q, expected %q", s, "fresh")
	}
}
