package model

import (
	"strings"
	"testing"
)

func TestText_SetTruncates(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		input     string
		expected  string
		truncated bool
	}{
		{"within capacity", 8, "abc", "abc", false},
		{"exactly capacity-1", 8, "abcdefg", "abcdefg", false},
		{"one over", 8, "abcdefgh", "abcdefg", true},
		{"far over", 4, strings.Repeat("x", 100), "xxx", true},
		{"empty input", 8, "", "", false},
		{"capacity one holds nothing", 1, "a", "", true},
		{"zero capacity holds nothing", 0, "a", "", true},
	}

	for _, test := range tests {
		text := NewText(test.capacity)
		truncated := text.Set(test.input)
		if text.String() != test.expected {
			t.Errorf("%s: Set(%q) contents = %q, expected %q", test.name, test.input, text.String(), test.expected)
		}
		if truncated != test.truncated {
			t.Errorf("%s: Set(%q) truncated = %v, expected %v", test.name, test.input, truncated, test.truncated)
		}
		if text.Len() != len(test.expected) {
			t.Errorf("%s: Len() = %d, expected %d", test.name, text.Len(), len(test.expected))
		}
	}
}

func TestText_SetBytes(t *testing.T) {
	text := NewText(5)
	truncated := text.SetBytes([]byte("hello world"))
	if !truncated {
		t.Error("SetBytes over capacity reported truncated = false")
	}
	if text.String() != "hell" {
		t.Errorf("SetBytes contents = %q, expected %q", text.String(), "hell")
	}
}

func TestText_ZeroValue(t *testing.T) {
	var text Text
	if text.Cap() != 0 {
		t.Errorf("zero value Cap() = %d, expected 0", text.Cap())
	}
	text.Set("anything")
	if !text.IsEmpty() {
		t.Errorf("zero value holds %q after Set, expected empty", text.String())
	}
}

func TestText_Clear(t *testing.T) {
	text := NewText(16)
	text.Set("contents")
	text.Clear()
	if !text.IsEmpty() {
		t.Errorf("Clear left %q", text.String())
	}
	if text.Cap() != 16 {
		t.Errorf("Clear changed Cap() to %d", text.Cap())
	}
}

func TestText_Equal(t *testing.T) {
	a := NewText(16)
	b := NewText(64)
	a.Set("payments")
	b.Set("payments")
	if !a.Equal(b) {
		t.Error("texts with equal contents and different capacities compare unequal")
	}
	b.Set("Payments")
	if a.Equal(b) {
		t.Error("byte-exact comparison matched different case")
	}
}
