package task

import (
	"errors"
	"fmt"
	"testing"
)

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"spaces", "   ", false},
		{"tabs and newlines", "\t\n ", false},
		{"word", "Buy milk", true},
		{"padded word", "  Buy milk  ", true},
		{"single char", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSubmit(tt.input); got != tt.want {
				t.Errorf("CanSubmit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "No tasks available."},
		{1, "You have 1 pending tasks"},
		{3, "You have 3 pending tasks"},
		{42, "You have 42 pending tasks"},
	}

	for _, tt := range tests {
		if got := Summary(tt.count); got != tt.want {
			t.Errorf("Summary(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestListRemoveExactlyOne(t *testing.T) {
	l := NewList(
		Task{ID: "1", Description: "a"},
		Task{ID: "2", Description: "b"},
		Task{ID: "3", Description: "c"},
	)

	if !l.Remove("2") {
		t.Fatal("Remove(2) = false, want true")
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.Index("2") != -1 {
		t.Error("task 2 still present")
	}
	first, _ := l.At(0)
	second, _ := l.At(1)
	if first.ID != "1" || second.ID != "3" {
		t.Errorf("order = [%s %s], want [1 3]", first.ID, second.ID)
	}

	if l.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
}

func TestListTasksIsACopy(t *testing.T) {
	l := NewList(Task{ID: "1", Description: "a"})
	tasks := l.Tasks()
	tasks[0].Description = "changed"

	got, _ := l.At(0)
	if got.Description != "a" {
		t.Errorf("list mutated through Tasks(): %q", got.Description)
	}
}

func TestListClearAndReplace(t *testing.T) {
	l := NewList(Task{ID: "1"}, Task{ID: "2"}, Task{ID: "3"})
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	if Summary(l.Len()) != "No tasks available." {
		t.Errorf("Summary after Clear = %q", Summary(l.Len()))
	}

	l.Replace([]Task{{ID: "9", Description: "z"}})
	if l.Len() != 1 || l.Index("9") != 0 {
		t.Errorf("Replace did not install rows: %+v", l.Tasks())
	}

	if _, ok := l.At(5); ok {
		t.Error("At(5) ok = true on one-row list")
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"create rejected", Rejected(OpCreate, cause), KindCreateFailed},
		{"delete rejected", Rejected(OpDeleteOne, cause), KindDeleteOneFailed},
		{"delete all rejected", Rejected(OpDeleteAll, cause), KindDeleteAllFailed},
		{"load rejected", Rejected(OpLoad, cause), KindLoadFailed},
		{"network", Unavailable(OpCreate, cause), KindNetworkUnavailable},
		{"wrapped", fmt.Errorf("outer: %w", Rejected(OpDeleteAll, cause)), KindDeleteAllFailed},
		{"plain error", cause, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}

	if !errors.Is(Unavailable(OpLoad, cause), cause) {
		t.Error("Unavailable does not unwrap to its cause")
	}
}
