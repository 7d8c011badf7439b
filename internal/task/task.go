// Package task holds the task list domain: the Task record, the ordered List
// the UI renders from, and the Store contract the remote task store satisfies.
package task

import (
	"context"
	"fmt"
	"strings"
)

// Task is a record owned by the remote store.
// The client never assigns an ID; it only echoes the one the store returned.
type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Store is the remote task store as seen by the client.
type Store interface {
	// CreateTask sends description as-is and returns the stored task.
	CreateTask(ctx context.Context, description string) (Task, error)

	// DeleteTask removes the task with the given ID.
	DeleteTask(ctx context.Context, id string) error

	// DeleteAllTasks removes every task.
	DeleteAllTasks(ctx context.Context) error

	// ListTasks returns every task in store order.
	ListTasks(ctx context.Context) ([]Task, error)
}

// CanSubmit reports whether input is worth submitting: anything but
// whitespace.
func CanSubmit(input string) bool {
	return strings.TrimSpace(input) != ""
}

// Summary returns the status line for count visible tasks.
func Summary(count int) string {
	if count <= 0 {
		return "No tasks available."
	}
	return fmt.Sprintf("You have %d pending tasks", count)
}
