package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clive/todo-tui/internal/task"
)

// storeOp is one queued store request
type storeOp struct {
	op          task.Op
	id          string // OpDeleteOne
	description string // OpCreate, sent exactly as typed
}

// Messages
type taskCreatedMsg struct {
	task task.Task
	err  error
}

type taskDeletedMsg struct {
	id  string
	err error
}

type tasksClearedMsg struct {
	err error
}

type tasksLoadedMsg struct {
	tasks []task.Task
	err   error
}

type clipboardMsg struct {
	text string
	err  error
}

// runStoreOp performs op against store and wraps the outcome in its message.
// It runs off the event loop; Update applies the result.
func runStoreOp(ctx context.Context, store task.Store, op storeOp) tea.Msg {
	switch op.op {
	case task.OpCreate:
		created, err := store.CreateTask(ctx, op.description)
		return taskCreatedMsg{task: created, err: err}
	case task.OpDeleteOne:
		return taskDeletedMsg{id: op.id, err: store.DeleteTask(ctx, op.id)}
	case task.OpDeleteAll:
		return tasksClearedMsg{err: store.DeleteAllTasks(ctx)}
	default:
		tasks, err := store.ListTasks(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

// storeOpCmd wraps runStoreOp as a command
func (m Model) storeOpCmd(op storeOp) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		return runStoreOp(ctx, store, op)
	}
}

// copyCmd writes text to the system clipboard
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: write(text)}
	}
}
