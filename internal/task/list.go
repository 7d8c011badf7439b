package task

// List is the ordered set of tasks the client believes exist.
// Rows are rendered from it and the summary is counted from it.
type List struct {
	tasks []Task
}

// NewList creates a list holding tasks in order.
func NewList(tasks ...Task) *List {
	l := &List{}
	l.Replace(tasks)
	return l
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.tasks)
}

// At returns the task at index i.
func (l *List) At(i int) (Task, bool) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Index returns the position of the first task with id, or -1.
func (l *List) Index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Tasks returns a copy of the rows in order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Append adds t as the last row.
func (l *List) Append(t Task) {
	l.tasks = append(l.tasks, t)
}

// Remove deletes exactly one row, the first whose ID matches.
// It reports whether a row was removed.
func (l *List) Remove(id string) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return true
}

// Clear removes every row.
func (l *List) Clear() {
	l.tasks = nil
}

// Replace swaps the rows for tasks.
func (l *List) Replace(tasks []Task) {
	l.tasks = make([]Task, len(tasks))
	copy(l.tasks, tasks)
}
