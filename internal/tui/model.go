package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/clive/todo-tui/internal/task"
)

// focusArea is the pane receiving keys
type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Options configures NewModel
type Options struct {
	ServerURL   string             // Shown in the header
	LoadOnStart bool               // Fetch existing tasks before anything else
	Debug       bool               // Show the activity panel
	Logger      *log.Logger        // Defaults to a discarding logger
	Clipboard   func(string) error // Defaults to the system clipboard
}

// Model is the root Bubble Tea model.
//
// Every store request is serialized: at most one is in flight and the rest
// wait in queue, so rows and the summary only ever change from the result of
// a single confirmed request.
type Model struct {
	// Terminal dimensions
	width  int
	height int

	ctx       context.Context
	store     task.Store
	logger    *log.Logger
	serverURL string

	// Input and add affordance
	input     textinput.Model
	addActive bool

	// Rows, in store-confirmed order
	tasks    task.List
	selected int
	focus    focusArea

	// Info line: the summary, or the last failure
	info      string
	infoIsErr bool

	// Transient note shown beside the help bar
	flash string

	// Store request serialization
	inFlight bool
	current  storeOp
	queue    []storeOp

	spinner   spinner.Model
	help      help.Model
	keys      KeyMap
	activity  ActivityPanel
	clipboard func(string) error
}

// NewModel creates the root model. If opts.LoadOnStart is set, the initial
// list fetch is already in flight when Init runs.
func NewModel(ctx context.Context, store task.Store, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Add your new todo"
	ti.Prompt = "❯ "
	ti.PromptStyle = InputPromptStyle
	ti.CharLimit = 0
	ti.Width = 60
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(SpinnerStyle),
	)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:       ctx,
		store:     store,
		logger:    logger.WithPrefix("tui"),
		serverURL: opts.ServerURL,
		input:     ti,
		focus:     focusInput,
		info:      task.Summary(0),
		spinner:   sp,
		help:      help.New(),
		keys:      DefaultKeyMap(),
		activity:  NewActivityPanel(opts.Debug),
		clipboard: write,
	}

	if opts.LoadOnStart {
		m.inFlight = true
		m.current = storeOp{op: task.OpLoad}
	}

	return m
}

// Init starts the cursor blink and, when configured, the initial load
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.inFlight {
		cmds = append(cmds, m.storeOpCmd(m.current), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles one event. It is the only place rows change.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if w := msg.Width - 20; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case spinner.TickMsg:
		if !m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case taskCreatedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.fail(task.OpCreate, msg.err)
			cmd := m.startNext()
			return m, cmd
		}
		m.tasks.Append(msg.task)
		m.input.Reset()
		m.addActive = false
		m.refreshSummary()
		m.logger.Info("task created", "id", msg.task.ID)
		m.activity.AddEvent(string(task.OpCreate), "ok id="+msg.task.ID)
		cmd := m.startNext()
		return m, cmd

	case taskDeletedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.fail(task.OpDeleteOne, msg.err)
			cmd := m.startNext()
			return m, cmd
		}
		m.tasks.Remove(msg.id)
		m.clampSelection()
		m.refreshSummary()
		m.logger.Info("task deleted", "id", msg.id)
		m.activity.AddEvent(string(task.OpDeleteOne), "ok id="+msg.id)
		cmd := m.startNext()
		return m, cmd

	case tasksClearedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.fail(task.OpDeleteAll, msg.err)
			cmd := m.startNext()
			return m, cmd
		}
		m.tasks.Clear()
		m.selected = 0
		m.refreshSummary()
		m.logger.Info("all tasks deleted")
		m.activity.AddEvent(string(task.OpDeleteAll), "ok")
		cmd := m.startNext()
		return m, cmd

	case tasksLoadedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.fail(task.OpLoad, msg.err)
			cmd := m.startNext()
			return m, cmd
		}
		m.tasks.Replace(msg.tasks)
		m.clampSelection()
		m.refreshSummary()
		m.logger.Info("tasks loaded", "count", len(msg.tasks))
		m.activity.AddEvent(string(task.OpLoad), fmt.Sprintf("ok count=%d", len(msg.tasks)))
		cmd := m.startNext()
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			m.flash = "Unable to copy task."
			m.logger.Warn("clipboard write failed", "error", msg.err)
		} else {
			m.flash = "Copied to clipboard."
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch {
	case key.Matches(msg, m.keys.Interrupt):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ClearAll):
		cmd := m.enqueue(storeOp{op: task.OpDeleteAll})
		return m, cmd
	case key.Matches(msg, m.keys.Focus):
		cmd := m.toggleFocus()
		return m, cmd
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		if !m.addActive {
			return m, nil
		}
		cmd := m.Submit()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.addActive = task.CanSubmit(m.input.Value())
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.tasks.Len()-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Delete):
		t, ok := m.tasks.At(m.selected)
		if !ok {
			return m, nil
		}
		cmd := m.enqueue(storeOp{op: task.OpDeleteOne, id: t.ID})
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.enqueue(storeOp{op: task.OpLoad})
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		t, ok := m.tasks.At(m.selected)
		if !ok {
			return m, nil
		}
		return m, copyCmd(m.clipboard, t.Description)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// Submit sends the raw input as a new task, whatever the affordance state.
func (m *Model) Submit() tea.Cmd {
	return m.enqueue(storeOp{op: task.OpCreate, description: m.input.Value()})
}

// enqueue adds op to the queue and starts it if nothing is in flight
func (m *Model) enqueue(op storeOp) tea.Cmd {
	m.queue = append(m.queue, op)
	if m.inFlight {
		m.logger.Debug("request queued", "op", op.op, "queued", len(m.queue))
		return nil
	}
	return m.startNext()
}

// startNext dispatches the head of the queue, if any
func (m *Model) startNext() tea.Cmd {
	if m.inFlight || len(m.queue) == 0 {
		return nil
	}
	op := m.queue[0]
	m.queue = m.queue[1:]
	m.inFlight = true
	m.current = op
	return tea.Batch(m.storeOpCmd(op), m.spinner.Tick)
}

// fail shows the fixed message for op. Rows and input are left untouched.
func (m *Model) fail(op task.Op, err error) {
	m.info = errorMessage(op)
	m.infoIsErr = true
	m.logger.Warn("store request failed", "op", op, "kind", task.KindOf(err), "error", err)
	m.activity.AddEvent(string(op), "failed "+task.KindOf(err).String())
}

// refreshSummary recomputes the info line from the row count
func (m *Model) refreshSummary() {
	m.info = task.Summary(m.tasks.Len())
	m.infoIsErr = false
}

func (m *Model) clampSelection() {
	if m.selected >= m.tasks.Len() {
		m.selected = m.tasks.Len() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return nil
	}
	m.focus = focusInput
	return m.input.Focus()
}

// errorMessage maps a failed operation to the text shown on the info line.
// Transport failures and store rejections read the same.
func errorMessage(op task.Op) string {
	switch op {
	case task.OpCreate:
		return "Unable to add task."
	case task.OpDeleteOne:
		return "Unable to delete task."
	case task.OpDeleteAll:
		return "Unable to delete tasks."
	case task.OpLoad:
		return "Unable to load tasks."
	default:
		return "Something went wrong."
	}
}
