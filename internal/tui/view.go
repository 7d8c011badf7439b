package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth   = 80
	activityHeight = 8
	// header + input box + list borders + info line + help bar
	chromeHeight = 1 + 3 + 2 + 1 + 1
)

// View renders the whole screen from the current model
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{
		m.renderHeader(),
		m.renderInput(width),
		m.renderList(width),
		m.renderInfo(),
		m.renderHelpBar(),
	}
	if m.activity.IsEnabled() {
		sections = append(sections, m.activity.Render(width, activityHeight))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	header := HeaderStyle.Render("todo")
	if m.serverURL != "" {
		header += " " + HeaderURLStyle.Render(m.serverURL)
	}
	return header
}

// renderInput draws the input box with the add affordance on its right
func (m Model) renderInput(width int) string {
	affordance := AddInactiveStyle.Render("[+ Add]")
	if m.addActive {
		affordance = AddActiveStyle.Render("[+ Add]")
	}

	style := InputStyle
	if m.focus == focusInput {
		style = InputFocusedStyle
	}
	return style.Width(width - 2).Render(m.input.View() + "  " + affordance)
}

// renderList draws the rows that fit, keeping the selection in view
func (m Model) renderList(width int) string {
	style := ListStyle
	if m.focus == focusList {
		style = ListFocusedStyle
	}
	style = style.Width(width - 2)

	if m.tasks.Len() == 0 {
		return style.Render(EmptyListStyle.Render("Nothing to do."))
	}

	start, end := m.visibleRange()
	rowWidth := width - 6
	var rows []string
	for i := start; i < end; i++ {
		t, _ := m.tasks.At(i)
		rows = append(rows, m.renderRow(i, t.ID, t.Description, rowWidth))
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) renderRow(i int, id, description string, width int) string {
	del := DeleteAffordanceStyle.Render("✗ " + id)
	marker := "  "
	rowStyle := RowStyle
	if m.focus == focusList && i == m.selected {
		marker = "▸ "
		rowStyle = RowSelectedStyle
	}

	textWidth := width - lipgloss.Width(del) - lipgloss.Width(marker) - 1
	text := truncate(description, textWidth)
	gap := width - lipgloss.Width(marker) - lipgloss.Width(text) - lipgloss.Width(del)
	if gap < 1 {
		gap = 1
	}
	return rowStyle.Render(marker+text) + strings.Repeat(" ", gap) + del
}

// visibleRange returns the [start, end) rows that fit the terminal height
func (m Model) visibleRange() (int, int) {
	n := m.tasks.Len()
	if m.height <= 0 {
		return 0, n
	}
	rows := m.height - chromeHeight
	if m.activity.IsEnabled() {
		rows -= activityHeight
	}
	if rows < 1 {
		rows = 1
	}
	if n <= rows {
		return 0, n
	}
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}
	return start, start + rows
}

func (m Model) renderInfo() string {
	prefix := ""
	if m.inFlight {
		prefix = m.spinner.View() + " "
	}
	if m.infoIsErr {
		return InfoErrorStyle.Render(prefix + m.info)
	}
	return InfoStyle.Render(prefix + m.info)
}

func (m Model) renderHelpBar() string {
	bar := HelpBarStyle.Render(m.help.View(m.keys))
	if m.flash != "" {
		bar += "  " + DimStyle.Render(m.flash)
	}
	return bar
}

// truncate shortens s to max display cells, marking the cut with an ellipsis
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
