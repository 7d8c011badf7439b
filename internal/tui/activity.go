package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ActivityPanel shows the most recent store calls when debug mode is on
type ActivityPanel struct {
	enabled bool
	lines   []string
	buffer  int
	now     func() time.Time
}

// NewActivityPanel creates a new activity panel
func NewActivityPanel(enabled bool) ActivityPanel {
	return ActivityPanel{
		enabled: enabled,
		buffer:  50,
		now:     time.Now,
	}
}

// IsEnabled returns whether the panel is shown
func (a *ActivityPanel) IsEnabled() bool {
	return a.enabled
}

// AddEvent records one store call outcome
func (a *ActivityPanel) AddEvent(op string, details string) {
	if !a.enabled {
		return
	}
	line := a.now().Format("15:04:05.000") + " [" + op + "]"
	if details != "" {
		line += " " + details
	}
	a.lines = append(a.lines, line)
	if len(a.lines) > a.buffer {
		a.lines = a.lines[len(a.lines)-a.buffer:]
	}
}

// Lines returns the recorded lines, oldest first
func (a *ActivityPanel) Lines() []string {
	return a.lines
}

// Render renders the newest lines that fit in height
func (a *ActivityPanel) Render(width, height int) string {
	if !a.enabled {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Render("ACTIVITY")

	contentHeight := height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}

	startIdx := 0
	if len(a.lines) > contentHeight {
		startIdx = len(a.lines) - contentHeight
	}
	maxLen := width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	var lines []string
	for _, line := range a.lines[startIdx:] {
		lines = append(lines, truncate(line, maxLen))
	}

	return lipgloss.NewStyle().
		Width(width - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(lines, "\n"))
}
