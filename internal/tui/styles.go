package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorBgHighlight = lipgloss.Color("#2C313C")

	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorFgComment = lipgloss.Color("#5C6370")

	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")

	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			PaddingLeft(1)

	HeaderURLStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)

	// Input row
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputFocusedStyle = InputStyle.
				BorderForeground(ColorBlue)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	// Add affordance, active only when the input holds text
	AddActiveStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	AddInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorFgMuted)

	// Task list
	ListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ListFocusedStyle = ListStyle.
				BorderForeground(ColorMagenta)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	RowSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorFgPrimary).
				Background(ColorBgHighlight).
				Bold(true)

	DeleteAffordanceStyle = lipgloss.NewStyle().
				Foreground(ColorRed)

	EmptyListStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment).
			Italic(true)

	// Info line
	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			PaddingLeft(1)

	InfoErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			PaddingLeft(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HelpBarStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)
