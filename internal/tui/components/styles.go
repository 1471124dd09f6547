package components

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray

	headerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	counterStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	rowDefaultStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	rowCurrentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(primaryColor)

	rowCompletedStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(mutedColor)

	badgeDoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	badgeCurrentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	badgeIdleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	currentTagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	overflowStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	barLabelStyle = lipgloss.NewStyle().
			Bold(true)
)

// rowStyles is the fixed style table keyed by row state. Current wins
// over completed, completed wins over default.
var rowStyles = map[RowState]lipgloss.Style{
	RowDefault:   rowDefaultStyle,
	RowCurrent:   rowCurrentStyle,
	RowCompleted: rowCompletedStyle,
}
