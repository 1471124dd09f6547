package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the wizard: title, progress tracker, detail panel for the
// document under review and a key hint footer.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("Estimate Wizard • %s", m.batchName)))

	if m.finished {
		sections = append(sections,
			finishedStyle.Render(fmt.Sprintf("✓ All %d files reviewed", len(m.items))),
			m.renderFooter(),
		)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if tracker := m.tracker(nil).View(); tracker != "" {
		sections = append(sections, tracker)
	}

	sections = append(sections, m.renderDetail())

	if hint := m.renderCursorHint(); hint != "" {
		sections = append(sections, hint)
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDetail shows the estimate under review.
func (m Model) renderDetail() string {
	current, ok := m.CurrentEstimate()
	if !ok {
		return detailBoxStyle.Width(m.trackerWidth()).Render("No document selected")
	}

	lines := []string{
		detailLabelStyle.Render("File") + " " + current.SourceFile,
		detailLabelStyle.Render("ID") + " " + current.ID,
	}
	if strings.TrimSpace(current.Notes) != "" {
		lines = append(lines, detailLabelStyle.Render("Notes")+" "+current.Notes)
	}

	return detailBoxStyle.Width(m.trackerWidth()).Render(strings.Join(lines, "\n"))
}

// renderCursorHint names the jump target when the cursor sits on a row
// other than the one under review.
func (m Model) renderCursorHint() string {
	if m.cursor == m.current || m.cursor < 0 || m.cursor >= len(m.estimates) {
		return ""
	}
	return cursorHintStyle.Render(
		fmt.Sprintf("↪ jump target %d: %s (enter to open)", m.cursor+1, m.estimates[m.cursor].SourceFile),
	)
}

func (m Model) renderFooter() string {
	hints := []string{
		"↑/↓: move",
		"enter: open",
		"1-9: jump",
		"c: mark reviewed",
		"q: quit",
	}
	if m.finished {
		hints = []string{"q: quit"}
	}

	style := footerStyle
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(strings.Join(hints, "  •  "))
}
