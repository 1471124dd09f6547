package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders aggregate batch completion as a horizontal bar with a
// "c/t complete" label.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for the given total.
func NewProgress(total int, width int) Progress {
	bar := progress.New(progress.WithDefaultGradient())
	if width > 0 {
		bar.Width = width
	}
	return Progress{bar: bar, total: total}
}

// View renders the bar for the provided completion count. The label shows
// the raw count even when it exceeds the total; the drawn bar saturates at
// full width.
func (p Progress) View(completed int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = float64(completed) / float64(p.total)
	}
	if ratio > 1 {
		ratio = 1
	}
	label := barLabelStyle.Render(fmt.Sprintf("%d/%d complete", completed, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, p.bar.ViewAs(ratio), " ", label)
}
