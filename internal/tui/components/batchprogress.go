package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowState is the visual state of a single batch row. Current takes
// precedence over completed, completed over default.
type RowState int

const (
	// RowDefault is an unprocessed, non-active row.
	RowDefault RowState = iota
	// RowCurrent is the row being worked on, completed or not.
	RowCurrent
	// RowCompleted is a finished row that is not current.
	RowCompleted
)

const (
	defaultWidth      = 44
	defaultMaxVisible = 8

	docGlyph = "🗎"
)

// BatchProgress renders the progress tracker for a batch of documents
// being processed in order: a positional header, a windowed list of
// selectable rows and an aggregate completion bar.
//
// The component owns no state. It is a projection of (items, current,
// completed) rebuilt on every render; the parent owns the inputs and
// receives selections through the callback.
type BatchProgress struct {
	items      []Item
	current    int
	completed  IndexSet
	onSelect   func(int)
	width      int
	maxVisible int
}

// NewBatchProgress constructs the tracker. current must index items when
// the batch is non-empty; completed may contain out-of-range indices,
// which match no row but still count toward the bar.
func NewBatchProgress(items []Item, current int, completed IndexSet, onSelect func(int)) BatchProgress {
	return BatchProgress{
		items:      items,
		current:    current,
		completed:  completed,
		onSelect:   onSelect,
		width:      defaultWidth,
		maxVisible: defaultMaxVisible,
	}
}

// WithWidth returns a copy of the component rendered at the given width.
func (b BatchProgress) WithWidth(width int) BatchProgress {
	if width > 0 {
		b.width = width
	}
	return b
}

// WithMaxVisible returns a copy capped to the given number of visible rows.
func (b BatchProgress) WithMaxVisible(n int) BatchProgress {
	if n > 0 {
		b.maxVisible = n
	}
	return b
}

// RowState returns the visual state for the row at index i.
func (b BatchProgress) RowState(i int) RowState {
	switch {
	case i == b.current:
		return RowCurrent
	case b.completed.Has(i):
		return RowCompleted
	default:
		return RowDefault
	}
}

// Select activates the row at index i, invoking the selection callback
// exactly once. Selecting the already-current row is allowed; indices
// without a row are ignored.
func (b BatchProgress) Select(i int) {
	if b.onSelect == nil {
		return
	}
	if i < 0 || i >= len(b.items) {
		return
	}
	b.onSelect(i)
}

// View renders the tracker. Batches of one document (or none) render
// nothing: progress against yourself is not progress.
func (b BatchProgress) View() string {
	if len(b.items) <= 1 {
		return ""
	}

	sections := []string{
		b.renderHeader(),
		b.renderRows(),
		NewProgress(len(b.items), b.width-lipgloss.Width(b.barLabel())-1).View(b.completed.Len()),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b BatchProgress) renderHeader() string {
	title := headerTitleStyle.Render(fmt.Sprintf("Processing %d Files", len(b.items)))
	counter := counterStyle.Render(fmt.Sprintf("%d of %d", b.current+1, len(b.items)))

	pad := b.width - lipgloss.Width(title) - lipgloss.Width(counter)
	if pad < 1 {
		pad = 1
	}
	return title + strings.Repeat(" ", pad) + counter
}

func (b BatchProgress) renderRows() string {
	start, end := b.window()

	var rows []string
	if start > 0 {
		rows = append(rows, overflowStyle.Render("▲ more above"))
	}
	for i := start; i < end; i++ {
		rows = append(rows, b.renderRow(i))
	}
	if end < len(b.items) {
		rows = append(rows, overflowStyle.Render("▼ more below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// window picks the visible slice of rows, keeping the current row in view.
func (b BatchProgress) window() (int, int) {
	total := len(b.items)
	if total <= b.maxVisible {
		return 0, total
	}

	start := b.current - b.maxVisible/2
	if start < 0 {
		start = 0
	}
	if start > total-b.maxVisible {
		start = total - b.maxVisible
	}
	return start, start + b.maxVisible
}

func (b BatchProgress) renderRow(i int) string {
	state := b.RowState(i)

	badge := b.renderBadge(i, state)
	name := truncateName(b.items[i].DisplayName(), b.nameWidth(state))

	line := fmt.Sprintf("%s %s %s", badge, docGlyph, name)
	if state == RowCurrent {
		line = line + " " + currentTagStyle.Render("Current")
	}

	return rowStyles[state].Render(line)
}

// renderBadge draws the per-row status indicator: a success check once the
// row is completed, the 1-based position otherwise.
func (b BatchProgress) renderBadge(i int, state RowState) string {
	if b.completed.Has(i) {
		return badgeDoneStyle.Render(" ✓ ")
	}

	number := fmt.Sprintf("(%d)", i+1)
	if state == RowCurrent {
		return badgeCurrentStyle.Render(number)
	}
	return badgeIdleStyle.Render(number)
}

// nameWidth is the budget left for the file name on one row: width minus
// badge, glyph, separators and, on the current row, the trailing tag.
// The badge budget follows the widest numeral in the batch.
func (b BatchProgress) nameWidth(state RowState) int {
	w := b.width - len(fmt.Sprintf("(%d)", len(b.items))) - 2 - 2
	if state == RowCurrent {
		w -= len(" Current")
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (b BatchProgress) barLabel() string {
	return fmt.Sprintf("%d/%d complete", b.completed.Len(), len(b.items))
}

// truncateName fits a display name on a single line, rune-safe, with an
// ellipsis when it overflows.
func truncateName(name string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
