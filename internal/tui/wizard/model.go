package wizard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/logger"
	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/model"
	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/tui/components"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options carries display settings from the batch manifest.
type Options struct {
	MaxVisible int
	Width      int
}

// Model drives the estimate review wizard. It owns everything the
// progress tracker projects: the ordered batch, the index under review,
// the set of finished indices and the jump cursor.
type Model struct {
	batchName string
	estimates []model.Estimate
	items     []components.Item

	current   int
	completed components.IndexSet
	cursor    int

	width      int
	height     int
	maxVisible int
	listWidth  int

	finished bool
	log      *logger.Logger
}

// NewModel constructs the wizard for a parsed batch.
func NewModel(batchName string, estimates []model.Estimate, opts Options, log *logger.Logger) Model {
	items := make([]components.Item, len(estimates))
	for i, e := range estimates {
		items[i] = e
	}

	m := Model{
		batchName: batchName,
		estimates: estimates,
		items:     items,
		completed: components.NewIndexSet(),
		width:     defaultWidth,
		height:    defaultHeight,
		log:       log,
	}

	if opts.MaxVisible > 0 {
		m.maxVisible = opts.MaxVisible
	}
	if opts.Width > 0 {
		m.listWidth = opts.Width
	}

	return m
}

// Init implements tea.Model. The wizard has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// CurrentEstimate returns the estimate under review.
func (m Model) CurrentEstimate() (model.Estimate, bool) {
	if m.current < 0 || m.current >= len(m.estimates) {
		return model.Estimate{}, false
	}
	return m.estimates[m.current], true
}

// CompletedCount returns how many documents have been reviewed.
func (m Model) CompletedCount() int {
	return m.completed.Len()
}

// IsFinished reports whether every document has been reviewed.
func (m Model) IsFinished() bool {
	return m.finished
}

// MoveCursorUp moves the jump cursor up with wrapping.
func (m *Model) MoveCursorUp() {
	if len(m.items) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.items) - 1
	}
}

// MoveCursorDown moves the jump cursor down with wrapping.
func (m *Model) MoveCursorDown() {
	if len(m.items) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

// tracker builds the progress component from the model's state. A nil
// callback renders a view-only tracker; Update supplies a live one when
// it needs to route a selection.
func (m Model) tracker(onSelect func(int)) components.BatchProgress {
	b := components.NewBatchProgress(m.items, m.current, m.completed, onSelect)
	if m.maxVisible > 0 {
		b = b.WithMaxVisible(m.maxVisible)
	}
	return b.WithWidth(m.trackerWidth())
}

// trackerWidth prefers the manifest's fixed width and otherwise follows
// the terminal, leaving a margin for the surrounding layout.
func (m Model) trackerWidth() int {
	if m.listWidth > 0 {
		return m.listWidth
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// activate routes a row activation through the tracker's selection
// callback and applies the navigation the callback requests.
func (m Model) activate(i int) Model {
	selected := -1
	m.tracker(func(idx int) { selected = idx }).Select(i)
	if selected < 0 {
		return m
	}

	m.current = selected
	m.cursor = selected
	if m.log != nil {
		m.log.WithFields(map[string]any{"index": selected}).Debug("jumped to document")
	}
	return m
}

// completeCurrent marks the document under review as finished and
// advances to the next unreviewed one, wrapping past the end.
func (m Model) completeCurrent() Model {
	if len(m.items) == 0 {
		return m
	}

	m.completed.Add(m.current)

	if next, ok := m.nextPending(); ok {
		m.current = next
		m.cursor = next
		return m
	}

	m.finished = true
	if m.log != nil {
		m.log.WithFields(map[string]any{"documents": len(m.items)}).Info("batch review finished")
	}
	return m
}

// nextPending finds the first unreviewed index after current, scanning
// forward and wrapping once.
func (m Model) nextPending() (int, bool) {
	total := len(m.items)
	for offset := 1; offset <= total; offset++ {
		i := (m.current + offset) % total
		if !m.completed.Has(i) {
			return i, true
		}
	}
	return 0, false
}
