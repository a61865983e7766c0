// Package status provides the bottom status bar of the member browser. It
// shows the dataset size, the selected row and the live render window.
package status

import (
	"strings"

	"github.com/jcikl/jcikl-member-app-sub001/scroll"
	"github.com/jcikl/jcikl-member-app-sub001/style"
)

// Model is the status bar state. Drive it via setter methods; it has no
// Update loop.
type Model struct {
	state   scroll.State
	cursor  int
	loading bool
	err     error
	width   int
}

// New returns a zero-value Model.
func New() Model {
	return Model{}
}

// SetList records the list state shown in the bar.
func (m *Model) SetList(st scroll.State, cursor int) {
	m.state = st
	m.cursor = cursor
}

// SetLoading marks a load in flight.
func (m *Model) SetLoading(on bool) {
	m.loading = on
}

// SetError shows err instead of the stats. nil clears it.
func (m *Model) SetError(err error) {
	m.err = err
}

// SetWidth caps the rendered line. 0 means unbounded.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// View renders the status line.
//
// Error: the error text. Loading: a short notice. Otherwise the pills
// "members 1000 · row 1 · offset 0 · window {0,16}".
func (m Model) View() string {
	var line string
	switch {
	case m.err != nil:
		line = style.ErrorText.Render("load failed: " + m.err.Error())
	case m.loading:
		line = style.StatusBar.Render("loading…")
	default:
		line = m.statsLine()
	}
	if m.width > 0 {
		line = style.StatusBar.MaxWidth(m.width).Render(line)
	}
	return line
}

func (m Model) statsLine() string {
	parts := []string{CountPill(m.state.Count)}
	if m.state.Count > 0 {
		parts = append(parts, RowPill(m.cursor, m.state.Count))
	}
	parts = append(parts,
		OffsetPill(m.state.Offset),
		WindowPill(m.state.Window),
	)
	return strings.Join(parts, style.Faint.Render(" · "))
}
