// Package toast provides short-lived notices for the member browser, such
// as a finished load or a failed search.
package toast

import (
	"fmt"
	"image/color"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jcikl/jcikl-member-app-sub001/style"
)

// Level classifies toast severity.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

const (
	maxToasts = 3
	// TTL is how long a toast stays visible.
	TTL = 4 * time.Second
)

// ExpireMsg asks the model to prune expired toasts.
type ExpireMsg struct{}

type toast struct {
	message string
	level   Level
	expiry  time.Time
}

// Model manages a queue of auto-dismissing toasts.
type Model struct {
	queue []toast
	now   func() time.Time
}

// New creates an empty Model.
func New() Model {
	return Model{now: time.Now}
}

// Add enqueues a toast and returns the command that expires it. Oldest
// toasts are dropped when the queue exceeds maxToasts.
func (m *Model) Add(message string, level Level) tea.Cmd {
	m.queue = append(m.queue, toast{
		message: message,
		level:   level,
		expiry:  m.clock().Add(TTL),
	})
	if len(m.queue) > maxToasts {
		m.queue = m.queue[len(m.queue)-maxToasts:]
	}
	return tea.Tick(TTL, func(time.Time) tea.Msg { return ExpireMsg{} })
}

// Prune drops expired toasts.
func (m *Model) Prune() {
	now := m.clock()
	alive := m.queue[:0]
	for _, t := range m.queue {
		if now.Before(t.expiry) {
			alive = append(alive, t)
		}
	}
	m.queue = alive
}

// Len returns the number of visible toasts.
func (m Model) Len() int { return len(m.queue) }

// View renders the newest toast right-aligned in width cells, or "" when
// the queue is empty.
func (m Model) View(width int) string {
	if len(m.queue) == 0 {
		return ""
	}
	t := m.queue[len(m.queue)-1]
	icon, col := iconColor(t.level)
	text := fmt.Sprintf(" %s %s ", icon, t.message)
	rendered := lipgloss.NewStyle().Foreground(col).MaxWidth(max(0, width)).Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, rendered)
}

func (m Model) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

func iconColor(level Level) (string, color.Color) {
	switch level {
	case Warning:
		return "⚠", style.Warning
	case Error:
		return "✘", style.Error
	default:
		return "✓", style.Success
	}
}
