// Package anim provides the gradient spinner shown while a list is loading.
//
// Frames are pre-rendered once per color pair; each spinner carries its own
// id so tick messages from one list never advance another.
package anim

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	fps           = 12
	frameDuration = time.Second / fps
)

// frames is the Braille-dot spinner sequence.
var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var idCounter atomic.Int64

// TickMsg advances the spinner with the matching ID.
type TickMsg struct {
	ID int64
}

// Model is a Braille spinner with an optional label.
type Model struct {
	id       int64
	label    string
	spinning bool
	frame    int
	rendered []string
}

// New creates a stopped spinner colored along the a→b gradient.
func New(label string, a, b color.Color) Model {
	if a == nil {
		a = lipgloss.Color("#7C3AED")
	}
	if b == nil {
		b = lipgloss.Color("#06B6D4")
	}
	return Model{
		id:       idCounter.Add(1),
		label:    label,
		rendered: buildFrames(a, b),
	}
}

// ID returns the identifier carried by this spinner's TickMsg.
func (m Model) ID() int64 { return m.id }

// Start marks the spinner as running and returns the command scheduling the
// first frame.
func (m *Model) Start() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.tick()
}

// Stop halts the animation. Pending ticks are dropped in Update.
func (m *Model) Stop() { m.spinning = false }

// IsSpinning reports whether the animation is running.
func (m Model) IsSpinning() bool { return m.spinning }

// SetLabel changes the text shown next to the glyph.
func (m *Model) SetLabel(s string) { m.label = s }

// Update advances one frame on a TickMsg addressed to this spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || !m.spinning {
		return m, nil
	}
	m.frame = (m.frame + 1) % len(frames)
	return m, m.tick()
}

// View renders the current frame followed by the label.
func (m Model) View() string {
	glyph := m.rendered[m.frame%len(m.rendered)]
	if m.label == "" {
		return glyph
	}
	return glyph + " " + m.label
}

func (m Model) tick() tea.Cmd {
	id := m.id
	return tea.Tick(frameDuration, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}

// buildFrames pre-renders one colored glyph per frame. A sine wave makes the
// color bounce between a and b instead of wrapping.
func buildFrames(a, b color.Color) []string {
	n := len(frames)
	out := make([]string, n)
	for i, glyph := range frames {
		t := (math.Sin(math.Pi*float64(i)/float64(n-1)) + 1) / 2
		out[i] = lipgloss.NewStyle().Foreground(lerpColor(a, b, t)).Render(glyph)
	}
	return out
}

func lerpColor(a, b color.Color, t float64) color.Color {
	ra, ga, ba, _ := a.RGBA()
	rb, gb, bb, _ := b.RGBA()
	return color.RGBA{
		R: uint8(float64(ra>>8)*(1-t) + float64(rb>>8)*t),
		G: uint8(float64(ga>>8)*(1-t) + float64(gb>>8)*t),
		B: uint8(float64(ba>>8)*(1-t) + float64(bb>>8)*t),
		A: 255,
	}
}
