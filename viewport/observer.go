// Package viewport reports the rendered size of the box that hosts a list.
//
// Hosts feed measurements into an Observer; the list only ever sees the
// deduplicated Viewport values it emits. A host with a fixed, configured
// height uses Fixed instead of measuring anything.
package viewport

import (
	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

// Viewport is the measured size of the list box. Both fields are zero
// before the first measurement.
type Viewport struct {
	Width  float64
	Height float64
}

// Measured reports whether the viewport has a usable height.
func (v Viewport) Measured() bool { return v.Height > 0 }

// Observer deduplicates size reports and forwards changes to subscribers.
// The zero value is ready to use. Not safe for concurrent use.
type Observer struct {
	last     Viewport
	seen     bool
	released bool

	subs   map[int]func(Viewport)
	nextID int
}

// Fixed returns an observer that already carries the given size and never
// needs a measurement.
func Fixed(width, height float64) *Observer {
	return &Observer{
		last: Viewport{Width: max(0, width), Height: max(0, height)},
		seen: true,
	}
}

// Subscribe registers fn for size changes. If a size is already known, fn
// is called with it immediately.
func (o *Observer) Subscribe(fn func(Viewport)) (cancel func()) {
	if o.released {
		return func() {}
	}
	if o.subs == nil {
		o.subs = make(map[int]func(Viewport))
	}
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	if o.seen {
		fn(o.last)
	}
	return func() { delete(o.subs, id) }
}

// Report records a measurement. Subscribers are notified only when the
// width or height changed. Reports after Release are ignored, as are
// negative sizes from a box that is being torn down.
func (o *Observer) Report(v Viewport) bool {
	if o.released || v.Width < 0 || v.Height < 0 {
		return false
	}
	if o.seen && v == o.last {
		return false
	}
	o.last = v
	o.seen = true
	for _, fn := range o.subs {
		fn(v)
	}
	return true
}

// Last returns the most recent size and whether one has been reported.
func (o *Observer) Last() (Viewport, bool) { return o.last, o.seen }

// Release detaches every subscriber. The observer ignores all later reports.
func (o *Observer) Release() {
	o.released = true
	o.subs = nil
}

// Released reports whether Release has been called.
func (o *Observer) Released() bool { return o.released }

// ---------------------------------------------------------------------------
// Terminal adapters
// ---------------------------------------------------------------------------

// Insets is the chrome around the list box, in terminal cells.
type Insets struct {
	Top, Bottom, Left, Right int
}

// FromWindowSize converts a terminal resize into the list box size left
// after the host's chrome is taken out.
func FromWindowSize(msg tea.WindowSizeMsg, in Insets) Viewport {
	w := msg.Width - in.Left - in.Right
	h := msg.Height - in.Top - in.Bottom
	return Viewport{Width: float64(max(0, w)), Height: float64(max(0, h))}
}

// Probe measures the terminal attached to fd. ok is false when fd is not a
// terminal or the size cannot be read; callers skip the measurement.
func Probe(fd int, in Insets) (v Viewport, ok bool) {
	if !term.IsTerminal(fd) {
		return Viewport{}, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Viewport{}, false
	}
	return FromWindowSize(tea.WindowSizeMsg{Width: w, Height: h}, in), true
}
