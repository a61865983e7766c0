// Package vlist renders a fixed-row-height list by instantiating only the
// rows inside the current scroll window.
//
// Layout is the toolkit-independent part: given a scroll.State it decides
// which rows exist and where they sit on the scroll surface. Model wraps it
// as a bubbletea component for terminal hosts.
package vlist

import (
	"github.com/jcikl/jcikl-member-app-sub001/scroll"
	"github.com/jcikl/jcikl-member-app-sub001/window"
)

// RowDescriptor identifies a row handed to a RenderRowFunc.
type RowDescriptor struct {
	Index    int
	Top      float64 // Index * itemSize, from the top of the surface
	Selected bool
}

// RenderRowFunc produces the content of one row. It is called only for rows
// inside the window and must not touch the list's scroll state.
type RenderRowFunc func(row RowDescriptor) string

// FrameKind tells the host what a Frame contains.
type FrameKind int

const (
	// FrameRows holds windowed rows.
	FrameRows FrameKind = iota
	// FrameEmpty shows the empty-dataset placeholder.
	FrameEmpty
	// FrameLoading shows the loading placeholder; no rows are laid out.
	FrameLoading
	// FrameUnmeasured reserves the surface but renders nothing until the
	// viewport has a height.
	FrameUnmeasured
)

func (k FrameKind) String() string {
	switch k {
	case FrameEmpty:
		return "empty"
	case FrameLoading:
		return "loading"
	case FrameUnmeasured:
		return "unmeasured"
	default:
		return "rows"
	}
}

// PlacedRow is a rendered row with its position on the surface.
type PlacedRow struct {
	RowDescriptor
	Height  float64
	Content string
}

// Frame is the output of one layout cycle.
type Frame struct {
	Kind           FrameKind
	SurfaceHeight  float64 // count * itemSize for row frames, 0 otherwise
	Offset         float64
	ViewportHeight float64
	Window         window.Window
	Rows           []PlacedRow
	Placeholder    string
}

// Placeholders supplies the content shown instead of rows.
type Placeholders struct {
	Empty   func() string
	Loading func() string
}

// Layout builds a Frame for state. While loading, windowing is skipped
// entirely and only the loading placeholder is produced. An empty dataset
// yields the empty placeholder. Otherwise render is called exactly once per
// index in state.Window, in ascending order, and each result is placed at
// Index*ItemSize with height ItemSize.
func Layout(state scroll.State, loading bool, ph Placeholders, selected int, render RenderRowFunc) Frame {
	f := Frame{
		Offset:         state.Offset,
		ViewportHeight: state.ViewportHeight,
		Window:         window.Empty(),
	}

	switch {
	case loading:
		f.Kind = FrameLoading
		f.Placeholder = call(ph.Loading)
		return f
	case state.Count == 0:
		f.Kind = FrameEmpty
		f.Placeholder = call(ph.Empty)
		return f
	}

	f.SurfaceHeight = state.SurfaceHeight()
	if state.ViewportHeight <= 0 || state.Window.IsEmpty() {
		f.Kind = FrameUnmeasured
		return f
	}

	f.Kind = FrameRows
	f.Window = state.Window
	f.Rows = make([]PlacedRow, 0, state.Window.Len())
	for i := state.Window.Start; i <= state.Window.End; i++ {
		d := RowDescriptor{
			Index:    i,
			Top:      window.RowTop(i, state.ItemSize),
			Selected: i == selected,
		}
		f.Rows = append(f.Rows, PlacedRow{
			RowDescriptor: d,
			Height:        state.ItemSize,
			Content:       render(d),
		})
	}
	return f
}

func call(fn func() string) string {
	if fn == nil {
		return ""
	}
	return fn()
}
