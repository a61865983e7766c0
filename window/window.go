// Package window computes which rows of a fixed-row-height list must be
// instantiated for a given scroll offset and viewport height.
//
// Everything here is pure: the same Params always produce the same Window,
// and nothing is cached between calls. Hosts call Compute on their own event
// loop once per scroll or resize.
package window

import (
	"fmt"
	"math"
)

// DefaultOverscan is the number of extra rows rendered on each side of the
// visible range when the caller does not configure one.
const DefaultOverscan = 5

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// ConfigurationError reports a caller programming error in the list
// configuration. It is never produced by scroll input.
type ConfigurationError struct {
	Field string
	Value any
}

func (e *ConfigurationError) Error() string {
	switch e.Field {
	case "itemSize":
		return fmt.Sprintf("window: itemSize must be a positive finite number, got %v", e.Value)
	default:
		return fmt.Sprintf("window: %s must be non-negative, got %v", e.Field, e.Value)
	}
}

// Validate checks an item size and returns a *ConfigurationError when it
// cannot be used to lay out rows.
func Validate(itemSize float64) error {
	if !(itemSize > 0) || math.IsInf(itemSize, 0) {
		return &ConfigurationError{Field: "itemSize", Value: itemSize}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Window
// ---------------------------------------------------------------------------

// Window is an inclusive index range [Start, End]. The zero value is not
// empty (it holds row 0); use Empty() for the empty window.
type Window struct {
	Start int
	End   int
}

// emptyWindow has End < Start so Len() reports 0.
var emptyWindow = Window{Start: 0, End: -1}

// Empty returns the window that contains no rows.
func Empty() Window { return emptyWindow }

// IsEmpty reports whether the window holds no rows.
func (w Window) IsEmpty() bool { return w.End < w.Start }

// Len returns the number of rows in the window.
func (w Window) Len() int {
	if w.IsEmpty() {
		return 0
	}
	return w.End - w.Start + 1
}

// Contains reports whether index i falls inside the window.
func (w Window) Contains(i int) bool {
	return !w.IsEmpty() && i >= w.Start && i <= w.End
}

func (w Window) String() string {
	if w.IsEmpty() {
		return "{}"
	}
	return fmt.Sprintf("{%d,%d}", w.Start, w.End)
}

// ---------------------------------------------------------------------------
// Compute
// ---------------------------------------------------------------------------

// Params are the inputs of a single window computation.
type Params struct {
	Offset         float64 // scroll offset from the top of the surface
	ViewportHeight float64 // measured height of the visible area
	ItemSize       float64 // fixed height of every row
	Count          int     // number of rows in the dataset
	Overscan       int     // extra rows on each side of the visible range
}

// Compute maps Params to the contiguous range of rows to render.
//
// The window is empty when Count is 0 or the viewport has not been measured
// yet (height 0). Otherwise 0 <= Start <= End < Count, the window covers
// every row intersecting [Offset, Offset+ViewportHeight), and both bounds are
// non-decreasing in Offset.
func Compute(p Params) (Window, error) {
	if err := Validate(p.ItemSize); err != nil {
		return emptyWindow, err
	}
	if p.Count < 0 {
		return emptyWindow, &ConfigurationError{Field: "count", Value: p.Count}
	}
	if p.Overscan < 0 {
		return emptyWindow, &ConfigurationError{Field: "overscanCount", Value: p.Overscan}
	}

	offset := nonNegative(p.Offset)
	height := nonNegative(p.ViewportHeight)
	if p.Count == 0 || height == 0 {
		return emptyWindow, nil
	}

	last := p.Count - 1
	visible := VisibleCount(height, p.ItemSize)

	rawStart := int(math.Floor(offset / p.ItemSize))
	if rawStart > last {
		rawStart = last
	}

	start := max(0, rawStart-p.Overscan)
	end := rawStart + visible + p.Overscan - 1

	// A partially exposed bottom row still has to be rendered when there is
	// no overscan to absorb it.
	exposed := int(math.Ceil((offset+height)/p.ItemSize)) - 1
	if exposed > end {
		end = exposed
	}
	end = min(end, last)

	return Window{Start: start, End: end}, nil
}

// VisibleCount returns how many rows are needed to fill a viewport of the
// given height: ceil(height / itemSize).
func VisibleCount(height, itemSize float64) int {
	if itemSize <= 0 || height <= 0 {
		return 0
	}
	return int(math.Ceil(height / itemSize))
}

// SurfaceHeight returns the full scrollable height of a dataset. It does not
// depend on the window: the scroll surface is always sized as if every row
// were rendered.
func SurfaceHeight(count int, itemSize float64) float64 {
	if count <= 0 || itemSize <= 0 {
		return 0
	}
	return float64(count) * itemSize
}

// MaxOffset returns the largest valid scroll offset for a dataset shown in a
// viewport of the given height.
func MaxOffset(count int, itemSize, height float64) float64 {
	return nonNegative(SurfaceHeight(count, itemSize) - nonNegative(height))
}

// RowTop returns the offset of row i from the top of the surface.
func RowTop(i int, itemSize float64) float64 {
	return float64(i) * itemSize
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
