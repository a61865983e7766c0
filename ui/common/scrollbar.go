// Package common holds small rendering helpers shared by the list UI.
package common

import (
	"strings"

	"github.com/jcikl/jcikl-member-app-sub001/style"
)

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
)

// Scrollbar renders a one-column vertical scrollbar for a viewport of
// viewportHeight rows looking at a surface of surfaceHeight rows scrolled to
// offset. The thumb size and position are proportional to the surface, so
// the bar reflects the full dataset even though only a window of rows is
// rendered. When the surface fits in the viewport the track is drawn without
// a thumb, keeping the column width stable.
func Scrollbar(viewportHeight, surfaceHeight, offset int) string {
	vh := viewportHeight
	if vh <= 0 {
		return ""
	}
	rows := make([]string, vh)
	thumbTop, thumbH := Thumb(vh, surfaceHeight, offset)
	for i := range rows {
		if i >= thumbTop && i < thumbTop+thumbH {
			rows[i] = style.ScrollbarThumb.Render(scrollThumbChar)
		} else {
			rows[i] = style.ScrollbarTrack.Render(scrollTrackChar)
		}
	}
	return strings.Join(rows, "\n")
}

// Thumb returns the top row and height of the scrollbar thumb. The height is
// 0 when no scrolling is possible.
func Thumb(viewportHeight, surfaceHeight, offset int) (top, height int) {
	vh, sh := viewportHeight, surfaceHeight
	if vh <= 0 || sh <= vh {
		return 0, 0
	}

	// Integer math on a million-row surface can overflow int32 products, so
	// the proportions are computed in float64.
	height = int(float64(vh) * float64(vh) / float64(sh))
	height = min(max(height, 1), vh)

	scrollable := sh - vh
	offset = min(max(offset, 0), scrollable)
	top = int(float64(offset) * float64(vh-height) / float64(scrollable))
	top = min(max(top, 0), vh-height)
	return top, height
}
