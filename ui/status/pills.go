package status

import (
	"fmt"

	"github.com/jcikl/jcikl-member-app-sub001/style"
	"github.com/jcikl/jcikl-member-app-sub001/window"
)

func pill(label, value string) string {
	return style.StatusBar.Render(label+" ") + style.StatusValue.Render(value)
}

// CountPill renders the dataset size, e.g. "members 1000000".
func CountPill(count int) string {
	return pill("members", fmt.Sprintf("%d", count))
}

// RowPill renders the 1-based selected row, e.g. "row 42/1000".
func RowPill(cursor, count int) string {
	return pill("row", fmt.Sprintf("%d/%d", cursor+1, count))
}

// OffsetPill renders the scroll offset. Fractional offsets keep one decimal.
func OffsetPill(offset float64) string {
	if offset == float64(int64(offset)) {
		return pill("offset", fmt.Sprintf("%d", int64(offset)))
	}
	return pill("offset", fmt.Sprintf("%.1f", offset))
}

// WindowPill renders the inclusive render window, e.g. "window {95,116}".
func WindowPill(w window.Window) string {
	return pill("window", w.String())
}
