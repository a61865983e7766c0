package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jcikl/jcikl-member-app-sub001/viewport"
)

const (
	titleHeight  = 1
	searchHeight = 1
	columnHeight = 1
	statusHeight = 1
	hintHeight   = 1
)

// ListInsets is the chrome around the member list: title, search box and
// column header above it, status bar and key hints below.
var ListInsets = viewport.Insets{
	Top:    titleHeight + searchHeight + columnHeight,
	Bottom: statusHeight + hintHeight,
}

// Layout holds the computed dimensions for the current frame.
type Layout struct {
	TermWidth  int
	TermHeight int
	List       viewport.Viewport
}

// ComputeLayout splits the terminal between chrome and list. fixedHeight > 0
// pins the list height regardless of the terminal.
func ComputeLayout(size tea.WindowSizeMsg, fixedHeight int) Layout {
	l := Layout{
		TermWidth:  size.Width,
		TermHeight: size.Height,
		List:       viewport.FromWindowSize(size, ListInsets),
	}
	if fixedHeight > 0 {
		l.List.Height = float64(fixedHeight)
	}
	return l
}
