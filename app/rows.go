package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jcikl/jcikl-member-app-sub001/dataset"
	"github.com/jcikl/jcikl-member-app-sub001/style"
	"github.com/jcikl/jcikl-member-app-sub001/ui/vlist"
)

// column is one fixed-width cell of the member table.
type column struct {
	title string
	width int
	right bool
}

var columns = []column{
	{title: "#", width: 8, right: true},
	{title: "Name", width: 22},
	{title: "Email", width: 34},
	{title: "Tier", width: 6},
	{title: "Joined", width: 10},
	{title: "Dues", width: 4},
}

const cellGap = " "

// cell fits s into exactly width display columns. East Asian wide runes
// count as two.
func cell(s string, width int, right bool) string {
	s = runewidth.Truncate(s, width, "…")
	if right {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

// headerLine renders the column titles.
func headerLine(width int) string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = cell(c.title, c.width, c.right)
	}
	line := " " + strings.Join(cells, cellGap)
	return style.ColumnHeader.Render(runewidth.FillRight(runewidth.Truncate(line, width, ""), width))
}

// rowSource is shared by every copy of the page model so the list's render
// callback always reads the dataset currently installed.
type rowSource struct {
	data     dataset.Dataset
	itemSize int
}

// render draws one member row. The first line holds the table cells; with
// taller rows the second line shows the row key.
func (s *rowSource) render(d vlist.RowDescriptor) string {
	m := s.data.At(d.Index)

	tierStyle := style.TierBasic
	switch m.Tier {
	case dataset.TierGold:
		tierStyle = style.TierGold
	case dataset.TierSilver:
		tierStyle = style.TierSilver
	}
	dues := "no"
	if m.DuesPaid {
		dues = "yes"
	}

	cells := []string{
		cell(fmt.Sprintf("%d", d.Index+1), columns[0].width, true),
		cell(m.Name, columns[1].width, false),
		cell(m.Email, columns[2].width, false),
		tierStyle.Render(cell(string(m.Tier), columns[3].width, false)),
		cell(m.Joined.Format("2006-01-02"), columns[4].width, false),
		cell(dues, columns[5].width, false),
	}

	marker := " "
	if d.Selected {
		marker = style.PromptChar.Render("▌")
	}
	lines := []string{marker + strings.Join(cells, cellGap)}
	if s.itemSize > 1 {
		lines = append(lines, "  "+style.RowKey.Render(dataset.RowKey(m, d.Index)))
	}
	for len(lines) < s.itemSize {
		lines = append(lines, "")
	}

	rowStyle := style.Row
	switch {
	case d.Selected:
		rowStyle = style.RowSelected
	case d.Index%2 == 1:
		rowStyle = style.RowStripe
	}
	return rowStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
