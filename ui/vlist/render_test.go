package vlist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcikl/jcikl-member-app-sub001/scroll"
	"github.com/jcikl/jcikl-member-app-sub001/window"
)

type renderSpy struct {
	calls []int
}

func (s *renderSpy) render(d RowDescriptor) string {
	s.calls = append(s.calls, d.Index)
	return fmt.Sprintf("row %d", d.Index)
}

func stateFor(t *testing.T, count int, offset float64) scroll.State {
	t.Helper()
	c, err := scroll.New(scroll.Config{ItemSize: 50, Overscan: 5, ViewportHeight: 600})
	require.NoError(t, err)
	c.SetDataset("ds", count)
	c.OnScroll(offset)
	return c.State()
}

var testPlaceholders = Placeholders{
	Empty:   func() string { return "nothing here" },
	Loading: func() string { return "loading…" },
}

func TestLayout_RendersOnlyWindowedRows(t *testing.T) {
	spy := &renderSpy{}
	f := Layout(stateFor(t, 1000, 5000), false, testPlaceholders, -1, spy.render)

	require.Equal(t, FrameRows, f.Kind)
	assert.Equal(t, window.Window{Start: 95, End: 116}, f.Window)
	assert.Len(t, f.Rows, 22)
	assert.Len(t, spy.calls, 22)
	assert.Equal(t, 95, spy.calls[0])
	assert.Equal(t, 116, spy.calls[len(spy.calls)-1])
}

func TestLayout_RowsPlacedAtTrueOffset(t *testing.T) {
	f := Layout(stateFor(t, 1000, 5000), false, testPlaceholders, -1, (&renderSpy{}).render)
	for _, r := range f.Rows {
		assert.Equal(t, float64(r.Index)*50, r.Top)
		assert.Equal(t, 50.0, r.Height)
		assert.Equal(t, fmt.Sprintf("row %d", r.Index), r.Content)
	}
}

func TestLayout_SurfaceHeightIndependentOfWindow(t *testing.T) {
	f := Layout(stateFor(t, 1_000_000, 0), false, testPlaceholders, -1, (&renderSpy{}).render)
	assert.Equal(t, 50_000_000.0, f.SurfaceHeight)
	assert.Len(t, f.Rows, 17)
}

func TestLayout_BoundedRenderTree(t *testing.T) {
	sizes := map[int]int{}
	for _, count := range []int{10, 1_000_000} {
		c, err := scroll.New(scroll.Config{ItemSize: 1, Overscan: 1, ViewportHeight: 3})
		require.NoError(t, err)
		c.SetDataset(count, count)
		c.OnScroll(5)
		spy := &renderSpy{}
		f := Layout(c.State(), false, testPlaceholders, -1, spy.render)
		sizes[count] = len(spy.calls)
		assert.LessOrEqual(t, len(f.Rows), window.VisibleCount(3, 1)+2*1)
	}
	assert.Equal(t, sizes[10], sizes[1_000_000])
}

func TestLayout_EmptyDatasetShowsPlaceholder(t *testing.T) {
	spy := &renderSpy{}
	f := Layout(stateFor(t, 0, 0), false, testPlaceholders, -1, spy.render)
	assert.Equal(t, FrameEmpty, f.Kind)
	assert.Equal(t, "nothing here", f.Placeholder)
	assert.Empty(t, f.Rows)
	assert.Empty(t, spy.calls)
	assert.True(t, f.Window.IsEmpty())
}

func TestLayout_LoadingSuppressesWindowing(t *testing.T) {
	spy := &renderSpy{}
	f := Layout(stateFor(t, 1000, 5000), true, testPlaceholders, -1, spy.render)
	assert.Equal(t, FrameLoading, f.Kind)
	assert.Equal(t, "loading…", f.Placeholder)
	assert.Empty(t, spy.calls, "no row may be rendered while loading")
	assert.True(t, f.Window.IsEmpty())
}

func TestLayout_UnmeasuredReservesSurface(t *testing.T) {
	c, err := scroll.New(scroll.Config{ItemSize: 50, Overscan: 5})
	require.NoError(t, err)
	c.SetDataset("ds", 1000)

	spy := &renderSpy{}
	f := Layout(c.State(), false, testPlaceholders, -1, spy.render)
	assert.Equal(t, FrameUnmeasured, f.Kind)
	assert.Equal(t, 50_000.0, f.SurfaceHeight)
	assert.Empty(t, spy.calls)
}

func TestLayout_MarksSelectedRow(t *testing.T) {
	var selected []int
	Layout(stateFor(t, 1000, 0), false, testPlaceholders, 3, func(d RowDescriptor) string {
		if d.Selected {
			selected = append(selected, d.Index)
		}
		return ""
	})
	assert.Equal(t, []int{3}, selected)
}

func TestLayout_NilPlaceholders(t *testing.T) {
	f := Layout(stateFor(t, 0, 0), false, Placeholders{}, -1, (&renderSpy{}).render)
	assert.Equal(t, "", f.Placeholder)
}

func TestFrameKindString(t *testing.T) {
	assert.Equal(t, "rows", FrameRows.String())
	assert.Equal(t, "loading", FrameLoading.String())
	assert.Equal(t, "empty", FrameEmpty.String())
	assert.Equal(t, "unmeasured", FrameUnmeasured.String())
}
