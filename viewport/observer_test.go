package viewport

import (
	"os"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserver_EmitsOnlyOnChange(t *testing.T) {
	var o Observer
	var got []Viewport
	o.Subscribe(func(v Viewport) { got = append(got, v) })

	assert.True(t, o.Report(Viewport{Width: 80, Height: 24}))
	assert.False(t, o.Report(Viewport{Width: 80, Height: 24}))
	assert.True(t, o.Report(Viewport{Width: 80, Height: 30}))
	assert.True(t, o.Report(Viewport{Width: 100, Height: 30}))

	assert.Equal(t, []Viewport{
		{Width: 80, Height: 24},
		{Width: 80, Height: 30},
		{Width: 100, Height: 30},
	}, got)
}

func TestObserver_SubscribeReplaysLastSize(t *testing.T) {
	var o Observer
	o.Report(Viewport{Width: 40, Height: 10})

	var got Viewport
	o.Subscribe(func(v Viewport) { got = v })
	assert.Equal(t, Viewport{Width: 40, Height: 10}, got)
}

func TestObserver_ReleaseIgnoresLaterReports(t *testing.T) {
	var o Observer
	calls := 0
	o.Subscribe(func(Viewport) { calls++ })
	o.Report(Viewport{Width: 1, Height: 1})
	o.Release()

	assert.False(t, o.Report(Viewport{Width: 2, Height: 2}))
	assert.Equal(t, 1, calls)
	assert.True(t, o.Released())

	last, ok := o.Last()
	require.True(t, ok)
	assert.Equal(t, Viewport{Width: 1, Height: 1}, last)
}

func TestObserver_NegativeSizeIgnored(t *testing.T) {
	var o Observer
	assert.False(t, o.Report(Viewport{Width: -1, Height: 10}))
	_, ok := o.Last()
	assert.False(t, ok)
}

func TestObserver_CancelStopsDelivery(t *testing.T) {
	var o Observer
	calls := 0
	cancel := o.Subscribe(func(Viewport) { calls++ })
	cancel()
	o.Report(Viewport{Width: 1, Height: 1})
	assert.Equal(t, 0, calls)
}

func TestFixed(t *testing.T) {
	o := Fixed(0, 600)
	v, ok := o.Last()
	require.True(t, ok)
	assert.True(t, v.Measured())
	assert.Equal(t, 600.0, v.Height)
}

func TestFromWindowSize(t *testing.T) {
	v := FromWindowSize(tea.WindowSizeMsg{Width: 120, Height: 40}, Insets{Top: 3, Bottom: 1, Right: 1})
	assert.Equal(t, Viewport{Width: 119, Height: 36}, v)

	v = FromWindowSize(tea.WindowSizeMsg{Width: 2, Height: 2}, Insets{Top: 3, Bottom: 1})
	assert.Equal(t, Viewport{Width: 2, Height: 0}, v)
	assert.False(t, v.Measured())
}

func TestProbe_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "probe")
	require.NoError(t, err)
	defer f.Close()

	_, ok := Probe(int(f.Fd()), Insets{})
	assert.False(t, ok)
}
