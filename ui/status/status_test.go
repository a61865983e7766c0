package status

import (
	"errors"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/jcikl/jcikl-member-app-sub001/scroll"
	"github.com/jcikl/jcikl-member-app-sub001/window"
)

func plain(s string) string { return ansi.Strip(s) }

func TestView_Stats(t *testing.T) {
	m := New()
	m.SetList(scroll.State{
		Offset:   5000,
		ItemSize: 50,
		Count:    1000,
		Window:   window.Window{Start: 95, End: 116},
	}, 100)

	got := plain(m.View())
	for _, want := range []string{"members 1000", "row 101/1000", "offset 5000", "window {95,116}"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}
}

func TestView_EmptyHidesRow(t *testing.T) {
	m := New()
	m.SetList(scroll.State{ItemSize: 1, Window: window.Empty()}, 0)
	got := plain(m.View())
	if strings.Contains(got, "row") {
		t.Errorf("empty list should not show a row pill: %q", got)
	}
	if !strings.Contains(got, "window {}") {
		t.Errorf("want empty window, got %q", got)
	}
}

func TestView_ErrorWinsOverLoading(t *testing.T) {
	m := New()
	m.SetLoading(true)
	if got := plain(m.View()); got != "loading…" {
		t.Errorf("want loading notice, got %q", got)
	}
	m.SetError(errors.New("boom"))
	if got := plain(m.View()); got != "load failed: boom" {
		t.Errorf("want error, got %q", got)
	}
	m.SetError(nil)
	m.SetLoading(false)
	if got := plain(m.View()); !strings.Contains(got, "members") {
		t.Errorf("want stats after clearing, got %q", got)
	}
}

func TestView_Width(t *testing.T) {
	m := New()
	m.SetList(scroll.State{Count: 123456789, ItemSize: 1, Offset: 1234567, Window: window.Window{Start: 1234562, End: 1234600}}, 1234567)
	m.SetWidth(20)
	if w := lipgloss.Width(m.View()); w > 20 {
		t.Errorf("status wider than 20: %d", w)
	}
}

func TestOffsetPill_Fractional(t *testing.T) {
	if got := plain(OffsetPill(37.5)); got != "offset 37.5" {
		t.Errorf("got %q", got)
	}
	if got := plain(OffsetPill(40)); got != "offset 40" {
		t.Errorf("got %q", got)
	}
}
