package common

import (
	"strings"
	"testing"
)

func TestThumb_NoScrollWhenSurfaceFits(t *testing.T) {
	if top, h := Thumb(10, 8, 0); top != 0 || h != 0 {
		t.Errorf("want no thumb, got top=%d h=%d", top, h)
	}
}

func TestThumb_ProportionalHeight(t *testing.T) {
	_, h := Thumb(10, 100, 0)
	if h != 1 {
		t.Errorf("want thumb height 1 for 10/100, got %d", h)
	}
	_, h = Thumb(10, 20, 0)
	if h != 5 {
		t.Errorf("want thumb height 5 for 10/20, got %d", h)
	}
}

func TestThumb_PositionTracksOffset(t *testing.T) {
	top, _ := Thumb(10, 20, 0)
	if top != 0 {
		t.Errorf("at offset 0 want top 0, got %d", top)
	}
	top, h := Thumb(10, 20, 10)
	if top+h != 10 {
		t.Errorf("at max offset thumb must touch the bottom, got top=%d h=%d", top, h)
	}
}

func TestThumb_HugeSurface(t *testing.T) {
	top, h := Thumb(40, 2_000_000, 2_000_000-40)
	if h != 1 || top != 39 {
		t.Errorf("want thumb at bottom with height 1, got top=%d h=%d", top, h)
	}
}

func TestScrollbar_RowCount(t *testing.T) {
	out := Scrollbar(7, 1000, 500)
	if n := strings.Count(out, "\n") + 1; n != 7 {
		t.Errorf("want 7 rows, got %d", n)
	}
	if Scrollbar(0, 1000, 0) != "" {
		t.Error("zero-height scrollbar should be empty")
	}
}
