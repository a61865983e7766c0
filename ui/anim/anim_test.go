package anim

import (
	"strings"
	"testing"
)

func TestNew_IsStopped(t *testing.T) {
	m := New("Loading", nil, nil)
	if m.IsSpinning() {
		t.Error("new spinner should be stopped")
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Errorf("view should contain label, got %q", m.View())
	}
}

func TestStart_ReturnsTickOnce(t *testing.T) {
	m := New("", nil, nil)
	if cmd := m.Start(); cmd == nil {
		t.Fatal("first Start should schedule a tick")
	}
	if cmd := m.Start(); cmd != nil {
		t.Error("second Start should not schedule another tick")
	}
}

func TestUpdate_AdvancesOnlyOwnTicks(t *testing.T) {
	a := New("", nil, nil)
	b := New("", nil, nil)
	a.Start()

	a2, cmd := a.Update(TickMsg{ID: b.ID()})
	if a2.frame != 0 || cmd != nil {
		t.Error("foreign tick must not advance spinner")
	}
	a3, cmd := a.Update(TickMsg{ID: a.ID()})
	if a3.frame != 1 || cmd == nil {
		t.Errorf("own tick should advance to frame 1 and reschedule, got frame %d", a3.frame)
	}
}

func TestUpdate_StoppedIgnoresTicks(t *testing.T) {
	m := New("", nil, nil)
	m.Start()
	m.Stop()
	m2, cmd := m.Update(TickMsg{ID: m.ID()})
	if m2.frame != 0 || cmd != nil {
		t.Error("stopped spinner must ignore ticks")
	}
}
