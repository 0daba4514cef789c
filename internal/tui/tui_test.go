package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/session"
)

func newTestModel() model {
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	return newModel(session.New(cfg), Options{FPS: 60})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestEnterNumbers(t *testing.T) {
	m := send(newTestModel(),
		runes("n"),
		runes("3,1,2"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	got := m.sess.Values()
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("values = %v, want [3 1 2]", got)
	}
	if m.inputs[inputNumbers].Value() != "" {
		t.Error("numbers field should be cleared")
	}
	if m.warning {
		t.Errorf("unexpected warning %q", m.status)
	}
}

func TestInvalidNumbersWarns(t *testing.T) {
	m := send(newTestModel(),
		runes("n"),
		runes("1,x"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if !m.warning || !strings.Contains(m.status, "comma-separated") {
		t.Errorf("status = %q, warning = %v", m.status, m.warning)
	}
}

func TestLaunchAndTick(t *testing.T) {
	m := send(newTestModel(),
		runes("n"),
		runes("2,1"),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEsc},
		runes("1"),
		runes("l"),
	)
	if !m.sess.Running() {
		t.Fatal("expected a running animation after launch")
	}
	if len(m.sess.Timings()) != 4 {
		t.Errorf("timings = %d, want 4", len(m.sess.Timings()))
	}

	for i := 0; i < 10; i++ {
		m = send(m, tickMsg(time.Now()))
	}
	if !m.sess.Completed() {
		t.Fatal("expected completion")
	}
	if got := m.sess.Values(); got[0] != 1 || got[1] != 2 {
		t.Errorf("values = %v, want sorted", got)
	}
	if len(m.inv.History()) == 0 {
		t.Error("inversions metric should observe steps")
	}
}

func TestLaunchWithoutSelectionWarns(t *testing.T) {
	m := send(newTestModel(), runes("l"))
	if !m.warning {
		t.Error("expected a warning without a selection")
	}
}

func TestTargetFocusOnlyForLinear(t *testing.T) {
	m := newTestModel()
	for _, f := range m.focusOrder() {
		if f == focusTarget {
			t.Fatal("target should not be focusable before linear search is picked")
		}
	}
	m = send(m, runes("5"))
	order := m.focusOrder()
	if order[len(order)-1] != focusTarget {
		t.Error("target should be focusable for linear search")
	}
}

func TestSpeedAndTheme(t *testing.T) {
	m := send(newTestModel(), runes("+"), runes("+"), runes("t"))
	if m.sess.Player().Speed() != 4 {
		t.Errorf("speed = %d, want 4", m.sess.Player().Speed())
	}
	if m.theme.Name != "cyberpunk" {
		t.Errorf("theme = %s, want cyberpunk", m.theme.Name)
	}
}

func TestViewRendersPanel(t *testing.T) {
	m := send(newTestModel(), tea.WindowSizeMsg{Width: 120, Height: 40})
	out := m.View()
	for _, want := range []string{"Step 1:", "Step 2:", "Step 3:", "Bubble Sort", "LAUNCH ROCKET"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLiveRendererThrottles(t *testing.T) {
	now := time.Unix(0, 0)
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Bubble Sort", 10).WithClock(func() time.Time { return now })

	r.OnStep([]int{2, 1}, 1)
	r.OnStep([]int{1, 2}, 2)
	if r.Frames() != 1 {
		t.Errorf("frames = %d, want 1", r.Frames())
	}

	now = now.Add(100 * time.Millisecond)
	r.OnStep([]int{1, 2}, 3)
	if r.Frames() != 2 {
		t.Errorf("frames = %d, want 2", r.Frames())
	}

	r.Flush([]int{1, 2}, 3)
	if r.Frames() != 3 {
		t.Errorf("frames = %d, want 3", r.Frames())
	}
	if !strings.Contains(buf.String(), "[1, 2]") {
		t.Error("output should contain the formatted array")
	}
}
