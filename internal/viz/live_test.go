package viz

import (
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/wavefront/internal/config"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/plot"
	"github.com/san-kum/wavefront/internal/session"
)

func newModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Wavefront.Count = 12
	gen, err := field.NewGenerator(rand.NewSource(3), cfg.Params)
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess, err := session.New(cfg, gen, log)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(sess, Options{FPS: 30, GIFPath: filepath.Join(t.TempDir(), "out.gif"), Log: log})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  string
		want session.Command
	}{
		{"p", session.SetStyle(plot.Point)},
		{"l", session.SetStyle(plot.Line)},
		{"r", session.SetStyle(plot.Radial)},
		{"up", session.SpeedUp()},
		{"down", session.SlowDown()},
		{"ctrl+r", session.Do(session.Reset)},
		{"backspace", session.Do(session.Reset)},
		{" ", session.Do(session.TogglePause)},
		{"tab", session.Do(session.ToggleProjection)},
		{"left", session.Do(session.HistoryBack)},
		{"right", session.Do(session.HistoryForward)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := KeyCommand(tt.key)
			if !ok {
				t.Fatalf("key %q not bound", tt.key)
			}
			if got != tt.want {
				t.Errorf("KeyCommand(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}

	for _, k := range []string{"q", "?", "t", "g", "x"} {
		if _, ok := KeyCommand(k); ok {
			t.Errorf("key %q should not map to a session command", k)
		}
	}
}

func TestModelTick(t *testing.T) {
	m := newModel(t)
	now := time.Now()

	m = update(m, TickMsg(now))
	m = update(m, TickMsg(now.Add(50*time.Millisecond)))

	if m.sess.Clock().Elapsed != 2 {
		t.Errorf("expected two ticks, elapsed %v", m.sess.Clock().Elapsed)
	}
	if m.measured < 19.9 || m.measured > 20.1 {
		t.Errorf("measured fps = %v, want 20", m.measured)
	}
	if len(m.frame.Segments) != m.sess.State().Len() {
		t.Errorf("frame has %d segments, want %d", len(m.frame.Segments), m.sess.State().Len())
	}
	if len(m.spread) != 2 {
		t.Errorf("expected 2 spread samples, got %d", len(m.spread))
	}
	if !strings.Contains(m.View(), "WAVEFRONT") {
		t.Error("view missing title")
	}
}

func TestModelKeys(t *testing.T) {
	m := newModel(t)
	m = update(m, TickMsg(time.Now()))

	m = update(m, key("l"))
	if m.sess.Style() != plot.Line {
		t.Errorf("style = %v, want line", m.sess.Style())
	}

	m = update(m, key(" "))
	if !m.sess.Clock().Paused() {
		t.Error("space should pause")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show paused state")
	}
	if !strings.Contains(m.View(), "Sim Speed: 0.000") {
		t.Error("view should show the paused speed before the next tick")
	}

	first := m.sess.Params()
	m = update(m, key("right"))
	if m.sess.Params() == first {
		t.Error("right should move to new params")
	}
	if len(m.spread) != 0 {
		t.Error("history navigation should clear the spread graph")
	}

	m = update(m, key("t"))
	if m.theme.Name != "retro" {
		t.Errorf("theme = %s, want retro", m.theme.Name)
	}

	m = update(m, key("?"))
	if !m.showHelp || !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay not shown")
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModelResize(t *testing.T) {
	m := newModel(t)
	m = update(m, tea.WindowSizeMsg{Width: 160, Height: 50})
	if m.canvas.Width != 160-panelWidth-6 || m.canvas.Height != 47 {
		t.Errorf("canvas = %dx%d", m.canvas.Width, m.canvas.Height)
	}

	m = update(m, tea.WindowSizeMsg{Width: 10, Height: 2})
	if m.canvas.Width != 10 || m.canvas.Height != 5 {
		t.Errorf("tiny terminal canvas = %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestModelRecording(t *testing.T) {
	m := newModel(t)
	m = update(m, key("g"))
	if m.recorder == nil {
		t.Fatal("g should start recording")
	}
	now := time.Now()
	for i := 0; i < 3; i++ {
		m = update(m, TickMsg(now.Add(time.Duration(i)*time.Second/30)))
	}
	if m.recorder.Len() != 3 {
		t.Errorf("expected 3 captured frames, got %d", m.recorder.Len())
	}
	m = update(m, key("g"))
	if m.recorder != nil {
		t.Error("second g should stop recording")
	}
	if !strings.HasPrefix(m.notice, "saved") {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	names := ThemeNames()
	if NextTheme(names[len(names)-1]).Name != names[0] {
		t.Error("NextTheme should wrap")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("a: 1, b: 2, c: 3", 10)
	if got != "a: 1, b: 2,\nc: 3" {
		t.Errorf("wrap = %q", got)
	}
	if wrap("short", 10) != "short" {
		t.Error("short strings must not change")
	}
}
