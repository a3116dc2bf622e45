package viz

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavefront/internal/camera"
	"github.com/san-kum/wavefront/internal/metrics"
	"github.com/san-kum/wavefront/internal/plot"
	"github.com/san-kum/wavefront/internal/session"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 46
	historyCapacity = 300
)

// TickMsg drives one Update/Render pair.
type TickMsg time.Time

// Options configures the live view.
type Options struct {
	FPS     int
	Theme   string
	GIFPath string
	Log     *slog.Logger
}

// Model is the bubbletea model of the live view. It owns the session; every
// mutation happens inside Update.
type Model struct {
	sess     *session.Session
	fps      int
	frameDt  float64
	canvas   *Canvas
	frame    session.Frame
	spread   []float64
	lastTick time.Time
	measured float64
	showHelp bool
	theme    Theme
	recorder *Recorder
	gifPath  string
	notice   string
	log      *slog.Logger
}

func NewModel(sess *session.Session, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "wavefront.gif"
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		sess:    sess,
		fps:     opts.FPS,
		frameDt: 1 / float64(opts.FPS),
		canvas:  NewCanvas(width, height),
		spread:  make([]float64, 0, historyCapacity),
		theme:   GetTheme(opts.Theme),
		gifPath: opts.GIFPath,
		log:     opts.Log,
	}
}

// KeyCommand maps a key to its session command.
func KeyCommand(key string) (session.Command, bool) {
	switch key {
	case "p":
		return session.SetStyle(plot.Point), true
	case "l":
		return session.SetStyle(plot.Line), true
	case "r":
		return session.SetStyle(plot.Radial), true
	case "up":
		return session.SpeedUp(), true
	case "down":
		return session.SlowDown(), true
	case "ctrl+r", "backspace":
		return session.Do(session.Reset), true
	case " ", "space":
		return session.Do(session.TogglePause), true
	case "tab":
		return session.Do(session.ToggleProjection), true
	case "left":
		return session.Do(session.HistoryBack), true
	case "right":
		return session.Do(session.HistoryForward), true
	}
	return session.Command{}, false
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update applies input and advances the simulation one tick per TickMsg.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if cmd, ok := KeyCommand(key); ok {
			m.sess.Apply(cmd)
			m.frame.Status = m.sess.Status(m.measured)
			if cmd.Op == session.Reset || cmd.Op == session.HistoryBack || cmd.Op == session.HistoryForward {
				m.spread = m.spread[:0]
			}
			return m, nil
		}
		switch key {
		case "q", "ctrl+c":
			if m.recorder != nil {
				m.stopRecording()
			}
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "g":
			if m.recorder != nil {
				m.stopRecording()
			} else {
				m.recorder = NewRecorder(m.fps)
				m.notice = "recording"
			}
		}
	case tea.WindowSizeMsg:
		w := msg.Width - panelWidth - 6
		h := msg.Height - 3
		m.canvas = NewCanvas(max(w, 10), max(h, 5))
	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			if d := now.Sub(m.lastTick).Seconds(); d > 0 {
				m.measured = 1 / d
			}
		}
		m.lastTick = now
		m.step()
		return m, m.tick()
	}
	return m, nil
}

// step runs exactly one Update followed by one Render.
func (m *Model) step() {
	m.sess.Update(m.frameDt)
	w, h := m.canvas.Bounds()
	m.frame = m.sess.Render(camera.Viewport{Width: float64(w), Height: float64(h)}, m.measured)

	m.canvas.Clear()
	for _, seg := range m.frame.Segments {
		m.canvas.DrawSegment(seg)
	}

	m.spread = append(m.spread, m.frame.Status.Metrics[metrics.SpreadName])
	if len(m.spread) > historyCapacity {
		m.spread = m.spread[1:]
	}
	if m.recorder != nil {
		m.recorder.Capture(m.canvas)
	}
}

func (m *Model) stopRecording() {
	n := m.recorder.Len()
	if err := m.recorder.Save(m.gifPath); err != nil {
		m.log.Error("save recording", "path", m.gifPath, "err", err)
		m.notice = "recording failed"
	} else {
		m.log.Info("recording saved", "path", m.gifPath, "frames", n)
		m.notice = fmt.Sprintf("saved %s", m.gifPath)
	}
	m.recorder = nil
}

// View renders the canvas beside the status panel.
func (m Model) View() string {
	st := m.theme.styles()
	status := m.frame.Status

	var s strings.Builder
	s.WriteString(st.title.Render("WAVEFRONT") + "\n")
	switch {
	case status.Paused:
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	case m.recorder != nil:
		s.WriteString(st.paused.Render(fmt.Sprintf("REC %d", m.recorder.Len())) + "\n\n")
	default:
		s.WriteString(st.label.Render("RUNNING") + "\n\n")
	}

	for _, line := range status.Lines() {
		s.WriteString(st.value.Render(wrap(line, panelWidth-6)) + "\n")
	}

	if len(status.Metrics) > 0 {
		s.WriteString("\n" + st.label.Render("METRICS") + "\n")
		names := make([]string, 0, len(status.Metrics))
		for name := range status.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s.WriteString(st.label.Render(fmt.Sprintf("%-10s", name)) + st.value.Render(fmt.Sprintf("%.4f", status.Metrics[name])) + "\n")
		}
	}

	if len(m.spread) > 1 {
		chart := asciigraph.Plot(m.spread, asciigraph.Height(5), asciigraph.Width(panelWidth-14), asciigraph.Caption(metrics.SpreadName))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	if m.notice != "" {
		s.WriteString(st.label.Render(m.notice) + "\n")
	}
	s.WriteString(st.help.Render("─────────────────────\nQ:Quit ?:Help T:Theme G:Record"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.canvas.Render()), st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + st.help.Render(wrap(status.Controls, 100)) + "\n\n" + main
	}
	return main
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  P / L / R  - Point / line / radial  ║
║  Up / Down  - Speed up / slow down   ║
║  Ctrl+R     - Reset wavefront        ║
║  Space      - Pause / resume         ║
║  Tab        - Toggle projection      ║
║  Left/Right - Previous / next params ║
║  G          - Toggle GIF recording   ║
║  T          - Cycle themes           ║
║  ?          - Toggle this help       ║
║  Q          - Quit                   ║
╚══════════════════════════════════════╝`

// wrap breaks s on commas so long status strings fit the panel.
func wrap(s string, width int) string {
	if len(s) <= width || width <= 0 {
		return s
	}
	var b strings.Builder
	line := 0
	for i, part := range strings.Split(s, ",") {
		if i > 0 {
			part = "," + part
		}
		if line > 0 && line+len(part) > width {
			b.WriteString(",\n")
			part = strings.TrimLeft(part[1:], " ")
			line = 0
		}
		b.WriteString(part)
		line += len(part)
	}
	return b.String()
}

// Run starts the live view on the alternate screen and blocks until quit.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(NewModel(sess, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
