package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const panelWidth = 44

type focus int

const (
	focusNone focus = iota
	focusNumbers
	focusSize
	focusAlgos
	focusTarget
)

const (
	inputNumbers = iota
	inputSize
	inputTarget
)

type model struct {
	sess    *session.Session
	inv     *metrics.Inversions
	algos   []algo.Info
	inputs  []textinput.Model
	focus   focus
	cursor  int
	theme   viz.Theme
	styles  viz.Styles
	fps     int
	status  string
	warning bool

	width  int
	height int
}

// Options tune the terminal front-end.
type Options struct {
	FPS   int
	Theme string
}

func newModel(sess *session.Session, opts Options) model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	inputs := make([]textinput.Model, 3)
	for i, ph := range []string{"e.g. 5, 3, 9, 1", "size", "target"} {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.Prompt = "› "
		ti.CharLimit = 512
		inputs[i] = ti
	}
	inputs[inputSize].CharLimit = 6
	inputs[inputTarget].CharLimit = 12

	inv := metrics.NewInversions()
	sess.Player().AddMetric(inv)

	theme := viz.GetTheme(opts.Theme)
	return model{
		sess:   sess,
		inv:    inv,
		algos:  algo.All(),
		inputs: inputs,
		theme:  theme,
		styles: viz.NewStyles(theme),
		fps:    opts.FPS,
		width:  100,
		height: 30,
	}
}

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.sess.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.focus {
	case focusNone:
		return m.commandKey(msg)
	case focusAlgos:
		return m.algoKey(msg)
	}
	return m.inputKey(msg)
}

func (m model) commandKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.setFocus(m.nextFocus(1))
	case "shift+tab":
		m.setFocus(m.nextFocus(-1))
	case "n":
		m.setFocus(focusNumbers)
	case "s":
		m.setFocus(focusSize)
	case "a":
		m.setFocus(focusAlgos)
	case "e", "enter":
		m.enter()
	case " ", "p":
		m.sess.TogglePause()
	case "r":
		m.reset()
	case "l", "g":
		m.launch()
	case "+", "=":
		m.sess.Player().Faster()
	case "-", "_":
		m.sess.Player().Slower()
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
	case "1", "2", "3", "4", "5":
		m.selectAlgo(int(msg.String()[0] - '1'))
	}
	return m, nil
}

func (m model) algoKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setFocus(focusNone)
	case "tab":
		m.setFocus(m.nextFocus(1))
	case "shift+tab":
		m.setFocus(m.nextFocus(-1))
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.algos)-1 {
			m.cursor++
		}
	case "enter", " ", "x":
		m.selectAlgo(m.cursor)
	}
	return m, nil
}

func (m model) inputKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setFocus(focusNone)
		return m, nil
	case "tab":
		m.setFocus(m.nextFocus(1))
		return m, nil
	case "shift+tab":
		m.setFocus(m.nextFocus(-1))
		return m, nil
	case "enter":
		if m.focus == focusTarget {
			m.launch()
		} else {
			m.enter()
		}
		return m, nil
	}

	i := m.inputIndex()
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

func (m model) inputIndex() int {
	switch m.focus {
	case focusSize:
		return inputSize
	case focusTarget:
		return inputTarget
	}
	return inputNumbers
}

func (m *model) focusOrder() []focus {
	order := []focus{focusNone, focusNumbers, focusSize, focusAlgos}
	if m.sess.TargetVisible() {
		order = append(order, focusTarget)
	}
	return order
}

func (m *model) nextFocus(dir int) focus {
	order := m.focusOrder()
	for i, f := range order {
		if f == m.focus {
			return order[(i+dir+len(order))%len(order)]
		}
	}
	return focusNone
}

func (m *model) setFocus(f focus) {
	m.focus = f
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	switch f {
	case focusNumbers:
		m.inputs[inputNumbers].Focus()
	case focusSize:
		m.inputs[inputSize].Focus()
	case focusTarget:
		m.inputs[inputTarget].Focus()
	}
}

// push copies the text fields into the session; pull copies them back
// after the session has consumed them.
func (m *model) push() {
	m.sess.SetNumbers(m.inputs[inputNumbers].Value())
	m.sess.SetSize(m.inputs[inputSize].Value())
	m.sess.SetTarget(m.inputs[inputTarget].Value())
}

func (m *model) pull() {
	m.inputs[inputNumbers].SetValue(m.sess.Numbers())
	m.inputs[inputSize].SetValue(m.sess.Size())
	m.inputs[inputTarget].SetValue(m.sess.TargetText())
}

func (m *model) report(err error, ok string) {
	if err != nil {
		m.status = err.Error()
		m.warning = true
		return
	}
	m.status = ok
	m.warning = false
}

func (m *model) enter() {
	m.push()
	err := m.sess.Enter()
	m.pull()
	m.report(err, fmt.Sprintf("array of %d values", len(m.sess.Values())))
}

func (m *model) reset() {
	m.sess.Reset()
	m.pull()
	m.inv.Reset()
	m.cursor = 0
	if m.focus == focusTarget {
		m.setFocus(focusNone)
	}
	m.report(nil, "reset")
}

func (m *model) launch() {
	m.push()
	err := m.sess.Launch()
	m.pull()
	info, _ := m.sess.Selected()
	m.report(err, "launched "+info.Title)
}

func (m *model) selectAlgo(i int) {
	if i < 0 || i >= len(m.algos) {
		return
	}
	m.cursor = i
	if err := m.sess.Select(m.algos[i].Name); err != nil {
		m.report(err, "")
		return
	}
	if m.focus == focusTarget && !m.sess.TargetVisible() {
		m.setFocus(focusNone)
	}
}

func (m model) View() string {
	chartWidth := max(m.width-panelWidth-4, 20)
	chartHeight := max(m.height-6, 5)

	header := m.styles.Header.Width(chartWidth).Render(
		viz.Truncate(m.sess.Header(), chartWidth-2),
	)
	bars := viz.ArrayChart(m.sess.Values(), chartWidth, chartHeight, m.sess.Highlighted, m.theme)
	left := lipgloss.JoinVertical(lipgloss.Left, header, bars)

	panel := viz.Panel.Width(panelWidth).Render(m.viewPanel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", panel)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatus(), m.viewHelp())
}

func (m model) viewPanel() string {
	var b strings.Builder
	st := m.styles

	b.WriteString(viz.GradientText("Sorting Visualization", m.theme.Primary, m.theme.Accent) + "\n\n")

	b.WriteString(st.Step.Render("Step 1:") + "\n")
	b.WriteString(st.Label.Render("Enter comma separated Numbers:") + "\n")
	b.WriteString(m.inputs[inputNumbers].View() + "\n")
	b.WriteString(dim.Render("Or") + "\n")
	b.WriteString(st.Label.Render("Generate Random (Enter size):") + "\n")
	b.WriteString(m.inputs[inputSize].View() + "\n\n")

	b.WriteString(st.Step.Render("Step 2:") + "\n")
	b.WriteString(st.Label.Render("Pick sorting Algorithm:") + "\n")
	selected, _ := m.sess.Selected()
	for i, info := range m.algos {
		box := "[ ]"
		if info.Name == selected.Name {
			box = st.Selected.Render("[x]")
		}
		name := dim.Render(info.Title)
		if m.focus == focusAlgos && i == m.cursor {
			name = st.Focused.Render("▸ " + info.Title)
		}
		b.WriteString(fmt.Sprintf("%s %d %s\n", box, i+1, name))
	}
	if m.sess.TargetVisible() {
		b.WriteString(st.Label.Render(fmt.Sprintf("Pick target value: (now %d)", m.sess.Target())) + "\n")
		b.WriteString(m.inputs[inputTarget].View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(st.Step.Render("Step 3:") + "\n")
	if selected.Name != "" {
		b.WriteString(st.Label.Render("You choose: "+selected.Title) + "\n")
	}
	b.WriteString(white.Render("[l] LAUNCH ROCKET") + "\n\n")

	if chart := viz.PerfChart(m.sess.Timings(), panelWidth-2, m.sess.Reveal(), m.theme); chart != "" {
		b.WriteString(chart + "\n")
	}
	return b.String()
}

func (m model) viewStatus() string {
	p := m.sess.Player()
	state := dim.Render(p.State().String())
	switch {
	case m.sess.Running():
		state = viz.StatusRunning.Render(viz.Spinner(p.Steps()) + " running")
	case m.sess.Paused():
		state = viz.StatusPaused.Render("paused")
	case m.sess.Completed():
		state = viz.StatusDone.Render(fmt.Sprintf("done in %s", p.VisualTime().Round(time.Millisecond)))
	}

	parts := []string{
		state,
		viz.MetricLabel.Render("steps ") + viz.MetricValue.Render(fmt.Sprint(p.Steps())),
		viz.MetricLabel.Render("speed ") + viz.MetricValue.Render(fmt.Sprintf("%dx", p.Speed())),
		viz.MetricLabel.Render("inversions ") + viz.Sparkline(m.inv.History(), 24),
	}
	if m.sess.Completed() {
		parts = append(parts, viz.ProgressBar(float64(m.sess.Reveal())/100, 10))
	}
	line := strings.Join(parts, dimmer.Render("  │  "))

	if m.status != "" {
		msg := cyan.Render(m.status)
		if m.warning {
			msg = m.styles.Warning.Render("! " + m.status)
		}
		line += "\n" + msg
	}
	return line
}

func (m model) viewHelp() string {
	if m.focus != focusNone {
		return viz.KeyHint.Render("enter submit  tab next field  esc commands")
	}
	return viz.KeyHint.Render("tab/n/s/a fields  1-5 pick  e enter  l launch  space pause  r reset  +/- speed  t theme  q quit")
}

// Run starts the terminal UI on sess and blocks until the user quits.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(newModel(sess, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
