package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/gui/panel"
	"github.com/san-kum/sortviz/internal/session"
	"go.uber.org/zap"
)

var (
	ColBlack     = rl.NewColor(0, 0, 0, 255)
	ColDeepGray  = rl.NewColor(50, 50, 50, 255)
	ColHeader    = rl.NewColor(113, 115, 120, 255)
	ColText      = rl.NewColor(255, 255, 255, 255)
	ColBar       = rl.NewColor(0, 150, 255, 255)
	ColHighlight = rl.NewColor(0, 255, 0, 255)
	ColInactive  = rl.NewColor(140, 140, 140, 255)
	ColActive    = rl.NewColor(30, 144, 255, 255)
	ColButton    = rl.NewColor(70, 70, 70, 255)
	ColChartBg   = rl.NewColor(40, 40, 40, 255)
	ColAxis      = rl.NewColor(150, 150, 150, 255)
	ColScale     = rl.NewColor(200, 200, 200, 255)

	ColSeries = []rl.Color{
		rl.NewColor(255, 0, 0, 255),
		rl.NewColor(0, 255, 0, 255),
		rl.NewColor(0, 0, 255, 255),
		rl.NewColor(255, 255, 0, 255),
	}
)

const (
	titleSize   = 24
	regularSize = 18
	smallSize   = 14
)

type App struct {
	Sess   *session.Session
	Layout panel.Layout
	Logger *zap.Logger

	Numbers panel.InputBox
	Size    panel.InputBox
	Target  panel.InputBox

	Enter  panel.Button
	Pause  panel.Button
	Reset  panel.Button
	Launch panel.Button

	Algos  []algo.Info
	Checks panel.Group
}

func NewApp(sess *session.Session, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := panel.NewLayout()
	a := &App{
		Sess:    sess,
		Layout:  l,
		Logger:  logger,
		Numbers: panel.InputBox{Rect: l.Numbers, Limit: 400},
		Size:    panel.InputBox{Rect: l.Size, Limit: 6},
		Target:  panel.InputBox{Rect: l.Target, Limit: 12},
		Enter:   panel.Button{Rect: l.Enter, Label: "ENTER"},
		Pause:   panel.Button{Rect: l.Pause, Label: "PAUSE"},
		Reset:   panel.Button{Rect: l.Reset, Label: "RESET"},
		Launch:  panel.Button{Rect: l.Launch, Label: "LAUNCH ROCKET"},
		Algos:   algo.All(),
	}
	a.Checks = make(panel.Group, len(a.Algos))
	selected, _ := sess.Selected()
	for i, info := range a.Algos {
		a.Checks[i] = panel.Checkbox{Rect: l.Checkbox(i), Label: info.Title, Checked: info.Name == selected.Name}
	}
	return a
}

func initWindow() {
	rl.InitWindow(panel.Width, panel.Height, "Rocket Fuel Sorting Visualizer")
	rl.SetTargetFPS(panel.FPS)
}

// Run opens the window and blocks until it is closed.
func Run(sess *session.Session, logger *zap.Logger) {
	initWindow()
	defer rl.CloseWindow()
	NewApp(sess, logger).RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.handleTyping()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		a.click(pos.X, pos.Y)
	}
	a.Sess.Tick()
}

func (a *App) handleTyping() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		a.Numbers.Type(rune(r))
		a.Size.Type(rune(r))
		if a.Sess.TargetVisible() {
			a.Target.Type(rune(r))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		a.Numbers.Backspace()
		a.Size.Backspace()
		a.Target.Backspace()
	}
}

func (a *App) click(x, y float32) {
	a.Numbers.Click(x, y)
	a.Size.Click(x, y)
	if a.Sess.TargetVisible() {
		a.Target.Click(x, y)
	}

	if i := a.Checks.Click(x, y); i >= 0 {
		if err := a.Sess.Select(a.Algos[i].Name); err != nil {
			a.Logger.Warn("select", zap.Error(err))
		}
	}

	switch {
	case a.Enter.Hit(x, y):
		a.push()
		_ = a.Sess.Enter()
		a.pull()
	case a.Pause.Hit(x, y):
		a.Sess.TogglePause()
	case a.Reset.Hit(x, y):
		a.Sess.Reset()
		a.Checks.Check(-1)
		a.pull()
	case a.Launch.Hit(x, y):
		a.push()
		_ = a.Sess.Launch()
		a.pull()
	}
}

// push copies the input boxes into the session; pull copies the session
// fields back once it has consumed them. Session warnings are logged by
// the session itself.
func (a *App) push() {
	a.Sess.SetNumbers(a.Numbers.Text)
	a.Sess.SetSize(a.Size.Text)
	a.Sess.SetTarget(a.Target.Text)
}

func (a *App) pull() {
	a.Numbers.Text = a.Sess.Numbers()
	a.Size.Text = a.Sess.Size()
	a.Target.Text = a.Sess.TargetText()
}
