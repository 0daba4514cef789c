package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortviz/internal/gui/panel"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBlack)

	a.drawHeader()
	a.drawBars()
	a.drawPanel()

	rl.EndDrawing()
}

func rec(r panel.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.W, r.H)
}

func text(s string, x, y float32, size int32, c rl.Color) {
	rl.DrawText(s, int32(x), int32(y), size, c)
}

func measure(size int32) func(string) int {
	return func(s string) int { return int(rl.MeasureText(s, size)) }
}

func (a *App) drawHeader() {
	h := a.Layout.Header
	rl.DrawRectangleRec(rec(h), ColHeader)
	s := panel.Truncate(a.Sess.Header(), int(h.W)-20, measure(titleSize))
	text(s, h.X+10, h.Y+(h.H-titleSize)/2, titleSize, ColText)
}

func (a *App) drawBars() {
	rl.DrawRectangleRec(rec(a.Layout.Vis), ColBlack)
	for i, b := range panel.Bars(a.Sess.Values(), a.Layout.Vis) {
		col := ColBar
		if a.Sess.Highlighted(i) {
			col = ColHighlight
		}
		rl.DrawRectangleRec(rec(b), col)
	}
}

func (a *App) drawPanel() {
	l := a.Layout
	x := l.ContentX
	rl.DrawRectangleRec(rec(l.Side), ColDeepGray)

	title := "Sorting Visualization"
	tw := float32(rl.MeasureText(title, titleSize))
	text(title, l.Side.X+(l.Side.W-tw)/2, l.TitleY, titleSize, ColText)

	text("Step 1:", x, l.Step1Y, titleSize, ColText)
	text("Enter comma separated Numbers:", x, l.ManualLabelY, regularSize, ColText)
	drawInput(a.Numbers)
	text("Or", x+160, l.OrLabelY, regularSize, ColText)
	text("Generate Random (Enter size):", x, l.RandomLabelY, regularSize, ColText)
	drawInput(a.Size)
	drawButton(a.Enter)
	drawButton(a.Pause)
	drawButton(a.Reset)

	text("Step 2:", x, l.Step2Y, titleSize, ColText)
	text("Pick sorting Algorithm:", x, l.AlgoLabelY, regularSize, ColText)
	for _, c := range a.Checks {
		drawCheckbox(c)
	}
	if a.Sess.TargetVisible() {
		text("Pick target value:", x, l.TargetLabelY, regularSize, ColText)
		drawInput(a.Target)
	}

	text("Step 3:", x, l.Step3Y, titleSize, ColText)
	if info, ok := a.Sess.Selected(); ok {
		text("You choose: "+info.Title, x, l.ChosenY, regularSize, ColText)
	}
	drawButton(a.Launch)

	a.drawPerf()
}

func drawInput(b panel.InputBox) {
	col := ColInactive
	if b.Active {
		col = ColActive
	}
	s := panel.Truncate(b.Text, int(b.W)-10, measure(regularSize))
	text(s, b.X+5, b.Y+5, regularSize, ColText)
	rl.DrawRectangleLinesEx(rec(b.Rect), 2, col)
}

func drawButton(b panel.Button) {
	rl.DrawRectangleRec(rec(b.Rect), ColButton)
	w := float32(rl.MeasureText(b.Label, regularSize))
	text(b.Label, b.X+(b.W-w)/2, b.Y+(b.H-regularSize)/2, regularSize, ColText)
}

func drawCheckbox(c panel.Checkbox) {
	rl.DrawRectangleLinesEx(rec(c.Rect), 2, ColText)
	if c.Checked {
		rl.DrawLineEx(rl.NewVector2(c.X+4, c.Y+10), rl.NewVector2(c.X+8, c.Y+15), 2, ColHighlight)
		rl.DrawLineEx(rl.NewVector2(c.X+8, c.Y+15), rl.NewVector2(c.X+16, c.Y+5), 2, ColHighlight)
	}
	text(c.Label, c.X+30, c.Y+2, regularSize, ColText)
}

func (a *App) drawPerf() {
	area := a.Layout.Perf
	chart := panel.PerfChart(a.Sess.Timings(), area, a.Sess.Reveal())
	if len(chart.Bars) == 0 {
		return
	}

	rl.DrawRectangleRec(rec(area), ColChartBg)
	tw := float32(rl.MeasureText(panel.ChartTitle, regularSize))
	text(panel.ChartTitle, area.X+(area.W-tw)/2, area.Y+5, regularSize, ColText)

	if chart.Axis {
		rl.DrawLine(int32(area.X+5), int32(area.Y+25), int32(area.X+5), int32(area.Bottom()-20), ColAxis)
		text(chart.Scale, area.X+7, area.Y+25, smallSize, ColScale)
		text("0.00", area.X+7, area.Bottom()-25, smallSize, ColScale)
	}

	for _, b := range chart.Bars {
		rl.DrawRectangleRec(rec(b.Rect), ColSeries[b.Series%len(ColSeries)])

		nw := float32(rl.MeasureText(b.Name, smallSize))
		vw := float32(rl.MeasureText(b.Value, smallSize))
		nx, vx := b.X+(b.W-nw)/2, b.X+(b.W-vw)/2
		if !chart.Axis {
			nx = b.X
		}
		text(b.Name, nx, b.Y-smallSize-2, smallSize, ColText)
		text(b.Value, vx, b.Bottom()+2, smallSize, ColText)
	}
}
