// Package panel holds the window geometry and widget state of the
// desktop front-end. It has no graphics dependency so layout and
// hit-testing can be tested headless.
package panel

const (
	Width        = 1280
	Height       = 720
	PanelWidth   = 427
	HeaderHeight = 30
	FPS          = 60

	inputHeight  = 25
	buttonHeight = 35
	checkboxSize = 20
)

type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Layout positions every element of the window: the array header and
// bars on the left, the control panel on the right.
type Layout struct {
	Header Rect
	Vis    Rect
	Side   Rect

	ContentX float32

	TitleY         float32
	Step1Y         float32
	ManualLabelY   float32
	OrLabelY       float32
	RandomLabelY   float32
	Step2Y         float32
	AlgoLabelY     float32
	TargetLabelY   float32
	Step3Y         float32
	ChosenY        float32
	CheckboxStartY float32

	Numbers Rect
	Size    Rect
	Target  Rect

	Enter  Rect
	Pause  Rect
	Reset  Rect
	Launch Rect

	Perf Rect
}

// NewLayout returns the fixed 1280x720 layout.
func NewLayout() Layout {
	sideX := float32(Width - PanelWidth)
	x := sideX + 15
	inner := float32(PanelWidth - 30)
	buttonWidth := float32((PanelWidth - 60) / 3)

	return Layout{
		Header: Rect{0, 0, sideX, HeaderHeight},
		Vis:    Rect{0, HeaderHeight, sideX, Height - HeaderHeight},
		Side:   Rect{sideX, 0, PanelWidth, Height},

		ContentX: x,

		TitleY:         5,
		Step1Y:         35,
		ManualLabelY:   60,
		OrLabelY:       115,
		RandomLabelY:   135,
		Step2Y:         240,
		AlgoLabelY:     265,
		CheckboxStartY: 290,
		TargetLabelY:   400,
		Step3Y:         460,
		ChosenY:        485,

		Numbers: Rect{x, 85, inner, inputHeight},
		Size:    Rect{x, 160, 140, inputHeight},
		Target:  Rect{x, 425, 140, inputHeight},

		Enter:  Rect{x, 195, buttonWidth, buttonHeight},
		Pause:  Rect{x + buttonWidth + 10, 195, buttonWidth, buttonHeight},
		Reset:  Rect{x + 2*(buttonWidth+10), 195, buttonWidth, buttonHeight},
		Launch: Rect{x, 515, inner, buttonHeight},

		Perf: Rect{x, 565, inner, 145},
	}
}

// Checkbox returns the box of the i-th algorithm checkbox.
func (l Layout) Checkbox(i int) Rect {
	return Rect{l.ContentX, l.CheckboxStartY + float32(i)*checkboxSize, checkboxSize, checkboxSize}
}

// Bars lays out one bar per value across area, scaled so the largest
// value spans the area height less a 10px margin. Zero or negative
// values get zero-height bars.
func Bars(values []int, area Rect) []Rect {
	if len(values) == 0 {
		return nil
	}
	top := 0
	for _, v := range values {
		top = max(top, v)
	}
	if top == 0 {
		top = 1
	}

	w := area.W / float32(len(values))
	out := make([]Rect, len(values))
	for i, v := range values {
		h := float32(0)
		if v > 0 {
			h = float32(v) / float32(top) * (area.H - 10)
		}
		out[i] = Rect{
			X: area.X + float32(i)*w,
			Y: area.Bottom() - h,
			W: max(w-1, 1),
			H: h,
		}
	}
	return out
}
