package panel

import "unicode"

// InputBox is a single-line text field that becomes active when clicked.
type InputBox struct {
	Rect
	Text   string
	Active bool
	Limit  int
}

// Click activates the box if (x, y) is inside it and deactivates it
// otherwise.
func (b *InputBox) Click(x, y float32) {
	b.Active = b.Contains(x, y)
}

// Type appends r when the box is active and printable.
func (b *InputBox) Type(r rune) {
	if !b.Active || !unicode.IsPrint(r) {
		return
	}
	if b.Limit > 0 && len([]rune(b.Text)) >= b.Limit {
		return
	}
	b.Text += string(r)
}

func (b *InputBox) Backspace() {
	if !b.Active || b.Text == "" {
		return
	}
	r := []rune(b.Text)
	b.Text = string(r[:len(r)-1])
}

func (b *InputBox) Clear() { b.Text = "" }

type Button struct {
	Rect
	Label string
}

func (b Button) Hit(x, y float32) bool { return b.Contains(x, y) }

type Checkbox struct {
	Rect
	Label   string
	Checked bool
}

// Group is a set of checkboxes of which at most one is checked.
type Group []Checkbox

// Click checks the box under (x, y), unchecking the rest, and returns
// its index or -1 when no box was hit.
func (g Group) Click(x, y float32) int {
	for i := range g {
		if g[i].Contains(x, y) {
			g.Check(i)
			return i
		}
	}
	return -1
}

// Check checks box i alone; i < 0 clears the group.
func (g Group) Check(i int) {
	for j := range g {
		g[j].Checked = j == i
	}
}

// Checked returns the index of the checked box, or -1.
func (g Group) Checked() int {
	for i, c := range g {
		if c.Checked {
			return i
		}
	}
	return -1
}

// Truncate cuts text to fit width as reported by measure, ending it
// with "..." when anything was removed.
func Truncate(text string, width int, measure func(string) int) string {
	if measure(text) <= width {
		return text
	}
	room := width - measure("...")
	r := []rune(text)
	for len(r) > 0 && measure(string(r)) > room {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
