package core

// Cursor is the text-insertion caret of the focused editable widget.
// Col counts grapheme clusters within line Line.
type Cursor struct {
	Line    int
	Col     int
	Display bool

	// Blink state: View toggles every fps/Times frames while Display is set.
	View    bool
	Counter int
	Times   int
}

func newCursor(times int) *Cursor {
	if times <= 0 {
		times = defaultBlinkTimes
	}
	return &Cursor{Times: times}
}

// Reset hides the caret and moves it to the start of the first line.
func (c *Cursor) Reset() {
	c.Col = 0
	c.Line = 0
	c.Display = false
	c.Counter = 0
}

// place shows the caret at (line, col) and restarts the blink phase.
func (c *Cursor) place(line, col int) {
	c.Line = line
	c.Col = col
	c.Display = true
	c.Counter = 0
}

// tick advances the blink counter by one frame.
func (c *Cursor) tick(fps int) {
	c.Counter++
	times := c.Times
	if times <= 0 {
		times = defaultBlinkTimes
	}
	period := fps / times
	if period < 1 {
		period = 1
	}
	if c.Display && c.Counter >= period {
		c.Counter = 0
		c.View = !c.View
	}
}

// clamp keeps the caret inside lines. lines must not be empty.
func (c *Cursor) clamp(lines []string) {
	if c.Line < 0 {
		c.Line = 0
	}
	if c.Line > len(lines)-1 {
		c.Line = len(lines) - 1
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if n := graphemeCount(lines[c.Line]); c.Col > n {
		c.Col = n
	}
}
