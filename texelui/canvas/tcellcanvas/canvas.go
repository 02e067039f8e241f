// Package tcellcanvas implements core.Backend on a terminal cell grid.
//
// Pixels map onto cells through a fixed cell size. Paths are flattened to
// polygons: fills colour the background of every cell whose centre falls
// inside, strokes draw box-drawing glyphs along each segment and text is
// laid out one grapheme cluster per cell run. Nothing reaches the screen
// until Flush.
package tcellcanvas

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/framegrace/texelform/texelui/core"
)

const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 14

	arcSegments = 8
)

// Screen is the subset of tcell.Screen the canvas draws to.
type Screen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

type cell struct {
	ch       rune
	comb     []rune
	fg, bg   core.Color
	wideTail bool
}

type state struct {
	fill, stroke core.Color
	lineWidth    float64
	shadow       core.Shadow
	font         core.Font
	baseline     core.Baseline
	clip         core.Box
	clipped      bool
}

// Canvas is a core.Backend backed by a tcell screen.
type Canvas struct {
	scr          Screen
	cellW, cellH float64
	cols, rows   int
	cells        []cell

	path   [][]core.Point
	cur    state
	states []state
}

var (
	_ core.Backend = (*Canvas)(nil)
	_ core.Flusher = (*Canvas)(nil)
)

// New creates a canvas over scr. Non-positive cell sizes use the defaults.
func New(scr Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	c := &Canvas{scr: scr, cellW: cellW, cellH: cellH}
	c.cur = defaultState()
	c.syncSize()
	return c
}

func defaultState() state {
	return state{
		fill:      core.Black,
		stroke:    core.Black,
		lineWidth: 1,
		baseline:  core.BaselineAlphabetic,
	}
}

// CellSize returns the pixel size of one cell.
func (c *Canvas) CellSize() (float64, float64) { return c.cellW, c.cellH }

// ToPixel converts a cell position to the pixel at that cell's centre.
func (c *Canvas) ToPixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

func (c *Canvas) syncSize() {
	cols, rows := c.scr.Size()
	if cols == c.cols && rows == c.rows && c.cells != nil {
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func (c *Canvas) Size() (float64, float64) {
	c.syncSize()
	return float64(c.cols) * c.cellW, float64(c.rows) * c.cellH
}

// ClearRect blanks every cell whose centre lies in the rectangle. It also
// picks up screen resizes.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.syncSize()
	box := core.Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
	c.eachCell(box, func(cl *cell, _, _ float64) {
		*cl = cell{ch: ' '}
	})
}

// eachCell visits cells whose centre is inside box and the clip region.
func (c *Canvas) eachCell(box core.Box, fn func(cl *cell, px, py float64)) {
	if c.cur.clipped {
		box = intersect(box, c.cur.clip)
	}
	c0 := int(math.Floor(box.Left / c.cellW))
	c1 := int(math.Ceil(box.Right / c.cellW))
	r0 := int(math.Floor(box.Top / c.cellH))
	r1 := int(math.Ceil(box.Bottom / c.cellH))
	for row := max(r0, 0); row <= min(r1, c.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, c.cols-1); col++ {
			px, py := c.ToPixel(col, row)
			if !box.Contains(px, py) {
				continue
			}
			fn(&c.cells[row*c.cols+col], px, py)
		}
	}
}

func (c *Canvas) visible(col, row int) bool {
	if !c.cur.clipped {
		return true
	}
	px, py := c.ToPixel(col, row)
	return c.cur.clip.Contains(px, py)
}

func intersect(a, b core.Box) core.Box {
	return core.Box{
		Left:   math.Max(a.Left, b.Left),
		Top:    math.Max(a.Top, b.Top),
		Right:  math.Min(a.Right, b.Right),
		Bottom: math.Min(a.Bottom, b.Bottom),
	}
}

func (c *Canvas) BeginPath() { c.path = nil }

func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, []core.Point{{X: x, Y: y}})
}

func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.path) - 1
	c.path[last] = append(c.path[last], core.Point{X: x, Y: y})
}

// ArcTo adds a line to the first tangent point and an arc of the given
// radius tangent to both the segment current→(x1,y1) and (x1,y1)→(x2,y2).
func (c *Canvas) ArcTo(x1, y1, x2, y2, r float64) {
	if len(c.path) == 0 {
		c.MoveTo(x1, y1)
		return
	}
	sub := c.path[len(c.path)-1]
	p0 := sub[len(sub)-1]
	v1x, v1y := p0.X-x1, p0.Y-y1
	v2x, v2y := x2-x1, y2-y1
	l1, l2 := math.Hypot(v1x, v1y), math.Hypot(v2x, v2y)
	if r <= 0 || l1 == 0 || l2 == 0 {
		c.LineTo(x1, y1)
		return
	}
	v1x, v1y = v1x/l1, v1y/l1
	v2x, v2y = v2x/l2, v2y/l2
	theta := math.Acos(math.Max(-1, math.Min(1, v1x*v2x+v1y*v2y)))
	if theta < 1e-6 || math.Pi-theta < 1e-6 {
		c.LineTo(x1, y1)
		return
	}

	dist := r / math.Tan(theta/2)
	t1 := core.Point{X: x1 + v1x*dist, Y: y1 + v1y*dist}
	t2 := core.Point{X: x1 + v2x*dist, Y: y1 + v2y*dist}
	bx, by := v1x+v2x, v1y+v2y
	bl := math.Hypot(bx, by)
	h := r / math.Sin(theta/2)
	cx, cy := x1+bx/bl*h, y1+by/bl*h

	a0 := math.Atan2(t1.Y-cy, t1.X-cx)
	a1 := math.Atan2(t2.Y-cy, t2.X-cx)
	sweep := a1 - a0
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}
	c.LineTo(t1.X, t1.Y)
	for i := 1; i < arcSegments; i++ {
		a := a0 + sweep*float64(i)/arcSegments
		c.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	c.LineTo(t2.X, t2.Y)
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	last := len(c.path) - 1
	sub := c.path[last]
	if len(sub) > 1 && sub[0] != sub[len(sub)-1] {
		c.path[last] = append(sub, sub[0])
	}
}

func (c *Canvas) SetFillColor(col core.Color)     { c.cur.fill = col }
func (c *Canvas) SetStrokeColor(col core.Color)   { c.cur.stroke = col }
func (c *Canvas) SetLineWidth(w float64)          { c.cur.lineWidth = w }
func (c *Canvas) SetShadow(s core.Shadow)         { c.cur.shadow = s }
func (c *Canvas) SetFont(f core.Font)             { c.cur.font = f }
func (c *Canvas) SetTextBaseline(b core.Baseline) { c.cur.baseline = b }

func (c *Canvas) Save() { c.states = append(c.states, c.cur) }

func (c *Canvas) Restore() {
	if n := len(c.states); n > 0 {
		c.cur = c.states[n-1]
		c.states = c.states[:n-1]
	}
}

func (c *Canvas) bounds() (core.Box, bool) {
	box := core.Box{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	found := false
	for _, sub := range c.path {
		for _, p := range sub {
			box.Left = math.Min(box.Left, p.X)
			box.Top = math.Min(box.Top, p.Y)
			box.Right = math.Max(box.Right, p.X)
			box.Bottom = math.Max(box.Bottom, p.Y)
			found = true
		}
	}
	return box, found
}

// inside applies the even-odd rule over every subpath, each implicitly
// closed.
func (c *Canvas) inside(x, y float64) bool {
	in := false
	for _, sub := range c.path {
		n := len(sub)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := sub[i], sub[j]
			if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
				in = !in
			}
		}
	}
	return in
}

// Fill paints the current path's interior. A visible shadow is painted
// first at its offset; blur has no terminal equivalent and is ignored.
func (c *Canvas) Fill() {
	box, ok := c.bounds()
	if !ok {
		return
	}
	if sh := c.cur.shadow; sh.Visible() {
		shifted := core.Box{
			Left:   box.Left + sh.OffsetX,
			Top:    box.Top + sh.OffsetY,
			Right:  box.Right + sh.OffsetX,
			Bottom: box.Bottom + sh.OffsetY,
		}
		c.eachCell(shifted, func(cl *cell, px, py float64) {
			if c.inside(px-sh.OffsetX, py-sh.OffsetY) {
				cl.bg = sh.Color.Over(cl.bg)
			}
		})
	}
	if c.cur.fill.IsTransparent() {
		return
	}
	c.eachCell(box, func(cl *cell, px, py float64) {
		if c.inside(px, py) {
			cl.bg = c.cur.fill.Over(cl.bg)
		}
	})
}

// Stroke draws every segment of the current path with box-drawing glyphs.
func (c *Canvas) Stroke() {
	if c.cur.stroke.IsTransparent() || c.cur.lineWidth <= 0 {
		return
	}
	step := math.Min(c.cellW, c.cellH) / 2
	for _, sub := range c.path {
		for i := 1; i < len(sub); i++ {
			c.strokeSegment(sub[i-1], sub[i], step)
		}
	}
}

func (c *Canvas) strokeSegment(a, b core.Point, step float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	glyph := '─'
	if math.Abs(dy) > math.Abs(dx) {
		glyph = '│'
	}
	n := int(math.Ceil(math.Hypot(dx, dy)/step)) + 1
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		col := int(math.Floor((a.X + dx*t) / c.cellW))
		row := int(math.Floor((a.Y + dy*t) / c.cellH))
		cl := c.at(col, row)
		if cl == nil || cl.wideTail || !c.visible(col, row) {
			continue
		}
		cl.ch, cl.comb = glyph, nil
		cl.fg = c.cur.stroke
	}
}

// Clip narrows the clip region to the bounding box of the current path.
func (c *Canvas) Clip() {
	box, ok := c.bounds()
	if !ok {
		return
	}
	if c.cur.clipped {
		box = intersect(box, c.cur.clip)
	}
	c.cur.clip = box
	c.cur.clipped = true
}

// MeasureText returns the pixel width of s in terminal cells.
func (c *Canvas) MeasureText(s string) float64 {
	return float64(runewidth.StringWidth(s)) * c.cellW
}

// FillText writes s starting at the cell nearest (x, y), with y interpreted
// per the current baseline.
func (c *Canvas) FillText(s string, x, y float64) {
	if c.cur.fill.IsTransparent() {
		return
	}
	size := c.cur.font.Size
	if size <= 0 {
		size = c.cellH
	}
	switch c.cur.baseline {
	case core.BaselineMiddle:
		y -= size / 2
	case core.BaselineAlphabetic:
		y -= size * 0.8
	case core.BaselineBottom:
		y -= size
	}
	col := int(math.Floor(x/c.cellW + 0.5))
	row := int(math.Floor(y/c.cellH + 0.5))

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Runes()
		w := runewidth.StringWidth(g.Str())
		if w <= 0 {
			continue
		}
		if cl := c.at(col, row); cl != nil && c.visible(col, row) {
			cl.ch, cl.comb = cluster[0], append([]rune(nil), cluster[1:]...)
			cl.fg = c.cur.fill
			cl.wideTail = false
			if w > 1 {
				if tail := c.at(col+1, row); tail != nil {
					tail.ch, tail.comb, tail.wideTail = ' ', nil, true
				}
			}
		}
		col += w
	}
}

// Flush copies the grid to the screen and shows it.
func (c *Canvas) Flush() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := &c.cells[row*c.cols+col]
			if cl.wideTail {
				continue
			}
			c.scr.SetContent(col, row, cl.ch, cl.comb, styleOf(cl))
		}
	}
	c.scr.Show()
}

func styleOf(cl *cell) tcell.Style {
	st := tcell.StyleDefault
	if !cl.fg.IsTransparent() {
		st = st.Foreground(toTcell(cl.fg))
	}
	if !cl.bg.IsTransparent() {
		st = st.Background(toTcell(cl.bg))
	}
	return st
}

func toTcell(col core.Color) tcell.Color {
	r, g, b := col.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
