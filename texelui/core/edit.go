package core

import "unicode"

// Click fires the click handler, hides the caret and, for editable widgets,
// moves cur to the character boundary nearest the event point.
func (w *Widget) Click(be Backend, cur *Cursor, offsetX, offsetY float64, ev Event) {
	logger.Printf("click %q", w.id)
	w.emit(EventClick, ev)
	if cur == nil {
		return
	}
	cur.Display = false
	if !w.editable || len(w.lines) == 0 {
		return
	}

	x := ev.X - offsetX
	y := ev.Y - offsetY
	cb := w.ContentBox()
	size := w.font.Size
	be.SetFont(w.font)
	for i, line := range w.lines {
		top := cb.Top + float64(i)*size
		if top <= y && y <= top+size {
			cur.place(i, w.columnAt(be, line, cb.Left, x))
			return
		}
	}
	last := len(w.lines) - 1
	cur.place(last, graphemeCount(w.lines[last]))
}

// columnAt measures line one cluster at a time from left and returns the
// boundary nearest x.
func (w *Widget) columnAt(be Backend, line string, left, x float64) int {
	if x < left {
		return 0
	}
	clusters := graphemes(line)
	prefix := ""
	width := left
	for col, g := range clusters {
		prefix += g
		prev := width
		width = left + be.MeasureText(prefix)
		if prev <= x && x <= width {
			if x < prev+(width-prev)/2 {
				return col
			}
			return col + 1
		}
	}
	return len(clusters)
}

// KeyDown handles caret navigation and backspace, then fires the key-down
// handler. Delete is not handled. Text only changes when w is editable and
// cur is present.
func (w *Widget) KeyDown(cur *Cursor, ev Event) {
	if w.editable && cur != nil && len(w.lines) > 0 {
		cur.clamp(w.lines)
		switch ev.Key {
		case KeyLeft:
			w.moveLeft(cur)
		case KeyRight:
			w.moveRight(cur)
		case KeyUp:
			w.moveVertical(cur, -1)
		case KeyDown:
			w.moveVertical(cur, 1)
		case KeyBackspace:
			w.backspace(cur)
		case KeyDelete:
			// Forward delete is intentionally a no-op.
		}
	}
	w.emit(EventKeyDown, ev)
}

func (w *Widget) moveLeft(cur *Cursor) {
	switch {
	case cur.Col > 0:
		cur.Col--
	case cur.Line > 0:
		cur.Line--
		cur.Col = graphemeCount(w.lines[cur.Line])
	}
}

func (w *Widget) moveRight(cur *Cursor) {
	switch {
	case cur.Col < graphemeCount(w.lines[cur.Line]):
		cur.Col++
	case cur.Line < len(w.lines)-1:
		cur.Line++
		cur.Col = 0
	}
}

func (w *Widget) moveVertical(cur *Cursor, delta int) {
	target := cur.Line + delta
	if target < 0 || target >= len(w.lines) {
		return
	}
	cur.Line = target
	if n := graphemeCount(w.lines[target]); cur.Col > n {
		cur.Col = n
	}
}

func (w *Widget) backspace(cur *Cursor) {
	if cur.Col > 0 {
		cur.Col--
		head, tail := graphemeSplit(w.lines[cur.Line], cur.Col)
		_, tail = graphemeSplit(tail, 1)
		w.lines[cur.Line] = head + tail
		return
	}
	if cur.Line == 0 {
		return
	}
	prev := w.lines[cur.Line-1]
	cur.Col = graphemeCount(prev)
	w.lines[cur.Line-1] = prev + w.lines[cur.Line]
	w.lines = append(w.lines[:cur.Line], w.lines[cur.Line+1:]...)
	cur.Line--
}

// KeyPress inserts the typed character at the caret, moves the caret past
// it and fires the key-press handler. Control characters are not inserted.
// A combining mark joins the cluster before the caret, so the caret stays
// in front of the following text.
func (w *Widget) KeyPress(cur *Cursor, ev Event) {
	if w.editable && cur != nil && len(w.lines) > 0 && ev.Char != 0 && !unicode.IsControl(ev.Char) {
		cur.clamp(w.lines)
		head, tail := graphemeSplit(w.lines[cur.Line], cur.Col)
		head += string(ev.Char)
		w.lines[cur.Line] = head + tail
		cur.Col = graphemeCount(head)
		cur.clamp(w.lines)
	}
	w.emit(EventKeyPress, ev)
}
