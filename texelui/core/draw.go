package core

// caretWidth is the stroke width of the text caret.
const caretWidth = 2

// Draw renders the border, background, shadow and text of w.
func (w *Widget) Draw(be Backend) {
	if !w.visible {
		return
	}

	w.outline(be)
	be.SetStrokeColor(w.border.Color)
	be.SetLineWidth(w.border.Size)
	be.SetFillColor(w.bg)
	be.SetShadow(w.shadow)
	be.Fill()
	// The shadow belongs to the fill only.
	be.SetShadow(Shadow{})
	be.Stroke()

	cb := w.ContentBox()
	be.Save()
	be.BeginPath()
	be.Rect(cb.Left, cb.Top, cb.Width(), cb.Height())
	be.ClosePath()
	be.Clip()

	be.SetFont(w.font)
	be.SetFillColor(w.font.Color)
	be.SetTextBaseline(BaselineTop)
	offset := w.textOffset()
	for i, line := range w.lines {
		be.FillText(line, cb.Left, cb.Top+float64(i)*w.font.Size+offset)
	}
	be.Restore()
}

// textOffset is the vertical shift applied to every line. Editable text is
// top aligned; static text is roughly centred with a quarter-size nudge.
func (w *Widget) textOffset() float64 {
	if w.editable {
		return 0
	}
	size := w.font.Size
	return w.height/2 - float64(len(w.lines))*size/2 - size/4
}

// outline builds the rounded rectangle path: four edges joined by four
// arcs, clockwise from the top-left corner.
func (w *Widget) outline(be Backend) {
	starts := w.ArcStarts()
	ends := w.ArcEnds()
	corners := w.Corners()
	r := w.border.Radius

	be.BeginPath()
	be.MoveTo(starts[0].X, starts[0].Y)
	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		be.LineTo(ends[i].X, ends[i].Y)
		be.ArcTo(corners[next].X, corners[next].Y, starts[next].X, starts[next].Y, r[next])
	}
	be.ClosePath()
}

// DrawCursor strokes the caret for cur. It assumes the top-aligned layout
// of editable widgets.
func (w *Widget) DrawCursor(be Backend, cur *Cursor) {
	if cur == nil || cur.Line < 0 || cur.Line >= len(w.lines) {
		return
	}
	cb := w.ContentBox()
	be.SetFont(w.font)
	x := cb.Left + be.MeasureText(graphemePrefix(w.lines[cur.Line], cur.Col))
	y := cb.Top + float64(cur.Line)*w.font.Size

	be.BeginPath()
	be.MoveTo(x, y)
	be.LineTo(x, y+w.font.Size)
	be.SetLineWidth(caretWidth)
	be.SetStrokeColor(w.caret)
	be.Stroke()
	be.ClosePath()
}
