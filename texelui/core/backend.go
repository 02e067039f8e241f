package core

// Baseline selects the vertical anchor FillText positions glyphs against.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineAlphabetic
	BaselineBottom
)

// Font describes how widget text is measured and drawn.
type Font struct {
	Size   float64
	Color  Color
	Family string
}

// Shadow is applied to fills while set on a backend. The zero value draws
// no shadow.
type Shadow struct {
	Color   Color
	OffsetX float64
	OffsetY float64
	Blur    float64
}

// Visible reports whether the shadow would leave any mark.
func (s Shadow) Visible() bool {
	if s.Color.IsTransparent() {
		return false
	}
	return s.OffsetX != 0 || s.OffsetY != 0 || s.Blur > 0
}

// Backend is the 2D drawing surface widgets render into. Coordinates are
// pixels relative to the surface's top-left corner. Path calls build a single
// current path which Fill, Stroke and Clip consume without resetting it.
type Backend interface {
	Size() (w, h float64)
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// ArcTo adds a circular arc of radius r tangent to the lines from the
	// current point to (x1,y1) and from (x1,y1) to (x2,y2).
	ArcTo(x1, y1, x2, y2, r float64)
	Rect(x, y, w, h float64)
	ClosePath()

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetShadow(s Shadow)
	Fill()
	Stroke()

	// Clip intersects the clip region with the current path. Save and
	// Restore scope it together with every other drawing state.
	Clip()
	Save()
	Restore()

	SetFont(f Font)
	SetTextBaseline(b Baseline)
	MeasureText(s string) float64
	FillText(s string, x, y float64)
}

// Flusher is implemented by backends that buffer a frame and need an
// explicit present step once the surface has finished drawing.
type Flusher interface {
	Flush()
}
