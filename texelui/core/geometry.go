package core

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle given by its edges.
type Box struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Box) Contains(x, y float64) bool {
	return b.Left <= x && x <= b.Right && b.Top <= y && y <= b.Bottom
}

func (b Box) Width() float64  { return b.Right - b.Left }
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Center returns the middle of b.
func (b Box) Center() Point {
	return Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// cornerCutRadius is the smallest effective radius (corner radius plus half
// the border) for which hit tests honour the rounding.
const cornerCutRadius = 8

// OuterBox is the nominal rectangle grown by half the border width on every
// side, the box the border stroke is centred on.
func (w *Widget) OuterBox() Box {
	half := w.border.Size / 2
	return Box{
		Left:   w.x - half,
		Top:    w.y - half,
		Right:  w.x + half + w.width,
		Bottom: w.y + half + w.height,
	}
}

// ContentBox is the nominal rectangle shrunk by the padding. Text is drawn
// and clipped inside it.
func (w *Widget) ContentBox() Box {
	return Box{
		Left:   w.x + w.padding[3],
		Top:    w.y + w.padding[0],
		Right:  w.x + w.width - w.padding[1],
		Bottom: w.y + w.height - w.padding[2],
	}
}

// Corners returns the outer box corners clockwise from top-left.
func (w *Widget) Corners() [4]Point {
	o := w.OuterBox()
	return [4]Point{
		{X: o.Left, Y: o.Top},
		{X: o.Right, Y: o.Top},
		{X: o.Right, Y: o.Bottom},
		{X: o.Left, Y: o.Bottom},
	}
}

// ArcStarts returns where each straight edge of the rounded outline begins,
// clockwise from the top edge.
func (w *Widget) ArcStarts() [4]Point {
	o := w.OuterBox()
	r := w.border.Radius
	return [4]Point{
		{X: o.Left + r[0], Y: o.Top},
		{X: o.Right, Y: o.Top + r[1]},
		{X: o.Right - r[2], Y: o.Bottom},
		{X: o.Left, Y: o.Bottom - r[3]},
	}
}

// ArcEnds returns where each straight edge of the rounded outline ends and
// the following corner arc begins.
func (w *Widget) ArcEnds() [4]Point {
	o := w.OuterBox()
	r := w.border.Radius
	return [4]Point{
		{X: o.Right - r[1], Y: o.Top},
		{X: o.Right, Y: o.Bottom - r[2]},
		{X: o.Left + r[3], Y: o.Bottom},
		{X: o.Left, Y: o.Top + r[0]},
	}
}

// Contains hit-tests the host point (x, y) after subtracting the surface
// offset. Corners whose effective radius is below 8px count as square.
func (w *Widget) Contains(x, y, offsetX, offsetY float64) bool {
	x -= offsetX
	y -= offsetY
	o := w.OuterBox()
	if !o.Contains(x, y) {
		return false
	}
	half := w.border.Size / 2
	for i, r := range w.border.Radius {
		if r+half < cornerCutRadius {
			continue
		}
		if inCornerCut(o, i, r, x, y) {
			return false
		}
	}
	return true
}

// inCornerCut reports whether (x, y) falls in the region corner i removes
// from the box: beyond the arc centre on both axes and outside the circle.
func inCornerCut(o Box, i int, r, x, y float64) bool {
	var cx, cy float64
	var beyondX, beyondY bool
	switch i {
	case 0:
		cx, cy = o.Left+r, o.Top+r
		beyondX, beyondY = x < cx, y < cy
	case 1:
		cx, cy = o.Right-r, o.Top+r
		beyondX, beyondY = x > cx, y < cy
	case 2:
		cx, cy = o.Right-r, o.Bottom-r
		beyondX, beyondY = x > cx, y > cy
	default:
		cx, cy = o.Left+r, o.Bottom-r
		beyondX, beyondY = x < cx, y > cy
	}
	if !beyondX || !beyondY {
		return false
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy > r*r
}
