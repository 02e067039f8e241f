// Package record provides a headless core.Backend that keeps a log of every
// drawing call. Text is measured on a fixed per-cell advance so layouts are
// deterministic.
package record

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelform/texelui/core"
)

// DefaultAdvance is the width in pixels of one text cell.
const DefaultAdvance = 8

// Op is one recorded backend call. Only the fields relevant to Name are set.
type Op struct {
	Name     string
	Args     []float64
	Text     string
	Color    core.Color
	Font     core.Font
	Shadow   core.Shadow
	Baseline core.Baseline
}

// Recorder implements core.Backend and core.Flusher.
type Recorder struct {
	W, H    float64
	Advance float64
	Ops     []Op
	Flushes int

	depth    int
	maxDepth int
}

var (
	_ core.Backend = (*Recorder)(nil)
	_ core.Flusher = (*Recorder)(nil)
)

// New returns a recorder for a w x h surface.
func New(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, Advance: DefaultAdvance}
}

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.add(Op{Name: "clearRect", Args: []float64{x, y, w, h}})
}

func (r *Recorder) BeginPath()          { r.add(Op{Name: "beginPath"}) }
func (r *Recorder) ClosePath()          { r.add(Op{Name: "closePath"}) }
func (r *Recorder) MoveTo(x, y float64) { r.add(Op{Name: "moveTo", Args: []float64{x, y}}) }
func (r *Recorder) LineTo(x, y float64) { r.add(Op{Name: "lineTo", Args: []float64{x, y}}) }

func (r *Recorder) ArcTo(x1, y1, x2, y2, radius float64) {
	r.add(Op{Name: "arcTo", Args: []float64{x1, y1, x2, y2, radius}})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.add(Op{Name: "rect", Args: []float64{x, y, w, h}})
}

func (r *Recorder) SetFillColor(c core.Color)   { r.add(Op{Name: "fillStyle", Color: c}) }
func (r *Recorder) SetStrokeColor(c core.Color) { r.add(Op{Name: "strokeStyle", Color: c}) }
func (r *Recorder) SetLineWidth(w float64)      { r.add(Op{Name: "lineWidth", Args: []float64{w}}) }
func (r *Recorder) SetShadow(s core.Shadow)     { r.add(Op{Name: "shadow", Shadow: s}) }
func (r *Recorder) Fill()                       { r.add(Op{Name: "fill"}) }
func (r *Recorder) Stroke()                     { r.add(Op{Name: "stroke"}) }
func (r *Recorder) Clip()                       { r.add(Op{Name: "clip"}) }

func (r *Recorder) Save() {
	r.depth++
	if r.depth > r.maxDepth {
		r.maxDepth = r.depth
	}
	r.add(Op{Name: "save"})
}

func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.add(Op{Name: "restore"})
}

func (r *Recorder) SetFont(f core.Font)             { r.add(Op{Name: "font", Font: f}) }
func (r *Recorder) SetTextBaseline(b core.Baseline) { r.add(Op{Name: "textBaseline", Baseline: b}) }
func (r *Recorder) FillText(s string, x, y float64) { r.add(Op{Name: "fillText", Text: s, Args: []float64{x, y}}) }
func (r *Recorder) MeasureText(s string) float64    { return float64(runewidth.StringWidth(s)) * r.Advance }
func (r *Recorder) Flush()                          { r.Flushes++ }

// Depth is the current Save nesting; MaxDepth the deepest seen.
func (r *Recorder) Depth() int    { return r.depth }
func (r *Recorder) MaxDepth() int { return r.maxDepth }

// Reset forgets recorded calls but keeps the surface size.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.Flushes = 0
	r.depth = 0
	r.maxDepth = 0
}

// Texts returns the strings passed to FillText, in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Name == "fillText" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded calls named name.
func (r *Recorder) Find(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}
