package core

import (
	"math"
	"strings"
)

const (
	defaultFontSize   = 14
	defaultFontFamily = "Arial"
	defaultBorderSize = 2
)

// Border is the stroke drawn around a widget. Radius holds one entry per
// corner, clockwise from top-left.
type Border struct {
	Color  Color
	Size   float64
	Radius Quad
}

// Widget is a rectangular, styled and optionally editable text region.
// Width and height are fixed at construction.
type Widget struct {
	x, y          float64
	width, height float64

	id       string
	padding  Quad
	border   Border
	shadow   Shadow
	bg       Color
	font     Font
	caret    Color
	index    int
	lines    []string
	editable bool
	visible  bool

	hovered, wasHovered bool
	focused, wasFocused bool

	handlers [numEventKinds]Handler
}

// NewWidget creates a visible, static widget holding one empty line.
func NewWidget(x, y, width, height float64) *Widget {
	return &Widget{
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		padding: NormalizeQuad(0, 1),
		border: Border{
			Color:  Black,
			Size:   defaultBorderSize,
			Radius: NormalizeQuad(math.Min(width/2, height/2), 1),
		},
		bg:      White,
		font:    Font{Size: defaultFontSize, Color: Black, Family: defaultFontFamily},
		caret:   Black,
		lines:   []string{""},
		visible: true,
	}
}

// On replaces the handler for kind. A nil handler restores the no-op.
func (w *Widget) On(kind EventKind, h Handler) {
	if kind < 0 || kind >= numEventKinds {
		return
	}
	w.handlers[kind] = h
}

func (w *Widget) emit(kind EventKind, ev Event) {
	ev.Kind = kind
	if h := w.handlers[kind]; h != nil {
		h(w, ev)
	}
}

// SetBorder sets the stroke. A non-positive size means 2 and a malformed
// color means black; radii follow NormalizeQuad, capped at half the smaller
// dimension.
func (w *Widget) SetBorder(size float64, color string, radius ...float64) {
	if size <= 0 || math.IsNaN(size) {
		size = defaultBorderSize
	}
	w.border = Border{
		Color:  ParseColor(color, Black),
		Size:   size,
		Radius: NormalizeQuad(math.Min(w.width/2, w.height/2), radius...),
	}
}

// SetPadding sets the inner spacing, top, right, bottom, left.
func (w *Widget) SetPadding(values ...float64) {
	w.padding = NormalizeQuad(0, values...)
}

func (w *Widget) SetFont(size float64, color, family string) {
	if size <= 0 || math.IsNaN(size) {
		size = defaultFontSize
	}
	if family == "" {
		family = defaultFontFamily
	}
	w.font = Font{Size: size, Color: ParseColor(color, Black), Family: family}
}

func (w *Widget) SetShadow(color string, x, y, blur float64) {
	if math.IsNaN(x) {
		x = 0
	}
	if math.IsNaN(y) {
		y = 0
	}
	if blur < 0 || math.IsNaN(blur) {
		blur = 0
	}
	w.shadow = Shadow{Color: ParseColor(color, Black), OffsetX: x, OffsetY: y, Blur: blur}
}

func (w *Widget) SetBackground(color string) { w.bg = ParseColor(color, White) }
func (w *Widget) SetCaretColor(color string) { w.caret = ParseColor(color, Black) }

// SetValue replaces the content; lines are separated by "\n".
func (w *Widget) SetValue(value string) { w.lines = strings.Split(value, "\n") }

// Value joins the lines back into one string.
func (w *Widget) Value() string { return strings.Join(w.lines, "\n") }

// Lines returns a copy of the text lines.
func (w *Widget) Lines() []string { return append([]string(nil), w.lines...) }

func (w *Widget) SetID(id string)               { w.id = id }
func (w *Widget) ID() string                    { return w.id }
func (w *Widget) SetIndex(index int)            { w.index = index }
func (w *Widget) Index() int                    { return w.index }
func (w *Widget) SetEditable(e bool)            { w.editable = e }
func (w *Widget) Editable() bool                { return w.editable }
func (w *Widget) SetVisible(v bool)             { w.visible = v }
func (w *Widget) Visible() bool                 { return w.visible }
func (w *Widget) Hovered() bool                 { return w.hovered }
func (w *Widget) Focused() bool                 { return w.focused }
func (w *Widget) Position() (x, y float64)      { return w.x, w.y }
func (w *Widget) Size() (width, height float64) { return w.width, w.height }
func (w *Widget) Padding() Quad                 { return w.padding }
func (w *Widget) Border() Border                { return w.border }
func (w *Widget) Shadow() Shadow                { return w.shadow }
func (w *Widget) Background() Color             { return w.bg }
func (w *Widget) Font() Font                    { return w.font }

// Focus fires the focus handler. The surface has already marked w focused.
func (w *Widget) Focus(ev Event) {
	logger.Printf("focus %q", w.id)
	w.emit(EventFocus, ev)
}

// Blur resets cur when w is editable, then fires the blur handler.
func (w *Widget) Blur(cur *Cursor, ev Event) {
	logger.Printf("blur %q", w.id)
	if w.editable && cur != nil {
		cur.Reset()
	}
	w.emit(EventBlur, ev)
}

func (w *Widget) PointerMove(ev Event) { w.emit(EventPointerMove, ev) }
func (w *Widget) PointerDown(ev Event) { w.emit(EventPointerDown, ev) }
func (w *Widget) PointerUp(ev Event)   { w.emit(EventPointerUp, ev) }
func (w *Widget) KeyUp(ev Event)       { w.emit(EventKeyUp, ev) }

func (w *Widget) pointerOver(ev Event) {
	logger.Printf("over %q", w.id)
	w.emit(EventPointerOver, ev)
}

func (w *Widget) pointerOut(ev Event) {
	logger.Printf("out %q", w.id)
	w.emit(EventPointerOut, ev)
}
