package core

import (
	"context"
	"sort"
	"time"
)

const (
	defaultFPS        = 30
	defaultBlinkTimes = 2
	minFrameInterval  = time.Millisecond
)

// Surface owns a set of widgets drawn onto one backend. It routes host
// input to them by z-order, tracks hover and focus, and owns the caret of
// the focused editable widget.
//
// A Surface is not safe for concurrent use: input and scheduled draws must
// arrive on one goroutine.
type Surface struct {
	be        Backend
	scheduler Scheduler
	widgets   []*Widget // sorted ascending by index when sorted is set
	sorted    bool
	running   bool
	overed    bool
	fps       int
	blink     int
	originX   float64
	originY   float64
	cursor    *Cursor
	overlay   func(Backend)
	handlers  [numEventKinds]Handler
}

var _ Router = (*Surface)(nil)

// NewSurface binds a surface to be and, when input is non-nil, registers it
// as the router for input's events.
func NewSurface(be Backend, input InputSource) *Surface {
	s := &Surface{
		be:        be,
		scheduler: TickerScheduler{},
		fps:       defaultFPS,
		blink:     defaultBlinkTimes,
	}
	if input != nil {
		input.Route(s)
	}
	return s
}

// SetFPS sets the redraw and blink rate. Non-positive values mean 30. It
// only affects loops started after the call.
func (s *Surface) SetFPS(fps int) {
	if fps <= 0 {
		fps = defaultFPS
	}
	s.fps = fps
}

func (s *Surface) FPS() int { return s.fps }

// SetBlinkTimes sets how many blink phases happen per second.
func (s *Surface) SetBlinkTimes(times int) {
	if times <= 0 {
		times = defaultBlinkTimes
	}
	s.blink = times
	if s.cursor != nil {
		s.cursor.Times = times
	}
}

// SetOrigin records where the surface sits inside its host. Pointer events
// carry host coordinates and are translated by this offset.
func (s *Surface) SetOrigin(x, y float64) { s.originX, s.originY = x, y }

// SetScheduler replaces the timer used by InitDraw.
func (s *Surface) SetScheduler(sch Scheduler) {
	if sch == nil {
		sch = TickerScheduler{}
	}
	s.scheduler = sch
}

// SetOverlay installs a hook run after widgets and caret on every frame.
func (s *Surface) SetOverlay(fn func(Backend)) { s.overlay = fn }

// On registers a surface-level handler for kind, run after the event was
// routed. The widget argument is the target, or nil when no widget took the
// event. Pointer over/out, focus and blur are widget-only kinds.
func (s *Surface) On(kind EventKind, h Handler) {
	if kind < 0 || kind >= numEventKinds {
		return
	}
	s.handlers[kind] = h
}

func (s *Surface) emit(kind EventKind, w *Widget, ev Event) {
	ev.Kind = kind
	if h := s.handlers[kind]; h != nil {
		h(w, ev)
	}
}

func (s *Surface) Backend() Backend { return s.be }
func (s *Surface) Running() bool    { return s.running }

// Cursor returns a copy of the caret state and whether a caret exists.
func (s *Surface) Cursor() (Cursor, bool) {
	if s.cursor == nil {
		return Cursor{}, false
	}
	return *s.cursor, true
}

// AddInput creates a widget, adds it on top of its z-index band and returns it.
func (s *Surface) AddInput(x, y, width, height float64) *Widget {
	w := NewWidget(x, y, width, height)
	s.Add(w)
	return w
}

// Add appends w and schedules a re-sort before the next draw.
func (s *Surface) Add(w *Widget) {
	if w == nil {
		return
	}
	s.widgets = append(s.widgets, w)
	s.sorted = false
}

// RemoveInput removes w. Removing the focused editable widget drops the
// caret. It reports whether w was found.
func (s *Surface) RemoveInput(w *Widget) bool {
	for i, cand := range s.widgets {
		if cand != w {
			continue
		}
		s.widgets = append(s.widgets[:i], s.widgets[i+1:]...)
		if w.focused {
			w.focused = false
			s.cursor = nil
		}
		w.hovered = false
		return true
	}
	return false
}

// Widgets returns the widgets in their current order.
func (s *Surface) Widgets() []*Widget {
	return append([]*Widget(nil), s.widgets...)
}

// InitDraw starts drawing: one frame now and one every 1000/fps ms until
// ctx ends. Calling it twice schedules two loops.
func (s *Surface) InitDraw(ctx context.Context) {
	s.running = true
	s.Draw()
	s.scheduler.Every(ctx, s.FrameInterval(), s.Draw)
}

// FrameInterval is the delay between scheduled frames, 1000/fps ms and
// never less than a millisecond.
func (s *Surface) FrameInterval() time.Duration {
	interval := time.Second / time.Duration(s.fps)
	if interval < minFrameInterval {
		interval = minFrameInterval
	}
	return interval
}

// Resume re-enables drawing for an already scheduled loop.
func (s *Surface) Resume() { s.running = true }

// Stop turns scheduled frames into no-ops. The timer keeps running.
func (s *Surface) Stop() { s.running = false }

func (s *Surface) ensureSorted() {
	if s.sorted {
		return
	}
	sort.SliceStable(s.widgets, func(i, j int) bool {
		return s.widgets[i].index < s.widgets[j].index
	})
	s.sorted = true
}

// Draw renders one frame back to front and advances the caret blink.
func (s *Surface) Draw() {
	if !s.running {
		return
	}
	s.ensureSorted()
	w, h := s.be.Size()
	s.be.ClearRect(0, 0, w, h)
	for _, wd := range s.widgets {
		wd.Draw(s.be)
	}
	if s.cursor != nil {
		s.cursor.tick(s.fps)
	}
	s.DrawCursor()
	if s.overlay != nil {
		s.overlay(s.be)
	}
	if f, ok := s.be.(Flusher); ok {
		f.Flush()
	}
}

// DrawCursor draws the caret on the topmost focused widget when it is in
// the visible blink phase.
func (s *Surface) DrawCursor() {
	if !s.running || s.cursor == nil || !s.cursor.Display || !s.cursor.View {
		return
	}
	for i := len(s.widgets) - 1; i >= 0; i-- {
		if wd := s.widgets[i]; wd.focused {
			wd.DrawCursor(s.be, s.cursor)
			return
		}
	}
}

// PointerMove updates hover state topmost first. Only the first widget hit
// is hovered; everything else is marked out.
func (s *Surface) PointerMove(ev Event) {
	s.ensureSorted()
	s.overed = false
	var target *Widget
	for i := len(s.widgets) - 1; i >= 0; i-- {
		wd := s.widgets[i]
		wd.wasHovered = wd.hovered
		if !s.overed && wd.Contains(ev.X, ev.Y, s.originX, s.originY) {
			s.overed = true
			target = wd
			wd.hovered = true
			if !wd.wasHovered {
				wd.pointerOver(ev)
			}
			wd.PointerMove(ev)
			continue
		}
		wd.hovered = false
		if wd.wasHovered {
			wd.pointerOut(ev)
		}
	}
	s.emit(EventPointerMove, target, ev)
}

// Click moves focus to the topmost hovered widget and forwards the click to
// it. Every other widget loses focus first, so the caret handed to the new
// target is never reset by the old one.
func (s *Surface) Click(ev Event) {
	s.ensureSorted()
	var target *Widget
	for i := len(s.widgets) - 1; i >= 0; i-- {
		wd := s.widgets[i]
		wd.wasFocused = wd.focused
		if target == nil && wd.hovered {
			target = wd
			continue
		}
		wd.focused = false
		if wd.wasFocused {
			if s.cursor != nil {
				s.cursor.Display = false
				s.cursor.Counter = 0
			}
			wd.Blur(s.cursor, ev)
			s.cursor = nil
		}
	}
	if target == nil {
		s.emit(EventClick, nil, ev)
		return
	}

	target.focused = true
	if !target.wasFocused {
		target.Focus(ev)
	}
	switch {
	case !target.editable:
		s.cursor = nil
	case s.cursor == nil:
		s.cursor = newCursor(s.blink)
	}
	target.Click(s.be, s.cursor, s.originX, s.originY, ev)
	s.emit(EventClick, target, ev)
}

// PointerDown forwards to the hovered widget.
func (s *Surface) PointerDown(ev Event) {
	s.emit(EventPointerDown, s.forward(hoveredWidget, ev, (*Widget).PointerDown), ev)
}

// PointerUp forwards to the hovered widget.
func (s *Surface) PointerUp(ev Event) {
	s.emit(EventPointerUp, s.forward(hoveredWidget, ev, (*Widget).PointerUp), ev)
}

// KeyDown forwards navigation and deletion keys to the focused widget.
func (s *Surface) KeyDown(ev Event) {
	target := s.forward(focusedWidget, ev, func(w *Widget, ev Event) { w.KeyDown(s.cursor, ev) })
	s.emit(EventKeyDown, target, ev)
}

func (s *Surface) KeyUp(ev Event) {
	s.emit(EventKeyUp, s.forward(focusedWidget, ev, (*Widget).KeyUp), ev)
}

// KeyPress forwards typed characters to the focused widget.
func (s *Surface) KeyPress(ev Event) {
	target := s.forward(focusedWidget, ev, func(w *Widget, ev Event) { w.KeyPress(s.cursor, ev) })
	s.emit(EventKeyPress, target, ev)
}

func hoveredWidget(w *Widget) bool { return w.hovered }
func focusedWidget(w *Widget) bool { return w.focused }

// forward calls fn on every widget matching sel, topmost first, and returns
// the topmost match.
func (s *Surface) forward(sel func(*Widget) bool, ev Event, fn func(*Widget, Event)) *Widget {
	var top *Widget
	for i := len(s.widgets) - 1; i >= 0; i-- {
		wd := s.widgets[i]
		if !sel(wd) {
			continue
		}
		if top == nil {
			top = wd
		}
		fn(wd, ev)
	}
	return top
}
