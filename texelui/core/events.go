package core

import (
	"context"
	"time"
)

// EventKind names the interaction a handler is registered for.
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventPointerOver
	EventPointerOut
	EventPointerDown
	EventPointerUp
	EventKeyDown
	EventKeyUp
	EventKeyPress
	EventFocus
	EventBlur
	EventClick

	numEventKinds
)

var eventKindNames = [...]string{
	EventPointerMove: "pointermove",
	EventPointerOver: "pointerover",
	EventPointerOut:  "pointerout",
	EventPointerDown: "pointerdown",
	EventPointerUp:   "pointerup",
	EventKeyDown:     "keydown",
	EventKeyUp:       "keyup",
	EventKeyPress:    "keypress",
	EventFocus:       "focus",
	EventBlur:        "blur",
	EventClick:       "click",
}

func (k EventKind) String() string {
	if k < 0 || k >= numEventKinds {
		return "unknown"
	}
	return eventKindNames[k]
}

// KeyCode is a numeric key identifier using the DOM keyCode numbering.
type KeyCode int

const (
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEnter     KeyCode = 13
	KeyEscape    KeyCode = 27
	KeyEnd       KeyCode = 35
	KeyHome      KeyCode = 36
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
	KeyDelete    KeyCode = 46
)

// Event carries host input. X and Y are absolute host coordinates; the
// surface subtracts its origin before hit testing. Key is set for key down
// and up, Char for key press.
type Event struct {
	Kind EventKind
	X, Y float64
	Key  KeyCode
	Char rune
}

// Handler reacts to an event delivered to w.
type Handler func(w *Widget, ev Event)

// Router receives host input. Surface implements it.
type Router interface {
	PointerMove(ev Event)
	Click(ev Event)
	PointerDown(ev Event)
	PointerUp(ev Event)
	KeyDown(ev Event)
	KeyUp(ev Event)
	KeyPress(ev Event)
}

// InputSource delivers host input to exactly one router.
type InputSource interface {
	Route(r Router)
}

// Scheduler runs fn every interval until ctx ends. Implementations must call
// fn on the same goroutine that delivers input to the surface.
type Scheduler interface {
	Every(ctx context.Context, interval time.Duration, fn func())
}

// TickerScheduler runs ticks on a dedicated goroutine. Use it only when no
// input is delivered concurrently, e.g. for headless rendering.
type TickerScheduler struct{}

func (TickerScheduler) Every(ctx context.Context, interval time.Duration, fn func()) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				fn()
			}
		}
	}()
}
