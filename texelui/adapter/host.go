// Package adapter connects a core.Surface to a tcell screen.
package adapter

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelform/texelui/core"
)

// Host turns tcell events into surface input and runs scheduled ticks on
// the same goroutine. It implements core.InputSource and core.Scheduler.
type Host struct {
	screen       tcell.Screen
	cellW, cellH float64
	router       core.Router

	buttons tcell.ButtonMask
	inPaste bool

	refresh  func()
	onResize func(cols, rows int)
}

var (
	_ core.InputSource = (*Host)(nil)
	_ core.Scheduler   = (*Host)(nil)
)

var keyCodes = map[tcell.Key]core.KeyCode{
	tcell.KeyBackspace:  core.KeyBackspace,
	tcell.KeyBackspace2: core.KeyBackspace,
	tcell.KeyTab:        core.KeyTab,
	tcell.KeyEnter:      core.KeyEnter,
	tcell.KeyEscape:     core.KeyEscape,
	tcell.KeyEnd:        core.KeyEnd,
	tcell.KeyHome:       core.KeyHome,
	tcell.KeyLeft:       core.KeyLeft,
	tcell.KeyUp:         core.KeyUp,
	tcell.KeyRight:      core.KeyRight,
	tcell.KeyDown:       core.KeyDown,
	tcell.KeyDelete:     core.KeyDelete,
}

// NewHost wraps an initialised screen. Cell sizes convert cell positions to
// surface pixels and should match the canvas drawing to the same screen.
func NewHost(screen tcell.Screen, cellW, cellH float64) *Host {
	return &Host{screen: screen, cellW: cellW, cellH: cellH}
}

func (h *Host) Route(r core.Router) { h.router = r }

// SetRefresh installs fn to run after every handled input event, so edits
// show without waiting for the next tick.
func (h *Host) SetRefresh(fn func()) { h.refresh = fn }

// OnResize installs fn to run when the terminal size changes.
func (h *Host) OnResize(fn func(cols, rows int)) { h.onResize = fn }

// Post queues fn to run on the Run goroutine.
func (h *Host) Post(fn func()) {
	if err := h.screen.PostEvent(tcell.NewEventInterrupt(fn)); err != nil {
		log.Printf("Host: dropped posted event: %v", err)
	}
}

// Every posts fn as an interrupt event every interval until ctx ends.
func (h *Host) Every(ctx context.Context, interval time.Duration, fn func()) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				h.Post(fn)
			}
		}
	}()
}

// Run polls the screen until ctx ends, Ctrl-C is pressed or the screen is
// finalised.
func (h *Host) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			h.Post(nil)
		case <-done:
		}
	}()

	for {
		ev := h.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		if !h.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent dispatches one tcell event. It returns false when the event
// asks the host to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventInterrupt:
		if fn, ok := tev.Data().(func()); ok && fn != nil {
			fn()
		}
		return true
	case *tcell.EventResize:
		h.screen.Sync()
		if h.onResize != nil {
			cols, rows := tev.Size()
			h.onResize(cols, rows)
		}
		return true
	case *tcell.EventPaste:
		h.inPaste = tev.Start()
		return true
	case *tcell.EventKey:
		if tev.Key() == tcell.KeyCtrlC {
			return false
		}
		h.handleKey(tev)
	case *tcell.EventMouse:
		h.handleMouse(tev)
	default:
		return true
	}
	if h.refresh != nil {
		h.refresh()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	if h.router == nil {
		return
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if h.inPaste {
			// Pasted text is inserted as typed characters only.
			h.router.KeyPress(core.Event{Char: r})
			return
		}
		code := runeKeyCode(r)
		h.router.KeyDown(core.Event{Key: code})
		h.router.KeyPress(core.Event{Char: r})
		h.router.KeyUp(core.Event{Key: code})
		return
	}
	if h.inPaste {
		return
	}
	code, ok := keyCodes[ev.Key()]
	if !ok {
		return
	}
	h.router.KeyDown(core.Event{Key: code})
	h.router.KeyUp(core.Event{Key: code})
}

// runeKeyCode maps letters, digits and space to their key codes. Other
// characters get 0 so they never alias navigation keys.
func runeKeyCode(r rune) core.KeyCode {
	switch {
	case r >= 'a' && r <= 'z':
		return core.KeyCode(r - 'a' + 'A')
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		return core.KeyCode(r)
	}
	return 0
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	if h.router == nil {
		return
	}
	col, row := ev.Position()
	pe := core.Event{
		X: (float64(col) + 0.5) * h.cellW,
		Y: (float64(row) + 0.5) * h.cellH,
	}
	h.router.PointerMove(pe)

	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := h.buttons&tcell.Button1 != 0
	h.buttons = ev.Buttons()
	switch {
	case pressed && !wasPressed:
		h.router.PointerDown(pe)
	case !pressed && wasPressed:
		h.router.PointerUp(pe)
		h.router.Click(pe)
	}
}
