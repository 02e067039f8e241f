package devshell

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelform/texelui/adapter"
	"github.com/framegrace/texelform/texelui/canvas/tcellcanvas"
	"github.com/framegrace/texelform/texelui/core"
	"github.com/framegrace/texelform/texelui/theme"
)

// Builder adds a form's widgets to the session surface, optionally using
// CLI args.
type Builder func(sess *Session, args []string) error

// Options configure Run.
type Options struct {
	Theme theme.Theme
	Args  []string
	// Started runs on the event goroutine once the form is built and the
	// first frame is drawn.
	Started func(*Session)
}

// Session is a running form. Its methods must be called on the event
// goroutine; use Post from anywhere else.
type Session struct {
	Surface *core.Surface
	Host    *adapter.Host
	Theme   theme.Theme
}

// Post runs fn on the event goroutine.
func (s *Session) Post(fn func()) { s.Host.Post(fn) }

// Restyle applies th to the surface and every editable widget. Static
// widgets keep the look their form gave them.
func (s *Session) Restyle(th theme.Theme) {
	s.Theme = th
	th.ApplySurface(s.Surface)
	for _, w := range s.Surface.Widgets() {
		if w.Editable() {
			th.Apply(w)
		}
	}
	s.Surface.Draw()
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run builds a form and drives it inside a local tcell screen until ctx
// ends or Ctrl-C is pressed.
func Run(ctx context.Context, build Builder, opts Options) error {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()
	screen.EnablePaste()

	cellW, cellH := opts.Theme.CellSize()
	canvas := tcellcanvas.New(screen, cellW, cellH)
	host := adapter.NewHost(screen, cellW, cellH)
	surface := core.NewSurface(canvas, host)
	surface.SetScheduler(host)
	opts.Theme.ApplySurface(surface)

	sess := &Session{Surface: surface, Host: host, Theme: opts.Theme}
	if err := build(sess, opts.Args); err != nil {
		return fmt.Errorf("build form: %w", err)
	}
	host.SetRefresh(surface.Draw)
	host.OnResize(func(cols, rows int) {
		log.Printf("devshell: resized to %dx%d", cols, rows)
		surface.Draw()
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	surface.InitDraw(ctx)
	if opts.Started != nil {
		opts.Started(sess)
	}
	return host.Run(ctx)
}

// RunForm finds a registered form by name and runs it.
func RunForm(ctx context.Context, name string, opts Options) error {
	build, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown form %q", name)
	}
	return Run(ctx, build, opts)
}

// Forms lists the registered form names.
func Forms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
