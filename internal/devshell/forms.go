package devshell

import (
	"fmt"
	"strings"

	"github.com/framegrace/texelform/texelui/core"
)

var registry = map[string]Builder{
	"login": buildLogin,
	"notes": buildNotes,
}

// label adds a static, frameless text widget.
func label(s *core.Surface, x, y, w, h float64, text string) *core.Widget {
	l := s.AddInput(x, y, w, h)
	l.SetBorder(1, "transparent", 0)
	l.SetBackground("transparent")
	l.SetValue(text)
	return l
}

func field(sess *Session, id string, x, y, w, h float64) *core.Widget {
	f := sess.Surface.AddInput(x, y, w, h)
	sess.Theme.Apply(f)
	f.SetID(id)
	f.SetEditable(true)
	f.SetIndex(1)
	return f
}

func buildLogin(sess *Session, args []string) error {
	s := sess.Surface
	cw, ch := sess.Theme.CellSize()

	label(s, cw, ch, 10*cw, 2*ch, "Name")
	name := field(sess, "name", 12*cw, ch, 30*cw, 2*ch)
	label(s, cw, 4*ch, 10*cw, 2*ch, "Email")
	field(sess, "email", 12*cw, 4*ch, 30*cw, 2*ch)
	status := label(s, cw, 7*ch, 60*cw, 2*ch, "Click a field to start typing. Ctrl-C quits.")

	if len(args) > 0 {
		name.SetValue(strings.Join(args, " "))
	}
	for _, w := range s.Widgets() {
		if !w.Editable() {
			continue
		}
		w.On(core.EventFocus, func(fw *core.Widget, _ core.Event) {
			status.SetValue(fmt.Sprintf("Editing %s", fw.ID()))
		})
		w.On(core.EventBlur, func(fw *core.Widget, _ core.Event) {
			status.SetValue(fmt.Sprintf("%s = %q", fw.ID(), fw.Value()))
		})
	}
	return nil
}

func buildNotes(sess *Session, args []string) error {
	s := sess.Surface
	cw, ch := sess.Theme.CellSize()
	bw, bh := s.Backend().Size()

	label(s, cw, 0, bw-2*cw, ch, "Notes. Arrows move, Backspace joins lines. Ctrl-C quits.")
	notes := field(sess, "notes", cw, 2*ch, bw-2*cw, bh-3*ch)
	if len(args) > 0 {
		notes.SetValue(strings.Join(args, "\n"))
	}
	return nil
}
