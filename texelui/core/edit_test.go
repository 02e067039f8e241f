package core_test

import (
	"reflect"
	"testing"

	"github.com/framegrace/texelform/texelui/canvas/record"
	"github.com/framegrace/texelform/texelui/core"
)

func newEditable(value string) *core.Widget {
	w := core.NewWidget(0, 0, 200, 60)
	w.SetEditable(true)
	w.SetValue(value)
	return w
}

func press(w *core.Widget, cur *core.Cursor, keys ...core.KeyCode) {
	for _, k := range keys {
		w.KeyDown(cur, core.Event{Key: k})
	}
}

func typeText(w *core.Widget, cur *core.Cursor, s string) {
	for _, r := range s {
		w.KeyPress(cur, core.Event{Char: r})
	}
}

func wantCursor(t *testing.T, cur *core.Cursor, line, col int) {
	t.Helper()
	if cur.Line != line || cur.Col != col {
		t.Fatalf("expected cursor at (%d,%d), got (%d,%d)", line, col, cur.Line, cur.Col)
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	w := newEditable("ab\n\nxyz")
	cur := &core.Cursor{Display: true}

	press(w, cur, core.KeyLeft, core.KeyUp)
	wantCursor(t, cur, 0, 0)

	press(w, cur, core.KeyRight, core.KeyRight)
	wantCursor(t, cur, 0, 2)
	press(w, cur, core.KeyRight)
	wantCursor(t, cur, 1, 0)
	press(w, cur, core.KeyRight)
	wantCursor(t, cur, 2, 0)
	press(w, cur, core.KeyLeft, core.KeyLeft)
	wantCursor(t, cur, 0, 2)

	press(w, cur, core.KeyDown)
	wantCursor(t, cur, 1, 0)
	press(w, cur, core.KeyDown, core.KeyRight, core.KeyRight, core.KeyRight, core.KeyRight)
	wantCursor(t, cur, 2, 3)
	press(w, cur, core.KeyDown)
	wantCursor(t, cur, 2, 3)
	press(w, cur, core.KeyUp, core.KeyUp)
	wantCursor(t, cur, 0, 0)

	if got := w.Value(); got != "ab\n\nxyz" {
		t.Fatalf("navigation must not edit, got %q", got)
	}
}

func TestBackspaceMergesLines(t *testing.T) {
	w := newEditable("ab\ncd")
	cur := &core.Cursor{Line: 1, Col: 0, Display: true}
	press(w, cur, core.KeyBackspace)
	if !reflect.DeepEqual(w.Lines(), []string{"abcd"}) {
		t.Fatalf("unexpected lines %q", w.Lines())
	}
	wantCursor(t, cur, 0, 2)

	press(w, cur, core.KeyBackspace, core.KeyBackspace, core.KeyBackspace)
	if w.Value() != "cd" {
		t.Fatalf("expected %q, got %q", "cd", w.Value())
	}
	wantCursor(t, cur, 0, 0)
}

func TestTypeThenBackspaceRestoresValue(t *testing.T) {
	w := newEditable("world")
	cur := &core.Cursor{Col: 2, Display: true}
	typeText(w, cur, "xyz")
	if w.Value() != "woxyzrld" {
		t.Fatalf("unexpected value after typing %q", w.Value())
	}
	wantCursor(t, cur, 0, 5)
	press(w, cur, core.KeyBackspace, core.KeyBackspace, core.KeyBackspace)
	if w.Value() != "world" {
		t.Fatalf("expected original value, got %q", w.Value())
	}
	wantCursor(t, cur, 0, 2)
}

func TestDeleteIsIgnored(t *testing.T) {
	w := newEditable("abc")
	cur := &core.Cursor{Col: 1, Display: true}
	press(w, cur, core.KeyDelete)
	if w.Value() != "abc" {
		t.Fatalf("delete must not edit, got %q", w.Value())
	}
	wantCursor(t, cur, 0, 1)
}

func TestEditingTreatsClustersAsOneColumn(t *testing.T) {
	w := newEditable("e\u0301x")
	cur := &core.Cursor{Display: true}
	press(w, cur, core.KeyRight)
	wantCursor(t, cur, 0, 1)
	press(w, cur, core.KeyBackspace)
	if w.Value() != "x" {
		t.Fatalf("expected the whole cluster removed, got %q", w.Value())
	}
}

func TestCombiningMarkKeepsCaretBeforeNextCluster(t *testing.T) {
	w := newEditable("ab")
	cur := &core.Cursor{Col: 1, Display: true}
	w.KeyPress(cur, core.Event{Char: '\u0301'})
	if w.Value() != "a\u0301b" {
		t.Fatalf("unexpected value %q", w.Value())
	}
	wantCursor(t, cur, 0, 1)

	press(w, cur, core.KeyBackspace)
	if w.Value() != "b" {
		t.Fatalf("expected the accented cluster removed and b kept, got %q", w.Value())
	}
	wantCursor(t, cur, 0, 0)
}

func TestKeyPressIgnoresControlCharacters(t *testing.T) {
	w := newEditable("ab")
	cur := &core.Cursor{Col: 1, Display: true}
	presses := 0
	w.On(core.EventKeyPress, func(*core.Widget, core.Event) { presses++ })
	typeText(w, cur, "\n\r\t")
	if got := w.Lines(); !reflect.DeepEqual(got, []string{"ab"}) {
		t.Fatalf("control characters must not be inserted, got %q", got)
	}
	wantCursor(t, cur, 0, 1)
	if presses != 3 {
		t.Fatalf("expected 3 key-press handler calls, got %d", presses)
	}
}

func TestStaticWidgetFiresHandlersWithoutEditing(t *testing.T) {
	w := core.NewWidget(0, 0, 100, 40)
	w.SetValue("fixed")
	var kinds []core.EventKind
	collect := func(_ *core.Widget, ev core.Event) { kinds = append(kinds, ev.Kind) }
	w.On(core.EventKeyDown, collect)
	w.On(core.EventKeyPress, collect)

	cur := &core.Cursor{Display: true}
	press(w, cur, core.KeyBackspace)
	typeText(w, cur, "q")
	if w.Value() != "fixed" {
		t.Fatalf("static widget must not change, got %q", w.Value())
	}
	want := []core.EventKind{core.EventKeyDown, core.EventKeyPress}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
}

func TestEditingWithoutCursorIsNoop(t *testing.T) {
	w := newEditable("abc")
	press(w, nil, core.KeyBackspace)
	typeText(w, nil, "z")
	if w.Value() != "abc" {
		t.Fatalf("expected no change without a caret, got %q", w.Value())
	}
}

func TestClickPlacesCursor(t *testing.T) {
	rec := record.New(400, 100)
	w := newEditable("ab\n\nxyz")
	var clicks int
	w.On(core.EventClick, func(_ *core.Widget, ev core.Event) {
		if ev.Kind != core.EventClick {
			t.Fatalf("unexpected kind %v", ev.Kind)
		}
		clicks++
	})

	// Content starts at (1,1); cells are 8px wide, lines 14px tall.
	cases := []struct {
		name      string
		x, y      float64
		line, col int
	}{
		{"nearest boundary", 10, 3, 0, 1},
		{"right half rounds up", 14, 3, 0, 2},
		{"left of text", 0, 35, 2, 0},
		{"past line end", 150, 35, 2, 3},
		{"empty line", 50, 20, 1, 0},
		{"below all lines", 20, 55, 2, 3},
	}
	for _, tc := range cases {
		cur := &core.Cursor{}
		w.Click(rec, cur, 0, 0, core.Event{X: tc.x, Y: tc.y})
		if !cur.Display {
			t.Fatalf("%s: caret should be displayed", tc.name)
		}
		if cur.Line != tc.line || cur.Col != tc.col {
			t.Fatalf("%s: expected (%d,%d), got (%d,%d)", tc.name, tc.line, tc.col, cur.Line, cur.Col)
		}
	}
	if clicks != len(cases) {
		t.Fatalf("expected %d click events, got %d", len(cases), clicks)
	}
}

func TestClickOnStaticWidgetHidesCursor(t *testing.T) {
	rec := record.New(400, 100)
	w := core.NewWidget(0, 0, 100, 40)
	w.SetValue("abc")
	cur := &core.Cursor{Line: 0, Col: 2, Display: true}
	w.Click(rec, cur, 0, 0, core.Event{X: 5, Y: 5})
	if cur.Display {
		t.Fatalf("caret must be hidden after clicking a static widget")
	}
	wantCursor(t, cur, 0, 2)
}
