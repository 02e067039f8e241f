package core_test

import (
	"testing"

	"github.com/framegrace/texelform/texelui/canvas/record"
	"github.com/framegrace/texelform/texelui/core"
)

func opIndex(ops []record.Op, name string, from int) int {
	for i := from; i < len(ops); i++ {
		if ops[i].Name == name {
			return i
		}
	}
	return -1
}

func TestDrawClearsShadowBeforeStroke(t *testing.T) {
	rec := record.New(200, 100)
	w := core.NewWidget(0, 0, 100, 40)
	w.SetShadow("#333333", 2, 3, 4)
	w.Draw(rec)

	fill := opIndex(rec.Ops, "fill", 0)
	stroke := opIndex(rec.Ops, "stroke", 0)
	if fill < 0 || stroke < fill {
		t.Fatalf("expected fill before stroke, got fill=%d stroke=%d", fill, stroke)
	}
	shadows := rec.Find("shadow")
	if len(shadows) != 2 {
		t.Fatalf("expected 2 shadow ops, got %d", len(shadows))
	}
	if !shadows[0].Shadow.Visible() || shadows[0].Shadow.OffsetY != 3 {
		t.Fatalf("fill should use the widget shadow, got %+v", shadows[0].Shadow)
	}
	cleared := opIndex(rec.Ops, "shadow", fill)
	if cleared < 0 || cleared > stroke || rec.Ops[cleared].Shadow.Visible() {
		t.Fatalf("shadow must be cleared between fill and stroke")
	}
}

func TestDrawBalancesSaveRestore(t *testing.T) {
	rec := record.New(200, 100)
	w := core.NewWidget(0, 0, 100, 40)
	w.SetValue("a\nb")
	w.Draw(rec)
	if rec.Depth() != 0 || rec.MaxDepth() != 1 {
		t.Fatalf("expected balanced save/restore, depth=%d max=%d", rec.Depth(), rec.MaxDepth())
	}
	if rec.Count("clip") != 1 {
		t.Fatalf("expected one clip, got %d", rec.Count("clip"))
	}
	rects := rec.Find("rect")
	if len(rects) != 1 {
		t.Fatalf("expected one clip rect, got %d", len(rects))
	}
	want := []float64{1, 1, 98, 38}
	for i, v := range want {
		if rects[0].Args[i] != v {
			t.Fatalf("clip rect: expected %v, got %v", want, rects[0].Args)
		}
	}
}

func TestDrawOutlineHasFourArcs(t *testing.T) {
	rec := record.New(200, 100)
	w := core.NewWidget(0, 0, 100, 40)
	w.SetBorder(2, "#000000", 6)
	w.Draw(rec)
	arcs := rec.Find("arcTo")
	if len(arcs) != 4 {
		t.Fatalf("expected 4 arcs, got %d", len(arcs))
	}
	for i, a := range arcs {
		if a.Args[4] != 6 {
			t.Fatalf("arc %d: expected radius 6, got %v", i, a.Args[4])
		}
	}
	moves := rec.Find("moveTo")
	if len(moves) != 1 || moves[0].Args[0] != 5 || moves[0].Args[1] != -1 {
		t.Fatalf("unexpected outline start %+v", moves)
	}
}

func TestDrawTextOffsets(t *testing.T) {
	cases := []struct {
		name     string
		editable bool
		y        float64
	}{
		{"static text is centred", false, 10.5},
		{"editable text is top aligned", true, 1},
	}
	for _, tc := range cases {
		rec := record.New(200, 100)
		w := core.NewWidget(0, 0, 100, 40)
		w.SetEditable(tc.editable)
		w.SetValue("a")
		w.Draw(rec)
		texts := rec.Find("fillText")
		if len(texts) != 1 {
			t.Fatalf("%s: expected one text op, got %d", tc.name, len(texts))
		}
		if texts[0].Args[0] != 1 || texts[0].Args[1] != tc.y {
			t.Fatalf("%s: expected (1,%v), got %v", tc.name, tc.y, texts[0].Args)
		}
	}
}

func TestDrawUsesWidgetStyle(t *testing.T) {
	rec := record.New(200, 100)
	w := core.NewWidget(0, 0, 100, 40)
	w.SetBackground("#ff0000")
	w.SetFont(20, "#00ff00", "")
	w.SetValue("x")
	w.Draw(rec)

	fills := rec.Find("fillStyle")
	if len(fills) != 2 {
		t.Fatalf("expected background and text fill styles, got %d", len(fills))
	}
	if fills[0].Color.Hex() != "#ff0000" || fills[1].Color.Hex() != "#00ff00" {
		t.Fatalf("unexpected fill styles %s, %s", fills[0].Color.Hex(), fills[1].Color.Hex())
	}
	fonts := rec.Find("font")
	if len(fonts) != 1 || fonts[0].Font.Size != 20 || fonts[0].Font.Family != "Arial" {
		t.Fatalf("unexpected font ops %+v", fonts)
	}
	if bl := rec.Find("textBaseline"); len(bl) != 1 || bl[0].Baseline != core.BaselineTop {
		t.Fatalf("expected top baseline, got %+v", bl)
	}
}

func TestInvisibleWidgetDrawsNothing(t *testing.T) {
	rec := record.New(200, 100)
	w := core.NewWidget(0, 0, 100, 40)
	w.SetVisible(false)
	w.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Fatalf("expected no ops, got %d", len(rec.Ops))
	}
}

func TestDrawCursorPosition(t *testing.T) {
	rec := record.New(200, 100)
	w := core.NewWidget(0, 0, 100, 40)
	w.SetEditable(true)
	w.SetValue("ab\ncd")
	w.SetCaretColor("#0000ff")
	w.DrawCursor(rec, &core.Cursor{Line: 1, Col: 1, Display: true, View: true})

	moves := rec.Find("moveTo")
	lines := rec.Find("lineTo")
	if len(moves) != 1 || len(lines) != 1 {
		t.Fatalf("expected a single caret segment, got %d moves %d lines", len(moves), len(lines))
	}
	if moves[0].Args[0] != 9 || moves[0].Args[1] != 15 {
		t.Fatalf("unexpected caret start %v", moves[0].Args)
	}
	if lines[0].Args[0] != 9 || lines[0].Args[1] != 29 {
		t.Fatalf("unexpected caret end %v", lines[0].Args)
	}
	if s := rec.Find("strokeStyle"); len(s) != 1 || s[0].Color.Hex() != "#0000ff" {
		t.Fatalf("expected caret color stroke, got %+v", s)
	}
}

func TestDrawCursorIgnoresOutOfRangeLine(t *testing.T) {
	rec := record.New(200, 100)
	w := core.NewWidget(0, 0, 100, 40)
	w.DrawCursor(rec, &core.Cursor{Line: 3})
	if len(rec.Ops) != 0 {
		t.Fatalf("expected no ops, got %d", len(rec.Ops))
	}
}
