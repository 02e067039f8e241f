package core_test

import (
	"testing"

	"github.com/framegrace/texelform/texelui/core"
)

func TestContainsContentCenter(t *testing.T) {
	sizes := [][2]float64{{1, 1}, {10, 4}, {100, 40}, {300, 300}}
	radii := []float64{0, 1, 8, 20, 1000}
	for _, sz := range sizes {
		for _, r := range radii {
			w := core.NewWidget(5, 7, sz[0], sz[1])
			w.SetBorder(3, "#000000", r)
			c := w.ContentBox().Center()
			if !w.Contains(c.X, c.Y, 0, 0) {
				t.Fatalf("size %v radius %v: content center %v not contained", sz, r, c)
			}
		}
	}
}

func TestContainsRejectsOutsideOuterBox(t *testing.T) {
	w := core.NewWidget(10, 10, 100, 40)
	w.SetBorder(2, "#000000", 0)
	o := w.OuterBox()
	if o.Left != 9 || o.Top != 9 || o.Right != 111 || o.Bottom != 51 {
		t.Fatalf("unexpected outer box %+v", o)
	}
	outside := []core.Point{
		{X: o.Left - 0.5, Y: 30},
		{X: o.Right + 0.5, Y: 30},
		{X: 50, Y: o.Top - 0.5},
		{X: 50, Y: o.Bottom + 0.5},
	}
	for _, p := range outside {
		if w.Contains(p.X, p.Y, 0, 0) {
			t.Fatalf("point %v must not be contained", p)
		}
	}
	if !w.Contains(o.Left, o.Top, 0, 0) {
		t.Fatalf("square corner must be contained")
	}
}

func TestContainsHonoursLargeCornerRadius(t *testing.T) {
	w := core.NewWidget(0, 0, 100, 100)
	w.SetBorder(2, "#000000", 20)
	// Top-left arc center sits at (19, 19).
	if w.Contains(-0.5, -0.5, 0, 0) {
		t.Fatalf("point in the rounded-off corner must be excluded")
	}
	if !w.Contains(9, 9, 0, 0) {
		t.Fatalf("point inside the arc must be contained")
	}
	if w.Contains(100.5, 100.5, 0, 0) {
		t.Fatalf("bottom-right corner cut must be excluded")
	}
	if !w.Contains(50, -0.5, 0, 0) {
		t.Fatalf("edge midpoint must be contained")
	}
}

func TestContainsTreatsSmallRadiusAsSquare(t *testing.T) {
	w := core.NewWidget(0, 0, 100, 100)
	w.SetBorder(2, "#000000", 5)
	if !w.Contains(-0.5, -0.5, 0, 0) {
		t.Fatalf("corner with effective radius below 8 must count as square")
	}
}

func TestContainsAppliesOffset(t *testing.T) {
	w := core.NewWidget(10, 10, 50, 20)
	if !w.Contains(130, 220, 100, 200) {
		t.Fatalf("expected offset-translated point to be contained")
	}
	if w.Contains(30, 20, 100, 200) {
		t.Fatalf("untranslated point must miss once the offset is applied")
	}
}

func TestContentBoxUsesPadding(t *testing.T) {
	w := core.NewWidget(10, 20, 100, 50)
	w.SetPadding(1, 2, 3, 4)
	cb := w.ContentBox()
	want := core.Box{Left: 14, Top: 21, Right: 108, Bottom: 67}
	if cb != want {
		t.Fatalf("expected %+v, got %+v", want, cb)
	}
}

func TestArcAnchorsFollowRadii(t *testing.T) {
	w := core.NewWidget(0, 0, 100, 60)
	w.SetBorder(2, "#000000", 10, 20, 30, 5)
	starts := w.ArcStarts()
	ends := w.ArcEnds()
	if starts[0] != (core.Point{X: 9, Y: -1}) {
		t.Fatalf("unexpected top edge start %v", starts[0])
	}
	if ends[0] != (core.Point{X: 81, Y: -1}) {
		t.Fatalf("unexpected top edge end %v", ends[0])
	}
	if starts[2] != (core.Point{X: 71, Y: 61}) {
		t.Fatalf("unexpected bottom edge start %v", starts[2])
	}
	if ends[3] != (core.Point{X: -1, Y: 9}) {
		t.Fatalf("unexpected left edge end %v", ends[3])
	}
}

func TestBorderRadiusClampedToHalfSize(t *testing.T) {
	w := core.NewWidget(0, 0, 40, 20)
	w.SetBorder(0, "not-a-color", 100)
	b := w.Border()
	if b.Size != 2 {
		t.Fatalf("expected default border size, got %v", b.Size)
	}
	if b.Color != core.Black {
		t.Fatalf("expected default border color, got %s", b.Color.Hex())
	}
	for i, r := range b.Radius {
		if r != 10 {
			t.Fatalf("radius %d: expected clamp to 10, got %v", i, r)
		}
	}
}
