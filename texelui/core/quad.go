package core

import "math"

// Quad holds one value per side or corner. Sides are ordered top, right,
// bottom, left; corners top-left, top-right, bottom-right, bottom-left.
type Quad [4]float64

// NormalizeQuad expands CSS-style shorthand into exactly four entries.
// A single value applies to every entry; otherwise values are positional and
// missing entries are 0. Negative or NaN entries become 0, and when max is
// positive every entry is clamped to it.
func NormalizeQuad(max float64, values ...float64) Quad {
	var q Quad
	switch len(values) {
	case 0:
		return q
	case 1:
		for i := range q {
			q[i] = values[0]
		}
	default:
		copy(q[:], values)
	}
	for i, v := range q {
		if v < 0 || math.IsNaN(v) {
			v = 0
		}
		if max > 0 && v > max {
			v = max
		}
		q[i] = v
	}
	return q
}
