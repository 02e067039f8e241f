package core

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with an opacity. The zero value is fully
// transparent.
type Color struct {
	colorful.Color
	Alpha float64
}

var (
	Transparent = Color{}
	Black       = Color{Color: colorful.Color{R: 0, G: 0, B: 0}, Alpha: 1}
	White       = Color{Color: colorful.Color{R: 1, G: 1, B: 1}, Alpha: 1}
)

// ParseColor parses "#rgb" or "#rrggbb". Empty or malformed input yields
// fallback.
func ParseColor(s string, fallback Color) Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if strings.EqualFold(s, "transparent") || strings.EqualFold(s, "none") {
		return Transparent
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return Color{Color: c.Clamped(), Alpha: 1}
}

// IsTransparent reports whether drawing with c has no visible effect.
func (c Color) IsTransparent() bool { return c.Alpha <= 0 }

// Hex returns the "#rrggbb" form, or "transparent".
func (c Color) Hex() string {
	if c.IsTransparent() {
		return "transparent"
	}
	return c.Color.Hex()
}

// Over composites c onto dst using c's opacity.
func (c Color) Over(dst Color) Color {
	if c.Alpha >= 1 || dst.IsTransparent() {
		return c
	}
	if c.IsTransparent() {
		return dst
	}
	return Color{Color: dst.Color.BlendRgb(c.Color, c.Alpha).Clamped(), Alpha: 1}
}
