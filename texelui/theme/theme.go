// Package theme reads widget and surface styling from a config.
package theme

import (
	"github.com/framegrace/texelform/config"
	"github.com/framegrace/texelform/texelui/core"
)

// Theme exposes typed styling lookups over a config.
type Theme struct {
	cfg config.Config
}

// Get returns the theme backed by the system config.
func Get() Theme { return Theme{cfg: config.System()} }

// FromConfig wraps cfg. A nil config yields the built-in look.
func FromConfig(cfg config.Config) Theme { return Theme{cfg: cfg} }

// GetColor parses section.key as a color, falling back to def.
func (t Theme) GetColor(section, key string, def core.Color) core.Color {
	return core.ParseColor(t.cfg.GetString(section, key, ""), def)
}

func (t Theme) GetFloat(section, key string, def float64) float64 {
	return t.cfg.GetFloat(section, key, def)
}

// FPS is the redraw rate for surfaces.
func (t Theme) FPS() int { return t.cfg.GetInt("surface", "fps", 30) }

// BlinkTimes is how many caret blink phases happen per second.
func (t Theme) BlinkTimes() int { return t.cfg.GetInt("surface", "blink_times", 2) }

// CellSize is the pixel size of one terminal cell.
func (t Theme) CellSize() (float64, float64) {
	return t.cfg.GetFloat("surface", "cell_width", 8), t.cfg.GetFloat("surface", "cell_height", 14)
}

// ApplySurface sets the frame rate and blink rate of s.
func (t Theme) ApplySurface(s *core.Surface) {
	s.SetFPS(t.FPS())
	s.SetBlinkTimes(t.BlinkTimes())
}

// Apply styles w from the widget and caret sections. Values that are
// missing or malformed fall back to the widget defaults.
func (t Theme) Apply(w *core.Widget) {
	c := t.cfg
	w.SetFont(
		c.GetFloat("widget", "font_size", 0),
		c.GetString("widget", "font_color", ""),
		c.GetString("widget", "font_family", ""),
	)
	w.SetBackground(c.GetString("widget", "background", ""))
	w.SetBorder(
		c.GetFloat("widget", "border_size", 0),
		c.GetString("widget", "border_color", ""),
		c.GetFloats("widget", "radius", []float64{1})...,
	)
	w.SetPadding(c.GetFloats("widget", "padding", []float64{1})...)
	w.SetShadow(
		c.GetString("widget", "shadow_color", "transparent"),
		c.GetFloat("widget", "shadow_x", 0),
		c.GetFloat("widget", "shadow_y", 0),
		c.GetFloat("widget", "shadow_blur", 0),
	)
	w.SetCaretColor(c.GetString("caret", "color", ""))
}
