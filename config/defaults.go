// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("surface", Section{
		"fps":         30,
		"blink_times": 2,
		"cell_width":  8,
		"cell_height": 14,
	})
	cfg.RegisterDefaults("widget", Section{
		"font_size":    14,
		"font_color":   "#000000",
		"font_family":  "Arial",
		"background":   "#FFFFFF",
		"border_size":  2,
		"border_color": "#000000",
		"radius":       []interface{}{1},
		"padding":      []interface{}{1},
		"shadow_color": "transparent",
		"shadow_x":     0,
		"shadow_y":     0,
		"shadow_blur":  0,
	})
	cfg.RegisterDefaults("caret", Section{
		"color": "#000000",
	})
}
