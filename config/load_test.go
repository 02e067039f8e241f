// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.toml")
	data := `
[surface]
fps = 24

[widget]
padding = [4, 8]
border_color = "#336699"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetInt("surface", "fps", 0); got != 24 {
		t.Fatalf("expected fps 24, got %d", got)
	}
	if got := cfg.GetFloats("widget", "padding", nil); !reflect.DeepEqual(got, []float64{4, 8}) {
		t.Fatalf("expected padding [4 8], got %v", got)
	}
	if got := cfg.GetString("widget", "border_color", ""); got != "#336699" {
		t.Fatalf("unexpected border color %q", got)
	}
	if got := cfg.GetInt("surface", "blink_times", 0); got != 2 {
		t.Fatalf("expected defaults filled in, got blink_times %d", got)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	if err := os.WriteFile(path, []byte(`{"caret": {"color": "#ff0000"}}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetString("caret", "color", ""); got != "#ff0000" {
		t.Fatalf("unexpected caret color %q", got)
	}
}

func TestLoadReportsErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("fps = = 3"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	if err := os.WriteFile(path, []byte(`{"surface": {"fps": 10}}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan int, 16)
	err := Watch(ctx, path, func(cfg Config, err error) {
		if err != nil {
			return
		}
		got <- cfg.GetInt("surface", "fps", 0)
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"surface": {"fps": 50}}`), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	deadline := time.After(3 * time.Second)
	for {
		select {
		case fps := <-got:
			if fps == 50 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed after write")
		}
	}
}
