package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigWithDefaults(t *testing.T) {
	now := time.Unix(0, 12345)

	got := RuntimeConfig{ScreenW: 10, ScreenH: 5}.WithDefaults(now)
	if got.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", got.TickRate)
	}
	if got.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", got.Seed)
	}

	kept := RuntimeConfig{TickRate: 30, Seed: 7}.WithDefaults(now)
	if kept.TickRate != 30 || kept.Seed != 7 {
		t.Errorf("explicit values changed: %+v", kept)
	}
}

func TestRuntimeConfigTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{50, 20 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{0, time.Second / 60},
	}
	for _, tt := range tests {
		if got := (RuntimeConfig{TickRate: tt.rate}).TickInterval(); got != tt.want {
			t.Errorf("TickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Error("default color should have no code")
	}
	if ColorOrange.ANSI() != "208" {
		t.Errorf("orange = %q, want 208", ColorOrange.ANSI())
	}
	if Color(200).ANSI() != "" {
		t.Error("out-of-palette color should have no code")
	}
	for _, c := range Palette()[1:] {
		if c.ANSI() == "" {
			t.Errorf("color %d has no code", c)
		}
	}
}
