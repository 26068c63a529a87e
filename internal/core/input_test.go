package core

import "testing"

func TestActionNamesRoundTrip(t *testing.T) {
	for a, name := range actionNames {
		parsed, err := ParseAction(name)
		if err != nil {
			t.Errorf("ParseAction(%q) failed: %v", name, err)
			continue
		}
		if parsed != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", name, parsed, a)
		}
	}
}

func TestParseActionNormalizes(t *testing.T) {
	a, err := ParseAction("  Rotate_CW ")
	if err != nil {
		t.Fatalf("ParseAction failed: %v", err)
	}
	if a != ActionRotateCW {
		t.Errorf("got %v, expected rotate_cw", a)
	}
}

func TestParseActionUnknown(t *testing.T) {
	if _, err := ParseAction("jump"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestActionUnmarshalText(t *testing.T) {
	var a Action
	if err := a.UnmarshalText([]byte("hard_drop")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if a != ActionHardDrop {
		t.Errorf("got %v, expected hard_drop", a)
	}
	if err := a.UnmarshalText([]byte("fly")); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickInterval().Milliseconds(); got != 16 {
		t.Errorf("TickInterval() at 60fps = %dms, expected 16ms", got)
	}
	cfg.TickRate = 0
	if cfg.TickInterval() != DefaultConfig().TickInterval() {
		t.Error("zero tick rate should fall back to default")
	}
}
