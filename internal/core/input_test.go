package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionConfirm) {
		t.Error("Zero frame should not report actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionNone)

	if !f.Has(ActionConfirm) {
		t.Error("Has(Confirm) = false after Set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
	if len(f.Actions) != 1 {
		t.Errorf("len(Actions) = %d, expected 1", len(f.Actions))
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := FrameOf(ActionUp, ActionUndo)
	clone := f.Clone()

	f.Clear()
	if !f.Empty() {
		t.Error("Frame should be empty after Clear")
	}
	if !clone.Has(ActionUp) || !clone.Has(ActionUndo) {
		t.Error("Clone should be unaffected by Clear on the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionBack:    "Back",
		ActionUndo:    "Undo",
		ActionHistory: "History",
		Action(999):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}

func TestRuntimeConfigFrameDelta(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameDelta(); got < 0.0166 || got > 0.0167 {
		t.Errorf("FrameDelta() = %f, expected ~1/60", got)
	}

	cfg.TickRate = 0
	if cfg.FrameInterval() != DefaultConfig().FrameInterval() {
		t.Error("Zero tick rate should fall back to 60")
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want int
	}{
		{ColorDefault, -1},
		{ColorRed, 1},
		{ColorWhite, 7},
		{ColorBrightRed, 9},
		{ColorBrightWhite, 15},
		{ColorOrange, 208},
		{ColorGray, 245},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %d, expected %d", tc.c, got, tc.want)
		}
	}
}
