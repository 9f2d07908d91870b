package theme

import "testing"

func TestApplySwitchesPalette(t *testing.T) {
	defer Apply("default")

	Apply("ocean")
	if Primary != palettes["ocean"].Primary {
		t.Errorf("Primary = %v, want ocean primary %v", Primary, palettes["ocean"].Primary)
	}
	if Title.GetForeground() != palettes["ocean"].Primary {
		t.Error("Title style not rebuilt for the new palette")
	}
}

func TestApplyUnknownFallsBack(t *testing.T) {
	defer Apply("default")

	Apply("neon")
	if Primary != palettes["default"].Primary {
		t.Errorf("Primary = %v, want default primary %v", Primary, palettes["default"].Primary)
	}
}
