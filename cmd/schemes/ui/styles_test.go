package ui

import "testing"

func TestThemeByName(t *testing.T) {
	if theme := ThemeByName("light"); theme.IsDark {
		t.Error("Expected light theme")
	}
	if theme := ThemeByName("Dark"); !theme.IsDark {
		t.Error("Expected dark theme (case insensitive)")
	}
}

func TestDetectTheme_ColorFgBg(t *testing.T) {
	tests := []struct {
		colorfgbg string
		wantDark  bool
	}{
		{"15;0", true},   // black background
		{"0;15", false},  // white background
		{"0;7", false},   // light gray background
		{"15;8", true},   // dark gray is still dark
		{"garbage", true},
		{"", true}, // no hint defaults to dark
	}
	for _, tt := range tests {
		t.Setenv("SCHEMES_LIGHT_MODE", "")
		t.Setenv("COLORFGBG", tt.colorfgbg)
		if theme := DetectTheme(); theme.IsDark != tt.wantDark {
			t.Errorf("COLORFGBG=%q: IsDark = %v, want %v", tt.colorfgbg, theme.IsDark, tt.wantDark)
		}
	}
}

func TestDetectTheme_LightModeOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("SCHEMES_LIGHT_MODE", "1")
	if theme := DetectTheme(); theme.IsDark {
		t.Error("Expected SCHEMES_LIGHT_MODE=1 to force the light theme")
	}
}
