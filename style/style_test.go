package style

import "testing"

func TestSetTheme_Known(t *testing.T) {
	defer SetTheme("dark")
	if !SetTheme("light") {
		t.Fatal("light theme should be registered")
	}
	if IsDark() {
		t.Error("IsDark should be false after switching to light")
	}
	if SelectionBgColor != lightTheme.SelectionBg {
		t.Error("SetTheme did not update SelectionBgColor")
	}
}

func TestSetTheme_Unknown(t *testing.T) {
	if SetTheme("neon") {
		t.Error("unknown theme should not apply")
	}
	if CurrentThemeName != "dark" {
		t.Errorf("current theme changed to %q", CurrentThemeName)
	}
}

func TestThemeNames_Sorted(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Fatalf("want %d names, got %d", len(Themes), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
