package styles

import (
	"slices"
	"testing"
)

func TestBuiltin(t *testing.T) {
	themes := Builtin()

	if len(themes) != 4 {
		t.Errorf("Builtin() returned %d themes, want 4", len(themes))
	}

	expected := []string{"default", "monokai", "dracula", "nord"}
	for _, want := range expected {
		if !slices.Contains(themes, want) {
			t.Errorf("Builtin() missing %q", want)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		want  bool
	}{
		{"default theme", "default", true},
		{"monokai theme", "monokai", true},
		{"dracula theme", "dracula", true},
		{"nord theme", "nord", true},
		{"unknown theme", "synthwave", false},
		{"empty string", "", false},
		{"case sensitive", "Default", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValid(tt.theme)
			if got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestThemeNameConstants(t *testing.T) {
	tests := []struct {
		constant ThemeName
		want     string
	}{
		{ThemeDefault, "default"},
		{ThemeMonokai, "monokai"},
		{ThemeDracula, "dracula"},
		{ThemeNord, "nord"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if string(tt.constant) != tt.want {
				t.Errorf("Theme constant = %q, want %q", tt.constant, tt.want)
			}
		})
	}
}

func TestPalettes(t *testing.T) {
	tests := []struct {
		name       string
		getPalette func() *ColorPalette
		primary    string
		secondary  string
		surface    string
	}{
		{"default", DefaultPalette, "#A78BFA", "#10B981", "#1F2937"},
		{"monokai", MonokaiPalette, "#F92672", "#A6E22E", "#272822"},
		{"dracula", DraculaPalette, "#BD93F9", "#50FA7B", "#282A36"},
		{"nord", NordPalette, "#88C0D0", "#A3BE8C", "#2E3440"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.getPalette()
			if p == nil {
				t.Fatal("palette returned nil")
			}
			if string(p.Primary) != tt.primary {
				t.Errorf("Primary = %q, want %q", p.Primary, tt.primary)
			}
			if string(p.Secondary) != tt.secondary {
				t.Errorf("Secondary = %q, want %q", p.Secondary, tt.secondary)
			}
			if string(p.Surface) != tt.surface {
				t.Errorf("Surface = %q, want %q", p.Surface, tt.surface)
			}
		})
	}
}

func TestGetPalette(t *testing.T) {
	tests := []struct {
		name        ThemeName
		wantPrimary string // Use primary color to identify theme
	}{
		{ThemeDefault, "#A78BFA"},
		{ThemeMonokai, "#F92672"},
		{ThemeDracula, "#BD93F9"},
		{ThemeNord, "#88C0D0"},
		{"unknown", "#A78BFA"}, // Should fall back to default
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			p := GetPalette(tt.name)
			if p == nil {
				t.Fatal("GetPalette() returned nil")
			}
			if string(p.Primary) != tt.wantPrimary {
				t.Errorf("GetPalette(%q).Primary = %q, want %q", tt.name, p.Primary, tt.wantPrimary)
			}
		})
	}
}

func TestPaletteColorConsistency(t *testing.T) {
	palettes := []*ColorPalette{
		DefaultPalette(),
		MonokaiPalette(),
		DraculaPalette(),
		NordPalette(),
	}

	for i, p := range palettes {
		t.Run(Builtin()[i], func(t *testing.T) {
			// All palettes should have all colors set
			colors := map[string]string{
				"Primary":        string(p.Primary),
				"Secondary":      string(p.Secondary),
				"Warning":        string(p.Warning),
				"Error":          string(p.Error),
				"Muted":          string(p.Muted),
				"Surface":        string(p.Surface),
				"Text":           string(p.Text),
				"Border":         string(p.Border),
				"StatusActive":   string(p.StatusActive),
				"StatusFinished": string(p.StatusFinished),
			}

			for name, color := range colors {
				if color == "" {
					t.Errorf("%s color is empty", name)
				}
			}
		})
	}
}
