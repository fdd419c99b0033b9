package styles

import (
	"testing"

	"github.com/pkoester/boardwalk/internal/project"
)

func TestStatusColor(t *testing.T) {
	if err := Apply(ThemeDefault); err != nil {
		t.Fatalf("Apply(ThemeDefault) failed: %v", err)
	}

	tests := []struct {
		status   project.Status
		expected string // Expected color hex value
	}{
		{project.StatusActive, "#10B981"},
		{project.StatusFinished, "#A78BFA"},
		{"unknown", "#9CA3AF"}, // Should fall back to MutedColor
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := StatusColor(tt.status)
			if string(got) != tt.expected {
				t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status   project.Status
		expected string
	}{
		{project.StatusActive, "●"},
		{project.StatusFinished, "✓"},
		{"unknown", "○"}, // Should fall back to the hollow dot
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := StatusIcon(tt.status)
			if got != tt.expected {
				t.Errorf("StatusIcon(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestLayoutConstants(t *testing.T) {
	// Verify the layout constants are consistent
	// This test ensures that if components are changed, the total is updated

	t.Run("HeaderFooterReserved equals sum of components", func(t *testing.T) {
		expected := HeaderLines + HelpBarLines + ViewNewlines
		if HeaderFooterReserved != expected {
			t.Errorf("HeaderFooterReserved = %d, want %d (sum of HeaderLines=%d + HelpBarLines=%d + ViewNewlines=%d)",
				HeaderFooterReserved, expected, HeaderLines, HelpBarLines, ViewNewlines)
		}
	})

	t.Run("HeaderLines accounts for Header style", func(t *testing.T) {
		// Header style has: text (1) + PaddingBottom(1) + BorderBottom (1) + MarginBottom(1) = 4
		if HeaderLines != 4 {
			t.Errorf("HeaderLines = %d, want 4 (text + PaddingBottom + BorderBottom + MarginBottom)", HeaderLines)
		}
	})

	t.Run("HelpBarLines accounts for HelpBar style", func(t *testing.T) {
		// HelpBar style has: MarginTop(1) + text (1) = 2
		if HelpBarLines != 2 {
			t.Errorf("HelpBarLines = %d, want 2 (MarginTop + text)", HelpBarLines)
		}
	})

	t.Run("ViewNewlines accounts for explicit newlines in View()", func(t *testing.T) {
		// View() adds: 1 newline after header + 1 newline before help bar = 2
		if ViewNewlines != 2 {
			t.Errorf("ViewNewlines = %d, want 2 (after header + before help bar)", ViewNewlines)
		}
	})
}
