package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pkoester/boardwalk/internal/project"
)

// Vertical space reserved by the fixed chrome around the panel row.
// The model subtracts these from the terminal height when sizing panels.
const (
	// HeaderLines is the rendered height of the Header style:
	// text + PaddingBottom + BorderBottom + MarginBottom.
	HeaderLines = 4
	// HelpBarLines is the rendered height of the HelpBar style:
	// MarginTop + text.
	HelpBarLines = 2
	// ViewNewlines counts the explicit newlines View inserts between
	// the header, the panel row and the help bar.
	ViewNewlines = 2
	// HeaderFooterReserved is the total vertical space unavailable to
	// the panel row.
	HeaderFooterReserved = HeaderLines + HelpBarLines + ViewNewlines
)

// Colors and styles for the active theme, populated by rebuild. The
// default theme is applied at init; Apply swaps in another palette.
var (
	// Colors
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Status colors
	StatusActiveColor   lipgloss.Color
	StatusFinishedColor lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Surface   lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Header
	Header lipgloss.Style

	// Panels
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// List items
	ItemTitle       lipgloss.Style
	ItemMeta        lipgloss.Style
	ItemDescription lipgloss.Style
	ItemCursor      lipgloss.Style
	EmptyList       lipgloss.Style
	StatusDot       lipgloss.Style

	// Form
	FormLabel        lipgloss.Style
	FormLabelFocused lipgloss.Style
	ErrorBanner      lipgloss.Style
	SuccessNote      lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
	WarningMsg lipgloss.Style

	// Footer / status bar
	StatusBar lipgloss.Style

	// Mode badges
	ModeBadgeNormal  lipgloss.Style
	ModeBadgeForm    lipgloss.Style
	ModeBadgeCommand lipgloss.Style

	// Command line
	CommandPrompt lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
)

func init() {
	rebuild(DefaultPalette())
}

// rebuild derives every package-level color and style from p.
//
// Not thread-safe: it is designed to be called only from the bubbletea
// event loop, which runs on a single goroutine.
func rebuild(p *ColorPalette) {
	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border

	StatusActiveColor = p.StatusActive
	StatusFinishedColor = p.StatusFinished

	Primary = lipgloss.NewStyle().Foreground(p.Primary)
	Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	Warning = lipgloss.NewStyle().Foreground(p.Warning)
	Error = lipgloss.NewStyle().Foreground(p.Error)
	Muted = lipgloss.NewStyle().Foreground(p.Muted)
	Surface = lipgloss.NewStyle().Background(p.Surface)
	Text = lipgloss.NewStyle().Foreground(p.Text)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		MarginBottom(1).
		PaddingBottom(1)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	PanelFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)

	PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	ItemTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	ItemMeta = lipgloss.NewStyle().
		Foreground(p.Secondary)

	ItemDescription = lipgloss.NewStyle().
		Foreground(p.Muted)

	ItemCursor = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	EmptyList = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	StatusDot = lipgloss.NewStyle().
		MarginRight(1)

	FormLabel = lipgloss.NewStyle().
		Foreground(p.Muted)

	FormLabelFocused = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	ErrorBanner = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Error).
		Bold(true).
		Padding(0, 1)

	SuccessNote = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	SuccessMsg = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	WarningMsg = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	StatusBar = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1)

	ModeBadgeNormal = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Muted).
		Background(p.Surface).
		Padding(0, 1)

	ModeBadgeForm = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Warning).
		Padding(0, 1)

	ModeBadgeCommand = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 1)

	CommandPrompt = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)
}

// StatusColor returns the color for a given project status.
func StatusColor(status project.Status) lipgloss.Color {
	switch status {
	case project.StatusActive:
		return StatusActiveColor
	case project.StatusFinished:
		return StatusFinishedColor
	default:
		return MutedColor
	}
}

// StatusIcon returns an icon for a given project status.
func StatusIcon(status project.Status) string {
	switch status {
	case project.StatusActive:
		return "●"
	case project.StatusFinished:
		return "✓"
	default:
		return "○"
	}
}
