package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkoester/boardwalk/internal/project"
	"github.com/pkoester/boardwalk/internal/tui/styles"
	"github.com/pkoester/boardwalk/internal/util"
)

// RenderItem renders a single project row: a status icon and title,
// the assignment line, then the description. It is a pure function of
// the project value, the available width, and the selection flag; all
// list state (cursor position, filtering) lives in List.
func RenderItem(p project.Project, width int, selected bool) string {
	var b strings.Builder

	cursor := "  "
	if selected {
		cursor = styles.ItemCursor.Render("▸ ")
	}

	// Cursor and icon occupy four cells on the title line; the meta
	// and description lines are indented to align under the title.
	textWidth := max(width-4, 8)

	icon := lipgloss.NewStyle().
		Foreground(styles.StatusColor(p.Status)).
		Render(styles.StatusIcon(p.Status))

	b.WriteString(cursor)
	b.WriteString(icon)
	b.WriteString(" ")
	b.WriteString(styles.ItemTitle.Render(truncate(p.Title, textWidth)))
	b.WriteString("\n    ")
	b.WriteString(styles.ItemMeta.Render(p.PeopleLabel() + " assigned"))
	b.WriteString("\n    ")
	b.WriteString(styles.ItemDescription.Render(truncate(p.Description, textWidth)))

	return b.String()
}

// truncate limits s to maxLen runes for a single list row.
func truncate(s string, maxLen int) string {
	return util.TruncateString(util.SingleLine(s), maxLen)
}
