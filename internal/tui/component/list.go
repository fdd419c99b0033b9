package component

import (
	"fmt"
	"strings"

	"github.com/pkoester/boardwalk/internal/board"
	"github.com/pkoester/boardwalk/internal/project"
	"github.com/pkoester/boardwalk/internal/tui/styles"
)

// List renders the projects of exactly one status under a fixed
// heading. Every board notification replaces the cached slice with the
// freshly filtered snapshot, so a stale entry cannot survive a redraw.
type List struct {
	status   project.Status
	heading  string
	projects []project.Project
	cursor   int
	focused  bool
}

var _ Component = (*List)(nil)

// NewList creates a list panel for the given status.
func NewList(status project.Status) *List {
	return &List{
		status:  status,
		heading: headingFor(status),
	}
}

func headingFor(status project.Status) string {
	switch status {
	case project.StatusActive:
		return "ACTIVE PROJECTS"
	case project.StatusFinished:
		return "FINISHED PROJECTS"
	default:
		return strings.ToUpper(string(status)) + " PROJECTS"
	}
}

// Configure captures the board's current projects and subscribes for
// future snapshots. Rendered order equals filtered insertion order.
func (l *List) Configure(b *board.Board) {
	l.projects = project.FilterByStatus(b.Projects(), l.status)
	b.Subscribe(func(snapshot []project.Project) {
		l.projects = project.FilterByStatus(snapshot, l.status)
		l.clampCursor()
	})
}

// RenderContent renders the heading and one row per project. Only a
// focused list shows its selection cursor.
func (l *List) RenderContent(width int) string {
	var b strings.Builder

	b.WriteString(styles.PanelTitle.Render(l.heading))
	b.WriteString("\n")

	if len(l.projects) == 0 {
		b.WriteString(styles.EmptyList.Render(fmt.Sprintf("No %s projects", l.status)))
		return b.String()
	}

	for i, p := range l.projects {
		b.WriteString(RenderItem(p, width, l.focused && i == l.cursor))
		if i < len(l.projects)-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// Status returns the status this list filters for.
func (l *List) Status() project.Status { return l.status }

// Heading returns the panel heading.
func (l *List) Heading() string { return l.heading }

// Len returns the number of projects currently shown.
func (l *List) Len() int { return len(l.projects) }

// SetFocused marks the list as the active focus zone, which enables
// the selection cursor.
func (l *List) SetFocused(focused bool) { l.focused = focused }

// Focused reports whether the list is the active focus zone.
func (l *List) Focused() bool { return l.focused }

// Selected returns the project under the cursor, if any.
func (l *List) Selected() (project.Project, bool) {
	if len(l.projects) == 0 {
		return project.Project{}, false
	}
	return l.projects[l.cursor], true
}

// CursorDown moves the selection down one row, stopping at the end.
func (l *List) CursorDown() {
	if l.cursor < len(l.projects)-1 {
		l.cursor++
	}
}

// CursorUp moves the selection up one row, stopping at the top.
func (l *List) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// CursorTop moves the selection to the first row.
func (l *List) CursorTop() { l.cursor = 0 }

// CursorBottom moves the selection to the last row.
func (l *List) CursorBottom() {
	if n := len(l.projects); n > 0 {
		l.cursor = n - 1
	}
}

// clampCursor keeps the cursor inside the current snapshot after a
// replacement shrinks or empties the list.
func (l *List) clampCursor() {
	if l.cursor >= len(l.projects) {
		l.cursor = len(l.projects) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}
