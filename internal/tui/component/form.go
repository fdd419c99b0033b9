package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkoester/boardwalk/internal/board"
	"github.com/pkoester/boardwalk/internal/form"
	"github.com/pkoester/boardwalk/internal/project"
	"github.com/pkoester/boardwalk/internal/tui/styles"
)

// InvalidInputAlert is the blocking alert shown when a submit fails
// validation. The submit is aborted and field contents stay untouched.
const InvalidInputAlert = "Invalid input, please try again"

// Form is the project intake panel: one text input per field
// descriptor, focus cycling, an error banner slot, and a submit
// closure bound to the board in Configure.
type Form struct {
	fields []form.Field
	inputs []textinput.Model
	focus  int

	submit func() (project.Project, bool)

	errText string
	note    string
}

var _ Component = (*Form)(nil)

// NewForm builds the intake form from the field descriptors. The
// character limits cap what can be typed into the title and
// description inputs; the validation rule bounds live with the
// descriptors themselves.
func NewForm(titleLimit, descriptionLimit int) *Form {
	fields := form.Fields()
	inputs := make([]textinput.Model, len(fields))

	for i, fd := range fields {
		ti := textinput.New()
		ti.Placeholder = fd.Placeholder
		if fd.Numeric {
			ti.CharLimit = 3
			ti.Width = 6
		} else {
			ti.Width = 40
			switch fd.Key {
			case form.KeyTitle:
				ti.CharLimit = titleLimit
			case form.KeyDescription:
				ti.CharLimit = descriptionLimit
			}
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return &Form{fields: fields, inputs: inputs}
}

// Configure binds the submit closure. The closure captures the form
// and the board: it gathers the raw field values, validates them, and
// on success adds the project and resets the form for the next entry.
func (f *Form) Configure(b *board.Board) {
	f.submit = func() (project.Project, bool) {
		title, description, people, ok := form.Gather(
			f.value(form.KeyTitle),
			f.value(form.KeyDescription),
			f.value(form.KeyPeople),
		)
		if !ok {
			f.errText = InvalidInputAlert
			return project.Project{}, false
		}

		p := b.Add(title, description, people)
		f.reset()
		f.note = fmt.Sprintf("Added %q", p.Title)
		return p, true
	}
}

// Update forwards a message to the focused text input. Any forwarded
// keypress dismisses a previous alert or success note.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		f.errText = ""
		f.note = ""
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Confirm handles enter: it advances focus to the next field and
// submits from the last one.
func (f *Form) Confirm() (project.Project, bool) {
	if f.focus < len(f.inputs)-1 {
		f.NextField()
		return project.Project{}, false
	}
	return f.Submit()
}

// Submit runs the bound submit closure. It reports false until
// Configure has wired the form to a board.
func (f *Form) Submit() (project.Project, bool) {
	if f.submit == nil {
		return project.Project{}, false
	}
	return f.submit()
}

// NextField moves focus to the next input, wrapping at the end.
func (f *Form) NextField() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

// PrevField moves focus to the previous input, wrapping at the start.
func (f *Form) PrevField() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *Form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// Focus resumes editing on the field that last held focus and returns
// the cursor blink command.
func (f *Form) Focus() tea.Cmd { return f.inputs[f.focus].Focus() }

// Blur stops the cursor blink when the form loses the focus zone.
func (f *Form) Blur() { f.inputs[f.focus].Blur() }

// FocusedField returns the descriptor of the field under focus.
func (f *Form) FocusedField() form.Field { return f.fields[f.focus] }

// Error returns the current alert text, empty when there is none.
func (f *Form) Error() string { return f.errText }

// Note returns the transient success note, empty when there is none.
func (f *Form) Note() string { return f.note }

// SetWidth resizes the text inputs to the panel's inner width. The
// numeric input keeps its narrow fixed width.
func (f *Form) SetWidth(width int) {
	w := max(width-4, 10)
	for i := range f.inputs {
		if f.fields[i].Numeric {
			continue
		}
		f.inputs[i].Width = w
	}
}

// SetValues fills the three inputs as if the user had typed into each
// field. The check command and tests drive the form through it.
func (f *Form) SetValues(title, description, people string) {
	for i, fd := range f.fields {
		switch fd.Key {
		case form.KeyTitle:
			f.inputs[i].SetValue(title)
		case form.KeyDescription:
			f.inputs[i].SetValue(description)
		case form.KeyPeople:
			f.inputs[i].SetValue(people)
		}
	}
}

// RenderContent renders the labelled inputs and, below them, the error
// banner or success note.
func (f *Form) RenderContent(width int) string {
	var b strings.Builder

	b.WriteString(styles.PanelTitle.Render("NEW PROJECT"))
	b.WriteString("\n")

	for i, fd := range f.fields {
		label := styles.FormLabel
		if i == f.focus {
			label = styles.FormLabelFocused
		}
		b.WriteString(label.Render(fd.Label))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	switch {
	case f.errText != "":
		b.WriteString(styles.ErrorBanner.Render(f.errText))
	case f.note != "":
		b.WriteString(styles.SuccessNote.Render(f.note))
	}

	return b.String()
}

// value returns the raw content of the input for the given field key.
func (f *Form) value(key string) string {
	for i, fd := range f.fields {
		if fd.Key == key {
			return f.inputs[i].Value()
		}
	}
	return ""
}

// reset clears every field, drops any alert, and returns focus to the
// first field.
func (f *Form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.errText = ""
	f.note = ""
	f.setFocus(0)
}
