package component

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkoester/boardwalk/internal/board"
	"github.com/pkoester/boardwalk/internal/form"
	"github.com/pkoester/boardwalk/internal/project"
)

func newTestForm(t *testing.T, b *board.Board) *Form {
	t.Helper()
	f := NewForm(60, 200)
	f.Configure(b)
	return f
}

func TestFormSubmitValid(t *testing.T) {
	b := board.New()
	f := newTestForm(t, b)

	f.SetValues("Build API", "Backend work", "3")
	p, ok := f.Submit()
	if !ok {
		t.Fatalf("expected submit to succeed, alert: %q", f.Error())
	}

	if p.Title != "Build API" || p.People != 3 {
		t.Errorf("unexpected project: %+v", p)
	}
	if p.Status != project.StatusActive {
		t.Errorf("expected new project to be active, got %q", p.Status)
	}
	if b.Len() != 1 {
		t.Errorf("expected board to hold 1 project, got %d", b.Len())
	}

	for _, key := range []string{form.KeyTitle, form.KeyDescription, form.KeyPeople} {
		if got := f.value(key); got != "" {
			t.Errorf("expected %s field cleared, got %q", key, got)
		}
	}
	if f.focus != 0 {
		t.Errorf("expected focus back on the title field, got %d", f.focus)
	}
	if f.Error() != "" {
		t.Errorf("expected no alert after success, got %q", f.Error())
	}
	if f.Note() == "" {
		t.Error("expected a success note after submit")
	}
}

func TestFormSubmitInvalid(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		people      string
	}{
		{name: "empty title", title: "", description: "Backend work", people: "3"},
		{name: "blank title", title: "   ", description: "Backend work", people: "3"},
		{name: "short description", title: "Build API", description: "Shrt", people: "3"},
		{name: "people below minimum", title: "Build API", description: "Backend work", people: "0"},
		{name: "people above maximum", title: "Build API", description: "Backend work", people: "6"},
		{name: "people not a number", title: "Build API", description: "Backend work", people: "many"},
		{name: "people empty", title: "Build API", description: "Backend work", people: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.New()
			f := newTestForm(t, b)

			f.SetValues(tt.title, tt.description, tt.people)
			if _, ok := f.Submit(); ok {
				t.Fatal("expected submit to fail")
			}

			if f.Error() != InvalidInputAlert {
				t.Errorf("Error() = %q, want %q", f.Error(), InvalidInputAlert)
			}
			if b.Len() != 0 {
				t.Errorf("expected board unchanged, got %d projects", b.Len())
			}

			// A failed submit must not touch what the user typed.
			if got := f.value(form.KeyTitle); got != tt.title {
				t.Errorf("title changed to %q", got)
			}
			if got := f.value(form.KeyDescription); got != tt.description {
				t.Errorf("description changed to %q", got)
			}
			if got := f.value(form.KeyPeople); got != tt.people {
				t.Errorf("people changed to %q", got)
			}

			if out := f.RenderContent(60); !strings.Contains(out, InvalidInputAlert) {
				t.Errorf("expected alert in rendered output, got: %s", out)
			}
		})
	}
}

func TestFormSubmitUnconfigured(t *testing.T) {
	f := NewForm(60, 200)
	f.SetValues("Build API", "Backend work", "3")

	if _, ok := f.Submit(); ok {
		t.Error("expected submit to fail before Configure")
	}
}

func TestFormConfirmAdvancesThenSubmits(t *testing.T) {
	b := board.New()
	f := newTestForm(t, b)
	f.SetValues("Build API", "Backend work", "3")

	if _, ok := f.Confirm(); ok {
		t.Fatal("expected first confirm to advance, not submit")
	}
	if f.focus != 1 {
		t.Fatalf("expected focus on field 1, got %d", f.focus)
	}
	if _, ok := f.Confirm(); ok {
		t.Fatal("expected second confirm to advance, not submit")
	}
	if f.focus != 2 {
		t.Fatalf("expected focus on field 2, got %d", f.focus)
	}

	p, ok := f.Confirm()
	if !ok {
		t.Fatalf("expected confirm on the last field to submit, alert: %q", f.Error())
	}
	if p.Title != "Build API" {
		t.Errorf("unexpected project title %q", p.Title)
	}
	if b.Len() != 1 {
		t.Errorf("expected board to hold 1 project, got %d", b.Len())
	}
}

func TestFormFocusCycling(t *testing.T) {
	f := NewForm(60, 200)

	f.NextField()
	f.NextField()
	f.NextField()
	if f.focus != 0 {
		t.Errorf("expected NextField to wrap to 0, got %d", f.focus)
	}

	f.PrevField()
	if f.focus != 2 {
		t.Errorf("expected PrevField to wrap to the last field, got %d", f.focus)
	}

	if !f.FocusedField().Numeric {
		t.Errorf("expected the last field to be the numeric one, got %+v", f.FocusedField())
	}
}

func TestFormUpdateForwardsToFocusedInput(t *testing.T) {
	f := NewForm(60, 200)

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	if got := f.value(form.KeyTitle); got != "hi" {
		t.Errorf("expected title input to receive keystrokes, got %q", got)
	}

	f.NextField()
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := f.value(form.KeyDescription); got != "x" {
		t.Errorf("expected description input to receive keystrokes, got %q", got)
	}
}

func TestFormUpdateDismissesAlert(t *testing.T) {
	b := board.New()
	f := newTestForm(t, b)

	f.SetValues("", "", "")
	f.Submit()
	if f.Error() == "" {
		t.Fatal("expected an alert after an invalid submit")
	}

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("B")})
	if f.Error() != "" {
		t.Errorf("expected alert dismissed on the next keypress, got %q", f.Error())
	}
}

func TestFormEndToEndWithActiveList(t *testing.T) {
	b := board.New()
	f := newTestForm(t, b)
	active := NewList(project.StatusActive)
	active.Configure(b)

	// Invalid submit leaves the list untouched.
	f.SetValues("Build API", "Bad", "3")
	if _, ok := f.Submit(); ok {
		t.Fatal("expected invalid submit to fail")
	}
	if active.Len() != 0 {
		t.Fatalf("expected the list to stay empty, got %d", active.Len())
	}

	// Valid submits append in order.
	f.SetValues("Build API", "Backend work", "3")
	if _, ok := f.Submit(); !ok {
		t.Fatalf("expected valid submit to succeed, alert: %q", f.Error())
	}
	f.SetValues("Write docs", "User guide covering setup", "1")
	if _, ok := f.Submit(); !ok {
		t.Fatalf("expected valid submit to succeed, alert: %q", f.Error())
	}

	out := active.RenderContent(60)
	first := strings.Index(out, "Build API")
	second := strings.Index(out, "Write docs")
	if first < 0 || second < 0 {
		t.Fatalf("expected both projects in the active list, got: %s", out)
	}
	if first > second {
		t.Errorf("expected projects appended in submit order, got: %s", out)
	}
	if !strings.Contains(out, "3 persons assigned") || !strings.Contains(out, "1 person assigned") {
		t.Errorf("expected assignment lines for both projects, got: %s", out)
	}
}

func TestFormRenderContent(t *testing.T) {
	f := NewForm(60, 200)

	out := f.RenderContent(60)
	for _, want := range []string{"NEW PROJECT", "Title", "Description", "People"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got: %s", want, out)
		}
	}
}
