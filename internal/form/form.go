// Package form declares the intake form's fields and their validation
// rules, shared by the TUI form component and the check command.
package form

import (
	"strconv"
	"strings"

	"github.com/pkoester/boardwalk/internal/project"
	"github.com/pkoester/boardwalk/internal/validate"
)

// Stable field keys for lookups and reporting.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyPeople      = "people"
)

// Field describes one intake form input.
type Field struct {
	Key         string
	Label       string
	Placeholder string

	// Numeric marks fields whose raw input is converted to an integer
	// before rule evaluation.
	Numeric bool

	Rules validate.Rules
}

// Fields returns the intake field descriptors in display order.
func Fields() []Field {
	return []Field{
		{
			Key:         KeyTitle,
			Label:       "Title",
			Placeholder: "Project title",
			Rules:       validate.Rules{Required: true},
		},
		{
			Key:         KeyDescription,
			Label:       "Description",
			Placeholder: "What is this project about?",
			Rules: validate.Rules{
				Required:  true,
				MinLength: validate.Ptr(project.MinDescription),
			},
		},
		{
			Key:         KeyPeople,
			Label:       "People",
			Placeholder: "1-5",
			Numeric:     true,
			Rules: validate.Rules{
				Required: true,
				Min:      validate.Ptr(float64(project.MinPeople)),
				Max:      validate.Ptr(float64(project.MaxPeople)),
			},
		},
	}
}

// Check validates one raw input against the field's rules. Numeric
// fields are converted first; input that does not parse as an integer
// is invalid.
func (f Field) Check(raw string) bool {
	if f.Numeric {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		return validate.Check(n, f.Rules)
	}
	return validate.Check(raw, f.Rules)
}

// Gather validates the three raw inputs together and, when every field
// passes, returns the typed tuple ready for the board. ok is false if
// any field fails; the raw inputs are never modified.
func Gather(title, description, people string) (string, string, int, bool) {
	fields := Fields()
	raw := map[string]string{
		KeyTitle:       title,
		KeyDescription: description,
		KeyPeople:      people,
	}

	for _, f := range fields {
		if !f.Check(raw[f.Key]) {
			return "", "", 0, false
		}
	}

	n, err := strconv.Atoi(strings.TrimSpace(people))
	if err != nil {
		return "", "", 0, false
	}
	return title, description, n, true
}
