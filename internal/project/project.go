// Package project defines the project data model shared by the board,
// the TUI components, the exporters and the CLI.
package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Field bounds shared by the intake form, the check command and tests.
const (
	// MinPeople is the smallest accepted headcount.
	MinPeople = 1
	// MaxPeople is the largest accepted headcount.
	MaxPeople = 5
	// MinDescription is the minimum description length in bytes.
	MinDescription = 5
)

// Project is a single tracked project. Projects are immutable once
// created: there are no edit or delete operations, and the board never
// reorders or removes them.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	People      int       `json:"people"`
	Status      Status    `json:"status"`
	Created     time.Time `json:"created"`
}

// New creates an Active project with a fresh identifier. Validation is
// the caller's job; New never rejects its input.
func New(title, description string, people int) Project {
	return Project{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
		Created:     time.Now(),
	}
}

// PeopleLabel formats the headcount for display: "1 person" for exactly
// one, "N persons" for everything else.
func (p Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d persons", p.People)
}

// FilterByStatus returns the projects matching status in input order.
// The input slice is never modified. An empty result is an empty slice,
// not nil, so callers can range and len without nil checks.
func FilterByStatus(projects []Project, status Status) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// ValidStatuses returns the statuses a project can hold.
func ValidStatuses() []Status {
	return []Status{StatusActive, StatusFinished}
}
