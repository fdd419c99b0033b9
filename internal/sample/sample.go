// Package sample provides the demo projects behind `start --sample`.
package sample

import (
	"time"

	"github.com/pkoester/boardwalk/internal/project"
)

// Projects returns a small mixed-status seed set so both panels have
// content to show when trying the UI.
func Projects() []project.Project {
	now := time.Now()

	mk := func(title, description string, people int, status project.Status, age time.Duration) project.Project {
		p := project.New(title, description, people)
		p.Status = status
		p.Created = now.Add(-age)
		return p
	}

	return []project.Project{
		mk("Website relaunch", "Rebuild the marketing site on the new stack", 3, project.StatusActive, 72*time.Hour),
		mk("Onboarding revamp", "Shorten the new hire ramp to two weeks", 2, project.StatusActive, 48*time.Hour),
		mk("Quarterly audit", "Close out the Q3 compliance checklist", 1, project.StatusActive, 24*time.Hour),
		mk("Logging migration", "Move every service onto structured logs", 4, project.StatusFinished, 240*time.Hour),
		mk("Support rotation", "Staff the summer escalation schedule", 2, project.StatusFinished, 120*time.Hour),
	}
}
