// Package board owns the canonical project list for a session and
// notifies subscribers after every mutation.
package board

import (
	"sync"

	"github.com/pkoester/boardwalk/internal/event"
	"github.com/pkoester/boardwalk/internal/project"
)

// Listener receives a snapshot of the full project list after a
// mutation. Every listener gets its own copy; mutating it has no
// effect on the board or on other listeners.
type Listener = event.Listener[[]project.Project]

// Board is the single source of truth for projects in a session. It is
// constructed once in the command layer and passed by reference to
// every component; there is no package-level instance.
type Board struct {
	mu       sync.RWMutex
	projects []project.Project
	feed     *event.Feed[[]project.Project]
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithSeed installs an initial project set. Seeded projects keep the
// status they were constructed with; projects added later through Add
// always start Active.
func WithSeed(projects ...project.Project) Option {
	return func(b *Board) {
		b.projects = append(b.projects, projects...)
	}
}

// WithPanicHandler forwards recovered listener panics to h.
func WithPanicHandler(h func(recovered any, stack []byte)) Option {
	return func(b *Board) {
		b.feed.SetPanicHandler(h)
	}
}

// New creates a board.
func New(opts ...Option) *Board {
	b := &Board{feed: event.NewFeed[[]project.Project]()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a listener for future mutations. Listeners are
// notified synchronously, in registration order, and are never called
// at subscribe time; use Projects for the current state.
func (b *Board) Subscribe(fn Listener) string {
	return b.feed.Subscribe(fn)
}

// Add constructs an Active project from pre-validated input, appends
// it, and notifies every listener. Inputs are assumed validated by the
// caller; Add itself cannot fail.
func (b *Board) Add(title, description string, people int) project.Project {
	b.mu.Lock()
	p := project.New(title, description, people)
	b.projects = append(b.projects, p)
	b.mu.Unlock()

	// Each listener receives a fresh copy, outside the lock so
	// listeners can read the board without deadlocking.
	b.feed.PublishFunc(b.Projects)
	return p
}

// Projects returns a copy of the project list in insertion order.
func (b *Board) Projects() []project.Project {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snapshot := make([]project.Project, len(b.projects))
	copy(snapshot, b.projects)
	return snapshot
}

// Len returns the number of projects on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.projects)
}
