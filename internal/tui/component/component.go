// Package component provides the panels that make up the boardwalk
// screen: the project intake form and the two status-filtered lists.
//
// Components render their own state to strings; layout, borders, and
// focus zones belong to the parent model. The board notifies listeners
// synchronously on the goroutine that calls Add, which in boardwalk is
// the bubbletea event loop, so components need no locking.
package component

import "github.com/pkoester/boardwalk/internal/board"

// Component is the capability surface shared by every boardwalk panel.
type Component interface {
	// Configure wires the component to the board exactly once: lists
	// subscribe for snapshots, the form binds its submit closure. The
	// model configures components in a fixed order at startup so
	// listener registration order is deterministic.
	Configure(b *board.Board)

	// RenderContent renders the component's current state into a panel
	// body constrained to the given width.
	RenderContent(width int) string
}
