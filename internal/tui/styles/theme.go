package styles

import "github.com/pkoester/boardwalk/internal/errors"

// current tracks the name of the active theme.
var current = ThemeDefault

// Apply switches the active theme and rebuilds every package-level
// style from its palette. Unknown names return a NotFoundError and
// leave the active theme unchanged.
//
// Apply is not thread-safe. It is designed to be called only from the
// bubbletea event loop, which runs on a single goroutine.
func Apply(name ThemeName) error {
	if !IsValid(string(name)) {
		return errors.NewNotFoundError("theme", string(name))
	}
	current = name
	rebuild(GetPalette(name))
	return nil
}

// Current returns the name of the active theme.
func Current() ThemeName {
	return current
}
