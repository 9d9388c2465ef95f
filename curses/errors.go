package curses

import "errors"

var (
	// ErrShutdown is returned for any operation after Screen.End.
	ErrShutdown = errors.New("curses: screen is shut down")

	// ErrWindowDeleted is returned for any operation on a deleted window.
	ErrWindowDeleted = errors.New("curses: window is deleted")

	// ErrBadDimensions is returned by NewWindow for non-positive sizes.
	ErrBadDimensions = errors.New("curses: window dimensions must be positive")

	// ErrOutOfBounds is returned for coordinates outside the window.
	ErrOutOfBounds = errors.New("curses: coordinates out of bounds")

	// ErrBadPair is returned for an invalid color pair index or color.
	ErrBadPair = errors.New("curses: bad color pair")

	// ErrOwned is returned when a second owner is attached to a window,
	// or a window under ownership is deleted directly.
	ErrOwned = errors.New("curses: window is owned by a WindowPtr")

	// ErrBadVisibility is returned by CursSet for values other than 0-2.
	ErrBadVisibility = errors.New("curses: cursor visibility must be 0, 1 or 2")
)
