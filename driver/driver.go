package driver

import (
	"errors"
	"fmt"
)

// ErrUnknownDriver is returned by Open for an unrecognized driver name.
var ErrUnknownDriver = errors.New("unknown driver")

// Driver abstracts the physical display device.
//
// Drivers hold no window state. The curses layer composes windows into a
// single row-major cell buffer and pushes it through Flush. All calls are
// synchronous; callers serialize access.
type Driver interface {
	// Init acquires the display (raw mode, alternate screen, palette).
	// It is called exactly once, before any other method.
	Init() error

	// Fini releases the display and restores prior terminal state.
	// Safe to call multiple times.
	Fini()

	// Size returns current display dimensions in cells.
	Size() (width, height int)

	// Flush writes the cell buffer to the display.
	// Cells are row-major: cells[y*width + x].
	Flush(cells []Cell, width, height int)

	// Sync forces a full repaint on the next Flush.
	Sync()

	// SetCursor positions the hardware cursor (0-indexed).
	SetCursor(x, y int)

	// SetCursorVisible shows/hides the hardware cursor.
	SetCursorVisible(visible bool)

	// Beep sounds the display's native bell, if it has one.
	Beep()

	// Flash produces a visible bell, if the display supports one.
	Flash()
}

// Options configures driver construction.
type Options struct {
	// ColorMode selects color depth for drivers that render colors
	// themselves. ColorModeAuto detects from the environment.
	ColorMode ColorMode

	// Cols, Rows fix the framebuffer size for the mem driver.
	// Zero values default to 80x24.
	Cols, Rows int
}

// Open constructs a driver by name: "tcell", "ansi" or "mem".
// The driver is not initialized; callers must Init it.
func Open(name string, opt Options) (Driver, error) {
	switch name {
	case "tcell":
		return newTcellDriver()
	case "ansi":
		return newANSIDriver(opt)
	case "mem":
		return NewMem(opt.Cols, opt.Rows), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
}
