// Package curses is a curses-style window drawing layer over
// interchangeable display drivers.
//
// Init selects a driver from configuration and returns the Screen, the
// explicit process-wide display state. Windows are rectangular character
// canvases created from the Screen; drawing primitives mutate a window's
// cells and Refresh pushes them through the driver to the display.
// WindowPtr provides scoped ownership: erase, refresh and delete exactly
// once when closed.
//
// The layer is single-threaded by contract: calls must be serialized by
// the caller, no internal locking is performed.
package curses
