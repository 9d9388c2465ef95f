// Package driver defines the display backend contract for the curses layer
// and ships three interchangeable implementations:
//
//   - tcell: library-based terminal driver built on gdamore/tcell
//   - ansi: direct ANSI software renderer with cell-level diffing
//     (bypasses terminfo/termcap entirely; unix only)
//   - mem: headless in-memory framebuffer for tests and embedding
//
// A driver owns the physical display. The curses layer owns window canvases
// and hands the driver flattened, row-major cell buffers to flush.
package driver
