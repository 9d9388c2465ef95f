package curses

import "github.com/lixenwraith/termcanvas/driver"

// Window is a rectangular character canvas positioned on the display.
//
// Lifetime contract: a Window is valid from NewWindow until Delete (or
// its owning WindowPtr's cleanup). After deletion every operation
// returns ErrWindowDeleted and queries return -1. Windows are never
// resurrected.
type Window struct {
	scr   *Screen
	cells []driver.Cell

	lines int // height in cells
	cols  int // width in cells
	begY  int // origin row on the display
	begX  int // origin column on the display

	curY, curX int

	attrs driver.Attr
	pair  int16

	clearNext bool
	deleted   bool
	owned     bool
}

// NewWindow creates a lines x cols window with its top-left corner at
// row y, column x of the display. Dimensions must be positive. The new
// window is blank, with the cursor at its origin and default attributes.
func (s *Screen) NewWindow(lines, cols, y, x int) (*Window, error) {
	if err := s.ok(); err != nil {
		return nil, err
	}
	if lines <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	return s.newWindow(lines, cols, y, x), nil
}

func (s *Screen) newWindow(lines, cols, y, x int) *Window {
	w := &Window{
		scr:   s,
		cells: make([]driver.Cell, lines*cols),
		lines: lines,
		cols:  cols,
		begY:  y,
		begX:  x,
	}
	w.blank()
	s.windows[w] = struct{}{}
	return w
}

// blank fills every cell with a space in the window's current colors
func (w *Window) blank() {
	fg, bg := w.colors()
	c := driver.Cell{Rune: ' ', Fg: fg, Bg: bg}
	for i := range w.cells {
		w.cells[i] = c
	}
}

// colors resolves the window's current pair to concrete values
func (w *Window) colors() (fg, bg driver.RGB) {
	p := w.scr.pairs[w.pair]
	return p.fg.RGB(), p.bg.RGB()
}

// ok guards operations against deletion and screen shutdown
func (w *Window) ok() error {
	if w == nil || w.deleted {
		return ErrWindowDeleted
	}
	return w.scr.ok()
}

// Delete releases the window. The handle is invalid for any further
// operation. A window under WindowPtr ownership must be deleted through
// its owner, not directly.
func (w *Window) Delete() error {
	if err := w.ok(); err != nil {
		return err
	}
	if w.owned {
		return ErrOwned
	}
	w.delete()
	return nil
}

// delete is the ownership-agnostic teardown used by Delete and WindowPtr
func (w *Window) delete() {
	delete(w.scr.windows, w)
	w.cells = nil
	w.deleted = true
}

// Move repositions the window cursor to row y, column x.
func (w *Window) Move(y, x int) error {
	if err := w.ok(); err != nil {
		return err
	}
	if y < 0 || y >= w.lines || x < 0 || x >= w.cols {
		return ErrOutOfBounds
	}
	w.curY, w.curX = y, x
	return nil
}

// MaxY returns the window height in rows, -1 if the window is deleted.
func (w *Window) MaxY() int {
	if w.ok() != nil {
		return -1
	}
	return w.lines
}

// MaxX returns the window width in columns, -1 if the window is deleted.
func (w *Window) MaxX() int {
	if w.ok() != nil {
		return -1
	}
	return w.cols
}

// BegY returns the window's origin row on the display.
func (w *Window) BegY() int {
	if w.ok() != nil {
		return -1
	}
	return w.begY
}

// BegX returns the window's origin column on the display.
func (w *Window) BegX() int {
	if w.ok() != nil {
		return -1
	}
	return w.begX
}

// CurY returns the cursor row.
func (w *Window) CurY() int {
	if w.ok() != nil {
		return -1
	}
	return w.curY
}

// CurX returns the cursor column.
func (w *Window) CurX() int {
	if w.ok() != nil {
		return -1
	}
	return w.curX
}
