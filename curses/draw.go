package curses

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termcanvas/driver"
)

// Default border and line glyphs, used when a zero glyph is supplied
const (
	defaultHLine    = '─'
	defaultVLine    = '│'
	defaultTopLeft  = '┌'
	defaultTopRight = '┐'
	defaultBotLeft  = '└'
	defaultBotRight = '┘'
)

// setCell writes one resolved cell, no cursor movement
func (w *Window) setCell(y, x int, r rune) {
	fg, bg := w.colors()
	w.cells[y*w.cols+x] = driver.Cell{Rune: r, Fg: fg, Bg: bg, Attrs: w.attrs}
}

// putRune writes a rune at the cursor and advances it by the rune's
// display width, wrapping at the right edge. At the bottom-right corner
// the cursor clamps; windows never scroll.
func (w *Window) putRune(r rune) {
	width := runewidth.RuneWidth(r)
	if width == 0 {
		return
	}

	// A wide rune that does not fit on this row wraps first
	if w.curX+width > w.cols && w.curX > 0 {
		w.curX = 0
		if w.curY < w.lines-1 {
			w.curY++
		} else {
			w.curX = w.cols - 1
			return
		}
	}

	w.setCell(w.curY, w.curX, r)
	if width == 2 && w.curX+1 < w.cols {
		// Continuation cell of a wide rune
		fg, bg := w.colors()
		w.cells[w.curY*w.cols+w.curX+1] = driver.Cell{Rune: 0, Fg: fg, Bg: bg, Attrs: w.attrs}
	}

	w.curX += width
	if w.curX >= w.cols {
		if w.curY < w.lines-1 {
			w.curY++
			w.curX = 0
		} else {
			w.curX = w.cols - 1
		}
	}
}

// AddCh writes one character code at the cursor and advances it.
func (w *Window) AddCh(ch rune) error {
	if err := w.ok(); err != nil {
		return err
	}
	w.putRune(ch)
	return nil
}

// MvAddCh moves the cursor to (y, x), then writes one character code.
func (w *Window) MvAddCh(y, x int, ch rune) error {
	if err := w.Move(y, x); err != nil {
		return err
	}
	w.putRune(ch)
	return nil
}

// Print writes a literal string at the cursor. This is the single write
// primitive; the formatted variants reduce to it.
func (w *Window) Print(text string) error {
	if err := w.ok(); err != nil {
		return err
	}
	for _, r := range text {
		w.putRune(r)
	}
	return nil
}

// MvPrint moves the cursor to (y, x), then writes a literal string.
func (w *Window) MvPrint(y, x int, text string) error {
	if err := w.Move(y, x); err != nil {
		return err
	}
	return w.Print(text)
}

// Printf formats through fmt and forwards the resulting literal string
// to Print.
func (w *Window) Printf(format string, args ...any) error {
	return w.Print(fmt.Sprintf(format, args...))
}

// MvPrintf formats through fmt and forwards to MvPrint.
func (w *Window) MvPrintf(y, x int, format string, args ...any) error {
	return w.MvPrint(y, x, fmt.Sprintf(format, args...))
}

// Erase blanks the window content in place. Idempotent: calling it
// repeatedly leaves identical canvas state.
func (w *Window) Erase() error {
	if err := w.ok(); err != nil {
		return err
	}
	w.blank()
	return nil
}

// Clear blanks the window and forces a full display repaint on the next
// refresh.
func (w *Window) Clear() error {
	if err := w.Erase(); err != nil {
		return err
	}
	w.clearNext = true
	return nil
}

// Border draws a one-cell border along the window bounds using the
// supplied glyphs: left side, right side, top, bottom, then the four
// corners. Zero glyphs select the default box-drawing set. The cursor
// does not move.
func (w *Window) Border(ls, rs, ts, bs, tl, tr, bl, br rune) error {
	if err := w.ok(); err != nil {
		return err
	}

	if ls == 0 {
		ls = defaultVLine
	}
	if rs == 0 {
		rs = defaultVLine
	}
	if ts == 0 {
		ts = defaultHLine
	}
	if bs == 0 {
		bs = defaultHLine
	}
	if tl == 0 {
		tl = defaultTopLeft
	}
	if tr == 0 {
		tr = defaultTopRight
	}
	if bl == 0 {
		bl = defaultBotLeft
	}
	if br == 0 {
		br = defaultBotRight
	}

	maxY, maxX := w.lines-1, w.cols-1

	for x := 1; x < maxX; x++ {
		w.setCell(0, x, ts)
		w.setCell(maxY, x, bs)
	}
	for y := 1; y < maxY; y++ {
		w.setCell(y, 0, ls)
		w.setCell(y, maxX, rs)
	}

	w.setCell(0, 0, tl)
	w.setCell(0, maxX, tr)
	w.setCell(maxY, 0, bl)
	w.setCell(maxY, maxX, br)
	return nil
}

// HLine moves the cursor to (y, x) and paints n repetitions of glyph to
// the right, clipped at the window edge. A zero glyph selects the
// default horizontal line.
func (w *Window) HLine(y, x int, glyph rune, n int) error {
	if err := w.Move(y, x); err != nil {
		return err
	}
	if glyph == 0 {
		glyph = defaultHLine
	}
	for i := 0; i < n && x+i < w.cols; i++ {
		w.setCell(y, x+i, glyph)
	}
	return nil
}

// VLine moves the cursor to (y, x) and paints n repetitions of glyph
// downward, clipped at the window edge. A zero glyph selects the
// default vertical line.
func (w *Window) VLine(y, x int, glyph rune, n int) error {
	if err := w.Move(y, x); err != nil {
		return err
	}
	if glyph == 0 {
		glyph = defaultVLine
	}
	for i := 0; i < n && y+i < w.lines; i++ {
		w.setCell(y+i, x, glyph)
	}
	return nil
}

// compose blits window rows [first, first+count) onto the screen
// composition buffer at the window origin, clipped to the display
func (w *Window) compose(first, count int) {
	s := w.scr
	for r := first; r < first+count && r < w.lines; r++ {
		dy := w.begY + r
		if dy < 0 || dy >= s.height {
			continue
		}
		for c := 0; c < w.cols; c++ {
			dx := w.begX + c
			if dx < 0 || dx >= s.width {
				continue
			}
			s.buf[dy*s.width+dx] = w.cells[r*w.cols+c]
		}
	}
}

// flush pushes the composition buffer through the driver and parks the
// hardware cursor on this window's cursor
func (w *Window) flush() {
	s := w.scr
	if w.clearNext {
		s.drv.Sync()
		w.clearNext = false
	}
	s.drv.Flush(s.buf, s.width, s.height)
	if s.cursorVis != 0 {
		s.drv.SetCursor(w.begX+w.curX, w.begY+w.curY)
	}
}

// Refresh flushes the window's pending content to the display.
func (w *Window) Refresh() error {
	if err := w.ok(); err != nil {
		return err
	}
	w.compose(0, w.lines)
	w.flush()
	return nil
}

// RedrawLines flushes the window, naming rows [first, first+count) as
// the ones believed dirty. The range is a performance hint only: the
// whole window is composed, so the result is observably equivalent to
// a full Refresh. The driver's diff layer keeps the actual output
// proportional to what changed.
func (w *Window) RedrawLines(first, count int) error {
	if err := w.ok(); err != nil {
		return err
	}
	if first < 0 || first >= w.lines || count <= 0 {
		return ErrOutOfBounds
	}
	w.compose(0, w.lines)
	w.flush()
	return nil
}
