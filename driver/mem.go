package driver

import "strings"

// Mem is a headless software framebuffer. It satisfies Driver without a
// display device, retaining the last flushed cells for inspection. Used by
// tests and by hosts that present the canvas through other means.
type Mem struct {
	cells  []Cell
	width  int
	height int

	cursorX, cursorY int
	cursorVisible    bool

	initialized bool
	finalized   bool

	// Counters for observable side effects
	Flushes int
	Syncs   int
	Beeps   int
	Flashes int
}

// NewMem creates a framebuffer of the given size. Zero or negative
// dimensions default to 80x24.
func NewMem(cols, rows int) *Mem {
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	return &Mem{
		cells:  make([]Cell, cols*rows),
		width:  cols,
		height: rows,
	}
}

func (m *Mem) Init() error {
	m.initialized = true
	return nil
}

func (m *Mem) Fini() {
	m.finalized = true
}

func (m *Mem) Size() (int, int) {
	return m.width, m.height
}

func (m *Mem) Flush(cells []Cell, width, height int) {
	if !m.initialized || m.finalized {
		return
	}
	if width != m.width || height != m.height || len(cells) < width*height {
		return
	}
	copy(m.cells, cells[:width*height])
	m.Flushes++
}

func (m *Mem) Sync() {
	m.Syncs++
}

func (m *Mem) SetCursor(x, y int) {
	m.cursorX, m.cursorY = x, y
}

func (m *Mem) SetCursorVisible(visible bool) {
	m.cursorVisible = visible
}

func (m *Mem) Beep() {
	m.Beeps++
}

func (m *Mem) Flash() {
	m.Flashes++
}

// Cursor reports the last hardware cursor position and visibility.
func (m *Mem) Cursor() (x, y int, visible bool) {
	return m.cursorX, m.cursorY, m.cursorVisible
}

// CellAt returns the flushed cell at (x, y), zero Cell if out of range.
func (m *Mem) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// Line renders one flushed row as plain text, zero runes as spaces.
func (m *Mem) Line(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < m.width; x++ {
		r := m.cells[y*m.width+x].Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Text renders the whole flushed framebuffer as newline-joined plain text.
func (m *Mem) Text() string {
	lines := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		lines[y] = m.Line(y)
	}
	return strings.Join(lines, "\n")
}
