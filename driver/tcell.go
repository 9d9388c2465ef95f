package driver

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// tcellDriver adapts a tcell.Screen to the Driver interface. This is the
// library-based backend: terminfo handling, input draining and terminal
// restoration are tcell's problem.
type tcellDriver struct {
	screen tcell.Screen

	initialized bool
	finalized   bool
}

func newTcellDriver() (Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return &tcellDriver{screen: screen}, nil
}

func (d *tcellDriver) Init() error {
	if d.initialized {
		return nil
	}
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	d.screen.HideCursor()
	d.initialized = true
	return nil
}

func (d *tcellDriver) Fini() {
	if !d.initialized || d.finalized {
		return
	}
	d.screen.Fini()
	d.finalized = true
}

func (d *tcellDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *tcellDriver) Flush(cells []Cell, width, height int) {
	if !d.initialized || d.finalized {
		return
	}
	if len(cells) < width*height {
		return
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			d.screen.SetContent(x, y, r, nil, toTcellStyle(c))
		}
	}
	d.screen.Show()
}

func (d *tcellDriver) Sync() {
	if !d.initialized || d.finalized {
		return
	}
	d.screen.Sync()
}

func (d *tcellDriver) SetCursor(x, y int) {
	if !d.initialized || d.finalized {
		return
	}
	d.screen.ShowCursor(x, y)
}

func (d *tcellDriver) SetCursorVisible(visible bool) {
	if !d.initialized || d.finalized {
		return
	}
	if !visible {
		d.screen.HideCursor()
	}
	// Visibility on is applied by the next SetCursor call; tcell has no
	// show-without-position operation.
}

func (d *tcellDriver) Beep() {
	if !d.initialized || d.finalized {
		return
	}
	d.screen.Beep()
}

// Flash approximates a visible bell with a forced repaint; tcell exposes
// no reverse-video pulse.
func (d *tcellDriver) Flash() {
	if !d.initialized || d.finalized {
		return
	}
	d.screen.Sync()
}

// toTcellStyle maps a Cell's colors and attributes to a tcell.Style
func toTcellStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))

	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
