package curses

import (
	"fmt"

	"github.com/lixenwraith/termcanvas/bell"
	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/driver"
)

// screenState is the subsystem lifecycle: a Screen exists only between
// Init (Active) and End (Shutdown).
type screenState uint8

const (
	stateActive screenState = iota
	stateShutdown
)

// Screen is the process-wide display state: the selected driver, the
// composition buffer the physical display mirrors, the color pair table
// and the implicit full-screen window. Exactly one Screen should be
// active per process.
type Screen struct {
	drv  driver.Driver
	bell *bell.Bell

	// Composition buffer, row-major, display-sized. Window refreshes
	// blit into it before the driver flush.
	buf    []driver.Cell
	width  int
	height int

	pairs      [PairCount]pairColors
	registered [PairCount]bool

	std       *Window
	windows   map[*Window]struct{}
	state     screenState
	cursorVis int
}

// Init performs the one-time subsystem setup: constructs the configured
// driver, acquires the display and builds the implicit full-screen
// window. An error here is unrecoverable for this layer; callers are
// expected to log it and terminate.
func Init(cfg config.Config) (*Screen, error) {
	drv, err := driver.Open(cfg.Driver, driver.Options{
		ColorMode: colorModeFor(cfg.ColorMode),
		Cols:      cfg.Cols,
		Rows:      cfg.Rows,
	})
	if err != nil {
		return nil, fmt.Errorf("curses: %w", err)
	}

	if err := drv.Init(); err != nil {
		return nil, fmt.Errorf("curses: driver init: %w", err)
	}

	w, h := drv.Size()
	s := &Screen{
		drv:     drv,
		buf:     make([]driver.Cell, w*h),
		width:   w,
		height:  h,
		windows: make(map[*Window]struct{}),
	}
	s.pairs[0] = pairColors{fg: ColorWhite, bg: ColorBlack}

	blank := driver.Cell{Rune: ' ', Fg: ColorWhite.RGB(), Bg: ColorBlack.RGB()}
	for i := range s.buf {
		s.buf[i] = blank
	}

	s.std = s.newWindow(h, w, 0, 0)

	s.cursorVis = 1
	if !cfg.CursorVisible {
		s.cursorVis = 0
	}
	drv.SetCursorVisible(s.cursorVis != 0)

	if cfg.AudibleBell {
		// No audio device is not fatal; the driver bell still rings
		if b, err := bell.Open(cfg.BellFreqHz); err == nil {
			s.bell = b
		}
	}

	return s, nil
}

func colorModeFor(name string) driver.ColorMode {
	switch name {
	case "256":
		return driver.ColorMode256
	case "truecolor":
		return driver.ColorModeTrueColor
	default:
		return driver.ColorModeAuto
	}
}

// ok guards operations against the shutdown state
func (s *Screen) ok() error {
	if s.state != stateActive {
		return ErrShutdown
	}
	return nil
}

// End tears the subsystem down: surviving windows are reclaimed, the
// driver releases the display, the bell closes. Safe to call once; any
// operation afterwards returns ErrShutdown.
func (s *Screen) End() {
	if s.state != stateActive {
		return
	}
	for w := range s.windows {
		w.deleted = true
		w.cells = nil
	}
	s.windows = nil
	s.std = nil

	s.drv.Fini()
	s.bell.Close()
	s.state = stateShutdown
}

// Driver exposes the selected backend, mainly so embedding hosts and
// tests can reach driver-specific surfaces such as the mem framebuffer.
func (s *Screen) Driver() driver.Driver {
	return s.drv
}

// Stdscr returns the implicit full-screen window.
func (s *Screen) Stdscr() *Window {
	return s.std
}

// Size returns display dimensions in cells (cols, rows).
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Refresh flushes the full-screen window to the display.
func (s *Screen) Refresh() error {
	if err := s.ok(); err != nil {
		return err
	}
	return s.std.Refresh()
}

// Erase blanks the full-screen window in place.
func (s *Screen) Erase() error {
	if err := s.ok(); err != nil {
		return err
	}
	return s.std.Erase()
}

// Clear blanks the full-screen window and forces a full repaint on the
// next refresh.
func (s *Screen) Clear() error {
	if err := s.ok(); err != nil {
		return err
	}
	return s.std.Clear()
}

// CursSet sets hardware cursor visibility for the whole display:
// 0 invisible, 1 normal, 2 very visible. Returns the previous value.
func (s *Screen) CursSet(visibility int) (int, error) {
	if err := s.ok(); err != nil {
		return 0, err
	}
	if visibility < 0 || visibility > 2 {
		return 0, ErrBadVisibility
	}
	prev := s.cursorVis
	s.cursorVis = visibility
	s.drv.SetCursorVisible(visibility != 0)
	return prev, nil
}

// Beep sounds the bell: the driver's native bell, plus the software tone
// when an audible bell was configured.
func (s *Screen) Beep() error {
	if err := s.ok(); err != nil {
		return err
	}
	s.drv.Beep()
	if s.bell != nil {
		s.bell.Ring()
	}
	return nil
}

// Flash produces the visible bell the driver supports.
func (s *Screen) Flash() error {
	if err := s.ok(); err != nil {
		return err
	}
	s.drv.Flash()
	return nil
}
