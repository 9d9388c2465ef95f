//go:build unix

package driver

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ansiDriver renders by emitting ANSI sequences directly to the tty,
// bypassing terminfo/termcap. Diff-based: only changed cells are rewritten.
type ansiDriver struct {
	out     *os.File
	outFd   int
	inFd    int
	oldTerm *term.State

	output      *outputBuffer
	initialized bool
	finalized   bool
}

func newANSIDriver(opt Options) (Driver, error) {
	mode := opt.ColorMode
	if mode == ColorModeAuto {
		mode = DetectColorMode()
	}
	d := &ansiDriver{
		out:   os.Stdout,
		outFd: int(os.Stdout.Fd()),
		inFd:  int(os.Stdin.Fd()),
	}
	d.output = newOutputBuffer(d.out, mode)
	return d, nil
}

func (d *ansiDriver) Init() error {
	if d.initialized {
		return nil
	}
	if !term.IsTerminal(d.outFd) {
		return fmt.Errorf("stdout is not a terminal")
	}

	old, err := term.MakeRaw(d.inFd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	d.oldTerm = old

	d.out.Write(csiAltScreenEnter)
	d.out.Write(csiCursorHide)
	d.out.Write(csiAutoWrapOff)

	w, h := d.Size()
	d.output.resize(w, h)
	d.output.clear(RGBBlack)

	d.initialized = true
	return nil
}

func (d *ansiDriver) Fini() {
	if !d.initialized || d.finalized {
		return
	}

	d.out.Write(csiCursorShow)
	d.out.Write(csiAltScreenExit)
	// Re-enable auto-wrap after exiting alt screen so the main buffer wraps
	d.out.Write(csiAutoWrapOn)
	d.out.Write(csiSGR0)

	if d.oldTerm != nil {
		term.Restore(d.inFd, d.oldTerm)
	}
	d.finalized = true
}

func (d *ansiDriver) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(d.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

func (d *ansiDriver) Flush(cells []Cell, width, height int) {
	if !d.initialized || d.finalized {
		return
	}
	d.output.flush(cells, width, height)
}

func (d *ansiDriver) Sync() {
	if !d.initialized || d.finalized {
		return
	}
	d.output.clear(RGBBlack)
	d.output.forceFullRedraw()
}

func (d *ansiDriver) SetCursor(x, y int) {
	if !d.initialized || d.finalized {
		return
	}
	d.output.invalidateCursor()
	w := d.output.writer
	writeCursorPos(w, x, y)
	w.Flush()
}

func (d *ansiDriver) SetCursorVisible(visible bool) {
	if !d.initialized || d.finalized {
		return
	}
	if visible {
		d.out.Write(csiCursorShow)
	} else {
		d.out.Write(csiCursorHide)
	}
}

func (d *ansiDriver) Beep() {
	d.out.Write(bel)
}

// Flash pulses DECSCNM reverse video for a visible bell
func (d *ansiDriver) Flash() {
	if !d.initialized || d.finalized {
		return
	}
	d.out.Write(csiReverseVideoOn)
	d.out.Sync()
	time.Sleep(80 * time.Millisecond)
	d.out.Write(csiReverseVideoOff)
}
