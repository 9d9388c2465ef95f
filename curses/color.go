package curses

import "github.com/lixenwraith/termcanvas/driver"

// Color is one of the eight base colors usable as pair foreground or
// background.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	colorCount
)

// colorRGB maps base colors to their canonical palette values
var colorRGB = [colorCount]driver.RGB{
	ColorBlack:   {R: 0, G: 0, B: 0},
	ColorRed:     {R: 196, G: 0, B: 0},
	ColorGreen:   {R: 0, G: 196, B: 0},
	ColorYellow:  {R: 196, G: 180, B: 30},
	ColorBlue:    {R: 0, G: 0, B: 196},
	ColorMagenta: {R: 196, G: 0, B: 180},
	ColorCyan:    {R: 0, G: 170, B: 200},
	ColorWhite:   {R: 196, G: 196, B: 196},
}

// RGB returns the palette value rendered for the color.
func (c Color) RGB() driver.RGB {
	if c >= colorCount {
		return driver.RGBBlack
	}
	return colorRGB[c]
}

// AttrCode composes style flags and a color pair selector into one value
// for AttrOn/AttrOff. Style flags occupy the low byte, the pair index the
// next byte. Flags are orthogonal and combine with bitwise or.
type AttrCode uint32

const (
	AttrNormal    AttrCode = 0
	AttrBold      AttrCode = AttrCode(driver.AttrBold)
	AttrDim       AttrCode = AttrCode(driver.AttrDim)
	AttrUnderline AttrCode = AttrCode(driver.AttrUnderline)
	AttrBlink     AttrCode = AttrCode(driver.AttrBlink)
	AttrReverse   AttrCode = AttrCode(driver.AttrReverse)
)

const attrStyleMask AttrCode = 0xff

// PairCount is the size of the color pair table. Pair 0 is the immutable
// default (white on black); indices 1 through PairCount-1 are registrable.
const PairCount = 256

// ColorPair selects a registered color pair in an AttrCode.
func ColorPair(index int16) AttrCode {
	if index <= 0 || index >= PairCount {
		return 0
	}
	return AttrCode(uint32(index) << 8)
}

// style returns the driver attribute bits of the code
func (c AttrCode) style() driver.Attr {
	return driver.Attr(c & attrStyleMask)
}

// pairIndex returns the color pair selector of the code, 0 if none
func (c AttrCode) pairIndex() int16 {
	return int16((c >> 8) & 0xff)
}

// pairColors is a registered foreground/background combination
type pairColors struct {
	fg, bg Color
}

// InitPair registers color pair index with the given foreground and
// background. Indices 1..255 are valid; pair 0 is reserved. The
// registration is process-wide and stable: later reads return exactly
// what was registered. Re-registering an index overwrites it (last
// write wins) and the result is stable thereafter.
func (s *Screen) InitPair(index int16, fg, bg Color) error {
	if err := s.ok(); err != nil {
		return err
	}
	if index <= 0 || index >= PairCount {
		return ErrBadPair
	}
	if fg >= colorCount || bg >= colorCount {
		return ErrBadPair
	}
	s.pairs[index] = pairColors{fg: fg, bg: bg}
	s.registered[index] = true
	return nil
}

// PairContent reports the colors registered for a pair index.
func (s *Screen) PairContent(index int16) (fg, bg Color, err error) {
	if err := s.ok(); err != nil {
		return 0, 0, err
	}
	if index < 0 || index >= PairCount || (index != 0 && !s.registered[index]) {
		return 0, 0, ErrBadPair
	}
	p := s.pairs[index]
	return p.fg, p.bg, nil
}

// AttrOn enables the code's style flags for subsequent writes on the
// window, and selects its color pair if one is encoded. Attributes
// compose with previously enabled ones; cells already written keep the
// style they were written with.
func (w *Window) AttrOn(code AttrCode) error {
	if err := w.ok(); err != nil {
		return err
	}
	w.attrs |= code.style()
	if p := code.pairIndex(); p != 0 {
		w.pair = p
	}
	return nil
}

// AttrOff disables the code's style flags for subsequent writes. Flags
// not named by the code stay active. If the code selects the window's
// current color pair, the window reverts to pair 0.
func (w *Window) AttrOff(code AttrCode) error {
	if err := w.ok(); err != nil {
		return err
	}
	w.attrs &^= code.style()
	if p := code.pairIndex(); p != 0 && p == w.pair {
		w.pair = 0
	}
	return nil
}
