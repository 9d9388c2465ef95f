package curses

import (
	"errors"
	"testing"

	"github.com/lixenwraith/termcanvas/driver"
)

func TestPrint_AdvancesCursor(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(5, 20, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	if err := w.MvPrint(1, 2, "Hello"); err != nil {
		t.Fatalf("MvPrint failed: %v", err)
	}
	if w.CurY() != 1 || w.CurX() != 7 {
		t.Errorf("cursor at (%d,%d), want (1,7)", w.CurY(), w.CurX())
	}

	if err := w.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if got := mem.Line(1); got != "  Hello" {
		t.Errorf("line 1 = %q, want %q", got, "  Hello")
	}
}

func TestPrint_WrapsAtRightEdge(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(3, 4, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	if err := w.Print("abcdef"); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	w.Refresh()

	if got := mem.Line(0); got != "abcd" {
		t.Errorf("line 0 = %q, want %q", got, "abcd")
	}
	if got := mem.Line(1); got != "ef" {
		t.Errorf("line 1 = %q, want %q", got, "ef")
	}
	if w.CurY() != 1 || w.CurX() != 2 {
		t.Errorf("cursor at (%d,%d), want (1,2)", w.CurY(), w.CurX())
	}
}

func TestPrint_ClampsAtBottomRight(t *testing.T) {
	scr, _ := newTestScreen(t)

	w, err := scr.NewWindow(2, 3, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	// More characters than cells; window must not scroll
	if err := w.Print("0123456789"); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if w.CurY() != 1 || w.CurX() != 2 {
		t.Errorf("cursor at (%d,%d), want clamped (1,2)", w.CurY(), w.CurX())
	}
}

func TestPrint_WideRunes(t *testing.T) {
	scr, _ := newTestScreen(t)

	w, err := scr.NewWindow(2, 10, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	if err := w.Print("日本"); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if w.CurX() != 4 {
		t.Errorf("cursor column = %d, want 4 after two wide runes", w.CurX())
	}
}

func TestPrintf_ForwardsToFormattedLiteral(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(3, 20, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	if err := w.MvPrintf(0, 0, "hp %d/%d", 7, 10); err != nil {
		t.Fatalf("MvPrintf failed: %v", err)
	}
	if err := w.Printf(" (%s)", "ok"); err != nil {
		t.Fatalf("Printf failed: %v", err)
	}
	w.Refresh()

	if got := mem.Line(0); got != "hp 7/10 (ok)" {
		t.Errorf("line 0 = %q, want %q", got, "hp 7/10 (ok)")
	}
}

func TestMvAddCh(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(3, 10, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	if err := w.MvAddCh(2, 4, '@'); err != nil {
		t.Fatalf("MvAddCh failed: %v", err)
	}
	if w.CurX() != 5 {
		t.Errorf("cursor column = %d, want 5", w.CurX())
	}
	if err := w.MvAddCh(3, 0, 'x'); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("MvAddCh out of bounds: expected ErrOutOfBounds, got %v", err)
	}
	w.Refresh()

	if got := mem.CellAt(4, 2).Rune; got != '@' {
		t.Errorf("cell (4,2) = %q, want '@'", got)
	}
}

func TestErase_Idempotent(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(4, 10, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	w.MvPrint(1, 1, "content")
	if err := w.Erase(); err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	w.Refresh()
	once := mem.Text()

	if err := w.Erase(); err != nil {
		t.Fatalf("second Erase failed: %v", err)
	}
	w.Refresh()
	twice := mem.Text()

	if once != twice {
		t.Errorf("erase is not idempotent:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
	if mem.Line(1) != "" {
		t.Errorf("line 1 should be blank after erase, got %q", mem.Line(1))
	}
}

func TestBorder_Defaults(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(4, 6, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	if err := w.Border(0, 0, 0, 0, 0, 0, 0, 0); err != nil {
		t.Fatalf("Border failed: %v", err)
	}
	w.Refresh()

	if got := mem.Line(0); got != "┌────┐" {
		t.Errorf("top border = %q, want %q", got, "┌────┐")
	}
	if got := mem.Line(3); got != "└────┘" {
		t.Errorf("bottom border = %q, want %q", got, "└────┘")
	}
	if got := mem.CellAt(0, 1).Rune; got != '│' {
		t.Errorf("left side = %q, want '│'", got)
	}
	if got := mem.CellAt(5, 2).Rune; got != '│' {
		t.Errorf("right side = %q, want '│'", got)
	}
}

func TestBorder_CustomGlyphs(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(3, 5, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	if err := w.Border('L', 'R', 'T', 'B', '1', '2', '3', '4'); err != nil {
		t.Fatalf("Border failed: %v", err)
	}
	w.Refresh()

	if got := mem.Line(0); got != "1TTT2" {
		t.Errorf("top = %q, want %q", got, "1TTT2")
	}
	if got := mem.Line(2); got != "3BBB4" {
		t.Errorf("bottom = %q, want %q", got, "3BBB4")
	}
	if got := mem.CellAt(0, 1).Rune; got != 'L' {
		t.Errorf("left = %q, want 'L'", got)
	}
	if got := mem.CellAt(4, 1).Rune; got != 'R' {
		t.Errorf("right = %q, want 'R'", got)
	}
}

func TestHLineVLine(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(6, 12, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	if err := w.HLine(1, 2, '=', 5); err != nil {
		t.Fatalf("HLine failed: %v", err)
	}
	if err := w.VLine(1, 8, '#', 4); err != nil {
		t.Fatalf("VLine failed: %v", err)
	}
	// Length beyond the edge clips
	if err := w.HLine(5, 10, '-', 99); err != nil {
		t.Fatalf("clipped HLine failed: %v", err)
	}
	w.Refresh()

	if got := mem.Line(1); got != "  ===== #" {
		t.Errorf("line 1 = %q, want %q", got, "  ===== #")
	}
	for y := 1; y <= 4; y++ {
		if got := mem.CellAt(8, y).Rune; got != '#' {
			t.Errorf("cell (8,%d) = %q, want '#'", y, got)
		}
	}
	if got := mem.Line(5); got != "          --" {
		t.Errorf("line 5 = %q, want %q", got, "          --")
	}

	if err := w.HLine(9, 0, '-', 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("HLine out of bounds: expected ErrOutOfBounds, got %v", err)
	}
}

func TestRedrawLines_EquivalentToRefresh(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(4, 10, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	w.MvPrint(0, 0, "line0")
	w.MvPrint(1, 0, "line1")
	w.MvPrint(2, 0, "line2")
	if err := w.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	full := mem.Text()

	// Change one line inside the hinted range and one outside it;
	// both must reach the display
	w.MvPrint(1, 0, "LINE1")
	w.MvPrint(2, 0, "LINE2")
	if err := w.RedrawLines(1, 1); err != nil {
		t.Fatalf("RedrawLines failed: %v", err)
	}
	partial := mem.Text()
	if got := mem.Line(2); got != "LINE2" {
		t.Errorf("row outside the hinted range = %q, want %q", got, "LINE2")
	}

	// Now a full refresh must not change anything further
	if err := w.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if mem.Text() != partial {
		t.Error("RedrawLines result differs from a full refresh")
	}
	if partial == full {
		t.Error("RedrawLines did not push the changed line")
	}

	if err := w.RedrawLines(4, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("RedrawLines past end: expected ErrOutOfBounds, got %v", err)
	}
	if err := w.RedrawLines(0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("RedrawLines zero count: expected ErrOutOfBounds, got %v", err)
	}
}

func TestRefresh_CompositesAtOrigin(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(2, 6, 3, 5)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	w.MvPrint(0, 0, "offset")
	if err := w.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if got := mem.Line(3); got != "     offset" {
		t.Errorf("line 3 = %q, want %q", got, "     offset")
	}

	// The window cursor wrapped to (1,0); the hardware cursor parks
	// there, display-relative
	x, y, _ := mem.Cursor()
	if x != 5 || y != 4 {
		t.Errorf("hardware cursor at (%d,%d), want (%d,%d)", x, y, 5, 4)
	}
}

func TestEndToEndScenario(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(10, 20, 0, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := w.MvPrint(0, 0, "Hello"); err != nil {
		t.Fatalf("put-string: %v", err)
	}
	if err := w.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := mem.Line(0); got != "Hello" {
		t.Fatalf("display shows %q, want %q", got, "Hello")
	}
	if err := w.Delete(); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if err := w.Print("x"); !errors.Is(err, ErrWindowDeleted) {
		t.Errorf("post-destroy op: expected ErrWindowDeleted, got %v", err)
	}
}

func TestAttrsApplyToWrites(t *testing.T) {
	scr, mem := newTestScreen(t)

	w, err := scr.NewWindow(2, 10, 0, 0)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	defer w.Delete()

	w.AttrOn(AttrBold)
	w.MvPrint(0, 0, "b")
	w.AttrOff(AttrBold)
	w.Print("n")
	w.Refresh()

	if got := mem.CellAt(0, 0).Attrs; got&driver.AttrBold == 0 {
		t.Errorf("cell (0,0) attrs = %v, want bold", got)
	}
	if got := mem.CellAt(1, 0).Attrs; got&driver.AttrBold != 0 {
		t.Errorf("cell (1,0) attrs = %v, want no bold", got)
	}
}
