package curses

// WindowPtr is the owning wrapper for a Window. It guarantees the
// erase → refresh → delete teardown runs exactly once, on Close, on
// Reset, or not at all after Release. At most one WindowPtr owns a
// window at a time.
//
// Usage: acquire a window, wrap it, defer Close:
//
//	w, err := scr.NewWindow(10, 20, 0, 0)
//	if err != nil { ... }
//	wp, err := curses.NewWindowPtr(w)
//	if err != nil { ... }
//	defer wp.Close()
//
// Get borrows the raw handle; the borrow is valid only while the
// wrapper holds the window and must never be deleted independently.
type WindowPtr struct {
	w *Window
}

// NewWindowPtr transfers ownership of w to the returned wrapper.
// Returns ErrOwned if w already has an owner.
func NewWindowPtr(w *Window) (*WindowPtr, error) {
	if err := w.ok(); err != nil {
		return nil, err
	}
	if w.owned {
		return nil, ErrOwned
	}
	w.owned = true
	return &WindowPtr{w: w}, nil
}

// Get borrows the owned window without transferring ownership.
// Returns nil after Release or Close.
func (p *WindowPtr) Get() *Window {
	return p.w
}

// Release detaches the window without cleanup and returns it. The
// caller takes over responsibility for deleting it; the wrapper's
// Close becomes a no-op.
func (p *WindowPtr) Release() *Window {
	w := p.w
	if w != nil {
		w.owned = false
	}
	p.w = nil
	return w
}

// Reset runs the cleanup on the currently owned window immediately and
// binds the wrapper to next, which may be nil. Returns ErrOwned if next
// already has an owner; the wrapper is left empty in that case.
func (p *WindowPtr) Reset(next *Window) error {
	p.cleanup()
	p.w = nil
	if next == nil {
		return nil
	}
	if err := next.ok(); err != nil {
		return err
	}
	if next.owned {
		return ErrOwned
	}
	next.owned = true
	p.w = next
	return nil
}

// Close runs erase, refresh, delete on the owned window, exactly once.
// Subsequent calls are no-ops. Always returns nil; teardown proceeds
// unconditionally even on a shut-down screen.
func (p *WindowPtr) Close() error {
	p.cleanup()
	p.w = nil
	return nil
}

// cleanup performs the teardown sequence on the owned window, if any
func (p *WindowPtr) cleanup() {
	w := p.w
	if w == nil || w.deleted {
		return
	}
	// Erase and refresh are best-effort; after screen shutdown only the
	// handle invalidation matters
	if w.scr.ok() == nil {
		w.Erase()
		w.Refresh()
	}
	w.owned = false
	w.delete()
}
