package widgets

import (
	"sync"
	"time"
)

// Tooltips tracks which item of a list shows its hover tooltip. At most one
// tooltip is visible; entering another item replaces it and leaving the
// hovered item hides it immediately.
type Tooltips struct {
	taglines []string
	active   int
}

// NewTooltips returns a tracker for items with the given taglines.
func NewTooltips(taglines []string) *Tooltips {
	return &Tooltips{taglines: append([]string(nil), taglines...), active: -1}
}

// Enter marks item i as hovered or focused. Out of range indexes are ignored.
func (t *Tooltips) Enter(i int) {
	if i < 0 || i >= len(t.taglines) {
		return
	}
	t.active = i
}

// Leave hides the tooltip if item i is the visible one.
func (t *Tooltips) Leave(i int) {
	if t.active == i {
		t.active = -1
	}
}

// Visible returns the visible item and its tagline.
func (t *Tooltips) Visible() (index int, tagline string, ok bool) {
	if t.active < 0 {
		return -1, "", false
	}
	return t.active, t.taglines[t.active], true
}

// IsVisible reports whether item i shows its tooltip.
func (t *Tooltips) IsVisible(i int) bool {
	return t.active >= 0 && t.active == i
}

// DefaultDropdownCloseDelay is how long a desktop dropdown stays open after
// the pointer leaves, so the gap between trigger and panel can be crossed.
const DefaultDropdownCloseDelay = 150 * time.Millisecond

// Dropdown tracks the hovered top-level nav item and its open submenu with a
// delayed close.
type Dropdown struct {
	mu         sync.Mutex
	hovered    int
	open       int
	closeDelay time.Duration
	afterFunc  func(time.Duration, func()) *time.Timer
	pending    *time.Timer
	generation int
}

// NewDropdown returns a Dropdown that closes delay after the pointer leaves.
func NewDropdown(delay time.Duration) *Dropdown {
	return &Dropdown{hovered: -1, open: -1, closeDelay: delay, afterFunc: time.AfterFunc}
}

// Enter cancels any pending close and marks item i hovered. Items with a
// submenu open it; others close whatever dropdown is open.
func (d *Dropdown) Enter(i int, hasSubmenu bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.hovered = i
	if hasSubmenu {
		d.open = i
	} else {
		d.open = -1
	}
}

// Leave schedules the close after the delay.
func (d *Dropdown) Leave() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	gen := d.generation
	d.pending = d.afterFunc(d.closeDelay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		// A later Enter or Leave owns the state now
		if gen != d.generation {
			return
		}
		d.hovered = -1
		d.open = -1
		d.pending = nil
	})
}

// Stop cancels any pending close. Call it when the navbar goes away.
func (d *Dropdown) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Dropdown) cancelLocked() {
	d.generation++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// CloseDelay is how long the dropdown stays open after Leave.
func (d *Dropdown) CloseDelay() time.Duration {
	return d.closeDelay
}

// Open returns the index of the open submenu, or -1.
func (d *Dropdown) Open() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Hovered returns the hovered item, or -1.
func (d *Dropdown) Hovered() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hovered
}
