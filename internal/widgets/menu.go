package widgets

import (
	"errors"
	"fmt"
	"sync"
)

// MenuState is the state of a mobile menu overlay.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// CloseReason records which exit path closed the menu.
type CloseReason string

const (
	CloseBackdrop CloseReason = "backdrop"
	CloseButton   CloseReason = "close-button"
	CloseEscape   CloseReason = "escape"
	CloseLink     CloseReason = "link"
	CloseUnmount  CloseReason = "unmount"
)

// ErrMenuDisposed is returned when opening a menu after Dispose.
var ErrMenuDisposed = errors.New("menu disposed")

// Acquirer acquires a resource that must be held only while the menu is
// open, returning the function that releases it. Scroll-lock and the
// escape-key listener are acquirers.
type Acquirer interface {
	Acquire() (release func(), err error)
}

// AcquirerFunc adapts a function to Acquirer.
type AcquirerFunc func() (func(), error)

// Acquire calls f.
func (f AcquirerFunc) Acquire() (func(), error) { return f() }

// lease holds the releases for one open period. Release runs each release
// exactly once, in reverse acquisition order.
type lease struct {
	once     sync.Once
	releases []func()
}

func (l *lease) release() {
	l.once.Do(func() {
		for i := len(l.releases) - 1; i >= 0; i-- {
			l.releases[i]()
		}
	})
}

// Menu is a mobile overlay with scoped resources. Resources are acquired
// when the menu enters MenuOpen and released on every path out of it:
// Close with any reason, or Dispose.
type Menu struct {
	mu        sync.Mutex
	state     MenuState
	resources []Acquirer
	current   *lease
	disposed  bool
}

// NewMenu returns a closed menu holding resources while open.
func NewMenu(resources ...Acquirer) *Menu {
	return &Menu{resources: resources}
}

// State returns the current state.
func (m *Menu) State() MenuState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsOpen reports whether the overlay is open.
func (m *Menu) IsOpen() bool {
	return m.State() == MenuOpen
}

// Open moves the menu to MenuOpen, acquiring every resource. Opening an open
// menu is a no-op. If an acquisition fails, the resources already acquired
// are released and the menu stays closed.
func (m *Menu) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disposed {
		return ErrMenuDisposed
	}
	if m.state == MenuOpen {
		return nil
	}

	l := &lease{}
	for _, r := range m.resources {
		release, err := r.Acquire()
		if err != nil {
			l.release()
			return fmt.Errorf("failed to acquire menu resource: %w", err)
		}
		if release != nil {
			l.releases = append(l.releases, release)
		}
	}

	m.current = l
	m.state = MenuOpen
	return nil
}

// Close moves the menu to MenuClosed and releases the open period's
// resources. Closing a closed menu is a no-op and reports false.
func (m *Menu) Close(reason CloseReason) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeLocked(reason)
}

func (m *Menu) closeLocked(reason CloseReason) bool {
	if m.state != MenuOpen {
		return false
	}
	m.current.release()
	m.current = nil
	m.state = MenuClosed
	return true
}

// Dispose closes the menu for good. Later Open calls fail.
func (m *Menu) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked(CloseUnmount)
	m.disposed = true
}
