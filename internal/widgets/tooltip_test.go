package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTooltipShowsHoveredTagline(t *testing.T) {
	tips := NewTooltips([]string{"Kitchen & Bath", "Fixtures", "Roofing"})

	_, _, ok := tips.Visible()
	assert.False(t, ok)

	tips.Enter(1)
	idx, tagline, ok := tips.Visible()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "Fixtures", tagline)

	// Moving to another item updates the text
	tips.Leave(1)
	tips.Enter(2)
	_, tagline, _ = tips.Visible()
	assert.Equal(t, "Roofing", tagline)
	assert.True(t, tips.IsVisible(2))
	assert.False(t, tips.IsVisible(1))

	tips.Leave(2)
	_, _, ok = tips.Visible()
	assert.False(t, ok)
}

func TestTooltipStaleLeaveIgnored(t *testing.T) {
	tips := NewTooltips([]string{"a", "b"})

	tips.Enter(0)
	tips.Enter(1)
	tips.Leave(0)

	idx, _, ok := tips.Visible()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	tips.Enter(7)
	idx, _, _ = tips.Visible()
	assert.Equal(t, 1, idx)
}

type fakeTimers struct {
	fns []func()
}

func (f *fakeTimers) afterFunc(d time.Duration, fn func()) *time.Timer {
	f.fns = append(f.fns, fn)
	return time.NewTimer(time.Hour)
}

func (f *fakeTimers) fireAll() {
	fns := f.fns
	f.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func TestDropdownDelayedClose(t *testing.T) {
	timers := &fakeTimers{}
	d := NewDropdown(DefaultDropdownCloseDelay)
	d.afterFunc = timers.afterFunc
	defer d.Stop()

	d.Enter(0, true)
	assert.Equal(t, 0, d.Open())

	d.Leave()
	assert.Equal(t, 0, d.Open(), "still open until the delay elapses")

	timers.fireAll()
	assert.Equal(t, -1, d.Open())
	assert.Equal(t, -1, d.Hovered())
}

func TestDropdownReenterCancelsClose(t *testing.T) {
	timers := &fakeTimers{}
	d := NewDropdown(DefaultDropdownCloseDelay)
	d.afterFunc = timers.afterFunc
	defer d.Stop()

	d.Enter(0, true)
	d.Leave()
	d.Enter(1, true)

	// The stale close fires but a newer Enter owns the state
	timers.fireAll()
	assert.Equal(t, 1, d.Open())

	d.Enter(2, false)
	assert.Equal(t, -1, d.Open())
	assert.Equal(t, 2, d.Hovered())
}
