package widgets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage stands in for the document: a scroll-lock flag and a set of
// registered key listeners.
type fakePage struct {
	scrollLocked bool
	listeners    int
	acquires     int
}

func (p *fakePage) scrollLock() Acquirer {
	return AcquirerFunc(func() (func(), error) {
		p.acquires++
		p.scrollLocked = true
		return func() { p.scrollLocked = false }, nil
	})
}

func (p *fakePage) escapeListener() Acquirer {
	return AcquirerFunc(func() (func(), error) {
		p.listeners++
		return func() { p.listeners-- }, nil
	})
}

func TestMenuOpenAcquiresScrollLock(t *testing.T) {
	page := &fakePage{}
	m := NewMenu(page.scrollLock(), page.escapeListener())

	require.NoError(t, m.Open())
	assert.True(t, m.IsOpen())
	assert.True(t, page.scrollLocked)
	assert.Equal(t, 1, page.listeners)

	// Opening twice does not acquire twice
	require.NoError(t, m.Open())
	assert.Equal(t, 1, page.acquires)
	assert.Equal(t, 1, page.listeners)
}

func TestMenuEveryClosePathReleases(t *testing.T) {
	reasons := []CloseReason{CloseBackdrop, CloseButton, CloseEscape, CloseLink}

	for _, reason := range reasons {
		t.Run(string(reason), func(t *testing.T) {
			page := &fakePage{}
			m := NewMenu(page.scrollLock(), page.escapeListener())

			require.NoError(t, m.Open())
			assert.True(t, m.Close(reason))

			assert.Equal(t, MenuClosed, m.State())
			assert.False(t, page.scrollLocked)
			assert.Equal(t, 0, page.listeners)
		})
	}
}

func TestMenuNoLeakAcrossCycles(t *testing.T) {
	page := &fakePage{}
	m := NewMenu(page.scrollLock(), page.escapeListener())

	for i := 0; i < 25; i++ {
		require.NoError(t, m.Open())
		assert.Equal(t, 1, page.listeners)
		m.Close(CloseEscape)
		assert.Equal(t, 0, page.listeners)
	}

	// Extra closes are harmless
	assert.False(t, m.Close(CloseEscape))
	assert.Equal(t, 0, page.listeners)
}

func TestMenuDisposeReleases(t *testing.T) {
	page := &fakePage{}
	m := NewMenu(page.scrollLock(), page.escapeListener())

	require.NoError(t, m.Open())
	m.Dispose()

	assert.False(t, page.scrollLocked)
	assert.Equal(t, 0, page.listeners)
	assert.ErrorIs(t, m.Open(), ErrMenuDisposed)
}

func TestMenuFailedAcquireRollsBack(t *testing.T) {
	page := &fakePage{}
	failing := AcquirerFunc(func() (func(), error) {
		return nil, errors.New("no keyboard")
	})
	m := NewMenu(page.scrollLock(), failing)

	err := m.Open()
	require.Error(t, err)
	assert.False(t, m.IsOpen())
	assert.False(t, page.scrollLocked)
}
