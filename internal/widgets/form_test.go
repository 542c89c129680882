package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormHappyPath(t *testing.T) {
	m := NewFormMachine()
	assert.Equal(t, FormIdle, m.State())
	assert.True(t, m.ShowsForm())

	require.NoError(t, m.Submit())
	assert.Equal(t, FormSubmitting, m.State())
	assert.True(t, m.SubmitDisabled())

	require.NoError(t, m.Succeed())
	assert.Equal(t, FormSubmitted, m.State())
	assert.False(t, m.ShowsForm())
}

func TestFormSubmittedIsTerminalWithoutReset(t *testing.T) {
	m := NewFormMachine()
	require.NoError(t, m.Submit())
	require.NoError(t, m.Succeed())

	for _, e := range []FormEvent{EventSubmit, EventSucceed, EventFail} {
		err := m.Fire(e)
		assert.ErrorIs(t, err, ErrIllegalTransition, "event %s", e)
		assert.Equal(t, FormSubmitted, m.State())
	}

	require.NoError(t, m.Reset())
	assert.Equal(t, FormIdle, m.State())
	assert.True(t, m.ShowsForm())
}

func TestFormFailureAndRetry(t *testing.T) {
	m := NewFormMachine()
	require.NoError(t, m.Submit())
	require.NoError(t, m.Fail("We could not save your request."))

	assert.Equal(t, FormFailed, m.State())
	assert.Equal(t, "We could not save your request.", m.Failure())
	assert.True(t, m.ShowsForm())
	assert.False(t, m.SubmitDisabled())

	require.NoError(t, m.Submit())
	assert.Empty(t, m.Failure())
	require.NoError(t, m.Succeed())
}

func TestFormIllegalFromIdle(t *testing.T) {
	m := NewFormMachine()
	assert.ErrorIs(t, m.Succeed(), ErrIllegalTransition)
	assert.ErrorIs(t, m.Fail("x"), ErrIllegalTransition)
	assert.ErrorIs(t, m.Reset(), ErrIllegalTransition)
	assert.Equal(t, FormIdle, m.State())
	assert.Empty(t, m.Failure())
}

func TestLogoCardIsolation(t *testing.T) {
	cards := []*LogoCard{
		NewLogoCard("Kohler", "Kitchen & Bath"),
		NewLogoCard("Moen", "Fixtures"),
		NewLogoCard("GAF", "Roofing"),
	}

	cards[0].Loaded()
	cards[1].Failed()
	cards[2].Loaded()

	assert.False(t, cards[0].Image().ShowsText())
	assert.True(t, cards[1].Image().ShowsText())
	assert.False(t, cards[2].Image().ShowsText())

	// A late load event does not resurrect a failed card
	cards[1].Loaded()
	assert.Equal(t, ImageFailed, cards[1].Image())
}
