package widgets

import (
	"errors"
	"fmt"
)

// FormState is the state of the contact form.
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
	FormSubmitted
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormSubmitting:
		return "submitting"
	case FormSubmitted:
		return "submitted"
	case FormFailed:
		return "failed"
	default:
		return "idle"
	}
}

// FormEvent drives a FormMachine.
type FormEvent int

const (
	EventSubmit FormEvent = iota
	EventSucceed
	EventFail
	EventReset
)

func (e FormEvent) String() string {
	switch e {
	case EventSucceed:
		return "succeed"
	case EventFail:
		return "fail"
	case EventReset:
		return "reset"
	default:
		return "submit"
	}
}

// ErrIllegalTransition is returned for an event the current state does not accept.
var ErrIllegalTransition = errors.New("illegal form transition")

// Every legal transition. Submitted only leaves through an explicit reset.
var formTransitions = map[FormState]map[FormEvent]FormState{
	FormIdle:       {EventSubmit: FormSubmitting},
	FormSubmitting: {EventSucceed: FormSubmitted, EventFail: FormFailed},
	FormFailed:     {EventSubmit: FormSubmitting, EventReset: FormIdle},
	FormSubmitted:  {EventReset: FormIdle},
}

// FormMachine is the contact form state machine.
type FormMachine struct {
	state   FormState
	failure string
}

// NewFormMachine returns a machine in FormIdle.
func NewFormMachine() *FormMachine {
	return &FormMachine{}
}

// State returns the current state.
func (m *FormMachine) State() FormState {
	return m.state
}

// Failure returns the user-visible message of the last failure.
func (m *FormMachine) Failure() string {
	return m.failure
}

// Fire applies an event.
func (m *FormMachine) Fire(e FormEvent) error {
	next, ok := formTransitions[m.state][e]
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrIllegalTransition, e, m.state)
	}
	m.state = next
	if next != FormFailed {
		m.failure = ""
	}
	return nil
}

// Submit moves Idle or Failed to Submitting.
func (m *FormMachine) Submit() error { return m.Fire(EventSubmit) }

// Succeed moves Submitting to Submitted.
func (m *FormMachine) Succeed() error { return m.Fire(EventSucceed) }

// Fail moves Submitting to Failed, keeping message for display.
func (m *FormMachine) Fail(message string) error {
	if err := m.Fire(EventFail); err != nil {
		return err
	}
	m.failure = message
	return nil
}

// Reset returns Submitted or Failed to Idle.
func (m *FormMachine) Reset() error { return m.Fire(EventReset) }

// ShowsForm reports whether the form fields should be rendered.
func (m *FormMachine) ShowsForm() bool {
	return m.state != FormSubmitted
}

// SubmitDisabled reports whether the submit control is disabled.
func (m *FormMachine) SubmitDisabled() bool {
	return m.state == FormSubmitting
}
