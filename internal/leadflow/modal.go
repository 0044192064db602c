// Package leadflow implements the demo request modal: its visibility, the
// lead draft being edited and the post-submission acknowledgment window.
package leadflow

import (
	"errors"
	"time"

	"github.com/historicolocaticio/landing/internal/leads"
)

const (
	// DefaultSuccessDisplay is how long the acknowledgment stays on screen
	// before the modal closes and the draft is cleared.
	DefaultSuccessDisplay = 3 * time.Second

	// SubmitInFlightLimit bounds how long a submission may stay pending before
	// the modal returns to editing.
	SubmitInFlightLimit = 30 * time.Second
)

var (
	// ErrNotEditing is returned when input arrives while the form is not shown
	ErrNotEditing = errors.New("leadflow: modal is not accepting input")

	// ErrSubmitInFlight is returned for a submit while one is pending or acknowledged
	ErrSubmitInFlight = errors.New("leadflow: submission already in progress")

	// ErrNoPendingSubmit is returned when completing a submit that was never begun
	ErrNoPendingSubmit = errors.New("leadflow: no pending submission")
)

// State is the observable state of the modal.
type State int

const (
	StateClosed State = iota
	StateEditing
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	}
	return "unknown"
}

// Modal is the lead capture modal. The zero value is closed with an empty draft.
type Modal struct {
	visible       bool
	submitting    bool
	succeeded     bool
	draft         leads.LeadRequest
	submitStarted time.Time
	resetAt       time.Time
}

// State derives the current state from the modal flags.
func (m *Modal) State() State {
	switch {
	case !m.visible:
		return StateClosed
	case m.succeeded:
		return StateSuccess
	case m.submitting:
		return StateSubmitting
	default:
		return StateEditing
	}
}

// Visible reports whether the modal is shown.
func (m *Modal) Visible() bool { return m.visible }

// Succeeded reports whether the acknowledgment is being shown.
func (m *Modal) Succeeded() bool { return m.succeeded }

// Draft returns a copy of the draft.
func (m *Modal) Draft() leads.LeadRequest { return m.draft }

// ResetAt returns when the acknowledgment window ends, zero when none is pending.
func (m *Modal) ResetAt() time.Time { return m.resetAt }

// Remaining returns how much of the acknowledgment window is left.
func (m *Modal) Remaining(now time.Time) time.Duration {
	if !m.succeeded || m.resetAt.IsZero() {
		return 0
	}
	if d := m.resetAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Advance applies time-based transitions and reports whether the
// post-success reset fired.
func (m *Modal) Advance(now time.Time) bool {
	if m.submitting && !m.submitStarted.IsZero() && now.Sub(m.submitStarted) >= SubmitInFlightLimit {
		m.submitting = false
		m.submitStarted = time.Time{}
	}
	if !m.succeeded || m.resetAt.IsZero() || now.Before(m.resetAt) {
		return false
	}
	m.succeeded = false
	m.visible = false
	m.draft = leads.LeadRequest{}
	m.resetAt = time.Time{}
	return true
}

// Open shows the modal. It reports whether the modal was closed before.
func (m *Modal) Open(now time.Time) bool {
	m.Advance(now)
	if m.visible {
		return false
	}
	m.visible = true
	return true
}

// Dismiss hides the modal while editing. The draft and the success flag are
// kept. Dismiss is ignored while a submission is pending or acknowledged.
func (m *Modal) Dismiss(now time.Time) bool {
	m.Advance(now)
	if m.State() != StateEditing {
		return false
	}
	m.visible = false
	return true
}

// UpdateField merges one value into the draft without validating it.
func (m *Modal) UpdateField(now time.Time, f leads.Field, value string) error {
	m.Advance(now)
	if _, err := leads.ParseField(string(f)); err != nil {
		return err
	}
	if m.State() != StateEditing {
		return ErrNotEditing
	}
	m.draft = m.draft.Set(f, value)
	return nil
}

// BeginSubmit checks the draft and moves the modal to Submitting. The
// returned draft is what must be handed to the submitter.
func (m *Modal) BeginSubmit(now time.Time) (leads.LeadRequest, error) {
	m.Advance(now)
	switch m.State() {
	case StateClosed:
		return leads.LeadRequest{}, ErrNotEditing
	case StateSubmitting, StateSuccess:
		return leads.LeadRequest{}, ErrSubmitInFlight
	}
	if err := m.draft.Validate(); err != nil {
		return leads.LeadRequest{}, err
	}
	m.submitting = true
	m.submitStarted = now
	return m.draft, nil
}

// CompleteSubmit shows the acknowledgment and schedules the reset after display.
func (m *Modal) CompleteSubmit(now time.Time, display time.Duration) error {
	if !m.submitting {
		return ErrNoPendingSubmit
	}
	if display <= 0 {
		display = DefaultSuccessDisplay
	}
	m.submitting = false
	m.submitStarted = time.Time{}
	m.succeeded = true
	m.resetAt = now.Add(display)
	return nil
}

// AbortSubmit returns a pending submission to editing with the draft intact.
func (m *Modal) AbortSubmit() {
	m.submitting = false
	m.submitStarted = time.Time{}
}
