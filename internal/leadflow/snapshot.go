package leadflow

import (
	"time"

	"github.com/historicolocaticio/landing/internal/leads"
)

// Snapshot is the serialisable form of a Modal.
type Snapshot struct {
	Visible         bool              `json:"visible"`
	Submitting      bool              `json:"submitting"`
	Succeeded       bool              `json:"succeeded"`
	Draft           leads.LeadRequest `json:"draft"`
	SubmitStartedAt time.Time         `json:"submit_started_at"`
	ResetAt         time.Time         `json:"reset_at"`
}

// Snapshot captures the modal state.
func (m *Modal) Snapshot() Snapshot {
	return Snapshot{
		Visible:         m.visible,
		Submitting:      m.submitting,
		Succeeded:       m.succeeded,
		Draft:           m.draft,
		SubmitStartedAt: m.submitStarted,
		ResetAt:         m.resetAt,
	}
}

// Restore rebuilds a Modal from a snapshot.
func Restore(s Snapshot) Modal {
	return Modal{
		visible:       s.Visible,
		submitting:    s.Submitting,
		succeeded:     s.Succeeded,
		draft:         s.Draft,
		submitStarted: s.SubmitStartedAt,
		resetAt:       s.ResetAt,
	}
}
