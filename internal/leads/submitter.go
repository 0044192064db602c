package leads

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/historicolocaticio/landing/pkg/logging"
)

// Ack acknowledges an accepted lead request.
type Ack struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Submitter hands a validated lead request to its intake destination.
type Submitter interface {
	Submit(ctx context.Context, req LeadRequest) (Ack, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, req LeadRequest) (Ack, error)

func (f SubmitterFunc) Submit(ctx context.Context, req LeadRequest) (Ack, error) {
	return f(ctx, req)
}

// LogSubmitter records the submitted draft as a diagnostic log entry.
// It stands in for a CRM or lead-intake endpoint and never fails.
type LogSubmitter struct {
	logger *logging.Logger
	now    func() time.Time
}

// NewLogSubmitter creates a submitter that only logs.
func NewLogSubmitter(logger *logging.Logger) *LogSubmitter {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogSubmitter{logger: logger, now: time.Now}
}

// Submit logs every field of req and returns a fresh acknowledgment.
func (s *LogSubmitter) Submit(ctx context.Context, req LeadRequest) (Ack, error) {
	ack := Ack{
		ID:         uuid.New().String(),
		ReceivedAt: s.now().UTC(),
	}
	s.logger.InfoContext(ctx, "lead request submitted",
		"ack_id", ack.ID,
		"imobiliaria", req.Organization,
		"cnpj", req.TaxID,
		"responsavel", req.ContactName,
		"whatsapp", req.Phone,
		"cidade", req.City,
		"volume", req.Volume,
	)
	return ack, nil
}
