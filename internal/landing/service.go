package landing

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/historicolocaticio/landing/internal/leadflow"
	"github.com/historicolocaticio/landing/internal/leads"
	"github.com/historicolocaticio/landing/internal/observability/metrics"
	"github.com/historicolocaticio/landing/internal/session"
	"github.com/historicolocaticio/landing/pkg/logging"
)

// ErrUnknownAnchor is returned when navigating to a target the page does not have
var ErrUnknownAnchor = errors.New("landing: unknown anchor")

// ServiceConfig wires a Service.
type ServiceConfig struct {
	Store          session.Store
	Submitter      leads.Submitter
	Content        Content
	Metrics        *metrics.LeadMetrics
	Logger         *logging.Logger
	Clock          func() time.Time
	SuccessDisplay time.Duration
}

// Service applies visitor interactions to page sessions.
type Service struct {
	store          session.Store
	submitter      leads.Submitter
	content        Content
	metrics        *metrics.LeadMetrics
	logger         *logging.Logger
	tracer         trace.Tracer
	now            func() time.Time
	successDisplay time.Duration
}

// NewService creates a landing service.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Store == nil {
		panic("landing: session store cannot be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Submitter == nil {
		cfg.Submitter = leads.NewLogSubmitter(cfg.Logger)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.SuccessDisplay <= 0 {
		cfg.SuccessDisplay = leadflow.DefaultSuccessDisplay
	}
	if len(cfg.Content.Anchors) == 0 {
		cfg.Content = DefaultContent()
	}
	return &Service{
		store:          cfg.Store,
		submitter:      cfg.Submitter,
		content:        cfg.Content,
		metrics:        cfg.Metrics,
		logger:         cfg.Logger,
		tracer:         otel.Tracer("landing.internal.landing"),
		now:            cfg.Clock,
		successDisplay: cfg.SuccessDisplay,
	}
}

// Content returns the page copy.
func (s *Service) Content() Content { return s.content }

// Now returns the service clock reading.
func (s *Service) Now() time.Time { return s.now() }

// View returns the page for sid, applying a due post-success reset first.
func (s *Service) View(ctx context.Context, sid string) (*session.Page, error) {
	page, err := s.store.Load(ctx, sid)
	if err != nil {
		return nil, err
	}
	probe := page.Modal
	if !probe.Advance(s.now()) {
		return page, nil
	}
	return s.store.Update(ctx, sid, func(p *session.Page) error {
		s.advance(ctx, p)
		return nil
	})
}

// OpenModal shows the demo request form. closeMenu also collapses the mobile
// menu, as the menu's own call-to-action does.
func (s *Service) OpenModal(ctx context.Context, sid string, closeMenu bool) (*session.Page, error) {
	return s.store.Update(ctx, sid, func(p *session.Page) error {
		s.advance(ctx, p)
		if closeMenu {
			p.Menu.Close()
		}
		if p.Modal.Open(s.now()) {
			s.metrics.ObserveModal("open")
		}
		return nil
	})
}

// DismissModal hides the form while editing; ignored during acknowledgment.
// values holds whatever the form carried when it was closed and is kept in
// the draft for the next Open.
func (s *Service) DismissModal(ctx context.Context, sid string, values map[leads.Field]string) (*session.Page, error) {
	return s.store.Update(ctx, sid, func(p *session.Page) error {
		s.advance(ctx, p)
		if err := mergeDraft(p, s.now(), values); err != nil {
			return err
		}
		if p.Modal.Dismiss(s.now()) {
			s.metrics.ObserveModal("dismiss")
		}
		return nil
	})
}

// UpdateField merges one value into the draft.
func (s *Service) UpdateField(ctx context.Context, sid string, f leads.Field, value string) (*session.Page, error) {
	return s.store.Update(ctx, sid, func(p *session.Page) error {
		s.advance(ctx, p)
		return p.Modal.UpdateField(s.now(), f, value)
	})
}

// SubmitLead merges the posted values into the draft and submits it. Posted
// values are kept even when the submission is blocked.
func (s *Service) SubmitLead(ctx context.Context, sid string, values map[leads.Field]string) (*session.Page, leads.Ack, error) {
	ctx, span := s.tracer.Start(ctx, "landing.submit_lead")
	defer span.End()

	var (
		draft    leads.LeadRequest
		beginErr error
	)
	page, err := s.store.Update(ctx, sid, func(p *session.Page) error {
		s.advance(ctx, p)
		now := s.now()
		if err := mergeDraft(p, now, values); err != nil {
			return err
		}
		draft, beginErr = p.Modal.BeginSubmit(now)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, leads.Ack{}, err
	}
	if beginErr != nil {
		result := submitResult(beginErr)
		span.SetAttributes(attribute.String("lead.result", result))
		s.metrics.ObserveSubmission(metrics.ChannelForm, result)
		s.logger.InfoContext(ctx, "lead submission blocked", "reason", beginErr.Error(), "state", page.Modal.State().String())
		return page, leads.Ack{}, beginErr
	}

	start := s.now()
	ack, submitErr := s.submitter.Submit(ctx, draft)
	s.metrics.ObserveSubmitLatency(metrics.ChannelForm, s.now().Sub(start).Seconds())

	page, err = s.store.Update(ctx, sid, func(p *session.Page) error {
		if submitErr != nil {
			p.Modal.AbortSubmit()
			return nil
		}
		return p.Modal.CompleteSubmit(s.now(), s.successDisplay)
	})
	if err != nil {
		span.RecordError(err)
		return nil, leads.Ack{}, err
	}
	if submitErr != nil {
		span.RecordError(submitErr)
		s.metrics.ObserveSubmission(metrics.ChannelForm, metrics.ResultFailed)
		s.logger.ErrorContext(ctx, "lead submission failed", "error", submitErr)
		return page, leads.Ack{}, &leads.SubmissionError{Err: submitErr}
	}

	span.SetAttributes(
		attribute.String("lead.result", metrics.ResultAccepted),
		attribute.String("lead.ack_id", ack.ID),
		attribute.String("lead.volume", draft.Volume),
	)
	s.metrics.ObserveSubmission(metrics.ChannelForm, metrics.ResultAccepted)
	s.metrics.ObserveVolume(draft.Volume)
	return page, ack, nil
}

// ToggleFAQ flips one FAQ item.
func (s *Service) ToggleFAQ(ctx context.Context, sid string, index int) (*session.Page, error) {
	return s.store.Update(ctx, sid, func(p *session.Page) error {
		s.advance(ctx, p)
		if _, err := p.FAQ.Toggle(index); err != nil {
			return err
		}
		s.metrics.ObserveToggle("faq")
		return nil
	})
}

// ToggleMenu flips the mobile menu.
func (s *Service) ToggleMenu(ctx context.Context, sid string) (*session.Page, error) {
	return s.store.Update(ctx, sid, func(p *session.Page) error {
		s.advance(ctx, p)
		p.Menu.Toggle()
		s.metrics.ObserveToggle("menu")
		return nil
	})
}

// Navigate closes the mobile menu on the way to an in-page anchor.
func (s *Service) Navigate(ctx context.Context, sid, anchor string) (*session.Page, error) {
	if !s.content.IsAnchor(anchor) {
		return nil, ErrUnknownAnchor
	}
	return s.store.Update(ctx, sid, func(p *session.Page) error {
		s.advance(ctx, p)
		p.Menu.Close()
		return nil
	})
}

// mergeDraft applies posted form values to the draft while editing, the way
// typing into the inputs would.
func mergeDraft(p *session.Page, now time.Time, values map[leads.Field]string) error {
	if p.Modal.State() != leadflow.StateEditing {
		return nil
	}
	for _, f := range leads.Fields() {
		if v, ok := values[f]; ok {
			if err := p.Modal.UpdateField(now, f, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) advance(ctx context.Context, p *session.Page) {
	if p.Modal.Advance(s.now()) {
		s.metrics.ObserveModal("reset")
		s.logger.DebugContext(ctx, "lead acknowledgment window elapsed")
	}
}

func submitResult(err error) string {
	switch {
	case errors.Is(err, leads.ErrIncomplete):
		return metrics.ResultIncomplete
	case errors.Is(err, leads.ErrInvalidVolume):
		return metrics.ResultInvalid
	case errors.Is(err, leadflow.ErrSubmitInFlight):
		return metrics.ResultInFlight
	}
	return metrics.ResultInvalid
}
