package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/historicolocaticio/landing/internal/observability/metrics"
	"github.com/historicolocaticio/landing/pkg/logging"
)

// Handler exposes the lead submission boundary over JSON.
type Handler struct {
	submitter Submitter
	metrics   *metrics.LeadMetrics
	logger    *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(submitter Submitter, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if submitter == nil {
		submitter = NewLogSubmitter(logger)
	}
	return &Handler{
		submitter: submitter,
		metrics:   m,
		logger:    logger,
	}
}

type errorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

// CreateLeadRequest handles POST /api/lead-requests requests
func (h *Handler) CreateLeadRequest(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode lead request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		resp := errorResponse{Error: err.Error()}
		var missing *MissingFieldsError
		if errors.As(err, &missing) {
			for _, f := range missing.Fields {
				resp.Missing = append(resp.Missing, string(f))
			}
			h.metrics.ObserveSubmission(metrics.ChannelAPI, metrics.ResultIncomplete)
		} else {
			h.metrics.ObserveSubmission(metrics.ChannelAPI, metrics.ResultInvalid)
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	start := time.Now()
	ack, err := h.submitter.Submit(r.Context(), req)
	h.metrics.ObserveSubmitLatency(metrics.ChannelAPI, time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("lead submission failed", "error", err)
		h.metrics.ObserveSubmission(metrics.ChannelAPI, metrics.ResultFailed)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: (&SubmissionError{Err: err}).Error()})
		return
	}

	h.metrics.ObserveSubmission(metrics.ChannelAPI, metrics.ResultAccepted)
	h.metrics.ObserveVolume(req.Volume)
	writeJSON(w, http.StatusAccepted, ack)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
