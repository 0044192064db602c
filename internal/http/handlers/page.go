package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/historicolocaticio/landing/internal/disclosure"
	"github.com/historicolocaticio/landing/internal/landing"
	"github.com/historicolocaticio/landing/internal/leadflow"
	"github.com/historicolocaticio/landing/internal/leads"
	"github.com/historicolocaticio/landing/internal/session"
	"github.com/historicolocaticio/landing/internal/web"
	"github.com/historicolocaticio/landing/pkg/logging"
)

// PageService is the part of the landing service the page handler drives.
type PageService interface {
	Content() landing.Content
	Now() time.Time
	View(ctx context.Context, sid string) (*session.Page, error)
	OpenModal(ctx context.Context, sid string, closeMenu bool) (*session.Page, error)
	DismissModal(ctx context.Context, sid string, values map[leads.Field]string) (*session.Page, error)
	UpdateField(ctx context.Context, sid string, f leads.Field, value string) (*session.Page, error)
	SubmitLead(ctx context.Context, sid string, values map[leads.Field]string) (*session.Page, leads.Ack, error)
	ToggleFAQ(ctx context.Context, sid string, index int) (*session.Page, error)
	ToggleMenu(ctx context.Context, sid string) (*session.Page, error)
	Navigate(ctx context.Context, sid, anchor string) (*session.Page, error)
}

// PageHandler serves the landing page and its form-driven interactions.
type PageHandler struct {
	service  PageService
	renderer *web.Renderer
	logger   *logging.Logger
}

// NewPageHandler creates a page handler.
func NewPageHandler(service PageService, renderer *web.Renderer, logger *logging.Logger) *PageHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PageHandler{service: service, renderer: renderer, logger: logger}
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	page, err := h.service.View(r.Context(), sid)
	if err != nil {
		h.internalError(w, r, "load page session", err)
		return
	}
	h.render(w, r, http.StatusOK, page, nil)
}

// sessionResponse is the JSON shape of GET /api/session.
type sessionResponse struct {
	State       string            `json:"state"`
	Draft       leads.LeadRequest `json:"draft"`
	ResetInMS   int64             `json:"reset_in_ms,omitempty"`
	FAQExpanded []int             `json:"faq_expanded"`
	MenuOpen    bool              `json:"menu_open"`
}

// Session handles GET /api/session.
func (h *PageHandler) Session(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	page, err := h.service.View(r.Context(), sid)
	if err != nil {
		h.internalError(w, r, "load page session", err)
		return
	}
	resp := sessionResponse{
		State:       page.Modal.State().String(),
		Draft:       page.Modal.Draft(),
		ResetInMS:   page.Modal.Remaining(h.service.Now()).Milliseconds(),
		FAQExpanded: page.FAQ.ExpandedItems(),
		MenuOpen:    page.Menu.Expanded(),
	}
	if resp.FAQExpanded == nil {
		resp.FAQExpanded = []int{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// OpenModal handles POST /demo/open.
func (h *PageHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	closeMenu := r.PostFormValue("close_menu") != ""
	if _, err := h.service.OpenModal(r.Context(), sid, closeMenu); err != nil {
		h.internalError(w, r, "open modal", err)
		return
	}
	redirectHome(w, r, "")
}

// DismissModal handles POST /demo/dismiss. The close controls submit the
// lead form, so whatever was typed is kept in the draft.
func (h *PageHandler) DismissModal(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	values, err := postedFields(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if _, err := h.service.DismissModal(r.Context(), sid, values); err != nil {
		h.internalError(w, r, "dismiss modal", err)
		return
	}
	redirectHome(w, r, "")
}

// UpdateField handles POST /demo/field with form values name and value.
func (h *PageHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	field, err := leads.ParseField(r.PostFormValue("name"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	_, err = h.service.UpdateField(r.Context(), sid, field, r.PostFormValue("value"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, leadflow.ErrNotEditing):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		h.internalError(w, r, "update field", err)
	}
}

// Submit handles POST /demo/submit. A blocked submission re-renders the page
// with the posted values and a notice instead of redirecting.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	values, err := postedFields(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	page, ack, err := h.service.SubmitLead(r.Context(), sid, values)
	var submitErr *leads.SubmissionError
	switch {
	case err == nil:
		h.logger.InfoContext(r.Context(), "demo request accepted", "ack_id", ack.ID)
		redirectHome(w, r, "")
	case errors.Is(err, leads.ErrIncomplete), errors.Is(err, leads.ErrInvalidVolume):
		h.render(w, r, http.StatusUnprocessableEntity, page, err)
	case errors.As(err, &submitErr):
		h.render(w, r, http.StatusBadGateway, page, err)
	case errors.Is(err, leadflow.ErrSubmitInFlight), errors.Is(err, leadflow.ErrNotEditing):
		redirectHome(w, r, "")
	default:
		h.internalError(w, r, "submit lead", err)
	}
}

// ToggleFAQ handles POST /faq/{index}/toggle.
func (h *PageHandler) ToggleFAQ(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	_, err = h.service.ToggleFAQ(r.Context(), sid, index)
	switch {
	case err == nil:
		redirectHome(w, r, "faq-"+strconv.Itoa(index))
	case errors.Is(err, disclosure.ErrUnknownItem):
		http.NotFound(w, r)
	default:
		h.internalError(w, r, "toggle faq", err)
	}
}

// ToggleMenu handles POST /menu/toggle.
func (h *PageHandler) ToggleMenu(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	if _, err := h.service.ToggleMenu(r.Context(), sid); err != nil {
		h.internalError(w, r, "toggle menu", err)
		return
	}
	redirectHome(w, r, "")
}

// Navigate handles POST /menu/navigate with form value target.
func (h *PageHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	target := r.PostFormValue("target")
	_, err := h.service.Navigate(r.Context(), sid, target)
	switch {
	case err == nil:
		redirectHome(w, r, target)
	case errors.Is(err, landing.ErrUnknownAnchor):
		http.Error(w, "unknown section", http.StatusBadRequest)
	default:
		h.internalError(w, r, "navigate", err)
	}
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page *session.Page, submitErr error) {
	view := web.NewPageView(h.service.Content(), page, h.service.Now(), submitErr)
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view); err != nil {
		h.internalError(w, r, "render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *PageHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, ok := session.IDFromContext(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "request without page session", "path", r.URL.Path)
		http.Error(w, "missing session", http.StatusBadRequest)
	}
	return sid, ok
}

func (h *PageHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.ErrorContext(r.Context(), "page handler failed", "op", op, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// postedFields collects the lead form values present in the request body.
func postedFields(r *http.Request) (map[leads.Field]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	values := make(map[leads.Field]string, len(leads.Fields()))
	for _, f := range leads.Fields() {
		if _, present := r.PostForm[string(f)]; present {
			values[f] = r.PostForm.Get(string(f))
		}
	}
	return values, nil
}

func redirectHome(w http.ResponseWriter, r *http.Request, fragment string) {
	target := "/"
	if fragment != "" {
		target += "#" + fragment
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
