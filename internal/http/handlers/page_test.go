package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/historicolocaticio/landing/internal/landing"
	"github.com/historicolocaticio/landing/internal/leads"
	"github.com/historicolocaticio/landing/internal/session"
	"github.com/historicolocaticio/landing/internal/web"
	"github.com/historicolocaticio/landing/pkg/logging"
)

type pageClient struct {
	t       *testing.T
	handler http.Handler
	sid     string
	now     *time.Time
}

func newPageClient(t *testing.T, submitter leads.Submitter) *pageClient {
	t.Helper()
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	content := landing.DefaultContent()
	svc := landing.NewService(landing.ServiceConfig{
		Store:     session.NewMemoryStore(time.Hour, len(content.FAQ)),
		Submitter: submitter,
		Content:   content,
		Logger:    logging.New("error"),
		Clock:     func() time.Time { return now },
	})
	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	h := NewPageHandler(svc, renderer, logging.New("error"))

	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/api/session", h.Session)
	r.Post("/demo/open", h.OpenModal)
	r.Post("/demo/dismiss", h.DismissModal)
	r.Post("/demo/field", h.UpdateField)
	r.Post("/demo/submit", h.Submit)
	r.Post("/faq/{index}/toggle", h.ToggleFAQ)
	r.Post("/menu/toggle", h.ToggleMenu)
	r.Post("/menu/navigate", h.Navigate)

	return &pageClient{t: t, handler: r, sid: session.NewID(), now: &now}
}

func (c *pageClient) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req = req.WithContext(session.WithID(req.Context(), c.sid))
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func (c *pageClient) state() sessionResponse {
	c.t.Helper()
	rec := c.do(http.MethodGet, "/api/session", nil)
	require.Equal(c.t, http.StatusOK, rec.Code)
	var resp sessionResponse
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func completeForm() url.Values {
	return url.Values{
		"imobiliaria": {"Imob X"},
		"cnpj":        {"12.345.678/0001-00"},
		"responsavel": {"Maria"},
		"whatsapp":    {"(11) 91234-5678"},
		"cidade":      {"São Paulo - SP"},
		"volume":      {"11-50"},
	}
}

type stubSubmitter struct {
	calls int
	err   error
}

func (s *stubSubmitter) Submit(_ context.Context, _ leads.LeadRequest) (leads.Ack, error) {
	s.calls++
	if s.err != nil {
		return leads.Ack{}, s.err
	}
	return leads.Ack{ID: "ack-1"}, nil
}

func TestIndexRendersClosedPage(t *testing.T) {
	c := newPageClient(t, &stubSubmitter{})
	rec := c.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `id="planos"`)
	assert.NotContains(t, rec.Body.String(), `role="dialog"`)
	assert.Equal(t, "closed", c.state().State)
}

func TestSubmitFlowAndReset(t *testing.T) {
	sub := &stubSubmitter{}
	c := newPageClient(t, sub)

	rec := c.do(http.MethodPost, "/demo/open", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, "editing", c.state().State)

	rec = c.do(http.MethodPost, "/demo/submit", completeForm())
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, sub.calls)

	st := c.state()
	assert.Equal(t, "success", st.State)
	assert.Equal(t, int64(3000), st.ResetInMS)
	assert.Contains(t, c.do(http.MethodGet, "/", nil).Body.String(), `content="3;url=/"`)

	rec = c.do(http.MethodPost, "/demo/submit", completeForm())
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, sub.calls, "no second record while acknowledging")

	*c.now = c.now.Add(3 * time.Second)
	st = c.state()
	assert.Equal(t, "closed", st.State)
	assert.Equal(t, leads.LeadRequest{}, st.Draft)
}

func TestSubmitIncompleteRerendersWithValues(t *testing.T) {
	sub := &stubSubmitter{}
	c := newPageClient(t, sub)
	c.do(http.MethodPost, "/demo/open", url.Values{})

	form := completeForm()
	form.Set("volume", "")
	rec := c.do(http.MethodPost, "/demo/submit", form)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Imob X"`)
	assert.Contains(t, body, `role="alert"`)
	assert.Equal(t, 0, sub.calls)
	st := c.state()
	assert.Equal(t, "editing", st.State)
	assert.Equal(t, "Maria", st.Draft.ContactName)
}

func TestSubmitterFailureRendersBadGateway(t *testing.T) {
	c := newPageClient(t, &stubSubmitter{err: errors.New("crm down")})
	c.do(http.MethodPost, "/demo/open", url.Values{})

	rec := c.do(http.MethodPost, "/demo/submit", completeForm())
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "editing", c.state().State)
}

func TestSubmitWithClosedModalRedirects(t *testing.T) {
	sub := &stubSubmitter{}
	c := newPageClient(t, sub)
	rec := c.do(http.MethodPost, "/demo/submit", completeForm())
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 0, sub.calls)
}

func TestDismiss(t *testing.T) {
	c := newPageClient(t, &stubSubmitter{})
	c.do(http.MethodPost, "/demo/open", url.Values{})
	rec := c.do(http.MethodPost, "/demo/dismiss", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "closed", c.state().State)
}

func TestDismissKeepsTypedValues(t *testing.T) {
	c := newPageClient(t, &stubSubmitter{})
	c.do(http.MethodPost, "/demo/open", url.Values{})

	rec := c.do(http.MethodPost, "/demo/dismiss", url.Values{
		"imobiliaria": {"Imob X"},
		"responsavel": {""},
		"volume":      {"51-200"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "closed", c.state().State)

	c.do(http.MethodPost, "/demo/open", url.Values{})
	body := c.do(http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, body, `name="imobiliaria" value="Imob X"`)
	assert.Contains(t, body, `value="51-200" selected`)
}

func TestUpdateFieldEndpoint(t *testing.T) {
	c := newPageClient(t, &stubSubmitter{})

	rec := c.do(http.MethodPost, "/demo/field", url.Values{"name": {"cidade"}, "value": {"Recife - PE"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	c.do(http.MethodPost, "/demo/open", url.Values{})
	rec = c.do(http.MethodPost, "/demo/field", url.Values{"name": {"cidade"}, "value": {"Recife - PE"}})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "Recife - PE", c.state().Draft.City)

	rec = c.do(http.MethodPost, "/demo/field", url.Values{"name": {"email"}, "value": {"x"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestToggleFAQEndpoint(t *testing.T) {
	c := newPageClient(t, &stubSubmitter{})

	rec := c.do(http.MethodPost, "/faq/1/toggle", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#faq-1", rec.Header().Get("Location"))
	assert.Equal(t, []int{1}, c.state().FAQExpanded)

	c.do(http.MethodPost, "/faq/1/toggle", url.Values{})
	assert.Empty(t, c.state().FAQExpanded)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/faq/9/toggle", url.Values{}).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/faq/abc/toggle", url.Values{}).Code)
}

func TestMenuEndpoints(t *testing.T) {
	c := newPageClient(t, &stubSubmitter{})

	c.do(http.MethodPost, "/menu/toggle", url.Values{})
	assert.True(t, c.state().MenuOpen)

	rec := c.do(http.MethodPost, "/menu/navigate", url.Values{"target": {"seguranca"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#seguranca", rec.Header().Get("Location"))
	assert.False(t, c.state().MenuOpen)

	rec = c.do(http.MethodPost, "/menu/navigate", url.Values{"target": {"javascript:alert(1)"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c.do(http.MethodPost, "/menu/toggle", url.Values{})
	c.do(http.MethodPost, "/demo/open", url.Values{"close_menu": {"1"}})
	st := c.state()
	assert.False(t, st.MenuOpen)
	assert.Equal(t, "editing", st.State)
}

func TestMissingSessionIsRejected(t *testing.T) {
	c := newPageClient(t, &stubSubmitter{})
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
