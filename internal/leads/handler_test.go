package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/historicolocaticio/landing/pkg/logging"
)

func completeRequest() LeadRequest {
	return LeadRequest{
		Organization: "Imob X",
		TaxID:        "12.345.678/0001-00",
		ContactName:  "Maria",
		Phone:        "(11) 91234-5678",
		City:         "São Paulo - SP",
		Volume:       "11-50",
	}
}

type recordingSubmitter struct {
	calls []LeadRequest
	err   error
}

func (s *recordingSubmitter) Submit(_ context.Context, req LeadRequest) (Ack, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return Ack{}, s.err
	}
	return Ack{ID: "ack-1"}, nil
}

func TestCreateLeadRequest_Success(t *testing.T) {
	sub := &recordingSubmitter{}
	handler := NewHandler(sub, nil, logging.New("error"))

	body, _ := json.Marshal(completeRequest())
	req := httptest.NewRequest(http.MethodPost, "/api/lead-requests", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateLeadRequest(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, w.Code)
	}
	var ack Ack
	if err := json.NewDecoder(w.Body).Decode(&ack); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if ack.ID != "ack-1" {
		t.Errorf("expected ack-1, got %s", ack.ID)
	}
	if len(sub.calls) != 1 || sub.calls[0] != completeRequest() {
		t.Fatalf("expected one submission of the request, got %#v", sub.calls)
	}
}

func TestCreateLeadRequest_MissingFields(t *testing.T) {
	sub := &recordingSubmitter{}
	handler := NewHandler(sub, nil, logging.New("error"))

	payload := completeRequest()
	payload.Volume = ""
	payload.City = ""
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/lead-requests", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateLeadRequest(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if strings.Join(resp.Missing, ",") != "cidade,volume" {
		t.Fatalf("unexpected missing list %v", resp.Missing)
	}
	if len(sub.calls) != 0 {
		t.Fatalf("submitter must not be called for incomplete requests")
	}
}

func TestCreateLeadRequest_InvalidVolume(t *testing.T) {
	handler := NewHandler(&recordingSubmitter{}, nil, logging.New("error"))

	payload := completeRequest()
	payload.Volume = "1000"
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/lead-requests", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateLeadRequest(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestCreateLeadRequest_PaddedVolumeIsRejected(t *testing.T) {
	sub := &recordingSubmitter{}
	handler := NewHandler(sub, nil, logging.New("error"))

	payload := completeRequest()
	payload.Volume = " 11-50 "
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	handler.CreateLeadRequest(w, httptest.NewRequest(http.MethodPost, "/api/lead-requests", bytes.NewReader(body)))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
	if len(sub.calls) != 0 {
		t.Fatalf("padded volume must not reach the submitter")
	}
}

func TestCreateLeadRequest_InvalidJSON(t *testing.T) {
	handler := NewHandler(&recordingSubmitter{}, nil, logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/api/lead-requests", strings.NewReader("{"))
	w := httptest.NewRecorder()

	handler.CreateLeadRequest(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateLeadRequest_SubmitterError(t *testing.T) {
	handler := NewHandler(&recordingSubmitter{err: errors.New("boom")}, nil, logging.New("error"))

	body, _ := json.Marshal(completeRequest())
	req := httptest.NewRequest(http.MethodPost, "/api/lead-requests", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateLeadRequest(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected %d, got %d", http.StatusBadGateway, w.Code)
	}
	if !strings.Contains(w.Body.String(), "boom") {
		t.Fatalf("expected submitter error in body, got %s", w.Body.String())
	}
}

func TestLogSubmitterEmitsDiagnosticRecord(t *testing.T) {
	var buf bytes.Buffer
	sub := NewLogSubmitter(logging.NewWithWriter("info", &buf))

	ack, err := sub.Submit(context.Background(), completeRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ack.ID == "" {
		t.Error("expected ack ID to be set")
	}
	if ack.ReceivedAt.IsZero() {
		t.Error("expected ReceivedAt to be set")
	}

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected one JSON record, got %q", buf.String())
	}
	if record["msg"] != "lead request submitted" {
		t.Fatalf("unexpected message %v", record["msg"])
	}
	if record["imobiliaria"] != "Imob X" || record["volume"] != "11-50" {
		t.Fatalf("expected draft fields in record, got %v", record)
	}
	if record["ack_id"] != ack.ID {
		t.Fatalf("expected ack id in record")
	}
}

func TestSubmitterFunc(t *testing.T) {
	var got LeadRequest
	sub := SubmitterFunc(func(_ context.Context, req LeadRequest) (Ack, error) {
		got = req
		return Ack{ID: "fn"}, nil
	})
	ack, err := sub.Submit(context.Background(), completeRequest())
	if err != nil || ack.ID != "fn" {
		t.Fatalf("unexpected result %v %v", ack, err)
	}
	if got.ContactName != "Maria" {
		t.Fatalf("expected request to reach func")
	}
}
