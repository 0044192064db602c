package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/historicolocaticio/landing/internal/session"
	"github.com/historicolocaticio/landing/pkg/logging"
)

func TestRequestLoggerRecordsStatusAndSession(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter("info", &buf)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	sid := session.NewID()
	req := httptest.NewRequest(http.MethodPost, "/api/lead-requests", nil)
	req = req.WithContext(session.WithID(req.Context(), sid))

	RequestLogger(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, float64(http.StatusAccepted), entry["status"])
	assert.Equal(t, "/api/lead-requests", entry["path"])
	assert.Equal(t, sid, entry["session_id"])
}

func TestRequestLoggerErrorLevelOnServerError(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter("info", &buf)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	RequestLogger(logger)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
}
