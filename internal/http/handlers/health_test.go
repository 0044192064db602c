package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/historicolocaticio/landing/pkg/logging"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	cases := []struct {
		name   string
		pinger Pinger
		code   int
		status string
	}{
		{name: "no backend", code: http.StatusOK, status: "ok"},
		{name: "backend up", pinger: pingFunc(func(context.Context) error { return nil }), code: http.StatusOK, status: "ok"},
		{name: "backend down", pinger: pingFunc(func(context.Context) error { return errors.New("dial tcp") }), code: http.StatusServiceUnavailable, status: "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthHandler(tc.pinger, logging.New("error"))
			rec := httptest.NewRecorder()
			h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.code, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.status, body["status"])
		})
	}
}
