package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"genotrack/internal/platform/logger"
	"genotrack/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	tokens map[string]auth.Claims
}

var errProviderDown = errors.New("identity provider error: status=502")

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token == "provider-down" {
		return auth.Claims{}, errProviderDown
	}
	c, ok := f.tokens[token]
	if !ok {
		return auth.Claims{}, auth.ErrUnauthorized
	}
	return c, nil
}

// echoResearcher escribe el investigador que vio el handler.
func echoResearcher() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ResearcherID(r.Context())))
	})
}

func TestAuthContext_DevHeader(t *testing.T) {
	h := AuthContext(nil, nil)(echoResearcher())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, " researcher-7 ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "researcher-7", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthContext_Verifier(t *testing.T) {
	v := fakeVerifier{tokens: map[string]auth.Claims{"s3cret": {ResearcherID: "r-1", Name: "Dra. Lima"}}}
	h := AuthContext(v, nil)(echoResearcher())

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid token", header: "Bearer s3cret", want: "r-1"},
		{name: "scheme is case-insensitive", header: "bearer s3cret", want: "r-1"},
		{name: "unknown token stays anonymous", header: "Bearer nope", want: ""},
		{name: "no scheme", header: "s3cret", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tc.header)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.want, rec.Body.String())
		})
	}

	// Con verifier, el header de debug se ignora.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, "intruder")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Body.String())
}

func TestAuthContext_LogsVerifierFailures(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})
	v := fakeVerifier{tokens: map[string]auth.Claims{"s3cret": {ResearcherID: "r-1"}}}
	h := AuthContext(v, log)(echoResearcher())

	serve := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/patients", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	// Token rechazado: anónimo y sin log.
	rec := serve("Bearer nope")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, buf.String())

	// Proveedor caído: sigue anónimo pero queda el warn.
	rec = serve("Bearer provider-down")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"warning"`)
	assert.Contains(t, out, `"msg":"auth verifier failed"`)
	assert.Contains(t, out, `status=502`)
	assert.Contains(t, out, `"path":"/patients"`)
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	t.Run("disabled", func(t *testing.T) {
		h := RateLimit(0, 0)(ok)
		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
	})

	t.Run("burst exhausted", func(t *testing.T) {
		h := RateLimit(0.001, 2)(ok)
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			codes = append(codes, rec.Code)
		}
		assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})

	h := chimw.RequestID(AuthContext(nil, nil)(RequestLogger(log)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}),
	)))

	req := httptest.NewRequest(http.MethodPost, "/patients", nil)
	req.Header.Set(DebugUserHeader, "researcher-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"researcher":"researcher-1"`)
	assert.Contains(t, out, `"path":"/patients"`)
	assert.Contains(t, out, `"request_id":`)
}
