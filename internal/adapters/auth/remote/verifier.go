// Package remote verifica bearer tokens contra un proveedor de identidad externo
// (AUTH_VERIFY_URL). El proveedor responde {"researcher_id": "...", "name": "..."}.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"genotrack/internal/platform/httpclient"
	"genotrack/internal/ports/auth"
)

const (
	verifyPath          = "/v1/tokens/verify"
	defaultAPIKeyHeader = "X-Api-Key"
)

var ErrUpstream = errors.New("identity provider error")

type Config struct {
	BaseURL string
	APIKey  string

	// Vacío usa X-Api-Key.
	APIKeyHeader string

	Timeout time.Duration
}

type Verifier struct {
	client       *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

var _ auth.AuthVerifier = (*Verifier)(nil)

func NewVerifier(cfg Config) (*Verifier, error) {
	client, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = defaultAPIKeyHeader
	}
	return &Verifier{
		client:       client,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

// Verify: 401/403 del proveedor => auth.ErrUnauthorized; el resto de fallas => ErrUpstream.
func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	headers := map[string]string{"Authorization": "Bearer " + token}
	if v.apiKey != "" {
		headers[v.apiKeyHeader] = v.apiKey
	}

	var out struct {
		ResearcherID string `json:"researcher_id"`
		Name         string `json:"name"`
	}
	err := v.client.PostJSON(ctx, verifyPath, headers, map[string]string{"token": token}, &out)
	switch code := httpclient.StatusCode(err); {
	case err == nil:
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return auth.Claims{}, auth.ErrUnauthorized
	default:
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	id := strings.TrimSpace(out.ResearcherID)
	if id == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing researcher_id", ErrUpstream)
	}
	return auth.Claims{ResearcherID: id, Name: strings.TrimSpace(out.Name)}, nil
}
