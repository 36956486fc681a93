// Package static verifica bearer tokens contra una tabla fija token→investigador
// cargada desde configuración (AUTH_TOKENS).
package static

import (
	"context"
	"fmt"
	"strings"

	"genotrack/internal/ports/auth"
)

type Verifier struct {
	byToken map[string]auth.Claims
}

var _ auth.AuthVerifier = (*Verifier)(nil)

// Parse lee "token:researcher[:nombre],token2:researcher2". Vacío devuelve nil
// (sin verifier, modo dev).
func Parse(raw string) (*Verifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v := &Verifier{byToken: make(map[string]auth.Claims)}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return nil, fmt.Errorf("auth tokens: entry %q must be token:researcher", entry)
		}
		token := strings.TrimSpace(parts[0])
		if _, dup := v.byToken[token]; dup {
			return nil, fmt.Errorf("auth tokens: duplicate token for %q", strings.TrimSpace(parts[1]))
		}
		c := auth.Claims{ResearcherID: strings.TrimSpace(parts[1])}
		if len(parts) == 3 {
			c.Name = strings.TrimSpace(parts[2])
		}
		v.byToken[token] = c
	}
	if len(v.byToken) == 0 {
		return nil, nil
	}
	return v, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	c, ok := v.byToken[strings.TrimSpace(token)]
	if !ok {
		return auth.Claims{}, auth.ErrUnauthorized
	}
	return c, nil
}
