package introspect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"animal-shelter/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier delegando en un proveedor externo.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.Introspect(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("introspect: %w", err)
	}
	if claims.UserID == "" {
		return auth.Claims{}, errors.New("introspection response missing sub")
	}
	return claims, nil
}
