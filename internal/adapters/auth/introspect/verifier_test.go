package introspect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewVerifier(NewClient(Config{URL: srv.URL, APIKey: "k-1"}))
}

func TestVerify_ActiveToken(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k-1", r.Header.Get("X-Api-Key"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "tok", in["token"])

		_ = json.NewEncoder(w).Encode(map[string]any{"active": true, "sub": "u-1", "username": "yuri"})
	})

	claims, err := v.Verify(context.Background(), " tok ")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "yuri", claims.Username)
}

func TestVerify_InactiveToken(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"active": false})
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrInactive)
}

func TestVerify_UpstreamFailure(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVerify_MissingSubject(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"active": true})
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.Error(t, err)
}

func TestVerify_NotConfigured(t *testing.T) {
	_, err := NewVerifier(NewClient(Config{})).Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewVerifier(NewClient(Config{URL: "http://x"})).Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
