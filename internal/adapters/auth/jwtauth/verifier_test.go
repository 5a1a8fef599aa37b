package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v, err := NewVerifier("s3cret", "shelter")
	require.NoError(t, err)

	tok, err := v.Issue("u-1", "ana", time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), "  "+tok+" ")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ana", claims.Username)
}

func TestVerifier_Rejects(t *testing.T) {
	v, err := NewVerifier("s3cret", "shelter")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = v.Verify(ctx, "")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	other, _ := NewVerifier("other", "shelter")
	tok, _ := other.Issue("u-1", "", time.Hour)
	_, err = v.Verify(ctx, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	wrongIss, _ := NewVerifier("s3cret", "someone-else")
	tok, _ = wrongIss.Issue("u-1", "", time.Hour)
	_, err = v.Verify(ctx, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	tok, _ = v.Issue("u-1", "", -time.Minute)
	_, err = v.Verify(ctx, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	tok, _ = v.Issue("", "", time.Hour)
	_, err = v.Verify(ctx, tok)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestVerifier_RejectsNoneAlg(t *testing.T) {
	v, _ := NewVerifier("s3cret", "")

	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), tok)
	assert.Error(t, err)
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := NewVerifier("  ", "")
	assert.ErrorIs(t, err, ErrSecretEmpty)
}
