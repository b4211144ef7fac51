package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_IssueAndParse(t *testing.T) {
	s := NewSigner("secret", "salon-booking", time.Hour)
	adminID := uuid.New()

	token, issued, err := s.Issue(adminID, "ana")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, adminID.String(), claims.Subject)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestSigner_ParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewSigner("secret", "salon-booking", time.Hour).Issue(uuid.New(), "ana")
	require.NoError(t, err)

	_, err = NewSigner("other", "salon-booking", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_ParseRejectsExpired(t *testing.T) {
	s := NewSigner("secret", "salon-booking", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := s.Issue(uuid.New(), "ana")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_ParseRejectsNoneAlg(t *testing.T) {
	claims := jwt.RegisteredClaims{ID: "x", Issuer: "salon-booking"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewSigner("secret", "salon-booking", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_EmptySecret(t *testing.T) {
	_, _, err := NewSigner("", "salon-booking", time.Hour).Issue(uuid.New(), "ana")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
