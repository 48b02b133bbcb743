package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "catalog/internal/errors"
	"catalog/internal/model"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "catalog-api"
	testAudience = "catalog-clients"
)

func testUser() *model.User {
	return &model.User{
		ID:       uuid.New(),
		Email:    "a@x.com",
		Username: "a@x.com",
	}
}

func TestNewTokenIssuer_SecretTooShort(t *testing.T) {
	for _, secret := range []string{"", "short", "0123456789abcdef0123456789abcde"} {
		_, err := NewTokenIssuer(secret, testIssuer, testAudience, TokenValidity)
		assert.ErrorIs(t, err, apperrors.ErrSigningSecret, "secret %q must be rejected", secret)
	}
}

func TestNewTokenIssuer_DefaultValidity(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, testIssuer, testAudience, 0)
	require.NoError(t, err)

	token, err := issuer.Issue(testUser(), nil)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claims.IssuedAt.Add(TokenValidity), claims.ExpiresAt.Time)
}

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, testIssuer, testAudience, TokenValidity)
	require.NoError(t, err)

	user := testUser()
	roles := []string{"User", "Admin"}
	token, err := issuer.Issue(user, roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Contains(t, claims.Audience, testAudience)

	// Expiry is exactly issued-at plus the validity window.
	assert.Equal(t, claims.IssuedAt.Add(3*time.Hour), claims.ExpiresAt.Time)

	// The jti must parse as a UUID.
	_, err = uuid.Parse(claims.ID)
	assert.NoError(t, err)
}

func TestTokenIssuer_FreshJTIPerToken(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, testIssuer, testAudience, TokenValidity)
	require.NoError(t, err)

	user := testUser()
	first, err := issuer.Issue(user, nil)
	require.NoError(t, err)
	second, err := issuer.Issue(user, nil)
	require.NoError(t, err)

	c1, err := issuer.Parse(first)
	require.NoError(t, err)
	c2, err := issuer.Parse(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestTokenIssuer_RejectsForeignTokens(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, testIssuer, testAudience, TokenValidity)
	require.NoError(t, err)

	user := testUser()
	token, err := issuer.Issue(user, nil)
	require.NoError(t, err)

	// Tampered payload fails signature validation.
	_, err = issuer.Parse(token + "x")
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	other, err := NewTokenIssuer("ffffffffffffffffffffffffffffffff", testIssuer, testAudience, TokenValidity)
	require.NoError(t, err)
	foreign, err := other.Issue(user, nil)
	require.NoError(t, err)
	_, err = issuer.Parse(foreign)
	assert.Error(t, err)

	// Wrong issuer or audience is rejected even with the shared secret.
	wrongIss, err := NewTokenIssuer(testSecret, "someone-else", testAudience, TokenValidity)
	require.NoError(t, err)
	tok, err := wrongIss.Issue(user, nil)
	require.NoError(t, err)
	_, err = issuer.Parse(tok)
	assert.Error(t, err)
}
