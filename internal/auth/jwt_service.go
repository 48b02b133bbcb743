package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "catalog/internal/errors"
	"catalog/internal/model"
)

const (
	// TokenValidity is the window during which an issued token is accepted.
	TokenValidity = 3 * time.Hour

	// minSecretLength matches the HS256 key-size recommendation.
	minSecretLength = 32
)

// Claims is the payload embedded in every issued token. Roles are captured at
// issuance time and are not re-checked against the store while the token lives.
type Claims struct {
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Roles    []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs self-contained bearer tokens with a symmetric secret.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	validity time.Duration
}

// NewTokenIssuer creates a token issuer. The secret comes from process
// configuration and must be at least 32 bytes.
func NewTokenIssuer(secret, issuer, audience string, validity time.Duration) (*TokenIssuer, error) {
	if len(secret) < minSecretLength {
		return nil, apperrors.ErrSigningSecret
	}
	if validity <= 0 {
		validity = TokenValidity
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		validity: validity,
	}, nil
}

// Issue signs a token for the user carrying the given role names. Expiry is
// exactly issued-at plus the configured validity; the jti is fresh per token.
func (s *TokenIssuer) Issue(user *model.User, roles []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:    user.Email,
		Username: user.Username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates signature, expiry, issuer and audience, and returns the
// embedded claims.
func (s *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
