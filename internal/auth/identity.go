package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "catalog/internal/errors"
	"catalog/internal/model"
)

// UserFinder is the slice of the user store identity resolution needs.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// Resolver maps verified token claims to a live user record. Signature and
// expiry are checked upstream by the JWT middleware; the resolver only decides
// whether the subject still exists.
type Resolver struct {
	users UserFinder
}

// NewResolver creates an identity resolver backed by the given user store.
func NewResolver(users UserFinder) *Resolver {
	return &Resolver{users: users}
}

// Resolve extracts the subject id from already-verified claims and loads the
// user. A missing or malformed subject, or a subject deleted since issuance,
// both read as unauthorized to the caller.
func (r *Resolver) Resolve(ctx context.Context, claims *Claims) (*model.User, error) {
	if claims == nil || claims.Subject == "" {
		return nil, apperrors.ErrMissingSubject
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrMissingSubject
	}

	user, err := r.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}

// ClaimsFromContext returns the claims stored by the JWT middleware for the
// current request.
func ClaimsFromContext(c echo.Context) (*Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, apperrors.ErrMissingSubject
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrMissingSubject
	}
	return claims, nil
}
