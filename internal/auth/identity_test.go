package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "catalog/internal/errors"
	"catalog/internal/model"
)

type stubUserFinder struct {
	user *model.User
	err  error
}

func (s *stubUserFinder) FindByID(_ context.Context, _ uuid.UUID) (*model.User, error) {
	return s.user, s.err
}

func TestResolver_Resolve(t *testing.T) {
	known := &model.User{ID: uuid.New(), Email: "a@x.com"}

	tests := []struct {
		name    string
		claims  *Claims
		finder  *stubUserFinder
		want    *model.User
		wantErr error
	}{
		{
			name:    "nil claims",
			claims:  nil,
			finder:  &stubUserFinder{},
			wantErr: apperrors.ErrMissingSubject,
		},
		{
			name:    "empty subject",
			claims:  &Claims{},
			finder:  &stubUserFinder{},
			wantErr: apperrors.ErrMissingSubject,
		},
		{
			name: "malformed subject",
			claims: &Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: "not-a-uuid",
			}},
			finder:  &stubUserFinder{},
			wantErr: apperrors.ErrMissingSubject,
		},
		{
			name: "user deleted since issuance",
			claims: &Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: uuid.NewString(),
			}},
			finder:  &stubUserFinder{err: gorm.ErrRecordNotFound},
			wantErr: apperrors.ErrUserNotFound,
		},
		{
			name: "store failure",
			claims: &Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: uuid.NewString(),
			}},
			finder:  &stubUserFinder{err: gorm.ErrInvalidDB},
			wantErr: apperrors.ErrStoreUnavailable,
		},
		{
			name: "live subject resolves",
			claims: &Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: known.ID.String(),
			}},
			finder: &stubUserFinder{user: known},
			want:   known,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.finder)
			user, err := r.Resolve(context.Background(), tt.claims)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}
