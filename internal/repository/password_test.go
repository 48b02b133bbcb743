package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "catalog/internal/errors"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"Pw1!", true},
		{"Admin#123", true},
		{"a1b2", true},
		{"", false},
		{"x1", false},
		{"abcdef", false},
		{"123456", false},
		{"!!!###", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
			}
		})
	}
}
