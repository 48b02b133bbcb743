package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "catalog/internal/errors"
	"catalog/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, firstName, lastName, role string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password, firstName, lastName, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func doRequest(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("failure keeps the result body with a 400", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "a@x.com", "Pw1!", "A", "B", "User").
			Return(&service.AuthResult{IsSuccess: false, Message: service.MsgUserAlreadyExists}, nil)

		h := NewAuthHandler(svc)
		rec := doRequest(t, h.Register,
			`{"email":"a@x.com","password":"Pw1!","first_name":"A","last_name":"B","role":"User"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var result service.AuthResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.False(t, result.IsSuccess)
		assert.Equal(t, service.MsgUserAlreadyExists, result.Message)
		assert.Empty(t, result.Token)
	})

	t.Run("success returns 200 without a token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "a@x.com", "Pw1!", "A", "B", "User").
			Return(&service.AuthResult{IsSuccess: true, Message: service.MsgUserCreated}, nil)

		h := NewAuthHandler(svc)
		rec := doRequest(t, h.Register,
			`{"email":"a@x.com","password":"Pw1!","first_name":"A","last_name":"B","role":"User"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result service.AuthResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.IsSuccess)
		assert.Empty(t, result.Token)
	})

	t.Run("invalid email is rejected before the service", func(t *testing.T) {
		svc := new(MockAuthService)
		h := NewAuthHandler(svc)
		rec := doRequest(t, h.Register,
			`{"email":"not-an-email","password":"Pw1!","first_name":"A","last_name":"B"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("operational fault maps to a generic 500", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "a@x.com", "Pw1!", "A", "B", "").
			Return(nil, apperrors.ErrStoreUnavailable)

		h := NewAuthHandler(svc)
		rec := doRequest(t, h.Register,
			`{"email":"a@x.com","password":"Pw1!","first_name":"A","last_name":"B"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "unavailable",
			"store detail must not leak to the client")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("invalid credentials return 400 with the shared message", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "a@x.com", "wrongpw").
			Return(&service.AuthResult{IsSuccess: false, Message: service.MsgInvalidCredentials}, nil)

		h := NewAuthHandler(svc)
		rec := doRequest(t, h.Login, `{"email":"a@x.com","password":"wrongpw"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var result service.AuthResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, service.MsgInvalidCredentials, result.Message)
	})

	t.Run("success returns token, email and roles", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "a@x.com", "Pw1!").
			Return(&service.AuthResult{
				IsSuccess: true,
				Token:     "signed-token",
				Email:     "a@x.com",
				Roles:     []string{"User"},
			}, nil)

		h := NewAuthHandler(svc)
		rec := doRequest(t, h.Login, `{"email":"a@x.com","password":"Pw1!"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result service.AuthResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.IsSuccess)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "a@x.com", result.Email)
		assert.Equal(t, []string{"User"}, result.Roles)
	})
}
