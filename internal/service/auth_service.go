package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog/internal/auth"
	apperrors "catalog/internal/errors"
	"catalog/internal/model"
	"catalog/internal/repository"
)

// Role names bootstrapped by the seeder and referenced at registration.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Client-facing auth messages. Login failures share one message so a caller
// cannot tell a missing account from a wrong password, and creation failures
// never echo validation detail.
const (
	MsgUserAlreadyExists  = "User already exists!"
	MsgUserCreationFailed = "User creation failed! Please check user details and try again."
	MsgUserCreated        = "User created successfully!"
	MsgInvalidCredentials = "Invalid email or password!"
)

// AuthResult is the outcome of a registration or login attempt. It is a
// transient value, never persisted.
type AuthResult struct {
	IsSuccess bool     `json:"isSuccess"`
	Message   string   `json:"message"`
	Token     string   `json:"token,omitempty"`
	Email     string   `json:"email,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	tokens *auth.TokenIssuer
	log    *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, roles repository.RoleRepository, tokens *auth.TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		roles:  roles,
		tokens: tokens,
		log:    log,
	}
}

// Register creates a user, ensures the requested role exists and assigns it.
// Business failures come back as an unsuccessful AuthResult with a generic
// message; only operational faults are returned as errors.
func (s *authService) Register(ctx context.Context, email, password, firstName, lastName, role string) (*AuthResult, error) {
	if role == "" {
		role = RoleUser
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return &AuthResult{IsSuccess: false, Message: MsgUserAlreadyExists}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error("register: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	user := &model.User{
		Email:         email,
		Username:      email,
		FirstName:     firstName,
		LastName:      lastName,
		SecurityStamp: uuid.New().String(),
	}

	if err := s.users.CreateWithPassword(ctx, user, password); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrWeakPassword):
			return &AuthResult{IsSuccess: false, Message: MsgUserCreationFailed}, nil
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// Lost the race against a concurrent registration; same outcome
			// as the pre-check finding the user.
			return &AuthResult{IsSuccess: false, Message: MsgUserAlreadyExists}, nil
		default:
			s.log.Error("register: create user failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
	}

	roleRec, err := s.roles.EnsureRole(ctx, role)
	if err != nil {
		s.log.Error("register: ensure role failed", zap.String("role", role), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if err := s.users.AddToRole(ctx, user, roleRec); err != nil {
		s.log.Error("register: assign role failed", zap.String("role", role), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", role))
	return &AuthResult{IsSuccess: true, Message: MsgUserCreated}, nil
}

// Login verifies credentials and issues a bearer token embedding the roles
// assigned at this moment. Unknown email and wrong password are reported
// identically.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &AuthResult{IsSuccess: false, Message: MsgInvalidCredentials}, nil
		}
		s.log.Error("login: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	if !s.users.VerifyPassword(user, password) {
		return &AuthResult{IsSuccess: false, Message: MsgInvalidCredentials}, nil
	}

	roles, err := s.users.GetRoles(ctx, user.ID)
	if err != nil {
		s.log.Error("login: role lookup failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	token, err := s.tokens.Issue(user, roles)
	if err != nil {
		s.log.Error("login: token issuance failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID.String()))
	return &AuthResult{
		IsSuccess: true,
		Token:     token,
		Email:     user.Email,
		Roles:     roles,
	}, nil
}
