package services

import (
	"context"
	"encoding/json"
	"net/http"

	"bookmystars_client/internal/api"
	"bookmystars_client/internal/logger"
	"bookmystars_client/internal/models"
	"bookmystars_client/internal/session"
	"bookmystars_client/internal/validator"
	"bookmystars_client/pkg/apperrors"
)

// AuthService covers registration, login and credential recovery for
// professionals. Login persists the session through the session store.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	GenerateOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	Logout()
}

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	PhoneNo  string `json:"phoneNo" validate:"required,phone10"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty"`
}

type AuthServiceImpl struct {
	client   *api.Client
	store    *session.Store
	validate *validator.Validator
}

func NewAuthService(client *api.Client, store *session.Store, validate *validator.Validator) AuthService {
	return &AuthServiceImpl{
		client:   client,
		store:    store,
		validate: validate,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if err := s.validate.Validate(req); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(verr.Messages())
		}
		return nil, err
	}

	data, err := callStandard(ctx, s.client, http.MethodPost, "/professionals/v1/register", req, "auth")
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	return &user, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	data, err := callStandard(ctx, s.client, http.MethodPost, "/professionals/v1/login", body, "auth")
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode == http.StatusUnauthorized {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	var payload struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, apperrors.DecodeError(err)
	}
	if payload.Token == "" {
		return nil, apperrors.ServerError("auth", "Login response carried no token", http.StatusOK)
	}

	if err := s.store.SetUserSession(payload.User, payload.Token); err != nil {
		logger.WithError(err).Warn("failed to persist session after login")
	}
	return s.store.GetUserSession(), nil
}

func (s *AuthServiceImpl) GenerateOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := callStandard(ctx, s.client, http.MethodPost, "/professionals/v1/generateOtp", body, "auth")
	return err
}

func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, otp string) error {
	body := map[string]string{"email": email, "otp": otp}
	_, err := callStandard(ctx, s.client, http.MethodPost, "/professionals/v1/verifyOtp", body, "auth")
	return err
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, newPassword string) error {
	body := map[string]string{"email": email, "newPassword": newPassword}
	_, err := callStandard(ctx, s.client, http.MethodPut, "/professionals/v1/resetPassword", body, "auth")
	return err
}

// Logout clears the local session. The backend keeps no server-side
// session state to invalidate.
func (s *AuthServiceImpl) Logout() {
	s.store.ClearUserSession()
}
