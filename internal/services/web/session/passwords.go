package session

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
)

// MinPasswordLength is the shortest password accepted by reset and change
// forms.
const MinPasswordLength = 6

// RegisterInput is a new account request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	// Role is only set by admin self-registration.
	Role string
}

// Register creates an account. It does not sign the visitor in.
func (m *Manager) Register(ctx context.Context, input RegisterInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.registration_fields_required", "name, email and password are required")
	}
	body := map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
		"phone":    input.Phone,
	}
	if role := strings.ToUpper(strings.TrimSpace(input.Role)); role != "" {
		body["role"] = role
	}
	return m.api.Do(ctx, restapi.Request{Method: http.MethodPost, Path: "/auth/register", Body: body, Anonymous: true}, nil)
}

// ForgotPassword asks the backend to email a reset link.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.email_required", "email is required")
	}
	return m.api.Do(ctx, restapi.Request{
		Method:    http.MethodPost,
		Path:      "/auth/forgot-password",
		Body:      map[string]string{"email": email},
		Anonymous: true,
	}, nil)
}

// ValidateResetToken checks a reset token before the reset form is shown.
func (m *Manager) ValidateResetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.reset_token_invalid", "Invalid or expired token")
	}
	err := m.api.Do(ctx, restapi.Request{
		Method:    http.MethodGet,
		Path:      "/auth/validate-reset-token",
		Query:     url.Values{"token": {token}},
		Anonymous: true,
	}, nil)
	if err != nil && apperrors.KindOf(err) != apperrors.KindUnavailable {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.reset_token_invalid", "Invalid or expired token")
	}
	return err
}

// ResetPassword sets a new password with a reset token.
func (m *Manager) ResetPassword(ctx context.Context, token, password, confirm string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.reset_token_invalid", "Invalid or expired token")
	}
	if err := validateNewPassword(password, confirm); err != nil {
		return err
	}
	return m.api.Do(ctx, restapi.Request{
		Method:    http.MethodPost,
		Path:      "/auth/reset-password",
		Body:      map[string]string{"token": token, "newPassword": password},
		Anonymous: true,
	}, nil)
}

// ChangePassword changes the signed-in user's password. ctx must carry the
// session credentials.
func (m *Manager) ChangePassword(ctx context.Context, current, password, confirm string) error {
	if current == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.current_password_required", "current password is required")
	}
	if err := validateNewPassword(password, confirm); err != nil {
		return err
	}
	return m.api.Do(ctx, restapi.Request{
		Method: http.MethodPut,
		Path:   "/auth/change-password",
		Body:   map[string]string{"currentPassword": current, "newPassword": password},
	}, nil)
}

func validateNewPassword(password, confirm string) error {
	if password != confirm {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.passwords_do_not_match", "Passwords do not match")
	}
	if len([]rune(password)) < MinPasswordLength {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.password_too_short", "Password must be at least 6 characters")
	}
	return nil
}
