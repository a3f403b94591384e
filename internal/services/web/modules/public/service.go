package public

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/session"
)

// AuthGateway signs visitors in and out and runs the password flows.
// *session.Manager satisfies it.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (session.Principal, error)
	Register(ctx context.Context, input session.RegisterInput) error
	ForgotPassword(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, password, confirm string) error
	Logout(ctx context.Context, sessionID string) error
	TTL() time.Duration
}

type service struct {
	gateway AuthGateway
}

func newService(gateway AuthGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// registration is the sign-up form.
type registration struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

func (s service) login(ctx context.Context, email, password string) (session.Principal, error) {
	return s.gateway.Login(ctx, strings.TrimSpace(email), password)
}

func (s service) register(ctx context.Context, form registration) error {
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Email) == "" || form.Password == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.registration_fields_required", "name, email and password are required")
	}
	if form.Password != form.ConfirmPassword {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.passwords_do_not_match", "Passwords do not match")
	}
	if len([]rune(form.Password)) < session.MinPasswordLength {
		return apperrors.EK(apperrors.KindInvalidInput, "error.web.message.password_too_short", "Password must be at least 6 characters")
	}
	return s.gateway.Register(ctx, session.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	})
}

func (s service) forgotPassword(ctx context.Context, email string) error {
	return s.gateway.ForgotPassword(ctx, email)
}

func (s service) validateResetToken(ctx context.Context, token string) error {
	return s.gateway.ValidateResetToken(ctx, token)
}

func (s service) resetPassword(ctx context.Context, token, password, confirm string) error {
	return s.gateway.ResetPassword(ctx, token, password, confirm)
}

func (s service) logout(ctx context.Context, sessionID string) error {
	return s.gateway.Logout(ctx, sessionID)
}

func (s service) sessionTTL() time.Duration {
	return s.gateway.TTL()
}

type unavailableGateway struct{}

func errAuthUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) Login(context.Context, string, string) (session.Principal, error) {
	return session.Principal{}, errAuthUnavailable()
}

func (unavailableGateway) Register(context.Context, session.RegisterInput) error {
	return errAuthUnavailable()
}

func (unavailableGateway) ForgotPassword(context.Context, string) error {
	return errAuthUnavailable()
}

func (unavailableGateway) ValidateResetToken(context.Context, string) error {
	return errAuthUnavailable()
}

func (unavailableGateway) ResetPassword(context.Context, string, string, string) error {
	return errAuthUnavailable()
}

func (unavailableGateway) Logout(context.Context, string) error {
	return nil
}

func (unavailableGateway) TTL() time.Duration {
	return 0
}
