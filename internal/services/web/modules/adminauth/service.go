package adminauth

import (
	"context"
	"strings"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/module"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/session"
)

// Gateway signs administrators in and registers new administrator accounts.
// *session.Manager satisfies it.
type Gateway interface {
	LoginAdmin(ctx context.Context, email, password string) (session.Principal, error)
	Register(ctx context.Context, input session.RegisterInput) error
	TTL() time.Duration
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

type registration struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

func (s service) login(ctx context.Context, email, password string) (session.Principal, error) {
	return s.gateway.LoginAdmin(ctx, strings.TrimSpace(email), password)
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
		Role:     string(module.RoleAdmin),
	})
}

func (s service) sessionTTL() time.Duration {
	return s.gateway.TTL()
}

type unavailableGateway struct{}

func (unavailableGateway) LoginAdmin(context.Context, string, string) (session.Principal, error) {
	return session.Principal{}, apperrors.E(apperrors.KindUnavailable, "admin auth service is not configured")
}

func (unavailableGateway) Register(context.Context, session.RegisterInput) error {
	return apperrors.E(apperrors.KindUnavailable, "admin auth service is not configured")
}

func (unavailableGateway) TTL() time.Duration {
	return 0
}
