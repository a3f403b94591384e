package public

import (
	"context"
	"net/http"
	"time"

	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/publichandler"
	"github.com/louisbranch/javabite/internal/services/web/session"
)

// fakeGateway implements AuthGateway with canned results and call recording.
type fakeGateway struct {
	principal   session.Principal
	loginErr    error
	registerErr error
	forgotErr   error
	validateErr error
	resetErr    error

	lastEmail      string
	lastPassword   string
	lastRegister   session.RegisterInput
	lastResetToken string
	loggedOut      []string
}

func (f *fakeGateway) Login(_ context.Context, email, password string) (session.Principal, error) {
	f.lastEmail = email
	f.lastPassword = password
	if f.loginErr != nil {
		return session.Principal{}, f.loginErr
	}
	return f.principal, nil
}

func (f *fakeGateway) Register(_ context.Context, input session.RegisterInput) error {
	f.lastRegister = input
	return f.registerErr
}

func (f *fakeGateway) ForgotPassword(_ context.Context, email string) error {
	f.lastEmail = email
	return f.forgotErr
}

func (f *fakeGateway) ValidateResetToken(_ context.Context, token string) error {
	f.lastResetToken = token
	return f.validateErr
}

func (f *fakeGateway) ResetPassword(_ context.Context, token, _, _ string) error {
	f.lastResetToken = token
	return f.resetErr
}

func (f *fakeGateway) Logout(_ context.Context, sessionID string) error {
	f.loggedOut = append(f.loggedOut, sessionID)
	return nil
}

func (f *fakeGateway) TTL() time.Duration {
	return time.Hour
}

func signedOutBase() publichandler.Base {
	return publichandler.NewBase(publichandler.WithResolveViewer(func(*http.Request) module.Viewer { return module.Viewer{} }))
}

func signedInBase(role module.Role) publichandler.Base {
	return publichandler.NewBase(publichandler.WithResolveViewer(func(*http.Request) module.Viewer {
		return module.Viewer{UserID: "7", DisplayName: "Ana", Role: role}
	}))
}

func mountWith(g AuthGateway, base publichandler.Base) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(g), base))
	return mux
}
