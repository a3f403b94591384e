package web

import (
	"context"
	"log"
	"net/http"
	"sync"

	webi18n "github.com/louisbranch/javabite/internal/services/web/i18n"
	"github.com/louisbranch/javabite/internal/services/web/module"
	"github.com/louisbranch/javabite/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/javabite/internal/services/web/session"
)

// sessionResolver is the slice of session.Manager the principal resolver needs.
type sessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (session.Principal, bool, error)
}

type requestPrincipalState struct {
	principalOnce sync.Once
	principal     session.Principal
	signedIn      bool
	languageOnce  sync.Once
	language      string
}

type requestPrincipalStateKey struct{}

type principalResolver struct {
	sessions sessionResolver
	logger   *log.Logger
}

func newPrincipalResolver(sessions sessionResolver, logger *log.Logger) principalResolver {
	if logger == nil {
		logger = log.Default()
	}
	return principalResolver{sessions: sessions, logger: logger}
}

func (r principalResolver) resolvePrincipalUncached(req *http.Request) (session.Principal, bool) {
	if req == nil || r.sessions == nil {
		return session.Principal{}, false
	}
	sessionID, ok := sessioncookie.Read(req)
	if !ok {
		return session.Principal{}, false
	}
	principal, found, err := r.sessions.Resolve(req.Context(), sessionID)
	if err != nil {
		r.logger.Printf("resolve session failed path=%s err=%v", req.URL.Path, err)
		return session.Principal{}, false
	}
	if !found {
		return session.Principal{}, false
	}
	return principal, true
}

// resolvePrincipal looks the session up once per request.
func (r principalResolver) resolvePrincipal(req *http.Request) (session.Principal, bool) {
	if state := requestPrincipalStateFromRequest(req); state != nil {
		state.principalOnce.Do(func() {
			state.principal, state.signedIn = r.resolvePrincipalUncached(req)
		})
		return state.principal, state.signedIn
	}
	return r.resolvePrincipalUncached(req)
}

func (r principalResolver) resolveViewer(req *http.Request) module.Viewer {
	principal, ok := r.resolvePrincipal(req)
	if !ok {
		return module.Viewer{}
	}
	return principal.Viewer()
}

func (r principalResolver) resolveSignedIn(req *http.Request) bool {
	return r.resolveViewer(req).SignedIn()
}

func (r principalResolver) resolveRequestUserID(req *http.Request) string {
	principal, ok := r.resolvePrincipal(req)
	if !ok {
		return ""
	}
	return principal.UserID()
}

func (r principalResolver) resolveSessionID(req *http.Request) string {
	principal, ok := r.resolvePrincipal(req)
	if !ok {
		return ""
	}
	return principal.SessionID
}

// resolveContext binds the session's backend credentials to the request
// context so gateway calls carry the bearer token.
func (r principalResolver) resolveContext(req *http.Request) context.Context {
	if req == nil {
		return context.Background()
	}
	principal, ok := r.resolvePrincipal(req)
	if !ok {
		return req.Context()
	}
	return principal.Bind(req.Context())
}

func (r principalResolver) resolveRequestLanguageUncached(req *http.Request) string {
	tag, _ := webi18n.ResolveTag(req)
	return tag.String()
}

func (r principalResolver) resolveRequestLanguage(req *http.Request) string {
	if state := requestPrincipalStateFromRequest(req); state != nil {
		state.languageOnce.Do(func() {
			state.language = r.resolveRequestLanguageUncached(req)
		})
		return state.language
	}
	return r.resolveRequestLanguageUncached(req)
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	return requestPrincipalStateFromContext(r.Context())
}

func requestPrincipalStateFromContext(ctx context.Context) *requestPrincipalState {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}
