// Package web hosts the browser-facing JavaBite service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/javabite/internal/platform/timeouts"
	"github.com/louisbranch/javabite/internal/services/web/app"
	"github.com/louisbranch/javabite/internal/services/web/cart"
	"github.com/louisbranch/javabite/internal/services/web/infra/cache"
	"github.com/louisbranch/javabite/internal/services/web/modules"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/platform/observability"
	"github.com/louisbranch/javabite/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	"github.com/louisbranch/javabite/internal/services/web/session"
	webstatic "github.com/louisbranch/javabite/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr            string
	API                 modules.BackendAPI
	Sessions            *session.Manager
	Carts               *cart.Repository
	MenuCache           *cache.MenuCache
	RazorpayKeyID       string
	PollInterval        time.Duration
	TrustForwardedProto bool
	Logger              *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	var sessions sessionResolver
	if cfg.Sessions != nil {
		sessions = cfg.Sessions
	}
	principal := newPrincipalResolver(sessions, logger)
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	res := modules.ModuleResolvers{
		ResolveViewer:    principal.resolveViewer,
		ResolveSignedIn:  principal.resolveSignedIn,
		ResolveUserID:    principal.resolveRequestUserID,
		ResolveLanguage:  principal.resolveRequestLanguage,
		ResolveContext:   principal.resolveContext,
		ResolveSessionID: principal.resolveSessionID,
		SchemePolicy:     policy,
	}
	deps := modules.Dependencies{
		API:           cfg.API,
		Sessions:      cfg.Sessions,
		Carts:         cfg.Carts,
		MenuCache:     cfg.MenuCache,
		RazorpayKeyID: cfg.RazorpayKeyID,
		PollInterval:  cfg.PollInterval,
	}
	h, err := app.BuildRootHandler(app.Config{
		ResolveViewer:       principal.resolveViewer,
		PublicModules:       modules.DefaultPublicModules(deps, res),
		ProtectedModules:    modules.DefaultProtectedModules(deps, res),
		RequestSchemePolicy: policy,
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		withRequestPrincipalState(),
		observability.RequestLogger(logger),
	), nil
}

func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestPrincipalState{}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
