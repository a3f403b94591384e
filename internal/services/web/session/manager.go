// Package session owns the server-side half of a browser session: the access
// token, refresh token and profile that sign a visitor in to the backend.
package session

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/javabite/internal/platform/id"
	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/module"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"github.com/louisbranch/javabite/internal/services/web/storage"
)

// DefaultTTL is the idle lifetime of a session.
const DefaultTTL = 7 * 24 * time.Hour

const touchInterval = 5 * time.Minute

// API is the backend transport used for sign-in and token exchange.
type API interface {
	Do(ctx context.Context, req restapi.Request, out any) error
}

// Options tunes a Manager.
type Options struct {
	TTL    time.Duration
	Now    func() time.Time
	NewID  func() (string, error)
	Logger *log.Logger
}

// Manager creates, resolves and ends sessions.
type Manager struct {
	api    API
	store  storage.SessionStore
	ttl    time.Duration
	now    func() time.Time
	newID  func() (string, error)
	logger *log.Logger
}

// NewManager builds a Manager with defaults applied.
func NewManager(api API, store storage.SessionStore, opts Options) *Manager {
	m := &Manager{
		api:    api,
		store:  store,
		ttl:    opts.TTL,
		now:    opts.Now,
		newID:  opts.NewID,
		logger: opts.Logger,
	}
	if m.ttl <= 0 {
		m.ttl = DefaultTTL
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.newID == nil {
		m.newID = id.NewID
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	return m
}

// TTL returns the idle session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Principal is a resolved, signed-in session.
type Principal struct {
	SessionID   string
	Role        module.Role
	Credentials *Credentials
}

// Profile returns the current session profile.
func (p Principal) Profile() storage.Profile {
	if p.Credentials == nil {
		return storage.Profile{}
	}
	return p.Credentials.Profile()
}

// UserID returns the backend user id.
func (p Principal) UserID() string {
	return strings.TrimSpace(p.Profile().ID)
}

// Viewer returns chrome data for rendering.
func (p Principal) Viewer() module.Viewer {
	profile := p.Profile()
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = strings.TrimSpace(profile.Email)
	}
	return module.Viewer{
		UserID:      strings.TrimSpace(profile.ID),
		DisplayName: name,
		Email:       strings.TrimSpace(profile.Email),
		Role:        p.Role,
	}
}

// Bind attaches the session credentials to ctx for backend calls.
func (p Principal) Bind(ctx context.Context) context.Context {
	if p.Credentials == nil {
		return ctx
	}
	return restapi.WithCredentials(ctx, p.Credentials)
}

// Login signs in with email and password and opens a session.
func (m *Manager) Login(ctx context.Context, email, password string) (Principal, error) {
	auth, role, err := m.authenticate(ctx, email, password)
	if err != nil {
		return Principal{}, err
	}
	return m.open(ctx, auth, role)
}

// LoginAdmin signs in through the admin portal. Non-admin accounts are
// refused without opening a session.
func (m *Manager) LoginAdmin(ctx context.Context, email, password string) (Principal, error) {
	auth, role, err := m.authenticate(ctx, email, password)
	if err != nil {
		return Principal{}, err
	}
	if role != module.RoleAdmin {
		return Principal{}, apperrors.EK(apperrors.KindForbidden, "error.web.message.admin_portal_only", "Access denied: this portal is for administrators only")
	}
	return m.open(ctx, auth, role)
}

func (m *Manager) authenticate(ctx context.Context, email, password string) (restapi.AuthResponse, module.Role, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return restapi.AuthResponse{}, "", apperrors.EK(apperrors.KindInvalidInput, "error.web.message.email_and_password_required", "email and password are required")
	}
	var auth restapi.AuthResponse
	err := m.api.Do(ctx, restapi.Request{
		Method:    http.MethodPost,
		Path:      "/auth/login",
		Body:      map[string]string{"email": email, "password": password},
		Anonymous: true,
	}, &auth)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindUnauthorized) {
			return restapi.AuthResponse{}, "", apperrors.EK(apperrors.KindInvalidInput, "error.web.message.invalid_credentials", "Invalid email or password")
		}
		return restapi.AuthResponse{}, "", err
	}
	if strings.TrimSpace(auth.Token) == "" {
		return restapi.AuthResponse{}, "", apperrors.E(apperrors.KindUnavailable, "login response did not include a token")
	}
	profile := profileFromAuth(storage.Profile{}, auth)
	role, ok := module.ParseRole(profile.Role)
	if !ok {
		return restapi.AuthResponse{}, "", apperrors.EK(apperrors.KindInvalidInput, "error.web.message.role_missing", "Unable to detect user role")
	}
	return auth, role, nil
}

func (m *Manager) open(ctx context.Context, auth restapi.AuthResponse, role module.Role) (Principal, error) {
	sessionID, err := m.newID()
	if err != nil {
		return Principal{}, fmt.Errorf("new session id: %w", err)
	}
	now := m.now().UTC()
	record := storage.SessionRecord{
		ID:        sessionID,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	applyAuth(&record, auth)
	if err := m.store.PutSession(ctx, record); err != nil {
		return Principal{}, fmt.Errorf("save session: %w", err)
	}
	return m.principal(record, role), nil
}

// Resolve loads a session, refreshing an expired access token when a refresh
// token is available. A token that does not decode is never refreshed.
// Sessions that cannot be restored are deleted and reported as not signed in.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (Principal, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Principal{}, false, nil
	}
	record, found, err := m.store.GetSession(ctx, sessionID)
	if err != nil {
		return Principal{}, false, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return Principal{}, false, nil
	}

	now := m.now().UTC()
	claims, err := ParseClaims(record.AccessToken)
	if err != nil {
		m.logger.Printf("session token unreadable session=%s err=%v", shortID(sessionID), err)
		m.drop(ctx, sessionID)
		return Principal{}, false, nil
	}
	if claims.ExpiredAt(now) {
		record, err = m.refreshRecord(ctx, record)
		if err == nil {
			claims, err = ParseClaims(record.AccessToken)
		}
		if err != nil {
			m.logger.Printf("session restore failed session=%s err=%v", shortID(sessionID), err)
			m.drop(ctx, sessionID)
			return Principal{}, false, nil
		}
	}

	record.Profile = fillFromClaims(record.Profile, claims)
	role, ok := module.ParseRole(record.Profile.Role)
	if !ok {
		m.drop(ctx, sessionID)
		return Principal{}, false, nil
	}

	if now.Sub(record.UpdatedAt) >= touchInterval {
		record.UpdatedAt = now
		record.ExpiresAt = now.Add(m.ttl)
		if err := m.store.PutSession(ctx, record); err != nil {
			m.logger.Printf("session touch failed session=%s err=%v", shortID(sessionID), err)
		}
	}
	return m.principal(record, role), true, nil
}

func (m *Manager) refreshRecord(ctx context.Context, record storage.SessionRecord) (storage.SessionRecord, error) {
	if strings.TrimSpace(record.RefreshToken) == "" {
		return record, fmt.Errorf("access token expired and no refresh token is stored")
	}
	var auth restapi.AuthResponse
	err := m.api.Do(ctx, restapi.Request{
		Method:    http.MethodPost,
		Path:      "/auth/refresh",
		Body:      map[string]string{"refreshToken": record.RefreshToken},
		Anonymous: true,
	}, &auth)
	if err != nil {
		return record, fmt.Errorf("refresh tokens: %w", err)
	}
	if strings.TrimSpace(auth.Token) == "" {
		return record, fmt.Errorf("refresh response did not include a token")
	}
	applyAuth(&record, auth)
	record.UpdatedAt = m.now().UTC()
	if err := m.store.PutSession(ctx, record); err != nil {
		return record, fmt.Errorf("save refreshed session: %w", err)
	}
	return record, nil
}

// Logout ends a session and discards its cart.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if err := m.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (m *Manager) drop(ctx context.Context, sessionID string) {
	if err := m.store.DeleteSession(ctx, sessionID); err != nil {
		m.logger.Printf("session delete failed session=%s err=%v", shortID(sessionID), err)
	}
}

func (m *Manager) principal(record storage.SessionRecord, role module.Role) Principal {
	return Principal{
		SessionID:   record.ID,
		Role:        role,
		Credentials: newCredentials(m.store, record, m.now),
	}
}

// applyAuth copies tokens and any profile fields from a sign-in or refresh
// response onto record.
func applyAuth(record *storage.SessionRecord, auth restapi.AuthResponse) {
	record.AccessToken = strings.TrimSpace(auth.Token)
	if refresh := strings.TrimSpace(auth.RefreshToken); refresh != "" {
		record.RefreshToken = refresh
	}
	record.Profile = profileFromAuth(record.Profile, auth)
}

// profileFromAuth overlays response fields on base, then fills gaps from the
// token's claims.
func profileFromAuth(base storage.Profile, auth restapi.AuthResponse) storage.Profile {
	if v := auth.ID.String(); v != "" {
		base.ID = v
	}
	if v := strings.TrimSpace(auth.Name); v != "" {
		base.Name = v
	}
	if v := strings.TrimSpace(auth.Email); v != "" {
		base.Email = v
	}
	if v := strings.TrimSpace(auth.Role); v != "" {
		base.Role = strings.ToUpper(v)
	}
	if claims, err := ParseClaims(auth.Token); err == nil {
		base = fillFromClaims(base, claims)
	}
	return base
}

func fillFromClaims(profile storage.Profile, claims Claims) storage.Profile {
	if strings.TrimSpace(profile.ID) == "" {
		profile.ID = claims.UserID.String()
	}
	if strings.TrimSpace(profile.Email) == "" {
		profile.Email = claims.Email()
	}
	if strings.TrimSpace(profile.Role) == "" {
		profile.Role = strings.ToUpper(strings.TrimSpace(claims.Role))
	}
	if strings.TrimSpace(profile.Name) == "" {
		profile.Name = strings.TrimSpace(claims.Name)
	}
	return profile
}

func shortID(sessionID string) string {
	if len(sessionID) <= 6 {
		return sessionID
	}
	return sessionID[:6]
}
