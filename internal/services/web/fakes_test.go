package web

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/session"
	"github.com/louisbranch/javabite/internal/services/web/storage"
)

type fakeAPI struct{}

func (fakeAPI) Do(context.Context, restapi.Request, any) error {
	return nil
}

func (fakeAPI) Download(context.Context, string) (restapi.Document, error) {
	return restapi.Document{}, nil
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]storage.SessionRecord
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]storage.SessionRecord{}}
}

func (s *memorySessionStore) GetSession(_ context.Context, sessionID string) (storage.SessionRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.sessions[sessionID]
	return record, ok, nil
}

func (s *memorySessionStore) PutSession(_ context.Context, record storage.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[record.ID] = record
	return nil
}

func (s *memorySessionStore) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *memorySessionStore) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// seedSession stores a signed-in session for role and returns its id.
func seedSession(t *testing.T, store *memorySessionStore, sessionID, role string) {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":    "staff@javabite.test",
		"userId": 7,
		"role":   role,
		"name":   "Sam",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	now := time.Now().UTC()
	if err := store.PutSession(context.Background(), storage.SessionRecord{
		ID:          sessionID,
		AccessToken: token,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

type countingResolver struct {
	mu        sync.Mutex
	calls     int
	principal session.Principal
	found     bool
	err       error
}

func (r *countingResolver) Resolve(context.Context, string) (session.Principal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.principal, r.found, r.err
}

func (r *countingResolver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
