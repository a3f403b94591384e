package session

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/storage"
)

type fakeAPI struct {
	mu        sync.Mutex
	responses map[string]any
	errs      map[string]error
	requests  []restapi.Request
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{responses: map[string]any{}, errs: map[string]error{}}
}

func (f *fakeAPI) Do(_ context.Context, req restapi.Request, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if err := f.errs[req.Path]; err != nil {
		return err
	}
	resp, ok := f.responses[req.Path]
	if !ok || out == nil {
		return nil
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

func (f *fakeAPI) calls(path string) []restapi.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []restapi.Request
	for _, req := range f.requests {
		if req.Path == path {
			matched = append(matched, req)
		}
	}
	return matched
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]storage.SessionRecord
	deleted  []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]storage.SessionRecord{}}
}

func (s *memoryStore) GetSession(_ context.Context, sessionID string) (storage.SessionRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.sessions[sessionID]
	return record, ok, nil
}

func (s *memoryStore) PutSession(_ context.Context, record storage.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[record.ID] = record
	return nil
}

func (s *memoryStore) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	s.deleted = append(s.deleted, sessionID)
	return nil
}

func (s *memoryStore) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func tokenFor(t *testing.T, userID, email, role string, exp time.Time) string {
	t.Helper()
	return signedToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: email, ExpiresAt: jwt.NewNumericDate(exp)},
		Role:             role,
		UserID:           restapi.ID(userID),
	})
}
