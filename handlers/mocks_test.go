package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/VoyageGenie/voyage-backend/internal/auth"
	"github.com/VoyageGenie/voyage-backend/internal/store"
	"github.com/VoyageGenie/voyage-backend/middleware"
	"github.com/VoyageGenie/voyage-backend/models"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-with-enough-length"

// memItineraryStore is an in-memory store.ItineraryStore for handler tests.
type memItineraryStore struct {
	docs map[string][]types.Itinerary
}

func newMemItineraryStore() *memItineraryStore {
	return &memItineraryStore{docs: make(map[string][]types.Itinerary)}
}

func (m *memItineraryStore) ListByUser(ctx context.Context, userID string) ([]types.Itinerary, error) {
	out := make([]types.Itinerary, len(m.docs[userID]))
	copy(out, m.docs[userID])
	return out, nil
}

func (m *memItineraryStore) Get(ctx context.Context, userID, id string) (*types.Itinerary, error) {
	for _, it := range m.docs[userID] {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memItineraryStore) UpsertAll(ctx context.Context, userID string, itineraries []types.Itinerary) error {
	for _, incoming := range itineraries {
		replaced := false
		for i, existing := range m.docs[userID] {
			if existing.ID == incoming.ID {
				m.docs[userID][i] = incoming
				replaced = true
				break
			}
		}
		if !replaced {
			m.docs[userID] = append(m.docs[userID], incoming)
		}
	}
	return nil
}

func (m *memItineraryStore) Delete(ctx context.Context, userID, id string) error {
	for i, it := range m.docs[userID] {
		if it.ID == id {
			m.docs[userID] = append(m.docs[userID][:i], m.docs[userID][i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// memUserStore is an in-memory store.UserStore.
type memUserStore struct {
	users map[string]*types.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*types.User)}
}

func (m *memUserStore) CreateUser(ctx context.Context, user *types.User) error {
	if _, ok := m.users[user.Username]; ok {
		return store.ErrConflict
	}
	cp := *user
	cp.CreatedAt = time.Now()
	m.users[user.Username] = &cp
	return nil
}

func (m *memUserStore) GetUser(ctx context.Context, username string) (*types.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *memUserStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	user, ok := m.users[username]
	if !ok {
		return store.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// immediateSync writes straight through instead of debouncing.
type immediateSync struct {
	store store.ItineraryStore
}

func (s *immediateSync) Schedule(userID string, snapshot []types.Itinerary) {
	_ = s.store.UpsertAll(context.Background(), userID, snapshot)
}

func (s *immediateSync) Flush() {}

// memCache is an in-memory snapshot cache.
type memCache struct {
	snapshots map[string][]types.Itinerary
}

func newMemCache() *memCache {
	return &memCache{snapshots: make(map[string][]types.Itinerary)}
}

func (m *memCache) GetItineraries(ctx context.Context, userID string) ([]types.Itinerary, error) {
	return m.snapshots[userID], nil
}

func (m *memCache) SetItineraries(ctx context.Context, userID string, itineraries []types.Itinerary) error {
	m.snapshots[userID] = itineraries
	return nil
}

func (m *memCache) Invalidate(ctx context.Context, userID string) error {
	delete(m.snapshots, userID)
	return nil
}

// memLockout counts failures in memory.
type memLockout struct {
	attempts map[string]int
	max      int
}

func newMemLockout(max int) *memLockout {
	return &memLockout{attempts: make(map[string]int), max: max}
}

func (m *memLockout) IsLocked(ctx context.Context, username string) (bool, time.Duration, error) {
	if m.attempts[username] >= m.max {
		return true, 5 * time.Minute, nil
	}
	return false, 0, nil
}

func (m *memLockout) RecordFailure(ctx context.Context, username string) (int, error) {
	m.attempts[username]++
	remaining := m.max - m.attempts[username]
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (m *memLockout) Clear(ctx context.Context, username string) error {
	delete(m.attempts, username)
	return nil
}

func newTestItineraryModel() *models.ItineraryModel {
	st := newMemItineraryStore()
	return models.NewItineraryModel(st, &immediateSync{store: st}, newMemCache())
}

func newTestUserModel() *models.UserModel {
	return models.NewUserModel(newMemUserStore(), newMemLockout(5),
		[]byte(testSecret), time.Hour, 5)
}

func bearerFor(t *testing.T, username string) string {
	t.Helper()
	token, err := auth.GenerateToken([]byte(testSecret), username, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func authenticatedAs(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, username)
		c.Next()
	}
}

func jsonRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func init() {
	gin.SetMode(gin.TestMode)
}
