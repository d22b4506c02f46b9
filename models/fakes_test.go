package models

import (
	"context"
	"time"

	"github.com/VoyageGenie/voyage-backend/internal/store"
	"github.com/VoyageGenie/voyage-backend/types"
)

// fakeItineraryStore is an in-memory store.ItineraryStore.
type fakeItineraryStore struct {
	docs      map[string][]types.Itinerary
	listErr   error
	deleteErr error
}

func newFakeItineraryStore() *fakeItineraryStore {
	return &fakeItineraryStore{docs: make(map[string][]types.Itinerary)}
}

func (f *fakeItineraryStore) ListByUser(ctx context.Context, userID string) ([]types.Itinerary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]types.Itinerary, len(f.docs[userID]))
	copy(out, f.docs[userID])
	return out, nil
}

func (f *fakeItineraryStore) Get(ctx context.Context, userID, id string) (*types.Itinerary, error) {
	for _, it := range f.docs[userID] {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeItineraryStore) UpsertAll(ctx context.Context, userID string, itineraries []types.Itinerary) error {
	for _, incoming := range itineraries {
		replaced := false
		for i, existing := range f.docs[userID] {
			if existing.ID == incoming.ID {
				f.docs[userID][i] = incoming
				replaced = true
				break
			}
		}
		if !replaced {
			f.docs[userID] = append(f.docs[userID], incoming)
		}
	}
	return nil
}

func (f *fakeItineraryStore) Delete(ctx context.Context, userID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, it := range f.docs[userID] {
		if it.ID == id {
			f.docs[userID] = append(f.docs[userID][:i], f.docs[userID][i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// fakeSync records scheduled snapshots instead of debouncing.
type fakeSync struct {
	scheduled []scheduledSave
}

type scheduledSave struct {
	userID   string
	snapshot []types.Itinerary
}

func (f *fakeSync) Schedule(userID string, snapshot []types.Itinerary) {
	f.scheduled = append(f.scheduled, scheduledSave{userID: userID, snapshot: snapshot})
}

func (f *fakeSync) Flush() {}

func (f *fakeSync) last() []types.Itinerary {
	if len(f.scheduled) == 0 {
		return nil
	}
	return f.scheduled[len(f.scheduled)-1].snapshot
}

// fakeCache is an in-memory snapshot cache.
type fakeCache struct {
	snapshots map[string][]types.Itinerary
	getErr    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{snapshots: make(map[string][]types.Itinerary)}
}

func (f *fakeCache) GetItineraries(ctx context.Context, userID string) ([]types.Itinerary, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.snapshots[userID], nil
}

func (f *fakeCache) SetItineraries(ctx context.Context, userID string, itineraries []types.Itinerary) error {
	f.snapshots[userID] = itineraries
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, userID string) error {
	delete(f.snapshots, userID)
	return nil
}

// fakeUserStore is an in-memory store.UserStore.
type fakeUserStore struct {
	users map[string]*types.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*types.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *types.User) error {
	if _, ok := f.users[user.Username]; ok {
		return store.ErrConflict
	}
	cp := *user
	cp.CreatedAt = time.Now()
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUserStore) GetUser(ctx context.Context, username string) (*types.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	user, ok := f.users[username]
	if !ok {
		return store.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// fakeLockout counts failures in memory per account.
type fakeLockout struct {
	attempts map[string]int
	max      int
	locked   map[string]time.Duration
}

func newFakeLockout(max int) *fakeLockout {
	return &fakeLockout{
		attempts: make(map[string]int),
		locked:   make(map[string]time.Duration),
		max:      max,
	}
}

func (f *fakeLockout) IsLocked(ctx context.Context, username string) (bool, time.Duration, error) {
	if ttl, ok := f.locked[username]; ok {
		return true, ttl, nil
	}
	return false, 0, nil
}

func (f *fakeLockout) RecordFailure(ctx context.Context, username string) (int, error) {
	f.attempts[username]++
	remaining := f.max - f.attempts[username]
	if remaining <= 0 {
		f.locked[username] = 5 * time.Minute
		return 0, nil
	}
	return remaining, nil
}

func (f *fakeLockout) Clear(ctx context.Context, username string) error {
	delete(f.attempts, username)
	delete(f.locked, username)
	return nil
}

func newTestItineraryModel() (*ItineraryModel, *fakeItineraryStore, *fakeSync, *fakeCache) {
	st := newFakeItineraryStore()
	sy := &fakeSync{}
	ca := newFakeCache()
	return NewItineraryModel(st, sy, ca), st, sy, ca
}
