package services

import (
	"context"
	"sync"
	"time"

	"github.com/VoyageGenie/voyage-backend/internal/store"
	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/VoyageGenie/voyage-backend/types"
	"go.uber.org/zap"
)

// SyncServiceInterface defines the contract for the debounced itinerary
// writer sitting between in-memory edits and the database.
type SyncServiceInterface interface {
	// Schedule queues the user's full itinerary list for persistence after
	// the quiet period. A newer snapshot replaces a queued one.
	Schedule(userID string, snapshot []types.Itinerary)
	// Flush writes every queued snapshot immediately. Used on shutdown.
	Flush()
}

type pendingSave struct {
	timer    *time.Timer
	snapshot []types.Itinerary
}

// SyncService coalesces rapid itinerary edits into one bulk upsert per
// user. Each Schedule call resets the user's debounce timer and replaces
// the queued snapshot, so a burst of edits produces a single write of the
// final state. Save failures are logged and never propagated; callers have
// already moved on by the time the write fires.
type SyncService struct {
	store       store.ItineraryStore
	debounce    time.Duration
	saveTimeout time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
	wg      sync.WaitGroup

	log *zap.SugaredLogger
}

func NewSyncService(itineraryStore store.ItineraryStore, debounce, saveTimeout time.Duration) *SyncService {
	return &SyncService{
		store:       itineraryStore,
		debounce:    debounce,
		saveTimeout: saveTimeout,
		pending:     make(map[string]*pendingSave),
		log:         logger.GetLogger(),
	}
}

func (s *SyncService) Schedule(userID string, snapshot []types.Itinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[userID]; ok {
		p.timer.Stop()
		p.snapshot = snapshot
		p.timer.Reset(s.debounce)
		return
	}

	p := &pendingSave{snapshot: snapshot}
	p.timer = time.AfterFunc(s.debounce, func() {
		s.fire(userID)
	})
	s.pending[userID] = p
}

// fire takes the user's queued snapshot off the map and writes it.
func (s *SyncService) fire(userID string) {
	s.mu.Lock()
	p, ok := s.pending[userID]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.pending, userID)
	snapshot := p.snapshot
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	s.save(userID, snapshot)
}

func (s *SyncService) save(userID string, snapshot []types.Itinerary) {
	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := s.store.UpsertAll(ctx, userID, snapshot); err != nil {
		s.log.Errorw("Debounced itinerary save failed",
			"userId", userID,
			"itineraries", len(snapshot),
			"error", err)
		return
	}
	s.log.Debugw("Debounced itinerary save completed",
		"userId", userID,
		"itineraries", len(snapshot))
}

// Flush stops all debounce timers and writes every queued snapshot before
// returning. Also waits for saves already in flight.
func (s *SyncService) Flush() {
	s.mu.Lock()
	queued := make(map[string][]types.Itinerary, len(s.pending))
	for userID, p := range s.pending {
		if p.timer.Stop() {
			queued[userID] = p.snapshot
		}
		delete(s.pending, userID)
	}
	s.mu.Unlock()

	for userID, snapshot := range queued {
		s.save(userID, snapshot)
	}
	s.wg.Wait()
}
