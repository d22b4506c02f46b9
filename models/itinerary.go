package models

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/internal/store"
	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/VoyageGenie/voyage-backend/services"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/google/uuid"
)

// ItineraryModel owns all itinerary document operations. Every content
// mutation funnels through Replace, which refreshes the snapshot cache and
// schedules the debounced bulk save. Creation and deletion write through
// immediately.
type ItineraryModel struct {
	store store.ItineraryStore
	sync  services.SyncServiceInterface
	cache services.CacheServiceInterface
}

func NewItineraryModel(itineraryStore store.ItineraryStore, syncService services.SyncServiceInterface, cacheService services.CacheServiceInterface) *ItineraryModel {
	return &ItineraryModel{
		store: itineraryStore,
		sync:  syncService,
		cache: cacheService,
	}
}

// List returns the user's itineraries sorted by start date or destination.
func (im *ItineraryModel) List(ctx context.Context, userID, sortBy string) ([]types.Itinerary, error) {
	itineraries, err := im.loadList(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortItineraries(itineraries, sortBy)
	return itineraries, nil
}

// Get returns one itinerary document owned by the user. Reads go through
// the snapshot cache first so edits still queued behind the debounce
// window are visible to their author.
func (im *ItineraryModel) Get(ctx context.Context, userID, id string) (*types.Itinerary, error) {
	list, err := im.loadList(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			cp := list[i]
			return &cp, nil
		}
	}
	return nil, errors.ItineraryNotFound(id)
}

// Create builds a new itinerary document from the trip request and persists
// it immediately.
func (im *ItineraryModel) Create(ctx context.Context, userID string, req *types.TripCreate) (*types.Itinerary, error) {
	totalDays, err := CalculateDays(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	it := &types.Itinerary{
		ID:        uuid.New().String(),
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TripSummary: types.TripSummary{
			City:      req.City,
			TotalDays: totalDays,
			Vibe:      req.Vibe,
		},
		DailyItinerary: BuildDailyPlans(req.StartDate, totalDays),
		PackingList:    []types.PackingItem{},
		Transports:     []types.TransportInfo{},
		Concerts:       []types.ConcertInfo{},
		ShoppingList:   []types.ShoppingItem{},
		CreatedAt:      time.Now().UnixMilli(),
	}

	if err := im.store.UpsertAll(ctx, userID, []types.Itinerary{*it}); err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	if cacheErr := im.cache.Invalidate(ctx, userID); cacheErr != nil {
		logger.GetLogger().Warnw("Failed to invalidate itinerary cache", "userId", userID, "error", cacheErr)
	}
	return it, nil
}

// Replace is the single mutation entry point for itinerary content. It
// validates the document, swaps it into the owner's list by id, refreshes
// the snapshot cache, and schedules the debounced bulk save. Replacing a
// document with an identical copy is harmless.
func (im *ItineraryModel) Replace(ctx context.Context, userID string, it *types.Itinerary) error {
	if err := validateItinerary(it); err != nil {
		return err
	}

	list, err := im.loadList(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for i := range list {
		if list[i].ID == it.ID {
			list[i] = *it
			found = true
			break
		}
	}
	if !found {
		return errors.ItineraryNotFound(it.ID)
	}

	if cacheErr := im.cache.SetItineraries(ctx, userID, list); cacheErr != nil {
		logger.GetLogger().Warnw("Failed to refresh itinerary cache", "userId", userID, "error", cacheErr)
	}
	im.sync.Schedule(userID, list)
	return nil
}

// UpdateTrip edits the headline trip data and reconciles the daily plans
// when the date range changed.
func (im *ItineraryModel) UpdateTrip(ctx context.Context, userID, id string, req *types.TripUpdate) (*types.Itinerary, error) {
	totalDays, err := CalculateDays(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	it, err := im.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	it.Title = req.Title
	it.StartDate = req.StartDate
	it.EndDate = req.EndDate
	it.TripSummary.City = req.City
	it.TripSummary.Vibe = req.Vibe
	it.TripSummary.TotalDays = totalDays
	it.DailyItinerary = ReconcileDailyPlans(it.DailyItinerary, req.StartDate, totalDays)

	if err := im.Replace(ctx, userID, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Delete removes the itinerary immediately. A failed delete is surfaced so
// the caller keeps its copy; nothing is removed optimistically.
func (im *ItineraryModel) Delete(ctx context.Context, userID, id string) error {
	if err := im.store.Delete(ctx, userID, id); err != nil {
		if err == store.ErrNotFound {
			return errors.ItineraryNotFound(id)
		}
		return errors.NewDatabaseError(err)
	}

	if cacheErr := im.cache.Invalidate(ctx, userID); cacheErr != nil {
		logger.GetLogger().Warnw("Failed to invalidate itinerary cache", "userId", userID, "error", cacheErr)
	}
	return nil
}

// loadList fetches the user's current list, preferring the snapshot cache
// so edits queued behind the debounce window are not lost by a read-modify
// -write against the database. On a cache miss the database list is served
// and mirrored back into the cache.
func (im *ItineraryModel) loadList(ctx context.Context, userID string) ([]types.Itinerary, error) {
	log := logger.GetLogger()

	cached, err := im.cache.GetItineraries(ctx, userID)
	if err != nil {
		log.Warnw("Snapshot cache read failed", "userId", userID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	list, err := im.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	if list == nil {
		list = []types.Itinerary{}
	}
	if cacheErr := im.cache.SetItineraries(ctx, userID, list); cacheErr != nil {
		log.Warnw("Failed to refresh itinerary cache", "userId", userID, "error", cacheErr)
	}
	return list, nil
}

func sortItineraries(itineraries []types.Itinerary, sortBy string) {
	switch sortBy {
	case "destination":
		sort.SliceStable(itineraries, func(i, j int) bool {
			return strings.ToLower(itineraries[i].TripSummary.City) < strings.ToLower(itineraries[j].TripSummary.City)
		})
	default:
		sort.SliceStable(itineraries, func(i, j int) bool {
			if itineraries[i].StartDate != itineraries[j].StartDate {
				return itineraries[i].StartDate < itineraries[j].StartDate
			}
			return itineraries[i].CreatedAt < itineraries[j].CreatedAt
		})
	}
}

// validateItinerary checks the document invariants before any replace.
func validateItinerary(it *types.Itinerary) error {
	if it.ID == "" {
		return errors.ValidationFailed("invalid itinerary", "id is required")
	}

	totalDays, err := CalculateDays(it.StartDate, it.EndDate)
	if err != nil {
		return err
	}
	if it.TripSummary.TotalDays != totalDays || len(it.DailyItinerary) != totalDays {
		return errors.ValidationFailed(
			"inconsistent daily itinerary",
			fmt.Sprintf("date range spans %d days but document declares %d summary days and %d plans",
				totalDays, it.TripSummary.TotalDays, len(it.DailyItinerary)),
		)
	}

	for i := range it.Transports {
		tr := &it.Transports[i]
		if !tr.Mode.IsValid() {
			return errors.ValidationFailed("invalid transport", fmt.Sprintf("unknown mode %q", tr.Mode))
		}
		if !tr.ValidVariant() {
			return errors.ValidationFailed("invalid transport", fmt.Sprintf("detail payload does not match mode %q", tr.Mode))
		}
		if !tr.Currency.IsValid() {
			return errors.ValidationFailed("invalid transport", fmt.Sprintf("unsupported currency %q", tr.Currency))
		}
	}
	for i := range it.Concerts {
		if !it.Concerts[i].Currency.IsValid() {
			return errors.ValidationFailed("invalid concert", fmt.Sprintf("unsupported currency %q", it.Concerts[i].Currency))
		}
	}
	for i := range it.ShoppingList {
		item := &it.ShoppingList[i]
		if !item.Currency.IsValid() {
			return errors.ValidationFailed("invalid shopping item", fmt.Sprintf("unsupported currency %q", item.Currency))
		}
		if !item.Priority.IsValid() {
			return errors.ValidationFailed("invalid shopping item", fmt.Sprintf("unknown priority %q", item.Priority))
		}
	}
	return nil
}
