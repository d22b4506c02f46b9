package models

import (
	"context"
	"testing"

	apperrors "github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryModel_Create(t *testing.T) {
	im, st, _, _ := newTestItineraryModel()

	it, err := im.Create(context.Background(), "alice", &types.TripCreate{
		Title:     "Tokyo Trip",
		City:      "Tokyo",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-04",
		Vibe:      []string{"city pop"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, 4, it.TripSummary.TotalDays)
	require.Len(t, it.DailyItinerary, 4)
	assert.Equal(t, "Arrival", it.DailyItinerary[0].Theme)
	assert.Equal(t, "Departure", it.DailyItinerary[3].Theme)
	assert.NotZero(t, it.CreatedAt)

	// Persisted immediately, not debounced.
	require.Len(t, st.docs["alice"], 1)
	assert.Equal(t, it.ID, st.docs["alice"][0].ID)
}

func TestItineraryModel_Create_RejectsReversedDates(t *testing.T) {
	im, st, _, _ := newTestItineraryModel()

	_, err := im.Create(context.Background(), "alice", &types.TripCreate{
		Title:     "Backwards",
		City:      "Tokyo",
		StartDate: "2026-04-05",
		EndDate:   "2026-04-01",
	})
	require.Error(t, err)
	assert.Empty(t, st.docs["alice"])
}

func TestItineraryModel_Replace_SchedulesDebouncedSave(t *testing.T) {
	im, _, sy, ca := newTestItineraryModel()
	it, err := im.Create(context.Background(), "alice", &types.TripCreate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-02",
	})
	require.NoError(t, err)

	it.Title = "Tokyo Spring Trip"
	require.NoError(t, im.Replace(context.Background(), "alice", it))

	require.Len(t, sy.scheduled, 1)
	assert.Equal(t, "Tokyo Spring Trip", sy.last()[0].Title)
	assert.Equal(t, "Tokyo Spring Trip", ca.snapshots["alice"][0].Title)
}

func TestItineraryModel_Replace_UnknownID(t *testing.T) {
	im, _, _, _ := newTestItineraryModel()

	err := im.Replace(context.Background(), "alice", &types.Itinerary{
		ID:        "ghost",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-01",
		TripSummary: types.TripSummary{TotalDays: 1},
		DailyItinerary: []types.DailyPlan{{ID: "d1", Day: 1}},
	})
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ItineraryNotFoundError, appErr.Type)
}

func TestItineraryModel_Replace_RejectsDayCountMismatch(t *testing.T) {
	im, _, _, _ := newTestItineraryModel()
	it, err := im.Create(context.Background(), "alice", &types.TripCreate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-03",
	})
	require.NoError(t, err)

	it.DailyItinerary = it.DailyItinerary[:2]
	err = im.Replace(context.Background(), "alice", it)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestItineraryModel_Replace_RejectsMismatchedTransportVariant(t *testing.T) {
	im, _, _, _ := newTestItineraryModel()
	it, err := im.Create(context.Background(), "alice", &types.TripCreate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-01",
	})
	require.NoError(t, err)

	it.Transports = []types.TransportInfo{{
		ID:       "t1",
		Mode:     types.TransportRental,
		Currency: types.CurrencyJPY,
		Flight:   &types.FlightDetails{FlightNumber: "BR198"},
	}}
	err = im.Replace(context.Background(), "alice", it)
	assert.Error(t, err)
}

func TestItineraryModel_Replace_IdenticalCopyIsIdempotent(t *testing.T) {
	im, _, sy, _ := newTestItineraryModel()
	it, err := im.Create(context.Background(), "alice", &types.TripCreate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-02",
	})
	require.NoError(t, err)

	require.NoError(t, im.Replace(context.Background(), "alice", it))
	require.NoError(t, im.Replace(context.Background(), "alice", it))

	require.Len(t, sy.scheduled, 2)
	assert.Equal(t, sy.scheduled[0].snapshot[0], sy.scheduled[1].snapshot[0])
}

func TestItineraryModel_List_Sorting(t *testing.T) {
	im, _, _, _ := newTestItineraryModel()
	ctx := context.Background()

	_, err := im.Create(ctx, "alice", &types.TripCreate{
		Title: "Osaka", City: "Osaka", StartDate: "2026-05-01", EndDate: "2026-05-02",
	})
	require.NoError(t, err)
	_, err = im.Create(ctx, "alice", &types.TripCreate{
		Title: "Tokyo", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-02",
	})
	require.NoError(t, err)

	byDate, err := im.List(ctx, "alice", "date")
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, "Tokyo", byDate[0].Title)

	byCity, err := im.List(ctx, "alice", "destination")
	require.NoError(t, err)
	assert.Equal(t, "Osaka", byCity[0].Title)
}

func TestItineraryModel_List_ServesCacheWhenDatabaseFails(t *testing.T) {
	im, st, _, ca := newTestItineraryModel()
	ctx := context.Background()

	ca.snapshots["alice"] = []types.Itinerary{{ID: "it-1", Title: "Cached Trip"}}
	st.listErr = assert.AnError

	got, err := im.List(ctx, "alice", "date")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cached Trip", got[0].Title)
}

func TestItineraryModel_List_ErrorsWhenBothSidesEmpty(t *testing.T) {
	im, st, _, _ := newTestItineraryModel()
	st.listErr = assert.AnError

	_, err := im.List(context.Background(), "alice", "date")
	assert.Error(t, err)
}

func TestItineraryModel_UpdateTrip_ReconcilesDays(t *testing.T) {
	im, _, _, _ := newTestItineraryModel()
	ctx := context.Background()

	it, err := im.Create(ctx, "alice", &types.TripCreate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-02",
	})
	require.NoError(t, err)

	updated, err := im.UpdateTrip(ctx, "alice", it.ID, &types.TripUpdate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-05",
	})
	require.NoError(t, err)
	require.Len(t, updated.DailyItinerary, 5)
	assert.Equal(t, 5, updated.TripSummary.TotalDays)
	assert.Equal(t, "Arrival", updated.DailyItinerary[0].Theme)
	assert.Equal(t, "Free Day", updated.DailyItinerary[4].Theme)
	assert.Equal(t, "2026-04-05", updated.DailyItinerary[4].Date)
}

func TestItineraryModel_Delete(t *testing.T) {
	im, st, _, _ := newTestItineraryModel()
	ctx := context.Background()

	it, err := im.Create(ctx, "alice", &types.TripCreate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-02",
	})
	require.NoError(t, err)

	require.NoError(t, im.Delete(ctx, "alice", it.ID))
	assert.Empty(t, st.docs["alice"])
}

func TestItineraryModel_Delete_FailureIsSurfaced(t *testing.T) {
	im, st, _, _ := newTestItineraryModel()
	ctx := context.Background()

	it, err := im.Create(ctx, "alice", &types.TripCreate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-02",
	})
	require.NoError(t, err)

	st.deleteErr = assert.AnError
	err = im.Delete(ctx, "alice", it.ID)
	require.Error(t, err)

	// The document survives a failed delete.
	st.deleteErr = nil
	got, err := im.Get(ctx, "alice", it.ID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)
}

func TestItineraryModel_SequentialEditsCompose(t *testing.T) {
	im, _, sy, _ := newTestItineraryModel()
	ctx := context.Background()

	it, err := im.Create(ctx, "alice", &types.TripCreate{
		Title: "Tokyo Trip", City: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-02",
	})
	require.NoError(t, err)

	// Two edits inside one debounce window: the second must see the first
	// even though nothing has been written to the database yet.
	_, err = im.AddPackingItem(ctx, "alice", it.ID, &types.PackingItemCreate{Name: "充電器"})
	require.NoError(t, err)
	updated, err := im.AddPackingItem(ctx, "alice", it.ID, &types.PackingItemCreate{Name: "護照"})
	require.NoError(t, err)

	assert.Len(t, updated.PackingList, 2)
	assert.Len(t, sy.last()[0].PackingList, 2)
}
