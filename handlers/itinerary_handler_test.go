package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VoyageGenie/voyage-backend/middleware"
	"github.com/VoyageGenie/voyage-backend/models"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itineraryRouter(im *models.ItineraryModel) *gin.Engine {
	h := NewItineraryHandler(im)
	s := NewSectionHandler(im)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1 := r.Group("/v1/itineraries", authenticatedAs("alice"))
	{
		v1.GET("", h.List)
		v1.POST("", h.Create)
		v1.GET("/:id", h.Get)
		v1.PUT("/:id", h.Replace)
		v1.PATCH("/:id/trip", h.UpdateTrip)
		v1.DELETE("/:id", h.Delete)
		v1.GET("/:id/expenses", h.Expenses)

		v1.POST("/:id/days/:dayID/activities", s.AddActivity)
		v1.POST("/:id/packing", s.AddPackingItem)
		v1.PATCH("/:id/packing/:itemID/toggle", s.TogglePackingItem)
		v1.POST("/:id/shopping", s.AddShoppingItem)
		v1.PATCH("/:id/shopping/:itemID/toggle", s.ToggleShoppingItem)
		v1.POST("/:id/concerts", s.AddConcert)
	}
	return r
}

const tripBody = `{
	"title": "Tokyo Trip",
	"city": "Tokyo",
	"startDate": "2026-04-01",
	"endDate": "2026-04-03",
	"vibe": ["city pop"]
}`

func createTrip(t *testing.T, r *gin.Engine) types.Itinerary {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/itineraries", tripBody))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var it types.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &it))
	return it
}

func TestItineraryHandler_CreateAndGet(t *testing.T) {
	r := itineraryRouter(newTestItineraryModel())
	it := createTrip(t, r)

	assert.Len(t, it.DailyItinerary, 3)
	assert.Equal(t, "Arrival", it.DailyItinerary[0].Theme)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/itineraries/"+it.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tokyo Trip")
}

func TestItineraryHandler_CreateRejectsReversedDates(t *testing.T) {
	r := itineraryRouter(newTestItineraryModel())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/itineraries",
		`{"title": "t", "city": "c", "startDate": "2026-04-05", "endDate": "2026-04-01"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItineraryHandler_GetUnknownID(t *testing.T) {
	r := itineraryRouter(newTestItineraryModel())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/itineraries/ghost", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItineraryHandler_UpdateTripReconciles(t *testing.T) {
	r := itineraryRouter(newTestItineraryModel())
	it := createTrip(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/v1/itineraries/"+it.ID+"/trip",
		`{"title": "Tokyo Trip", "city": "Tokyo", "startDate": "2026-04-01", "endDate": "2026-04-05"}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated types.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Len(t, updated.DailyItinerary, 5)
	assert.Equal(t, "Free Day", updated.DailyItinerary[4].Theme)
}

func TestItineraryHandler_Delete(t *testing.T) {
	r := itineraryRouter(newTestItineraryModel())
	it := createTrip(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/itineraries/"+it.ID, nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/itineraries/"+it.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItineraryHandler_ListSorted(t *testing.T) {
	im := newTestItineraryModel()
	r := itineraryRouter(im)
	createTrip(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/itineraries",
		`{"title": "Osaka Trip", "city": "Osaka", "startDate": "2026-03-01", "endDate": "2026-03-02"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/itineraries?sortBy=date", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list []types.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Osaka Trip", list[0].Title)
}

func TestItineraryHandler_SectionEditAndExpenses(t *testing.T) {
	r := itineraryRouter(newTestItineraryModel())
	it := createTrip(t, r)

	// Add a checked-off shopping purchase via the section endpoints.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/itineraries/"+it.ID+"/shopping",
		`{"name": "御守", "price": 1400, "currency": "TWD", "quantity": 2, "priority": "重要必買"}`))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var updated types.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	itemID := updated.ShoppingList[0].ID

	// Unchecked: nothing counted yet.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/itineraries/"+it.ID+"/expenses", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var summary types.ExpenseSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Zero(t, summary.Totals[types.CurrencyTWD])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/v1/itineraries/"+it.ID+"/shopping/"+itemID+"/toggle", ""))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/itineraries/"+it.ID+"/expenses", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 2800.0, summary.Totals[types.CurrencyTWD])
}

func TestSectionHandler_AddActivity(t *testing.T) {
	r := itineraryRouter(newTestItineraryModel())
	it := createTrip(t, r)
	dayID := it.DailyItinerary[0].ID

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost,
		"/v1/itineraries/"+it.ID+"/days/"+dayID+"/activities",
		`{"location": "Shibuya Crossing", "time_slot": "早上"}`))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var updated types.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Len(t, updated.DailyItinerary[0].Activities, 1)
	assert.Contains(t, updated.DailyItinerary[0].Activities[0].MapURL, "Shibuya+Crossing")
}

func TestSectionHandler_AddConcertGetsDefaultChecklist(t *testing.T) {
	r := itineraryRouter(newTestItineraryModel())
	it := createTrip(t, r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/itineraries/"+it.ID+"/concerts",
		`{"artist": "IU", "venue": "Tokyo Dome", "date": "2026-04-02", "ticketCost": 12000, "currency": "JPY"}`))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var updated types.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Len(t, updated.Concerts, 1)
	assert.Len(t, updated.Concerts[0].Checklist, 4)
}
