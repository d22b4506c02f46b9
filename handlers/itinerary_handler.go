package handlers

import (
	"net/http"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/middleware"
	"github.com/VoyageGenie/voyage-backend/models"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/gin-gonic/gin"
)

// ItineraryHandler exposes itinerary CRUD and the derived expense view.
type ItineraryHandler struct {
	itineraryModel *models.ItineraryModel
}

func NewItineraryHandler(itineraryModel *models.ItineraryModel) *ItineraryHandler {
	return &ItineraryHandler{itineraryModel: itineraryModel}
}

func (h *ItineraryHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	sortBy := c.DefaultQuery("sortBy", "date")

	itineraries, err := h.itineraryModel.List(c.Request.Context(), userID, sortBy)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, itineraries)
}

func (h *ItineraryHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req types.TripCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.Create(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, it)
}

func (h *ItineraryHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)

	it, err := h.itineraryModel.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, it)
}

// Replace accepts a full document and swaps it in wholesale. The path id
// wins over any id in the body.
func (h *ItineraryHandler) Replace(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var it types.Itinerary
	if err := c.ShouldBindJSON(&it); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	it.ID = c.Param("id")

	if err := h.itineraryModel.Replace(c.Request.Context(), userID, &it); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, it)
}

// UpdateTrip edits the headline trip data, reconciling daily plans when the
// date range changes.
func (h *ItineraryHandler) UpdateTrip(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req types.TripUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.UpdateTrip(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, it)
}

func (h *ItineraryHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.itineraryModel.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Expenses returns the derived per-currency expense summary.
func (h *ItineraryHandler) Expenses(c *gin.Context) {
	userID := middleware.GetUserID(c)

	it, err := h.itineraryModel.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	summary, err := models.ComputeExpenseSummary(it)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
