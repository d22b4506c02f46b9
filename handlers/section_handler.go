package handlers

import (
	"net/http"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/middleware"
	"github.com/VoyageGenie/voyage-backend/models"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/gin-gonic/gin"
)

// SectionHandler exposes the per-section editors: daily activities, packing
// list, transports, concerts, and shopping list. Every operation returns
// the updated full document so the client can swap its state wholesale.
type SectionHandler struct {
	itineraryModel *models.ItineraryModel
}

func NewSectionHandler(itineraryModel *models.ItineraryModel) *SectionHandler {
	return &SectionHandler{itineraryModel: itineraryModel}
}

func (h *SectionHandler) AddActivity(c *gin.Context) {
	var req types.ActivityCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.AddActivity(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("dayID"), &req)
	h.respond(c, http.StatusCreated, it, err)
}

func (h *SectionHandler) UpdateActivity(c *gin.Context) {
	var req types.ActivityCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.UpdateActivity(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("dayID"), c.Param("activityID"), &req)
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) DeleteActivity(c *gin.Context) {
	it, err := h.itineraryModel.DeleteActivity(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("dayID"), c.Param("activityID"))
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) CopyActivity(c *gin.Context) {
	it, err := h.itineraryModel.CopyActivity(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("dayID"), c.Param("activityID"))
	h.respond(c, http.StatusCreated, it, err)
}

func (h *SectionHandler) MoveActivity(c *gin.Context) {
	var req types.ActivityMove
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.MoveActivity(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("dayID"), c.Param("activityID"), req.TargetDay)
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) AddPackingItem(c *gin.Context) {
	var req types.PackingItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.AddPackingItem(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), &req)
	h.respond(c, http.StatusCreated, it, err)
}

func (h *SectionHandler) TogglePackingItem(c *gin.Context) {
	it, err := h.itineraryModel.TogglePackingItem(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("itemID"))
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) DeletePackingItem(c *gin.Context) {
	it, err := h.itineraryModel.DeletePackingItem(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("itemID"))
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) AddTransport(c *gin.Context) {
	var req types.TransportInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.AddTransport(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), &req)
	h.respond(c, http.StatusCreated, it, err)
}

func (h *SectionHandler) UpdateTransport(c *gin.Context) {
	var req types.TransportInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.UpdateTransport(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("transportID"), &req)
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) DeleteTransport(c *gin.Context) {
	it, err := h.itineraryModel.DeleteTransport(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("transportID"))
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) AddConcert(c *gin.Context) {
	var req types.ConcertCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.AddConcert(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), &req)
	h.respond(c, http.StatusCreated, it, err)
}

func (h *SectionHandler) UpdateConcert(c *gin.Context) {
	var req types.ConcertCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.UpdateConcert(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("concertID"), &req)
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) ToggleConcertChecklistItem(c *gin.Context) {
	it, err := h.itineraryModel.ToggleConcertChecklistItem(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("concertID"), c.Param("itemID"))
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) DeleteConcert(c *gin.Context) {
	it, err := h.itineraryModel.DeleteConcert(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("concertID"))
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) AddShoppingItem(c *gin.Context) {
	var req types.ShoppingItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.AddShoppingItem(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), &req)
	h.respond(c, http.StatusCreated, it, err)
}

func (h *SectionHandler) UpdateShoppingItem(c *gin.Context) {
	var req types.ShoppingItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	it, err := h.itineraryModel.UpdateShoppingItem(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("itemID"), &req)
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) ToggleShoppingItem(c *gin.Context) {
	it, err := h.itineraryModel.ToggleShoppingItem(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("itemID"))
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) DeleteShoppingItem(c *gin.Context) {
	it, err := h.itineraryModel.DeleteShoppingItem(c.Request.Context(),
		middleware.GetUserID(c), c.Param("id"), c.Param("itemID"))
	h.respond(c, http.StatusOK, it, err)
}

func (h *SectionHandler) respond(c *gin.Context, status int, it *types.Itinerary, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(status, it)
}
