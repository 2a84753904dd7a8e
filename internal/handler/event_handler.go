package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsync/events-backend/internal/middleware"
	"github.com/clubsync/events-backend/internal/model"
	"github.com/clubsync/events-backend/internal/response"
	"github.com/clubsync/events-backend/internal/service"
	"github.com/clubsync/events-backend/internal/validator"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create godoc
// POST /events
// Admin only; ownership is taken from the verified token, never the body.
func (h *EventHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), claims.UserID, claims.Username, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// List godoc
// GET /events
// Public; responds with a bare JSON array.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.ListAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, events)
}

// ListByOwner godoc
// GET /events/admin/:username (also mounted at /events/user/:username)
// Public; an unknown owner yields an empty array.
func (h *EventHandler) ListByOwner(c *gin.Context) {
	events, err := h.eventService.ListByOwner(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, events)
}
