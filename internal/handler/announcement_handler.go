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

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Create godoc
// POST /announcements
// Admin only; ownership is taken from the verified token, never the body.
func (h *AnnouncementHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateAnnouncementRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), claims.UserID, claims.Username, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// List godoc
// GET /announcements
// Public; responds with a bare JSON array, newest first.
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcementService.ListAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// ListByOwner godoc
// GET /announcements/admin/:username
// Public; an unknown owner yields an empty array.
func (h *AnnouncementHandler) ListByOwner(c *gin.Context) {
	announcements, err := h.announcementService.ListByOwner(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, announcements)
}
