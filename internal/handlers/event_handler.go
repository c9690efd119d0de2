package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parish-liturgy-backend/internal/middleware"
	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/service"
)

type EventHandler struct {
	events service.EventUseCase
}

func NewEventHandler(events service.EventUseCase) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Language == "" {
		req.Language = c.GetString(middleware.LanguageContextKey)
	}

	event, err := h.events.Create(req)
	if err != nil {
		respondError(c, err, "Failed to create event", map[string]interface{}{"event_type_id": req.EventTypeID})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	event, err := h.events.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to load event", map[string]interface{}{"id": id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// UpdateFields merges field values into the event. A null value removes the
// key.
// PUT /api/v1/events/:id/fields
func (h *EventHandler) UpdateFields(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateFieldValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.events.UpdateFieldValues(id, req)
	if err != nil {
		respondError(c, err, "Failed to update event fields", map[string]interface{}{"id": id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}
