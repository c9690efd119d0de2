package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/service"
)

type FieldHandler struct {
	fields service.FieldDefinitionUseCase
}

func NewFieldHandler(fields service.FieldDefinitionUseCase) *FieldHandler {
	return &FieldHandler{fields: fields}
}

// List returns the field definitions of an event type in display order.
// GET /api/v1/event-types/:id/fields
func (h *FieldHandler) List(c *gin.Context) {
	eventTypeID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	definitions, err := h.fields.List(eventTypeID)
	if err != nil {
		respondError(c, err, "Failed to load field definitions", map[string]interface{}{"event_type_id": eventTypeID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fields": definitions})
}

func (h *FieldHandler) Create(c *gin.Context) {
	eventTypeID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	definition, err := h.fields.Create(eventTypeID, req)
	if err != nil {
		respondError(c, err, "Failed to create field definition", map[string]interface{}{"event_type_id": eventTypeID})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"field": definition})
}

func (h *FieldHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	definition, err := h.fields.Update(id, req)
	if err != nil {
		respondError(c, err, "Failed to update field definition", map[string]interface{}{"id": id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"field": definition})
}

func (h *FieldHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.fields.Delete(id); err != nil {
		respondError(c, err, "Failed to delete field definition", map[string]interface{}{"id": id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Field definition deleted"})
}
