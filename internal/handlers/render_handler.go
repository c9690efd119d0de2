package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parish-liturgy-backend/internal/middleware"
	"parish-liturgy-backend/internal/service"
)

type RenderHandler struct {
	render service.RenderUseCase
}

func NewRenderHandler(render service.RenderUseCase) *RenderHandler {
	return &RenderHandler{render: render}
}

func (h *RenderHandler) ids(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	scriptID, ok := uuidParam(c, "script_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return eventID, scriptID, true
}

// Render returns the processed sections of a script for an event.
// GET /api/v1/events/:id/scripts/:script_id/render
func (h *RenderHandler) Render(c *gin.Context) {
	eventID, scriptID, ok := h.ids(c)
	if !ok {
		return
	}

	rendered, err := h.render.Render(eventID, scriptID)
	if err != nil {
		respondError(c, err, "Failed to render script", map[string]interface{}{"event_id": eventID, "script_id": scriptID})
		return
	}

	c.JSON(http.StatusOK, rendered)
}

func (h *RenderHandler) ExportText(c *gin.Context) {
	h.export(c, h.render.ExportText)
}

func (h *RenderHandler) ExportHTML(c *gin.Context) {
	h.export(c, h.render.ExportHTML)
}

func (h *RenderHandler) export(c *gin.Context, build func(eventID, scriptID uuid.UUID) (*service.Export, error)) {
	eventID, scriptID, ok := h.ids(c)
	if !ok {
		return
	}

	export, err := build(eventID, scriptID)
	if err != nil {
		respondError(c, err, "Failed to export script", map[string]interface{}{"event_id": eventID, "script_id": scriptID})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", export.Filename))
	c.Data(http.StatusOK, export.ContentType, []byte(export.Content))
}

func (h *RenderHandler) Segments(c *gin.Context) {
	eventID, scriptID, ok := h.ids(c)
	if !ok {
		return
	}

	segments, err := h.render.Segments(eventID, scriptID)
	if err != nil {
		respondError(c, err, "Failed to segment script", map[string]interface{}{"event_id": eventID, "script_id": scriptID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sections": segments})
}

// Preview renders unsaved content against the supplied fields.
// POST /api/v1/preview
func (h *RenderHandler) Preview(c *gin.Context) {
	var req service.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Language == "" {
		req.Language = c.GetString(middleware.LanguageContextKey)
	}

	result, err := h.render.Preview(req)
	if err != nil {
		respondError(c, err, "Failed to render preview", nil)
		return
	}

	c.JSON(http.StatusOK, result)
}
