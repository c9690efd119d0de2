package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parish-liturgy-backend/internal/models"
	"parish-liturgy-backend/internal/service"
)

type ScriptHandler struct {
	scripts service.ScriptUseCase
}

func NewScriptHandler(scripts service.ScriptUseCase) *ScriptHandler {
	return &ScriptHandler{scripts: scripts}
}

func (h *ScriptHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	script, err := h.scripts.GetScript(id)
	if err != nil {
		respondError(c, err, "Failed to load script", map[string]interface{}{"id": id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"script": script})
}

// CreateSection appends a section to a script.
// POST /api/v1/scripts/:id/sections
func (h *ScriptHandler) CreateSection(c *gin.Context) {
	scriptID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, err := h.scripts.CreateSection(scriptID, req)
	if err != nil {
		respondError(c, err, "Failed to create section", map[string]interface{}{"script_id": scriptID})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"section": section})
}

func (h *ScriptHandler) UpdateSection(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, err := h.scripts.UpdateSection(id, req)
	if err != nil {
		respondError(c, err, "Failed to update section", map[string]interface{}{"id": id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": section})
}

func (h *ScriptHandler) DeleteSection(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.scripts.DeleteSection(id); err != nil {
		respondError(c, err, "Failed to delete section", map[string]interface{}{"id": id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Section deleted"})
}

// ReorderSections rewrites section order from the full list of section IDs.
// PUT /api/v1/scripts/:id/sections/order
func (h *ScriptHandler) ReorderSections(c *gin.Context) {
	scriptID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script, err := h.scripts.ReorderSections(scriptID, req)
	if err != nil {
		respondError(c, err, "Failed to reorder sections", map[string]interface{}{"script_id": scriptID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"script": script})
}
