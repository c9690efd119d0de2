package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"parish-liturgy-backend/internal/liturgy"
	"parish-liturgy-backend/internal/service"
	"parish-liturgy-backend/pkg/utils"
)

const maxLiturgyPayload = 1 << 20

type LiturgyHandler struct {
	liturgy service.LiturgyUseCase
}

func NewLiturgyHandler(liturgy service.LiturgyUseCase) *LiturgyHandler {
	return &LiturgyHandler{liturgy: liturgy}
}

func (h *LiturgyHandler) Templates(c *gin.Context) {
	module := c.Param("module")

	templates, err := h.liturgy.Templates(module)
	if err != nil {
		respondError(c, err, "Failed to list templates", map[string]interface{}{"module": module})
		return
	}

	c.JSON(http.StatusOK, gin.H{"module": module, "templates": templates})
}

// Build renders a liturgy document from a JSON view of the module's record.
// POST /api/v1/liturgy/:module?template=<id>&format=json|html|txt
func (h *LiturgyHandler) Build(c *gin.Context) {
	module := c.Param("module")

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLiturgyPayload))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read request body"})
		return
	}

	doc, err := h.liturgy.Build(module, c.Query("template"), payload)
	if err != nil {
		respondError(c, err, "Failed to build liturgy document", map[string]interface{}{"module": module})
		return
	}

	h.write(c, doc)
}

// EventDocument renders the simple event script of a stored event.
// GET /api/v1/events/:id/liturgy
func (h *LiturgyHandler) EventDocument(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.liturgy.EventDocument(id, c.Query("template"))
	if err != nil {
		respondError(c, err, "Failed to build event document", map[string]interface{}{"event_id": id})
		return
	}

	h.write(c, doc)
}

func (h *LiturgyHandler) write(c *gin.Context, doc *liturgy.Document) {
	switch strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "json"))) {
	case "json":
		c.JSON(http.StatusOK, gin.H{"document": doc})
	case "html":
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.liturgy.RenderHTML(doc)))
	case "txt", "text":
		filename := utils.DocumentFilename("txt", doc.Title, doc.Subtitle)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.liturgy.RenderText(doc)))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json, html or txt"})
	}
}
