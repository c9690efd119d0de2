package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parish-liturgy-backend/internal/service"
	"parish-liturgy-backend/pkg/logger"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrScriptNotFound),
		errors.Is(err, service.ErrSectionNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrEventTypeNotFound),
		errors.Is(err, service.ErrFieldNotFound),
		errors.Is(err, service.ErrUnknownModule):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateProperty):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidFieldType),
		errors.Is(err, service.ErrInvalidPropertyName),
		errors.Is(err, service.ErrInvalidSectionType),
		errors.Is(err, service.ErrInvalidSectionList),
		errors.Is(err, service.ErrInvalidPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status its sentinel maps to. Only server
// errors are logged.
func respondError(c *gin.Context, err error, msg string, fields map[string]interface{}) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(err, msg, fields)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
