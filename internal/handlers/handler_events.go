package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	portssvc "github.com/atlastrek/travel_ops_app/internal/core/ports/services"
	"github.com/atlastrek/travel_ops_app/internal/dto"
	"github.com/atlastrek/travel_ops_app/internal/middleware"
)

// eventHandler handles HTTP requests that post business events into the
// journal engine.
type eventHandler struct {
	postingSvc portssvc.JournalPostingSvc
}

func newEventHandler(postingSvc portssvc.JournalPostingSvc) *eventHandler {
	return &eventHandler{postingSvc: postingSvc}
}

// processEvent godoc
// @Summary Post a business event
// @Description Dispatches a business event to its journal rule and persists the resulting balanced entry
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.ProcessEventRequest true "Event type and payload"
// @Success 201 {object} dto.JournalEntryResponse "The posted journal entry"
// @Failure 400 {object} map[string]string "Invalid request or payload"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "No rule registered or account not configured"
// @Failure 500 {object} map[string]string "Rule produced an invalid entry"
// @Router /events [post]
func (h *eventHandler) processEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.ProcessEventRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind event request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payload, err := req.DecodePayload(tenantID, actorID)
	if err != nil {
		logger.Warn("Failed to decode event payload", slog.String("event", string(req.EventType)), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.postingSvc.PostEvent(c.Request.Context(), req.EventType, payload)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRuleNotFound):
			logger.Warn("No rule for event", slog.String("event", string(req.EventType)))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAccountNotResolved):
			logger.Warn("Account not resolved", slog.String("event", string(req.EventType)), slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrPayloadMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnbalancedEntry):
			// Rule bug: alert-worthy, never retryable.
			logger.Error("Rule produced unbalanced entry", slog.String("event", string(req.EventType)), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Journal rule produced an invalid entry"})
		default:
			logger.Error("Failed to post event", slog.String("event", string(req.EventType)), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post event"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
