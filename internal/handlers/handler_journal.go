package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	portssvc "github.com/atlastrek/travel_ops_app/internal/core/ports/services"
	"github.com/atlastrek/travel_ops_app/internal/dto"
	"github.com/atlastrek/travel_ops_app/internal/middleware"
)

// journalHandler handles HTTP requests over persisted journal entries.
type journalHandler struct {
	postingSvc portssvc.JournalPostingSvc
}

func newJournalHandler(postingSvc portssvc.JournalPostingSvc) *journalHandler {
	return &journalHandler{postingSvc: postingSvc}
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry and its lines by id
// @Tags journals
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journals/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.postingSvc.GetEntry(c.Request.Context(), tenantID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
			return
		}
		logger.Error("Failed to get journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists the tenant's journal entries, newest first
// @Tags journals
// @Produce  json
// @Param   branchID query string false "Filter by branch"
// @Param   limit query int false "Page size (max 100)"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Router /journals [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	branchID := c.Query("branchID")

	entries, err := h.postingSvc.ListEntries(c.Request.Context(), tenantID, branchID, limit, offset)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{
		Entries: dto.ToJournalEntryResponses(entries),
		Limit:   limit,
		Offset:  offset,
	})
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Posts a reversing entry for an existing entry; the original is never mutated
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   body body dto.ReverseEntryRequest false "Optional reversal posting date"
// @Success 201 {object} dto.JournalEntryResponse "The reversing entry"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /journals/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.ReverseEntryRequest{}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, http.ErrBodyReadAfterClose) {
		// An empty body is fine; a malformed one is not.
		if c.Request.ContentLength > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}
	entryDate := time.Now().UTC()
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	reversal, err := h.postingSvc.ReverseEntry(c.Request.Context(), tenantID, entryID, actorID, entryDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
			return
		}
		logger.Error("Failed to reverse journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse journal entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}
