package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
	portssvc "github.com/atlastrek/travel_ops_app/internal/core/ports/services"
	"github.com/atlastrek/travel_ops_app/internal/middleware"
)

// journalPostingService glues the engine to persistence: process the event,
// save the resulting entry, hand it back. Idempotency and event ordering are
// the caller's responsibility; this layer performs no retries.
type journalPostingService struct {
	engine   portssvc.JournalEngineSvc
	repo     portsrepo.JournalRepository
	resolver portsrepo.AccountResolver
}

// NewJournalPostingService creates the posting service around an engine, a
// journal repository and the tenant account resolver.
func NewJournalPostingService(engine portssvc.JournalEngineSvc, repo portsrepo.JournalRepository, resolver portsrepo.AccountResolver) portssvc.JournalPostingSvc {
	return &journalPostingService{
		engine:   engine,
		repo:     repo,
		resolver: resolver,
	}
}

var _ portssvc.JournalPostingSvc = (*journalPostingService)(nil)

func (s *journalPostingService) PostEvent(ctx context.Context, event domain.BusinessEvent, payload domain.EventPayload) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.engine.ProcessEvent(ctx, event, payload, s.resolver)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnbalancedEntry) {
			// A rule bug, not bad input. Surface loudly.
			logger.Error("Journal rule produced an unbalanced entry",
				slog.String("event", string(event)),
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	if err := s.repo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info("Journal entry posted",
		slog.String("event", string(event)),
		slog.String("entry_id", entry.EntryID),
		slog.Int("lines", len(entry.Lines)))
	return entry, nil
}

func (s *journalPostingService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return s.repo.FindEntryByID(ctx, tenantID, entryID)
}

func (s *journalPostingService) ListEntries(ctx context.Context, tenantID, branchID string, limit, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListEntriesByTenant(ctx, tenantID, branchID, limit, offset)
}

// ReverseEntry posts the reversing entry for an existing one. The original
// entry is never mutated.
func (s *journalPostingService) ReverseEntry(ctx context.Context, tenantID, entryID, actorID string, entryDate time.Time) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.repo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}

	reversal, err := original.Reverse(actorID, entryDate)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveEntry(ctx, reversal); err != nil {
		return nil, err
	}

	logger.Info("Journal entry reversed",
		slog.String("original_entry_id", entryID),
		slog.String("reversal_entry_id", reversal.EntryID))
	return reversal, nil
}
