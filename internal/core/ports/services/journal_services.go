package services

import (
	"context"
	"time"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// JournalEngineSvc is the rule engine surface: it turns business events into
// balanced, invariant-checked journal entries. It holds no reference to the
// returned entry; ownership passes to the caller.
type JournalEngineSvc interface {
	// ProcessEvent dispatches the event to its registered rule and returns
	// the constructed entry. Fails with apperrors.ErrRuleNotFound when no
	// rule is installed for the event type, and propagates resolver
	// failures without returning a partial entry.
	ProcessEvent(ctx context.Context, event domain.BusinessEvent, payload domain.EventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error)

	// RegisteredEvents returns all event types with an installed rule.
	RegisteredEvents() []domain.BusinessEvent
}

// JournalPostingSvc is the shell around the engine: process an event,
// persist the resulting entry, and read or reverse persisted entries.
type JournalPostingSvc interface {
	PostEvent(ctx context.Context, event domain.BusinessEvent, payload domain.EventPayload) (*domain.JournalEntry, error)
	GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, tenantID, branchID string, limit, offset int) ([]domain.JournalEntry, error)
	ReverseEntry(ctx context.Context, tenantID, entryID, actorID string, entryDate time.Time) (*domain.JournalEntry, error)
}
