package repositories

import (
	"context"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
)

// JournalReader defines read operations for persisted journal entries.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry with its lines.
	FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByTenant retrieves entries for a tenant, newest first,
	// optionally filtered to one branch. Plain limit/offset paging.
	ListEntriesByTenant(ctx context.Context, tenantID, branchID string, limit, offset int) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for persisted journal entries.
type JournalWriter interface {
	// SaveEntry persists an entry and all its lines atomically. The entry is
	// revalidated before writing; an invariant failure aborts the save.
	SaveEntry(ctx context.Context, entry *domain.JournalEntry) error
}

// JournalRepository combines journal persistence operations.
type JournalRepository interface {
	JournalReader
	JournalWriter
}
