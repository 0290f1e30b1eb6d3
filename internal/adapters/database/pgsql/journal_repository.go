package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// PgxJournalRepository persists journal entries and their lines.
type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// NewPgxJournalRepository creates a new repository for journal entry data.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{pool: pool}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveEntry persists an entry and all its lines within a DB transaction.
// The entry's invariants are rechecked before anything is written.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	entryQuery := `
		INSERT INTO journal_entries (entry_id, tenant_id, branch_id, entry_date, description, entry_type, source_module, source_record_id, source_record_type, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.TenantID,
		entry.BranchID,
		entry.EntryDate,
		entry.Description,
		entry.EntryType,
		entry.SourceModule,
		entry.SourceRecordID,
		entry.SourceRecordType,
		entry.CreatedBy,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (entry_id, line_number, account_id, description, debit, credit, customer_id, vendor_id, employee_id, booking_id, trip_id, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, line := range entry.Lines {
		batch.Queue(lineQuery,
			entry.EntryID,
			line.LineNumber,
			line.AccountID,
			line.Description,
			line.Debit,
			line.Credit,
			line.Dimensions.CustomerID,
			line.Dimensions.VendorID,
			line.Dimensions.EmployeeID,
			line.Dimensions.BookingID,
			line.Dimensions.TripID,
			line.Dimensions.BranchID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range entry.Lines {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert journal line for entry %s: %w", entry.EntryID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close line batch for entry %s: %w", entry.EntryID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a journal entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry := domain.JournalEntry{}
	err := r.pool.QueryRow(ctx, `
		SELECT entry_id, tenant_id, branch_id, entry_date, description, entry_type, source_module, source_record_id, source_record_type, created_by, created_at
		FROM journal_entries
		WHERE tenant_id = $1 AND entry_id = $2
	`, tenantID, entryID).Scan(
		&entry.EntryID,
		&entry.TenantID,
		&entry.BranchID,
		&entry.EntryDate,
		&entry.Description,
		&entry.EntryType,
		&entry.SourceModule,
		&entry.SourceRecordID,
		&entry.SourceRecordType,
		&entry.CreatedBy,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch journal entry %s: %w", entryID, err)
	}

	lines, err := r.findLines(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID]
	return &entry, nil
}

// ListEntriesByTenant retrieves entries newest first, optionally filtered to
// one branch.
func (r *PgxJournalRepository) ListEntriesByTenant(ctx context.Context, tenantID, branchID string, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, tenant_id, branch_id, entry_date, description, entry_type, source_module, source_record_id, source_record_type, created_by, created_at
		FROM journal_entries
		WHERE tenant_id = $1 AND ($2 = '' OR branch_id = $2)
		ORDER BY created_at DESC, entry_id
		LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, tenantID, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	var entryIDs []string
	for rows.Next() {
		entry := domain.JournalEntry{}
		if err := rows.Scan(
			&entry.EntryID,
			&entry.TenantID,
			&entry.BranchID,
			&entry.EntryDate,
			&entry.Description,
			&entry.EntryType,
			&entry.SourceModule,
			&entry.SourceRecordID,
			&entry.SourceRecordType,
			&entry.CreatedBy,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, entry)
		entryIDs = append(entryIDs, entry.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entries: %w", err)
	}
	if len(entries) == 0 {
		return entries, nil
	}

	lines, err := r.findLines(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].EntryID]
	}
	return entries, nil
}

// findLines loads lines for the given entries, grouped by entry id and
// ordered by line number.
func (r *PgxJournalRepository) findLines(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT entry_id, line_number, account_id, description, debit, credit, customer_id, vendor_id, employee_id, booking_id, trip_id, branch_id
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_number
	`, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal lines: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var entryID string
		line := domain.JournalLine{}
		if err := rows.Scan(
			&entryID,
			&line.LineNumber,
			&line.AccountID,
			&line.Description,
			&line.Debit,
			&line.Credit,
			&line.Dimensions.CustomerID,
			&line.Dimensions.VendorID,
			&line.Dimensions.EmployeeID,
			&line.Dimensions.BookingID,
			&line.Dimensions.TripID,
			&line.Dimensions.BranchID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		result[entryID] = append(result[entryID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal lines: %w", err)
	}
	return result, nil
}
