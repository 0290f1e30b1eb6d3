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

// PgxAccountResolver resolves chart-of-accounts codes and bank accounts to
// concrete ledger account ids from the tenant's chart.
type PgxAccountResolver struct {
	pool *pgxpool.Pool
}

// NewPgxAccountResolver creates a resolver backed by the chart_of_accounts
// and bank_accounts tables.
func NewPgxAccountResolver(pool *pgxpool.Pool) portsrepo.AccountResolver {
	return &PgxAccountResolver{pool: pool}
}

var _ portsrepo.AccountResolver = (*PgxAccountResolver)(nil)

func (r *PgxAccountResolver) GetAccountID(ctx context.Context, tenantID string, code domain.AccountCode) (string, error) {
	var accountID string
	err := r.pool.QueryRow(ctx, `
		SELECT account_id
		FROM chart_of_accounts
		WHERE tenant_id = $1 AND code = $2 AND is_active
	`, tenantID, string(code)).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &apperrors.AccountNotResolvedError{TenantID: tenantID, Code: string(code)}
		}
		return "", fmt.Errorf("failed to resolve account code %q for tenant %s: %w", code, tenantID, err)
	}
	return accountID, nil
}

func (r *PgxAccountResolver) GetAccountByCode(ctx context.Context, tenantID string, code domain.AccountCode) (*domain.LedgerAccount, error) {
	account := domain.LedgerAccount{}
	err := r.pool.QueryRow(ctx, `
		SELECT account_id, tenant_id, code, name, account_type, is_active
		FROM chart_of_accounts
		WHERE tenant_id = $1 AND code = $2 AND is_active
	`, tenantID, string(code)).Scan(
		&account.AccountID,
		&account.TenantID,
		&account.Code,
		&account.Name,
		&account.AccountType,
		&account.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &apperrors.AccountNotResolvedError{TenantID: tenantID, Code: string(code)}
		}
		return nil, fmt.Errorf("failed to fetch account %q for tenant %s: %w", code, tenantID, err)
	}
	return &account, nil
}

func (r *PgxAccountResolver) GetBankAccountID(ctx context.Context, tenantID string, bankAccountID string) (string, error) {
	var accountID string
	err := r.pool.QueryRow(ctx, `
		SELECT ledger_account_id
		FROM bank_accounts
		WHERE tenant_id = $1 AND bank_account_id = $2 AND is_active
	`, tenantID, bankAccountID).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &apperrors.AccountNotResolvedError{TenantID: tenantID, Code: bankAccountID}
		}
		return "", fmt.Errorf("failed to resolve bank account %s for tenant %s: %w", bankAccountID, tenantID, err)
	}
	return accountID, nil
}
