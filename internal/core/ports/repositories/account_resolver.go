package repositories

import (
	"context"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
)

// AccountResolver maps chart-of-accounts codes and bank account identifiers
// to concrete ledger account ids within a tenant. It is consumed by journal
// rules and must fail with apperrors.ErrAccountNotResolved when the tenant
// has no matching account configured; the engine never silently defaults.
//
// Implementations may cache or hit storage, but must be side-effect free
// from the engine's point of view.
type AccountResolver interface {
	// GetAccountID returns the ledger account id for a symbolic code.
	GetAccountID(ctx context.Context, tenantID string, code domain.AccountCode) (string, error)

	// GetAccountByCode returns the full account record for a symbolic code.
	GetAccountByCode(ctx context.Context, tenantID string, code domain.AccountCode) (*domain.LedgerAccount, error)

	// GetBankAccountID returns the ledger account id backing a bank account.
	GetBankAccountID(ctx context.Context, tenantID string, bankAccountID string) (string, error)
}
