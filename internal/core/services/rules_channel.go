package services

import (
	"context"
	"fmt"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// channelRules covers postings driven by external channels: OTA settlement
// and inter-branch money movement.
func channelRules() []JournalRule {
	return []JournalRule{
		NewRule(domain.OTACommissionDeducted, applyOTACommissionDeducted),
		NewRule(domain.InterBranchTransfer, applyInterBranchTransfer),
	}
}

// applyOTACommissionDeducted books an OTA settlement: the agency remits net
// of its commission, so the commission becomes an expense debit and the bank
// debit is the remittance, while the receivable is cleared at gross.
func applyOTACommissionDeducted(ctx context.Context, p domain.CommissionEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
	if err != nil {
		return nil, err
	}
	commissionID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeOTACommission)
	if err != nil {
		return nil, err
	}
	receivableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeAccountsReceivable)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{CustomerID: p.CustomerID, BookingID: p.BookingID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModulePayments, p.BookingID, "OTA_SETTLEMENT", fmt.Sprintf("%s settlement for booking %s", p.OTAName, p.BookingID)),
		[]domain.JournalLine{
			domain.DebitLine(bankID, fmt.Sprintf("Net remittance from %s", p.OTAName), p.GrossAmount.Sub(p.CommissionAmount), dims),
			domain.DebitLine(commissionID, fmt.Sprintf("%s commission", p.OTAName), p.CommissionAmount, dims),
			domain.CreditLine(receivableID, fmt.Sprintf("Receivable cleared for booking %s", p.BookingID), p.GrossAmount, dims),
		},
	)
}

// applyInterBranchTransfer posts only the origin branch's leg: inter-branch
// receivable debit against the origin bank credit. The destination branch's
// mirror entry is produced by a separate invocation raised in that branch's
// context; this rule is single-sided on purpose.
func applyInterBranchTransfer(ctx context.Context, p domain.TransferEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	receivableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeInterBranchReceivable)
	if err != nil {
		return nil, err
	}
	bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
	if err != nil {
		return nil, err
	}

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryInterBranch, domain.ModuleTransfers, p.Reference, "TRANSFER", fmt.Sprintf("Transfer from branch %s to branch %s", p.FromBranchID, p.ToBranchID)),
		[]domain.JournalLine{
			domain.DebitLine(receivableID, fmt.Sprintf("Receivable from branch %s", p.ToBranchID), p.Amount, domain.Dimensions{BranchID: p.ToBranchID}),
			domain.CreditLine(bankID, fmt.Sprintf("Bank transfer out of branch %s", p.FromBranchID), p.Amount, domain.Dimensions{BranchID: p.FromBranchID}),
		},
	)
}
