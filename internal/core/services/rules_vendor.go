package services

import (
	"context"
	"fmt"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// vendorRules covers the vendor lifecycle. Statutory TDS withheld from a
// vendor never disappears into the payable: it fans out into its own
// payable leg and the vendor payable is reduced by it.
func vendorRules() []JournalRule {
	return []JournalRule{
		NewRule(domain.VendorServiceReceived, applyVendorServiceReceived),
		NewRule(domain.VendorAdvancePaid, applyVendorAdvancePaid),
		NewRule(domain.VendorPaymentMade, applyVendorPaymentMade),
	}
}

// applyVendorServiceReceived books the expense and GST input as debits, and
// splits the credit side between TDS payable and the vendor payable net of
// TDS. Tax and TDS lines appear only when non-zero.
func applyVendorServiceReceived(ctx context.Context, p domain.VendorEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	expenseID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeVendorServicesExpense)
	if err != nil {
		return nil, err
	}
	payablesID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeVendorPayables)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{VendorID: p.VendorID, BranchID: p.BranchID}
	lines := []domain.JournalLine{
		domain.DebitLine(expenseID, fmt.Sprintf("Services received from vendor %s", p.VendorID), p.Amount, dims),
	}
	if p.TaxAmount.IsPositive() {
		gstInputID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGSTInput)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.DebitLine(gstInputID, fmt.Sprintf("GST input on vendor %s invoice", p.VendorID), p.TaxAmount, dims))
	}
	if p.TDSAmount.IsPositive() {
		tdsID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeTDSPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(tdsID, fmt.Sprintf("TDS withheld from vendor %s", p.VendorID), p.TDSAmount, dims))
	}
	lines = append(lines, domain.CreditLine(payablesID, fmt.Sprintf("Payable to vendor %s", p.VendorID), p.TotalAmount.Sub(p.TDSAmount), dims))

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleVendors, p.VendorID, "VENDOR", fmt.Sprintf("Service received from vendor %s", p.VendorID)),
		lines,
	)
}

func applyVendorAdvancePaid(ctx context.Context, p domain.VendorEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	advancesID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeVendorAdvances)
	if err != nil {
		return nil, err
	}
	bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{VendorID: p.VendorID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleVendors, p.VendorID, "VENDOR", fmt.Sprintf("Advance paid to vendor %s", p.VendorID)),
		[]domain.JournalLine{
			domain.DebitLine(advancesID, fmt.Sprintf("Advance to vendor %s", p.VendorID), p.Amount, dims),
			domain.CreditLine(bankID, fmt.Sprintf("Bank payment to vendor %s", p.VendorID), p.Amount, dims),
		},
	)
}

// applyVendorPaymentMade settles the vendor payable, first out of any
// advance previously paid, the remainder from bank. The bank leg is omitted
// when the advance covers the whole payable.
func applyVendorPaymentMade(ctx context.Context, p domain.VendorEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	payablesID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeVendorPayables)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{VendorID: p.VendorID, BranchID: p.BranchID}
	lines := []domain.JournalLine{
		domain.DebitLine(payablesID, fmt.Sprintf("Payable settled for vendor %s", p.VendorID), p.Amount, dims),
	}
	if p.AdvanceApplied.IsPositive() {
		advancesID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeVendorAdvances)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(advancesID, fmt.Sprintf("Advance applied for vendor %s", p.VendorID), p.AdvanceApplied, dims))
	}
	if remainder := p.Amount.Sub(p.AdvanceApplied); remainder.IsPositive() {
		bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(bankID, fmt.Sprintf("Bank payment to vendor %s", p.VendorID), remainder, dims))
	}

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleVendors, p.VendorID, "VENDOR", fmt.Sprintf("Payment made to vendor %s", p.VendorID)),
		lines,
	)
}
