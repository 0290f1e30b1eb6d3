package services

import (
	"context"
	"fmt"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// gearRules covers the gear (equipment) asset lifecycle: purchase,
// depreciation, write-off and rental income.
func gearRules() []JournalRule {
	return []JournalRule{
		NewRule(domain.GearPurchased, applyGearPurchased),
		NewRule(domain.GearDepreciated, applyGearDepreciated),
		NewRule(domain.GearWrittenOff, applyGearWrittenOff),
		NewRule(domain.GearRented, applyGearRented),
	}
}

// applyGearPurchased capitalizes the gear. The credit side goes to bank when
// the purchase names a bank account, otherwise to the vendor payable.
func applyGearPurchased(ctx context.Context, p domain.GearEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	assetsID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGearAssets)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{VendorID: p.VendorID, BranchID: p.BranchID}
	lines := []domain.JournalLine{
		domain.DebitLine(assetsID, fmt.Sprintf("Gear %s capitalized", p.GearID), p.Cost, dims),
	}
	if p.TaxAmount.IsPositive() {
		gstInputID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGSTInput)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.DebitLine(gstInputID, fmt.Sprintf("GST input on gear %s", p.GearID), p.TaxAmount, dims))
	}

	total := p.Cost.Add(p.TaxAmount)
	if p.BankAccountID != "" {
		bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(bankID, fmt.Sprintf("Bank payment for gear %s", p.GearID), total, dims))
	} else {
		payablesID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeVendorPayables)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(payablesID, fmt.Sprintf("Payable for gear %s", p.GearID), total, dims))
	}

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleGear, p.GearID, "GEAR", fmt.Sprintf("Gear %s purchased", p.GearID)),
		lines,
	)
}

func applyGearDepreciated(ctx context.Context, p domain.GearEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	depreciationID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGearDepreciation)
	if err != nil {
		return nil, err
	}
	accumulatedID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeAccumulatedDepreciation)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryRecurring, domain.ModuleGear, p.GearID, "GEAR", fmt.Sprintf("Gear %s depreciation", p.GearID)),
		[]domain.JournalLine{
			domain.DebitLine(depreciationID, fmt.Sprintf("Depreciation charge, gear %s", p.GearID), p.Amount, dims),
			domain.CreditLine(accumulatedID, fmt.Sprintf("Accumulated depreciation, gear %s", p.GearID), p.Amount, dims),
		},
	)
}

// applyGearWrittenOff removes the asset at original cost, clearing the
// accumulated depreciation against it and taking the net book value as a
// loss. Either debit leg may be zero and is then omitted.
func applyGearWrittenOff(ctx context.Context, p domain.GearEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	assetsID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGearAssets)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{BranchID: p.BranchID}
	var lines []domain.JournalLine
	if p.AccumulatedDepreciation.IsPositive() {
		accumulatedID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeAccumulatedDepreciation)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.DebitLine(accumulatedID, fmt.Sprintf("Accumulated depreciation cleared, gear %s", p.GearID), p.AccumulatedDepreciation, dims))
	}
	if netBookValue := p.Cost.Sub(p.AccumulatedDepreciation); netBookValue.IsPositive() {
		lossID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGearWriteOffLoss)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.DebitLine(lossID, fmt.Sprintf("Write-off loss, gear %s", p.GearID), netBookValue, dims))
	}
	lines = append(lines, domain.CreditLine(assetsID, fmt.Sprintf("Gear %s derecognized", p.GearID), p.Cost, dims))

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleGear, p.GearID, "GEAR", fmt.Sprintf("Gear %s written off", p.GearID)),
		lines,
	)
}

// applyGearRented books rental income, to bank when paid directly or to the
// customer receivable otherwise, with GST output as its own line.
func applyGearRented(ctx context.Context, p domain.GearEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	rentalRevenueID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGearRentalRevenue)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{CustomerID: p.CustomerID, BranchID: p.BranchID}
	total := p.Amount.Add(p.TaxAmount)

	var debitID string
	var debitDesc string
	if p.BankAccountID != "" {
		debitID, err = resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
		debitDesc = fmt.Sprintf("Rental receipt for gear %s", p.GearID)
	} else {
		debitID, err = resolver.GetAccountID(ctx, p.TenantID, domain.CodeAccountsReceivable)
		debitDesc = fmt.Sprintf("Rental receivable for gear %s", p.GearID)
	}
	if err != nil {
		return nil, err
	}

	lines := []domain.JournalLine{
		domain.DebitLine(debitID, debitDesc, total, dims),
		domain.CreditLine(rentalRevenueID, fmt.Sprintf("Rental revenue, gear %s", p.GearID), p.Amount, dims),
	}
	if p.TaxAmount.IsPositive() {
		gstOutputID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGSTOutput)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(gstOutputID, fmt.Sprintf("GST output on gear %s rental", p.GearID), p.TaxAmount, dims))
	}

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleGear, p.GearID, "GEAR", fmt.Sprintf("Gear %s rented", p.GearID)),
		lines,
	)
}
