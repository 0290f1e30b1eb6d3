package services

import (
	"context"
	"fmt"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// paymentRules covers customer money movement. When a receipt carries a
// payment-gateway fee, the fee becomes its own expense line and the bank
// debit is reduced by it; the receivable leg always carries the gross
// amount.
func paymentRules() []JournalRule {
	return []JournalRule{
		NewRule(domain.AdvanceReceived, applyAdvanceReceived),
		NewRule(domain.PaymentReceived, applyPaymentReceived),
		NewRule(domain.PaymentRefunded, applyPaymentRefunded),
		NewRule(domain.GatewayFeeCharged, applyGatewayFeeCharged),
	}
}

// customerReceipt is the shared shape of ADVANCE_RECEIVED and
// PAYMENT_RECEIVED: bank debit net of fee, fee expense debit, gross
// receivable credit.
func customerReceipt(ctx context.Context, p domain.PaymentEventPayload, resolver portsrepo.AccountResolver, description string) (*domain.JournalEntry, error) {
	bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
	if err != nil {
		return nil, err
	}
	receivableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeAccountsReceivable)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{CustomerID: p.CustomerID, BookingID: p.BookingID, BranchID: p.BranchID}
	lines := []domain.JournalLine{
		domain.DebitLine(bankID, fmt.Sprintf("Bank receipt from customer %s", p.CustomerID), p.Amount.Sub(p.GatewayFee), dims),
	}
	if p.GatewayFee.IsPositive() {
		feeID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodePaymentGatewayFees)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.DebitLine(feeID, "Payment gateway fee", p.GatewayFee, dims))
	}
	lines = append(lines, domain.CreditLine(receivableID, fmt.Sprintf("Receivable settled by customer %s", p.CustomerID), p.Amount, dims))

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModulePayments, p.BookingID, "PAYMENT", description),
		lines,
	)
}

func applyAdvanceReceived(ctx context.Context, p domain.PaymentEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	return customerReceipt(ctx, p, resolver, fmt.Sprintf("Advance received from customer %s", p.CustomerID))
}

func applyPaymentReceived(ctx context.Context, p domain.PaymentEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	return customerReceipt(ctx, p, resolver, fmt.Sprintf("Payment received from customer %s", p.CustomerID))
}

// applyPaymentRefunded pays out a refund liability carried since the
// cancellation entry.
func applyPaymentRefunded(ctx context.Context, p domain.PaymentEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	refundsID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeCustomerRefundsPayable)
	if err != nil {
		return nil, err
	}
	bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{CustomerID: p.CustomerID, BookingID: p.BookingID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModulePayments, p.BookingID, "PAYMENT", fmt.Sprintf("Refund paid to customer %s", p.CustomerID)),
		[]domain.JournalLine{
			domain.DebitLine(refundsID, fmt.Sprintf("Refund payable settled, customer %s", p.CustomerID), p.Amount, dims),
			domain.CreditLine(bankID, fmt.Sprintf("Refund paid to customer %s", p.CustomerID), p.Amount, dims),
		},
	)
}

// applyGatewayFeeCharged books a fee the gateway bills separately from any
// receipt, e.g. monthly settlement charges.
func applyGatewayFeeCharged(ctx context.Context, p domain.PaymentEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	feeID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodePaymentGatewayFees)
	if err != nil {
		return nil, err
	}
	bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModulePayments, p.Reference, "GATEWAY_FEE", "Payment gateway fee charged"),
		[]domain.JournalLine{
			domain.DebitLine(feeID, "Payment gateway fee", p.GatewayFee, dims),
			domain.CreditLine(bankID, "Gateway fee debited from bank", p.GatewayFee, dims),
		},
	)
}
