package services

import (
	"context"
	"fmt"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// bookingRules covers the booking lifecycle. Recognition is deliberately a
// separate event (TRIP_COMPLETED / REVENUE_RECOGNIZED): creating a booking
// books a receivable against unearned revenue, and a later, independent
// event moves unearned revenue into trip revenue.
func bookingRules() []JournalRule {
	return []JournalRule{
		NewRule(domain.BookingCreated, applyBookingCreated),
		NewRule(domain.BookingConfirmed, applyBookingConfirmed),
		NewRule(domain.BookingCancelled, applyBookingCancelled),
		NewRule(domain.CancellationFeeCharged, applyCancellationFeeCharged),
	}
}

// applyBookingCreated books the gross receivable and splits the credit side
// into unearned revenue (excluding tax) and GST output (tax). Tax is its own
// line, never folded into revenue.
func applyBookingCreated(ctx context.Context, p domain.BookingEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	receivableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeAccountsReceivable)
	if err != nil {
		return nil, err
	}
	unearnedID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeUnearnedRevenue)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{CustomerID: p.CustomerID, BookingID: p.BookingID, TripID: p.TripID, BranchID: p.BranchID}
	lines := []domain.JournalLine{
		domain.DebitLine(receivableID, fmt.Sprintf("Receivable for booking %s", p.BookingID), p.TotalAmount, dims),
		domain.CreditLine(unearnedID, fmt.Sprintf("Unearned revenue for booking %s", p.BookingID), p.Amount, dims),
	}
	if p.TaxAmount.IsPositive() {
		gstOutputID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGSTOutput)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(gstOutputID, fmt.Sprintf("GST output for booking %s", p.BookingID), p.TaxAmount, dims))
	}

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleBookings, p.BookingID, "BOOKING", fmt.Sprintf("Booking %s created", p.BookingID)),
		lines,
	)
}

// applyBookingConfirmed reclassifies money held as a customer advance into
// unearned revenue once the advance is tied to a confirmed booking.
func applyBookingConfirmed(ctx context.Context, p domain.BookingEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	advancesID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeCustomerAdvances)
	if err != nil {
		return nil, err
	}
	unearnedID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeUnearnedRevenue)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{CustomerID: p.CustomerID, BookingID: p.BookingID, TripID: p.TripID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleBookings, p.BookingID, "BOOKING", fmt.Sprintf("Booking %s confirmed", p.BookingID)),
		[]domain.JournalLine{
			domain.DebitLine(advancesID, fmt.Sprintf("Advance applied to booking %s", p.BookingID), p.TotalAmount, dims),
			domain.CreditLine(unearnedID, fmt.Sprintf("Unearned revenue for booking %s", p.BookingID), p.TotalAmount, dims),
		},
	)
}

// applyBookingCancelled reverses unearned revenue into a refund liability
// plus, when charged, a cancellation fee recognized as revenue immediately.
// Either credit leg is omitted when zero: a fully non-refundable
// cancellation posts unearned revenue straight to fee revenue. The
// refundable portion stays a liability until PAYMENT_REFUNDED pays it out.
func applyBookingCancelled(ctx context.Context, p domain.BookingEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	unearnedID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeUnearnedRevenue)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{CustomerID: p.CustomerID, BookingID: p.BookingID, TripID: p.TripID, BranchID: p.BranchID}
	released := p.RefundAmount.Add(p.CancellationFee)
	lines := []domain.JournalLine{
		domain.DebitLine(unearnedID, fmt.Sprintf("Unearned revenue released for cancelled booking %s", p.BookingID), released, dims),
	}
	if p.RefundAmount.IsPositive() {
		refundsID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeCustomerRefundsPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(refundsID, fmt.Sprintf("Refund payable for booking %s", p.BookingID), p.RefundAmount, dims))
	}
	if p.CancellationFee.IsPositive() {
		feeRevenueID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeCancellationFeeRevenue)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(feeRevenueID, fmt.Sprintf("Cancellation fee for booking %s", p.BookingID), p.CancellationFee, dims))
	}

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleBookings, p.BookingID, "BOOKING", fmt.Sprintf("Booking %s cancelled", p.BookingID)),
		lines,
	)
}

// applyCancellationFeeCharged assesses a standalone fee against a customer's
// refundable balance, outside the cancellation entry itself.
func applyCancellationFeeCharged(ctx context.Context, p domain.BookingEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	refundsID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeCustomerRefundsPayable)
	if err != nil {
		return nil, err
	}
	feeRevenueID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeCancellationFeeRevenue)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{CustomerID: p.CustomerID, BookingID: p.BookingID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleBookings, p.BookingID, "BOOKING", fmt.Sprintf("Cancellation fee charged for booking %s", p.BookingID)),
		[]domain.JournalLine{
			domain.DebitLine(refundsID, fmt.Sprintf("Fee deducted from refund payable, booking %s", p.BookingID), p.CancellationFee, dims),
			domain.CreditLine(feeRevenueID, fmt.Sprintf("Cancellation fee for booking %s", p.BookingID), p.CancellationFee, dims),
		},
	)
}
