package services

import (
	"context"
	"fmt"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// tripRules covers trip lifecycle and revenue recognition. Recognition is
// an independent event: the booking entry parked money in unearned revenue,
// and these rules move it into trip revenue when earned.
func tripRules() []JournalRule {
	return []JournalRule{
		NewRule(domain.TripStarted, applyTripStarted),
		NewRule(domain.TripCompleted, applyTripCompleted),
		NewRule(domain.RevenueRecognized, applyRevenueRecognized),
	}
}

// applyTripStarted accrues the estimated operating cost of the trip so the
// expense lands in the period the trip runs, before vendor invoices arrive.
func applyTripStarted(ctx context.Context, p domain.TripEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	if !p.EstimatedCost.IsPositive() {
		return nil, fmt.Errorf("%w: trip start requires a positive estimated cost", apperrors.ErrValidation)
	}
	costsID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeTripCostsExpense)
	if err != nil {
		return nil, err
	}
	accruedID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeAccruedTripCosts)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{TripID: p.TripID, BookingID: p.BookingID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleTrips, p.TripID, "TRIP", fmt.Sprintf("Trip %s started, cost accrual", p.TripID)),
		[]domain.JournalLine{
			domain.DebitLine(costsID, fmt.Sprintf("Estimated costs for trip %s", p.TripID), p.EstimatedCost, dims),
			domain.CreditLine(accruedID, fmt.Sprintf("Accrued costs for trip %s", p.TripID), p.EstimatedCost, dims),
		},
	)
}

// applyTripCompleted recognizes the trip's revenue out of unearned revenue.
// This is the textual pair of applyBookingCreated, as an independent event.
func applyTripCompleted(ctx context.Context, p domain.TripEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	return recognizeRevenue(ctx, p, resolver, fmt.Sprintf("Trip %s completed, revenue recognized", p.TripID))
}

// applyRevenueRecognized handles recognition outside trip completion, e.g.
// partial recognition on multi-leg itineraries.
func applyRevenueRecognized(ctx context.Context, p domain.TripEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	return recognizeRevenue(ctx, p, resolver, fmt.Sprintf("Revenue recognized for booking %s", p.BookingID))
}

func recognizeRevenue(ctx context.Context, p domain.TripEventPayload, resolver portsrepo.AccountResolver, description string) (*domain.JournalEntry, error) {
	unearnedID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeUnearnedRevenue)
	if err != nil {
		return nil, err
	}
	revenueID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeTripRevenue)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{TripID: p.TripID, BookingID: p.BookingID, CustomerID: p.CustomerID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleTrips, p.TripID, "TRIP", description),
		[]domain.JournalLine{
			domain.DebitLine(unearnedID, fmt.Sprintf("Unearned revenue released for booking %s", p.BookingID), p.Amount, dims),
			domain.CreditLine(revenueID, fmt.Sprintf("Trip revenue for trip %s", p.TripID), p.Amount, dims),
		},
	)
}
