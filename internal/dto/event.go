package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	"github.com/atlastrek/travel_ops_app/internal/core/domain"
)

// ProcessEventRequest is the inbound shape for posting a business event.
// The payload is decoded per event type; its tenant/actor fields are always
// overwritten from the authenticated request, never trusted from the body.
type ProcessEventRequest struct {
	EventType domain.BusinessEvent `json:"eventType" binding:"required,businessevent"`
	Payload   json.RawMessage      `json:"payload" binding:"required"`
}

// BusinessEventValidator is registered with gin's validator engine under the
// "businessevent" tag.
func BusinessEventValidator(fl validator.FieldLevel) bool {
	return domain.BusinessEvent(fl.Field().String()).IsValid()
}

// DecodePayload unmarshals the raw payload into the variant for the event
// type and stamps it with the authenticated tenant and actor.
func (r *ProcessEventRequest) DecodePayload(tenantID, actorID string) (domain.EventPayload, error) {
	switch r.EventType {
	case domain.BookingCreated, domain.BookingConfirmed, domain.BookingCancelled, domain.CancellationFeeCharged:
		var p domain.BookingEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.AdvanceReceived, domain.PaymentReceived, domain.PaymentRefunded, domain.GatewayFeeCharged:
		var p domain.PaymentEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.TripStarted, domain.TripCompleted, domain.RevenueRecognized:
		var p domain.TripEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.VendorServiceReceived, domain.VendorAdvancePaid, domain.VendorPaymentMade:
		var p domain.VendorEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.PayrollProcessed, domain.SalaryPaid:
		var p domain.PayrollEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.ExpenseApproved, domain.ExpenseReimbursed:
		var p domain.ExpenseEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.GearPurchased, domain.GearDepreciated, domain.GearWrittenOff, domain.GearRented:
		var p domain.GearEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.OTACommissionDeducted:
		var p domain.CommissionEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.InterBranchTransfer:
		var p domain.TransferEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	case domain.PeriodClose, domain.YearEndClose, domain.ManualAdjustment:
		var p domain.AdjustmentEventPayload
		if err := r.unmarshal(&p); err != nil {
			return nil, err
		}
		p.EventContext = stamp(p.EventContext, tenantID, actorID)
		return p, nil
	default:
		return nil, fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, r.EventType)
	}
}

func (r *ProcessEventRequest) unmarshal(target any) error {
	if err := json.Unmarshal(r.Payload, target); err != nil {
		return fmt.Errorf("%w: invalid payload for event %s: %v", apperrors.ErrValidation, r.EventType, err)
	}
	return nil
}

func stamp(c domain.EventContext, tenantID, actorID string) domain.EventContext {
	c.TenantID = tenantID
	c.ActorID = actorID
	if c.OccurredAt.IsZero() {
		c.OccurredAt = time.Now().UTC()
	}
	return c
}
