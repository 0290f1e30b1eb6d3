package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventContext carries the fields every business event has regardless of
// shape: who it belongs to, where it happened, who triggered it and when.
type EventContext struct {
	TenantID   string            `json:"tenantID"`
	BranchID   string            `json:"branchID"`
	ActorID    string            `json:"actorID"`
	OccurredAt time.Time         `json:"occurredAt"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Context returns the embedded context, satisfying EventPayload for every
// payload struct that embeds EventContext.
func (c EventContext) Context() EventContext { return c }

// EventPayload is the input to a journal rule. Payloads are transient; the
// engine never stores them.
type EventPayload interface {
	Context() EventContext
}

// BookingEventPayload covers the booking lifecycle events
// (BOOKING_CREATED, BOOKING_CONFIRMED, BOOKING_CANCELLED,
// CANCELLATION_FEE_CHARGED).
type BookingEventPayload struct {
	EventContext
	BookingID       string          `json:"bookingID"`
	CustomerID      string          `json:"customerID"`
	TripID          string          `json:"tripID,omitempty"`
	Amount          decimal.Decimal `json:"amount"`          // package price excluding tax
	TaxAmount       decimal.Decimal `json:"taxAmount"`       // GST on the package
	TotalAmount     decimal.Decimal `json:"totalAmount"`     // amount + taxAmount
	RefundAmount    decimal.Decimal `json:"refundAmount"`    // cancellation only
	CancellationFee decimal.Decimal `json:"cancellationFee"` // cancellation only
}

// PaymentEventPayload covers customer money movement events
// (ADVANCE_RECEIVED, PAYMENT_RECEIVED, PAYMENT_REFUNDED,
// GATEWAY_FEE_CHARGED).
type PaymentEventPayload struct {
	EventContext
	BookingID     string          `json:"bookingID,omitempty"`
	CustomerID    string          `json:"customerID"`
	BankAccountID string          `json:"bankAccountID"`
	Amount        decimal.Decimal `json:"amount"`     // gross amount received/refunded
	GatewayFee    decimal.Decimal `json:"gatewayFee"` // deducted by the payment gateway, if any
	Reference     string          `json:"reference,omitempty"`
}

// TripEventPayload covers trip lifecycle and revenue recognition events
// (TRIP_STARTED, TRIP_COMPLETED, REVENUE_RECOGNIZED).
type TripEventPayload struct {
	EventContext
	TripID        string          `json:"tripID"`
	BookingID     string          `json:"bookingID"`
	CustomerID    string          `json:"customerID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`        // revenue to recognize
	EstimatedCost decimal.Decimal `json:"estimatedCost"` // trip start cost accrual, if any
}

// VendorEventPayload covers the vendor lifecycle events
// (VENDOR_SERVICE_RECEIVED, VENDOR_ADVANCE_PAID, VENDOR_PAYMENT_MADE).
type VendorEventPayload struct {
	EventContext
	VendorID       string          `json:"vendorID"`
	BankAccountID  string          `json:"bankAccountID,omitempty"`
	Amount         decimal.Decimal `json:"amount"`      // service value excluding tax
	TaxAmount      decimal.Decimal `json:"taxAmount"`   // GST input, if any
	TDSAmount      decimal.Decimal `json:"tdsAmount"`   // statutory withholding, if any
	TotalAmount    decimal.Decimal `json:"totalAmount"` // amount + taxAmount
	AdvanceApplied decimal.Decimal `json:"advanceApplied"`
	Reference      string          `json:"reference,omitempty"`
}

// PayrollEventPayload covers PAYROLL_PROCESSED and SALARY_PAID. Amounts are
// per payroll run; statutory components are split employee/employer so the
// rule can fan credits out into the dedicated payable legs.
type PayrollEventPayload struct {
	EventContext
	PayrollRunID  string          `json:"payrollRunID"`
	EmployeeID    string          `json:"employeeID,omitempty"` // set for single-employee runs
	BankAccountID string          `json:"bankAccountID,omitempty"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	EmployeePF    decimal.Decimal `json:"employeePF"`
	EmployerPF    decimal.Decimal `json:"employerPF"`
	EmployeeESI   decimal.Decimal `json:"employeeESI"`
	EmployerESI   decimal.Decimal `json:"employerESI"`
	TaxDeducted   decimal.Decimal `json:"taxDeducted"` // TDS on salary
	NetSalary     decimal.Decimal `json:"netSalary"`
}

// ExpenseEventPayload covers EXPENSE_APPROVED and EXPENSE_REIMBURSED.
type ExpenseEventPayload struct {
	EventContext
	ExpenseID     string          `json:"expenseID"`
	EmployeeID    string          `json:"employeeID"`
	CategoryCode  AccountCode     `json:"categoryCode"` // expense account to debit
	BankAccountID string          `json:"bankAccountID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
}

// GearEventPayload covers the gear lifecycle events (GEAR_PURCHASED,
// GEAR_DEPRECIATED, GEAR_WRITTEN_OFF, GEAR_RENTED).
type GearEventPayload struct {
	EventContext
	GearID                  string          `json:"gearID"`
	VendorID                string          `json:"vendorID,omitempty"`
	CustomerID              string          `json:"customerID,omitempty"`
	BankAccountID           string          `json:"bankAccountID,omitempty"`
	Cost                    decimal.Decimal `json:"cost"`      // purchase cost / original cost on write-off
	TaxAmount               decimal.Decimal `json:"taxAmount"` // GST, purchase and rental
	Amount                  decimal.Decimal `json:"amount"`    // depreciation charge or rental amount
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"` // write-off only
}

// CommissionEventPayload covers OTA_COMMISSION_DEDUCTED: the online travel
// agency remits net of its commission.
type CommissionEventPayload struct {
	EventContext
	OTAName          string          `json:"otaName"`
	BookingID        string          `json:"bookingID"`
	CustomerID       string          `json:"customerID,omitempty"`
	BankAccountID    string          `json:"bankAccountID"`
	GrossAmount      decimal.Decimal `json:"grossAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
}

// TransferEventPayload covers INTER_BRANCH_TRANSFER. The rule posts only the
// origin branch leg; the destination leg is raised by a separate invocation
// in the destination branch's context.
type TransferEventPayload struct {
	EventContext
	FromBranchID  string          `json:"fromBranchID"`
	ToBranchID    string          `json:"toBranchID"`
	BankAccountID string          `json:"bankAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference,omitempty"`
}

// AdjustmentEventPayload is declared for MANUAL_ADJUSTMENT, PERIOD_CLOSE and
// YEAR_END_CLOSE. No rule consumes it yet.
type AdjustmentEventPayload struct {
	EventContext
	Reason     string          `json:"reason"`
	DebitCode  AccountCode     `json:"debitCode,omitempty"`
	CreditCode AccountCode     `json:"creditCode,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	PeriodID   string          `json:"periodID,omitempty"`
}
