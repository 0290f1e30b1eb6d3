package domain

// BusinessEvent identifies one kind of financial business occurrence raised
// by the booking, payment, vendor, payroll, expense, gear or transfer
// workflows. The set is closed: each tag determines which payload shape is
// valid and which journal rule applies.
type BusinessEvent string

const (
	BookingCreated   BusinessEvent = "BOOKING_CREATED"
	BookingConfirmed BusinessEvent = "BOOKING_CONFIRMED"
	BookingCancelled BusinessEvent = "BOOKING_CANCELLED"

	AdvanceReceived   BusinessEvent = "ADVANCE_RECEIVED"
	PaymentReceived   BusinessEvent = "PAYMENT_RECEIVED"
	PaymentRefunded   BusinessEvent = "PAYMENT_REFUNDED"
	GatewayFeeCharged BusinessEvent = "GATEWAY_FEE_CHARGED"

	TripStarted            BusinessEvent = "TRIP_STARTED"
	TripCompleted          BusinessEvent = "TRIP_COMPLETED"
	RevenueRecognized      BusinessEvent = "REVENUE_RECOGNIZED"
	CancellationFeeCharged BusinessEvent = "CANCELLATION_FEE_CHARGED"

	VendorServiceReceived BusinessEvent = "VENDOR_SERVICE_RECEIVED"
	VendorAdvancePaid     BusinessEvent = "VENDOR_ADVANCE_PAID"
	VendorPaymentMade     BusinessEvent = "VENDOR_PAYMENT_MADE"

	PayrollProcessed BusinessEvent = "PAYROLL_PROCESSED"
	SalaryPaid       BusinessEvent = "SALARY_PAID"

	ExpenseApproved   BusinessEvent = "EXPENSE_APPROVED"
	ExpenseReimbursed BusinessEvent = "EXPENSE_REIMBURSED"

	GearPurchased   BusinessEvent = "GEAR_PURCHASED"
	GearDepreciated BusinessEvent = "GEAR_DEPRECIATED"
	GearWrittenOff  BusinessEvent = "GEAR_WRITTEN_OFF"
	GearRented      BusinessEvent = "GEAR_RENTED"

	OTACommissionDeducted BusinessEvent = "OTA_COMMISSION_DEDUCTED"
	InterBranchTransfer   BusinessEvent = "INTER_BRANCH_TRANSFER"

	// Declared in the tag set but carrying no registered rule today.
	// ProcessEvent for these fails with RuleNotFound until close/adjustment
	// posting is built out.
	PeriodClose      BusinessEvent = "PERIOD_CLOSE"
	YearEndClose     BusinessEvent = "YEAR_END_CLOSE"
	ManualAdjustment BusinessEvent = "MANUAL_ADJUSTMENT"
)

// AllBusinessEvents returns every member of the tag set, registered or not.
// Used to detect rule-coverage gaps against the registry.
func AllBusinessEvents() []BusinessEvent {
	return []BusinessEvent{
		BookingCreated, BookingConfirmed, BookingCancelled,
		AdvanceReceived, PaymentReceived, PaymentRefunded, GatewayFeeCharged,
		TripStarted, TripCompleted, RevenueRecognized, CancellationFeeCharged,
		VendorServiceReceived, VendorAdvancePaid, VendorPaymentMade,
		PayrollProcessed, SalaryPaid,
		ExpenseApproved, ExpenseReimbursed,
		GearPurchased, GearDepreciated, GearWrittenOff, GearRented,
		OTACommissionDeducted, InterBranchTransfer,
		PeriodClose, YearEndClose, ManualAdjustment,
	}
}

// IsValid reports whether e is a member of the closed tag set.
func (e BusinessEvent) IsValid() bool {
	for _, known := range AllBusinessEvents() {
		if e == known {
			return true
		}
	}
	return false
}
