package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
)

// EntryType classifies a journal entry.
type EntryType string

const (
	EntryStandard    EntryType = "STANDARD"
	EntryRecurring   EntryType = "RECURRING"
	EntryInterBranch EntryType = "INTER_BRANCH"
	EntryAdjustment  EntryType = "ADJUSTMENT"
)

// SourceModule identifies the business area whose event produced an entry.
type SourceModule string

const (
	ModuleBookings  SourceModule = "BOOKINGS"
	ModulePayments  SourceModule = "PAYMENTS"
	ModuleTrips     SourceModule = "TRIPS"
	ModuleVendors   SourceModule = "VENDORS"
	ModulePayroll   SourceModule = "PAYROLL"
	ModuleExpenses  SourceModule = "EXPENSES"
	ModuleGear      SourceModule = "GEAR"
	ModuleTransfers SourceModule = "TRANSFERS"
)

// Dimensions are optional sub-ledger tags carried on a line for drill-down.
// The engine passes them through; it enforces nothing about them.
type Dimensions struct {
	CustomerID string `json:"customerID,omitempty"`
	VendorID   string `json:"vendorID,omitempty"`
	EmployeeID string `json:"employeeID,omitempty"`
	BookingID  string `json:"bookingID,omitempty"`
	TripID     string `json:"tripID,omitempty"`
	BranchID   string `json:"branchID,omitempty"`
}

// JournalLine is one leg of a journal entry. Exactly one of Debit/Credit is
// positive; LineNumber is assigned by the entry factory.
type JournalLine struct {
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	LineNumber  int             `json:"lineNumber"`
	Dimensions  Dimensions      `json:"dimensions"`
}

// DebitLine builds a debit leg for the given resolved account.
func DebitLine(accountID, description string, amount decimal.Decimal, dims Dimensions) JournalLine {
	return JournalLine{
		AccountID:   accountID,
		Description: description,
		Debit:       amount,
		Credit:      decimal.Zero,
		Dimensions:  dims,
	}
}

// CreditLine builds a credit leg for the given resolved account.
func CreditLine(accountID, description string, amount decimal.Decimal, dims Dimensions) JournalLine {
	return JournalLine{
		AccountID:   accountID,
		Description: description,
		Debit:       decimal.Zero,
		Credit:      amount,
		Dimensions:  dims,
	}
}

// EntryParams carries the header fields for a new journal entry.
type EntryParams struct {
	TenantID         string
	BranchID         string
	EntryDate        time.Time
	Description      string
	EntryType        EntryType
	SourceModule     SourceModule
	SourceRecordID   string
	SourceRecordType string
	CreatedBy        string
}

// JournalEntry is one balanced accounting transaction. Entries are immutable
// once constructed: corrections are posted as a reversing entry via Reverse,
// never by mutating an existing entry.
type JournalEntry struct {
	EntryID          string        `json:"entryID"`
	TenantID         string        `json:"tenantID"`
	BranchID         string        `json:"branchID"`
	EntryDate        time.Time     `json:"entryDate"`
	Description      string        `json:"description"`
	EntryType        EntryType     `json:"entryType"`
	SourceModule     SourceModule  `json:"sourceModule"`
	SourceRecordID   string        `json:"sourceRecordID"`
	SourceRecordType string        `json:"sourceRecordType"`
	CreatedBy        string        `json:"createdBy"`
	Lines            []JournalLine `json:"lines"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// NewJournalEntry validates and assembles a journal entry from header params
// and lines. It enforces, atomically:
//   - at least two lines;
//   - per line, exactly one of debit/credit positive (never both, never
//     neither, never negative);
//   - total debits equal total credits, exactly;
//   - line numbers assigned as a dense 1..N sequence in list order.
//
// The lines slice is copied; callers hold no alias into the entry.
func NewJournalEntry(params EntryParams, lines []JournalLine) (*JournalEntry, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: journal entry requires at least two lines, got %d", apperrors.ErrValidation, len(lines))
	}

	entryLines := make([]JournalLine, len(lines))
	copy(entryLines, lines)

	debits := decimal.Zero
	credits := decimal.Zero
	for i := range entryLines {
		line := &entryLines[i]
		if line.AccountID == "" {
			return nil, fmt.Errorf("%w: line %d has no account id", apperrors.ErrValidation, i+1)
		}
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		if hasDebit == hasCredit {
			return nil, fmt.Errorf("%w: line %d must carry exactly one of debit or credit", apperrors.ErrValidation, i+1)
		}
		line.LineNumber = i + 1
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}

	if !debits.Equal(credits) {
		return nil, fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalancedEntry, debits, credits)
	}

	return &JournalEntry{
		EntryID:          uuid.NewString(),
		TenantID:         params.TenantID,
		BranchID:         params.BranchID,
		EntryDate:        params.EntryDate,
		Description:      params.Description,
		EntryType:        params.EntryType,
		SourceModule:     params.SourceModule,
		SourceRecordID:   params.SourceRecordID,
		SourceRecordType: params.SourceRecordType,
		CreatedBy:        params.CreatedBy,
		Lines:            entryLines,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

// Totals returns the entry's total debits and total credits.
func (e *JournalEntry) Totals() (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range e.Lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	return debits, credits
}

// Validate rechecks the construction invariants. Repositories call it before
// persisting as defence in depth; a failure indicates a rule bug.
func (e *JournalEntry) Validate() error {
	if len(e.Lines) < 2 {
		return fmt.Errorf("%w: journal entry requires at least two lines", apperrors.ErrValidation)
	}
	for i, line := range e.Lines {
		if line.LineNumber != i+1 {
			return fmt.Errorf("%w: line numbers are not dense, expected %d got %d", apperrors.ErrValidation, i+1, line.LineNumber)
		}
		if line.Debit.IsPositive() == line.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d must carry exactly one of debit or credit", apperrors.ErrValidation, i+1)
		}
	}
	debits, credits := e.Totals()
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalancedEntry, debits, credits)
	}
	return nil
}

// Reverse constructs the reversing entry for e: same header lineage, each
// line's debit and credit swapped. The original entry is left untouched.
func (e *JournalEntry) Reverse(actorID string, entryDate time.Time) (*JournalEntry, error) {
	reversed := make([]JournalLine, len(e.Lines))
	for i, line := range e.Lines {
		reversed[i] = JournalLine{
			AccountID:   line.AccountID,
			Description: fmt.Sprintf("Reversal: %s", line.Description),
			Debit:       line.Credit,
			Credit:      line.Debit,
			Dimensions:  line.Dimensions,
		}
	}
	return NewJournalEntry(EntryParams{
		TenantID:         e.TenantID,
		BranchID:         e.BranchID,
		EntryDate:        entryDate,
		Description:      fmt.Sprintf("Reversal of entry %s: %s", e.EntryID, e.Description),
		EntryType:        EntryAdjustment,
		SourceModule:     e.SourceModule,
		SourceRecordID:   e.EntryID,
		SourceRecordType: "JOURNAL_ENTRY",
		CreatedBy:        actorID,
	}, reversed)
}
