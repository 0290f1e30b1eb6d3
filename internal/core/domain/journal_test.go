package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	"github.com/atlastrek/travel_ops_app/internal/core/domain"
)

func testParams() domain.EntryParams {
	return domain.EntryParams{
		TenantID:         "tenant-1",
		BranchID:         "branch-1",
		EntryDate:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Description:      "test entry",
		EntryType:        domain.EntryStandard,
		SourceModule:     domain.ModuleBookings,
		SourceRecordID:   "booking-1",
		SourceRecordType: "BOOKING",
		CreatedBy:        "user-1",
	}
}

func TestNewJournalEntry_Valid(t *testing.T) {
	lines := []domain.JournalLine{
		domain.DebitLine("acc-ar", "receivable", decimal.NewFromInt(11800), domain.Dimensions{BookingID: "booking-1"}),
		domain.CreditLine("acc-unearned", "unearned", decimal.NewFromInt(10000), domain.Dimensions{}),
		domain.CreditLine("acc-gst", "gst output", decimal.NewFromInt(1800), domain.Dimensions{}),
	}

	entry, err := domain.NewJournalEntry(testParams(), lines)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.NotEmpty(t, entry.EntryID)
	assert.Equal(t, "tenant-1", entry.TenantID)
	assert.Len(t, entry.Lines, 3)
	for i, line := range entry.Lines {
		assert.Equal(t, i+1, line.LineNumber, "line numbers must be dense 1..N in list order")
	}

	debits, credits := entry.Totals()
	assert.True(t, debits.Equal(credits))
	assert.True(t, debits.Equal(decimal.NewFromInt(11800)))
}

func TestNewJournalEntry_CopiesLines(t *testing.T) {
	lines := []domain.JournalLine{
		domain.DebitLine("acc-1", "debit", decimal.NewFromInt(100), domain.Dimensions{}),
		domain.CreditLine("acc-2", "credit", decimal.NewFromInt(100), domain.Dimensions{}),
	}

	entry, err := domain.NewJournalEntry(testParams(), lines)
	require.NoError(t, err)

	lines[0].AccountID = "mutated"
	lines[0].Debit = decimal.NewFromInt(999)

	assert.Equal(t, "acc-1", entry.Lines[0].AccountID)
	assert.True(t, entry.Lines[0].Debit.Equal(decimal.NewFromInt(100)))
	assert.NoError(t, entry.Validate())
}

func TestNewJournalEntry_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr error
	}{
		{
			name: "single line",
			lines: []domain.JournalLine{
				domain.DebitLine("acc-1", "lonely", decimal.NewFromInt(100), domain.Dimensions{}),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "no lines",
			lines:   nil,
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "unbalanced",
			lines: []domain.JournalLine{
				domain.DebitLine("acc-1", "debit", decimal.NewFromInt(100), domain.Dimensions{}),
				domain.CreditLine("acc-2", "credit", decimal.NewFromInt(99), domain.Dimensions{}),
			},
			wantErr: apperrors.ErrUnbalancedEntry,
		},
		{
			name: "fractionally unbalanced",
			lines: []domain.JournalLine{
				domain.DebitLine("acc-1", "debit", decimal.RequireFromString("100.0001"), domain.Dimensions{}),
				domain.CreditLine("acc-2", "credit", decimal.NewFromInt(100), domain.Dimensions{}),
			},
			wantErr: apperrors.ErrUnbalancedEntry,
		},
		{
			name: "negative amount",
			lines: []domain.JournalLine{
				domain.DebitLine("acc-1", "debit", decimal.NewFromInt(-100), domain.Dimensions{}),
				domain.CreditLine("acc-2", "credit", decimal.NewFromInt(-100), domain.Dimensions{}),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "zero line",
			lines: []domain.JournalLine{
				domain.DebitLine("acc-1", "debit", decimal.NewFromInt(100), domain.Dimensions{}),
				domain.CreditLine("acc-2", "credit", decimal.NewFromInt(100), domain.Dimensions{}),
				domain.DebitLine("acc-3", "empty", decimal.Zero, domain.Dimensions{}),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "both sides on one line",
			lines: []domain.JournalLine{
				{AccountID: "acc-1", Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(100)},
				domain.CreditLine("acc-2", "credit", decimal.NewFromInt(100), domain.Dimensions{}),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "missing account id",
			lines: []domain.JournalLine{
				domain.DebitLine("", "debit", decimal.NewFromInt(100), domain.Dimensions{}),
				domain.CreditLine("acc-2", "credit", decimal.NewFromInt(100), domain.Dimensions{}),
			},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := domain.NewJournalEntry(testParams(), tt.lines)
			assert.Nil(t, entry)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJournalEntry_Validate_DetectsTampering(t *testing.T) {
	entry, err := domain.NewJournalEntry(testParams(), []domain.JournalLine{
		domain.DebitLine("acc-1", "debit", decimal.NewFromInt(500), domain.Dimensions{}),
		domain.CreditLine("acc-2", "credit", decimal.NewFromInt(500), domain.Dimensions{}),
	})
	require.NoError(t, err)
	require.NoError(t, entry.Validate())

	entry.Lines[1].Credit = decimal.NewFromInt(400)
	assert.ErrorIs(t, entry.Validate(), apperrors.ErrUnbalancedEntry)

	entry.Lines[1].Credit = decimal.NewFromInt(500)
	entry.Lines[1].LineNumber = 5
	assert.ErrorIs(t, entry.Validate(), apperrors.ErrValidation)
}

func TestJournalEntry_Reverse(t *testing.T) {
	original, err := domain.NewJournalEntry(testParams(), []domain.JournalLine{
		domain.DebitLine("acc-bank", "bank receipt", decimal.NewFromInt(9750), domain.Dimensions{CustomerID: "cust-1"}),
		domain.DebitLine("acc-fees", "gateway fee", decimal.NewFromInt(250), domain.Dimensions{}),
		domain.CreditLine("acc-ar", "receivable settled", decimal.NewFromInt(10000), domain.Dimensions{CustomerID: "cust-1"}),
	})
	require.NoError(t, err)

	reverseDate := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	reversal, err := original.Reverse("user-2", reverseDate)
	require.NoError(t, err)
	require.NotNil(t, reversal)

	assert.NotEqual(t, original.EntryID, reversal.EntryID)
	assert.Equal(t, domain.EntryAdjustment, reversal.EntryType)
	assert.Equal(t, original.EntryID, reversal.SourceRecordID)
	assert.Equal(t, "JOURNAL_ENTRY", reversal.SourceRecordType)
	assert.Equal(t, "user-2", reversal.CreatedBy)
	assert.Equal(t, reverseDate, reversal.EntryDate)

	require.Len(t, reversal.Lines, 3)
	for i, line := range reversal.Lines {
		assert.True(t, line.Debit.Equal(original.Lines[i].Credit))
		assert.True(t, line.Credit.Equal(original.Lines[i].Debit))
		assert.Equal(t, original.Lines[i].AccountID, line.AccountID)
		assert.Equal(t, original.Lines[i].Dimensions, line.Dimensions)
	}
	assert.NoError(t, reversal.Validate())

	// The original entry is untouched.
	assert.True(t, original.Lines[0].Debit.Equal(decimal.NewFromInt(9750)))
	assert.NoError(t, original.Validate())
}
