package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
)

// JournalLineResponse defines the data returned for one entry line.
type JournalLineResponse struct {
	AccountID   string            `json:"accountID"`
	Description string            `json:"description"`
	Debit       decimal.Decimal   `json:"debit"`
	Credit      decimal.Decimal   `json:"credit"`
	LineNumber  int               `json:"lineNumber"`
	Dimensions  domain.Dimensions `json:"dimensions"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID          string                `json:"entryID"`
	TenantID         string                `json:"tenantID"`
	BranchID         string                `json:"branchID"`
	EntryDate        time.Time             `json:"entryDate"`
	Description      string                `json:"description"`
	EntryType        string                `json:"entryType"`
	SourceModule     string                `json:"sourceModule"`
	SourceRecordID   string                `json:"sourceRecordID"`
	SourceRecordType string                `json:"sourceRecordType"`
	CreatedBy        string                `json:"createdBy"`
	CreatedAt        time.Time             `json:"createdAt"`
	Lines            []JournalLineResponse `json:"lines"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// ReverseEntryRequest carries the optional posting date of a reversal.
type ReverseEntryRequest struct {
	EntryDate *time.Time `json:"entryDate,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		AccountID:   line.AccountID,
		Description: line.Description,
		Debit:       line.Debit,
		Credit:      line.Credit,
		LineNumber:  line.LineNumber,
		Dimensions:  line.Dimensions,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(entry.Lines))
	for i := range entry.Lines {
		lines[i] = ToJournalLineResponse(&entry.Lines[i])
	}
	return JournalEntryResponse{
		EntryID:          entry.EntryID,
		TenantID:         entry.TenantID,
		BranchID:         entry.BranchID,
		EntryDate:        entry.EntryDate,
		Description:      entry.Description,
		EntryType:        string(entry.EntryType),
		SourceModule:     string(entry.SourceModule),
		SourceRecordID:   entry.SourceRecordID,
		SourceRecordType: entry.SourceRecordType,
		CreatedBy:        entry.CreatedBy,
		CreatedAt:        entry.CreatedAt,
		Lines:            lines,
	}
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
