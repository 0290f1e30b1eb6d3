package services

import (
	"github.com/atlastrek/travel_ops_app/internal/core/domain"
)

// header assembles the common journal entry params from an event context.
// Every rule posts under the tenant/branch/actor of the event that raised it.
func header(c domain.EventContext, entryType domain.EntryType, module domain.SourceModule, recordID, recordType, description string) domain.EntryParams {
	return domain.EntryParams{
		TenantID:         c.TenantID,
		BranchID:         c.BranchID,
		EntryDate:        c.OccurredAt,
		Description:      description,
		EntryType:        entryType,
		SourceModule:     module,
		SourceRecordID:   recordID,
		SourceRecordType: recordType,
		CreatedBy:        c.ActorID,
	}
}
