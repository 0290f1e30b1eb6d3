package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRuleNotFound indicates the journal engine has no rule installed for an event type.
var ErrRuleNotFound = errors.New("no journal rule registered for event")

// ErrAccountNotResolved indicates the account resolver could not map a
// chart-of-accounts code or bank account to a concrete ledger account.
var ErrAccountNotResolved = errors.New("account not resolved")

// ErrUnbalancedEntry indicates a rule produced lines whose debits and credits
// do not sum to the same total. This is a rule bug, not bad input.
var ErrUnbalancedEntry = errors.New("journal entry debits do not equal credits")

// ErrPayloadMismatch indicates an event payload of the wrong shape was
// dispatched to a rule.
var ErrPayloadMismatch = errors.New("event payload type does not match rule")

// RuleNotFoundError carries the event type that had no registered rule.
type RuleNotFoundError struct {
	EventType string
}

func (e *RuleNotFoundError) Error() string {
	return fmt.Sprintf("no journal rule registered for event %q", e.EventType)
}

func (e *RuleNotFoundError) Is(target error) bool {
	return target == ErrRuleNotFound
}

// AccountNotResolvedError carries the tenant and code that failed resolution.
type AccountNotResolvedError struct {
	TenantID string
	Code     string
}

func (e *AccountNotResolvedError) Error() string {
	return fmt.Sprintf("account code %q not configured for tenant %s", e.Code, e.TenantID)
}

func (e *AccountNotResolvedError) Is(target error) bool {
	return target == ErrAccountNotResolved || target == ErrNotFound
}
