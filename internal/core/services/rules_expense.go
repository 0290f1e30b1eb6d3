package services

import (
	"context"
	"fmt"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// expenseRules covers employee-submitted expenses: approval books the
// expense against a reimbursement payable, reimbursement settles it from
// bank.
func expenseRules() []JournalRule {
	return []JournalRule{
		NewRule(domain.ExpenseApproved, applyExpenseApproved),
		NewRule(domain.ExpenseReimbursed, applyExpenseReimbursed),
	}
}

func applyExpenseApproved(ctx context.Context, p domain.ExpenseEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	categoryID, err := resolver.GetAccountID(ctx, p.TenantID, p.CategoryCode)
	if err != nil {
		return nil, err
	}
	reimbursableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeExpenseReimbursementsPayable)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{EmployeeID: p.EmployeeID, BranchID: p.BranchID}
	lines := []domain.JournalLine{
		domain.DebitLine(categoryID, fmt.Sprintf("Expense %s approved", p.ExpenseID), p.Amount, dims),
	}
	if p.TaxAmount.IsPositive() {
		gstInputID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeGSTInput)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.DebitLine(gstInputID, fmt.Sprintf("GST input on expense %s", p.ExpenseID), p.TaxAmount, dims))
	}
	lines = append(lines, domain.CreditLine(reimbursableID, fmt.Sprintf("Reimbursement payable to employee %s", p.EmployeeID), p.Amount.Add(p.TaxAmount), dims))

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleExpenses, p.ExpenseID, "EXPENSE", fmt.Sprintf("Expense %s approved", p.ExpenseID)),
		lines,
	)
}

func applyExpenseReimbursed(ctx context.Context, p domain.ExpenseEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	reimbursableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeExpenseReimbursementsPayable)
	if err != nil {
		return nil, err
	}
	bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{EmployeeID: p.EmployeeID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModuleExpenses, p.ExpenseID, "EXPENSE", fmt.Sprintf("Expense %s reimbursed", p.ExpenseID)),
		[]domain.JournalLine{
			domain.DebitLine(reimbursableID, fmt.Sprintf("Reimbursement payable settled, employee %s", p.EmployeeID), p.Amount, dims),
			domain.CreditLine(bankID, fmt.Sprintf("Reimbursement paid to employee %s", p.EmployeeID), p.Amount, dims),
		},
	)
}
