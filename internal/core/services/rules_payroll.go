package services

import (
	"context"
	"fmt"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
)

// payrollRules covers payroll processing and disbursement. Statutory
// deductions fan out into dedicated payable legs: net salary, combined
// employee+employer PF, combined employee+employer ESI, and TDS each get
// their own traceable line, emitted only when non-zero.
func payrollRules() []JournalRule {
	return []JournalRule{
		NewRule(domain.PayrollProcessed, applyPayrollProcessed),
		NewRule(domain.SalaryPaid, applySalaryPaid),
	}
}

func applyPayrollProcessed(ctx context.Context, p domain.PayrollEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	salaryExpenseID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeSalaryExpense)
	if err != nil {
		return nil, err
	}
	payrollPayableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodePayrollPayable)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{EmployeeID: p.EmployeeID, BranchID: p.BranchID}
	lines := []domain.JournalLine{
		domain.DebitLine(salaryExpenseID, fmt.Sprintf("Gross salary, payroll run %s", p.PayrollRunID), p.GrossSalary, dims),
	}
	if p.EmployerPF.IsPositive() {
		employerPFExpenseID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeEmployerPFExpense)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.DebitLine(employerPFExpenseID, "Employer PF contribution", p.EmployerPF, dims))
	}
	if p.EmployerESI.IsPositive() {
		employerESIExpenseID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeEmployerESIExpense)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.DebitLine(employerESIExpenseID, "Employer ESI contribution", p.EmployerESI, dims))
	}

	lines = append(lines, domain.CreditLine(payrollPayableID, fmt.Sprintf("Net salary payable, payroll run %s", p.PayrollRunID), p.NetSalary, dims))
	if pf := p.EmployeePF.Add(p.EmployerPF); pf.IsPositive() {
		pfPayableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodePFPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(pfPayableID, "PF payable, employee and employer", pf, dims))
	}
	if esi := p.EmployeeESI.Add(p.EmployerESI); esi.IsPositive() {
		esiPayableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeESIPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(esiPayableID, "ESI payable, employee and employer", esi, dims))
	}
	if p.TaxDeducted.IsPositive() {
		tdsPayableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodeTDSPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.CreditLine(tdsPayableID, "TDS on salary", p.TaxDeducted, dims))
	}

	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModulePayroll, p.PayrollRunID, "PAYROLL_RUN", fmt.Sprintf("Payroll run %s processed", p.PayrollRunID)),
		lines,
	)
}

func applySalaryPaid(ctx context.Context, p domain.PayrollEventPayload, resolver portsrepo.AccountResolver) (*domain.JournalEntry, error) {
	payrollPayableID, err := resolver.GetAccountID(ctx, p.TenantID, domain.CodePayrollPayable)
	if err != nil {
		return nil, err
	}
	bankID, err := resolver.GetBankAccountID(ctx, p.TenantID, p.BankAccountID)
	if err != nil {
		return nil, err
	}

	dims := domain.Dimensions{EmployeeID: p.EmployeeID, BranchID: p.BranchID}
	return domain.NewJournalEntry(
		header(p.EventContext, domain.EntryStandard, domain.ModulePayroll, p.PayrollRunID, "PAYROLL_RUN", fmt.Sprintf("Net salary paid, payroll run %s", p.PayrollRunID)),
		[]domain.JournalLine{
			domain.DebitLine(payrollPayableID, fmt.Sprintf("Salary payable settled, payroll run %s", p.PayrollRunID), p.NetSalary, dims),
			domain.CreditLine(bankID, "Salary disbursed from bank", p.NetSalary, dims),
		},
	)
}
