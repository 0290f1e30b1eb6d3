package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlastrek/travel_ops_app/internal/core/domain"
)

// chart_of_accounts.code is VARCHAR(64); every template code must fit or a
// seeded chart can never be inserted and the resolver can never match it.
const maxAccountCodeLength = 64

func TestAccountCodes_FitStorageWidth(t *testing.T) {
	codes := []domain.AccountCode{
		domain.CodeBankAccounts,
		domain.CodeAccountsReceivable,
		domain.CodeCustomerAdvances,
		domain.CodeUnearnedRevenue,
		domain.CodeTripRevenue,
		domain.CodeGearRentalRevenue,
		domain.CodeCancellationFeeRevenue,
		domain.CodeCustomerRefundsPayable,
		domain.CodeGSTOutput,
		domain.CodeGSTInput,
		domain.CodeVendorPayables,
		domain.CodeVendorAdvances,
		domain.CodeVendorServicesExpense,
		domain.CodeTDSPayable,
		domain.CodeSalaryExpense,
		domain.CodePayrollPayable,
		domain.CodeEmployerPFExpense,
		domain.CodeEmployerESIExpense,
		domain.CodePFPayable,
		domain.CodeESIPayable,
		domain.CodeExpenseReimbursementsPayable,
		domain.CodeGearAssets,
		domain.CodeAccumulatedDepreciation,
		domain.CodeGearDepreciation,
		domain.CodeGearWriteOffLoss,
		domain.CodePaymentGatewayFees,
		domain.CodeOTACommission,
		domain.CodeInterBranchReceivable,
		domain.CodeTripCostsExpense,
		domain.CodeAccruedTripCosts,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code)
		assert.LessOrEqualf(t, len(code), maxAccountCodeLength, "code %s overflows the chart column", code)
	}
}
