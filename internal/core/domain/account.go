package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountCode is a symbolic code from the shared chart-of-accounts template.
// Rules reference accounts by code; the resolver maps the code to the
// tenant's concrete ledger account id. The indirection lets one rule body
// serve every tenant regardless of their literal account ids.
type AccountCode string

const (
	CodeBankAccounts       AccountCode = "BANK_ACCOUNTS"
	CodeAccountsReceivable AccountCode = "ACCOUNTS_RECEIVABLE"
	CodeCustomerAdvances   AccountCode = "CUSTOMER_ADVANCES_LIABILITY"
	CodeUnearnedRevenue    AccountCode = "UNEARNED_REVENUE"

	CodeTripRevenue            AccountCode = "TRIP_REVENUE"
	CodeGearRentalRevenue      AccountCode = "GEAR_RENTAL_REVENUE"
	CodeCancellationFeeRevenue AccountCode = "CANCELLATION_FEE_REVENUE"
	CodeCustomerRefundsPayable AccountCode = "CUSTOMER_REFUNDS_PAYABLE"

	CodeGSTOutput AccountCode = "GST_OUTPUT"
	CodeGSTInput  AccountCode = "GST_INPUT"

	CodeVendorPayables        AccountCode = "VENDOR_PAYABLES"
	CodeVendorAdvances        AccountCode = "VENDOR_ADVANCES"
	CodeVendorServicesExpense AccountCode = "VENDOR_SERVICES_EXPENSE"
	CodeTDSPayable            AccountCode = "TDS_PAYABLE"

	CodeSalaryExpense      AccountCode = "SALARY_EXPENSE"
	CodePayrollPayable     AccountCode = "PAYROLL_PAYABLE"
	CodeEmployerPFExpense  AccountCode = "EMPLOYER_PF_EXPENSE"
	CodeEmployerESIExpense AccountCode = "EMPLOYER_ESI_EXPENSE"

	// PF/ESI payable were seeded as bare numeric codes in the first chart
	// template. Tenant charts already carry these literals, so the symbolic
	// names keep the numeric values.
	CodePFPayable  AccountCode = "2401"
	CodeESIPayable AccountCode = "2402"

	CodeExpenseReimbursementsPayable AccountCode = "EXPENSE_REIMBURSEMENTS_PAYABLE"

	CodeGearAssets              AccountCode = "GEAR_ASSETS"
	CodeAccumulatedDepreciation AccountCode = "ACCUMULATED_DEPRECIATION"
	CodeGearDepreciation        AccountCode = "GEAR_DEPRECIATION"
	CodeGearWriteOffLoss        AccountCode = "GEAR_WRITE_OFF_LOSS"

	CodePaymentGatewayFees    AccountCode = "PAYMENT_GATEWAY_FEES"
	CodeOTACommission         AccountCode = "OTA_COMMISSION"
	CodeInterBranchReceivable AccountCode = "INTER_BRANCH_RECEIVABLE"
	CodeTripCostsExpense      AccountCode = "TRIP_COSTS_EXPENSE"
	CodeAccruedTripCosts      AccountCode = "ACCRUED_TRIP_COSTS"
)

// LedgerAccount is one account within a tenant's chart of accounts, as seen
// by the engine. CRUD on the chart itself lives outside this core.
type LedgerAccount struct {
	AccountID   string      `json:"accountID"`
	TenantID    string      `json:"tenantID"`
	Code        AccountCode `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
}
