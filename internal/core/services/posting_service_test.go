package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/atlastrek/travel_ops_app/internal/apperrors"
	"github.com/atlastrek/travel_ops_app/internal/core/domain"
	portsrepo "github.com/atlastrek/travel_ops_app/internal/core/ports/repositories"
	portssvc "github.com/atlastrek/travel_ops_app/internal/core/ports/services"
	"github.com/atlastrek/travel_ops_app/internal/core/services"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepository = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByTenant(ctx context.Context, tenantID, branchID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, branchID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

type PostingServiceTestSuite struct {
	suite.Suite
	service  portssvc.JournalPostingSvc
	repo     *MockJournalRepository
	resolver *MockAccountResolver
	ctx      context.Context
	tenantID string
	evtCtx   domain.EventContext
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.repo = new(MockJournalRepository)
	suite.resolver = new(MockAccountResolver)
	suite.service = services.NewJournalPostingService(services.NewJournalEngine(), suite.repo, suite.resolver)
	suite.ctx = context.Background()
	suite.tenantID = "tenant-1"
	suite.evtCtx = domain.EventContext{
		TenantID:   suite.tenantID,
		BranchID:   "branch-1",
		ActorID:    "user-1",
		OccurredAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (suite *PostingServiceTestSuite) savedEntry() *domain.JournalEntry {
	entry, err := domain.NewJournalEntry(domain.EntryParams{
		TenantID:         suite.tenantID,
		BranchID:         "branch-1",
		EntryDate:        suite.evtCtx.OccurredAt,
		Description:      "Refund paid to customer cust-1",
		EntryType:        domain.EntryStandard,
		SourceModule:     domain.ModulePayments,
		SourceRecordID:   "booking-1",
		SourceRecordType: "PAYMENT",
		CreatedBy:        "user-1",
	}, []domain.JournalLine{
		domain.DebitLine("acc-refunds", "refund payable settled", decimal.NewFromInt(800), domain.Dimensions{}),
		domain.CreditLine("acc-bank", "refund paid", decimal.NewFromInt(800), domain.Dimensions{}),
	})
	require.NoError(suite.T(), err)
	return entry
}

func (suite *PostingServiceTestSuite) TestPostEvent_Success() {
	suite.resolver.On("GetAccountID", suite.ctx, suite.tenantID, domain.CodeCustomerRefundsPayable).Return("acc-refunds", nil)
	suite.resolver.On("GetBankAccountID", suite.ctx, suite.tenantID, "bank-1").Return("acc-bank", nil)
	suite.repo.On("SaveEntry", suite.ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	payload := domain.PaymentEventPayload{
		EventContext:  suite.evtCtx,
		CustomerID:    "cust-1",
		BankAccountID: "bank-1",
		Amount:        decimal.NewFromInt(800),
	}

	entry, err := suite.service.PostEvent(suite.ctx, domain.PaymentRefunded, payload)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), entry)
	assert.NoError(suite.T(), entry.Validate())
	suite.repo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_NoRuleSavesNothing() {
	entry, err := suite.service.PostEvent(suite.ctx, domain.ManualAdjustment, domain.AdjustmentEventPayload{EventContext: suite.evtCtx})
	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRuleNotFound)
	suite.repo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_SaveErrorPropagates() {
	saveErr := errors.New("insert failed")
	suite.resolver.On("GetAccountID", suite.ctx, suite.tenantID, domain.CodeCustomerRefundsPayable).Return("acc-refunds", nil)
	suite.resolver.On("GetBankAccountID", suite.ctx, suite.tenantID, "bank-1").Return("acc-bank", nil)
	suite.repo.On("SaveEntry", suite.ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(saveErr).Once()

	payload := domain.PaymentEventPayload{
		EventContext:  suite.evtCtx,
		CustomerID:    "cust-1",
		BankAccountID: "bank-1",
		Amount:        decimal.NewFromInt(800),
	}

	entry, err := suite.service.PostEvent(suite.ctx, domain.PaymentRefunded, payload)
	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, saveErr)
}

func (suite *PostingServiceTestSuite) TestGetEntry() {
	want := suite.savedEntry()
	suite.repo.On("FindEntryByID", suite.ctx, suite.tenantID, want.EntryID).Return(want, nil).Once()

	got, err := suite.service.GetEntry(suite.ctx, suite.tenantID, want.EntryID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), want, got)
}

func (suite *PostingServiceTestSuite) TestGetEntry_NotFound() {
	suite.repo.On("FindEntryByID", suite.ctx, suite.tenantID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetEntry(suite.ctx, suite.tenantID, "missing")
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *PostingServiceTestSuite) TestListEntries_ClampsPaging() {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"zero limit defaults", 0, 0, 25, 0},
		{"oversized limit defaults", 1000, 10, 25, 10},
		{"negative offset resets", 50, -5, 50, 0},
		{"in-range passes through", 10, 20, 10, 20},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			repo := new(MockJournalRepository)
			svc := services.NewJournalPostingService(services.NewJournalEngine(), repo, suite.resolver)
			repo.On("ListEntriesByTenant", suite.ctx, suite.tenantID, "branch-1", tt.wantLimit, tt.wantOffset).Return([]domain.JournalEntry{}, nil).Once()

			_, err := svc.ListEntries(suite.ctx, suite.tenantID, "branch-1", tt.limit, tt.offset)
			assert.NoError(suite.T(), err)
			repo.AssertExpectations(suite.T())
		})
	}
}

func (suite *PostingServiceTestSuite) TestReverseEntry() {
	original := suite.savedEntry()
	suite.repo.On("FindEntryByID", suite.ctx, suite.tenantID, original.EntryID).Return(original, nil).Once()

	var saved *domain.JournalEntry
	suite.repo.On("SaveEntry", suite.ctx, mock.AnythingOfType("*domain.JournalEntry")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.JournalEntry)
	}).Return(nil).Once()

	reverseDate := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	reversal, err := suite.service.ReverseEntry(suite.ctx, suite.tenantID, original.EntryID, "user-2", reverseDate)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), reversal)

	assert.Equal(suite.T(), reversal, saved)
	assert.Equal(suite.T(), domain.EntryAdjustment, reversal.EntryType)
	assert.Equal(suite.T(), original.EntryID, reversal.SourceRecordID)
	assert.True(suite.T(), reversal.Lines[0].Credit.Equal(original.Lines[0].Debit))
	assert.True(suite.T(), reversal.Lines[1].Debit.Equal(original.Lines[1].Credit))
}

func (suite *PostingServiceTestSuite) TestReverseEntry_OriginalNotFound() {
	suite.repo.On("FindEntryByID", suite.ctx, suite.tenantID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	reversal, err := suite.service.ReverseEntry(suite.ctx, suite.tenantID, "missing", "user-2", time.Now())
	assert.Nil(suite.T(), reversal)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
