package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.LedgerSvcFacade
	ctx              context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockSettingsRepo)
	suite.ctx = userCtx()
}

func txn(id string, typ domain.TransactionType, method domain.PaymentMethod, amount int64, date string) domain.Transaction {
	return domain.Transaction{
		ID:            id,
		Type:          typ,
		PaymentMethod: method,
		Amount:        decimal.NewFromInt(amount),
		Date:          domain.MustParseDate(date),
		Category:      "food",
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Success() {
	req := dto.TransactionRequest{
		Type:          "expense",
		PaymentMethod: "cash",
		Amount:        decimal.NewFromInt(42),
		Date:          "2024-03-02",
		Category:      "food",
		Description:   "Lunch",
	}
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, testUserID, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ID != "" && !t.CreatedAt.IsZero() && t.Type == domain.Expense && t.Date.String() == "2024-03-02" && !t.IsAutoGenerated
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("Lunch", created.Description)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	req := dto.TransactionRequest{
		Type:          "income",
		PaymentMethod: "bank",
		Amount:        decimal.NewFromInt(-1),
		Date:          "2024-03-02",
		Category:      "salary",
	}

	created, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_SaveError() {
	req := dto.TransactionRequest{Type: "income", PaymentMethod: "bank", Amount: decimal.NewFromInt(1), Date: "2024-03-02", Category: "salary"}
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, testUserID, mock.AnythingOfType("domain.Transaction")).Return(assert.AnError).Once()

	created, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Unauthorized() {
	_, err := suite.service.CreateTransaction(context.Background(), dto.TransactionRequest{})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_PreservesIdentityAndLinks() {
	existing := txn("t-1", domain.Expense, domain.Cash, 100, "2024-01-15")
	existing.IsAutoGenerated = true
	existing.InstallmentID = "inst-1"
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, testUserID, "t-1").Return(&existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", suite.ctx, testUserID, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ID == "t-1" && t.CreatedAt.Equal(existing.CreatedAt) && t.InstallmentID == "inst-1" && t.IsAutoGenerated &&
			t.Amount.Equal(decimal.NewFromInt(120)) && t.PaymentMethod == domain.Bank
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(suite.ctx, "t-1", dto.TransactionRequest{
		Type:          "expense",
		PaymentMethod: "bank",
		Amount:        decimal.NewFromInt(120),
		Date:          "2024-01-16",
		Category:      "bills",
	})

	suite.Require().NoError(err)
	suite.Equal("2024-01-16", updated.Date.String())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, testUserID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(suite.ctx, "missing", dto.TransactionRequest{
		Type: "income", PaymentMethod: "cash", Date: "2024-01-01", Category: "salary",
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_MissingIsSuccess() {
	suite.mockTxnRepo.On("DeleteTransaction", suite.ctx, testUserID, "missing").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteTransaction(suite.ctx, "missing"))
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_StoreError() {
	suite.mockTxnRepo.On("DeleteTransaction", suite.ctx, testUserID, "t-1").Return(assert.AnError).Once()

	suite.ErrorIs(suite.service.DeleteTransaction(suite.ctx, "t-1"), assert.AnError)
}

func (suite *LedgerServiceTestSuite) TestCurrentBalance_FirstRunDefaults() {
	suite.mockSettingsRepo.On("GetSettings", suite.ctx, testUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("ListTransactions", suite.ctx, testUserID).Return([]domain.Transaction{
		txn("a", domain.Income, domain.Cash, 500, "2024-01-01"),
		txn("b", domain.Expense, domain.Cash, 200, "2024-01-02"),
		txn("c", domain.Income, domain.Bank, 999, "2024-01-03"),
	}, nil).Once()

	balance, err := suite.service.CurrentBalance(suite.ctx, domain.Cash)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(300)), balance.String())
}

func (suite *LedgerServiceTestSuite) TestCurrentBalance_InvalidMethod() {
	_, err := suite.service.CurrentBalance(suite.ctx, domain.PaymentMethod("card"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestBalances_SettingsError() {
	suite.mockSettingsRepo.On("GetSettings", suite.ctx, testUserID).Return(nil, assert.AnError).Once()

	_, err := suite.service.Balances(suite.ctx)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_FilterAndPage() {
	suite.mockTxnRepo.On("ListTransactions", suite.ctx, testUserID).Return([]domain.Transaction{
		txn("d", domain.Expense, domain.Cash, 4, "2024-03-04"),
		txn("c", domain.Expense, domain.Cash, 3, "2024-03-03"),
		txn("x", domain.Income, domain.Cash, 9, "2024-03-02"),
		txn("b", domain.Expense, domain.Cash, 2, "2024-02-28"),
	}, nil).Twice()

	page, next, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Type: "expense", Month: "2024-03", Limit: 1})
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal("d", page[0].ID)
	suite.Require().NotNil(next)

	page, next, err = suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Type: "expense", Month: "2024-03", Limit: 1, NextToken: *next})
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal("c", page[0].ID)
	suite.Nil(next)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_BadToken() {
	suite.mockTxnRepo.On("ListTransactions", suite.ctx, testUserID).Return([]domain.Transaction{}, nil).Once()

	_, _, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{NextToken: "%%%"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_BadFilter() {
	_, _, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Type: "transfer"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCategoryBreakdown_UsesCustomNames() {
	custom := domain.DefaultSettings()
	custom.CustomCategories.Expense = []domain.Category{{ID: "custom_expense_1", Name: "Pets"}}
	pet := txn("p", domain.Expense, domain.Cash, 30, "2024-03-01")
	pet.Category = "custom_expense_1"
	suite.mockSettingsRepo.On("GetSettings", suite.ctx, testUserID).Return(&custom, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", suite.ctx, testUserID).Return([]domain.Transaction{
		pet,
		txn("f", domain.Expense, domain.Cash, 10, "2024-03-02"),
	}, nil).Once()

	shares, err := suite.service.CategoryBreakdown(suite.ctx, domain.Expense, nil)

	suite.Require().NoError(err)
	suite.Require().Len(shares, 2)
	suite.Equal("Pets", shares[0].Name)
	suite.True(shares[0].Percentage.Equal(decimal.NewFromInt(75)))
	suite.Equal("Yiyecek & İçecek", shares[1].Name)
}

func (suite *LedgerServiceTestSuite) TestMonthlyAggregate() {
	suite.mockSettingsRepo.On("GetSettings", suite.ctx, testUserID).Return(nil, apperrors.ErrNotFound).Maybe()
	suite.mockTxnRepo.On("ListTransactions", suite.ctx, testUserID).Return([]domain.Transaction{
		txn("a", domain.Income, domain.Cash, 500, "2024-03-01"),
		txn("b", domain.Expense, domain.Bank, 200, "2024-03-31"),
		txn("c", domain.Expense, domain.Bank, 900, "2024-04-01"),
	}, nil).Once()

	totals, err := suite.service.MonthlyAggregate(suite.ctx, domain.MonthKey{Year: 2024, Month: time.March})

	suite.Require().NoError(err)
	suite.True(totals.Income.Equal(decimal.NewFromInt(500)))
	suite.True(totals.Expense.Equal(decimal.NewFromInt(200)))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
