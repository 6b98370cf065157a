package services_test

import (
	"context"
	"testing"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RecurringServiceTestSuite struct {
	suite.Suite
	store   *memStore
	service portssvc.RecurringSvcFacade
	ctx     context.Context
}

func (suite *RecurringServiceTestSuite) SetupTest() {
	suite.store = newMemStore()
	suite.service = services.NewRecurringService(suite.store, suite.store)
	suite.ctx = userCtx()
}

func rent() domain.RecurringTemplate {
	return domain.RecurringTemplate{
		ID:            "tmpl-rent",
		Description:   "Rent",
		Type:          domain.Expense,
		PaymentMethod: domain.Bank,
		Amount:        decimal.NewFromInt(50),
		Category:      "bills",
		NextDate:      domain.MustParseDate("2024-01-01"),
	}
}

func (suite *RecurringServiceTestSuite) seed(tmpl domain.RecurringTemplate) {
	suite.Require().NoError(suite.store.SaveRecurringTemplate(suite.ctx, testUserID, tmpl))
}

func (suite *RecurringServiceTestSuite) nextDate(id string) domain.Date {
	tmpl, err := suite.store.FindRecurringTemplateByID(suite.ctx, testUserID, id)
	suite.Require().NoError(err)
	return tmpl.NextDate
}

func (suite *RecurringServiceTestSuite) templateTxns(id string) []domain.Transaction {
	all, err := suite.store.ListTransactions(suite.ctx, testUserID)
	suite.Require().NoError(err)
	var out []domain.Transaction
	for _, t := range all {
		if t.RecurringID == id {
			out = append(out, t)
		}
	}
	return out
}

// --- Test Cases ---

func (suite *RecurringServiceTestSuite) TestCatchUp_MaterializesEveryDueMonth() {
	suite.seed(rent())

	report, err := suite.service.CatchUp(suite.ctx, domain.MustParseDate("2024-03-15"))

	suite.Require().NoError(err)
	suite.Equal(3, report.Created)
	suite.Equal("2024-04-01", suite.nextDate("tmpl-rent").String())

	txns := suite.templateTxns("tmpl-rent")
	suite.Require().Len(txns, 3)
	for i, want := range []string{"2024-03-01", "2024-02-01", "2024-01-01"} {
		suite.Equal(want, txns[i].Date.String())
		suite.True(txns[i].IsAutoGenerated)
		suite.True(txns[i].IsRecurring)
		suite.Equal(domain.Bank, txns[i].PaymentMethod)
		suite.True(txns[i].Amount.Equal(decimal.NewFromInt(50)))
	}
}

func (suite *RecurringServiceTestSuite) TestCatchUp_IncludesToday() {
	tmpl := rent()
	tmpl.NextDate = domain.MustParseDate("2024-03-15")
	suite.seed(tmpl)

	_, err := suite.service.CatchUp(suite.ctx, domain.MustParseDate("2024-03-15"))

	suite.Require().NoError(err)
	suite.Len(suite.templateTxns(tmpl.ID), 1)
	suite.Equal("2024-04-15", suite.nextDate(tmpl.ID).String())
}

func (suite *RecurringServiceTestSuite) TestCatchUp_FutureTemplateUntouched() {
	tmpl := rent()
	tmpl.NextDate = domain.MustParseDate("2024-05-01")
	suite.seed(tmpl)

	report, err := suite.service.CatchUp(suite.ctx, domain.MustParseDate("2024-03-15"))

	suite.Require().NoError(err)
	suite.Zero(report.Processed)
	suite.Equal("2024-05-01", suite.nextDate(tmpl.ID).String())
}

func (suite *RecurringServiceTestSuite) TestCatchUp_NextDateMonotonic() {
	suite.seed(rent())
	today := domain.MustParseDate("2024-07-10")
	before := suite.nextDate("tmpl-rent")

	_, err := suite.service.CatchUp(suite.ctx, today)
	suite.Require().NoError(err)

	after := suite.nextDate("tmpl-rent")
	suite.False(after.Before(before))
	suite.True(after.After(today))
	suite.False(after.After(today.AddMonths(1)))
}

func (suite *RecurringServiceTestSuite) TestCatchUp_FailureLeavesNextDateAndRetryDedupes() {
	suite.seed(rent())
	today := domain.MustParseDate("2024-03-15")
	saves := 0
	suite.store.failSaveTxn = func(domain.Transaction) error {
		saves++
		if saves == 2 {
			return assert.AnError
		}
		return nil
	}

	report, err := suite.service.CatchUp(suite.ctx, today)
	suite.Require().NoError(err)
	suite.Require().Len(report.Failures, 1)
	suite.Equal("2024-01-01", suite.nextDate("tmpl-rent").String())
	suite.Len(suite.templateTxns("tmpl-rent"), 1)

	suite.store.failSaveTxn = nil
	report, err = suite.service.CatchUp(suite.ctx, today)
	suite.Require().NoError(err)
	suite.Equal(1, report.Reconciled)
	suite.Equal(2, report.Created)
	suite.Len(suite.templateTxns("tmpl-rent"), 3)
	suite.Equal("2024-04-01", suite.nextDate("tmpl-rent").String())
}

func (suite *RecurringServiceTestSuite) TestCatchUp_NextDatePersistFailureIsIdempotentOnRetry() {
	suite.seed(rent())
	today := domain.MustParseDate("2024-02-10")
	suite.store.failNextDate = func(string, domain.Date) error { return assert.AnError }

	report, err := suite.service.CatchUp(suite.ctx, today)
	suite.Require().NoError(err)
	suite.Len(report.Failures, 1)
	suite.Len(suite.templateTxns("tmpl-rent"), 2)

	suite.store.failNextDate = nil
	report, err = suite.service.CatchUp(suite.ctx, today)
	suite.Require().NoError(err)
	suite.Zero(report.Created)
	suite.Equal(2, report.Reconciled)
	suite.Equal("2024-03-01", suite.nextDate("tmpl-rent").String())
}

func (suite *RecurringServiceTestSuite) TestCatchUp_FailureIsolatedPerTemplate() {
	broken := rent()
	broken.ID = "tmpl-broken"
	suite.seed(broken)
	suite.seed(rent())
	suite.store.failSaveTxn = func(txn domain.Transaction) error {
		if txn.RecurringID == "tmpl-broken" {
			return assert.AnError
		}
		return nil
	}

	report, err := suite.service.CatchUp(suite.ctx, domain.MustParseDate("2024-03-15"))

	suite.Require().NoError(err)
	suite.Equal(2, report.Processed)
	suite.Equal(3, report.Created)
	suite.Require().Len(report.Failures, 1)
	suite.Equal("tmpl-broken", report.Failures[0].SourceID)
	suite.Equal("2024-04-01", suite.nextDate("tmpl-rent").String())
	suite.Equal("2024-01-01", suite.nextDate("tmpl-broken").String())
}

func (suite *RecurringServiceTestSuite) TestCatchUp_BoundedMonths() {
	tmpl := rent()
	tmpl.NextDate = domain.MustParseDate("1900-01-01")
	suite.seed(tmpl)

	report, err := suite.service.CatchUp(suite.ctx, domain.MustParseDate("2024-03-15"))

	suite.Require().NoError(err)
	suite.Equal(services.MaxRecurringCatchUp, report.Created)
	suite.Require().Len(report.Failures, 1)
	suite.ErrorIs(report.Err(), services.ErrCatchUpBoundExceeded)
	suite.Equal("1950-01-01", suite.nextDate(tmpl.ID).String())
}

func (suite *RecurringServiceTestSuite) TestCreateRecurringTemplate() {
	tmpl, err := suite.service.CreateRecurringTemplate(suite.ctx, dto.RecurringTemplateRequest{
		Description:   "Gym",
		Type:          "expense",
		PaymentMethod: "cash",
		Amount:        decimal.NewFromInt(30),
		Category:      "health",
		NextDate:      "2024-06-05",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(tmpl.ID)
	suite.False(tmpl.CreatedAt.IsZero())

	list, err := suite.service.ListRecurringTemplates(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(list, 1)
}

func (suite *RecurringServiceTestSuite) TestUpdateRecurringTemplate_KeepsIdentity() {
	suite.seed(rent())

	updated, err := suite.service.UpdateRecurringTemplate(suite.ctx, "tmpl-rent", dto.RecurringTemplateRequest{
		Description:   "Rent (new flat)",
		Type:          "expense",
		PaymentMethod: "bank",
		Amount:        decimal.NewFromInt(75),
		Category:      "bills",
		NextDate:      "2024-02-01",
	})

	suite.Require().NoError(err)
	suite.Equal("tmpl-rent", updated.ID)
	stored, err := suite.service.GetRecurringTemplate(suite.ctx, "tmpl-rent")
	suite.Require().NoError(err)
	suite.Equal("Rent (new flat)", stored.Description)
	suite.Equal("2024-02-01", stored.NextDate.String())
}

func (suite *RecurringServiceTestSuite) TestUpdateRecurringTemplate_RefusesRewind() {
	suite.seed(rent())
	today := domain.MustParseDate("2024-03-15")
	_, err := suite.service.CatchUp(suite.ctx, today)
	suite.Require().NoError(err)
	before, err := suite.service.GetRecurringTemplate(suite.ctx, "tmpl-rent")
	suite.Require().NoError(err)
	suite.Require().Equal("2024-04-01", before.NextDate.String())

	_, err = suite.service.UpdateRecurringTemplate(suite.ctx, "tmpl-rent", dto.RecurringTemplateRequest{
		Description:   "Rent",
		Type:          "expense",
		PaymentMethod: "bank",
		Amount:        decimal.NewFromInt(50),
		Category:      "bills",
		NextDate:      "2023-06-17",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	after, err := suite.service.GetRecurringTemplate(suite.ctx, "tmpl-rent")
	suite.Require().NoError(err)
	suite.Equal("2024-04-01", after.NextDate.String())

	report, err := suite.service.CatchUp(suite.ctx, today)
	suite.Require().NoError(err)
	suite.Zero(report.Created)
}

func (suite *RecurringServiceTestSuite) TestUpdateRecurringTemplate_NotFound() {
	_, err := suite.service.UpdateRecurringTemplate(suite.ctx, "missing", dto.RecurringTemplateRequest{
		Type: "expense", PaymentMethod: "cash", Category: "bills", NextDate: "2024-02-01",
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RecurringServiceTestSuite) TestDeleteRecurringTemplate_IgnoresMissing() {
	suite.NoError(suite.service.DeleteRecurringTemplate(suite.ctx, "missing"))
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}
