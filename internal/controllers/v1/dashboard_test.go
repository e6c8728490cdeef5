package v1_test

import (
	"net/http"

	v1 "github.com/finance-dashboard/backend/internal/controllers/v1"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/finance-dashboard/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboard() {
	suite.createTestMonth()
	suite.createTestAccount("Checking", 1500)
	suite.createTestAccount("Savings", 500)
	suite.createTestCreditCard("Gold")

	r := suite.request(http.MethodGet, "http://example.com/v1/dashboard?month=2024-01", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	d := response.Data
	suite.Require().NotNil(d)

	suite.Assert().Equal("2024-01", d.Month)
	suite.Assert().Equal("BRL", d.Currency)
	suite.Assert().True(decimal.NewFromInt(2000).Equal(d.TotalBalance), d.TotalBalance.String())
	suite.Assert().True(decimal.NewFromInt(5000).Equal(d.Income), d.Income.String())
	suite.Assert().True(decimal.NewFromFloat(62.5).Equal(d.Expense), d.Expense.String())
	suite.Assert().True(d.CreditUsed.IsZero())
	suite.Assert().Contains(d.Formatted.TotalBalance, "R$")
	suite.Assert().Contains(d.Formatted.Income, "R$")

	suite.Require().Len(d.ExpensesByCategory, 2)
	suite.Assert().Equal("Groceries", d.ExpensesByCategory[0].Name)
	suite.Assert().Equal("Food", d.ExpensesByCategory[1].Name)

	suite.Require().Len(d.Recent, 3)
	suite.Assert().Equal("Bakery", d.Recent[0].Description)
	suite.Assert().Equal("Market", d.Recent[1].Description)
	suite.Assert().Equal("Salary", d.Recent[2].Description)
}

func (suite *TestSuiteStandard) TestDashboardCurrentMonth() {
	r := suite.request(http.MethodGet, "http://example.com/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(types.Today().Time().Format("2006-01"), response.Data.Month)
	suite.Assert().Empty(response.Data.Recent)
	suite.Assert().True(response.Data.TotalBalance.IsZero())
}

func (suite *TestSuiteStandard) TestDashboardMonthInvalid() {
	for _, month := range []string{"2024", "2024-13", "January"} {
		r := suite.request(http.MethodGet, "http://example.com/v1/dashboard?month="+month, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}
