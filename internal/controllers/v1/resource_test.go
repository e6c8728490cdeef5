package v1_test

import (
	"net/http"

	"github.com/finance-dashboard/backend/internal/client"
	v1 "github.com/finance-dashboard/backend/internal/controllers/v1"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/finance-dashboard/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategories() {
	r := suite.request(http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Salary", Type: client.CategoryIncome})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.Response[client.Category]
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Require().NotNil(created.Data)
	suite.Assert().Equal("Salary", created.Data.Name)

	suite.createTestCategory("Groceries", client.CategoryExpense)

	r = suite.request(http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var list v1.ListResponse[client.Category]
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 2)

	r = suite.request(http.MethodGet, "http://example.com/v1/categories?type=INCOME", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	list = v1.ListResponse[client.Category]{}
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(created.Data.ID, list.Data[0].ID)

	r = suite.request(http.MethodPut, "http://example.com/v1/categories/"+created.Data.ID, v1.CategoryEditable{Name: "Wage", Icon: "coins", Type: client.CategoryIncome})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/v1/categories/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var category v1.Response[client.Category]
	test.DecodeResponse(suite.T(), &r, &category)
	suite.Assert().Equal("Wage", category.Data.Name)
	suite.Assert().Equal("coins", category.Data.Icon)

	r = suite.request(http.MethodDelete, "http://example.com/v1/categories/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "http://example.com/v1/categories/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryInUse() {
	groceries := suite.createTestCategory("Groceries", client.CategoryExpense)
	suite.createTestTransaction(client.TransactionRequest{
		Description: "Market",
		Amount:      decimal.NewFromInt(50),
		Date:        types.NewDate(2024, 1, 5),
		Type:        client.TypeExpense,
		CategoryID:  groceries.ID,
	})

	r := suite.request(http.MethodDelete, "http://example.com/v1/categories/"+groceries.ID, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestAccounts() {
	r := suite.request(http.MethodPost, "http://example.com/v1/accounts", map[string]any{
		"name":           "Checking",
		"initialBalance": 1500.5,
		"type":           "CHECKING",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.Response[client.Account]
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Require().NotNil(created.Data)
	suite.Assert().True(decimal.NewFromFloat(1500.5).Equal(created.Data.CurrentBalance))

	r = suite.request(http.MethodPut, "http://example.com/v1/accounts/"+created.Data.ID, v1.AccountEditable{Name: "Wallet", Type: client.AccountCash})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var list v1.ListResponse[client.Account]
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(client.AccountCash, list.Data[0].Type)

	r = suite.request(http.MethodDelete, "http://example.com/v1/accounts/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCreditCards() {
	r := suite.request(http.MethodPost, "http://example.com/v1/credit-cards", v1.CreditCardEditable{
		Name:       "Gold",
		ClosingDay: 3,
		DueDay:     10,
		LimitValue: decimal.NewFromInt(5000),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.Response[client.CreditCard]
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Require().NotNil(created.Data)
	suite.Assert().True(decimal.NewFromInt(5000).Equal(created.Data.AvailableLimit))

	r = suite.request(http.MethodGet, "http://example.com/v1/credit-cards/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodDelete, "http://example.com/v1/credit-cards/"+created.Data.ID, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestResourceValidation() {
	tests := []struct {
		name  string
		url   string
		body  any
		field string
	}{
		{"Short category name", "http://example.com/v1/categories", map[string]any{"name": "G", "type": "EXPENSE"}, "name"},
		{"Transfer category", "http://example.com/v1/categories", map[string]any{"name": "Moving", "type": "TRANSFER"}, "type"},
		{"Negative balance", "http://example.com/v1/accounts", map[string]any{"name": "Checking", "initialBalance": -1, "type": "CHECKING"}, "initialBalance"},
		{"Account type", "http://example.com/v1/accounts", map[string]any{"name": "Checking", "type": "CREDIT"}, "type"},
		{"Closing day zero", "http://example.com/v1/credit-cards", map[string]any{"name": "Gold", "closingDay": 0, "dueDay": 10}, "closingDay"},
		{"Due day too late", "http://example.com/v1/credit-cards", map[string]any{"name": "Gold", "closingDay": 3, "dueDay": 32}, "dueDay"},
		{"Negative limit", "http://example.com/v1/credit-cards", map[string]any{"name": "Gold", "closingDay": 3, "dueDay": 10, "limitValue": -100}, "limitValue"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPost, tt.url, tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var e formErrorResponse
		test.DecodeResponse(suite.T(), &r, &e)
		suite.Assert().Contains(e.Fields, tt.field, tt.name)
		suite.Assert().Len(e.Fields, 1, tt.name)
	}
}

func (suite *TestSuiteStandard) TestResourceErrors() {
	r := suite.request(http.MethodGet, "http://example.com/v1/categories?type=TRANSFER", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPost, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodGet, "http://example.com/v1/accounts/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodGet, "http://example.com/v1/credit-cards/4e9b0f5c-9f4b-4b5e-8e53-3c2b3b1f7c11", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var e formErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	suite.Require().NotNil(e.Problem)
	suite.Assert().Equal("Not Found", e.Problem.Title)
}

func (suite *TestSuiteStandard) TestSession() {
	server := test.Sandbox(suite.T(), "secret")
	c, err := client.New(server.URL)
	suite.Require().Nil(err)
	suite.controller = suite.controllerFor(c)

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var e formErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	suite.Require().NotNil(e.Problem)
	suite.Assert().Equal(http.StatusUnauthorized, e.Problem.Status)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/accounts", nil, map[string]string{"Authorization": "Bearer secret"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/transaction-forms", nil, map[string]string{"Authorization": "Bearer wrong"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestFinanceAPIUnavailable() {
	server := test.Sandbox(suite.T(), "")
	c, err := client.New(server.URL)
	suite.Require().Nil(err)
	suite.controller = suite.controllerFor(c)
	server.Close()

	r := suite.request(http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestResourceOptions() {
	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories/cat-1", "OPTIONS, GET, PUT, DELETE"},
		{"http://example.com/v1/accounts", "OPTIONS, GET, POST"},
		{"http://example.com/v1/accounts/acc-1", "OPTIONS, GET, PUT, DELETE"},
		{"http://example.com/v1/credit-cards", "OPTIONS, GET, POST"},
		{"http://example.com/v1/credit-cards/card-1", "OPTIONS, GET, PUT, DELETE"},
		{"http://example.com/v1/dashboard", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodOptions, tt.url, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, r.Header().Get("allow"), tt.url)
	}
}
