package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/finance-dashboard/backend/internal/client"
	v1 "github.com/finance-dashboard/backend/internal/controllers/v1"
	"github.com/finance-dashboard/backend/internal/form"
	"github.com/finance-dashboard/backend/internal/router"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/finance-dashboard/backend/test"
	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T {
	return &v
}

type formErrorResponse struct {
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
	Problem *client.Problem   `json:"problem"`
}

// openForm opens a transaction form and returns it.
func (suite *TestSuiteStandard) openForm(body any) v1.TransactionForm {
	r := suite.request(http.MethodPost, "http://example.com/v1/transaction-forms", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionFormResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

// change sets a field of the form and returns the updated form.
func (suite *TestSuiteStandard) change(id fmt.Stringer, field string, value any) v1.TransactionForm {
	r := suite.request(http.MethodPatch, fmt.Sprintf("http://example.com/v1/transaction-forms/%s", id), map[string]any{
		"field": field,
		"value": value,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionFormResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) submit(id fmt.Stringer) httptest.ResponseRecorder {
	return suite.request(http.MethodPost, fmt.Sprintf("http://example.com/v1/transaction-forms/%s/submit", id), nil)
}

func (suite *TestSuiteStandard) TestTransactionFormOpen() {
	groceries := suite.createTestCategory("Groceries", client.CategoryExpense)
	suite.createTestCategory("Salary", client.CategoryIncome)

	f := suite.openForm(nil)

	suite.Assert().Equal(form.ModeCreate, f.Mode)
	suite.Assert().Equal(form.StateOpen, f.State)
	suite.Assert().Equal("EXPENSE", f.Values.Type)
	suite.Assert().Equal(types.Today().String(), f.Values.Date)
	suite.Assert().Equal(form.None, f.Values.AccountID)
	suite.Assert().Equal(form.None, f.Values.CreditCardID)
	suite.Assert().False(f.Values.HasInstallments)
	suite.Assert().Equal(1, f.Values.InstallmentCurrent)
	suite.Assert().Equal(1, f.Values.InstallmentTotal)
	suite.Assert().True(f.Sections.Account)
	suite.Assert().True(f.Sections.CreditCard)
	suite.Assert().Empty(f.Errors)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transaction-forms/%s/submit", f.ID), f.Links.Submit)

	suite.Require().Len(f.Categories, 1, "Only expense categories must be selectable for expenses")
	suite.Assert().Equal(groceries.ID, f.Categories[0].ID)

	r := suite.request(http.MethodGet, f.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestTransactionFormCreate() {
	groceries := suite.createTestCategory("Groceries", client.CategoryExpense)
	account := suite.createTestAccount("Checking", 1000)

	f := suite.openForm(nil)
	suite.change(f.ID, "description", "Market")
	suite.change(f.ID, "amount", "50")
	suite.change(f.ID, "date", "2024-01-05")
	suite.change(f.ID, "categoryId", groceries.ID)
	updated := suite.change(f.ID, "accountId", account.ID)

	suite.Assert().Equal("50", updated.Values.Amount)
	suite.Assert().Equal(account.ID, updated.Values.AccountID)

	r := suite.submit(f.ID)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	t := response.Data
	suite.Assert().NotEmpty(t.ID)
	suite.Assert().Equal("Market", t.Description)
	suite.Assert().True(decimal.NewFromInt(50).Equal(t.Amount))
	suite.Assert().Equal("2024-01-05", t.Date.String())
	suite.Assert().Equal("Groceries", t.CategoryName)
	suite.Assert().Equal(account.ID, *t.AccountID)
	suite.Assert().Nil(t.CreditCardID)
	suite.Assert().Nil(t.InstallmentTotal, "Disabled installments must not be sent")

	// The form is closed after a successful submission
	r = suite.request(http.MethodGet, f.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionFormInstallments() {
	groceries := suite.createTestCategory("Groceries", client.CategoryExpense)
	card := suite.createTestCreditCard("Gold")

	f := suite.openForm(nil)
	suite.change(f.ID, "description", "Television")
	suite.change(f.ID, "amount", 300)
	suite.change(f.ID, "categoryId", groceries.ID)
	suite.change(f.ID, "creditCardId", card.ID)
	suite.change(f.ID, "hasInstallments", true)
	suite.change(f.ID, "installmentCurrent", 4)
	suite.change(f.ID, "installmentTotal", 3)

	r := suite.submit(f.ID)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnprocessableEntity)

	var e formErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	suite.Assert().Contains(e.Fields, "installmentCurrent")
	suite.Assert().Contains(e.Fields, "installmentTotal")

	suite.change(f.ID, "installmentCurrent", "2")
	r = suite.submit(f.ID)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2, *response.Data.InstallmentCurrent)
	suite.Assert().Equal(3, *response.Data.InstallmentTotal)
	suite.Assert().Equal("Gold", response.Data.CreditCardName)
}

func (suite *TestSuiteStandard) TestTransactionFormValidation() {
	f := suite.openForm(nil)
	suite.change(f.ID, "description", "M")

	r := suite.submit(f.ID)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnprocessableEntity)

	var e formErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	suite.Assert().Equal(form.TooShort.Message(), e.Fields["description"])
	suite.Assert().Equal(form.NotPositive.Message(), e.Fields["amount"])
	suite.Assert().Equal(form.Missing.Message(), e.Fields["categoryId"])
	suite.Assert().Len(e.Fields, 3)

	// Errors are kept on the form and the draft is retained
	r = suite.request(http.MethodGet, f.Links.Self, nil)
	var response v1.TransactionFormResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(form.StateOpen, response.Data.State)
	suite.Assert().Equal("M", response.Data.Values.Description)
	suite.Assert().Len(response.Data.Errors, 3)
}

func (suite *TestSuiteStandard) TestTransactionFormCategoryMismatch() {
	salary := suite.createTestCategory("Salary", client.CategoryIncome)

	f := suite.openForm(nil)
	suite.change(f.ID, "description", "Market")
	suite.change(f.ID, "amount", "12.5")
	suite.change(f.ID, "categoryId", salary.ID)

	r := suite.submit(f.ID)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnprocessableEntity)

	var e formErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	suite.Assert().Equal(form.TypeMismatch.Message(), e.Fields["categoryId"])
}

func (suite *TestSuiteStandard) TestTransactionFormTypeChange() {
	groceries := suite.createTestCategory("Groceries", client.CategoryExpense)
	salary := suite.createTestCategory("Salary", client.CategoryIncome)
	account := suite.createTestAccount("Checking", 0)
	card := suite.createTestCreditCard("Gold")

	f := suite.openForm(nil)
	suite.change(f.ID, "categoryId", groceries.ID)
	suite.change(f.ID, "accountId", account.ID)
	updated := suite.change(f.ID, "creditCardId", card.ID)
	suite.Assert().Equal(form.None, updated.Values.AccountID, "Selecting a credit card must clear the account for expenses")

	updated = suite.change(f.ID, "type", "INCOME")
	suite.Assert().Equal("", updated.Values.CategoryID)
	suite.Assert().Equal(form.None, updated.Values.CreditCardID)
	suite.Assert().True(updated.Sections.Account)
	suite.Assert().False(updated.Sections.CreditCard)
	suite.Require().Len(updated.Categories, 1)
	suite.Assert().Equal(salary.ID, updated.Categories[0].ID)

	updated = suite.change(f.ID, "type", "TRANSFER")
	suite.Assert().False(updated.Sections.Account)
	suite.Assert().False(updated.Sections.CreditCard)
	suite.Assert().Len(updated.Categories, 2, "Transfers can use all categories")
}

func (suite *TestSuiteStandard) TestTransactionFormEdit() {
	groceries := suite.createTestCategory("Groceries", client.CategoryExpense)
	card := suite.createTestCreditCard("Gold")
	transaction := suite.createTestTransaction(client.TransactionRequest{
		Description:        "Television",
		Amount:             decimal.NewFromInt(300),
		Date:               types.NewDate(2024, 1, 5),
		Type:               client.TypeExpense,
		CategoryID:         groceries.ID,
		CreditCardID:       &card.ID,
		InstallmentCurrent: ptr(2),
		InstallmentTotal:   ptr(3),
	})

	f := suite.openForm(v1.TransactionFormOpen{TransactionID: transaction.ID})
	suite.Assert().Equal(form.ModeEdit, f.Mode)
	suite.Assert().Equal(transaction.ID, f.TransactionID)
	suite.Assert().Equal("Television", f.Values.Description)
	suite.Assert().Equal("300", f.Values.Amount)
	suite.Assert().Equal("2024-01-05", f.Values.Date)
	suite.Assert().Equal(card.ID, f.Values.CreditCardID)
	suite.Assert().Equal(form.None, f.Values.AccountID)
	suite.Assert().True(f.Values.HasInstallments)
	suite.Assert().Equal(2, f.Values.InstallmentCurrent)

	suite.change(f.ID, "description", "TV")
	r := suite.submit(f.ID)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
	suite.Assert().Equal("TV", response.Data.Description)
	suite.Assert().Equal(3, *response.Data.InstallmentTotal)
}

func (suite *TestSuiteStandard) TestTransactionFormEditNotFound() {
	r := suite.request(http.MethodPost, "http://example.com/v1/transaction-forms", v1.TransactionFormOpen{TransactionID: "4e9b0f5c-9f4b-4b5e-8e53-3c2b3b1f7c11"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var e formErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	suite.Require().NotNil(e.Problem)
	suite.Assert().Equal(http.StatusNotFound, e.Problem.Status)
}

func (suite *TestSuiteStandard) TestTransactionFormSubmissionRejected() {
	groceries := suite.createTestCategory("Groceries", client.CategoryExpense)

	f := suite.openForm(nil)
	suite.change(f.ID, "description", "Market")
	suite.change(f.ID, "amount", "50")
	suite.change(f.ID, "categoryId", groceries.ID)

	// The category is deleted after the form has loaded the categories
	suite.Require().Nil(suite.api.Categories().Delete(suite.T().Context(), groceries.ID))

	r := suite.submit(f.ID)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var e formErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	suite.Require().NotNil(e.Problem)
	suite.Assert().Equal(http.StatusBadRequest, e.Problem.Status)

	// The draft is retained for a retry
	r = suite.request(http.MethodGet, f.Links.Self, nil)
	var response v1.TransactionFormResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(form.StateOpen, response.Data.State)
	suite.Assert().Equal("Market", response.Data.Values.Description)
}

func (suite *TestSuiteStandard) TestTransactionFormCancel() {
	f := suite.openForm(nil)

	r := suite.request(http.MethodDelete, f.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, f.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionFormErrors() {
	f := suite.openForm(nil)

	tests := []struct {
		name   string
		method string
		url    string
		body   any
		status int
	}{
		{"Invalid ID", http.MethodGet, "http://example.com/v1/transaction-forms/not-a-uuid", nil, http.StatusBadRequest},
		{"Unknown form", http.MethodGet, "http://example.com/v1/transaction-forms/4e9b0f5c-9f4b-4b5e-8e53-3c2b3b1f7c11", nil, http.StatusNotFound},
		{"Unknown field", http.MethodPatch, f.Links.Self, map[string]any{"field": "note", "value": "x"}, http.StatusBadRequest},
		{"No field", http.MethodPatch, f.Links.Self, map[string]any{"value": "x"}, http.StatusBadRequest},
		{"Wrong value type", http.MethodPatch, f.Links.Self, map[string]any{"field": "paid", "value": "yes"}, http.StatusBadRequest},
		{"Empty body", http.MethodPatch, f.Links.Self, "", http.StatusBadRequest},
		{"Broken body", http.MethodPost, "http://example.com/v1/transaction-forms", `{"transactionId": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionFormOptions() {
	f := suite.openForm(nil)

	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1/transaction-forms", "OPTIONS, POST"},
		{f.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{f.Links.Submit, "OPTIONS, POST"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodOptions, tt.url, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, r.Header().Get("allow"), tt.url)
	}
}

// financeAPI is a finance API that holds transaction submissions until
// they are released.
type financeAPI struct {
	started chan struct{}
	release chan struct{}
}

func (f financeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/categories":
		fmt.Fprint(w, `[{"id": "cat-1", "name": "Groceries", "type": "EXPENSE"}]`)
	case r.Method == http.MethodPost && r.URL.Path == "/api/transactions":
		f.started <- struct{}{}
		<-f.release
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": "tx-1", "description": "Market", "amount": 50, "date": "2024-01-05", "type": "EXPENSE", "categoryId": "cat-1"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (suite *TestSuiteStandard) TestTransactionFormSubmissionInFlight() {
	api := financeAPI{started: make(chan struct{}), release: make(chan struct{})}
	server := httptest.NewServer(api)
	defer server.Close()

	c, err := client.New(server.URL)
	suite.Require().Nil(err)
	suite.controller = suite.controllerFor(c)

	f := suite.openForm(nil)
	suite.Require().Len(f.Categories, 1)
	suite.change(f.ID, "description", "Market")
	suite.change(f.ID, "amount", "50")
	suite.change(f.ID, "categoryId", "cat-1")

	// A single router is used for all concurrent requests
	baseURL, _ := url.Parse("http://example.com")
	r, teardown, err := router.Config(baseURL)
	suite.Require().Nil(err)
	defer teardown()
	router.AttachRoutes(suite.controller, r.Group("/"))

	serve := func(method, target string, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		r.ServeHTTP(recorder, req)
		return recorder
	}

	var wg sync.WaitGroup
	var first *httptest.ResponseRecorder
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = serve(http.MethodPost, f.Links.Submit, "")
	}()

	<-api.started

	second := serve(http.MethodPost, f.Links.Submit, "")
	suite.Assert().Equal(http.StatusConflict, second.Code, "A second submission must be rejected while the first is in flight")

	change := serve(http.MethodPatch, f.Links.Self, `{"field": "description", "value": "Bakery"}`)
	suite.Assert().Equal(http.StatusConflict, change.Code, "The draft must not change while it is submitted")

	close(api.release)
	wg.Wait()

	suite.Assert().Equal(http.StatusCreated, first.Code, first.Body.String())
}
