package v1

import (
	"encoding/json"
	"fmt"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/form"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionFormOpen is the body for opening a transaction form.
type TransactionFormOpen struct {
	TransactionID string `json:"transactionId" example:"3f0c2b53-1b1e-4a53-9c43-9e2a7ad4b1aa"` // ID of the transaction to edit. If empty, a new transaction is created
}

// TransactionFormEvent is the change of a single form field.
type TransactionFormEvent struct {
	Field string          `json:"field" binding:"required" example:"amount"`  // Name of the field
	Value json.RawMessage `json:"value" swaggertype:"string" example:"12.50"` // New value of the field
}

type TransactionFormLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transaction-forms/7a1e1a9b-4bd8-4a6f-a1f4-5e8b2d06a6c3"`          // The form itself
	Submit string `json:"submit" example:"https://example.com/api/v1/transaction-forms/7a1e1a9b-4bd8-4a6f-a1f4-5e8b2d06a6c3/submit"` // Endpoint to submit the form
}

// TransactionForm is the view of a transaction form.
type TransactionForm struct {
	ID            uuid.UUID            `json:"id" example:"7a1e1a9b-4bd8-4a6f-a1f4-5e8b2d06a6c3"`
	Mode          form.Mode            `json:"mode" example:"create"`                                                  // Does the form create a new transaction or edit an existing one?
	State         form.State           `json:"state" example:"open"`                                                   // Lifecycle state of the form
	TransactionID string               `json:"transactionId,omitempty" example:"3f0c2b53-1b1e-4a53-9c43-9e2a7ad4b1aa"` // ID of the edited transaction
	Values        form.Widget          `json:"values"`                                                                 // Values of the form widgets
	Sections      form.Sections        `json:"sections"`                                                               // Visibility of the payment source sections
	Categories    []client.Category    `json:"categories"`                                                             // Categories that can be selected for the type
	Errors        map[string]string    `json:"errors"`                                                                 // Errors of the last validation, by field
	Links         TransactionFormLinks `json:"links"`
}

func newTransactionForm(c *gin.Context, s form.Snapshot) TransactionForm {
	url := fmt.Sprintf("%s/v1/transaction-forms/%s", httputil.BaseURL(c), s.ID)

	return TransactionForm{
		ID:            s.ID,
		Mode:          s.Mode,
		State:         s.State,
		TransactionID: s.TransactionID,
		Values:        form.WidgetOf(s.Draft),
		Sections:      form.SectionsFor(s.Draft.Type),
		Categories:    form.FilterCategories(s.Draft.Type, s.Categories),
		Errors:        s.Errors.Messages(),
		Links: TransactionFormLinks{
			Self:   url,
			Submit: url + "/submit",
		},
	}
}

type TransactionFormResponse struct {
	Data  *TransactionForm `json:"data"`                                                          // Data for the form
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *client.Transaction `json:"data"`                                                          // Data for the transaction
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
