package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/finance-dashboard/backend/internal/form"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionFormRoutes registers the routes for transaction forms with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionFormRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionFormList)
		r.POST("", co.OpenTransactionForm)
	}

	// Transaction form with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionFormDetail)
		r.GET("/:id", co.GetTransactionForm)
		r.PATCH("/:id", co.UpdateTransactionForm)
		r.DELETE("/:id", co.CancelTransactionForm)
		r.OPTIONS("/:id/submit", co.OptionsTransactionFormSubmit)
		r.POST("/:id/submit", co.SubmitTransactionForm)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transaction Forms
// @Success		204
// @Router			/v1/transaction-forms [options]
func (co Controller) OptionsTransactionFormList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transaction Forms
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transaction-forms/{id} [options]
func (co Controller) OptionsTransactionFormDetail(c *gin.Context) {
	if _, ok := co.bindForm(c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transaction Forms
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transaction-forms/{id}/submit [options]
func (co Controller) OptionsTransactionFormSubmit(c *gin.Context) {
	if _, ok := co.bindForm(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Open transaction form
// @Description	Opens a form to create a new transaction or, if a transaction ID is sent, to edit an existing transaction
// @Tags			Transaction Forms
// @Accept			json
// @Produce		json
// @Success		201		{object}	TransactionFormResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			form	body		TransactionFormOpen	false	"Transaction to edit"
// @Router			/v1/transaction-forms [post]
func (co Controller) OpenTransactionForm(c *gin.Context) {
	var open TransactionFormOpen

	// An empty body opens a form for a new transaction
	err := httputil.BindData(c, &open)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		fail(c, err)
		return
	}

	api := co.api(c)
	ctx := c.Request.Context()

	var f *form.Form
	if open.TransactionID == "" {
		f = form.NewCreate(types.Today())
	} else {
		transaction, err := api.Transactions().Get(ctx, open.TransactionID)
		if err != nil {
			fail(c, err)
			return
		}
		f = form.NewEdit(transaction)
	}

	categories, err := api.Categories().List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	f.SetCategories(categories)

	co.Forms.Add(f)

	data := newTransactionForm(c, f.Snapshot())
	c.JSON(http.StatusCreated, TransactionFormResponse{Data: &data})
}

// @Summary		Get transaction form
// @Description	Returns the current state of a transaction form
// @Tags			Transaction Forms
// @Produce		json
// @Success		200	{object}	TransactionFormResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transaction-forms/{id} [get]
func (co Controller) GetTransactionForm(c *gin.Context) {
	f, ok := co.bindForm(c)
	if !ok {
		return
	}

	data := newTransactionForm(c, f.Snapshot())
	c.JSON(http.StatusOK, TransactionFormResponse{Data: &data})
}

// @Summary		Change transaction form field
// @Description	Sets the value of a single field. Fields that depend on it are updated, e.g. changing the type clears the category.
// @Tags			Transaction Forms
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransactionFormResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			id		path		URIID					true	"ID formatted as string"
// @Param			event	body		TransactionFormEvent	true	"Changed field"
// @Router			/v1/transaction-forms/{id} [patch]
func (co Controller) UpdateTransactionForm(c *gin.Context) {
	f, ok := co.bindForm(c)
	if !ok {
		return
	}

	var change TransactionFormEvent
	err := httputil.BindData(c, &change)
	if err != nil {
		fail(c, err)
		return
	}

	event, err := form.ParseEvent(change.Field, change.Value)
	if err != nil {
		fail(c, err)
		return
	}

	err = f.Apply(event)
	if err != nil {
		fail(c, err)
		return
	}

	data := newTransactionForm(c, f.Snapshot())
	c.JSON(http.StatusOK, TransactionFormResponse{Data: &data})
}

// @Summary		Submit transaction form
// @Description	Validates the form and saves the transaction. On success, the form is closed.
// @Description	If a field is invalid, all field errors are returned and nothing is saved.
// @Tags			Transaction Forms
// @Produce		json
// @Success		200	{object}	TransactionResponse	"The transaction has been updated"
// @Success		201	{object}	TransactionResponse	"The transaction has been created"
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		422	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transaction-forms/{id}/submit [post]
func (co Controller) SubmitTransactionForm(c *gin.Context) {
	f, ok := co.bindForm(c)
	if !ok {
		return
	}

	// A started submission always runs to completion
	ctx := context.WithoutCancel(c.Request.Context())

	transaction, err := f.Submit(ctx, co.api(c).Transactions())
	if err != nil {
		fail(c, err)
		return
	}

	co.Forms.Remove(f.ID())

	code := http.StatusCreated
	if f.Snapshot().Mode == form.ModeEdit {
		code = http.StatusOK
	}

	c.JSON(code, TransactionResponse{Data: &transaction})
}

// @Summary		Cancel transaction form
// @Description	Closes the form and discards all changes
// @Tags			Transaction Forms
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transaction-forms/{id} [delete]
func (co Controller) CancelTransactionForm(c *gin.Context) {
	f, ok := co.bindForm(c)
	if !ok {
		return
	}

	err := f.Cancel()
	if err != nil {
		fail(c, err)
		return
	}

	co.Forms.Remove(f.ID())
	c.Status(http.StatusNoContent)
}

// bindForm returns the open form with the ID from the URI.
func (co Controller) bindForm(c *gin.Context) (*form.Form, bool) {
	id, ok := bindFormID(c)
	if !ok {
		return nil, false
	}

	f, err := co.Forms.Get(id.UUID)
	if err != nil {
		fail(c, err)
		return nil, false
	}

	return f, true
}
