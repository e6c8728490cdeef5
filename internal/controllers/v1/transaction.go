package v1

import (
	"net/http"

	"github.com/finance-dashboard/backend/internal/dashboard"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
		r.OPTIONS("/:id/mark-as-paid", co.OptionsTransactionMarkAsPaid)
		r.POST("/:id/mark-as-paid", co.MarkTransactionAsPaid)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID of the transaction"
// @Router			/v1/transactions/{id}/mark-as-paid [options]
func (co Controller) OptionsTransactionMarkAsPaid(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get transactions
// @Description	Returns the transactions of a period that are shown in the tab and match the search, together with the totals of the period
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		502			{object}	httpError
// @Param			startDate	query		string	false	"First day of the period, YYYY-MM-DD"
// @Param			endDate		query		string	false	"Last day of the period, YYYY-MM-DD"
// @Param			tab			query		string	false	"One of all, INCOME, EXPENSE, pending"
// @Param			search		query		string	false	"Search for this text in description and category name"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.BindQuery(&filter)

	period, tab, err := filter.parse(types.Today())
	if err != nil {
		fail(c, err)
		return
	}

	transactions, err := co.api(c).Transactions().Period(c.Request.Context(), period)
	if err != nil {
		fail(c, err)
		return
	}

	stats := dashboard.StatsOf(transactions)
	c.JSON(http.StatusOK, TransactionListResponse{
		Data:  dashboard.Filter(transactions, tab, filter.Search),
		Stats: &stats,
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, err := co.api(c).Transactions().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	err := co.api(c).Transactions().Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Mark transaction as paid
// @Description	Marks a pending transaction as paid
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id}/mark-as-paid [post]
func (co Controller) MarkTransactionAsPaid(c *gin.Context) {
	transaction, err := co.api(c).Transactions().MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}
