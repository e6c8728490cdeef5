package v1

import (
	"net/http"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/dashboard"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the balances, the income and expenses of a month, the categories with the highest expenses and the latest transactions
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			month	query		string	false	"Year and month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, errMonthInvalid)
		return
	}

	month := types.Today()
	if !query.Month.IsZero() {
		month = types.DateOf(query.Month)
	}

	api := co.api(c)

	var (
		accounts     []client.Account
		cards        []client.CreditCard
		transactions []client.Transaction
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		accounts, err = api.Accounts().List(ctx)
		return
	})
	g.Go(func() (err error) {
		cards, err = api.CreditCards().List(ctx)
		return
	})
	g.Go(func() (err error) {
		transactions, err = api.Transactions().Period(ctx, client.MonthPeriod(month))
		return
	})

	if err := g.Wait(); err != nil {
		fail(c, err)
		return
	}

	summary := dashboard.Summarize(accounts, cards, transactions)

	c.JSON(http.StatusOK, DashboardResponse{Data: &Dashboard{
		Month:              month.Time().Format("2006-01"),
		Currency:           co.Formatter.Currency(),
		TotalBalance:       summary.TotalBalance,
		Income:             summary.Income,
		Expense:            summary.Expense,
		CreditUsed:         summary.CreditUsed,
		ExpensesByCategory: summary.ExpensesByCategory,
		Recent:             summary.Recent,
		Formatted: DashboardAmounts{
			TotalBalance: co.Formatter.Format(summary.TotalBalance),
			Income:       co.Formatter.Format(summary.Income),
			Expense:      co.Formatter.Format(summary.Expense),
			CreditUsed:   co.Formatter.Format(summary.CreditUsed),
		},
	}})
}
