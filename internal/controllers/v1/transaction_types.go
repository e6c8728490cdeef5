package v1

import (
	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/dashboard"
	"github.com/finance-dashboard/backend/internal/types"
)

// TransactionQueryFilter contains the query parameters for the transaction list.
type TransactionQueryFilter struct {
	StartDate string `form:"startDate" example:"2024-01-01"` // First day of the period. Defaults to the first day of the current month
	EndDate   string `form:"endDate" example:"2024-01-31"`   // Last day of the period. Defaults to the last day of the current month
	Tab       string `form:"tab" example:"pending"`          // One of all, INCOME, EXPENSE, pending. Defaults to all
	Search    string `form:"search" example:"market"`        // Search for this text in description and category name
}

// parse returns the period and tab of the filter.
func (f TransactionQueryFilter) parse(today types.Date) (client.Period, dashboard.Tab, error) {
	period := client.MonthPeriod(today)

	if f.StartDate != "" || f.EndDate != "" {
		start, err := types.ParseDate(f.StartDate)
		if err != nil {
			return client.Period{}, "", errPeriodInvalid
		}

		end, err := types.ParseDate(f.EndDate)
		if err != nil {
			return client.Period{}, "", errPeriodInvalid
		}

		period = client.Period{Start: start, End: end}
	}

	tab := dashboard.TabAll
	if f.Tab != "" {
		tab = dashboard.Tab(f.Tab)
		if !tab.Valid() {
			return client.Period{}, "", errTabInvalid
		}
	}

	return period, tab, nil
}

type TransactionListResponse struct {
	Data  []client.Transaction `json:"data"`                                                          // List of transactions matching the filter
	Stats *dashboard.Stats     `json:"stats"`                                                         // Totals of all transactions in the period, regardless of tab and search
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
