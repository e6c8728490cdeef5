// Package dashboard computes the figures shown on the dashboard and in
// the transaction list from data of the finance API.
package dashboard

import (
	"sort"
	"strings"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// OtherCategory is the name used for expenses without a category name.
const OtherCategory = "Other"

const (
	topCategories = 5
	recentCount   = 5
)

// Tab is a predefined filter of the transaction list.
type Tab string

const (
	TabAll     Tab = "all"
	TabIncome  Tab = "INCOME"
	TabExpense Tab = "EXPENSE"
	TabPending Tab = "pending"
)

// Tabs lists all tabs.
var Tabs = []Tab{TabAll, TabIncome, TabExpense, TabPending}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	return slices.Contains(Tabs, t)
}

// Filter returns the transactions shown in the tab that match the search
// term. The term is matched case-insensitively against description and
// category name and may contain * as wildcard.
func Filter(transactions []client.Transaction, tab Tab, search string) []client.Transaction {
	pattern := ""
	if search = strings.TrimSpace(search); search != "" {
		pattern = "*" + strings.ToLower(search) + "*"
	}

	filtered := make([]client.Transaction, 0, len(transactions))
	for _, t := range transactions {
		switch tab {
		case TabIncome, TabExpense:
			if string(t.Type) != string(tab) {
				continue
			}
		case TabPending:
			if t.Paid {
				continue
			}
		}

		if pattern != "" &&
			!glob.Glob(pattern, strings.ToLower(t.Description)) &&
			!glob.Glob(pattern, strings.ToLower(t.CategoryName)) {
			continue
		}

		filtered = append(filtered, t)
	}

	return filtered
}

// Stats are the totals of a list of transactions.
type Stats struct {
	Income       decimal.Decimal `json:"income" example:"5000" swaggertype:"number"`    // Sum of all income
	Expense      decimal.Decimal `json:"expense" example:"3120.5" swaggertype:"number"` // Sum of all expenses
	PendingCount int             `json:"pendingCount" example:"2"`                      // Number of unpaid transactions
}

// StatsOf returns the totals of the transactions.
func StatsOf(transactions []client.Transaction) Stats {
	s := Stats{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, t := range transactions {
		switch t.Type {
		case client.TypeIncome:
			s.Income = s.Income.Add(t.Amount)
		case client.TypeExpense:
			s.Expense = s.Expense.Add(t.Amount)
		}

		if !t.Paid {
			s.PendingCount++
		}
	}

	return s
}

// CategoryTotal is the sum of expenses in one category.
type CategoryTotal struct {
	Name   string          `json:"name" example:"Groceries"`
	Amount decimal.Decimal `json:"amount" example:"412.3" swaggertype:"number"`
}

// Summary is the data shown on the dashboard.
type Summary struct {
	TotalBalance       decimal.Decimal
	Income             decimal.Decimal
	Expense            decimal.Decimal
	CreditUsed         decimal.Decimal
	ExpensesByCategory []CategoryTotal
	Recent             []client.Transaction
}

// Summarize computes the dashboard from all accounts and credit cards and
// the transactions of the period shown.
func Summarize(accounts []client.Account, cards []client.CreditCard, transactions []client.Transaction) Summary {
	stats := StatsOf(transactions)

	s := Summary{
		TotalBalance:       decimal.Zero,
		Income:             stats.Income,
		Expense:            stats.Expense,
		CreditUsed:         decimal.Zero,
		ExpensesByCategory: ExpensesByCategory(transactions, topCategories),
		Recent:             Recent(transactions, recentCount),
	}

	for _, a := range accounts {
		s.TotalBalance = s.TotalBalance.Add(a.CurrentBalance)
	}

	for _, c := range cards {
		s.CreditUsed = s.CreditUsed.Add(c.UsedLimit)
	}

	return s
}

// ExpensesByCategory returns the n categories with the highest expenses,
// highest first.
func ExpensesByCategory(transactions []client.Transaction, n int) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		if t.Type != client.TypeExpense {
			continue
		}

		name := t.CategoryName
		if name == "" {
			name = OtherCategory
		}

		i, ok := index[name]
		if !ok {
			i = len(totals)
			index[name] = i
			totals = append(totals, CategoryTotal{Name: name, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})

	if len(totals) > n {
		totals = totals[:n]
	}

	return totals
}

// Recent returns the n latest transactions, latest first.
func Recent(transactions []client.Transaction, n int) []client.Transaction {
	recent := make([]client.Transaction, len(transactions))
	copy(recent, transactions)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})

	if len(recent) > n {
		recent = recent[:n]
	}

	return recent
}
