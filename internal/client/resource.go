package client

import (
	"context"
	"net/http"
	"net/url"
)

// Resource provides the CRUD operations the finance API offers for
// a resource type T that is written with a request body of type R.
type Resource[T, R any] struct {
	c    *Client
	path string
}

// List returns all resources.
func (r Resource[T, R]) List(ctx context.Context) ([]T, error) {
	var list []T
	err := r.c.do(ctx, http.MethodGet, r.path, nil, nil, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// Get returns the resource with the ID.
func (r Resource[T, R]) Get(ctx context.Context, id string) (T, error) {
	var resource T
	err := r.c.do(ctx, http.MethodGet, r.detail(id), nil, nil, &resource)
	return resource, err
}

// Create creates a new resource.
func (r Resource[T, R]) Create(ctx context.Context, request R) (T, error) {
	var resource T
	err := r.c.do(ctx, http.MethodPost, r.path, nil, request, &resource)
	return resource, err
}

// Update replaces the resource with the ID.
func (r Resource[T, R]) Update(ctx context.Context, id string, request R) (T, error) {
	var resource T
	err := r.c.do(ctx, http.MethodPut, r.detail(id), nil, request, &resource)
	return resource, err
}

// Delete deletes the resource with the ID.
func (r Resource[T, R]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.detail(id), nil, nil, nil)
}

func (r Resource[T, R]) detail(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// Categories returns the category resource.
func (c *Client) Categories() Resource[Category, CategoryRequest] {
	return Resource[Category, CategoryRequest]{c: c, path: "/api/categories"}
}

// Accounts returns the account resource.
func (c *Client) Accounts() Resource[Account, AccountRequest] {
	return Resource[Account, AccountRequest]{c: c, path: "/api/accounts"}
}

// CreditCards returns the credit card resource.
func (c *Client) CreditCards() Resource[CreditCard, CreditCardRequest] {
	return Resource[CreditCard, CreditCardRequest]{c: c, path: "/api/credit-cards"}
}

// TransactionService extends the transaction resource with the
// transaction specific operations of the finance API.
type TransactionService struct {
	Resource[Transaction, TransactionRequest]
}

// Transactions returns the transaction service.
func (c *Client) Transactions() TransactionService {
	return TransactionService{Resource[Transaction, TransactionRequest]{c: c, path: "/api/transactions"}}
}

// Period returns all transactions with a date in the period.
//
// For the zero Period, all transactions are returned.
func (s TransactionService) Period(ctx context.Context, p Period) ([]Transaction, error) {
	if p.IsZero() {
		return s.List(ctx)
	}

	query := url.Values{}
	query.Set("startDate", p.Start.String())
	query.Set("endDate", p.End.String())

	var list []Transaction
	err := s.c.do(ctx, http.MethodGet, s.path+"/period", query, nil, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// Pending returns all transactions that are not paid yet.
func (s TransactionService) Pending(ctx context.Context) ([]Transaction, error) {
	var list []Transaction
	err := s.c.do(ctx, http.MethodGet, s.path+"/pending", nil, nil, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// MarkPaid marks the transaction with the ID as paid.
func (s TransactionService) MarkPaid(ctx context.Context, id string) (Transaction, error) {
	var t Transaction
	err := s.c.do(ctx, http.MethodPatch, s.detail(id)+"/mark-as-paid", nil, nil, &t)
	return t, err
}
