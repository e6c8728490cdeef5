package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrInUse            = errors.New("the resource is still referenced by transactions and cannot be deleted")
)

// Validation errors
var (
	ErrNameTooShort           = errors.New("the name must be at least 2 characters long")
	ErrTypeInvalid            = errors.New("the type is not valid")
	ErrBalanceNegative        = errors.New("the initial balance must not be negative")
	ErrLimitNegative          = errors.New("the limit must not be negative")
	ErrDayInvalid             = errors.New("closing and due day must be between 1 and 31")
	ErrAmountNotPositive      = errors.New("the amount must be greater than zero")
	ErrDateMissing            = errors.New("the date must be set")
	ErrPaymentSourceExclusive = errors.New("an expense is paid either from an account or with a credit card, not both")
	ErrInstallmentRange       = errors.New("installmentCurrent and installmentTotal must both be set, at least 1, and the current installment must not be greater than the total")
	ErrCategoryTypeMismatch   = errors.New("the category type does not match the transaction type")
	ErrReferenceNotFound      = errors.New("a referenced resource does not exist")
)
