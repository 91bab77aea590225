package internal

import "errors"

var (
	ErrNoRecords     = errors.New("no records")
	ErrOrderNotFound = errors.New("order not found")

	ErrUnknownStatus = errors.New("unknown order status")
	ErrEmptyOrder    = errors.New("order has no items")

	ErrCardInvalid = errors.New("card number invalid by luhn")
)
