package services

import "errors"

var (
	ErrEmptyCart     = errors.New("Cart empty")
	ErrInvalidItem   = errors.New("Invalid item: quantity must be positive and price non-negative")
	ErrInvalidStatus = errors.New("Unknown order status")
	ErrOrderNotFound = errors.New("Order not found")
)
