package domain

import "errors"

var (
	// ErrNotFound is returned when an entity id does not resolve, including
	// a return call against a rental that is not in the active set.
	ErrNotFound = errors.New("not found")

	// ErrValidation wraps all input rejections; nothing is mutated when a
	// request fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrCustomerHasRentals refuses deletion of a customer referenced by any
	// rental, active or returned.
	ErrCustomerHasRentals = errors.New("customer has rental history")
)
