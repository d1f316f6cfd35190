// Package usecase implements the business logic for the customers feature.
package usecase

import "payments_backend/internal/shared/apperr"

var (
	// ErrCustomerNotFound is returned when no customer has the given id.
	ErrCustomerNotFound = apperr.New(apperr.KindNotFound, "customer not found")

	// ErrNationalIDTaken is returned when the national ID belongs to another customer.
	ErrNationalIDTaken = apperr.New(apperr.KindValidation, "national ID already registered")

	// ErrNameRequired is returned when a customer name is blank.
	ErrNameRequired = apperr.New(apperr.KindValidation, "name is required")
)
