// Package usecase implements the payment lifecycle.
package usecase

import "payments_backend/internal/shared/apperr"

var (
	ErrPaymentNotFound  = apperr.New(apperr.KindNotFound, "payment not found")
	ErrCustomerNotFound = apperr.New(apperr.KindNotFound, "customer not found")

	ErrInvalidAmount   = apperr.New(apperr.KindValidation, "payment amount must be greater than zero")
	ErrInvalidStatus   = apperr.New(apperr.KindValidation, "status must be one of: pending paid cancelled")
	ErrCancelledSettle = apperr.New(apperr.KindValidation, "cancelled payment cannot be settled")
	ErrPaidCancel      = apperr.New(apperr.KindValidation, "paid payment cannot be cancelled")
)
