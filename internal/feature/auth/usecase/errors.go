// Package usecase implements the business logic for the auth feature.
package usecase

import "payments_backend/internal/shared/apperr"

var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "user not found")

	// ErrEmailAlreadyExists is returned when creating a user with an email that is taken.
	ErrEmailAlreadyExists = apperr.New(apperr.KindValidation, "email already registered")

	// ErrEmailTaken is returned when updating a user to an email held by another user.
	ErrEmailTaken = apperr.New(apperr.KindValidation, "email already registered for another user")

	// ErrInvalidCredentials is returned by Login for an unknown email, an inactive user or a wrong password.
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthorized, "invalid email or password")

	// ErrInvalidRole is returned for a role other than admin or operator.
	ErrInvalidRole = apperr.New(apperr.KindValidation, "role must be admin or operator")

	// ErrPasswordTooShort is returned when a password is shorter than minPasswordLength.
	ErrPasswordTooShort = apperr.New(apperr.KindValidation, "password must be at least 6 characters long")

	// ErrNameRequired is returned when a user name is blank.
	ErrNameRequired = apperr.New(apperr.KindValidation, "name is required")
)
