package services

import "errors"

var (
	// ErrNotFound is returned when an entity lookup does not resolve.
	ErrNotFound = errors.New("entity not found")

	// ErrCategoryInUse blocks deletion of a category that posts still reference.
	ErrCategoryInUse = errors.New("category is referenced by existing posts")

	// ErrEmailTaken is returned when registering with an already used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
