package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpdate = errors.New("failed to update record")

	// ErrDuplicateEmail surfaces the unique index violation on users.email.
	ErrDuplicateEmail = errors.New("email already exists")
)
