package accounts

import "errors"

var (
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrUsernameNotFound  = errors.New("username not found")
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrCorruptRecords means the stored value is not a JSON user list.
	ErrCorruptRecords = errors.New("stored user records are corrupt")
)
