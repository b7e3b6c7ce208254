package validation

import "errors"

var (
	// Username rules.
	ErrUsernameUniqueChars = errors.New("username must have at least two unique characters")
	ErrUsernameFormat      = errors.New("username must be at least 4 alphanumeric characters")

	// Email rules.
	ErrEmailFormat = errors.New("please enter a valid email address")
	ErrEmailDomain = errors.New("emails from 'example.com' are not allowed")

	// Password rules, in evaluation order.
	ErrPasswordLength           = errors.New("password must be at least 12 characters long")
	ErrPasswordCase             = errors.New("password must have at least one uppercase and one lowercase letter")
	ErrPasswordDigit            = errors.New("password must contain at least one number")
	ErrPasswordSpecial          = errors.New("password must contain at least one special character")
	ErrPasswordContainsWord     = errors.New("password cannot contain the word 'password'")
	ErrPasswordContainsUsername = errors.New("password cannot contain the username")
	ErrPasswordMismatch         = errors.New("passwords must match")

	ErrTermsNotAccepted = errors.New("you must accept the terms and conditions")

	// ErrAllFieldsRequired is the coarse pre-submission guard. It is not a
	// field rule and is never part of a Report.
	ErrAllFieldsRequired = errors.New("all fields are required")
)
