// Package validation implements the registration field rules.
//
// Every function is pure: it takes raw field values, trims them the same way
// the form does, and returns a Result describing the first rule that failed.
// Displaying the message and blocking submission is the caller's job.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minUsernameUniqueChars = 2
	minPasswordLength      = 12

	// passwordSpecialChars is the set a password must draw at least one
	// character from.
	passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

	forbiddenPasswordWord = "password"
	restrictedEmailSuffix = "@example.com"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{4,}$`)

	// The negated class covers the Unicode spaces a browser treats as \s,
	// not just the ASCII ones RE2 matches with \s.
	emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
)

// Result is the outcome of a single field check. Message is empty when
// Valid is true.
type Result struct {
	Valid   bool
	Message string

	err error
}

func pass() Result {
	return Result{Valid: true}
}

func fail(err error) Result {
	return Result{Message: err.Error(), err: err}
}

// Err returns the sentinel error of the failed rule, or nil.
func (r Result) Err() error {
	return r.err
}

// Username checks the trimmed username: at least two distinct characters,
// then at least four ASCII letters or digits and nothing else.
func Username(raw string) Result {
	v := Trim(raw)

	if uniqueRunes(v) < minUsernameUniqueChars {
		return fail(ErrUsernameUniqueChars)
	}
	if !usernamePattern.MatchString(v) {
		return fail(ErrUsernameFormat)
	}
	return pass()
}

// Email checks the trimmed address shape and rejects the example.com domain.
// The domain check is case-sensitive.
func Email(raw string) Result {
	v := Trim(raw)

	if !emailPattern.MatchString(v) {
		return fail(ErrEmailFormat)
	}
	if strings.HasSuffix(v, restrictedEmailSuffix) {
		return fail(ErrEmailDomain)
	}
	return pass()
}

// Password applies the password rules in order and reports the first one
// that fails. username is the current value of the username field.
//
// An empty username is a substring of every password, so the last rule
// fails until a username is entered.
func Password(raw, username string) Result {
	v := Trim(raw)
	lower := strings.ToLower(v)

	switch {
	case utf8.RuneCountInString(v) < minPasswordLength:
		return fail(ErrPasswordLength)
	case !containsRange(v, 'a', 'z') || !containsRange(v, 'A', 'Z'):
		return fail(ErrPasswordCase)
	case !containsRange(v, '0', '9'):
		return fail(ErrPasswordDigit)
	case !strings.ContainsAny(v, passwordSpecialChars):
		return fail(ErrPasswordSpecial)
	case strings.Contains(lower, forbiddenPasswordWord):
		return fail(ErrPasswordContainsWord)
	case strings.Contains(lower, strings.ToLower(Trim(username))):
		return fail(ErrPasswordContainsUsername)
	}
	return pass()
}

// PasswordMatch compares the trimmed password and confirmation exactly.
func PasswordMatch(password, confirmation string) Result {
	if Trim(password) != Trim(confirmation) {
		return fail(ErrPasswordMismatch)
	}
	return pass()
}

// TermsAccepted fails unless the terms checkbox is ticked.
func TermsAccepted(accepted bool) Result {
	if !accepted {
		return fail(ErrTermsNotAccepted)
	}
	return pass()
}

// Required returns ErrAllFieldsRequired if any of the values is empty.
// Whitespace counts as a value here; the field rules deal with it.
func Required(values ...string) error {
	for _, v := range values {
		if v == "" {
			return ErrAllFieldsRequired
		}
	}
	return nil
}

// Trim removes leading and trailing white space the way a browser trims
// form values, which includes the byte order mark U+FEFF.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

func uniqueRunes(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func containsRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
