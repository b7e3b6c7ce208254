// Package forms holds the submit logic of the registration and login
// forms: the all-fields-required guard, re-validation of every field and
// the calls into the account service. Presentation lives in the CLI.
package forms

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/formkeeper/internal/accounts"
	"github.com/dmitrijs2005/formkeeper/internal/validation"
)

// RegistrationForm is the mutable state of the registration form.
type RegistrationForm struct {
	Username      string
	Email         string
	Password      string
	PasswordCheck string
	TermsAccepted bool
}

// Reset clears every field.
func (f *RegistrationForm) Reset() {
	*f = RegistrationForm{}
}

func (f *RegistrationForm) registration() validation.Registration {
	return validation.Registration{
		Username:      f.Username,
		Email:         f.Email,
		Password:      f.Password,
		PasswordCheck: f.PasswordCheck,
		TermsAccepted: f.TermsAccepted,
	}
}

type LoginForm struct {
	Username string
	Password string
}

func (f *LoginForm) Reset() {
	*f = LoginForm{}
}

// ValidationError is returned when a submitted form fails field rules.
type ValidationError struct {
	Report validation.Report
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, fr := range e.Report.Failed() {
		msgs = append(msgs, string(fr.Field)+": "+fr.Result.Message)
	}
	return "invalid form: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the failed rules to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Report.Err()
}

// Accounts is the part of accounts.Service the handler needs.
type Accounts interface {
	Register(ctx context.Context, candidate accounts.User) (accounts.User, error)
	Login(ctx context.Context, username, password string) (accounts.User, error)
}

type Handler struct {
	accounts Accounts
}

func NewHandler(a Accounts) *Handler {
	return &Handler{accounts: a}
}

// SubmitRegistration validates f and registers the user. The form is
// reset only when the user was stored.
func (h *Handler) SubmitRegistration(ctx context.Context, f *RegistrationForm) (accounts.User, error) {
	if err := validation.Required(f.Username, f.Email, f.Password, f.PasswordCheck); err != nil {
		return accounts.User{}, err
	}

	if rep := f.registration().Validate(); !rep.Valid() {
		return accounts.User{}, &ValidationError{Report: rep}
	}

	u, err := h.accounts.Register(ctx, accounts.NewUser(f.Username, f.Email, f.Password))
	if err != nil {
		return accounts.User{}, err
	}

	f.Reset()
	return u, nil
}

// SubmitLogin checks the credentials in f. The form is reset on success.
func (h *Handler) SubmitLogin(ctx context.Context, f *LoginForm) (accounts.User, error) {
	if err := validation.Required(f.Username, f.Password); err != nil {
		return accounts.User{}, err
	}

	username := validation.Trim(f.Username)
	password := validation.Trim(f.Password)

	u, err := h.accounts.Login(ctx, username, password)
	if err != nil {
		return accounts.User{}, err
	}

	f.Reset()
	return u, nil
}

// userFacing errors are shown to the user with their own text.
var userFacing = []error{
	validation.ErrAllFieldsRequired,
	accounts.ErrDuplicateUsername,
	accounts.ErrUsernameNotFound,
	accounts.ErrIncorrectPassword,
}

// Message returns the text to show the user for err. For a ValidationError
// it is the message of the first failed field.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		if failed := verr.Report.Failed(); len(failed) > 0 {
			return failed[0].Result.Message
		}
		return "invalid form"
	}

	for _, known := range userFacing {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	if errors.Is(err, accounts.ErrCorruptRecords) {
		return "stored user records are unreadable"
	}
	return "something went wrong, please try again"
}
