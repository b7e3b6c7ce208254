package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/formkeeper/internal/forms"
	"github.com/dmitrijs2005/formkeeper/internal/validation"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// feedback prints the inline message of a failed field check.
func (a *App) feedback(res validation.Result) {
	if !res.Valid {
		fmt.Fprintf(a.out, "  ! %s\n", res.Message)
	}
}

// Register walks through the registration form. Each field is checked as
// soon as it is entered; the form is submitted after the terms question
// and validated again as a whole.
func (a *App) Register(ctx context.Context) error {
	var (
		f   forms.RegistrationForm
		err error
	)

	if f.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	a.feedback(validation.Username(f.Username))

	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	a.feedback(validation.Email(f.Email))

	if f.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	a.feedback(validation.Password(f.Password, f.Username))

	if f.PasswordCheck, err = getPassword(a.reader, "Repeat password", a.out); err != nil {
		return err
	}
	a.feedback(validation.PasswordMatch(f.Password, f.PasswordCheck))

	if f.TermsAccepted, err = getConfirmation(a.reader, "Accept terms and conditions?", a.out); err != nil {
		return err
	}
	a.feedback(validation.TermsAccepted(f.TermsAccepted))

	u, err := a.forms.SubmitRegistration(ctx, &f)
	if err != nil {
		fmt.Fprintln(a.out, forms.Message(err))
		return err
	}

	fmt.Fprintf(a.out, "Registered %s. You can log in now.\n", u.Username)
	return nil
}

// Login asks for credentials and, on success, shows the user in the prompt.
func (a *App) Login(ctx context.Context) error {
	var (
		f   forms.LoginForm
		err error
	)

	if f.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}

	u, err := a.forms.SubmitLogin(ctx, &f)
	if err != nil {
		fmt.Fprintln(a.out, forms.Message(err))
		return err
	}

	a.userName = u.Username
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Username)
	return nil
}

// Logout forgets the logged-in user. Nothing is stored, so there is
// nothing else to clear.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.logger.Info(ctx, "user logged out", "username", a.userName)
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
