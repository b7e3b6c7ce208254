package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/formkeeper/internal/forms"
)

// List prints every registered user. Passwords are never shown.
func (a *App) List(ctx context.Context) error {
	users, err := a.accounts.Load(ctx)
	if err != nil {
		a.logger.Error(ctx, "error loading users", "error", err)
		fmt.Fprintln(a.out, forms.Message(err))
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users registered.")
		return nil
	}
	for i, u := range users {
		fmt.Fprintf(a.out, "%d. %s <%s>\n", i+1, u.Username, u.Email)
	}
	return nil
}

// Reset removes every stored user after confirmation and logs out.
func (a *App) Reset(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, "Delete all registered users?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.accounts.Reset(ctx); err != nil {
		a.logger.Error(ctx, "error clearing users", "error", err)
		fmt.Fprintln(a.out, forms.Message(err))
		return err
	}

	a.userName = ""
	fmt.Fprintln(a.out, "All users removed")
	return nil
}
