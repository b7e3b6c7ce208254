// Package cli provides the interactive formkeeper command-line client.
//
// It wires configuration, the record store backend, the account service and
// an interactive REPL. Registration prompts field by field and prints each
// field's validation message as soon as the value is entered; the whole
// form is validated again on submit.
//
// Commands:
//   - register / login / logout
//   - list: registered usernames and emails
//   - reset: remove every stored user
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
