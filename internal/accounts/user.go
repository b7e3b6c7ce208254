// Package accounts keeps the list of registered users: lookup, duplicate
// detection on registration and credential matching on login.
//
// The pure functions operate on a Users value; Service loads and persists
// that value through a recordstore.Store.
package accounts

import (
	"strings"

	"github.com/dmitrijs2005/formkeeper/internal/validation"
)

// User is one registered account. Username and Email are stored lowercase;
// the password is kept as entered (trimmed), in plaintext.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Users is the registered accounts in registration order.
type Users []User

// NewUser normalizes raw form values into a User.
func NewUser(username, email, password string) User {
	return User{
		Username: normalize(username),
		Email:    normalize(email),
		Password: validation.Trim(password),
	}
}

func normalize(s string) string {
	return strings.ToLower(validation.Trim(s))
}

// FindByUsername returns the first user whose username equals username,
// ignoring case.
func FindByUsername(list Users, username string) (User, bool) {
	want := strings.ToLower(username)
	for _, u := range list {
		if strings.ToLower(u.Username) == want {
			return u, true
		}
	}
	return User{}, false
}

// Register returns a new list with candidate appended. The input list is
// not modified.
func Register(list Users, candidate User) (Users, error) {
	if _, ok := FindByUsername(list, candidate.Username); ok {
		return nil, ErrDuplicateUsername
	}

	out := make(Users, len(list), len(list)+1)
	copy(out, list)
	return append(out, candidate), nil
}

// Authenticate finds username and compares password exactly.
func Authenticate(list Users, username, password string) (User, error) {
	u, ok := FindByUsername(list, username)
	if !ok {
		return User{}, ErrUsernameNotFound
	}
	if u.Password != password {
		return User{}, ErrIncorrectPassword
	}
	return u, nil
}
