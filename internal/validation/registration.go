package validation

import "errors"

// Field names a registration form field.
type Field string

const (
	FieldUsername      Field = "username"
	FieldEmail         Field = "email"
	FieldPassword      Field = "password"
	FieldPasswordCheck Field = "passwordCheck"
	FieldTerms         Field = "terms"
)

// Registration holds the raw values of a registration form.
type Registration struct {
	Username      string
	Email         string
	Password      string
	PasswordCheck string
	TermsAccepted bool
}

// FieldResult pairs a field with the result of its check.
type FieldResult struct {
	Field  Field
	Result Result
}

// Report is the outcome of validating a whole registration form.
type Report struct {
	results []FieldResult
}

// Validate runs every field check. Unlike the per-field functions it never
// stops early, so the caller can show all messages at once.
func (r Registration) Validate() Report {
	return Report{results: []FieldResult{
		{FieldUsername, Username(r.Username)},
		{FieldEmail, Email(r.Email)},
		{FieldPassword, Password(r.Password, r.Username)},
		{FieldPasswordCheck, PasswordMatch(r.Password, r.PasswordCheck)},
		{FieldTerms, TermsAccepted(r.TermsAccepted)},
	}}
}

// Valid reports whether every field passed.
func (rep Report) Valid() bool {
	for _, fr := range rep.results {
		if !fr.Result.Valid {
			return false
		}
	}
	return true
}

// Results returns the per-field results in form order.
func (rep Report) Results() []FieldResult {
	out := make([]FieldResult, len(rep.results))
	copy(out, rep.results)
	return out
}

// Failed returns only the fields that did not pass.
func (rep Report) Failed() []FieldResult {
	var out []FieldResult
	for _, fr := range rep.results {
		if !fr.Result.Valid {
			out = append(out, fr)
		}
	}
	return out
}

// Result returns the result recorded for f.
func (rep Report) Result(f Field) (Result, bool) {
	for _, fr := range rep.results {
		if fr.Field == f {
			return fr.Result, true
		}
	}
	return Result{}, false
}

// Err joins the errors of all failed fields; nil when the report is valid.
func (rep Report) Err() error {
	var errs []error
	for _, fr := range rep.Failed() {
		errs = append(errs, fr.Result.Err())
	}
	return errors.Join(errs...)
}
