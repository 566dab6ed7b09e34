// Package validate checks untrusted form input against per-field schemas
// before any of it reaches the store layer.
package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// ErrNotScalar flags form input that is not a single plain string: a repeated
// field, or an operator-style key like username[$ne]. Input matching it must
// never reach a store query.
var ErrNotScalar = errors.New("field is not a scalar value")

// Schema describes the constraints on one form field.
type Schema struct {
	Name     string
	MaxLen   int
	Alphanum bool
	Email    bool
}

// The three field schemas the sign-up and login forms are checked against.
var (
	Username = Schema{Name: "username", MaxLen: 20, Alphanum: true}
	Email    = Schema{Name: "email", MaxLen: 254, Email: true}
	Password = Schema{Name: "password", MaxLen: 20}
)

var alphanumRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Validate checks s against the schema and returns the accepted value. All
// fields are required; emptiness is a violation.
func (sc Schema) Validate(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%s is required", sc.Name)
	}
	if sc.MaxLen > 0 && len(s) > sc.MaxLen {
		return "", fmt.Errorf("%s must be at most %d characters", sc.Name, sc.MaxLen)
	}
	if sc.Alphanum && !alphanumRe.MatchString(s) {
		return "", fmt.Errorf("%s must be alphanumeric", sc.Name)
	}
	if sc.Email {
		if err := checkEmail(s); err != nil {
			return "", fmt.Errorf("%s: %w", sc.Name, err)
		}
	}
	return s, nil
}

// checkEmail accepts bare addr-spec addresses with a dotted domain: a@b.com
// passes, a@b and display-name forms do not.
func checkEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return errors.New("invalid email address")
	}
	at := strings.LastIndex(s, "@")
	if !strings.Contains(s[at+1:], ".") {
		return errors.New("invalid email address")
	}
	return nil
}

// ScalarField pulls one field out of a parsed form, rejecting anything that
// is not a single scalar string. A submission carrying username[$ne]=x
// arrives under a different key; refusing bracketed variants of the expected
// name keeps query operators out of the store layer. A field that is simply
// absent comes back as "" with no error so callers can report it as missing.
func ScalarField(form url.Values, name string) (string, error) {
	for key := range form {
		if key != name && strings.HasPrefix(key, name+"[") {
			return "", ErrNotScalar
		}
	}
	vs := form[name]
	if len(vs) == 0 {
		return "", nil
	}
	if len(vs) > 1 {
		return "", ErrNotScalar
	}
	return vs[0], nil
}
