package validate_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/SimratKaur2/comp2535-assignment1/internal/validate"
)

func TestUsernameSchema(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"simple", "alice", true},
		{"mixed case and digits", "Alice42", true},
		{"single char", "a", true},
		{"exactly 20 chars", strings.Repeat("a", 20), true},
		{"empty", "", false},
		{"21 chars", strings.Repeat("a", 21), false},
		{"underscore", "bad_user", false},
		{"space", "bad user", false},
		{"non-ascii", "héllo", false},
		{"mongo operator", "{$ne:null}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validate.Username.Validate(tt.input)
			if tt.ok && err != nil {
				t.Errorf("Validate(%q) returned error: %v", tt.input, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("Validate(%q) accepted, want rejection", tt.input)
			}
			if tt.ok && got != tt.input {
				t.Errorf("Validate(%q) = %q, want input back", tt.input, got)
			}
		})
	}
}

func TestEmailSchema(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"plain", "a@b.com", true},
		{"subdomain", "user@mail.example.org", true},
		{"plus tag", "user+tag@example.com", true},
		{"empty", "", false},
		{"no at", "not-an-email", false},
		{"no dot in domain", "a@b", false},
		{"display name form", "Alice <a@b.com>", false},
		{"two ats", "a@@b.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validate.Email.Validate(tt.input)
			if tt.ok && err != nil {
				t.Errorf("Validate(%q) returned error: %v", tt.input, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("Validate(%q) accepted, want rejection", tt.input)
			}
		})
	}
}

func TestPasswordSchema(t *testing.T) {
	if _, err := validate.Password.Validate("secret1"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
	if _, err := validate.Password.Validate(""); err == nil {
		t.Error("empty password accepted")
	}
	if _, err := validate.Password.Validate(strings.Repeat("x", 21)); err == nil {
		t.Error("21-char password accepted")
	}
	// Passwords are hashed, not queried; arbitrary characters are fine.
	if _, err := validate.Password.Validate(`p@$$w"rd{}`); err != nil {
		t.Errorf("symbol-heavy password rejected: %v", err)
	}
}

func TestScalarField(t *testing.T) {
	form := url.Values{"username": {"alice"}}
	got, err := validate.ScalarField(form, "username")
	if err != nil || got != "alice" {
		t.Errorf("ScalarField = (%q, %v), want (alice, nil)", got, err)
	}

	// A missing field is empty, not an error; presence is the caller's check.
	got, err = validate.ScalarField(form, "email")
	if err != nil || got != "" {
		t.Errorf("missing field = (%q, %v), want (\"\", nil)", got, err)
	}
}

func TestScalarFieldRejectsRepeatedValues(t *testing.T) {
	form := url.Values{"username": {"alice", "bob"}}
	if _, err := validate.ScalarField(form, "username"); !errors.Is(err, validate.ErrNotScalar) {
		t.Errorf("repeated field error = %v, want ErrNotScalar", err)
	}
}

func TestScalarFieldRejectsOperatorKeys(t *testing.T) {
	// username[$ne]=x is the classic query-operator smuggle; it must taint
	// the username field even though the plain key is absent.
	form := url.Values{"username[$ne]": {"x"}}
	if _, err := validate.ScalarField(form, "username"); !errors.Is(err, validate.ErrNotScalar) {
		t.Errorf("operator key error = %v, want ErrNotScalar", err)
	}

	// The taint is per-field: an unrelated field stays readable.
	form = url.Values{"username[$ne]": {"x"}, "email": {"a@b.com"}}
	got, err := validate.ScalarField(form, "email")
	if err != nil || got != "a@b.com" {
		t.Errorf("unrelated field = (%q, %v), want (a@b.com, nil)", got, err)
	}
}
