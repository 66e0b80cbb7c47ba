package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Violation is one failed rule on a named body field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Violations []Violation

func (v Violations) HasErrors() bool {
	return len(v) > 0
}

// Rule checks one constraint on a field value. It returns a message and false
// when the value violates the constraint.
type Rule func(value string) (string, bool)

// Check binds one body field to its rule list. Optional fields skip their
// rules when the value is empty.
type Check struct {
	Field    string
	Value    string
	Optional bool
	Rules    []Rule
}

// Schema is the ordered rule table for one route body.
type Schema []Check

// Validate runs every rule of every check and collects all violations in
// declaration order. It never stops at the first failure.
func (s Schema) Validate() Violations {
	var out Violations
	for _, c := range s {
		value := strings.TrimSpace(c.Value)
		if c.Optional && value == "" {
			continue
		}
		for _, rule := range c.Rules {
			if msg, ok := rule(value); !ok {
				out = append(out, Violation{Field: c.Field, Message: msg})
			}
		}
	}
	return out
}

func Required(value string) (string, bool) {
	if value == "" {
		return "is required", false
	}
	return "", true
}

// MinLen skips empty values so a missing required field reports a single
// "is required" violation instead of two.
func MinLen(n int) Rule {
	return func(value string) (string, bool) {
		if value != "" && len(value) < n {
			return fmt.Sprintf("must be at least %d characters", n), false
		}
		return "", true
	}
}

func MaxLen(n int) Rule {
	return func(value string) (string, bool) {
		if len(value) > n {
			return fmt.Sprintf("must be at most %d characters", n), false
		}
		return "", true
	}
}

func Email(value string) (string, bool) {
	if value == "" {
		return "", true
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return "must be a valid email address", false
	}
	return "", true
}

// URL accepts absolute http(s) URLs and site-relative paths, which is what
// the upload endpoint hands back.
func URL(value string) (string, bool) {
	if value == "" {
		return "", true
	}
	if strings.HasPrefix(value, "/") {
		return "", true
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "must be a valid URL", false
	}
	return "", true
}
