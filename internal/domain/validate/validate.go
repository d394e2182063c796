// Package validate implements the form-validation layer shared by the catalog
// workflows: an ordered list of declarative field rules interpreted by one
// generic function. All rule violations are collected (no short-circuit) and
// the normalized values are returned alongside the errors so a form can be
// redisplayed with the user's input intact.
package validate

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind selects the type coercion applied after the textual steps.
type Kind int

const (
	Text Kind = iota
	Decimal
	Integer
)

// Rule is a declarative descriptor for one form field. Steps run in order:
// trim, escape, capitalize, then the required/max-length/kind checks.
type Rule struct {
	Field      string
	Label      string // human-readable name used in messages
	Trim       bool
	Required   bool
	MaxLen     int // 0 = no limit
	Escape     bool
	Capitalize bool
	Kind       Kind
}

// FieldError is a single recoverable validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Result carries the normalized values plus any field errors. Values is always
// populated, pass or fail, so callers can redisplay the form.
type Result struct {
	Values map[string]string
	Errors []FieldError
}

// OK reports whether validation passed.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// ErrorFor returns the message for a field, or "" if the field is clean.
func (r Result) ErrorFor(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Decimal returns the value of a Decimal field. Only meaningful after OK().
func (r Result) Decimal(field string) decimal.Decimal {
	d, _ := decimal.NewFromString(r.Values[field])
	return d
}

// Int returns the value of an Integer field. Only meaningful after OK().
func (r Result) Int(field string) int {
	n, _ := strconv.Atoi(r.Values[field])
	return n
}

// Apply interprets the rules against the raw form values. Normalization
// (trim, escape, capitalize) runs regardless of pass/fail outcome so the
// stored and redisplayed values are identical.
func Apply(raw map[string]string, rules []Rule) Result {
	res := Result{Values: make(map[string]string, len(rules))}

	for _, rule := range rules {
		v := raw[rule.Field]
		if rule.Trim {
			v = strings.TrimSpace(v)
		}
		if rule.Escape {
			v = html.EscapeString(v)
		}
		if rule.Capitalize {
			v = Capitalize(v)
		}
		res.Values[rule.Field] = v

		if rule.Required && v == "" {
			res.Errors = append(res.Errors, FieldError{rule.Field, rule.Label + " must not be empty"})
			continue
		}
		if rule.MaxLen > 0 && utf8.RuneCountInString(v) > rule.MaxLen {
			res.Errors = append(res.Errors, FieldError{
				rule.Field,
				fmt.Sprintf("%s must be at most %d characters", rule.Label, rule.MaxLen),
			})
			continue
		}

		switch rule.Kind {
		case Decimal:
			if v == "" {
				res.Values[rule.Field] = "0"
				continue
			}
			d, err := decimal.NewFromString(v)
			if err != nil {
				res.Errors = append(res.Errors, FieldError{rule.Field, rule.Label + " must be a number"})
				continue
			}
			if d.IsNegative() {
				res.Errors = append(res.Errors, FieldError{rule.Field, rule.Label + " must not be negative"})
			}
		case Integer:
			if v == "" {
				res.Values[rule.Field] = "0"
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				res.Errors = append(res.Errors, FieldError{rule.Field, rule.Label + " must be a whole number"})
				continue
			}
			if n < 0 {
				res.Errors = append(res.Errors, FieldError{rule.Field, rule.Label + " must not be negative"})
			}
		}
	}

	return res
}

// Capitalize upper-cases the first rune. The rest of the string is untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
