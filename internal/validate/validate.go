// Package validate runs declarative per-field rules against request input
// before any handler logic, producing an ordered list of violations.
package validate

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes a single rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule checks one field. Check receives the field's value and reports
// whether it passes.
type Rule struct {
	Field   string
	Message string
	Check   func(value string) bool
}

// Required fails on the empty string.
func Required(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return v != ""
	}}
}

// Email fails unless the value looks like an email address.
func Email(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return emailPattern.MatchString(v)
	}}
}

// MinLength fails when the value is shorter than n bytes.
func MinLength(field string, n int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return len(v) >= n
	}}
}

// Apply evaluates rules in order against the values returned by get and
// collects every violation. It has no side effects.
func Apply(get func(field string) string, rules ...Rule) []FieldError {
	var errs []FieldError
	for _, rule := range rules {
		if !rule.Check(get(rule.Field)) {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}
