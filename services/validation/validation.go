// Package validation checks individual form field values against typed
// rules. It is stateless and never mutates the wizard session; the driving
// form layer surfaces the returned messages.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects the rule applied to a field value after the required check.
type Kind string

const (
	KindText   Kind = "text"
	KindEmail  Kind = "email"
	KindPhone  Kind = "phone"
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

// Field describes one value to validate.
type Field struct {
	Name     string
	Kind     Kind
	Value    string
	Required bool
	Min      float64
	Max      float64
	HasRange bool
}

// Result reports the outcome for a single field.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// emailShape accepts local@domain.tld: no whitespace around a single "@",
// at least one "." after it.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var nonDigits = regexp.MustCompile(`\D`)

func invalid(message string) Result { return Result{Valid: false, Message: message} }

func valid() Result { return Result{Valid: true} }

// Validate applies the rules in precedence order: required-but-empty, then
// the kind-specific shape check.
func Validate(f Field) Result {
	trimmed := strings.TrimSpace(f.Value)
	if f.Required && trimmed == "" {
		return invalid("This field is required")
	}
	if trimmed == "" {
		return valid()
	}

	switch f.Kind {
	case KindEmail:
		if !emailShape.MatchString(trimmed) {
			return invalid("Please enter a valid email address")
		}
	case KindPhone:
		if !IsValidPhone(trimmed) {
			return invalid("Please enter a valid phone number")
		}
	case KindNumber:
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || (f.HasRange && (value < f.Min || value > f.Max)) {
			return invalid(fmt.Sprintf("Please enter a value between %s and %s",
				formatBound(f.Min), formatBound(f.Max)))
		}
	case KindSelect:
		// Required selects are covered by the empty check above.
	}
	return valid()
}

// IsValidEmail reports whether the value matches the expected email shape.
func IsValidEmail(email string) bool {
	return emailShape.MatchString(strings.TrimSpace(email))
}

// IsValidPhone strips all non-digit characters and requires at least ten
// digits to remain.
func IsValidPhone(phone string) bool {
	return len(nonDigits.ReplaceAllString(phone, "")) >= 10
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
