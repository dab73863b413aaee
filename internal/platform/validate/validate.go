// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate collects field-level failures and turns them into one
// VALIDATION_ERROR.
//
// Rules never stop early: every failing field is reported, and a field may
// collect several messages. Callers that show one message per field use
// [Validator.FirstByField]. Each rule takes an optional custom message.
package validate

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/taibuivan/artistly/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string, message ...string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, pick(message, "This field is required"))
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int, message ...string) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, pick(message, fmt.Sprintf("Maximum %d characters", max)))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int, message ...string) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, pick(message, fmt.Sprintf("Minimum %d characters", min)))
	}
	return v
}

// MinDigits fails if value contains fewer than min decimal digits. Separators
// such as '+', '-' and spaces are ignored.
func (v *Validator) MinDigits(field, value string, min int, message ...string) *Validator {
	digits := 0
	for _, r := range value {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < min {
		v.add(field, pick(message, fmt.Sprintf("Must contain at least %d digits", min)))
	}
	return v
}

// Email fails unless value is a bare address such as a@b.co. Display-name
// forms ("Priya <a@b.co>") are rejected.
func (v *Validator) Email(field, value string, message ...string) *Validator {
	parsed, err := mail.ParseAddress(value)
	if err != nil || parsed.Address != value || !strings.Contains(value[strings.LastIndex(value, "@"):], ".") {
		v.add(field, pick(message, "Must be a valid email address"))
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed []string, message ...string) *Validator {
	if slices.Contains(allowed, value) {
		return v
	}
	v.add(field, pick(message, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", "))))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("rating", rating < 0 || rating > 5, "Must be between 0 and 5")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// FirstByField returns the first recorded message for every failing field.
func (v *Validator) FirstByField() map[string]string {
	out := make(map[string]string, len(v.errs))
	for _, fe := range v.errs {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

func pick(custom []string, fallback string) string {
	if len(custom) > 0 && custom[0] != "" {
		return custom[0]
	}
	return fallback
}
