package validation

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// formats handles format-level checks (email) so the rule set stays declarative.
var formats = validator.New()

// Errors maps a field name to the messages of its violated rules.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Error is returned when a payload violates at least one rule. Handlers map
// it to a 422 response carrying the field map.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string { return "validation failed" }

// Rule is one declarative {field, check, message} triple. Check reports
// whether the rule holds; a non-nil error means the check itself failed
// (for example a database lookup) and aborts evaluation.
type Rule struct {
	Field   string
	Message string
	Check   func(ctx context.Context) (bool, error)
}

// Apply evaluates every rule and collects violations per field. All rules
// run even after a failure so the caller gets the complete field map.
func Apply(ctx context.Context, rules ...Rule) error {
	fields := Errors{}
	for _, r := range rules {
		ok, err := r.Check(ctx)
		if err != nil {
			return err
		}
		if !ok {
			fields.Add(r.Field, r.Message)
		}
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// Required fails when the value is absent or blank.
func Required(field string, val *string, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		return val != nil && strings.TrimSpace(*val) != "", nil
	}}
}

// RequiredIfPresent is the partial-update relaxation of Required: an absent
// value passes, a present blank one fails.
func RequiredIfPresent(field string, val *string, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		return val == nil || strings.TrimSpace(*val) != "", nil
	}}
}

// MinLen fails when a present value is shorter than min characters.
func MinLen(field string, val *string, min int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		return val == nil || len(*val) >= min, nil
	}}
}

// MaxLen fails when a present value is longer than max characters.
func MaxLen(field string, val *string, max int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		return val == nil || len(*val) <= max, nil
	}}
}

// Email fails when a present, non-empty value is not a valid address.
func Email(field string, val *string, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		if val == nil || *val == "" {
			return true, nil
		}
		return formats.Var(*val, "email") == nil, nil
	}}
}

// OneOf fails when a present value is outside the allowed set.
func OneOf(field string, val *string, allowed []string, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		if val == nil {
			return true, nil
		}
		for _, a := range allowed {
			if *val == a {
				return true, nil
			}
		}
		return false, nil
	}}
}

// WellFormed fails when the decoder flagged a present value as malformed.
func WellFormed(field string, ok bool, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		return ok, nil
	}}
}

// RequiredID fails when the identifier is absent or the zero UUID.
func RequiredID(field string, val *uuid.UUID, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		return val != nil && *val != uuid.Nil, nil
	}}
}

// RequiredTime fails when the timestamp is absent or zero.
func RequiredTime(field string, val *time.Time, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		return val != nil && !val.IsZero(), nil
	}}
}

// BeforeNow fails when a present timestamp is not strictly in the past.
func BeforeNow(field string, val *time.Time, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(context.Context) (bool, error) {
		return val == nil || val.Before(time.Now()), nil
	}}
}

// Unique wires a storage lookup into the rule set. available reports whether
// no other row already holds the value; the database unique index remains
// the source of truth under concurrent creates.
func Unique(field string, message string, available func(ctx context.Context) (bool, error)) Rule {
	return Rule{Field: field, Message: message, Check: available}
}

// Exists wires a foreign-key existence lookup into the rule set.
func Exists(field string, message string, exists func(ctx context.Context) (bool, error)) Rule {
	return Rule{Field: field, Message: message, Check: exists}
}
