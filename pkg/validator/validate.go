package validator

import (
	"context"
	"errors"
	"fmt"
)

// Record is a loosely-typed input, typically a decoded JSON object.
type Record map[string]any

// FieldRule is a declarative constraint on one field of a Record.
type FieldRule struct {
	Field    string
	Required bool
	Kind     Kind

	// Check is an optional synchronous predicate over the field value.
	Check func(value any) bool

	// CheckContext is an optional predicate that may block, e.g. on I/O.
	// Returning an error aborts validation.
	CheckContext func(ctx context.Context, value any) (bool, error)
}

// Require returns a rule for a field that must be present and non-empty.
func Require(field string, kind Kind) FieldRule {
	return FieldRule{Field: field, Required: true, Kind: kind}
}

// Optional returns a rule whose checks run only when the field has a value.
func Optional(field string, kind Kind) FieldRule {
	return FieldRule{Field: field, Kind: kind}
}

func (r FieldRule) WithCheck(fn func(value any) bool) FieldRule {
	r.Check = fn
	return r
}

func (r FieldRule) WithCheckContext(fn func(ctx context.Context, value any) (bool, error)) FieldRule {
	r.CheckContext = fn
	return r
}

// Validate evaluates rules against record in declaration order and returns
// the record untouched when every rule passes.
//
// All rules are evaluated; failures are collected into ValidationErrors in
// rule order. For a single field at most one built-in, one custom and one
// context-aware custom error are reported. A required field that is empty
// reports only "<field> is required"; an optional empty field is skipped.
//
// Rules run sequentially: the CheckContext of one rule returns before the
// next rule is looked at.
func Validate(ctx context.Context, record Record, rules ...FieldRule) (Record, error) {
	var errs ValidationErrors

	for _, rule := range rules {
		value := record[rule.Field]

		if IsEmpty(value) {
			if rule.Required {
				errs.Add(newError(rule.Field, "is required", "validation.required"))
			}
			continue
		}

		if builtin, ok := rule.Kind.rule(rule.Field, value); ok && !builtin.Check() {
			errs.Add(builtin.Error)
		}

		if rule.Check != nil && !rule.Check(value) {
			errs.Add(newError(rule.Field, "failed custom validation", "validation.custom"))
		}

		if rule.CheckContext != nil {
			ok, err := rule.CheckContext(ctx, value)
			if err != nil {
				return nil, errors.Join(ErrCheckFailed, fmt.Errorf("field %q: %w", rule.Field, err))
			}
			if !ok {
				errs.Add(newError(rule.Field, "failed async custom validation", "validation.custom_async"))
			}
		}
	}

	if !errs.IsEmpty() {
		return nil, errs
	}

	return record, nil
}
