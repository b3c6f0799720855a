// Package validator checks loosely-typed records against a declarative list
// of field rules and reports every violation in a single pass.
//
// A FieldRule names a field, whether it is required, a built-in check Kind and
// optional custom predicates. Validate walks the rules in order and collects
// failures into ValidationErrors, a slice type that satisfies the error
// interface. On success the original Record is returned unchanged.
//
// # Built-in kinds
//
//   - KindName           – strings must not contain digits
//   - KindEmail          – strings must look like local@domain.tld
//   - KindDate           – strings must parse as a calendar date
//   - KindNonEmptyArray  – a slice with no empty elements
//   - KindStringArray    – a slice of non-empty strings
//   - KindNumberArray    – a slice of finite numbers
//   - KindNone           – no built-in check
//
// A value is empty when it is nil, the empty string or a zero-length slice.
// Empty required fields report "<field> is required" and skip every other
// check; empty optional fields are skipped silently.
//
// # Usage
//
//	record := validator.Record{"name": "John3", "email": "john@example.com"}
//
//	_, err := validator.Validate(ctx, record,
//	    validator.Require("name", validator.KindName),
//	    validator.Require("email", validator.KindEmail).
//	        WithCheckContext(checker.Predicate()),
//	    validator.Optional("tags", validator.KindStringArray),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fmt.Println(verrs.Messages()) // [name should not contain numbers]
//	}
//
// The per-kind checks are also exported as Rule constructors (NoDigits,
// EmailSyntax, DateString, NonEmptyItems, StringItems, NumberItems) and can be
// evaluated directly with Apply.
//
// # Error Handling
//
// ValidationErrors is returned for constraint violations and can be detected
// with IsValidationError or errors.As. If a CheckContext predicate returns an
// error, Validate stops and returns an error wrapping ErrCheckFailed instead.
//
// Everything in the package is stateless and safe for concurrent use.
package validator
