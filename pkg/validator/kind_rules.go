package validator

import (
	"regexp"

	"github.com/samber/lo"

	"github.com/flxhelpers/flxhelpers/pkg/dateutil"
)

var (
	digitRegex = regexp.MustCompile(`[0-9]`)

	// Deliberately loose: local@domain.tld with no whitespace and a single @.
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NoDigits fails when value is a string containing a digit.
// Non-string values pass.
func NoDigits(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := asString(value)
			return !ok || !digitRegex.MatchString(s)
		},
		Error: newError(field, "should not contain numbers", "validation.name"),
	}
}

// EmailSyntax fails when value is a string not shaped like local@domain.tld.
// No DNS work happens here; see package email for domain checks.
func EmailSyntax(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := asString(value)
			return !ok || emailShapeRegex.MatchString(s)
		},
		Error: newError(field, "must be a valid email address", "validation.email"),
	}
}

// DateString fails when value is a string that does not parse as a calendar date.
func DateString(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := asString(value)
			return !ok || dateutil.IsValid(s)
		},
		Error: newError(field, "must be a valid date", "validation.date"),
	}
}

// NonEmptyItems fails when value is not a slice or holds an empty element.
func NonEmptyItems(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			items, ok := asItems(value)
			return ok && lo.NoneBy(items, IsEmpty)
		},
		Error: newError(field, "must be a non-empty array with valid values", "validation.array_values"),
	}
}

// StringItems fails when value is not a slice of non-empty strings.
func StringItems(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			items, ok := asItems(value)
			return ok && lo.EveryBy(items, isNonEmptyString)
		},
		Error: newError(field, "must be an array of non-empty strings", "validation.array_strings"),
	}
}

// NumberItems fails when value is not a slice of finite numbers.
func NumberItems(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			items, ok := asItems(value)
			return ok && lo.EveryBy(items, isFiniteNumber)
		},
		Error: newError(field, "must be an array of valid numbers", "validation.array_numbers"),
	}
}
