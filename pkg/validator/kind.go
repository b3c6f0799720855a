package validator

import (
	"fmt"
	"strconv"
)

// Kind selects the built-in check applied to a field value.
type Kind uint8

const (
	KindNone Kind = iota
	KindName
	KindEmail
	KindDate
	KindNonEmptyArray
	KindStringArray
	KindNumberArray
)

var kindNames = [...]string{
	KindNone:          "default",
	KindName:          "name",
	KindEmail:         "email",
	KindDate:          "date",
	KindNonEmptyArray: "arrayDefault",
	KindStringArray:   "arrayString",
	KindNumberArray:   "arrayNumber",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind resolves a kind tag. The empty string maps to KindNone.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindNone, nil
	}
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// rule returns the built-in check for the kind, or false when the kind has none.
func (k Kind) rule(field string, value any) (Rule, bool) {
	switch k {
	case KindName:
		return NoDigits(field, value), true
	case KindEmail:
		return EmailSyntax(field, value), true
	case KindDate:
		return DateString(field, value), true
	case KindNonEmptyArray:
		return NonEmptyItems(field, value), true
	case KindStringArray:
		return StringItems(field, value), true
	case KindNumberArray:
		return NumberItems(field, value), true
	default:
		return Rule{}, false
	}
}
