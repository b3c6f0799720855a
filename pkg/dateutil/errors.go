package dateutil

import "errors"

var (
	ErrEmptyInput  = errors.New("dateutil: empty date string")
	ErrInvalidDate = errors.New("dateutil: invalid date")
)
