package password

import (
	"errors"

	"github.com/google/uuid"
)

// NewID returns a random (version 4) UUID in canonical string form.
func NewID() string {
	return uuid.NewString()
}

// ParseID parses s as a UUID.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidID, err)
	}
	return id, nil
}
