// Package uuid wraps github.com/google/uuid so that IDs can be bound from
// query strings and URI parameters by gin.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

// ErrInvalid is returned when a parameter is set but is not a valid UUID.
var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

// UUID is a google/uuid UUID that implements gin's BindUnmarshaler.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam implements gin's binding.BindUnmarshaler for
// query and URI parameters. An empty parameter yields Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalid
	}

	*u = UUID{parsed}
	return nil
}

// IsSet reports if the UUID is anything but the Nil UUID.
func (u UUID) IsSet() bool {
	return u != Nil
}
