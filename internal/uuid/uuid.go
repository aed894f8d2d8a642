// Package uuid wraps google/uuid so that resource IDs can be bound from
// URIs and query strings.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID that gin can bind from a parameter.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam parses the parameter with google/uuid.Parse. An empty
// parameter is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}

// Ptr returns a pointer to the wrapped UUID, or nil if u is the Nil UUID.
//
// Optional filters are passed as pointers, an unset query parameter
// must not filter for the Nil UUID.
func (u UUID) Ptr() *google_uuid.UUID {
	if u == Nil {
		return nil
	}

	id := u.UUID
	return &id
}
