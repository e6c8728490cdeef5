// Package uuid wraps google/uuid so that IDs in URIs can be bound by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID that binds from path parameters.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam parses the path parameter. An empty parameter is the
// Nil UUID.
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
