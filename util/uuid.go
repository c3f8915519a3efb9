// Package util provides utility functions for the pizza store.
package util

import "github.com/google/uuid"

// GenerateUUID returns a random RFC4122 v4 UUID string.
// It returns an empty string if the system entropy source fails.
func GenerateUUID() string {
	u, err := uuid.NewRandom()
	if err != nil {
		return ""
	}
	return u.String()
}
