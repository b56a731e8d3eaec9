package utils

import "github.com/google/uuid"

// GenerateID returns a random UUID for entries, users and token ids.
func GenerateID() string {
	return uuid.New().String()
}
