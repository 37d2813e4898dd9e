package message

import "github.com/google/uuid"

// GenerateBoundary returns a random version 4 UUID string for use as a
// multipart boundary. A collision with part content is not something that will
// happen by accident.
func GenerateBoundary() string {
	return uuid.NewString()
}
