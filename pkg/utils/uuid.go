package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateUsername derives a username from an email address (part before @)
func GenerateUsername(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

// GenerateTemplateID generates an id for a custom template
func GenerateTemplateID() string {
	return "custom-" + strings.ToLower(uuid.New().String()[:8])
}
