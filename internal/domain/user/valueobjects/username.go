package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// usernameRegex restricts usernames to URL- and display-safe characters.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

const (
	usernameMinLength = 2
	usernameMaxLength = 63
)

// Username represents a unique account name value object
type Username struct {
	value string
}

// NewUsername creates a new Username value object with validation
func NewUsername(value string) (Username, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return Username{}, fmt.Errorf("username cannot be empty")
	}

	if len(normalized) < usernameMinLength {
		return Username{}, fmt.Errorf("username must be at least %d characters long", usernameMinLength)
	}

	if len(normalized) > usernameMaxLength {
		return Username{}, fmt.Errorf("username cannot exceed %d characters", usernameMaxLength)
	}

	if !usernameRegex.MatchString(normalized) {
		return Username{}, fmt.Errorf("username may only contain letters, digits, '.', '-' and '_'")
	}

	return Username{value: normalized}, nil
}

// String returns the string representation of the username
func (u Username) String() string {
	return u.value
}

// IsZero reports whether the username is the zero value
func (u Username) IsZero() bool {
	return u.value == ""
}

// Equals checks if two usernames are equal, ignoring case
func (u Username) Equals(other Username) bool {
	return strings.EqualFold(u.value, other.value)
}
