// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"regexp"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidatePassword checks if a password meets the account requirements.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLen)
	}
	return nil
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidateFullName checks display-name constraints.
func ValidateFullName(name string) error {
	if name == "" {
		return fmt.Errorf("full name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("full name must not exceed 100 characters")
	}
	return nil
}
