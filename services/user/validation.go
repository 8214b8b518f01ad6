package user

import (
	"fmt"
	"regexp"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,24}$`)

	// Password rules are checked separately so the error can say which one failed.
	passwordUpper = regexp.MustCompile(`[A-Z]`)
	passwordLower = regexp.MustCompile(`[a-z]`)
	passwordDigit = regexp.MustCompile(`[0-9]`)
)

// ValidateRegistration checks the signup form fields and returns the first
// violation it finds.
func ValidateRegistration(req RegistrationRequest) error {
	if !usernamePattern.MatchString(req.Username) {
		return fmt.Errorf("username must be 3-24 characters: letters, digits, underscore")
	}
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("invalid email address")
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return fmt.Errorf("invalid phone number")
	}
	return ValidatePassword(req.Password)
}

// ValidatePassword enforces the password policy: at least 8 characters with
// an uppercase letter, a lowercase letter, and a digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if !passwordUpper.MatchString(password) {
		return fmt.Errorf("password must contain an uppercase letter")
	}
	if !passwordLower.MatchString(password) {
		return fmt.Errorf("password must contain a lowercase letter")
	}
	if !passwordDigit.MatchString(password) {
		return fmt.Errorf("password must contain a digit")
	}
	return nil
}
