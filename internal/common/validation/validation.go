package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MaxNameLength   = 100
	MaxReasonLength = 500
	MaxEmailLength  = 256

	MinNameLength   = 1
	MinReasonLength = 3
)

// State codes used as user-code prefixes (ISO 3166-2:IN style, two letters).
var stateCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validate is the struct-tag validator shared by request binding checks.
var validate = validator.New()

// Struct runs go-playground struct-tag validation on a request DTO.
func Struct(v interface{}) error {
	return validate.Struct(v)
}

// ValidateName checks a person's display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < MinNameLength {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", MaxNameLength)
	}
	return nil
}

// ValidateEmail checks an email address; empty is allowed (email is optional).
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email cannot exceed %d characters", MaxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateReason checks a rejection reason.
func ValidateReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if len(reason) < MinReasonLength {
		return fmt.Errorf("reason must be at least %d characters long", MinReasonLength)
	}
	if len(reason) > MaxReasonLength {
		return fmt.Errorf("reason cannot exceed %d characters", MaxReasonLength)
	}
	return nil
}

// ValidateStateCode checks a two-letter state code.
func ValidateStateCode(code string) error {
	if !stateCodeRegex.MatchString(code) {
		return fmt.Errorf("state code must be two uppercase letters")
	}
	return nil
}

// ValidateGender checks the gender marker used in user codes.
func ValidateGender(gender string) error {
	switch gender {
	case "M", "F":
		return nil
	}
	return fmt.Errorf("gender must be 'M' or 'F'")
}
