// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"

	"bitacora/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	// MinPasswordLength matches the original account policy.
	MinPasswordLength = 6
	MaxNameLength     = 100
	MaxTitleLength    = 200
	MaxContentLength  = 10000
)

// ValidateEmail checks if an email address is syntactically valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email must be a valid address")
	}
	return nil
}

// ValidateName checks the display name constraints.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLength)
	}
	return nil
}

// ValidatePassword checks the password length constraints.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateTitle checks the post title constraints.
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLength)
	}
	return nil
}

// ValidateContent checks the body length shared by posts and comments.
func ValidateContent(content string) error {
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if len(content) > MaxContentLength {
		return fmt.Errorf("content must not exceed %d characters", MaxContentLength)
	}
	return nil
}

// Violations accumulates per-field validation failures so a response can list
// every violated field instead of stopping at the first one.
type Violations struct {
	fields []models.FieldViolation
}

// Check records a violation for field when err is non-nil.
func (v *Violations) Check(field string, err error) {
	if err != nil {
		v.fields = append(v.fields, models.FieldViolation{Field: field, Message: err.Error()})
	}
}

// Require records a violation when value is empty.
func (v *Violations) Require(field, value string) {
	if value == "" {
		v.fields = append(v.fields, models.FieldViolation{Field: field, Message: field + " is required"})
	}
}

// Err returns an aggregated validation AppError, or nil if nothing failed.
func (v *Violations) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return models.NewFieldValidationError(v.fields)
}
