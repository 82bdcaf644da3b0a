package validation

import (
	"errors"
	"strings"
	"testing"

	"bitacora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"a@example.com",
		"first.last@example.co.uk",
		"user+tag@sub.example.org",
		"under_score@example.io",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), "email %q", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@nodot",
		"user @example.com",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), "email %q", email)
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateName("Alice"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName(strings.Repeat("x", MaxNameLength+1)))
	assert.NoError(t, ValidateName(strings.Repeat("x", MaxNameLength)))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("secret1"))
	assert.NoError(t, ValidatePassword(strings.Repeat("x", MinPasswordLength)))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("x", MinPasswordLength-1)))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateTitle("A title"))
	assert.NoError(t, ValidateTitle(strings.Repeat("x", MaxTitleLength)))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle(strings.Repeat("x", MaxTitleLength+1)))
}

func TestValidateContent(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateContent("some body"))
	assert.NoError(t, ValidateContent(strings.Repeat("x", MaxContentLength)))
	assert.Error(t, ValidateContent(""))
	assert.Error(t, ValidateContent(strings.Repeat("x", MaxContentLength+1)))
}

func TestViolations_CollectsEveryField(t *testing.T) {
	t.Parallel()

	var v Violations
	v.Check("name", ValidateName(""))
	v.Check("email", ValidateEmail("nope"))
	v.Check("password", ValidatePassword("ok-password"))
	v.Require("title", "")
	v.Require("content", "present")

	err := v.Err()
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "title"}, fields)
}

func TestViolations_EmptyIsNil(t *testing.T) {
	t.Parallel()

	var v Violations
	v.Check("name", nil)
	v.Require("title", "present")
	assert.NoError(t, v.Err())
}
