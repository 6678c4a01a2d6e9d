package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Asha Patel"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("x", MaxNameLength+1)))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail(""))
	assert.NoError(t, ValidateEmail("asha@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("a@b"))
	assert.Error(t, ValidateEmail(strings.Repeat("x", MaxEmailLength)+"@example.com"))
}

func TestValidateReason(t *testing.T) {
	assert.NoError(t, ValidateReason("incomplete documents"))
	assert.Error(t, ValidateReason(""))
	assert.Error(t, ValidateReason("no"))
	assert.Error(t, ValidateReason(strings.Repeat("x", MaxReasonLength+1)))
}

func TestValidateStateCode(t *testing.T) {
	assert.NoError(t, ValidateStateCode("GJ"))
	assert.NoError(t, ValidateStateCode("MH"))
	assert.Error(t, ValidateStateCode("gj"))
	assert.Error(t, ValidateStateCode("GUJ"))
	assert.Error(t, ValidateStateCode(""))
}

func TestValidateGender(t *testing.T) {
	assert.NoError(t, ValidateGender("M"))
	assert.NoError(t, ValidateGender("F"))
	assert.Error(t, ValidateGender("m"))
	assert.Error(t, ValidateGender(""))
}
