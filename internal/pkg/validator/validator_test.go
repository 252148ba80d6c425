package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"a@x.com",
		"user.name+tag@example.co.uk",
		"UPPER@EXAMPLE.COM",
	}
	invalid := []string{
		"",
		"plain",
		"@nouser.com",
		"user@",
		"user@domain",
	}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPhoneNumber("+14155552671"))
	assert.True(t, IsValidPhoneNumber("0812 3456 789"))
	assert.True(t, IsValidPhoneNumber("021-555-0123"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("call-me-maybe"))
	assert.False(t, IsValidPhoneNumber(""))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("0194e2f5-8a5a-7bbe-bd44-552390d2e3b1"))
	assert.True(t, IsValidUUID("C56A4180-65AA-42EC-A945-5FD21DEC0538"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2024-03-01")
	assert.True(t, ok)
	_, ok = IsValidDate("01-03-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-01-15T10:30:00+07:00")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-01-15 10:30")
	assert.False(t, ok)
}
