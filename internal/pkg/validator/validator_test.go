package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"a+b@example.co",
	}
	invalid := []string{
		"",
		"no-at-sign",
		"user@",
		"@example.com",
		"user@example",
	}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("01890a5d-ac96-774b-bcce-b302099a8057"))
	// v4 is rejected: version nibble must be 7
	assert.False(t, IsValidUUID("9b2b7a5e-6f1f-4a43-9f4b-6a2b9f1e2d3c"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("28-02-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("09:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("0900"))
	assert.False(t, IsValidClockTime(""))
}

func TestIsValidWorkerCode(t *testing.T) {
	assert.True(t, IsValidWorkerCode("1234-5678"))
	assert.False(t, IsValidWorkerCode("12345678"))
	assert.False(t, IsValidWorkerCode("1234-567"))
	assert.False(t, IsValidWorkerCode("abcd-efgh"))
}

func TestIsInSlice(t *testing.T) {
	values := []string{"ordinary", "weekend", "holiday"}
	assert.True(t, IsInSlice("weekend", values))
	assert.False(t, IsInSlice("Weekend", values))
	assert.False(t, IsInSlice("", values))
}
