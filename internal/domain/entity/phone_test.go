package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhoneNumber(t *testing.T) {
	valid := []string{
		"0712345678",
		"0100000000",
		"0999999999",
	}
	for _, phone := range valid {
		assert.True(t, ValidPhoneNumber(phone), "expected %s to be valid", phone)
	}

	// Too short, too long, wrong leading digit, international format,
	// whitespace, letters.
	invalid := []string{
		"",
		"071234567",
		"07123456789",
		"1712345678",
		"+254712345678",
		"07123 45678",
		"07123456ab",
	}
	for _, phone := range invalid {
		assert.False(t, ValidPhoneNumber(phone), "expected %s to be invalid", phone)
	}
}

func TestLoginEmail(t *testing.T) {
	assert.Equal(t, "0712345678@owner.internal", LoginEmail("0712345678", AccountTypeOwner))
	assert.Equal(t, "0798765432@client.internal", LoginEmail("0798765432", AccountTypeClient))
}

func TestAccountType_IsValid(t *testing.T) {
	assert.True(t, AccountTypeOwner.IsValid())
	assert.True(t, AccountTypeClient.IsValid())
	assert.False(t, AccountType("merchant").IsValid())
}
