package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegistration() RegistrationRequest {
	return RegistrationRequest{
		Username:    "alice_w",
		Email:       "alice@example.com",
		PhoneNumber: "+14155550100",
		Password:    "Sup3rSecret",
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	assert.NoError(t, ValidateRegistration(validRegistration()))
}

func TestValidateRegistration_Username(t *testing.T) {
	cases := map[string]string{
		"too short":      "ab",
		"too long":       "abcdefghijklmnopqrstuvwxy",
		"spaces":         "alice w",
		"special chars":  "alice!",
		"empty":          "",
		"unicode letter": "alicé",
	}
	for name, username := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRegistration()
			req.Username = username
			assert.Error(t, ValidateRegistration(req))
		})
	}
}

func TestValidateRegistration_Email(t *testing.T) {
	for _, email := range []string{"", "alice", "alice@", "@example.com", "alice@example"} {
		req := validRegistration()
		req.Email = email
		assert.Error(t, ValidateRegistration(req), "email %q should be rejected", email)
	}
}

func TestValidateRegistration_Phone(t *testing.T) {
	for _, phone := range []string{"", "123", "12345678901234567890", "555-0100", "+1 415 555"} {
		req := validRegistration()
		req.PhoneNumber = phone
		assert.Error(t, ValidateRegistration(req), "phone %q should be rejected", phone)
	}

	req := validRegistration()
	req.PhoneNumber = "4155550100"
	assert.NoError(t, ValidateRegistration(req))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sup3rSecret"))

	for _, password := range []string{
		"Sh0rt",        // under 8 characters
		"alllower1",    // no uppercase
		"ALLUPPER1",    // no lowercase
		"NoDigitsHere", // no digit
	} {
		assert.Error(t, ValidatePassword(password), "password %q should be rejected", password)
	}
}
