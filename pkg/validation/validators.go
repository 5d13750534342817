// Package validation holds the custom field validators the delivery layer
// registers on top of the standard binding tags. The core re-validates only
// identity and role invariants; string shape is rejected here, before a
// request ever reaches a service.
package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters (any script), spaces, apostrophes and hyphens.
	nameRegex = regexp.MustCompile(`^[\p{L} '-]+$`)

	// Swedish-style personal identification number: YYYYMMDD-XXXX.
	personalNumberRegex = regexp.MustCompile(`^[0-9]{8}-[0-9]{4}$`)

	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("personal_number", ValidPersonalNumber)
	_ = v.RegisterValidation("valid_username", ValidUsername)
	_ = v.RegisterValidation("strong_password", StrongPassword)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPersonalNumber validates the YYYYMMDD-XXXX personal number layout.
// Checksum verification is deliberately not attempted here.
func ValidPersonalNumber(fl validator.FieldLevel) bool {
	return personalNumberRegex.MatchString(fl.Field().String())
}

// ValidUsername restricts usernames to word characters, 3-30 long.
func ValidUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// StrongPassword requires at least 8 characters with one upper, one lower,
// one digit and one symbol.
func StrongPassword(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if len(val) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range val {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
