package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"recruitment-portal-backend/pkg/validation"
)

type registrationFields struct {
	FirstName      string `validate:"valid_name"`
	PersonalNumber string `validate:"personal_number"`
	Username       string `validate:"valid_username"`
	Password       string `validate:"strong_password"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidators(t *testing.T) {
	v := newValidator()

	valid := registrationFields{
		FirstName:      "Anna-Lena",
		PersonalNumber: "19900101-1234",
		Username:       "alice_99",
		Password:       "Abc12345!",
	}
	assert.NoError(t, v.Struct(valid))

	cases := []struct {
		name   string
		mutate func(*registrationFields)
	}{
		{"digits in name", func(f *registrationFields) { f.FirstName = "Al1ce" }},
		{"personal number without dash", func(f *registrationFields) { f.PersonalNumber = "199001011234" }},
		{"personal number too short", func(f *registrationFields) { f.PersonalNumber = "900101-1234" }},
		{"username with spaces", func(f *registrationFields) { f.Username = "al ice" }},
		{"username too short", func(f *registrationFields) { f.Username = "al" }},
		{"password without symbol", func(f *registrationFields) { f.Password = "Abc12345" }},
		{"password without upper case", func(f *registrationFields) { f.Password = "abc12345!" }},
		{"password too short", func(f *registrationFields) { f.Password = "Ab1!" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := valid
			tc.mutate(&fields)
			assert.Error(t, v.Struct(fields))
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()

	err := v.Struct(registrationFields{
		FirstName:      "Alice",
		PersonalNumber: "bad",
		Username:       "alice",
		Password:       "Abc12345!",
	})
	assert.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "personal identification number")
	assert.Contains(t, messages[0], "YYYYMMDD-XXXX")
}
