package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy(t *testing.T) {
	tests := []struct {
		pw   string
		want error
	}{
		{"Sunny2024Beach", nil},
		{"Ab12", ErrPasswordLength},
		{"has Space12A", ErrPasswordSpaces},
		{"lowercase12", ErrPasswordUpper},
		{"UPPERCASE12", ErrPasswordLower},
		{"OnlyOne1digit", ErrPasswordDigits},
		{"Password123", ErrPasswordForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.pw, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordPolicy(tt.pw))
		})
	}
}

func TestValidate_PasswordTag(t *testing.T) {
	type req struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,password_policy"`
	}

	assert.Nil(t, Validate(req{Email: "guest@example.com", Password: "Sunny2024Beach"}))

	errs := Validate(req{Email: "nope", Password: "weak"})
	assert.Equal(t, "email", errs["Email"])
	assert.Equal(t, TagPassword, errs["Password"])
}
