package validator

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	TagPassword = "password_policy"

	minPasswordLength = 8
	maxPasswordLength = 100
	minPasswordDigits = 2
)

var validate *validator.Validate

var forbiddenPasswords = map[string]struct{}{
	"Password123": {},
	"Password":    {},
}

func init() {
	validate = validator.New()
	_ = RegisterRules(validate)
}

// RegisterRules adds the custom tags to v. The router calls it on gin's
// binding engine so `binding:` tags understand them too.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(TagPassword, func(fl validator.FieldLevel) bool {
		return PasswordPolicy(fl.Field().String()) == nil
	})
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

var (
	ErrPasswordLength    = errors.New("password must be between 8 and 100 characters")
	ErrPasswordUpper     = errors.New("password must contain an uppercase letter")
	ErrPasswordLower     = errors.New("password must contain a lowercase letter")
	ErrPasswordDigits    = errors.New("password must contain at least two digits")
	ErrPasswordSpaces    = errors.New("password must not contain spaces")
	ErrPasswordForbidden = errors.New("password is too common")
)

// PasswordPolicy returns the first rule the password breaks, or nil.
func PasswordPolicy(pw string) error {
	n := len([]rune(pw))
	if n < minPasswordLength || n > maxPasswordLength {
		return ErrPasswordLength
	}
	if strings.ContainsFunc(pw, unicode.IsSpace) {
		return ErrPasswordSpaces
	}

	var upper, lower bool
	digits := 0
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digits++
		}
	}
	if !upper {
		return ErrPasswordUpper
	}
	if !lower {
		return ErrPasswordLower
	}
	if digits < minPasswordDigits {
		return ErrPasswordDigits
	}
	if _, bad := forbiddenPasswords[pw]; bad {
		return ErrPasswordForbidden
	}
	return nil
}
