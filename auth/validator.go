package auth

import (
	"fmt"
	"messager/errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest holds the credentials a new identity is created from.
type RegisterRequest struct {
	Handle   string `validate:"required,alphanum,min=3,max=64"`
	Password string `validate:"required,min=12,max=72"`
}

// ValidateRegister runs before any hashing.
// Shape errors wrap ErrInvalidPayload and a weak password wraps ErrInvalidPassword.
func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if missing := missingCharClasses(req.Password); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", errors.ErrInvalidPassword, strings.Join(missing, ", "))
	}
	return nil
}

type charClass struct {
	name string
	in   func(rune) bool
}

var passwordClasses = []charClass{
	{"uppercase letter", unicode.IsUpper},
	{"lowercase letter", unicode.IsLower},
	{"digit", unicode.IsNumber},
	{"symbol", func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) }},
}

// missingCharClasses names every class the password has no character of.
func missingCharClasses(password string) []string {
	var missing []string
	for _, class := range passwordClasses {
		if strings.IndexFunc(password, class.in) < 0 {
			missing = append(missing, class.name)
		}
	}
	return missing
}
