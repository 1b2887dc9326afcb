package domain

import (
	"fmt"
	"messager/errors"
	"strconv"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return isUsername(fl.Field().String())
	})
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= limit
	})
	return v
}

// Validate checks the struct tags of a command before it reaches storage.
func Validate(cmd any) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}

// isUsername accepts printable ASCII without whitespace.
func isUsername(s string) bool {
	for _, char := range s {
		if char > unicode.MaxASCII || !unicode.IsPrint(char) || unicode.IsSpace(char) {
			return false
		}
	}
	return true
}
