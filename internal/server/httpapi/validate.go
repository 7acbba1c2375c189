package httpapi

import (
	"fmt"
	"net/mail"
	"unicode"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 128
	titleMaxLength    = 500
)

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", common.ErrorValidation)
	}
	return nil
}

// validatePassword enforces the signup password policy: 8 to 128 characters
// with at least one uppercase letter, one lowercase letter and one digit.
func validatePassword(password string) error {
	if len(password) < passwordMinLength {
		return fmt.Errorf("%w: password must be at least 8 characters", common.ErrorValidation)
	}
	if len(password) > passwordMaxLength {
		return fmt.Errorf("%w: password must be at most 128 characters", common.ErrorValidation)
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", common.ErrorValidation)
	}
	if !hasLower {
		return fmt.Errorf("%w: password must contain at least one lowercase letter", common.ErrorValidation)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", common.ErrorValidation)
	}
	return nil
}

func validateTitle(title string) error {
	if len(title) < 1 {
		return fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	if len(title) > titleMaxLength {
		return fmt.Errorf("%w: title must be at most 500 characters", common.ErrorValidation)
	}
	return nil
}
