// Package password contains utilities for managing passwords.
package password

import (
	"errors"
	"regexp"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	minimumLength      = 8
	maximumLength      = 150
	minimumEntropyBits = 50
)

var (
	letterRe = regexp.MustCompile(`\pL`)
	digitRe  = regexp.MustCompile(`[0-9]`)
)

var (
	ErrTooShort = errors.New("password must be at least 8 characters long")
	ErrTooLong  = errors.New("password must be at most 150 characters long")
	ErrNoLetter = errors.New("password must contain at least one letter")
	ErrNoDigit  = errors.New("password must contain at least one digit")
	ErrTooWeak  = errors.New("password is too weak")
)

// ValidatePassword reports why a password is not acceptable, or nil.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minimumLength {
		return ErrTooShort
	}
	if n > maximumLength {
		return ErrTooLong
	}
	if !letterRe.MatchString(password) {
		return ErrNoLetter
	}
	if !digitRe.MatchString(password) {
		return ErrNoDigit
	}

	if err := passwordvalidator.Validate(password, minimumEntropyBits); err != nil {
		return errors.Join(ErrTooWeak, err)
	}

	return nil
}
