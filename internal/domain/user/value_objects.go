package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")
	ErrEmptyFullName   = errors.New("full name is required")
	ErrFullNameTooLong = errors.New("full name is too long (max 100 characters)")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address; accounts are unique per address regardless of case.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

// bcrypt ignores input beyond this many bytes
const maxPasswordBytes = 72

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > maxPasswordBytes {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

func NewFullName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyFullName
	}
	if utf8.RuneCountInString(s) > 100 {
		return "", ErrFullNameTooLong
	}
	return s, nil
}
