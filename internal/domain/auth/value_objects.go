package auth

import (
	"errors"
	"fmt"

	"booking-engine/internal/domain/user"
)

var ErrMalformedCredentials = errors.New("malformed credentials")

// Credentials is a login attempt whose email and password are at least well formed.
type Credentials struct {
	email    user.Email
	password user.Password
}

// NewCredentials reports every malformed field at once.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, emailErr := user.NewEmail(emailStr)
	password, passwordErr := user.NewPassword(passwordStr)
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrMalformedCredentials, err)
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }
