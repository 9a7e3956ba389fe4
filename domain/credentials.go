package domain

import (
	"comms/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Credentials is read-only to the core; backends interpret the fields.
type Credentials struct {
	Protocol string `validate:"required"`
	Username string `validate:"required"`
	Secret   string `validate:"required"`
	Server   string `validate:"omitempty,hostname_rfc1123|ip"`
	Port     int    `validate:"omitempty,min=1,max=65535"`
}

func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}
	return nil
}

// String never prints the secret.
func (c Credentials) String() string {
	if c.Server == "" {
		return fmt.Sprintf("%s:%s", c.Protocol, c.Username)
	}
	return fmt.Sprintf("%s:%s@%s", c.Protocol, c.Username, c.Server)
}
