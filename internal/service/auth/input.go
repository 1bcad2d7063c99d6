package auth

import (
	"strings"

	"github.com/heartmarshall/langy-backend/pkg/validate"
)

// CredentialsInput holds a username and password pair.
type CredentialsInput struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	// bcrypt ignores input beyond 72 bytes.
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Normalize trims the username. Passwords are taken verbatim.
func (i *CredentialsInput) Normalize() {
	i.Username = strings.TrimSpace(i.Username)
}

// Validate checks all fields and collects all errors.
func (i CredentialsInput) Validate() error {
	return validate.Struct(i)
}
