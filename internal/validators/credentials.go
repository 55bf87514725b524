package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-diary/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

const (
	MaxUsernameLength = 64
	// argon2 accepts any length; the cap bounds request cost.
	MaxPasswordLength = 1024
)

// CredentialsValidator validates models.Credentials.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var creds models.Credentials
	switch value := obj.(type) {
	case models.Credentials:
		creds = value
	case *models.Credentials:
		creds = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(creds.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
			if strings.IndexFunc(creds.Username, unicode.IsSpace) >= 0 {
				return ErrUsernameHasSpace
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
