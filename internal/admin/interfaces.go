package admin

import "context"

// SchemaInitializer ensures the users and entries tables exist.
type SchemaInitializer interface {
	InitializeSchema(ctx context.Context) error
}

// PasswordReader reads a secret after showing prompt.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}
