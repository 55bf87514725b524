// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
)

const usage = `usage: go-diary-admin [flags] <command>

commands:
  migrate                 create the users and entries tables if missing
  add-user <username>     create an account, prompting for the password
  delete-user <username>  delete an account and all of its entries
  help                    show this message`

type Admin struct {
	schema    SchemaInitializer
	auth      service.AuthService
	admin     service.AdminService
	passwords PasswordReader
	out       io.Writer

	logger *logger.Logger
}

func New(schema SchemaInitializer, services *service.Services, passwords PasswordReader, out io.Writer, logger *logger.Logger) *Admin {
	return &Admin{
		schema:    schema,
		auth:      services.AuthService,
		admin:     services.AdminService,
		passwords: passwords,
		out:       out,
		logger:    logger,
	}
}

// Run executes the command named by args[0].
func (a *Admin) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrNoCommand
	}

	ctx = a.logger.WithContext(ctx)

	switch cmd, rest := args[0], args[1:]; cmd {
	case "migrate":
		return a.migrate(ctx)
	case "add-user":
		return a.addUser(ctx, rest)
	case "delete-user":
		return a.deleteUser(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *Admin) migrate(ctx context.Context) error {
	if err := a.schema.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	fmt.Fprintln(a.out, "schema is up to date")
	return nil
}

func (a *Admin) addUser(ctx context.Context, args []string) error {
	username, err := usernameArg(args)
	if err != nil {
		return err
	}

	password, err := a.passwords.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if password == "" {
		return ErrEmptyPassword
	}

	repeat, err := a.passwords.ReadPassword("Repeat password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if password != repeat {
		return ErrPasswordMismatch
	}

	user, err := a.auth.RegisterUser(ctx, username, password)
	if err != nil {
		return fmt.Errorf("add-user: %w", err)
	}

	a.logger.Info().Str("func", "Admin.addUser").Int64("id", user.UserID).Msg("user created")
	fmt.Fprintf(a.out, "user %q created with id %d\n", user.Username, user.UserID)
	return nil
}

func (a *Admin) deleteUser(ctx context.Context, args []string) error {
	username, err := usernameArg(args)
	if err != nil {
		return err
	}

	if err = a.admin.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("delete-user: %w", err)
	}

	fmt.Fprintf(a.out, "user %q and all of their entries deleted\n", username)
	return nil
}

func usernameArg(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", ErrMissingUsername
	}
	return strings.TrimSpace(args[0]), nil
}
