// Package adminctl implements the admin account tool: creating the
// portfolio owner's account and resetting its password.
package adminctl

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/artfolio/internal/flagx"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyEmail       = errors.New("email is required")
)

const usage = `usage:
  adminctl create [-email addr] [-name name]
  adminctl reset  [-email addr]`

type UserService interface {
	CreateAdmin(ctx context.Context, email, name, password string) (*models.User, error)
	ResetPassword(ctx context.Context, email, password string) error
}

type App struct {
	users  UserService
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(users UserService, in io.Reader, out io.Writer) *App {
	return &App{users: users, reader: bufio.NewReader(in), out: out}
}

// Run executes the command named by the first non-flag argument. Flags
// that belong to the server configuration are ignored.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := ""
	for _, arg := range args {
		if arg == "create" || arg == "reset" {
			cmd = arg
			break
		}
	}

	var email, name string
	fs := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&email, "email", "", "admin email")
	fs.StringVar(&name, "name", "", "admin display name")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "-name"})); err != nil {
		return err
	}

	switch cmd {
	case "create":
		return a.create(ctx, email, name)
	case "reset":
		return a.reset(ctx, email)
	default:
		fmt.Fprintln(a.out, usage)
		return ErrUnknownCommand
	}
}

func (a *App) create(ctx context.Context, email, name string) error {
	email, err := a.askIfEmpty(email, "Email")
	if err != nil {
		return err
	}
	if email == "" {
		return ErrEmptyEmail
	}
	if name, err = a.askIfEmpty(name, "Name"); err != nil {
		return err
	}

	password, err := a.newPassword()
	if err != nil {
		return err
	}

	u, err := a.users.CreateAdmin(ctx, email, name, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Admin %s created (id %s)\n", u.Email, u.ID)
	return nil
}

func (a *App) reset(ctx context.Context, email string) error {
	email, err := a.askIfEmpty(email, "Email")
	if err != nil {
		return err
	}
	if email == "" {
		return ErrEmptyEmail
	}

	password, err := a.newPassword()
	if err != nil {
		return err
	}

	if err := a.users.ResetPassword(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Password for %s updated\n", email)
	return nil
}

func (a *App) askIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) newPassword() (string, error) {
	first, err := getPassword("Password", a.out)
	if err != nil {
		return "", err
	}
	second, err := getPassword("Repeat password", a.out)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrPasswordMismatch
	}
	return first, nil
}
