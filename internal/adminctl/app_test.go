package adminctl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	email, name, password string
	err                   error
}

func (f *fakeUsers) CreateAdmin(_ context.Context, email, name, password string) (*models.User, error) {
	f.email, f.name, f.password = email, name, password
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "u1", Email: email, Name: name}, nil
}

func (f *fakeUsers) ResetPassword(_ context.Context, email, password string) error {
	f.email, f.password = email, password
	return f.err
}

// stubPasswords feeds the given answers to successive password prompts.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	i := 0
	readPassword = func(int) ([]byte, error) {
		if i >= len(answers) {
			return nil, errors.New("no more input")
		}
		i++
		return []byte(answers[i-1]), nil
	}
}

func TestCreate_WithFlags(t *testing.T) {
	stubPasswords(t, "s3cret-pass", "s3cret-pass")
	users := &fakeUsers{}
	var out bytes.Buffer

	err := NewApp(users, strings.NewReader(""), &out).
		Run(context.Background(), []string{"create", "-email", "Owner@Example.com", "-name", "Owner", "-d", "postgres://x"})

	require.NoError(t, err)
	assert.Equal(t, "Owner@Example.com", users.email)
	assert.Equal(t, "Owner", users.name)
	assert.Equal(t, "s3cret-pass", users.password)
	assert.Contains(t, out.String(), "created (id u1)")
}

func TestCreate_PromptsForMissingValues(t *testing.T) {
	stubPasswords(t, "s3cret-pass", "s3cret-pass")
	users := &fakeUsers{}
	var out bytes.Buffer

	err := NewApp(users, strings.NewReader("owner@example.com\nOwner\n"), &out).
		Run(context.Background(), []string{"create"})

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", users.email)
	assert.Equal(t, "Owner", users.name)
	assert.Contains(t, out.String(), "Email\n> ")
}

func TestCreate_PasswordMismatch(t *testing.T) {
	stubPasswords(t, "one-password", "another-one")
	users := &fakeUsers{}

	err := NewApp(users, strings.NewReader(""), &bytes.Buffer{}).
		Run(context.Background(), []string{"create", "-email", "a@b.c", "-name", "A"})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Empty(t, users.email)
}

func TestCreate_EmptyEmail(t *testing.T) {
	err := NewApp(&fakeUsers{}, strings.NewReader("\n"), &bytes.Buffer{}).
		Run(context.Background(), []string{"create"})

	assert.ErrorIs(t, err, ErrEmptyEmail)
}

func TestReset(t *testing.T) {
	stubPasswords(t, "new-password", "new-password")
	users := &fakeUsers{}
	var out bytes.Buffer

	err := NewApp(users, strings.NewReader(""), &out).
		Run(context.Background(), []string{"reset", "-email=owner@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", users.email)
	assert.Equal(t, "new-password", users.password)
	assert.Contains(t, out.String(), "updated")
}

func TestReset_UnknownUser(t *testing.T) {
	stubPasswords(t, "new-password", "new-password")
	users := &fakeUsers{err: common.ErrorNotFound}

	err := NewApp(users, strings.NewReader(""), &bytes.Buffer{}).
		Run(context.Background(), []string{"reset", "-email", "ghost@example.com"})

	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUnknownCommand(t *testing.T) {
	var out bytes.Buffer

	err := NewApp(&fakeUsers{}, strings.NewReader(""), &out).Run(context.Background(), []string{"drop"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, out.String(), "usage:")
}
