package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/term"

	"github.com/pribylovaa/go-quizo/internal/models"
	"github.com/pribylovaa/go-quizo/internal/storage"
)

var (
	errEmptyUsername = errors.New("username is required")
	errEmptyPassword = errors.New("password is required")
	errUsernameTaken = errors.New("username already taken")
)

// readPassword подменяется в тестах, чтобы не трогать терминал.
var readPassword = term.ReadPassword

// promptPassword спрашивает пароль без эха.
func promptPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// createTeacher сохраняет учителя. Username тримится, пароль хранится как есть:
// вход сравнивает его на точное равенство.
func createTeacher(ctx context.Context, st storage.UserStorage, clock clockwork.Clock, username, password string) (*models.User, error) {
	const op = "seed.createTeacher"

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%s: %w", op, errEmptyUsername)
	}
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%s: %w", op, errEmptyPassword)
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  username,
		Password:  password,
		CreatedAt: clock.Now().UTC(),
	}

	if err := st.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %q: %w", op, username, errUsernameTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
