package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-quizo/internal/models"
	"github.com/pribylovaa/go-quizo/internal/pkg/log"
	"github.com/pribylovaa/go-quizo/internal/pkg/redact"
	"github.com/pribylovaa/go-quizo/internal/storage"
)

// Authenticate проверяет username/password и возвращает пользователя.
//
// Пароли хранятся открытым текстом и сравниваются на точное равенство.
// «Нет пользователя» и «неверный пароль» дают одну и ту же ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	const op = "service.auth.Authenticate"

	username = strings.TrimSpace(username)
	lg := log.From(ctx).With("op", op, "username", redact.Username(username))

	if username == "" || strings.TrimSpace(password) == "" {
		lg.Warn("invalid argument: empty username or password")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("login_failed")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		lg.Error("storage error on UserByUsername", "err", err)

		return nil, fmt.Errorf("%s: %w", op, internal(err))
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		lg.Warn("login_failed")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	lg.Info("login_ok", "user_id", user.ID.String())

	return user, nil
}
