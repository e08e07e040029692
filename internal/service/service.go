// service содержит бизнес-логику quiz-service:
// проверку учётных данных учителя и CRUD квизов в рамках владельца.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; экземпляр безопасен для конкурентного
//     использования при потокобезопасном storage.Storage.
//   - Хранилище и часы передаются явно в New, глобального состояния нет.
//   - Ошибки стораджа логируются здесь и маппятся в ошибки сервиса,
//     которые HTTP-слой переводит в статусы (см. internal/errors).
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/pribylovaa/go-quizo/internal/storage"
)

var (
	// ErrInvalidArgument — пустые/некорректные входные данные, неизвестный владелец при создании.
	// HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound — квиз отсутствует или принадлежит другому учителю.
	// HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — у учителя уже есть квиз с таким заголовком.
	// HTTP 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInternal — внутренняя ошибка (хранилище недоступно и т.п.).
	// HTTP 500.
	ErrInternal = errors.New("internal")
)

// Service описывает бизнес-логику quiz-service.
type Service struct {
	storage storage.Storage
	clock   clockwork.Clock
}

// New создаёт новый экземпляр Service.
// clock задаёт created_at новых квизов; nil означает реальные часы.
func New(storage storage.Storage, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Ping проверяет доступность хранилища.
func (s *Service) Ping(ctx context.Context) error {
	const op = "service.Ping"

	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// internal помечает ошибку стораджа как ErrInternal, сохраняя причину.
// Отмена и дедлайн контекста остаются различимы через errors.Is.
func internal(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
