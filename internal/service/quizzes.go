package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-quizo/internal/models"
	"github.com/pribylovaa/go-quizo/internal/pkg/log"
	"github.com/pribylovaa/go-quizo/internal/storage"
)

// Входные структуры сервисного слоя.
type CreateQuizInput struct {
	Title       string
	Description string
	OwnerID     string
}

// UpdateQuizInput — частичный апдейт: nil-поля не меняются.
type UpdateQuizInput struct {
	ID          string
	OwnerID     string
	Title       *string
	Description *string
}

// CreateQuiz создаёт квиз учителя OwnerID.
//
// Валидация:
//   - title/description нормализуются (TrimSpace) и не должны быть пустыми;
//   - OwnerID обязателен; существование владельца не проверяется заранее,
//     нарушение внешнего ключа в хранилище даёт ErrInvalidArgument.
//
// Поведение:
//   - id и created_at назначаются сервером;
//   - дубликат заголовка у того же учителя — ErrAlreadyExists;
//   - прочие ошибки стораджа — ErrInternal.
func (s *Service) CreateQuiz(ctx context.Context, input CreateQuizInput) (*models.Quiz, error) {
	const op = "service.quizzes.CreateQuiz"

	lg := log.From(ctx).With("op", op)

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	ownerRaw := strings.TrimSpace(input.OwnerID)

	if title == "" || description == "" || ownerRaw == "" {
		lg.Warn("invalid argument: empty title, description or owner")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ownerID, err := uuid.Parse(ownerRaw)
	if err != nil {
		lg.Warn("invalid argument: malformed owner id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	quiz := &models.Quiz{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		TeacherID:   ownerID,
		CreatedAt:   s.clock.Now().UTC().Truncate(time.Microsecond), // точность timestamptz
	}

	lg = lg.With("owner_id", ownerID.String(), "quiz_id", quiz.ID.String())

	if err := s.storage.SaveQuiz(ctx, quiz); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("quiz title already exists")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		case errors.Is(err, storage.ErrOwnerNotFound):
			lg.Warn("owner not found")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on SaveQuiz", "err", err)

			return nil, fmt.Errorf("%s: %w", op, internal(err))
		}
	}

	lg.Info("quiz_create_ok")

	return quiz, nil
}

// ListQuizzes возвращает квизы учителя, новые первыми.
// Пустой список — не ошибка. Некорректный ownerID трактуется как учитель без квизов.
func (s *Service) ListQuizzes(ctx context.Context, ownerID string) ([]models.Quiz, error) {
	const op = "service.quizzes.ListQuizzes"

	lg := log.From(ctx).With("op", op)

	ownerRaw := strings.TrimSpace(ownerID)
	if ownerRaw == "" {
		lg.Warn("invalid argument: empty owner id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	owner, err := uuid.Parse(ownerRaw)
	if err != nil {
		return []models.Quiz{}, nil
	}

	quizzes, err := s.storage.QuizzesByOwner(ctx, owner)
	if err != nil {
		lg.Error("storage error on QuizzesByOwner", "owner_id", owner.String(), "err", err)

		return nil, fmt.Errorf("%s: %w", op, internal(err))
	}

	if quizzes == nil {
		quizzes = []models.Quiz{}
	}

	return quizzes, nil
}

// QuizByID возвращает квиз, если он существует и принадлежит ownerID.
// Чужой и несуществующий квиз одинаково дают ErrNotFound.
func (s *Service) QuizByID(ctx context.Context, id, ownerID string) (*models.Quiz, error) {
	const op = "service.quizzes.QuizByID"

	lg := log.From(ctx).With("op", op)

	quizID, owner, err := parseScope(id, ownerID)
	if err != nil {
		lg.Warn("invalid quiz scope", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	quiz, err := s.storage.QuizByID(ctx, quizID, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapLookupErr(lg, err))
	}

	return quiz, nil
}

// UpdateQuiz перезаписывает только переданные поля квиза.
//
// Поведение:
//   - сначала проверяется, что пара (id, ownerID) существует (ErrNotFound иначе);
//   - переданные поля нормализуются и не могут быть пустыми (ErrInvalidArgument);
//   - без полей — no-op, возвращается текущий квиз;
//   - конкурентное удаление между проверкой и записью даёт ErrNotFound.
func (s *Service) UpdateQuiz(ctx context.Context, input UpdateQuizInput) (*models.Quiz, error) {
	const op = "service.quizzes.UpdateQuiz"

	lg := log.From(ctx).With("op", op)

	quizID, owner, err := parseScope(input.ID, input.OwnerID)
	if err != nil {
		lg.Warn("invalid quiz scope", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	upd := storage.QuizUpdate{}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			lg.Warn("invalid argument: empty title")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		upd.Title = &title
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			lg.Warn("invalid argument: empty description")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		upd.Description = &description
	}

	lg = lg.With("quiz_id", quizID.String(), "owner_id", owner.String())

	current, err := s.storage.QuizByID(ctx, quizID, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapLookupErr(lg, err))
	}

	if upd.Empty() {
		return current, nil
	}

	quiz, err := s.storage.UpdateQuiz(ctx, quizID, owner, upd)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("quiz title already exists")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, mapLookupErr(lg, err))
	}

	lg.Info("quiz_update_ok")

	return quiz, nil
}

// DeleteQuiz безвозвратно удаляет квиз после проверки владельца.
func (s *Service) DeleteQuiz(ctx context.Context, id, ownerID string) error {
	const op = "service.quizzes.DeleteQuiz"

	lg := log.From(ctx).With("op", op)

	quizID, owner, err := parseScope(id, ownerID)
	if err != nil {
		lg.Warn("invalid quiz scope", "err", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	lg = lg.With("quiz_id", quizID.String(), "owner_id", owner.String())

	if _, err := s.storage.QuizByID(ctx, quizID, owner); err != nil {
		return fmt.Errorf("%s: %w", op, mapLookupErr(lg, err))
	}

	if err := s.storage.DeleteQuiz(ctx, quizID, owner); err != nil {
		return fmt.Errorf("%s: %w", op, mapLookupErr(lg, err))
	}

	lg.Info("quiz_delete_ok")

	return nil
}

// parseScope проверяет пару (id, ownerID).
// Пустые значения — ErrInvalidArgument; не-UUID — ErrNotFound,
// так как такой записи заведомо нет.
func parseScope(id, ownerID string) (uuid.UUID, uuid.UUID, error) {
	id = strings.TrimSpace(id)
	ownerID = strings.TrimSpace(ownerID)

	if id == "" || ownerID == "" {
		return uuid.Nil, uuid.Nil, ErrInvalidArgument
	}

	quizID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrNotFound
	}

	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrNotFound
	}

	return quizID, owner, nil
}

// mapLookupErr переводит ошибки адресных операций стораджа в ошибки сервиса.
func mapLookupErr(lg *slog.Logger, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		lg.Warn("quiz not found")

		return ErrNotFound
	}

	lg.Error("storage error", "err", err)

	return internal(err)
}
