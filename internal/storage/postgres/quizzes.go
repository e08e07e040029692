package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-quizo/internal/models"
	"github.com/pribylovaa/go-quizo/internal/storage"
)

// quizColumns — единый список колонок таблицы quizzes для SELECT/RETURNING,
// чтобы порядок сканирования везде совпадал.
const quizColumns = `id, title, description, teacher_id, created_at`

func scanQuiz(row pgx.Row) (*models.Quiz, error) {
	var quiz models.Quiz

	if err := row.Scan(
		&quiz.ID,
		&quiz.Title,
		&quiz.Description,
		&quiz.TeacherID,
		&quiz.CreatedAt,
	); err != nil {
		return nil, err
	}

	quiz.CreatedAt = quiz.CreatedAt.UTC()

	return &quiz, nil
}

// SaveQuiz вставляет новый квиз.
// Ошибки: storage.ErrAlreadyExists (title занят у учителя),
// storage.ErrOwnerNotFound (нет такого teacher_id), иные — как есть.
func (s *Storage) SaveQuiz(ctx context.Context, quiz *models.Quiz) error {
	const op = "storage.postgres.SaveQuiz"

	query := `
		INSERT INTO quizzes(id, title, description, teacher_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query,
		quiz.ID,
		quiz.Title,
		quiz.Description,
		quiz.TeacherID,
		quiz.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, mapConstraintErr(err))
	}

	return nil
}

// QuizzesByOwner возвращает все квизы учителя.
// Сортировка: created_at DESC; при равном времени позже вставленный первым (seq DESC).
func (s *Storage) QuizzesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Quiz, error) {
	const op = "storage.postgres.QuizzesByOwner"

	rows, err := s.db.Query(ctx, `
		SELECT `+quizColumns+`
		FROM quizzes
		WHERE teacher_id = $1
		ORDER BY created_at DESC, seq DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	quizzes := make([]models.Quiz, 0)
	for rows.Next() {
		quiz, scanErr := scanQuiz(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		quizzes = append(quizzes, *quiz)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return quizzes, nil
}

// QuizByID возвращает квиз по (id, teacher_id).
// Ошибки: storage.ErrNotFound, если записи нет или она чужая.
func (s *Storage) QuizByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Quiz, error) {
	const op = "storage.postgres.QuizByID"

	row := s.db.QueryRow(ctx, `
		SELECT `+quizColumns+`
		FROM quizzes
		WHERE id = $1 AND teacher_id = $2
	`, id, ownerID)

	quiz, err := scanQuiz(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return quiz, nil
}

// UpdateQuiz выполняет частичный апдейт: обновляет только поля,
// заданные непустыми указателями. Пустой апдейт возвращает текущую запись.
// Ошибки: storage.ErrNotFound при отсутствии записи (id, teacher_id),
// storage.ErrAlreadyExists при конфликте title.
func (s *Storage) UpdateQuiz(ctx context.Context, id, ownerID uuid.UUID, update storage.QuizUpdate) (*models.Quiz, error) {
	const op = "storage.postgres.UpdateQuiz"

	if update.Empty() {
		quiz, err := s.QuizByID(ctx, id, ownerID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return quiz, nil
	}

	sets := make([]string, 0, 2)
	args := make([]any, 0, 4)
	count := 0

	if update.Title != nil {
		count++
		sets = append(sets, fmt.Sprintf("title = $%d", count))
		args = append(args, *update.Title)
	}

	if update.Description != nil {
		count++
		sets = append(sets, fmt.Sprintf("description = $%d", count))
		args = append(args, *update.Description)
	}

	args = append(args, id, ownerID)

	q := fmt.Sprintf(`UPDATE quizzes SET %s WHERE id = $%d AND teacher_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), count+1, count+2, quizColumns)

	quiz, err := scanQuiz(s.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, mapConstraintErr(err))
	}

	return quiz, nil
}

// DeleteQuiz удаляет квиз (id, teacher_id).
// Ошибки: storage.ErrNotFound, если ни одна строка не удалена.
func (s *Storage) DeleteQuiz(ctx context.Context, id, ownerID uuid.UUID) error {
	const op = "storage.postgres.DeleteQuiz"

	tag, err := s.db.Exec(ctx, `DELETE FROM quizzes WHERE id = $1 AND teacher_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
