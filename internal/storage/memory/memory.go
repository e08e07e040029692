// memory — in-memory реализация storage.Storage.
//
// Воспроизводит ограничения схемы PostgreSQL (уникальный username,
// уникальный title в рамках учителя, внешний ключ teacher_id -> users)
// и порядок выдачи списка. Используется в тестах и при db.driver=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-quizo/internal/models"
	"github.com/pribylovaa/go-quizo/internal/storage"
)

type quizRecord struct {
	quiz models.Quiz
	seq  uint64
}

type Storage struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]models.User
	byName  map[string]uuid.UUID
	quizzes map[uuid.UUID]quizRecord
	seq     uint64
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{
		users:   make(map[uuid.UUID]models.User),
		byName:  make(map[string]uuid.UUID),
		quizzes: make(map[uuid.UUID]quizRecord),
	}
}

func (s *Storage) SaveUser(_ context.Context, user *models.User) error {
	const op = "storage.memory.SaveUser"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	if _, ok := s.byName[user.Username]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	s.users[user.ID] = *user
	s.byName[user.Username] = user.ID

	return nil
}

func (s *Storage) UserByUsername(_ context.Context, username string) (*models.User, error) {
	const op = "storage.memory.UserByUsername"

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[username]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	user := s.users[id]

	return &user, nil
}

func (s *Storage) SaveQuiz(_ context.Context, quiz *models.Quiz) error {
	const op = "storage.memory.SaveQuiz"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[quiz.TeacherID]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrOwnerNotFound)
	}

	if _, ok := s.quizzes[quiz.ID]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	if s.titleTakenLocked(quiz.TeacherID, quiz.Title, uuid.Nil) {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	s.seq++
	s.quizzes[quiz.ID] = quizRecord{quiz: *quiz, seq: s.seq}

	return nil
}

// QuizzesByOwner сортирует по created_at DESC; при равных метках
// первым идёт квиз, сохранённый позже.
func (s *Storage) QuizzesByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]quizRecord, 0)
	for _, rec := range s.quizzes {
		if rec.quiz.TeacherID == ownerID {
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.quiz.CreatedAt.Equal(b.quiz.CreatedAt) {
			return a.quiz.CreatedAt.After(b.quiz.CreatedAt)
		}

		return a.seq > b.seq
	})

	quizzes := make([]models.Quiz, 0, len(records))
	for _, rec := range records {
		quizzes = append(quizzes, rec.quiz)
	}

	return quizzes, nil
}

func (s *Storage) QuizByID(_ context.Context, id, ownerID uuid.UUID) (*models.Quiz, error) {
	const op = "storage.memory.QuizByID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.quizzes[id]
	if !ok || rec.quiz.TeacherID != ownerID {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	quiz := rec.quiz

	return &quiz, nil
}

func (s *Storage) UpdateQuiz(_ context.Context, id, ownerID uuid.UUID, update storage.QuizUpdate) (*models.Quiz, error) {
	const op = "storage.memory.UpdateQuiz"

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.quizzes[id]
	if !ok || rec.quiz.TeacherID != ownerID {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if update.Title != nil {
		if s.titleTakenLocked(ownerID, *update.Title, id) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		rec.quiz.Title = *update.Title
	}

	if update.Description != nil {
		rec.quiz.Description = *update.Description
	}

	s.quizzes[id] = rec
	quiz := rec.quiz

	return &quiz, nil
}

func (s *Storage) DeleteQuiz(_ context.Context, id, ownerID uuid.UUID) error {
	const op = "storage.memory.DeleteQuiz"

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.quizzes[id]
	if !ok || rec.quiz.TeacherID != ownerID {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	delete(s.quizzes, id)

	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Close() {}

// titleTakenLocked проверяет уникальность (teacher_id, title), исключая квиз except.
// Вызывается под s.mu.
func (s *Storage) titleTakenLocked(ownerID uuid.UUID, title string, except uuid.UUID) bool {
	for id, rec := range s.quizzes {
		if id != except && rec.quiz.TeacherID == ownerID && rec.quiz.Title == title {
			return true
		}
	}

	return false
}

var _ storage.Storage = (*Storage)(nil)
