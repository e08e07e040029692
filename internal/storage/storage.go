// storage определяет контракты доступа к БД для quiz-service.
//
// Все операции над конкретным квизом принимают пару (id, ownerID) и фильтруют
// по обоим полям в одном запросе: чужой квиз для вызывающего неотличим
// от несуществующего.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-quizo/internal/models"
)

var (
	// ErrNotFound — запись не найдена (или принадлежит другому владельцу).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username, title в рамках учителя).
	ErrAlreadyExists = errors.New("already exists")
	// ErrOwnerNotFound — нарушение внешнего ключа quizzes.teacher_id.
	ErrOwnerNotFound = errors.New("owner not found")
)

// QuizUpdate — частичный апдейт квиза.
// Обновляются только поля с непустыми указателями.
type QuizUpdate struct {
	Title       *string
	Description *string
}

// Empty сообщает, что апдейт не меняет ни одного поля.
func (u QuizUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil
}

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт пользователя. ErrAlreadyExists при занятом username.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByUsername находит пользователя по точному совпадению username.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// QuizStorage выполняет операции над квизами в рамках владельца.
type QuizStorage interface {
	// SaveQuiz сохраняет новый квиз.
	// ErrAlreadyExists — дубликат title у того же учителя;
	// ErrOwnerNotFound — teacher_id не ссылается на существующего пользователя.
	SaveQuiz(ctx context.Context, quiz *models.Quiz) error
	// QuizzesByOwner возвращает квизы владельца, новые первыми.
	QuizzesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Quiz, error)
	// QuizByID возвращает квиз по (id, ownerID) или ErrNotFound.
	QuizByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Quiz, error)
	// UpdateQuiz применяет update к квизу (id, ownerID) и возвращает результат.
	UpdateQuiz(ctx context.Context, id, ownerID uuid.UUID, update QuizUpdate) (*models.Quiz, error)
	// DeleteQuiz удаляет квиз (id, ownerID) или возвращает ErrNotFound.
	DeleteQuiz(ctx context.Context, id, ownerID uuid.UUID) error
}

// Storage задаёт контракт работы с хранилищем.
type Storage interface {
	UserStorage
	QuizStorage
	// Ping проверяет доступность хранилища (используется в /health).
	Ping(ctx context.Context) error
	Close()
}
