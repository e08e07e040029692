package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apierrors "github.com/pribylovaa/go-quizo/internal/errors"
	"github.com/pribylovaa/go-quizo/internal/models"
	"github.com/pribylovaa/go-quizo/internal/service"
)

// maxBodyBytes ограничивает размер JSON-тела запроса.
const maxBodyBytes = 1 << 20

// Service — операции бизнес-слоя, которые нужны хендлерам.
type Service interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	CreateQuiz(ctx context.Context, input service.CreateQuizInput) (*models.Quiz, error)
	ListQuizzes(ctx context.Context, ownerID string) ([]models.Quiz, error)
	QuizByID(ctx context.Context, id, ownerID string) (*models.Quiz, error)
	UpdateQuiz(ctx context.Context, input service.UpdateQuizInput) (*models.Quiz, error)
	DeleteQuiz(ctx context.Context, id, ownerID string) error
	Ping(ctx context.Context) error
}

// Handlers агрегирует зависимости REST-эндпойнтов.
type Handlers struct {
	Service Service
}

func New(s Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeOK оборачивает data/message в успешный конверт.
func writeOK(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, models.Envelope{Success: true, Message: message, Data: data})
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля,
// лишние данные после объекта и тела больше maxBodyBytes.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(value); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}

// invalidArgument — локальная ошибка разбора запроса -> 400 с сообщением msg.
func invalidArgument(msg string) error {
	return apierrors.WithMessage(service.ErrInvalidArgument, msg)
}
