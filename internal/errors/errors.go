// errors стандартизирует ответы об ошибках HTTP-слоя quiz-service.
// На вход он принимает ошибку сервисного слоя (или контекста),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: sentinel-ошибки internal/service.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-quizo/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// Сообщения по умолчанию.
const (
	MsgInvalidArgument    = "Invalid request"
	MsgInvalidCredentials = "Invalid credentials"
	MsgNotFound           = "Quiz not found"
	MsgAlreadyExists      = "A quiz with this title already exists"
	MsgCanceled           = "Request canceled"
	MsgTimeout            = "Request timed out"
	MsgInternal           = "Internal server error"
)

// ErrorResponse — единый формат ошибки для фронта.
// RequestID прокидывается из X-Request-Id, если есть (для трассировки).
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// messageError уточняет текст ответа для 400 конкретного эндпойнта.
type messageError struct {
	err error
	msg string
}

func (e *messageError) Error() string { return e.err.Error() }
func (e *messageError) Unwrap() error { return e.err }

// WithMessage задаёт сообщение, которое уйдёт клиенту, если err окажется
// ошибкой валидации (400). Для прочих статусов используется сообщение по умолчанию.
func WithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}

	return &messageError{err: err, msg: msg}
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - известные ошибки сервиса маппятся по таблице baseFromService();
//   - отмена/таймаут контекста -> 499/504;
//   - прочее -> 500 без утечки деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Message: MsgInternal}
	}

	status, msg := baseFromService(err)

	var me *messageError
	if status == http.StatusBadRequest && errors.As(err, &me) && me.msg != "" {
		msg = me.msg
	}

	return status, ErrorResponse{Message: msg}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromService — базовый маппинг ошибка -> HTTP/сообщение:
//   - ErrInvalidArgument -> 400
//   - ErrInvalidCredentials -> 401
//   - ErrNotFound -> 404
//   - ErrAlreadyExists -> 409
//   - context.Canceled -> 499 (клиент закрыл соединение)
//   - context.DeadlineExceeded -> 504
//   - прочее (в т.ч. ErrInternal) -> 500
func baseFromService(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, MsgInvalidArgument
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, MsgInvalidCredentials
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, MsgAlreadyExists
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, MsgCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, MsgTimeout
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}
