// Входные/выходные модели REST API.
package models

import "time"

// Envelope — успешный ответ API.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type QuizCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// QuizUpdateRequest — отсутствующие title/description не меняются.
type QuizUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	UserID      string  `json:"userId"`
}

type QuizResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	TeacherID   string    `json:"teacher_id"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type RootResponse struct {
	Message string `json:"message"`
}

func LoginFromUser(u *User) LoginResponse {
	return LoginResponse{UserID: u.ID.String(), Username: u.Username}
}

func QuizFromDomain(q *Quiz) QuizResponse {
	return QuizResponse{
		ID:          q.ID.String(),
		Title:       q.Title,
		Description: q.Description,
		CreatedAt:   q.CreatedAt.UTC(),
		TeacherID:   q.TeacherID.String(),
	}
}

// QuizzesFromDomain всегда возвращает не-nil слайс: пустой список сериализуется как [].
func QuizzesFromDomain(qs []Quiz) []QuizResponse {
	out := make([]QuizResponse, 0, len(qs))
	for i := range qs {
		out = append(out, QuizFromDomain(&qs[i]))
	}
	return out
}
