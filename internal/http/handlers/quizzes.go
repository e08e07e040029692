package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-quizo/internal/errors"
	"github.com/pribylovaa/go-quizo/internal/models"
	"github.com/pribylovaa/go-quizo/internal/service"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgCreateRequired = "Title, description, and user ID are required"
	msgUserIDRequired = "User ID is required"
	msgScopeRequired  = "Quiz ID and User ID are required"
	msgUnknownUser    = "User not found"
	msgUpdateNotBlank = "Title and description must not be empty"
)

func (h *Handlers) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var in models.QuizCreateRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(msgInvalidBody))
		return
	}

	if blank(in.Title) || blank(in.Description) || blank(in.UserID) {
		apierrors.WriteError(w, r, invalidArgument(msgCreateRequired))
		return
	}

	quiz, err := h.Service.CreateQuiz(r.Context(), service.CreateQuizInput{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     in.UserID,
	})
	if err != nil {
		apierrors.WriteError(w, r, apierrors.WithMessage(err, msgUnknownUser))
		return
	}

	writeOK(w, http.StatusCreated, "Quiz created successfully", models.QuizFromDomain(quiz))
}

func (h *Handlers) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	quizzes, err := h.Service.ListQuizzes(r.Context(), userID)
	if err != nil {
		apierrors.WriteError(w, r, apierrors.WithMessage(err, msgUserIDRequired))
		return
	}

	writeOK(w, http.StatusOK, "", models.QuizzesFromDomain(quizzes))
}

func (h *Handlers) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := r.URL.Query().Get("userId")

	quiz, err := h.Service.QuizByID(r.Context(), id, userID)
	if err != nil {
		apierrors.WriteError(w, r, apierrors.WithMessage(err, msgScopeRequired))
		return
	}

	writeOK(w, http.StatusOK, "", models.QuizFromDomain(quiz))
}

func (h *Handlers) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	var in models.QuizUpdateRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(msgInvalidBody))
		return
	}

	id := chi.URLParam(r, "id")
	if blank(id) || blank(in.UserID) {
		apierrors.WriteError(w, r, invalidArgument(msgScopeRequired))
		return
	}

	quiz, err := h.Service.UpdateQuiz(r.Context(), service.UpdateQuizInput{
		ID:          id,
		OwnerID:     in.UserID,
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		apierrors.WriteError(w, r, apierrors.WithMessage(err, msgUpdateNotBlank))
		return
	}

	writeOK(w, http.StatusOK, "Quiz updated successfully", models.QuizFromDomain(quiz))
}

func (h *Handlers) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := r.URL.Query().Get("userId")

	if err := h.Service.DeleteQuiz(r.Context(), id, userID); err != nil {
		apierrors.WriteError(w, r, apierrors.WithMessage(err, msgScopeRequired))
		return
	}

	writeOK(w, http.StatusOK, "Quiz deleted successfully", nil)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
