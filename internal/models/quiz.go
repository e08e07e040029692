package models

import (
	"time"

	"github.com/google/uuid"
)

// Quiz — квиз, принадлежащий ровно одному учителю (TeacherID).
// Владелец и CreatedAt не меняются после создания.
type Quiz struct {
	ID          uuid.UUID
	Title       string
	Description string
	TeacherID   uuid.UUID
	CreatedAt   time.Time
}
