// models содержит доменные сущности quiz-service.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учитель. Создаётся вне HTTP API (cmd/seed-user), для сервиса read-only.
// Password хранится в открытом виде.
type User struct {
	ID        uuid.UUID
	Username  string
	Password  string
	CreatedAt time.Time
}
