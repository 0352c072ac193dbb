package cases

import (
	"time"

	"lexsuite-app/internal/domain/clients"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case statuses (single source of truth)
const (
	StatusOpen    = "open"
	StatusClosed  = "closed"
	StatusPending = "pending"
)

type Case struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string  `gorm:"type:uuid;not null;index:idx_cases_user_id" json:"user_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description"`
	Status      string  `gorm:"not null;default:'open'" json:"status"`

	ClientID *string         `gorm:"type:uuid" json:"client_id"`
	Client   *clients.Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	DueDate *time.Time `json:"due_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (k *Case) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// ValidStatus reports whether s is one of the known case statuses.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusClosed || s == StatusPending
}
