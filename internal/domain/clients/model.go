package clients

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID      string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string  `gorm:"type:uuid;not null;index:idx_clients_user_id" json:"user_id"`
	Name    string  `gorm:"not null" json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
