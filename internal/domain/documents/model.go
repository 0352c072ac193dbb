package documents

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is the metadata row for an object stored in S3. The object
// itself lives at StoragePath inside the configured bucket.
type Document struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string  `gorm:"type:uuid;not null;index:idx_documents_user_id" json:"user_id"`
	CaseID      *string `gorm:"type:uuid" json:"case_id"`
	Name        string  `gorm:"not null" json:"name"`
	StoragePath string  `gorm:"not null;uniqueIndex:idx_documents_storage_path" json:"-"`
	ContentType string  `json:"content_type"`
	SizeBytes   int64   `json:"size_bytes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
