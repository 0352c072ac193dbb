package invoices

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice statuses
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

type Invoice struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string  `gorm:"type:uuid;not null;index:idx_invoices_user_id" json:"user_id"`
	InvoiceNumber string  `gorm:"not null" json:"invoice_number"`
	ClientID      *string `gorm:"type:uuid" json:"client_id"`
	CaseID        *string `gorm:"type:uuid" json:"case_id"`

	IssueDate time.Time `json:"issue_date"`
	DueDate   time.Time `json:"due_date"`
	Status    string    `gorm:"not null;default:'draft'" json:"status"`

	// Amounts in MYR. TaxRate is a percentage (e.g. 6 for 6% SST).
	Subtotal  float64 `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`

	Notes *string `json:"notes"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   string  `gorm:"type:uuid;not null;index:idx_invoice_items_invoice_id" json:"invoice_id"`
	Description string  `gorm:"not null" json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return nil
}

// ValidStatus reports whether s is one of the known invoice statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}
